package savings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/progression"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/google/uuid"
)

// ProgressUpdate describes what one save did to the user's progression.
type ProgressUpdate struct {
	Period              models.ProgressionPeriod
	PreviousLevel       int
	LeveledUp           bool
	Points              int64
	UnlockedRewards     []models.RewardDefinition
	CompletedChallenges []models.ChallengeDefinition
}

// currentPeriod loads the user's progression record for the month, or a
// fresh one at version 0. A fresh record carries the streak over from the
// previous month so a streak survives the month boundary.
func (s *Service) currentPeriod(ctx context.Context, userID string, period models.Period) (models.ProgressionPeriod, error) {
	p, err := s.store.GetProgression(ctx, userID, period.FirstDay())
	if err == nil {
		return *p, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.ProgressionPeriod{}, fmt.Errorf("failed to get progression: %w", err)
	}

	fresh := progression.NewPeriod(userID, period)
	previous := models.PeriodOf(period.Start().AddDate(0, -1, 0))
	prev, err := s.store.GetProgression(ctx, userID, previous.FirstDay())
	if err == nil {
		fresh.StreakDays = prev.StreakDays
		fresh.LastActivityDate = prev.LastActivityDate
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.ProgressionPeriod{}, fmt.Errorf("failed to get previous progression: %w", err)
	}
	return fresh, nil
}

// advanceProgression adds the progression side of a save to cs.
func (s *Service) advanceProgression(ctx context.Context, cs *storage.ChangeSet, userID string, amount money.Amount, now time.Time) (*ProgressUpdate, error) {
	period, err := s.currentPeriod(ctx, userID, models.PeriodOf(now))
	if err != nil {
		return nil, err
	}
	outcome := progression.Advance(period, amount, now)
	update := &ProgressUpdate{
		PreviousLevel: outcome.PreviousLevel,
		LeveledUp:     outcome.LeveledUp(),
		Points:        outcome.Points,
	}

	challenges, err := s.store.ListChallenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	if len(challenges) > 0 {
		records, err := s.store.ListChallengeProgress(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list challenge progress: %w", err)
		}
		byID := make(map[string]models.UserChallengeProgress, len(records))
		for _, r := range records {
			byID[r.ChallengeID] = r
		}
		for _, def := range challenges {
			current, ok := byID[def.ID]
			if !ok {
				current = models.UserChallengeProgress{UserID: userID, ChallengeID: def.ID}
			}
			change, moved := progression.AdvanceChallenge(def, current, amount, outcome.Period.StreakDays, now)
			if !moved {
				continue
			}
			cs.PutChallengeProgress(change.Progress)
			if change.JustCompleted {
				outcome.Period.TotalPoints += change.Points
				outcome.Period.CompletedChallengeIDs = append(outcome.Period.CompletedChallengeIDs, def.ID)
				update.CompletedChallenges = append(update.CompletedChallenges, def)
			}
		}
	}

	if update.LeveledUp {
		defs, err := s.store.ListRewards(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list rewards: %w", err)
		}
		update.UnlockedRewards = progression.UnlockedRewards(outcome.PreviousLevel, outcome.Period.CurrentLevel, defs)
	}

	cs.PutProgression(outcome.Period)
	update.Period = outcome.Period
	update.Period.Version++
	return update, nil
}

func (s *Service) observeProgress(ctx context.Context, userID string, update *ProgressUpdate) {
	if update == nil {
		return
	}
	if update.LeveledUp {
		s.metrics.LevelUps.WithLabelValues(strconv.Itoa(update.Period.CurrentLevel)).Inc()
		s.logger.InfoContext(ctx, "level up", "user_id", userID, "from", update.PreviousLevel, "to", update.Period.CurrentLevel, "unlocked_rewards", len(update.UnlockedRewards))
	}
	for _, c := range update.CompletedChallenges {
		s.metrics.ChallengesCompleted.WithLabelValues(c.ID).Inc()
		s.logger.InfoContext(ctx, "challenge completed", "user_id", userID, "challenge_id", c.ID, "points", c.Points)
	}
}

// ProgressView is a user's progression for the current month.
type ProgressView struct {
	Period             models.ProgressionPeriod
	ProgressPercentage float64
	NextLevel          *int
	NeededForNext      money.Amount
	AvailableRewards   []models.RewardDefinition
	Challenges         []models.UserChallengeProgress
}

// GetProgress returns the current month's progression without creating a record.
func (s *Service) GetProgress(ctx context.Context, userID string) (*ProgressView, error) {
	period, err := s.currentPeriod(ctx, userID, models.PeriodOf(s.clock()))
	if err != nil {
		return nil, err
	}
	view := &ProgressView{
		Period:             period,
		ProgressPercentage: progression.ProgressPercentage(period.TotalSavings),
	}
	if next, needed, ok := progression.NextLevel(period.TotalSavings); ok {
		view.NextLevel = &next.Number
		view.NeededForNext = needed
	}

	defs, err := s.store.ListRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	for _, d := range defs {
		if d.Active && d.Level <= period.CurrentLevel && period.TotalSavings.GreaterOrEqual(d.MinSavings) {
			view.AvailableRewards = append(view.AvailableRewards, d)
		}
	}

	view.Challenges, err = s.store.ListChallengeProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenge progress: %w", err)
	}
	return view, nil
}

// RedeemReward issues a single-use code for a reward the user qualifies for
// this month. Each reward can be redeemed once per month.
func (s *Service) RedeemReward(ctx context.Context, userID, rewardID string) (*models.UserReward, error) {
	reward, err := s.store.GetReward(ctx, rewardID)
	if err != nil {
		return nil, notFound(err, "reward %s not found", rewardID)
	}
	if !reward.Active {
		return nil, newError(ErrNotEligible, "reward %s is not available", rewardID)
	}

	var redeemed models.UserReward
	err = s.commit(ctx, "redeem_reward", func() (*storage.ChangeSet, error) {
		now := s.clock()
		month := models.PeriodOf(now)
		period, err := s.currentPeriod(ctx, userID, month)
		if err != nil {
			return nil, err
		}
		if period.TotalSavings.LessThan(reward.MinSavings) {
			return nil, newError(ErrNotEligible, "reward %s needs %s saved this month, you have %s", rewardID, reward.MinSavings, period.TotalSavings)
		}

		_, err = s.store.GetUserReward(ctx, userID, rewardID, period.ID)
		if err == nil {
			return nil, newError(ErrAlreadyRedeemed, "reward %s was already redeemed this month", rewardID)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to get user reward: %w", err)
		}

		code, err := progression.NewRedemptionCode()
		if err != nil {
			return nil, err
		}
		redeemed = models.UserReward{
			ID:       uuid.New().String(),
			UserID:   userID,
			PeriodID: period.ID,
			RewardID: rewardID,
			EarnedAt: now,
			Status:   models.RewardAvailable,
			Code:     code,
		}
		cs := storage.NewChangeSet()
		cs.PutRedemption(redeemed)
		redeemed.Version++
		return cs, nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RewardsRedeemed.Inc()
	s.logger.InfoContext(ctx, "reward redeemed", "user_id", userID, "reward_id", rewardID, "period_id", redeemed.PeriodID)
	return &redeemed, nil
}

// UseReward marks an available redemption as used.
func (s *Service) UseReward(ctx context.Context, userID, rewardID, periodID string) (*models.UserReward, error) {
	var used models.UserReward
	err := s.commit(ctx, "use_reward", func() (*storage.ChangeSet, error) {
		reward, err := s.store.GetUserReward(ctx, userID, rewardID, periodID)
		if err != nil {
			return nil, notFound(err, "no redemption of reward %s for period %s", rewardID, periodID)
		}
		if reward.Status != models.RewardAvailable {
			return nil, newError(ErrStateConflict, "reward is %s", reward.Status)
		}
		reward.Status = models.RewardUsed
		cs := storage.NewChangeSet()
		cs.PutRedemption(*reward)
		used = *reward
		used.Version++
		return cs, nil
	})
	if err != nil {
		return nil, err
	}
	return &used, nil
}

// ListUserRewards returns a user's redemptions, newest first.
func (s *Service) ListUserRewards(ctx context.Context, userID string) ([]models.UserReward, error) {
	rewards, err := s.store.ListUserRewards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user rewards: %w", err)
	}
	return rewards, nil
}

// ListRewards returns the reward catalog.
func (s *Service) ListRewards(ctx context.Context) ([]models.RewardDefinition, error) {
	rewards, err := s.store.ListRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

// ListChallenges returns the challenge catalog.
func (s *Service) ListChallenges(ctx context.Context) ([]models.ChallengeDefinition, error) {
	challenges, err := s.store.ListChallenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	return challenges, nil
}

// SeedCatalog writes reward and challenge definitions.
func (s *Service) SeedCatalog(ctx context.Context, rewards []models.RewardDefinition, challenges []models.ChallengeDefinition) error {
	for i := range rewards {
		if err := s.store.PutReward(ctx, &rewards[i]); err != nil {
			return fmt.Errorf("failed to seed reward %s: %w", rewards[i].ID, err)
		}
	}
	for i := range challenges {
		if err := s.store.PutChallenge(ctx, &challenges[i]); err != nil {
			return fmt.Errorf("failed to seed challenge %s: %w", challenges[i].ID, err)
		}
	}
	s.logger.InfoContext(ctx, "catalog seeded", "rewards", len(rewards), "challenges", len(challenges))
	return nil
}
