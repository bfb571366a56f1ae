package progression

import (
	"strconv"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
)

// ChallengeUpdate is a change to one user's challenge progress.
type ChallengeUpdate struct {
	Progress      models.UserChallengeProgress
	JustCompleted bool
	Points        int64
}

// AdvanceChallenge applies a savings event to a challenge. ok is false when
// the challenge does not move: inactive, expired, or already completed.
func AdvanceChallenge(def models.ChallengeDefinition, progress models.UserChallengeProgress, amount money.Amount, streak int, now time.Time) (ChallengeUpdate, bool) {
	if !def.Active || progress.Completed {
		return ChallengeUpdate{}, false
	}
	if def.ExpiresAt != nil && !now.Before(*def.ExpiresAt) {
		return ChallengeUpdate{}, false
	}

	before := progress.Progress
	switch def.Metric {
	case models.MetricSavingsAmount:
		progress.Progress += amount.Floor()
	case models.MetricSavingsCount:
		progress.Progress++
	case models.MetricStreakDays:
		if int64(streak) > progress.Progress {
			progress.Progress = int64(streak)
		}
	default:
		return ChallengeUpdate{}, false
	}
	if progress.Progress == before {
		return ChallengeUpdate{}, false
	}

	progress.ChallengeID = def.ID
	progress.ExpiresAt = def.ExpiresAt
	update := ChallengeUpdate{Progress: progress}
	if progress.Progress >= def.TargetValue {
		completedAt := now
		update.Progress.Completed = true
		update.Progress.CompletedAt = &completedAt
		update.JustCompleted = true
		update.Points = def.Points
	}
	return update, true
}

// DefaultChallenges is the starter challenge catalog.
func DefaultChallenges() []models.ChallengeDefinition {
	return []models.ChallengeDefinition{
		{
			ID:          "first-steps",
			Title:       "First steps",
			Description: "Record three savings",
			Metric:      models.MetricSavingsCount,
			TargetValue: 3,
			Points:      15,
			Active:      true,
		},
		{
			ID:          "century",
			Title:       "Century",
			Description: "Save 100 in total",
			Metric:      models.MetricSavingsAmount,
			TargetValue: 100,
			Points:      50,
			Active:      true,
		},
		{
			ID:          "week-streak",
			Title:       "Week streak",
			Description: "Save on seven consecutive days",
			Metric:      models.MetricStreakDays,
			TargetValue: 7,
			Points:      35,
			Active:      true,
		},
	}
}

// DefaultRewards is the starter reward catalog, one reward per level.
func DefaultRewards() []models.RewardDefinition {
	titles := []struct {
		title    string
		category string
		value    string
	}{
		{"Bronze saver badge", "badge", `{"badge":"bronze"}`},
		{"Coffee voucher", "voucher", `{"amount":3}`},
		{"Silver saver badge", "badge", `{"badge":"silver"}`},
		{"Cinema voucher", "voucher", `{"amount":10}`},
		{"Gold saver badge", "badge", `{"badge":"gold"}`},
		{"Dinner voucher", "voucher", `{"amount":25}`},
		{"Platinum saver badge", "badge", `{"badge":"platinum"}`},
	}
	out := make([]models.RewardDefinition, 0, len(titles))
	for i, t := range titles {
		level := Levels[i+1]
		def := models.RewardDefinition{
			ID:          "level-" + strconv.Itoa(level.Number),
			Level:       level.Number,
			MinSavings:  level.MinSavings,
			Title:       t.title,
			Description: "Unlocked at level " + strconv.Itoa(level.Number),
			Category:    t.category,
			Value:       []byte(t.value),
			Active:      true,
		}
		if i+2 < len(Levels) {
			maxSavings := Levels[i+2].MinSavings
			def.MaxSavings = &maxSavings
		}
		out = append(out, def)
	}
	return out
}
