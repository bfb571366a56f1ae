package savings

import (
	"context"
	"fmt"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/google/uuid"
)

// MinGoalTarget is the smallest allowed goal target.
var MinGoalTarget = money.FromInt(10)

const maxGoalNameLength = 100

// GoalInput creates a goal.
type GoalInput struct {
	Name         string
	TargetAmount money.Amount
}

// GoalUpdate changes an active goal. Nil fields are left alone.
type GoalUpdate struct {
	Name         *string
	TargetAmount *money.Amount
}

func validateTarget(target money.Amount) error {
	if target.LessThan(MinGoalTarget) {
		return newError(ErrValidation, "target amount must be at least %s", MinGoalTarget)
	}
	return validateAmount("target amount", target)
}

// ownedGoal loads a goal and checks it belongs to userID.
func (s *Service) ownedGoal(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return nil, notFound(err, "goal %s not found", goalID)
	}
	if goal.UserID != userID {
		return nil, newError(ErrForbidden, "goal %s belongs to another user", goalID)
	}
	return goal, nil
}

// withDisplayedAmounts fills CurrentAmount from the owner's aggregate for
// the current month.
func (s *Service) withDisplayedAmounts(ctx context.Context, userID string, goals []models.Goal) error {
	agg, err := s.aggregate(ctx, userID, models.PeriodOf(s.clock()))
	if err != nil {
		return err
	}
	for i := range goals {
		goals[i].CurrentAmount = goals[i].DisplayedAmount(agg.TotalSaved)
	}
	return nil
}

func (s *Service) displayed(ctx context.Context, goal models.Goal) (*models.Goal, error) {
	goals := []models.Goal{goal}
	if err := s.withDisplayedAmounts(ctx, goal.UserID, goals); err != nil {
		return nil, err
	}
	return &goals[0], nil
}

// CreateGoal creates an active goal.
func (s *Service) CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error) {
	name, err := validateText("name", in.Name, 1, maxGoalNameLength)
	if err != nil {
		return nil, err
	}
	if err := validateTarget(in.TargetAmount); err != nil {
		return nil, err
	}

	now := s.clock()
	goal := models.Goal{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		TargetAmount: in.TargetAmount,
		Status:       models.GoalActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.commit(ctx, "create_goal", func() (*storage.ChangeSet, error) {
		cs := storage.NewChangeSet()
		cs.PutGoal(goal)
		return cs, nil
	})
	if err != nil {
		return nil, err
	}
	goal.Version++

	s.logger.InfoContext(ctx, "goal created", "user_id", userID, "goal_id", goal.ID, "target", goal.TargetAmount.String())
	return s.displayed(ctx, goal)
}

// UpdateGoal renames or retargets an active goal.
func (s *Service) UpdateGoal(ctx context.Context, userID, goalID string, in GoalUpdate) (*models.Goal, error) {
	var name string
	if in.Name != nil {
		var err error
		if name, err = validateText("name", *in.Name, 1, maxGoalNameLength); err != nil {
			return nil, err
		}
	}
	if in.TargetAmount != nil {
		if err := validateTarget(*in.TargetAmount); err != nil {
			return nil, err
		}
	}

	var updated models.Goal
	err := s.commit(ctx, "update_goal", func() (*storage.ChangeSet, error) {
		goal, err := s.ownedGoal(ctx, userID, goalID)
		if err != nil {
			return nil, err
		}
		if goal.Status != models.GoalActive {
			return nil, newError(ErrStateConflict, "goal %s is %s", goalID, goal.Status)
		}
		if in.Name != nil {
			goal.Name = name
		}
		if in.TargetAmount != nil {
			goal.TargetAmount = *in.TargetAmount
		}
		goal.UpdatedAt = s.clock()

		cs := storage.NewChangeSet()
		cs.PutGoal(*goal)
		updated = *goal
		updated.Version++
		return cs, nil
	})
	if err != nil {
		return nil, err
	}
	return s.displayed(ctx, updated)
}

// CancelGoal moves an active goal to cancelled. Its entries stay in the ledger.
func (s *Service) CancelGoal(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	var cancelled models.Goal
	err := s.commit(ctx, "cancel_goal", func() (*storage.ChangeSet, error) {
		goal, err := s.ownedGoal(ctx, userID, goalID)
		if err != nil {
			return nil, err
		}
		if goal.Status != models.GoalActive {
			return nil, newError(ErrStateConflict, "goal %s is %s", goalID, goal.Status)
		}
		goal.Status = models.GoalCancelled
		goal.UpdatedAt = s.clock()

		cs := storage.NewChangeSet()
		cs.PutGoal(*goal)
		cancelled = *goal
		cancelled.Version++
		return cs, nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "goal cancelled", "user_id", userID, "goal_id", goalID)
	return s.displayed(ctx, cancelled)
}

// DeleteGoal deletes a goal and cascades its ledger entries: save and
// complete_goal entries are reversed and deleted, pool entries are kept
// for their request's accounting and only lose the goal reference.
func (s *Service) DeleteGoal(ctx context.Context, userID, goalID string) error {
	var removed int
	err := s.commit(ctx, "delete_goal", func() (*storage.ChangeSet, error) {
		goal, err := s.ownedGoal(ctx, userID, goalID)
		if err != nil {
			return nil, err
		}
		entries, err := s.store.ListLedgerEntriesByGoal(ctx, goalID)
		if err != nil {
			return nil, fmt.Errorf("failed to list goal entries: %w", err)
		}
		if int64(len(entries)) != goal.EntryCount {
			return nil, staleRead("goal %s lists %d of %d entries", goalID, len(entries), goal.EntryCount)
		}

		cs := storage.NewChangeSet()
		var reversible []models.LedgerEntry
		for _, e := range entries {
			if e.Kind.IsPool() {
				cs.DetachEntry(e.ID)
				continue
			}
			reversible = append(reversible, e)
		}
		if err := s.reverseInto(ctx, cs, reversible, goalID); err != nil {
			return nil, err
		}
		cs.DeleteGoal(goal.ID, goal.Version)
		removed = len(reversible)
		return cs, nil
	})
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "goal deleted", "user_id", userID, "goal_id", goalID, "reversed_entries", removed)
	return nil
}

// GetGoal returns one of the user's goals.
func (s *Service) GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	return s.displayed(ctx, *goal)
}

// ListGoals returns the user's goals oldest first, optionally by status.
func (s *Service) ListGoals(ctx context.Context, userID string, status *models.GoalStatus) ([]models.Goal, error) {
	goals, err := s.store.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if status != nil {
		filtered := goals[:0]
		for _, g := range goals {
			if g.Status == *status {
				filtered = append(filtered, g)
			}
		}
		goals = filtered
	}
	if err := s.withDisplayedAmounts(ctx, userID, goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// CompleteGoal spends target_amount of this month's savings on the goal.
// The goal freezes at its target, the aggregate is debited and a negative
// complete_goal entry is appended, all in one commit.
func (s *Service) CompleteGoal(ctx context.Context, userID, goalID string) (*models.Goal, *models.LedgerEntry, error) {
	entryID := uuid.New().String()
	var completed models.Goal
	var entry models.LedgerEntry
	err := s.commit(ctx, "complete_goal", func() (*storage.ChangeSet, error) {
		goal, err := s.ownedGoal(ctx, userID, goalID)
		if err != nil {
			return nil, err
		}
		if goal.Status != models.GoalActive {
			return nil, newError(ErrStateConflict, "goal %s is %s", goalID, goal.Status)
		}

		now := s.clock()
		period := models.PeriodOf(now)
		agg, err := s.aggregate(ctx, userID, period)
		if err != nil {
			return nil, err
		}
		if agg.TotalSaved.LessThan(goal.TargetAmount) {
			return nil, newError(ErrInsufficientSavings, "goal needs %s but only %s is saved this month", goal.TargetAmount, agg.TotalSaved)
		}

		goal.Status = models.GoalCompleted
		goal.CompletedAmount = goal.TargetAmount
		goal.CompletedAt = &now
		goal.UpdatedAt = now
		goal.EntryCount++

		entry = models.LedgerEntry{
			ID:          entryID,
			UserID:      userID,
			GoalID:      &goal.ID,
			Amount:      goal.TargetAmount.Neg(),
			Kind:        models.KindCompleteGoal,
			Description: "Completed goal: " + goal.Name,
			Period:      period.Key(),
			CreatedAt:   now,
		}

		cs := storage.NewChangeSet()
		cs.PutGoal(*goal)
		cs.Debit(userID, period, goal.TargetAmount)
		cs.AppendEntry(entry)

		completed = *goal
		completed.Version++
		completed.CurrentAmount = goal.CompletedAmount
		return cs, nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.metrics.EntriesAppended.WithLabelValues(string(models.KindCompleteGoal)).Inc()
	s.logger.InfoContext(ctx, "goal completed", "user_id", userID, "goal_id", goalID, "amount", completed.CompletedAmount.String())
	return &completed, &entry, nil
}
