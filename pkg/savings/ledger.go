package savings

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/progression"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/google/uuid"
)

const maxDescriptionLength = 500

// NewEntry is a savings event or manual withdrawal recorded by a user.
type NewEntry struct {
	// ID is optional. Callers replaying events from an at-least-once source
	// set a stable ID so a second delivery fails with ErrAlreadyRecorded.
	ID          string
	Amount      money.Amount
	GoalID      *string
	Description string
}

// SaveResult is the outcome of AppendEntry.
type SaveResult struct {
	Entry     models.LedgerEntry
	Aggregate money.Amount
	// Progress is nil for withdrawals.
	Progress *ProgressUpdate
}

// AppendEntry records a save (positive amount) or a manual withdrawal
// (negative amount). A save credits the month's aggregate and advances
// progression in the same commit; a withdrawal only debits the aggregate.
func (s *Service) AppendEntry(ctx context.Context, userID string, in NewEntry) (*SaveResult, error) {
	if in.Amount.IsZero() {
		return nil, newError(ErrValidation, "amount must not be zero")
	}
	if err := validateAmount("amount", in.Amount); err != nil {
		return nil, err
	}
	description, err := validateText("description", in.Description, 0, maxDescriptionLength)
	if err != nil {
		return nil, err
	}

	entryID := in.ID
	if entryID == "" {
		entryID = uuid.New().String()
	}
	var result SaveResult
	err = s.commit(ctx, "append_entry", func() (*storage.ChangeSet, error) {
		if in.ID != "" {
			_, err := s.store.GetLedgerEntry(ctx, entryID)
			if err == nil {
				return nil, newError(ErrAlreadyRecorded, "ledger entry %s is already recorded", entryID)
			}
			if !errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("failed to get ledger entry: %w", err)
			}
		}

		cs := storage.NewChangeSet()
		if in.GoalID != nil {
			goal, err := s.store.GetGoal(ctx, *in.GoalID)
			if errors.Is(err, storage.ErrNotFound) || (err == nil && goal.UserID != userID) {
				return nil, newError(ErrValidation, "goal %s does not belong to the user", *in.GoalID)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to get goal: %w", err)
			}
			if goal.Status != models.GoalActive {
				return nil, newError(ErrStateConflict, "goal %s is %s", goal.ID, goal.Status)
			}
			cs.TagGoal(*goal, 1)
		}

		now := s.clock()
		period := models.PeriodOf(now)
		agg, err := s.aggregate(ctx, userID, period)
		if err != nil {
			return nil, err
		}

		entry := models.LedgerEntry{
			ID:          entryID,
			UserID:      userID,
			GoalID:      in.GoalID,
			Amount:      in.Amount,
			Kind:        models.KindSave,
			Description: description,
			Period:      period.Key(),
			CreatedAt:   now,
		}

		result = SaveResult{}
		if in.Amount.IsPositive() {
			cs.Credit(userID, period, in.Amount)
			update, err := s.advanceProgression(ctx, cs, userID, in.Amount, now)
			if err != nil {
				return nil, err
			}
			entry.Points = update.Points
			result.Progress = update
		} else {
			withdrawal := in.Amount.Neg()
			if agg.TotalSaved.LessThan(withdrawal) {
				return nil, newError(ErrInsufficientFunds, "cannot withdraw %s, only %s saved this month", withdrawal, agg.TotalSaved)
			}
			cs.Debit(userID, period, withdrawal)
		}
		cs.AppendEntry(entry)

		result.Entry = entry
		result.Aggregate = agg.TotalSaved.Add(in.Amount)
		return cs, nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EntriesAppended.WithLabelValues(string(models.KindSave)).Inc()
	s.logger.InfoContext(ctx, "ledger entry appended", "user_id", userID, "entry_id", entryID, "amount", in.Amount.String())
	s.observeProgress(ctx, userID, result.Progress)
	return &result, nil
}

// RecordSavings records a positive savings amount with no goal.
func (s *Service) RecordSavings(ctx context.Context, userID string, amount money.Amount) (*SaveResult, error) {
	if !amount.IsPositive() {
		return nil, newError(ErrValidation, "amount must be positive")
	}
	return s.AppendEntry(ctx, userID, NewEntry{Amount: amount})
}

// ReverseEntry applies the exact inverse of an entry to everything it
// touched and deletes it. Pool entries are unwound by DeleteRequest only.
func (s *Service) ReverseEntry(ctx context.Context, userID, entryID string) (*models.LedgerEntry, error) {
	var reversed models.LedgerEntry
	err := s.commit(ctx, "reverse_entry", func() (*storage.ChangeSet, error) {
		entry, err := s.store.GetLedgerEntry(ctx, entryID)
		if err != nil {
			return nil, notFound(err, "ledger entry %s not found", entryID)
		}
		if entry.UserID != userID {
			return nil, newError(ErrForbidden, "ledger entry %s belongs to another user", entryID)
		}
		if entry.Kind.IsPool() {
			return nil, newError(ErrStateConflict, "pool entries are reversed by cancelling their request")
		}

		cs := storage.NewChangeSet()
		if err := s.reverseInto(ctx, cs, []models.LedgerEntry{*entry}, ""); err != nil {
			return nil, err
		}
		reversed = *entry
		return cs, nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EntriesReversed.Inc()
	s.logger.InfoContext(ctx, "ledger entry reversed", "user_id", userID, "entry_id", entryID, "amount", reversed.Amount.String())
	return &reversed, nil
}

// reverseInto adds the reversal of save and complete_goal entries to cs.
// Aggregate and progression changes are merged per month. Each goal the
// entries were tagged with loses them from its entry count, and a
// complete_goal entry reopens its goal. skipGoalID names a goal the caller
// is deleting, which is left alone.
func (s *Service) reverseInto(ctx context.Context, cs *storage.ChangeSet, entries []models.LedgerEntry, skipGoalID string) error {
	type monthly struct {
		period  models.Period
		saved   money.Amount
		points  int64
		touched bool
	}
	var userID string
	months := map[models.Period]*monthly{}
	var order []models.Period
	goals := map[string]*models.Goal{}
	var goalOrder []string

	for _, e := range entries {
		userID = e.UserID
		period := e.EntryPeriod()
		m, ok := months[period]
		if !ok {
			m = &monthly{period: period}
			months[period] = m
			order = append(order, period)
		}

		if e.Amount.IsPositive() {
			cs.Debit(e.UserID, period, e.Amount)
		} else {
			cs.Credit(e.UserID, period, e.Amount.Neg())
		}
		if e.Kind == models.KindSave && e.Amount.IsPositive() {
			m.saved = m.saved.Add(e.Amount)
			m.points += e.Points
			m.touched = true
		}
		cs.DeleteEntry(e.ID)

		if e.GoalID == nil || *e.GoalID == skipGoalID {
			continue
		}
		goal, ok := goals[*e.GoalID]
		if !ok {
			g, err := s.store.GetGoal(ctx, *e.GoalID)
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to get goal: %w", err)
			}
			goal = g
			goals[goal.ID] = goal
			goalOrder = append(goalOrder, goal.ID)
		}
		goal.EntryCount--
		if e.Kind == models.KindCompleteGoal && goal.Status == models.GoalCompleted {
			goal.Status = models.GoalActive
			goal.CompletedAmount = money.Zero
			goal.CompletedAt = nil
			goal.UpdatedAt = s.clock()
		}
	}
	for _, id := range goalOrder {
		cs.PutGoal(*goals[id])
	}

	for _, period := range order {
		delta := cs.AggregateDelta(userID, period)
		if delta.IsNegative() {
			agg, err := s.aggregate(ctx, userID, period)
			if err != nil {
				return err
			}
			if agg.TotalSaved.Add(delta).IsNegative() {
				return newError(ErrInsufficientFunds, "reversal needs %s but only %s is saved for %s", delta.Neg(), agg.TotalSaved, period)
			}
		}

		m := months[period]
		if !m.touched {
			continue
		}
		p, err := s.store.GetProgression(ctx, userID, period.FirstDay())
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to get progression: %w", err)
		}
		cs.PutProgression(progression.Retract(*p, m.saved, m.points))
	}
	return nil
}

// ListByUser returns a user's entries, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string, filter storage.LedgerFilter) ([]models.LedgerEntry, error) {
	if filter.Period != nil && !filter.Period.Valid() {
		return nil, newError(ErrValidation, "invalid period")
	}
	if filter.Limit < 0 {
		return nil, newError(ErrValidation, "limit must not be negative")
	}
	entries, err := s.store.ListLedgerEntriesByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}
