package storage

import (
	"context"

	"github.com/chris/pooled-savings/pkg/models"
)

// LedgerFilter narrows a ledger listing. Zero values mean "any".
type LedgerFilter struct {
	Kind   *models.EntryKind
	GoalID *string
	Period *models.Period
	Limit  int32
}

// Matches reports whether an entry passes the filter (the limit is not considered).
func (f LedgerFilter) Matches(e models.LedgerEntry) bool {
	if f.Kind != nil && e.Kind != *f.Kind {
		return false
	}
	if f.GoalID != nil && (e.GoalID == nil || *e.GoalID != *f.GoalID) {
		return false
	}
	if f.Period != nil && e.Period != f.Period.Key() {
		return false
	}
	return true
}

// LedgerReader defines the interface for reading ledger data.
type LedgerReader interface {
	// GetLedgerEntry retrieves a single entry by ID.
	GetLedgerEntry(ctx context.Context, entryID string) (*models.LedgerEntry, error)

	// ListLedgerEntriesByUser retrieves a user's entries, newest first.
	ListLedgerEntriesByUser(ctx context.Context, userID string, filter LedgerFilter) ([]models.LedgerEntry, error)

	// ListLedgerEntriesByGoal retrieves every entry tagged with a goal.
	ListLedgerEntriesByGoal(ctx context.Context, goalID string) ([]models.LedgerEntry, error)

	// ListLedgerEntriesByRequest retrieves every entry tagged with a pool request.
	ListLedgerEntriesByRequest(ctx context.Context, requestID string) ([]models.LedgerEntry, error)
}
