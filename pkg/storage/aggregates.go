package storage

import (
	"context"

	"github.com/chris/pooled-savings/pkg/models"
)

// AggregateReader defines the interface for reading monthly aggregates.
type AggregateReader interface {
	// GetAggregate retrieves a user's aggregate for a month. It returns
	// ErrNotFound when the user has no activity that month.
	GetAggregate(ctx context.Context, userID string, period models.Period) (*models.MonthlyAggregate, error)

	// ListAggregates retrieves every aggregate row of a month.
	ListAggregates(ctx context.Context, period models.Period) ([]models.MonthlyAggregate, error)
}
