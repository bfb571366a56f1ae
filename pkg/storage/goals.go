package storage

import (
	"context"

	"github.com/chris/pooled-savings/pkg/models"
)

// GoalReader defines the interface for reading goals.
type GoalReader interface {
	GetGoal(ctx context.Context, goalID string) (*models.Goal, error)

	// ListGoalsByUser returns a user's goals ordered by creation time.
	ListGoalsByUser(ctx context.Context, userID string) ([]models.Goal, error)
}
