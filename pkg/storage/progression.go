package storage

import (
	"context"

	"github.com/chris/pooled-savings/pkg/models"
)

// ProgressionReader defines the interface for reading progression periods.
type ProgressionReader interface {
	// GetProgression returns ErrNotFound when the user has no record for the month.
	GetProgression(ctx context.Context, userID, month string) (*models.ProgressionPeriod, error)
}

// RewardReader defines the interface for reading rewards and redemptions.
type RewardReader interface {
	GetReward(ctx context.Context, rewardID string) (*models.RewardDefinition, error)
	ListRewards(ctx context.Context) ([]models.RewardDefinition, error)
	GetUserReward(ctx context.Context, userID, rewardID, periodID string) (*models.UserReward, error)
	ListUserRewards(ctx context.Context, userID string) ([]models.UserReward, error)
}

// ChallengeReader defines the interface for reading challenges.
type ChallengeReader interface {
	ListChallenges(ctx context.Context) ([]models.ChallengeDefinition, error)
	ListChallengeProgress(ctx context.Context, userID string) ([]models.UserChallengeProgress, error)
}

// CatalogWriter maintains the reward and challenge definition tables.
// Definitions are reference data and are written outside of change sets.
type CatalogWriter interface {
	PutReward(ctx context.Context, reward *models.RewardDefinition) error
	PutChallenge(ctx context.Context, challenge *models.ChallengeDefinition) error
}
