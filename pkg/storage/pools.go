package storage

import (
	"context"

	"github.com/chris/pooled-savings/pkg/models"
)

// PoolReader defines the interface for reading pools and their members.
type PoolReader interface {
	GetPool(ctx context.Context, poolID string) (*models.Pool, error)
	GetMembership(ctx context.Context, poolID, userID string) (*models.PoolMembership, error)
	ListMemberships(ctx context.Context, poolID string) ([]models.PoolMembership, error)
}

// RequestReader defines the interface for reading pool requests and contributions.
type RequestReader interface {
	GetRequest(ctx context.Context, requestID string) (*models.PoolRequest, error)

	// ListRequestsByPool returns a pool's requests ordered by creation time.
	ListRequestsByPool(ctx context.Context, poolID string) ([]models.PoolRequest, error)

	// ListRequestsByStatus returns every request currently in a status.
	ListRequestsByStatus(ctx context.Context, status models.RequestStatus) ([]models.PoolRequest, error)

	// ListContributions returns a request's contributions ordered by time.
	ListContributions(ctx context.Context, requestID string) ([]models.PoolContribution, error)
}
