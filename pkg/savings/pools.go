package savings

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/google/uuid"
)

// CreatePool creates a pool with the creator as its admin.
func (s *Service) CreatePool(ctx context.Context, creatorID, name string) (*models.Pool, *models.PoolMembership, error) {
	name, err := validateText("name", name, 3, 100)
	if err != nil {
		return nil, nil, err
	}
	now := s.clock()
	pool := models.Pool{ID: uuid.New().String(), Name: name, IsActive: true, CreatedAt: now}
	admin := models.PoolMembership{PoolID: pool.ID, UserID: creatorID, Role: models.RoleAdmin, IsActive: true, JoinedAt: now}

	err = s.commit(ctx, "create_pool", func() (*storage.ChangeSet, error) {
		cs := storage.NewChangeSet()
		cs.PutPool(pool)
		cs.PutMembership(admin)
		return cs, nil
	})
	if err != nil {
		return nil, nil, err
	}
	pool.Version++
	admin.Version++

	s.logger.InfoContext(ctx, "pool created", "pool_id", pool.ID, "creator_id", creatorID)
	return &pool, &admin, nil
}

// GetPool returns a pool.
func (s *Service) GetPool(ctx context.Context, poolID string) (*models.Pool, error) {
	pool, err := s.store.GetPool(ctx, poolID)
	if err != nil {
		return nil, notFound(err, "pool %s not found", poolID)
	}
	return pool, nil
}

// JoinPool makes the user an active member. Joining again is a no-op and
// a member who left is reactivated.
func (s *Service) JoinPool(ctx context.Context, poolID, userID string) (*models.PoolMembership, error) {
	var joined models.PoolMembership
	err := s.commit(ctx, "join_pool", func() (*storage.ChangeSet, error) {
		pool, err := s.GetPool(ctx, poolID)
		if err != nil {
			return nil, err
		}
		if !pool.IsActive {
			return nil, newError(ErrStateConflict, "pool %s is not active", poolID)
		}

		membership, err := s.store.GetMembership(ctx, poolID, userID)
		if errors.Is(err, storage.ErrNotFound) {
			membership = &models.PoolMembership{PoolID: poolID, UserID: userID, Role: models.RoleMember}
		} else if err != nil {
			return nil, fmt.Errorf("failed to get membership: %w", err)
		}
		if membership.IsActive {
			joined = *membership
			return nil, nil
		}
		membership.IsActive = true
		membership.JoinedAt = s.clock()

		cs := storage.NewChangeSet()
		cs.PutMembership(*membership)
		joined = *membership
		joined.Version++
		return cs, nil
	})
	if err != nil {
		return nil, err
	}
	return &joined, nil
}

// LeavePool deactivates the user's membership.
func (s *Service) LeavePool(ctx context.Context, poolID, userID string) error {
	return s.commit(ctx, "leave_pool", func() (*storage.ChangeSet, error) {
		membership, err := s.store.GetMembership(ctx, poolID, userID)
		if err != nil {
			return nil, notFound(err, "user is not a member of pool %s", poolID)
		}
		if !membership.IsActive {
			return nil, nil
		}
		membership.IsActive = false
		cs := storage.NewChangeSet()
		cs.PutMembership(*membership)
		return cs, nil
	})
}

// ListMembers returns the pool's active members. Only members may list them.
func (s *Service) ListMembers(ctx context.Context, poolID, userID string) ([]models.PoolMembership, error) {
	if err := s.requireMember(ctx, poolID, userID); err != nil {
		return nil, err
	}
	memberships, err := s.store.ListMemberships(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	active := memberships[:0]
	for _, m := range memberships {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active, nil
}

// requireMember fails with ErrForbidden unless the user is an active member.
func (s *Service) requireMember(ctx context.Context, poolID, userID string) error {
	membership, err := s.store.GetMembership(ctx, poolID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return newError(ErrForbidden, "user is not a member of pool %s", poolID)
	}
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if !membership.IsActive {
		return newError(ErrForbidden, "user is not an active member of pool %s", poolID)
	}
	return nil
}

func (s *Service) activeMemberCount(ctx context.Context, poolID string) (int, error) {
	memberships, err := s.store.ListMemberships(ctx, poolID)
	if err != nil {
		return 0, fmt.Errorf("failed to list memberships: %w", err)
	}
	n := 0
	for _, m := range memberships {
		if m.IsActive {
			n++
		}
	}
	return n, nil
}
