package savings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/chris/pooled-savings/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// laggingStore drops the newest item from the first few index listings,
// like a DynamoDB secondary index that has not caught up yet.
type laggingStore struct {
	*memory.Store
	mu    sync.Mutex
	lag   int
	calls int
}

func (s *laggingStore) stale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.calls <= s.lag
}

func (s *laggingStore) ListContributions(ctx context.Context, requestID string) ([]models.PoolContribution, error) {
	out, err := s.Store.ListContributions(ctx, requestID)
	if err != nil || len(out) == 0 || !s.stale() {
		return out, err
	}
	return out[:len(out)-1], nil
}

func (s *laggingStore) ListLedgerEntriesByGoal(ctx context.Context, goalID string) ([]models.LedgerEntry, error) {
	out, err := s.Store.ListLedgerEntriesByGoal(ctx, goalID)
	if err != nil || len(out) == 0 || !s.stale() {
		return out, err
	}
	return out[:len(out)-1], nil
}

func (f *fixture) lagging(lag int) (*Service, *laggingStore) {
	store := &laggingStore{Store: f.store, lag: lag}
	svc := New(store, WithClock(func() time.Time { return f.now }), WithLogger(quietLogger()), WithRetryBackoff(0), WithMaxRetries(3))
	return svc, store
}

func TestDeleteRequestWithLaggingIndex(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *models.PoolRequest) {
		f := newFixture(t)
		p := f.pool(t, "requester", "a", "b")
		f.save(t, "a", "100")
		f.save(t, "b", "60")
		req, err := f.svc.CreateRequest(ctx, p.ID, "requester", money.FromInt(100), "medical bills after surgery")
		require.NoError(t, err)
		_, err = f.svc.Contribute(ctx, req.ID, "a", amountPtr("40"))
		require.NoError(t, err)
		f.tick()
		_, err = f.svc.Contribute(ctx, req.ID, "b", amountPtr("25"))
		require.NoError(t, err)
		return f, req
	}

	t.Run("Rereads Until Every Contribution Is Listed", func(t *testing.T) {
		// Arrange
		f, req := setup(t)
		svc, store := f.lagging(2)

		// Act
		res, err := svc.DeleteRequest(ctx, req.ID, "requester")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 3, store.calls)
		assert.Len(t, res.Refunds, 2)
		assert.Equal(t, "100.00", f.total(t, "a"))
		assert.Equal(t, "60.00", f.total(t, "b"))
		contributions, err := f.store.ListContributions(ctx, req.ID)
		require.NoError(t, err)
		assert.Empty(t, contributions)
	})

	t.Run("Gives Up Without Writing", func(t *testing.T) {
		// Arrange
		f, req := setup(t)
		svc, _ := f.lagging(100)

		// Act
		_, err := svc.DeleteRequest(ctx, req.ID, "requester")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrConflict)
		assert.Equal(t, "internal_error", Code(err))
		assert.Equal(t, "60.00", f.total(t, "a"))
		assert.Equal(t, "35.00", f.total(t, "b"))
		stored, err := f.store.GetRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, "65.00", stored.CurrentAmount.String())
	})
}

func TestDeleteGoalWithLaggingIndex(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.goal(t, "user1", "Bike", "200")
	for _, amount := range []int64{40, 15} {
		_, err := f.svc.AppendEntry(ctx, "user1", NewEntry{Amount: money.FromInt(amount), GoalID: &g.ID})
		require.NoError(t, err)
		f.tick()
	}
	f.save(t, "user1", "10")
	svc, store := f.lagging(1)

	err := svc.DeleteGoal(ctx, "user1", g.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, store.calls)
	assert.Equal(t, "10.00", f.total(t, "user1"))
	entries, err := f.store.ListLedgerEntriesByGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcurrentContributions(t *testing.T) {
	ctx := context.Background()

	t.Run("Request Completes Once", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		contributors := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8"}
		p := f.pool(t, append([]string{"requester"}, contributors...)...)
		g := f.goal(t, "requester", "Rent", "500")
		for _, c := range contributors {
			f.save(t, c, "100")
		}
		req, err := f.svc.CreateRequest(ctx, p.ID, "requester", money.FromInt(30), "help with rent this month")
		require.NoError(t, err)
		svc := New(f.store, WithClock(func() time.Time { return f.now }), WithLogger(quietLogger()), WithRetryBackoff(0), WithMaxRetries(len(contributors)))

		// Act
		results := make([]*ContributionResult, len(contributors))
		errs := make([]error, len(contributors))
		var wg sync.WaitGroup
		for i, c := range contributors {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], errs[i] = svc.Contribute(ctx, req.ID, c, amountPtr("30"))
			}()
		}
		wg.Wait()

		// Assert
		completed := 0
		for i := range contributors {
			if errs[i] != nil {
				assert.ErrorIs(t, errs[i], ErrStateConflict)
				continue
			}
			assert.True(t, results[i].Completed)
			completed++
		}
		assert.Equal(t, 1, completed)

		stored, err := f.store.GetRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RequestCompleted, stored.Status)
		assert.Equal(t, "30.00", stored.CurrentAmount.String())

		entries, err := f.store.ListLedgerEntriesByRequest(ctx, req.ID)
		require.NoError(t, err)
		var received []models.LedgerEntry
		for _, e := range entries {
			if e.Kind == models.KindPoolReceive {
				received = append(received, e)
			}
		}
		require.Len(t, received, 1)
		assert.Equal(t, g.ID, *received[0].GoalID)
		assert.Equal(t, "30.00", received[0].Amount.String())

		report, err := f.svc.ReconcileAll(ctx, october)
		require.NoError(t, err)
		assert.True(t, report.Clean())
	})

	t.Run("Cancellation Excludes Contribution", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			// Arrange
			f := newFixture(t)
			p := f.pool(t, "requester", "a")
			f.save(t, "a", "100")
			req, err := f.svc.CreateRequest(ctx, p.ID, "requester", money.FromInt(30), "help with rent this month")
			require.NoError(t, err)

			// Act
			var contributeErr, deleteErr error
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, contributeErr = f.svc.Contribute(ctx, req.ID, "a", amountPtr("10"))
			}()
			go func() {
				defer wg.Done()
				_, deleteErr = f.svc.DeleteRequest(ctx, req.ID, "requester")
			}()
			wg.Wait()

			// Assert
			require.NoError(t, deleteErr)
			if contributeErr != nil {
				require.ErrorIs(t, contributeErr, ErrNotFound)
			}
			require.Equal(t, "100.00", f.total(t, "a"))
			contributions, err := f.store.ListContributions(ctx, req.ID)
			require.NoError(t, err)
			require.Empty(t, contributions)
			report, err := f.svc.ReconcileAll(ctx, october)
			require.NoError(t, err)
			require.True(t, report.Clean())
		}
	})

	t.Run("Goal Deletion Excludes Tagged Save", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			// Arrange
			f := newFixture(t)
			g := f.goal(t, "user1", "Bike", "200")
			f.save(t, "user1", "10")

			// Act
			var appendErr, deleteErr error
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, appendErr = f.svc.AppendEntry(ctx, "user1", NewEntry{Amount: money.FromInt(40), GoalID: &g.ID})
			}()
			go func() {
				defer wg.Done()
				deleteErr = f.svc.DeleteGoal(ctx, "user1", g.ID)
			}()
			wg.Wait()

			// Assert
			require.NoError(t, deleteErr)
			if appendErr != nil {
				require.True(t, errors.Is(appendErr, ErrValidation), "unexpected error: %v", appendErr)
			}
			require.Equal(t, "10.00", f.total(t, "user1"))
			entries, err := f.store.ListLedgerEntriesByGoal(ctx, g.ID)
			require.NoError(t, err)
			require.Empty(t, entries)
		}
	})
}
