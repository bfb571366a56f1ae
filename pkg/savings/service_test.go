package savings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/chris/pooled-savings/pkg/storage/memory"
	"github.com/chris/pooled-savings/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	day     = time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC)
	october = models.Period{Year: 2026, Month: 10}
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

type fixture struct {
	store *memory.Store
	svc   *Service
	now   time.Time
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t testingT) *fixture {
	t.Helper()
	f := &fixture{store: memory.New(), now: day}
	f.svc = New(f.store, WithClock(func() time.Time { return f.now }), WithLogger(quietLogger()), WithRetryBackoff(0))
	return f
}

// tick moves the clock forward so listings ordered by time are stable.
func (f *fixture) tick() {
	f.now = f.now.Add(time.Second)
}

func (f *fixture) save(t testingT, userID, amount string) *SaveResult {
	t.Helper()
	res, err := f.svc.RecordSavings(context.Background(), userID, money.MustParse(amount))
	require.NoError(t, err)
	f.tick()
	return res
}

func (f *fixture) goal(t testingT, userID, name, target string) *models.Goal {
	t.Helper()
	g, err := f.svc.CreateGoal(context.Background(), userID, GoalInput{Name: name, TargetAmount: money.MustParse(target)})
	require.NoError(t, err)
	f.tick()
	return g
}

func (f *fixture) total(t testingT, userID string) string {
	t.Helper()
	total, err := f.svc.Snapshot(context.Background(), userID, models.PeriodOf(f.now))
	require.NoError(t, err)
	return total.String()
}

// pool creates a pool owned by the first user and joins the rest.
func (f *fixture) pool(t testingT, users ...string) *models.Pool {
	t.Helper()
	ctx := context.Background()
	p, _, err := f.svc.CreatePool(ctx, users[0], "Neighbours")
	require.NoError(t, err)
	for _, u := range users[1:] {
		_, err := f.svc.JoinPool(ctx, p.ID, u)
		require.NoError(t, err)
	}
	return p
}

// drift moves a cached total without a ledger entry, the way a partial
// failure outside the service would.
func (f *fixture) drift(t testingT, userID, delta string) {
	t.Helper()
	cs := storage.NewChangeSet()
	cs.Credit(userID, models.PeriodOf(f.now), money.MustParse(delta))
	require.NoError(t, f.store.Commit(context.Background(), cs))
}

func amountPtr(s string) *money.Amount {
	a := money.MustParse(s)
	return &a
}

func TestCommitRetries(t *testing.T) {
	ctx := context.Background()

	t.Run("Conflict Then Success", func(t *testing.T) {
		store := new(mocks.Storage)
		store.On("Commit", mock.Anything, mock.Anything).Return(storage.ErrConflict).Once()
		store.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
		svc := New(store, WithLogger(quietLogger()))

		pool, admin, err := svc.CreatePool(ctx, "user1", "Neighbours")

		require.NoError(t, err)
		assert.Equal(t, "Neighbours", pool.Name)
		assert.Equal(t, models.RoleAdmin, admin.Role)
		store.AssertNumberOfCalls(t, "Commit", 2)
	})

	t.Run("Retry Budget Exhausted", func(t *testing.T) {
		store := new(mocks.Storage)
		store.On("Commit", mock.Anything, mock.Anything).Return(storage.ErrConflict)
		svc := New(store, WithLogger(quietLogger()), WithMaxRetries(2))

		_, _, err := svc.CreatePool(ctx, "user1", "Neighbours")

		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrConflict)
		assert.Equal(t, "internal_error", Code(err))
		store.AssertNumberOfCalls(t, "Commit", 3)
	})

	t.Run("Store Failure Is Not Retried", func(t *testing.T) {
		store := new(mocks.Storage)
		store.On("Commit", mock.Anything, mock.Anything).Return(errors.New("throttled"))
		svc := New(store, WithLogger(quietLogger()))

		_, _, err := svc.CreatePool(ctx, "user1", "Neighbours")

		assert.EqualError(t, err, "create_pool: failed to commit changes: throttled")
		store.AssertNumberOfCalls(t, "Commit", 1)
	})

	t.Run("Validation Never Reaches The Store", func(t *testing.T) {
		store := new(mocks.Storage)
		svc := New(store, WithLogger(quietLogger()))

		_, _, err := svc.CreatePool(ctx, "user1", "ab")

		assert.ErrorIs(t, err, ErrValidation)
		store.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
	})
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{newError(ErrValidation, "bad"), "validation_error"},
		{newError(ErrContributionTooLarge, "big"), "contribution_too_large"},
		{newError(ErrAlreadyRedeemed, "again"), "already_redeemed"},
		{storage.ErrConflict, "internal_error"},
		{errors.New("boom"), "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
