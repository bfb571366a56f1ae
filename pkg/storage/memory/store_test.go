package memory

import (
	"context"
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var october = models.Period{Year: 2026, Month: 10}

func TestCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := New()
		cs := storage.NewChangeSet()
		cs.AppendEntry(models.LedgerEntry{ID: "e1", UserID: "user1", Amount: money.FromInt(30), Kind: models.KindSave, Period: october.Key()})
		cs.Credit("user1", october, money.FromInt(30))
		cs.PutGoal(models.Goal{ID: "g1", UserID: "user1", TargetAmount: money.FromInt(100), Status: models.GoalActive})

		require.NoError(t, store.Commit(ctx, cs))

		agg, err := store.GetAggregate(ctx, "user1", october)
		require.NoError(t, err)
		assert.Equal(t, "30.00", agg.TotalSaved.String())
		assert.Equal(t, int64(1), agg.Version)

		goal, err := store.GetGoal(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), goal.Version)

		_, err = store.GetLedgerEntry(ctx, "e1")
		assert.NoError(t, err)
	})

	t.Run("Stale Version Applies Nothing", func(t *testing.T) {
		store := New()
		create := storage.NewChangeSet()
		create.PutGoal(models.Goal{ID: "g1", UserID: "user1", Status: models.GoalActive})
		require.NoError(t, store.Commit(ctx, create))

		stale := storage.NewChangeSet()
		stale.AppendEntry(models.LedgerEntry{ID: "e1", UserID: "user1"})
		stale.Credit("user1", october, money.FromInt(10))
		stale.PutGoal(models.Goal{ID: "g1", UserID: "user1", Status: models.GoalCompleted, Version: 0})

		err := store.Commit(ctx, stale)

		assert.ErrorIs(t, err, storage.ErrConflict)
		_, err = store.GetLedgerEntry(ctx, "e1")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.GetAggregate(ctx, "user1", october)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Debit Without Cover", func(t *testing.T) {
		store := New()
		credit := storage.NewChangeSet()
		credit.Credit("user1", october, money.FromInt(20))
		require.NoError(t, store.Commit(ctx, credit))

		debit := storage.NewChangeSet()
		debit.Debit("user1", october, money.FromInt(21))

		assert.ErrorIs(t, store.Commit(ctx, debit), storage.ErrConflict)

		agg, err := store.GetAggregate(ctx, "user1", october)
		require.NoError(t, err)
		assert.Equal(t, "20.00", agg.TotalSaved.String())
	})

	t.Run("Guarded Aggregate", func(t *testing.T) {
		store := New()
		credit := storage.NewChangeSet()
		credit.Credit("user1", october, money.FromInt(20))
		require.NoError(t, store.Commit(ctx, credit))
		agg, err := store.GetAggregate(ctx, "user1", october)
		require.NoError(t, err)

		// Someone else writes in between.
		require.NoError(t, store.Commit(ctx, credit))

		guarded := storage.NewChangeSet()
		guarded.GuardAggregate(*agg)
		guarded.Debit("user1", october, money.FromInt(5))

		assert.ErrorIs(t, store.Commit(ctx, guarded), storage.ErrConflict)
	})

	t.Run("Duplicate Item", func(t *testing.T) {
		store := New()
		cs := storage.NewChangeSet()
		cs.AppendEntry(models.LedgerEntry{ID: "e1"})
		cs.AppendEntry(models.LedgerEntry{ID: "e1"})

		assert.ErrorIs(t, store.Commit(ctx, cs), ErrDuplicateItem)
	})

	t.Run("Detach Entry", func(t *testing.T) {
		store := New()
		goalID := "g1"
		cs := storage.NewChangeSet()
		cs.AppendEntry(models.LedgerEntry{ID: "e1", UserID: "user1", GoalID: &goalID})
		require.NoError(t, store.Commit(ctx, cs))

		detach := storage.NewChangeSet()
		detach.DetachEntry("e1")
		require.NoError(t, store.Commit(ctx, detach))

		entry, err := store.GetLedgerEntry(ctx, "e1")
		require.NoError(t, err)
		assert.Nil(t, entry.GoalID)
		byGoal, err := store.ListLedgerEntriesByGoal(ctx, "g1")
		require.NoError(t, err)
		assert.Empty(t, byGoal)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		store := New()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, store.Commit(cctx, storage.NewChangeSet()), context.Canceled)
	})
}

func TestListLedgerEntriesByUser(t *testing.T) {
	ctx := context.Background()
	store := New()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	cs := storage.NewChangeSet()
	for i, kind := range []models.EntryKind{models.KindSave, models.KindCompleteGoal, models.KindSave} {
		cs.AppendEntry(models.LedgerEntry{
			ID:        string(rune('a' + i)),
			UserID:    "user1",
			Kind:      kind,
			Period:    october.Key(),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	cs.AppendEntry(models.LedgerEntry{ID: "other", UserID: "user2", Kind: models.KindSave, CreatedAt: base})
	require.NoError(t, store.Commit(ctx, cs))

	t.Run("Newest First", func(t *testing.T) {
		entries, err := store.ListLedgerEntriesByUser(ctx, "user1", storage.LedgerFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "c", entries[0].ID)
		assert.Equal(t, "a", entries[2].ID)
	})

	t.Run("Kind And Limit", func(t *testing.T) {
		kind := models.KindSave
		entries, err := store.ListLedgerEntriesByUser(ctx, "user1", storage.LedgerFilter{Kind: &kind, Limit: 1})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "c", entries[0].ID)
	})
}

func TestUserRewards(t *testing.T) {
	ctx := context.Background()
	store := New()

	cs := storage.NewChangeSet()
	cs.PutRedemption(models.UserReward{ID: "ur1", UserID: "user1", RewardID: "r1", PeriodID: "p1", Status: models.RewardAvailable})
	require.NoError(t, store.Commit(ctx, cs))

	t.Run("Found", func(t *testing.T) {
		reward, err := store.GetUserReward(ctx, "user1", "r1", "p1")

		require.NoError(t, err)
		assert.Equal(t, "ur1", reward.ID)
	})

	t.Run("Second Redemption Conflicts", func(t *testing.T) {
		again := storage.NewChangeSet()
		again.PutRedemption(models.UserReward{ID: "ur2", UserID: "user1", RewardID: "r1", PeriodID: "p1"})

		assert.ErrorIs(t, store.Commit(ctx, again), storage.ErrConflict)
	})
}
