package savings

import (
	"context"
	"testing"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	total, err := f.svc.Snapshot(ctx, "user1", october)
	require.NoError(t, err)
	assert.Equal(t, "0.00", total.String())
	_, err = f.store.GetAggregate(ctx, "user1", october)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = f.svc.Snapshot(ctx, "user1", models.Period{Year: 2026, Month: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("Reports And Repairs Drift", func(t *testing.T) {
		f := newFixture(t)
		f.save(t, "user1", "30")
		f.save(t, "user2", "10")
		f.drift(t, "user1", "5")

		report, err := f.svc.ReconcileAll(ctx, october)
		require.NoError(t, err)
		assert.Equal(t, 2, report.AggregatesChecked)
		require.Len(t, report.Aggregates, 1)
		drift := report.Aggregates[0]
		assert.Equal(t, "user1", drift.UserID)
		assert.Equal(t, "30.00", drift.Ledger.String())
		assert.Equal(t, "35.00", drift.Cached.String())
		assert.Equal(t, "-5.00", drift.Difference().String())

		require.NoError(t, f.svc.RepairAggregate(ctx, drift))

		after, err := f.svc.Reconcile(ctx, "user1", october)
		require.NoError(t, err)
		assert.True(t, after.InSync())
		assert.Equal(t, "30.00", f.total(t, "user1"))
	})

	t.Run("Stale Repair Is Rejected", func(t *testing.T) {
		f := newFixture(t)
		f.save(t, "user1", "30")
		f.drift(t, "user1", "5")
		drift, err := f.svc.Reconcile(ctx, "user1", october)
		require.NoError(t, err)
		f.save(t, "user1", "1")

		err = f.svc.RepairAggregate(ctx, *drift)

		assert.ErrorIs(t, err, storage.ErrConflict)
		assert.Equal(t, "36.00", f.total(t, "user1"))
	})

	t.Run("Request Drift", func(t *testing.T) {
		f := newFixture(t)
		p := f.pool(t, "requester", "helper")
		f.save(t, "helper", "100")
		req, err := f.svc.CreateRequest(ctx, p.ID, "requester", money.FromInt(40), "help with the water bill")
		require.NoError(t, err)
		_, err = f.svc.Contribute(ctx, req.ID, "helper", amountPtr("10"))
		require.NoError(t, err)

		stored, err := f.store.GetRequest(ctx, req.ID)
		require.NoError(t, err)
		stored.CurrentAmount = money.FromInt(12)
		cs := storage.NewChangeSet()
		cs.PutRequest(*stored)
		require.NoError(t, f.store.Commit(ctx, cs))

		report, err := f.svc.ReconcileAll(ctx, october)
		require.NoError(t, err)
		require.Len(t, report.Requests, 1)
		assert.Equal(t, req.ID, report.Requests[0].RequestID)
		assert.Equal(t, "10.00", report.Requests[0].Contributions.String())
		assert.Equal(t, "12.00", report.Requests[0].CurrentAmount.String())
	})
}
