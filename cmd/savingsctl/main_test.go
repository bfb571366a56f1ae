package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/chris/pooled-savings/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedCmd(t *testing.T) {
	out, err := execute(t, "seed", "--storage-backend", "memory")

	require.NoError(t, err)
	assert.Equal(t, "seeded 7 rewards and 3 challenges\n", out)
}

func TestReconcileCmd(t *testing.T) {
	t.Run("Empty Store", func(t *testing.T) {
		out, err := execute(t, "reconcile", "--year", "2026", "--month", "9")

		require.NoError(t, err)
		assert.Contains(t, out, "2026-09: 0 aggregates and 0 requests checked")
		assert.Contains(t, out, "no drift found")
	})

	t.Run("Invalid Month", func(t *testing.T) {
		_, err := execute(t, "reconcile", "--year", "2026", "--month", "13")

		assert.Error(t, err)
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		_, err := execute(t, "reconcile", "--storage-backend", "postgres")

		assert.ErrorContains(t, err, `unknown storage backend "postgres"`)
	})
}

func TestRunReconcile(t *testing.T) {
	ctx := context.Background()
	period := models.Period{Year: 2026, Month: 10}
	store := memory.New()
	svc := savings.New(store,
		savings.WithClock(func() time.Time { return time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC) }),
		savings.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	_, err := svc.RecordSavings(ctx, "user1", money.FromInt(40))
	require.NoError(t, err)
	// A cached total that lost 15.00 without a ledger entry.
	cs := storage.NewChangeSet()
	cs.Debit("user1", period, money.FromInt(15))
	require.NoError(t, store.Commit(ctx, cs))

	var out bytes.Buffer
	require.NoError(t, runReconcile(ctx, svc, period, true, &out))

	assert.Contains(t, out.String(), "1 aggregates and 0 requests checked")
	assert.Regexp(t, `user1\s+40.00\s+25.00\s+15.00\s+yes`, out.String())
	total, err := svc.Snapshot(ctx, "user1", period)
	require.NoError(t, err)
	assert.Equal(t, "40.00", total.String())
}
