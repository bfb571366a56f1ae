package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/chris/pooled-savings/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC)

func newJob(svc *savings.Service, repair bool) *job {
	return &job{
		reconciler: svc,
		repair:     repair,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        func() time.Time { return fixedNow },
	}
}

func TestPeriod(t *testing.T) {
	j := newJob(nil, false)

	t.Run("Current Month By Default", func(t *testing.T) {
		assert.Equal(t, models.Period{Year: 2026, Month: 10}, j.period(events.CloudWatchEvent{}))
	})

	t.Run("Month From Detail", func(t *testing.T) {
		event := events.CloudWatchEvent{Detail: json.RawMessage(`{"year":2026,"month":9}`)}
		assert.Equal(t, models.Period{Year: 2026, Month: 9}, j.period(event))
	})

	t.Run("Unreadable Detail", func(t *testing.T) {
		event := events.CloudWatchEvent{Detail: json.RawMessage(`"nightly"`)}
		assert.Equal(t, models.Period{Year: 2026, Month: 10}, j.period(event))
	})
}

func TestHandleRequest(t *testing.T) {
	ctx := context.Background()
	october := models.Period{Year: 2026, Month: 10}

	setup := func(t *testing.T) *savings.Service {
		store := memory.New()
		svc := savings.New(store,
			savings.WithClock(func() time.Time { return fixedNow }),
			savings.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)
		_, err := svc.RecordSavings(ctx, "user1", money.FromInt(40))
		require.NoError(t, err)
		// A write outside the ledger leaves the aggregate drifting.
		cs := storage.NewChangeSet()
		cs.Credit("user1", october, money.FromInt(10))
		require.NoError(t, store.Commit(ctx, cs))
		return svc
	}

	t.Run("Report Only", func(t *testing.T) {
		// Arrange
		svc := setup(t)

		// Act
		err := newJob(svc, false).HandleRequest(ctx, events.CloudWatchEvent{})

		// Assert
		require.NoError(t, err)
		total, err := svc.Snapshot(ctx, "user1", october)
		require.NoError(t, err)
		assert.Equal(t, "50.00", total.String())
	})

	t.Run("Repair", func(t *testing.T) {
		// Arrange
		svc := setup(t)

		// Act
		err := newJob(svc, true).HandleRequest(ctx, events.CloudWatchEvent{})

		// Assert
		require.NoError(t, err)
		total, err := svc.Snapshot(ctx, "user1", october)
		require.NoError(t, err)
		assert.Equal(t, "40.00", total.String())

		report, err := svc.ReconcileAll(ctx, october)
		require.NoError(t, err)
		assert.True(t, report.Clean())
	})

	t.Run("Invalid Month", func(t *testing.T) {
		// Arrange
		svc := setup(t)
		event := events.CloudWatchEvent{Detail: json.RawMessage(`{"year":2026,"month":13}`)}

		// Act
		err := newJob(svc, true).HandleRequest(ctx, event)

		// Assert
		assert.Error(t, err)
	})
}
