package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/chris/pooled-savings/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore rejects every commit as if the table were unreachable.
type failingStore struct {
	*memory.Store
}

func (s failingStore) Commit(ctx context.Context, cs *storage.ChangeSet) error {
	return assert.AnError
}

func newConsumer(store storage.Storage) (*consumer, *savings.Service) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := savings.New(store,
		savings.WithClock(func() time.Time { return time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC) }),
		savings.WithLogger(logger),
	)
	return &consumer{recorder: svc, publisher: &notify.NoOpPublisher{}, logger: logger}, svc
}

func TestHandleRequest(t *testing.T) {
	ctx := context.Background()
	october := models.Period{Year: 2026, Month: 10}

	t.Run("Records Valid Events And Drops Rejections", func(t *testing.T) {
		// Arrange
		c, svc := newConsumer(memory.New())
		batch := events.SQSEvent{Records: []events.SQSMessage{
			{MessageId: "m-1", Body: `{"user_id":"user1","amount":"12.50","description":"round-up"}`},
			{MessageId: "m-2", Body: `{"user_id":"user1","amount":7.5}`},
			{MessageId: "m-3", Body: `not json`},
			{MessageId: "m-4", Body: `{"user_id":"user1","amount":0}`},
			{MessageId: "m-5", Body: `{"user_id":"","amount":3}`},
			{MessageId: "m-6", Body: `{"user_id":"user1","amount":1.005}`},
		}}

		// Act
		resp, err := c.HandleRequest(ctx, batch)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, resp.BatchItemFailures)
		total, err := svc.Snapshot(ctx, "user1", october)
		require.NoError(t, err)
		assert.Equal(t, "20.00", total.String())
	})

	t.Run("Redelivery Is Recorded Once", func(t *testing.T) {
		// Arrange
		c, svc := newConsumer(memory.New())
		message := events.SQSMessage{MessageId: "m-1", Body: `{"user_id":"user1","amount":10}`}
		sameEvent := events.SQSEvent{Records: []events.SQSMessage{
			{MessageId: "m-2", Body: `{"event_id":"bank-42","user_id":"user1","amount":5}`},
			{MessageId: "m-3", Body: `{"event_id":"bank-42","user_id":"user1","amount":5}`},
		}}

		// Act
		for i := 0; i < 2; i++ {
			resp, err := c.HandleRequest(ctx, events.SQSEvent{Records: []events.SQSMessage{message}})
			require.NoError(t, err)
			assert.Empty(t, resp.BatchItemFailures)
		}
		resp, err := c.HandleRequest(ctx, sameEvent)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, resp.BatchItemFailures)
		total, err := svc.Snapshot(ctx, "user1", october)
		require.NoError(t, err)
		assert.Equal(t, "15.00", total.String())
		entries, err := svc.ListByUser(ctx, "user1", storage.LedgerFilter{})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("Internal Errors Are Retried", func(t *testing.T) {
		// Arrange
		c, _ := newConsumer(failingStore{memory.New()})
		batch := events.SQSEvent{Records: []events.SQSMessage{
			{MessageId: "m-1", Body: `{"user_id":"user1","amount":10}`},
		}}

		// Act
		resp, err := c.HandleRequest(ctx, batch)

		// Assert
		require.NoError(t, err)
		require.Len(t, resp.BatchItemFailures, 1)
		assert.Equal(t, "m-1", resp.BatchItemFailures[0].ItemIdentifier)
	})
}
