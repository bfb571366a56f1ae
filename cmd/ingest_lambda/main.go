package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/pooled-savings/pkg/bootstrap"
	"github.com/chris/pooled-savings/pkg/config"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/google/uuid"
)

// entryNamespace scopes the ledger entry ids derived from savings events.
var entryNamespace = uuid.MustParse("6f1c2a8e-4b7d-4e0a-9c35-2d8f61b4a907")

// Recorder is the part of savings.Service the consumer uses.
type Recorder interface {
	AppendEntry(ctx context.Context, userID string, in savings.NewEntry) (*savings.SaveResult, error)
}

// savingsEvent is a save reported by an external channel such as a bank
// round-up or a payroll split.
type savingsEvent struct {
	// EventID lets a producer deduplicate across sends. When empty the SQS
	// message id is used, which covers redeliveries of the same message.
	EventID     string       `json:"event_id,omitempty"`
	UserID      string       `json:"user_id"`
	Amount      money.Amount `json:"amount"`
	GoalID      *string      `json:"goal_id,omitempty"`
	Description string       `json:"description"`
}

type consumer struct {
	recorder  Recorder
	publisher notify.Publisher
	logger    *slog.Logger
}

// HandleRequest records every message in the batch. Only messages that
// failed for reasons a retry could fix are reported back to SQS.
func (c *consumer) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		if err := c.process(ctx, message); err != nil {
			c.logger.ErrorContext(ctx, "failed to record savings event, will retry", "message_id", message.MessageId, "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
		}
	}
	return resp, nil
}

func (c *consumer) process(ctx context.Context, message events.SQSMessage) error {
	var event savingsEvent
	if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
		c.logger.WarnContext(ctx, "dropping malformed savings event", "message_id", message.MessageId, "error", err)
		return nil
	}
	if strings.TrimSpace(event.UserID) == "" {
		c.logger.WarnContext(ctx, "dropping savings event without a user", "message_id", message.MessageId)
		return nil
	}

	res, err := c.recorder.AppendEntry(ctx, event.UserID, savings.NewEntry{
		ID:          entryID(event, message),
		Amount:      event.Amount,
		GoalID:      event.GoalID,
		Description: event.Description,
	})
	if errors.Is(err, savings.ErrAlreadyRecorded) {
		c.logger.InfoContext(ctx, "savings event already recorded", "message_id", message.MessageId, "user_id", event.UserID)
		return nil
	}
	if err != nil {
		if code := savings.Code(err); code != "internal_error" {
			c.logger.WarnContext(ctx, "savings event rejected", "message_id", message.MessageId, "user_id", event.UserID, "code", code, "error", err)
			return nil
		}
		return fmt.Errorf("failed to append entry for %s: %w", event.UserID, err)
	}

	c.logger.InfoContext(ctx, "savings event recorded", "message_id", message.MessageId, "entry_id", res.Entry.ID, "user_id", event.UserID)
	notify.PublishAll(ctx, c.publisher, notify.ProgressEvents(event.UserID, res))
	return nil
}

// entryID derives a stable ledger entry id so a redelivered event maps to
// the entry its first delivery wrote.
func entryID(event savingsEvent, message events.SQSMessage) string {
	key := event.EventID
	if key == "" {
		key = message.MessageId
	}
	return uuid.NewSHA1(entryNamespace, []byte(key)).String()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	app, err := bootstrap.New(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to wire service", "error", err)
		os.Exit(1)
	}

	c := &consumer{recorder: app.Service, publisher: app.Publisher, logger: app.Logger}
	lambda.Start(c.HandleRequest)
}
