package notify

import (
	"context"
	"errors"
	"log/slog"
)

//go:generate mockery --name Publisher --output ./mocks --outpkg mocks

// Publisher delivers domain events to whatever sends notifications to users.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// PublishAll sends events in order. Events are best effort: a failure is
// logged and the remaining events are still sent.
func PublishAll(ctx context.Context, p Publisher, events []Event) {
	for _, e := range events {
		if err := p.Publish(ctx, e); err != nil {
			slog.WarnContext(ctx, "failed to publish event",
				slog.String("type", string(e.Type)),
				slog.String("user_id", e.UserID),
				slog.Any("error", err),
			)
		}
	}
}

// NoOpPublisher drops every event. It is used when no queue is configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}

// Fanout sends every event to each of its publishers, even when an earlier
// one fails.
type Fanout []Publisher

// Publish returns the joined errors of the publishers that failed.
func (f Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
