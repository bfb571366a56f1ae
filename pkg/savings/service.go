// Package savings implements the savings ledger, goals, mutual-aid pools and
// progression on top of a storage.Storage. Every operation reads current
// state, builds one storage.ChangeSet and commits it atomically; a commit
// rejected because state moved underneath it is rebuilt from fresh reads.
package savings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/pooled-savings/pkg/metrics"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
)

const (
	// DefaultMaxRetries bounds how often a conflicting commit is rebuilt.
	DefaultMaxRetries = 5
	// DefaultRetryBackoff is the delay before the first rebuild; later
	// rebuilds wait proportionally longer.
	DefaultRetryBackoff = 20 * time.Millisecond
)

// Service is the entry point for every savings operation.
type Service struct {
	store      storage.Storage
	now        func() time.Time
	logger     *slog.Logger
	metrics    *metrics.SavingsMetrics
	maxRetries int
	backoff    time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger replaces slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMaxRetries sets the conflict retry budget.
func WithMaxRetries(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithRetryBackoff sets the delay before the first rebuild. Zero retries
// immediately.
func WithRetryBackoff(d time.Duration) Option {
	return func(s *Service) { s.backoff = d }
}

// New creates a Service over store.
func New(store storage.Storage, opts ...Option) *Service {
	s := &Service{
		store:      store,
		now:        time.Now,
		logger:     slog.Default(),
		metrics:    metrics.NewSavingsMetrics(),
		maxRetries: DefaultMaxRetries,
		backoff:    DefaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}

// commit builds and commits a change set, rebuilding it from fresh reads
// whenever the store reports a conflict or build finds its reads
// inconsistent (a storage.ErrConflict from build). build returning a nil or
// empty change set ends the operation without a write.
func (s *Service) commit(ctx context.Context, op string, build func() (*storage.ChangeSet, error)) error {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		cs, err := build()
		if err != nil && !errors.Is(err, storage.ErrConflict) {
			return err
		}
		if err == nil {
			if cs == nil || cs.Empty() {
				return nil
			}
			if err = s.store.Commit(ctx, cs); err == nil {
				return nil
			}
		}
		if errors.Is(err, storage.ErrConflict) && attempt < s.maxRetries {
			s.metrics.CommitConflicts.WithLabelValues(op).Inc()
			s.logger.DebugContext(ctx, "commit conflict, retrying", "operation", op, "attempt", attempt+1, "error", err)
			if err := s.wait(ctx, attempt); err != nil {
				return err
			}
			continue
		}
		s.metrics.CommitFailures.WithLabelValues(op).Inc()
		s.logger.ErrorContext(ctx, "commit failed", "operation", op, "attempts", attempt+1, "error", err)
		return fmt.Errorf("%s: failed to commit changes: %w", op, err)
	}
}

// wait backs off linearly before the next attempt, giving secondary
// indexes time to catch up with the write that caused the conflict.
func (s *Service) wait(ctx context.Context, attempt int) error {
	if s.backoff <= 0 {
		return nil
	}
	timer := time.NewTimer(time.Duration(attempt+1) * s.backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// staleRead reports reads that disagree with each other, which happens
// when an index has not caught up with a recent write.
func staleRead(format string, args ...any) error {
	return fmt.Errorf("%w: %s", storage.ErrConflict, fmt.Sprintf(format, args...))
}

// aggregate returns the user's aggregate row for the period. A missing row
// comes back as an empty aggregate at version 0.
func (s *Service) aggregate(ctx context.Context, userID string, period models.Period) (models.MonthlyAggregate, error) {
	agg, err := s.store.GetAggregate(ctx, userID, period)
	if errors.Is(err, storage.ErrNotFound) {
		return models.MonthlyAggregate{UserID: userID, PeriodKey: period.Key(), Month: period.Month, Year: period.Year}, nil
	}
	if err != nil {
		return models.MonthlyAggregate{}, fmt.Errorf("failed to get aggregate: %w", err)
	}
	return *agg, nil
}

func validateAmount(field string, amount money.Amount) error {
	if amount.HasSubCentPrecision() {
		return newError(ErrValidation, "%s must not have more than two decimal places", field)
	}
	return nil
}

func validateText(field, value string, min, max int) (string, error) {
	value = strings.TrimSpace(value)
	n := len([]rune(value))
	if n < min {
		return "", newError(ErrValidation, "%s must be at least %d characters", field, min)
	}
	if max > 0 && n > max {
		return "", newError(ErrValidation, "%s must be at most %d characters", field, max)
	}
	return value, nil
}

// notFound converts storage.ErrNotFound into a NotFound business error.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, storage.ErrNotFound) {
		return newError(ErrNotFound, format, args...)
	}
	return err
}
