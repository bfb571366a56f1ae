package savings

import (
	"context"
	"fmt"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
)

// Snapshot returns the user's saved total for a month, 0 when nothing was
// saved. It never creates a row.
func (s *Service) Snapshot(ctx context.Context, userID string, period models.Period) (money.Amount, error) {
	if !period.Valid() {
		return money.Zero, newError(ErrValidation, "invalid period %d-%d", period.Year, period.Month)
	}
	agg, err := s.aggregate(ctx, userID, period)
	if err != nil {
		return money.Zero, err
	}
	return agg.TotalSaved, nil
}

// AggregateDrift compares a cached monthly total with its ledger entries.
type AggregateDrift struct {
	UserID  string
	Period  models.Period
	Ledger  money.Amount
	Cached  money.Amount
	Version int64
}

// Difference is ledger minus cache.
func (d AggregateDrift) Difference() money.Amount {
	return d.Ledger.Sub(d.Cached)
}

// InSync reports whether cache and ledger agree.
func (d AggregateDrift) InSync() bool {
	return d.Ledger.Equal(d.Cached)
}

// RequestDrift is a pool request whose totals disagree with its rows.
type RequestDrift struct {
	RequestID     string
	Status        models.RequestStatus
	CurrentAmount money.Amount
	Contributions money.Amount
	// Received is the sum of pool_receive entries, checked for completed requests.
	Received money.Amount
	Problem  string
}

// ReconciliationReport is the result of ReconcileAll.
type ReconciliationReport struct {
	Period            models.Period
	AggregatesChecked int
	RequestsChecked   int
	Aggregates        []AggregateDrift
	Requests          []RequestDrift
}

// Clean reports whether nothing drifted.
func (r *ReconciliationReport) Clean() bool {
	return len(r.Aggregates) == 0 && len(r.Requests) == 0
}

// Reconcile sums a user's ledger entries for a month and compares the sum
// with the cached aggregate.
func (s *Service) Reconcile(ctx context.Context, userID string, period models.Period) (*AggregateDrift, error) {
	if !period.Valid() {
		return nil, newError(ErrValidation, "invalid period %d-%d", period.Year, period.Month)
	}
	entries, err := s.store.ListLedgerEntriesByUser(ctx, userID, storage.LedgerFilter{Period: &period})
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	agg, err := s.aggregate(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	drift := &AggregateDrift{UserID: userID, Period: period, Cached: agg.TotalSaved, Version: agg.Version}
	for _, e := range entries {
		drift.Ledger = drift.Ledger.Add(e.Amount)
	}
	return drift, nil
}

// RepairAggregate resets a drifting aggregate to its ledger sum, provided
// the row has not changed since it was reconciled.
func (s *Service) RepairAggregate(ctx context.Context, drift AggregateDrift) error {
	if drift.InSync() {
		return nil
	}
	cs := storage.NewChangeSet()
	cs.GuardAggregate(models.MonthlyAggregate{UserID: drift.UserID, Month: drift.Period.Month, Year: drift.Period.Year, Version: drift.Version})
	cs.Credit(drift.UserID, drift.Period, drift.Difference())
	if err := s.store.Commit(ctx, cs); err != nil {
		return fmt.Errorf("failed to repair aggregate for %s %s: %w", drift.UserID, drift.Period, err)
	}
	s.logger.WarnContext(ctx, "aggregate repaired", "user_id", drift.UserID, "period", drift.Period.Key(), "delta", drift.Difference().String())
	return nil
}

// ReconcileAll checks every aggregate of a month against the ledger, and
// every open or completed pool request against its contributions and
// distribution entries.
func (s *Service) ReconcileAll(ctx context.Context, period models.Period) (*ReconciliationReport, error) {
	if !period.Valid() {
		return nil, newError(ErrValidation, "invalid period %d-%d", period.Year, period.Month)
	}
	report := &ReconciliationReport{Period: period}

	aggregates, err := s.store.ListAggregates(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list aggregates: %w", err)
	}
	for _, agg := range aggregates {
		drift, err := s.Reconcile(ctx, agg.UserID, period)
		if err != nil {
			return nil, err
		}
		report.AggregatesChecked++
		if !drift.InSync() {
			report.Aggregates = append(report.Aggregates, *drift)
			s.metrics.ReconciliationDrift.WithLabelValues("aggregate").Inc()
			s.logger.WarnContext(ctx, "aggregate drift", "user_id", drift.UserID, "period", period.Key(), "ledger", drift.Ledger.String(), "cached", drift.Cached.String())
		}
	}

	for _, status := range []models.RequestStatus{models.RequestActive, models.RequestCompleted} {
		requests, err := s.store.ListRequestsByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s requests: %w", status, err)
		}
		for _, req := range requests {
			drift, err := s.reconcileRequest(ctx, req)
			if err != nil {
				return nil, err
			}
			report.RequestsChecked++
			if drift != nil {
				report.Requests = append(report.Requests, *drift)
				s.metrics.ReconciliationDrift.WithLabelValues("request").Inc()
				s.logger.WarnContext(ctx, "request drift", "request_id", req.ID, "problem", drift.Problem)
			}
		}
	}

	return report, nil
}

func (s *Service) reconcileRequest(ctx context.Context, req models.PoolRequest) (*RequestDrift, error) {
	contributions, err := s.store.ListContributions(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	drift := &RequestDrift{RequestID: req.ID, Status: req.Status, CurrentAmount: req.CurrentAmount}
	for _, c := range contributions {
		drift.Contributions = drift.Contributions.Add(c.Amount)
	}
	if !drift.Contributions.Equal(req.CurrentAmount) {
		drift.Problem = "contributions do not add up to current amount"
		return drift, nil
	}
	if req.CurrentAmount.GreaterThan(req.Amount) {
		drift.Problem = "current amount exceeds requested amount"
		return drift, nil
	}
	if req.Status != models.RequestCompleted {
		return nil, nil
	}
	if !req.CurrentAmount.Equal(req.Amount) {
		drift.Problem = "completed request is not fully funded"
		return drift, nil
	}
	if req.Stranded {
		return nil, nil
	}

	entries, err := s.store.ListLedgerEntriesByRequest(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list request entries: %w", err)
	}
	for _, e := range entries {
		if e.Kind == models.KindPoolReceive {
			drift.Received = drift.Received.Add(e.Amount)
		}
	}
	if !drift.Received.Equal(req.Amount) {
		drift.Problem = "distributed amount does not match requested amount"
		return drift, nil
	}
	return nil, nil
}
