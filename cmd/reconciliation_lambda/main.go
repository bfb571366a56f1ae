package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/pooled-savings/pkg/bootstrap"
	"github.com/chris/pooled-savings/pkg/config"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/savings"
)

// Reconciler is the part of savings.Service the job uses.
type Reconciler interface {
	ReconcileAll(ctx context.Context, period models.Period) (*savings.ReconciliationReport, error)
	RepairAggregate(ctx context.Context, drift savings.AggregateDrift) error
}

// periodDetail optionally pins the month to check, e.g. {"year":2026,"month":9}.
type periodDetail struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type job struct {
	reconciler Reconciler
	repair     bool
	logger     *slog.Logger
	now        func() time.Time
}

// period picks the month named in the event detail, or the current month.
func (j *job) period(event events.CloudWatchEvent) models.Period {
	var detail periodDetail
	if len(event.Detail) > 0 {
		if err := json.Unmarshal(event.Detail, &detail); err != nil {
			j.logger.Warn("ignoring unreadable event detail", "error", err)
		}
	}
	if detail.Year != 0 && detail.Month != 0 {
		return models.Period{Year: detail.Year, Month: detail.Month}
	}
	return models.PeriodOf(j.now())
}

// HandleRequest is triggered by an EventBridge Schedule.
func (j *job) HandleRequest(ctx context.Context, event events.CloudWatchEvent) error {
	period := j.period(event)
	j.logger.InfoContext(ctx, "starting reconciliation", "period", period.Key(), "repair", j.repair)

	report, err := j.reconciler.ReconcileAll(ctx, period)
	if err != nil {
		j.logger.ErrorContext(ctx, "reconciliation failed", "period", period.Key(), "error", err)
		return err
	}

	repaired := 0
	if j.repair {
		for _, drift := range report.Aggregates {
			// One failed repair must not stop the rest; the next run retries it.
			if err := j.reconciler.RepairAggregate(ctx, drift); err != nil {
				j.logger.ErrorContext(ctx, "failed to repair aggregate", "user_id", drift.UserID, "error", err)
				continue
			}
			repaired++
		}
	}
	for _, drift := range report.Requests {
		j.logger.WarnContext(ctx, "request needs manual review", "request_id", drift.RequestID, "problem", drift.Problem)
	}

	j.logger.InfoContext(ctx, "reconciliation finished",
		"period", period.Key(),
		"aggregates_checked", report.AggregatesChecked,
		"requests_checked", report.RequestsChecked,
		"aggregate_drifts", len(report.Aggregates),
		"request_drifts", len(report.Requests),
		"repaired", repaired,
	)
	return nil
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

	j := &job{reconciler: app.Service, repair: cfg.AutoRepair, logger: app.Logger, now: time.Now}
	lambda.Start(j.HandleRequest)
}
