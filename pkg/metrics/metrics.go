package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SavingsMetrics holds all Prometheus metrics for the savings core.
type SavingsMetrics struct {
	// Ledger metrics
	EntriesAppended *prometheus.CounterVec
	EntriesReversed prometheus.Counter

	// Commit metrics
	CommitConflicts *prometheus.CounterVec
	CommitFailures  *prometheus.CounterVec

	// Pool metrics
	Contributions          prometheus.Counter
	RequestsCompleted      prometheus.Counter
	RequestsCancelled      prometheus.Counter
	StrandedDistributions  prometheus.Counter
	DistributedAmountCents prometheus.Counter

	// Progression metrics
	LevelUps            *prometheus.CounterVec
	RewardsRedeemed     prometheus.Counter
	ChallengesCompleted *prometheus.CounterVec

	// Reconciliation metrics
	ReconciliationDrift *prometheus.CounterVec
}

var (
	savingsMetricsOnce sync.Once
	savingsMetrics     *SavingsMetrics
)

// NewSavingsMetrics creates and registers the savings metrics (singleton pattern)
func NewSavingsMetrics() *SavingsMetrics {
	savingsMetricsOnce.Do(func() {
		savingsMetrics = &SavingsMetrics{
			EntriesAppended: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "ledger",
					Name:      "entries_appended_total",
					Help:      "Ledger entries appended by kind",
				},
				[]string{"kind"},
			),
			EntriesReversed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "ledger",
					Name:      "entries_reversed_total",
					Help:      "Ledger entries reversed",
				},
			),
			CommitConflicts: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "store",
					Name:      "commit_conflicts_total",
					Help:      "Commits rejected by a version or balance condition, by operation",
				},
				[]string{"operation"},
			),
			CommitFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "store",
					Name:      "commit_failures_total",
					Help:      "Commits that failed after exhausting retries or with a store error, by operation",
				},
				[]string{"operation"},
			),
			Contributions: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "pools",
					Name:      "contributions_total",
					Help:      "Pool contributions recorded",
				},
			),
			RequestsCompleted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "pools",
					Name:      "requests_completed_total",
					Help:      "Pool requests filled and distributed",
				},
			),
			RequestsCancelled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "pools",
					Name:      "requests_cancelled_total",
					Help:      "Pool requests deleted with refunds",
				},
			),
			StrandedDistributions: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "pools",
					Name:      "stranded_distributions_total",
					Help:      "Completed requests whose requester had no active goal",
				},
			),
			DistributedAmountCents: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "pools",
					Name:      "distributed_cents_total",
					Help:      "Cents distributed to requesters' goals",
				},
			),
			LevelUps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "progression",
					Name:      "level_ups_total",
					Help:      "Level increases by new level",
				},
				[]string{"level"},
			),
			RewardsRedeemed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "progression",
					Name:      "rewards_redeemed_total",
					Help:      "Rewards redeemed",
				},
			),
			ChallengesCompleted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "progression",
					Name:      "challenges_completed_total",
					Help:      "Challenges completed by challenge",
				},
				[]string{"challenge"},
			),
			ReconciliationDrift: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pooled_savings",
					Subsystem: "reconciliation",
					Name:      "drift_total",
					Help:      "Cached totals that disagree with the ledger, by kind",
				},
				[]string{"kind"},
			),
		}
	})
	return savingsMetrics
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
