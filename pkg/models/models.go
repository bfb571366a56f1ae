package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/chris/pooled-savings/pkg/money"
)

// EntryKind classifies a ledger entry.
type EntryKind string

const (
	KindSave             EntryKind = "save"
	KindCompleteGoal     EntryKind = "complete_goal"
	KindPoolContribution EntryKind = "pool_contribution"
	KindPoolReceive      EntryKind = "pool_receive"
)

// IsPool reports whether the entry belongs to a pool request's accounting.
func (k EntryKind) IsPool() bool {
	return k == KindPoolContribution || k == KindPoolReceive
}

// Period identifies a calendar month.
type Period struct {
	Year  int
	Month int
}

// PeriodOf returns the month containing t, in UTC.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Key is the sort key used for aggregates, e.g. "2026-10".
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// FirstDay is the progression period id format, e.g. "2026-10-01".
func (p Period) FirstDay() string {
	return p.Key() + "-01"
}

// Start returns midnight UTC of the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the period names a real month.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year > 0
}

func (p Period) String() string { return p.Key() }

// LedgerEntry is an immutable signed savings or withdrawal event.
type LedgerEntry struct {
	ID                 string       `json:"id" dynamodbav:"id"`
	UserID             string       `json:"user_id" dynamodbav:"user_id"`
	GoalID             *string      `json:"goal_id,omitempty" dynamodbav:"goal_id,omitempty"`
	Amount             money.Amount `json:"amount" dynamodbav:"amount"`
	Kind               EntryKind    `json:"kind" dynamodbav:"kind"`
	PoolContributionID *string      `json:"pool_contribution_id,omitempty" dynamodbav:"pool_contribution_id,omitempty"`
	PoolRequestID      *string      `json:"pool_request_id,omitempty" dynamodbav:"pool_request_id,omitempty"`
	Description        string       `json:"description" dynamodbav:"description"`
	// Points awarded to the progression period when the entry was recorded.
	Points    int64     `json:"points" dynamodbav:"points"`
	Period    string    `json:"period" dynamodbav:"period"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// EntryPeriod returns the month whose aggregate the entry touched.
func (e LedgerEntry) EntryPeriod() Period {
	return PeriodOf(e.CreatedAt)
}

// MonthlyAggregate is the per-user-per-month running savings balance.
type MonthlyAggregate struct {
	UserID     string       `json:"user_id" dynamodbav:"user_id"`
	PeriodKey  string       `json:"-" dynamodbav:"period"`
	Month      int          `json:"month" dynamodbav:"month"`
	Year       int          `json:"year" dynamodbav:"year"`
	TotalSaved money.Amount `json:"total_saved" dynamodbav:"total_saved"`
	Version    int64        `json:"version" dynamodbav:"version"`
	UpdatedAt  time.Time    `json:"updated_at" dynamodbav:"updated_at"`
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalCancelled GoalStatus = "cancelled"
)

// Goal is a named savings target.
type Goal struct {
	ID           string       `json:"id" dynamodbav:"id"`
	UserID       string       `json:"user_id" dynamodbav:"user_id"`
	Name         string       `json:"name" dynamodbav:"name"`
	TargetAmount money.Amount `json:"target_amount" dynamodbav:"target_amount"`
	// CurrentAmount is derived on read and never stored.
	CurrentAmount   money.Amount `json:"current_amount" dynamodbav:"-"`
	CompletedAmount money.Amount `json:"completed_amount" dynamodbav:"completed_amount"`
	Status          GoalStatus   `json:"status" dynamodbav:"status"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty" dynamodbav:"completed_at,omitempty"`
	// EntryCount is the number of ledger entries tagged with the goal.
	// Every write that tags or untags an entry bumps the goal's version.
	EntryCount int64     `json:"-" dynamodbav:"entry_count"`
	CreatedAt  time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" dynamodbav:"updated_at"`
	Version    int64     `json:"version" dynamodbav:"version"`
}

// DisplayedAmount computes the goal's current amount against the owner's
// aggregate for the month.
func (g Goal) DisplayedAmount(aggregate money.Amount) money.Amount {
	switch g.Status {
	case GoalCompleted:
		return g.CompletedAmount
	case GoalActive:
		if aggregate.IsNegative() {
			return money.Zero
		}
		return money.Min(aggregate, g.TargetAmount)
	default:
		return money.Zero
	}
}

// Pool is a named mutual-aid group.
type Pool struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Name      string    `json:"name" dynamodbav:"name"`
	IsActive  bool      `json:"is_active" dynamodbav:"is_active"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	Version   int64     `json:"version" dynamodbav:"version"`
}

// MemberRole is a pool member's role.
type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// PoolMembership links a user to a pool. One per (pool, user).
type PoolMembership struct {
	PoolID   string     `json:"pool_id" dynamodbav:"pool_id"`
	UserID   string     `json:"user_id" dynamodbav:"user_id"`
	Role     MemberRole `json:"role" dynamodbav:"role"`
	IsActive bool       `json:"is_active" dynamodbav:"is_active"`
	JoinedAt time.Time  `json:"joined_at" dynamodbav:"joined_at"`
	Version  int64      `json:"version" dynamodbav:"version"`
}

// RequestStatus is the lifecycle state of a pool request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestActive    RequestStatus = "active"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// PoolRequest is an ask for funds from a pool.
type PoolRequest struct {
	ID            string        `json:"id" dynamodbav:"id"`
	PoolID        string        `json:"pool_id" dynamodbav:"pool_id"`
	RequesterID   string        `json:"requester_id" dynamodbav:"requester_id"`
	Amount        money.Amount  `json:"amount" dynamodbav:"amount"`
	CurrentAmount money.Amount  `json:"current_amount" dynamodbav:"current_amount"`
	Description   string        `json:"description" dynamodbav:"description"`
	Status        RequestStatus `json:"status" dynamodbav:"status"`
	// Stranded is set when the request completed without any active goal
	// to receive the funds.
	Stranded    bool       `json:"stranded" dynamodbav:"stranded"`
	CompletedAt *time.Time `json:"completed_at,omitempty" dynamodbav:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" dynamodbav:"created_at"`
	Version     int64      `json:"version" dynamodbav:"version"`
}

// Remaining is the amount still needed to fill the request.
func (r PoolRequest) Remaining() money.Amount {
	return money.Max(r.Amount.Sub(r.CurrentAmount), money.Zero)
}

// PoolContribution is one member's payment toward a request.
type PoolContribution struct {
	ID            string       `json:"id" dynamodbav:"id"`
	RequestID     string       `json:"request_id" dynamodbav:"request_id"`
	ContributorID string       `json:"contributor_id" dynamodbav:"contributor_id"`
	Amount        money.Amount `json:"amount" dynamodbav:"amount"`
	ContributedAt time.Time    `json:"contributed_at" dynamodbav:"contributed_at"`
}

// ProgressionPeriod is the per-user-per-month level, points and streak record.
type ProgressionPeriod struct {
	ID                    string       `json:"id" dynamodbav:"id"`
	UserID                string       `json:"user_id" dynamodbav:"user_id"`
	Month                 string       `json:"month" dynamodbav:"month"`
	CurrentLevel          int          `json:"current_level" dynamodbav:"current_level"`
	TotalSavings          money.Amount `json:"total_savings" dynamodbav:"total_savings"`
	TotalPoints           int64        `json:"total_points" dynamodbav:"total_points"`
	StreakDays            int          `json:"streak_days" dynamodbav:"streak_days"`
	LastActivityDate      string       `json:"last_activity_date,omitempty" dynamodbav:"last_activity_date,omitempty"`
	CompletedChallengeIDs []string     `json:"completed_challenge_ids" dynamodbav:"completed_challenge_ids,stringset,omitempty"`
	Version               int64        `json:"version" dynamodbav:"version"`
}

// RewardStatus is the state of a redeemed reward.
type RewardStatus string

const (
	RewardAvailable RewardStatus = "available"
	RewardUsed      RewardStatus = "used"
	RewardExpired   RewardStatus = "expired"
)

// RewardDefinition is a reward unlocked by reaching a level.
type RewardDefinition struct {
	ID          string          `json:"id" dynamodbav:"id"`
	Level       int             `json:"level" dynamodbav:"level"`
	MinSavings  money.Amount    `json:"min_savings" dynamodbav:"min_savings"`
	MaxSavings  *money.Amount   `json:"max_savings,omitempty" dynamodbav:"max_savings,omitempty"`
	Title       string          `json:"title" dynamodbav:"title"`
	Description string          `json:"description" dynamodbav:"description"`
	Category    string          `json:"category" dynamodbav:"category"`
	Value       json.RawMessage `json:"value,omitempty" dynamodbav:"value,omitempty"`
	Active      bool            `json:"active" dynamodbav:"active"`
}

// UserReward is a redemption of a reward within one progression period.
type UserReward struct {
	ID       string       `json:"id" dynamodbav:"id"`
	UserID   string       `json:"user_id" dynamodbav:"user_id"`
	PeriodID string       `json:"period_id" dynamodbav:"period_id"`
	RewardID string       `json:"reward_id" dynamodbav:"reward_id"`
	EarnedAt time.Time    `json:"earned_at" dynamodbav:"earned_at"`
	Status   RewardStatus `json:"status" dynamodbav:"status"`
	Code     string       `json:"code" dynamodbav:"code"`
	Version  int64        `json:"version" dynamodbav:"version"`
}

// RedemptionKey is unique per (user, reward, period).
func (r UserReward) RedemptionKey() string {
	return RedemptionKey(r.RewardID, r.PeriodID)
}

// RedemptionKey builds the per-user sort key of a redemption.
func RedemptionKey(rewardID, periodID string) string {
	return rewardID + "#" + periodID
}

// ChallengeMetric selects what a challenge counts.
type ChallengeMetric string

const (
	MetricSavingsAmount ChallengeMetric = "savings_amount"
	MetricSavingsCount  ChallengeMetric = "savings_count"
	MetricStreakDays    ChallengeMetric = "streak_days"
)

// ChallengeDefinition is a target a user can reach for bonus points.
type ChallengeDefinition struct {
	ID          string          `json:"id" dynamodbav:"id"`
	Title       string          `json:"title" dynamodbav:"title"`
	Description string          `json:"description" dynamodbav:"description"`
	Metric      ChallengeMetric `json:"metric" dynamodbav:"metric"`
	TargetValue int64           `json:"target_value" dynamodbav:"target_value"`
	Points      int64           `json:"points" dynamodbav:"points"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty" dynamodbav:"expires_at,omitempty"`
	Active      bool            `json:"active" dynamodbav:"active"`
}

// UserChallengeProgress tracks one user's progress toward a challenge.
type UserChallengeProgress struct {
	UserID      string     `json:"user_id" dynamodbav:"user_id"`
	ChallengeID string     `json:"challenge_id" dynamodbav:"challenge_id"`
	Progress    int64      `json:"progress" dynamodbav:"progress"`
	Completed   bool       `json:"completed" dynamodbav:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty" dynamodbav:"completed_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" dynamodbav:"expires_at,omitempty"`
	Version     int64      `json:"version" dynamodbav:"version"`
}
