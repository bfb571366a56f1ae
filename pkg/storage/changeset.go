package storage

import (
	"context"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
)

// Committer defines the highly-privileged interface for atomic writes.
// A ChangeSet touches several tables (ledger, aggregates, goals, requests,
// progression) and must be applied entirely or not at all.
type Committer interface {
	// Commit applies every change in cs atomically. It returns ErrConflict
	// when a version guard or balance cover check fails.
	Commit(ctx context.Context, cs *ChangeSet) error
}

// AggregateChange adds Delta to a user's monthly aggregate, creating the row
// when it does not exist.
type AggregateChange struct {
	UserID string
	Period models.Period
	Delta  money.Amount
	// ExpectedVersion, when set, requires the row to still be at that
	// version (0 means the row must not exist yet).
	ExpectedVersion *int64
}

// RequiresCover reports whether the row must hold at least -Delta.
func (c AggregateChange) RequiresCover() bool {
	return c.Delta.IsNegative()
}

// VersionedKey identifies an item to delete and the version it must have.
type VersionedKey struct {
	ID      string
	Version int64
}

// ChangeSet is a unit of work. Versioned items carry their new version:
// version 1 creates the item, any later version requires the stored item
// to be at version-1.
type ChangeSet struct {
	Entries       []models.LedgerEntry
	EntryDeletes  []string
	EntryDetaches []string

	Aggregates []AggregateChange

	Goals       []models.Goal
	GoalDeletes []VersionedKey

	Pools       []models.Pool
	Memberships []models.PoolMembership

	Requests            []models.PoolRequest
	RequestDeletes      []VersionedKey
	Contributions       []models.PoolContribution
	ContributionDeletes []string

	Progressions      []models.ProgressionPeriod
	Redemptions       []models.UserReward
	ChallengeProgress []models.UserChallengeProgress
}

// NewChangeSet returns an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{}
}

// AppendEntry adds a new ledger entry.
func (cs *ChangeSet) AppendEntry(e models.LedgerEntry) {
	cs.Entries = append(cs.Entries, e)
}

// DeleteEntry removes a ledger entry.
func (cs *ChangeSet) DeleteEntry(entryID string) {
	cs.EntryDeletes = append(cs.EntryDeletes, entryID)
}

// DetachEntry clears an entry's goal reference.
func (cs *ChangeSet) DetachEntry(entryID string) {
	cs.EntryDetaches = append(cs.EntryDetaches, entryID)
}

func (cs *ChangeSet) aggregate(userID string, period models.Period) *AggregateChange {
	for i := range cs.Aggregates {
		if cs.Aggregates[i].UserID == userID && cs.Aggregates[i].Period == period {
			return &cs.Aggregates[i]
		}
	}
	cs.Aggregates = append(cs.Aggregates, AggregateChange{UserID: userID, Period: period})
	return &cs.Aggregates[len(cs.Aggregates)-1]
}

// Credit adds amount to the aggregate. Changes to the same row are merged.
func (cs *ChangeSet) Credit(userID string, period models.Period, amount money.Amount) {
	c := cs.aggregate(userID, period)
	c.Delta = c.Delta.Add(amount)
}

// Debit subtracts amount from the aggregate. The commit fails if the row
// would go negative.
func (cs *ChangeSet) Debit(userID string, period models.Period, amount money.Amount) {
	c := cs.aggregate(userID, period)
	c.Delta = c.Delta.Sub(amount)
}

// GuardAggregate requires the aggregate to still be at the version it was read at.
func (cs *ChangeSet) GuardAggregate(agg models.MonthlyAggregate) {
	c := cs.aggregate(agg.UserID, models.Period{Year: agg.Year, Month: agg.Month})
	v := agg.Version
	c.ExpectedVersion = &v
}

// PutGoal creates or replaces a goal read at g.Version.
func (cs *ChangeSet) PutGoal(g models.Goal) {
	g.Version++
	cs.Goals = append(cs.Goals, g)
}

// TagGoal adds delta to the entry count of g. The goal is written at the
// version it was read at unless the change set already carries it.
func (cs *ChangeSet) TagGoal(g models.Goal, delta int64) {
	for i := range cs.Goals {
		if cs.Goals[i].ID == g.ID {
			cs.Goals[i].EntryCount += delta
			return
		}
	}
	g.EntryCount += delta
	cs.PutGoal(g)
}

// DeleteGoal removes a goal read at version.
func (cs *ChangeSet) DeleteGoal(goalID string, version int64) {
	cs.GoalDeletes = append(cs.GoalDeletes, VersionedKey{ID: goalID, Version: version})
}

// PutPool creates or replaces a pool.
func (cs *ChangeSet) PutPool(p models.Pool) {
	p.Version++
	cs.Pools = append(cs.Pools, p)
}

// PutMembership creates or replaces a membership.
func (cs *ChangeSet) PutMembership(m models.PoolMembership) {
	m.Version++
	cs.Memberships = append(cs.Memberships, m)
}

// PutRequest creates or replaces a pool request.
func (cs *ChangeSet) PutRequest(r models.PoolRequest) {
	r.Version++
	cs.Requests = append(cs.Requests, r)
}

// DeleteRequest removes a pool request read at version.
func (cs *ChangeSet) DeleteRequest(requestID string, version int64) {
	cs.RequestDeletes = append(cs.RequestDeletes, VersionedKey{ID: requestID, Version: version})
}

// AddContribution records a new contribution.
func (cs *ChangeSet) AddContribution(c models.PoolContribution) {
	cs.Contributions = append(cs.Contributions, c)
}

// DeleteContribution removes a contribution.
func (cs *ChangeSet) DeleteContribution(contributionID string) {
	cs.ContributionDeletes = append(cs.ContributionDeletes, contributionID)
}

// PutProgression creates or replaces a progression period.
func (cs *ChangeSet) PutProgression(p models.ProgressionPeriod) {
	p.Version++
	cs.Progressions = append(cs.Progressions, p)
}

// PutRedemption creates or replaces a user reward.
func (cs *ChangeSet) PutRedemption(r models.UserReward) {
	r.Version++
	cs.Redemptions = append(cs.Redemptions, r)
}

// PutChallengeProgress creates or replaces a user's challenge progress.
func (cs *ChangeSet) PutChallengeProgress(p models.UserChallengeProgress) {
	p.Version++
	cs.ChallengeProgress = append(cs.ChallengeProgress, p)
}

// Len is the number of item writes the change set produces.
func (cs *ChangeSet) Len() int {
	n := len(cs.Entries) + len(cs.EntryDeletes) + len(cs.EntryDetaches) +
		len(cs.Goals) + len(cs.GoalDeletes) + len(cs.Pools) + len(cs.Memberships) +
		len(cs.Requests) + len(cs.RequestDeletes) + len(cs.Contributions) + len(cs.ContributionDeletes) +
		len(cs.Progressions) + len(cs.Redemptions) + len(cs.ChallengeProgress)
	for _, a := range cs.Aggregates {
		if !a.Delta.IsZero() || a.ExpectedVersion != nil {
			n++
		}
	}
	return n
}

// Empty reports whether the change set writes nothing.
func (cs *ChangeSet) Empty() bool {
	return cs.Len() == 0
}

// AggregateDelta returns the merged delta for one aggregate row.
func (cs *ChangeSet) AggregateDelta(userID string, period models.Period) money.Amount {
	for _, a := range cs.Aggregates {
		if a.UserID == userID && a.Period == period {
			return a.Delta
		}
	}
	return money.Zero
}

// EntriesOfKind returns the new entries of one kind.
func (cs *ChangeSet) EntriesOfKind(kind models.EntryKind) []models.LedgerEntry {
	var out []models.LedgerEntry
	for _, e := range cs.Entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
