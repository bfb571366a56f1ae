package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
)

type userPeriod struct {
	userID string
	period string
}

type poolUser struct {
	poolID string
	userID string
}

type userKey struct {
	userID string
	key    string
}

// Store is an in-process Storage guarded by a single mutex. Commit checks
// every precondition before applying anything, so a failed commit leaves
// no trace.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	entries           map[string]models.LedgerEntry
	aggregates        map[userPeriod]models.MonthlyAggregate
	goals             map[string]models.Goal
	pools             map[string]models.Pool
	memberships       map[poolUser]models.PoolMembership
	requests          map[string]models.PoolRequest
	contributions     map[string]models.PoolContribution
	progressions      map[userPeriod]models.ProgressionPeriod
	rewards           map[string]models.RewardDefinition
	redemptions       map[userKey]models.UserReward
	challenges        map[string]models.ChallengeDefinition
	challengeProgress map[userKey]models.UserChallengeProgress
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		now:               time.Now,
		entries:           map[string]models.LedgerEntry{},
		aggregates:        map[userPeriod]models.MonthlyAggregate{},
		goals:             map[string]models.Goal{},
		pools:             map[string]models.Pool{},
		memberships:       map[poolUser]models.PoolMembership{},
		requests:          map[string]models.PoolRequest{},
		contributions:     map[string]models.PoolContribution{},
		progressions:      map[userPeriod]models.ProgressionPeriod{},
		rewards:           map[string]models.RewardDefinition{},
		redemptions:       map[userKey]models.UserReward{},
		challenges:        map[string]models.ChallengeDefinition{},
		challengeProgress: map[userKey]models.UserChallengeProgress{},
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// ErrDuplicateItem is returned when a change set writes the same item twice.
var ErrDuplicateItem = errors.New("change set touches the same item twice")

func checkVersion(exists bool, stored, next int64) error {
	if next == 1 {
		if exists {
			return storage.ErrConflict
		}
		return nil
	}
	if !exists || stored != next-1 {
		return storage.ErrConflict
	}
	return nil
}

// Commit applies a change set atomically.
func (s *Store) Commit(ctx context.Context, cs *storage.ChangeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate(cs); err != nil {
		return err
	}
	s.apply(cs)
	return nil
}

func (s *Store) validate(cs *storage.ChangeSet) error {
	seen := map[string]bool{}
	touch := func(table, key string) error {
		k := table + "/" + key
		if seen[k] {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, k)
		}
		seen[k] = true
		return nil
	}

	for _, e := range cs.Entries {
		if err := touch("ledger", e.ID); err != nil {
			return err
		}
		if _, ok := s.entries[e.ID]; ok {
			return storage.ErrConflict
		}
	}
	for _, id := range append(slices.Clone(cs.EntryDeletes), cs.EntryDetaches...) {
		if err := touch("ledger", id); err != nil {
			return err
		}
		if _, ok := s.entries[id]; !ok {
			return storage.ErrConflict
		}
	}
	for _, a := range cs.Aggregates {
		if err := touch("aggregates", a.UserID+"#"+a.Period.Key()); err != nil {
			return err
		}
		cur, ok := s.aggregates[userPeriod{a.UserID, a.Period.Key()}]
		if a.ExpectedVersion != nil {
			if *a.ExpectedVersion == 0 && ok {
				return storage.ErrConflict
			}
			if *a.ExpectedVersion != 0 && (!ok || cur.Version != *a.ExpectedVersion) {
				return storage.ErrConflict
			}
		}
		if a.RequiresCover() && cur.TotalSaved.Add(a.Delta).IsNegative() {
			return storage.ErrConflict
		}
	}
	for _, g := range cs.Goals {
		if err := touch("goals", g.ID); err != nil {
			return err
		}
		cur, ok := s.goals[g.ID]
		if err := checkVersion(ok, cur.Version, g.Version); err != nil {
			return err
		}
	}
	for _, d := range cs.GoalDeletes {
		if err := touch("goals", d.ID); err != nil {
			return err
		}
		cur, ok := s.goals[d.ID]
		if !ok || cur.Version != d.Version {
			return storage.ErrConflict
		}
	}
	for _, p := range cs.Pools {
		if err := touch("pools", p.ID); err != nil {
			return err
		}
		cur, ok := s.pools[p.ID]
		if err := checkVersion(ok, cur.Version, p.Version); err != nil {
			return err
		}
	}
	for _, m := range cs.Memberships {
		if err := touch("memberships", m.PoolID+"#"+m.UserID); err != nil {
			return err
		}
		cur, ok := s.memberships[poolUser{m.PoolID, m.UserID}]
		if err := checkVersion(ok, cur.Version, m.Version); err != nil {
			return err
		}
	}
	for _, r := range cs.Requests {
		if err := touch("requests", r.ID); err != nil {
			return err
		}
		cur, ok := s.requests[r.ID]
		if err := checkVersion(ok, cur.Version, r.Version); err != nil {
			return err
		}
	}
	for _, d := range cs.RequestDeletes {
		if err := touch("requests", d.ID); err != nil {
			return err
		}
		cur, ok := s.requests[d.ID]
		if !ok || cur.Version != d.Version {
			return storage.ErrConflict
		}
	}
	for _, c := range cs.Contributions {
		if err := touch("contributions", c.ID); err != nil {
			return err
		}
		if _, ok := s.contributions[c.ID]; ok {
			return storage.ErrConflict
		}
	}
	for _, id := range cs.ContributionDeletes {
		if err := touch("contributions", id); err != nil {
			return err
		}
		if _, ok := s.contributions[id]; !ok {
			return storage.ErrConflict
		}
	}
	for _, p := range cs.Progressions {
		if err := touch("progression", p.UserID+"#"+p.Month); err != nil {
			return err
		}
		cur, ok := s.progressions[userPeriod{p.UserID, p.Month}]
		if err := checkVersion(ok, cur.Version, p.Version); err != nil {
			return err
		}
	}
	for _, r := range cs.Redemptions {
		if err := touch("user_rewards", r.UserID+"#"+r.RedemptionKey()); err != nil {
			return err
		}
		cur, ok := s.redemptions[userKey{r.UserID, r.RedemptionKey()}]
		if err := checkVersion(ok, cur.Version, r.Version); err != nil {
			return err
		}
	}
	for _, p := range cs.ChallengeProgress {
		if err := touch("challenge_progress", p.UserID+"#"+p.ChallengeID); err != nil {
			return err
		}
		cur, ok := s.challengeProgress[userKey{p.UserID, p.ChallengeID}]
		if err := checkVersion(ok, cur.Version, p.Version); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) apply(cs *storage.ChangeSet) {
	now := s.now()
	for _, e := range cs.Entries {
		s.entries[e.ID] = e
	}
	for _, id := range cs.EntryDeletes {
		delete(s.entries, id)
	}
	for _, id := range cs.EntryDetaches {
		e := s.entries[id]
		e.GoalID = nil
		s.entries[id] = e
	}
	for _, a := range cs.Aggregates {
		if a.Delta.IsZero() {
			continue
		}
		k := userPeriod{a.UserID, a.Period.Key()}
		cur, ok := s.aggregates[k]
		if !ok {
			cur = models.MonthlyAggregate{UserID: a.UserID, PeriodKey: a.Period.Key(), Month: a.Period.Month, Year: a.Period.Year}
		}
		cur.TotalSaved = cur.TotalSaved.Add(a.Delta)
		cur.Version++
		cur.UpdatedAt = now
		s.aggregates[k] = cur
	}
	for _, g := range cs.Goals {
		g.CurrentAmount = money.Zero
		s.goals[g.ID] = g
	}
	for _, d := range cs.GoalDeletes {
		delete(s.goals, d.ID)
	}
	for _, p := range cs.Pools {
		s.pools[p.ID] = p
	}
	for _, m := range cs.Memberships {
		s.memberships[poolUser{m.PoolID, m.UserID}] = m
	}
	for _, r := range cs.Requests {
		s.requests[r.ID] = r
	}
	for _, d := range cs.RequestDeletes {
		delete(s.requests, d.ID)
	}
	for _, c := range cs.Contributions {
		s.contributions[c.ID] = c
	}
	for _, id := range cs.ContributionDeletes {
		delete(s.contributions, id)
	}
	for _, p := range cs.Progressions {
		p.CompletedChallengeIDs = slices.Clone(p.CompletedChallengeIDs)
		s.progressions[userPeriod{p.UserID, p.Month}] = p
	}
	for _, r := range cs.Redemptions {
		s.redemptions[userKey{r.UserID, r.RedemptionKey()}] = r
	}
	for _, p := range cs.ChallengeProgress {
		s.challengeProgress[userKey{p.UserID, p.ChallengeID}] = p
	}
}

// GetLedgerEntry retrieves a single entry by ID.
func (s *Store) GetLedgerEntry(ctx context.Context, entryID string) (*models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[entryID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &e, nil
}

// ListLedgerEntriesByUser returns a user's entries, newest first.
func (s *Store) ListLedgerEntriesByUser(ctx context.Context, userID string, filter storage.LedgerFilter) ([]models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.LedgerEntry
	for _, e := range s.entries {
		if e.UserID == userID && filter.Matches(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > int(filter.Limit) {
		out = out[:filter.Limit]
	}
	return out, nil
}

// ListLedgerEntriesByGoal returns every entry tagged with a goal.
func (s *Store) ListLedgerEntriesByGoal(ctx context.Context, goalID string) ([]models.LedgerEntry, error) {
	return s.listEntries(func(e models.LedgerEntry) bool {
		return e.GoalID != nil && *e.GoalID == goalID
	}), nil
}

// ListLedgerEntriesByRequest returns every entry tagged with a pool request.
func (s *Store) ListLedgerEntriesByRequest(ctx context.Context, requestID string) ([]models.LedgerEntry, error) {
	return s.listEntries(func(e models.LedgerEntry) bool {
		return e.PoolRequestID != nil && *e.PoolRequestID == requestID
	}), nil
}

func (s *Store) listEntries(match func(models.LedgerEntry) bool) []models.LedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.LedgerEntry
	for _, e := range s.entries {
		if match(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// GetAggregate returns storage.ErrNotFound when no row exists.
func (s *Store) GetAggregate(ctx context.Context, userID string, period models.Period) (*models.MonthlyAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.aggregates[userPeriod{userID, period.Key()}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

// ListAggregates returns every aggregate row of a month.
func (s *Store) ListAggregates(ctx context.Context, period models.Period) ([]models.MonthlyAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MonthlyAggregate
	for k, a := range s.aggregates {
		if k.period == period.Key() {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

// GetGoal retrieves a goal by ID.
func (s *Store) GetGoal(ctx context.Context, goalID string) (*models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.goals[goalID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &g, nil
}

// ListGoalsByUser returns a user's goals ordered by creation time.
func (s *Store) ListGoalsByUser(ctx context.Context, userID string) ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// GetPool retrieves a pool by ID.
func (s *Store) GetPool(ctx context.Context, poolID string) (*models.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pools[poolID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

// GetMembership retrieves one user's membership in a pool.
func (s *Store) GetMembership(ctx context.Context, poolID, userID string) (*models.PoolMembership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.memberships[poolUser{poolID, userID}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &m, nil
}

// ListMemberships returns every membership of a pool, active or not.
func (s *Store) ListMemberships(ctx context.Context, poolID string) ([]models.PoolMembership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PoolMembership
	for k, m := range s.memberships {
		if k.poolID == poolID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

// GetRequest retrieves a pool request by ID.
func (s *Store) GetRequest(ctx context.Context, requestID string) (*models.PoolRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

// ListRequestsByPool returns a pool's requests ordered by creation time.
func (s *Store) ListRequestsByPool(ctx context.Context, poolID string) ([]models.PoolRequest, error) {
	return s.listRequests(func(r models.PoolRequest) bool { return r.PoolID == poolID }), nil
}

// ListRequestsByStatus returns every request in a status.
func (s *Store) ListRequestsByStatus(ctx context.Context, status models.RequestStatus) ([]models.PoolRequest, error) {
	return s.listRequests(func(r models.PoolRequest) bool { return r.Status == status }), nil
}

func (s *Store) listRequests(match func(models.PoolRequest) bool) []models.PoolRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PoolRequest
	for _, r := range s.requests {
		if match(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// ListContributions returns a request's contributions ordered by time.
func (s *Store) ListContributions(ctx context.Context, requestID string) ([]models.PoolContribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PoolContribution
	for _, c := range s.contributions {
		if c.RequestID == requestID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ContributedAt.Equal(out[j].ContributedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].ContributedAt.Before(out[j].ContributedAt)
	})
	return out, nil
}

// GetProgression returns storage.ErrNotFound when no record exists.
func (s *Store) GetProgression(ctx context.Context, userID, month string) (*models.ProgressionPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.progressions[userPeriod{userID, month}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	p.CompletedChallengeIDs = slices.Clone(p.CompletedChallengeIDs)
	return &p, nil
}

// GetReward retrieves a reward definition.
func (s *Store) GetReward(ctx context.Context, rewardID string) (*models.RewardDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rewards[rewardID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

// ListRewards returns every reward definition ordered by level.
func (s *Store) ListRewards(ctx context.Context) ([]models.RewardDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RewardDefinition, 0, len(s.rewards))
	for _, r := range s.rewards {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level == out[j].Level {
			return out[i].ID < out[j].ID
		}
		return out[i].Level < out[j].Level
	})
	return out, nil
}

// PutReward creates or replaces a reward definition.
func (s *Store) PutReward(ctx context.Context, reward *models.RewardDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewards[reward.ID] = *reward
	return nil
}

// GetUserReward retrieves a redemption by (user, reward, period).
func (s *Store) GetUserReward(ctx context.Context, userID, rewardID, periodID string) (*models.UserReward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.redemptions[userKey{userID, models.RedemptionKey(rewardID, periodID)}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

// ListUserRewards returns a user's redemptions, newest first.
func (s *Store) ListUserRewards(ctx context.Context, userID string) ([]models.UserReward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.UserReward
	for k, r := range s.redemptions {
		if k.userID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EarnedAt.After(out[j].EarnedAt) })
	return out, nil
}

// ListChallenges returns every challenge definition.
func (s *Store) ListChallenges(ctx context.Context) ([]models.ChallengeDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChallengeDefinition, 0, len(s.challenges))
	for _, c := range s.challenges {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// PutChallenge creates or replaces a challenge definition.
func (s *Store) PutChallenge(ctx context.Context, challenge *models.ChallengeDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.ID] = *challenge
	return nil
}

// ListChallengeProgress returns a user's challenge progress records.
func (s *Store) ListChallengeProgress(ctx context.Context, userID string) ([]models.UserChallengeProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.UserChallengeProgress
	for k, p := range s.challengeProgress {
		if k.userID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChallengeID < out[j].ChallengeID })
	return out, nil
}
