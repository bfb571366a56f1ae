package mapping

import (
	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// toUUID converts a stored id. Ids are always generated as UUIDs, so a
// parse failure can only come from corrupt data and maps to the nil UUID.
func toUUID(id string) openapi_types.UUID {
	u, _ := uuid.Parse(id)
	return u
}

func toUUIDPtr(id *string) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := toUUID(*id)
	return &u
}

func mapAll[T, U any](in []T, fn func(*T) *U) []U {
	out := make([]U, len(in))
	for i := range in {
		out[i] = *fn(&in[i])
	}
	return out
}

// ToApiLedgerEntry converts a domain LedgerEntry model to an API LedgerEntry model.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	return &api.LedgerEntry{
		Id:                 toUUID(entry.ID),
		UserId:             entry.UserID,
		GoalId:             toUUIDPtr(entry.GoalID),
		Amount:             entry.Amount,
		Kind:               api.LedgerEntryKind(entry.Kind),
		PoolContributionId: toUUIDPtr(entry.PoolContributionID),
		PoolRequestId:      toUUIDPtr(entry.PoolRequestID),
		Description:        entry.Description,
		Points:             entry.Points,
		CreatedAt:          entry.CreatedAt,
	}
}

func ToApiLedgerEntries(entries []models.LedgerEntry) []api.LedgerEntry {
	return mapAll(entries, ToApiLedgerEntry)
}

// ToDomainNewEntry converts the request body of CreateLedgerEntry.
func ToDomainNewEntry(in *api.NewLedgerEntry) savings.NewEntry {
	entry := savings.NewEntry{Amount: in.Amount}
	if in.GoalId != nil {
		goalID := in.GoalId.String()
		entry.GoalID = &goalID
	}
	if in.Description != nil {
		entry.Description = *in.Description
	}
	return entry
}

// ToDomainLedgerFilter converts list query parameters. A period filter
// needs both year and month; the handler rejects one without the other.
func ToDomainLedgerFilter(params *api.ListLedgerEntriesParams) storage.LedgerFilter {
	var filter storage.LedgerFilter
	if params.Kind != nil {
		kind := models.EntryKind(*params.Kind)
		filter.Kind = &kind
	}
	if params.GoalId != nil {
		goalID := params.GoalId.String()
		filter.GoalID = &goalID
	}
	if params.Year != nil && params.Month != nil {
		filter.Period = &models.Period{Year: *params.Year, Month: *params.Month}
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	return filter
}

// ToApiSaveResult converts the outcome of a save or withdrawal.
func ToApiSaveResult(res *savings.SaveResult) *api.SaveResult {
	out := &api.SaveResult{
		Entry:        *ToApiLedgerEntry(&res.Entry),
		MonthlyTotal: res.Aggregate,
	}
	if res.Progress != nil {
		out.Progress = ToApiProgressUpdate(res.Progress)
	}
	return out
}

func ToApiProgressUpdate(update *savings.ProgressUpdate) *api.ProgressUpdate {
	return &api.ProgressUpdate{
		PreviousLevel:       update.PreviousLevel,
		Level:               update.Period.CurrentLevel,
		LeveledUp:           update.LeveledUp,
		PointsAwarded:       update.Points,
		UnlockedRewards:     ToApiRewards(update.UnlockedRewards),
		CompletedChallenges: ToApiChallenges(update.CompletedChallenges),
	}
}

// ToApiGoal converts a domain Goal model to an API Goal model.
func ToApiGoal(goal *models.Goal) *api.Goal {
	return &api.Goal{
		Id:            toUUID(goal.ID),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Status:        api.GoalStatus(goal.Status),
		CompletedAt:   goal.CompletedAt,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

func ToApiGoals(goals []models.Goal) []api.Goal {
	return mapAll(goals, ToApiGoal)
}

func ToDomainGoalInput(in *api.NewGoal) savings.GoalInput {
	return savings.GoalInput{Name: in.Name, TargetAmount: in.TargetAmount}
}

func ToDomainGoalUpdate(in *api.GoalUpdate) savings.GoalUpdate {
	return savings.GoalUpdate{Name: in.Name, TargetAmount: in.TargetAmount}
}

// ToApiPool converts a domain Pool model to an API Pool model.
func ToApiPool(pool *models.Pool) *api.Pool {
	return &api.Pool{
		Id:        toUUID(pool.ID),
		Name:      pool.Name,
		IsActive:  pool.IsActive,
		CreatedAt: pool.CreatedAt,
	}
}

func ToApiPoolMember(m *models.PoolMembership) *api.PoolMember {
	return &api.PoolMember{
		PoolId:   toUUID(m.PoolID),
		UserId:   m.UserID,
		Role:     api.PoolMemberRole(m.Role),
		IsActive: m.IsActive,
		JoinedAt: m.JoinedAt,
	}
}

func ToApiPoolMembers(members []models.PoolMembership) []api.PoolMember {
	return mapAll(members, ToApiPoolMember)
}

// ToApiPoolRequest converts a domain PoolRequest model to an API PoolRequest model.
func ToApiPoolRequest(req *models.PoolRequest) *api.PoolRequest {
	return &api.PoolRequest{
		Id:            toUUID(req.ID),
		PoolId:        toUUID(req.PoolID),
		RequesterId:   req.RequesterID,
		Amount:        req.Amount,
		CurrentAmount: req.CurrentAmount,
		Description:   req.Description,
		Status:        api.PoolRequestStatus(req.Status),
		Stranded:      req.Stranded,
		CompletedAt:   req.CompletedAt,
		CreatedAt:     req.CreatedAt,
	}
}

func ToApiPoolRequests(reqs []models.PoolRequest) []api.PoolRequest {
	return mapAll(reqs, ToApiPoolRequest)
}

func ToApiContribution(c *models.PoolContribution) *api.Contribution {
	return &api.Contribution{
		Id:            toUUID(c.ID),
		RequestId:     toUUID(c.RequestID),
		ContributorId: c.ContributorID,
		Amount:        c.Amount,
		ContributedAt: c.ContributedAt,
	}
}

func ToApiRequestDetail(view *savings.RequestView) *api.PoolRequestDetail {
	return &api.PoolRequestDetail{
		Request:       *ToApiPoolRequest(&view.Request),
		Contributions: mapAll(view.Contributions, ToApiContribution),
	}
}

func ToApiContributionResult(res *savings.ContributionResult) *api.ContributionResult {
	return &api.ContributionResult{
		Contribution: *ToApiContribution(&res.Contribution),
		Request:      *ToApiPoolRequest(&res.Request),
		Entry:        *ToApiLedgerEntry(&res.Entry),
		Completed:    res.Completed,
		Distribution: ToApiLedgerEntries(res.Distribution),
		Stranded:     res.Stranded,
	}
}

func ToApiCancellation(res *savings.CancellationResult) *api.RequestCancellation {
	return &api.RequestCancellation{
		Request: *ToApiPoolRequest(&res.Request),
		Refunds: ToApiLedgerEntries(res.Refunds),
	}
}

// ToApiProgress converts the current month's progression view.
func ToApiProgress(view *savings.ProgressView) *api.Progress {
	out := &api.Progress{
		Month:                 view.Period.Month,
		CurrentLevel:          view.Period.CurrentLevel,
		TotalSavings:          view.Period.TotalSavings,
		TotalPoints:           view.Period.TotalPoints,
		StreakDays:            view.Period.StreakDays,
		ProgressPercentage:    view.ProgressPercentage,
		NextLevel:             view.NextLevel,
		CompletedChallengeIds: append([]string{}, view.Period.CompletedChallengeIDs...),
		AvailableRewards:      ToApiRewards(view.AvailableRewards),
		Challenges:            mapAll(view.Challenges, ToApiChallengeProgress),
	}
	if view.NextLevel != nil {
		needed := view.NeededForNext
		out.NeededForNextLevel = &needed
	}
	return out
}

func ToApiReward(r *models.RewardDefinition) *api.Reward {
	return &api.Reward{
		Id:          r.ID,
		Level:       r.Level,
		MinSavings:  r.MinSavings,
		MaxSavings:  r.MaxSavings,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
	}
}

func ToApiRewards(rewards []models.RewardDefinition) []api.Reward {
	return mapAll(rewards, ToApiReward)
}

func ToApiUserReward(r *models.UserReward) *api.UserReward {
	return &api.UserReward{
		Id:       toUUID(r.ID),
		RewardId: r.RewardID,
		PeriodId: r.PeriodID,
		Status:   api.UserRewardStatus(r.Status),
		Code:     r.Code,
		EarnedAt: r.EarnedAt,
	}
}

func ToApiUserRewards(rewards []models.UserReward) []api.UserReward {
	return mapAll(rewards, ToApiUserReward)
}

func ToApiChallenge(c *models.ChallengeDefinition) *api.Challenge {
	return &api.Challenge{
		Id:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Metric:      api.ChallengeMetric(c.Metric),
		TargetValue: c.TargetValue,
		Points:      c.Points,
		ExpiresAt:   c.ExpiresAt,
	}
}

func ToApiChallenges(challenges []models.ChallengeDefinition) []api.Challenge {
	return mapAll(challenges, ToApiChallenge)
}

func ToApiChallengeProgress(p *models.UserChallengeProgress) *api.ChallengeProgress {
	return &api.ChallengeProgress{
		ChallengeId: p.ChallengeID,
		Progress:    p.Progress,
		Completed:   p.Completed,
		CompletedAt: p.CompletedAt,
	}
}
