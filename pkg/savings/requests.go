package savings

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/pooled-savings/pkg/allocation"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/google/uuid"
)

var minRequestAmount = money.FromInt(5)

const (
	minRequestDescription = 10
	maxRequestDescription = 500
)

// RequestView is a request together with its contributions.
type RequestView struct {
	Request       models.PoolRequest
	Contributions []models.PoolContribution
}

// ContributionResult is the outcome of Contribute.
type ContributionResult struct {
	Contribution models.PoolContribution
	Request      models.PoolRequest
	Entry        models.LedgerEntry
	Completed    bool
	// Distribution holds the pool_receive entries written on completion.
	Distribution []models.LedgerEntry
	// Stranded is set when the request completed but the requester had no
	// active goal to receive the funds.
	Stranded bool
}

// CancellationResult is the outcome of DeleteRequest.
type CancellationResult struct {
	Request models.PoolRequest
	Refunds []models.LedgerEntry
}

// CreateRequest opens an active request for funds in a pool.
func (s *Service) CreateRequest(ctx context.Context, poolID, requesterID string, amount money.Amount, description string) (*models.PoolRequest, error) {
	if amount.LessThan(minRequestAmount) {
		return nil, newError(ErrValidation, "amount must be at least %s", minRequestAmount)
	}
	if err := validateAmount("amount", amount); err != nil {
		return nil, err
	}
	description, err := validateText("description", description, minRequestDescription, maxRequestDescription)
	if err != nil {
		return nil, err
	}

	pool, err := s.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !pool.IsActive {
		return nil, newError(ErrStateConflict, "pool %s is not active", poolID)
	}
	if err := s.requireMember(ctx, poolID, requesterID); err != nil {
		return nil, err
	}

	req := models.PoolRequest{
		ID:          uuid.New().String(),
		PoolID:      poolID,
		RequesterID: requesterID,
		Amount:      amount,
		Description: description,
		Status:      models.RequestActive,
		CreatedAt:   s.clock(),
	}
	err = s.commit(ctx, "create_request", func() (*storage.ChangeSet, error) {
		cs := storage.NewChangeSet()
		cs.PutRequest(req)
		return cs, nil
	})
	if err != nil {
		return nil, err
	}
	req.Version++

	s.logger.InfoContext(ctx, "pool request created", "request_id", req.ID, "pool_id", poolID, "requester_id", requesterID, "amount", amount.String())
	return &req, nil
}

// GetRequest returns a request and its contributions to a pool member.
func (s *Service) GetRequest(ctx context.Context, userID, requestID string) (*RequestView, error) {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, notFound(err, "request %s not found", requestID)
	}
	if err := s.requireMember(ctx, req.PoolID, userID); err != nil {
		return nil, err
	}
	contributions, err := s.store.ListContributions(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	return &RequestView{Request: *req, Contributions: contributions}, nil
}

// ListRequests returns a pool's requests oldest first, optionally by status.
func (s *Service) ListRequests(ctx context.Context, poolID, userID string, status *models.RequestStatus) ([]models.PoolRequest, error) {
	if _, err := s.GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, poolID, userID); err != nil {
		return nil, err
	}
	requests, err := s.store.ListRequestsByPool(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	if status == nil {
		return requests, nil
	}
	filtered := requests[:0]
	for _, r := range requests {
		if r.Status == *status {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// SuggestContribution returns the advisory amount contributorID should put
// toward a request.
func (s *Service) SuggestContribution(ctx context.Context, requestID, contributorID string) (money.Amount, error) {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return money.Zero, notFound(err, "request %s not found", requestID)
	}
	if req.Status != models.RequestActive {
		return money.Zero, newError(ErrStateConflict, "request %s is %s", requestID, req.Status)
	}
	members, err := s.activeMemberCount(ctx, req.PoolID)
	if err != nil {
		return money.Zero, err
	}
	agg, err := s.aggregate(ctx, contributorID, models.PeriodOf(s.clock()))
	if err != nil {
		return money.Zero, err
	}
	return allocation.Suggest(req.Remaining(), members, agg.TotalSaved), nil
}

// Contribute moves amount from the contributor's savings into a request.
// A nil amount uses the suggestion. When the contribution fills the
// request it completes and the requested amount is distributed across the
// requester's active goals, all in the same commit.
func (s *Service) Contribute(ctx context.Context, requestID, contributorID string, amount *money.Amount) (*ContributionResult, error) {
	if amount != nil {
		if !amount.IsPositive() {
			return nil, newError(ErrValidation, "amount must be positive")
		}
		if err := validateAmount("amount", *amount); err != nil {
			return nil, err
		}
	}

	contributionID := uuid.New().String()
	entryID := uuid.New().String()
	var result ContributionResult
	err := s.commit(ctx, "contribute", func() (*storage.ChangeSet, error) {
		req, err := s.store.GetRequest(ctx, requestID)
		if err != nil {
			return nil, notFound(err, "request %s not found", requestID)
		}
		if req.Status != models.RequestActive {
			return nil, newError(ErrStateConflict, "request %s is %s", requestID, req.Status)
		}
		if req.RequesterID == contributorID {
			return nil, newError(ErrForbidden, "requesters cannot fund their own request")
		}
		if err := s.requireMember(ctx, req.PoolID, contributorID); err != nil {
			return nil, err
		}

		now := s.clock()
		period := models.PeriodOf(now)
		agg, err := s.aggregate(ctx, contributorID, period)
		if err != nil {
			return nil, err
		}

		var value money.Amount
		if amount != nil {
			value = *amount
		} else {
			members, err := s.activeMemberCount(ctx, req.PoolID)
			if err != nil {
				return nil, err
			}
			value = allocation.Suggest(req.Remaining(), members, agg.TotalSaved)
			if !value.IsPositive() {
				return nil, newError(ErrInsufficientFunds, "nothing available to contribute, %s saved this month", agg.TotalSaved)
			}
		}

		if value.GreaterThan(allocation.Ceiling(req.Remaining(), agg.TotalSaved)) {
			return nil, newError(ErrContributionTooLarge, "contribution of %s exceeds the limit: %s remaining, %s saved this month", value, req.Remaining(), agg.TotalSaved)
		}
		if agg.TotalSaved.LessThan(value) {
			return nil, newError(ErrInsufficientFunds, "cannot contribute %s, only %s saved this month", value, agg.TotalSaved)
		}

		contribution := models.PoolContribution{
			ID:            contributionID,
			RequestID:     req.ID,
			ContributorID: contributorID,
			Amount:        value,
			ContributedAt: now,
		}
		entry := models.LedgerEntry{
			ID:                 entryID,
			UserID:             contributorID,
			Amount:             value.Neg(),
			Kind:               models.KindPoolContribution,
			PoolContributionID: &contribution.ID,
			PoolRequestID:      &req.ID,
			Description:        "Pool contribution: " + req.Description,
			Period:             period.Key(),
			CreatedAt:          now,
		}

		cs := storage.NewChangeSet()
		cs.AddContribution(contribution)
		cs.GuardAggregate(agg)
		cs.Debit(contributorID, period, value)
		cs.AppendEntry(entry)

		result = ContributionResult{Contribution: contribution, Entry: entry}
		req.CurrentAmount = req.CurrentAmount.Add(value)
		if req.CurrentAmount.Equal(req.Amount) {
			req.Status = models.RequestCompleted
			req.CompletedAt = &now
			result.Completed = true
			if err := s.distribute(ctx, cs, req, &result); err != nil {
				return nil, err
			}
		}
		cs.PutRequest(*req)

		result.Request = *req
		result.Request.Version++
		return cs, nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Contributions.Inc()
	s.metrics.EntriesAppended.WithLabelValues(string(models.KindPoolContribution)).Inc()
	s.logger.InfoContext(ctx, "contribution recorded", "request_id", requestID, "contributor_id", contributorID, "amount", result.Contribution.Amount.String())

	if result.Completed {
		s.metrics.RequestsCompleted.Inc()
		if result.Stranded {
			s.metrics.StrandedDistributions.Inc()
			s.logger.WarnContext(ctx, "request completed without an active goal, funds stranded", "request_id", requestID, "requester_id", result.Request.RequesterID, "amount", result.Request.Amount.String())
		} else {
			s.metrics.DistributedAmountCents.Add(float64(result.Request.Amount.Cents()))
			s.metrics.EntriesAppended.WithLabelValues(string(models.KindPoolReceive)).Add(float64(len(result.Distribution)))
			s.logger.InfoContext(ctx, "request completed and distributed", "request_id", requestID, "requester_id", result.Request.RequesterID, "goals", len(result.Distribution))
		}
	}
	return &result, nil
}

// distribute adds the completion payout of req to cs: one pool_receive
// entry per active goal of the requester that gets a non-zero share.
func (s *Service) distribute(ctx context.Context, cs *storage.ChangeSet, req *models.PoolRequest, result *ContributionResult) error {
	goals, weights, err := s.goalWeights(ctx, req.RequesterID)
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		req.Stranded = true
		result.Stranded = true
		return nil
	}

	now := *req.CompletedAt
	period := models.PeriodOf(now)
	for i, share := range allocation.Proportional(req.Amount, weights) {
		if share.IsZero() {
			continue
		}
		entry := models.LedgerEntry{
			ID:            uuid.New().String(),
			UserID:        req.RequesterID,
			GoalID:        &goals[i].ID,
			Amount:        share,
			Kind:          models.KindPoolReceive,
			PoolRequestID: &req.ID,
			Description:   "Pool funds received: " + req.Description,
			Period:        period.Key(),
			CreatedAt:     now,
		}
		cs.AppendEntry(entry)
		cs.TagGoal(goals[i], 1)
		cs.Credit(req.RequesterID, period, share)
		result.Distribution = append(result.Distribution, entry)
	}
	return nil
}

// goalWeights returns the user's active goals oldest first with their
// displayed amounts, which weight distributions and refunds.
func (s *Service) goalWeights(ctx context.Context, userID string) ([]models.Goal, []money.Amount, error) {
	status := models.GoalActive
	goals, err := s.ListGoals(ctx, userID, &status)
	if err != nil {
		return nil, nil, err
	}
	weights := make([]money.Amount, len(goals))
	for i, g := range goals {
		weights[i] = g.CurrentAmount
	}
	return goals, weights, nil
}

// DeleteRequest cancels an active request. Every contribution is refunded
// to its contributor's current month, split across the contributor's
// active goals the same way a distribution is, and the contribution rows
// and the request are removed.
func (s *Service) DeleteRequest(ctx context.Context, requestID, requesterID string) (*CancellationResult, error) {
	var result CancellationResult
	err := s.commit(ctx, "delete_request", func() (*storage.ChangeSet, error) {
		req, err := s.store.GetRequest(ctx, requestID)
		if err != nil {
			return nil, notFound(err, "request %s not found", requestID)
		}
		if req.RequesterID != requesterID {
			return nil, newError(ErrForbidden, "only the requester can cancel request %s", requestID)
		}
		if req.Status != models.RequestActive {
			return nil, newError(ErrStateConflict, "request %s is %s", requestID, req.Status)
		}
		contributions, err := s.store.ListContributions(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("failed to list contributions: %w", err)
		}
		listed := money.Zero
		for _, c := range contributions {
			listed = listed.Add(c.Amount)
		}
		if !listed.Equal(req.CurrentAmount) {
			return nil, staleRead("request %s lists %s of %s contributed", requestID, listed, req.CurrentAmount)
		}

		now := s.clock()
		period := models.PeriodOf(now)
		cs := storage.NewChangeSet()
		result = CancellationResult{}
		for _, c := range contributions {
			refunds, err := s.refund(ctx, cs, req, c, now)
			if err != nil {
				return nil, err
			}
			result.Refunds = append(result.Refunds, refunds...)
			cs.Credit(c.ContributorID, period, c.Amount)
			cs.DeleteContribution(c.ID)
		}
		cs.DeleteRequest(req.ID, req.Version)

		result.Request = *req
		result.Request.Status = models.RequestCancelled
		return cs, nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RequestsCancelled.Inc()
	s.logger.InfoContext(ctx, "pool request cancelled", "request_id", requestID, "refund_entries", len(result.Refunds))
	return &result, nil
}

// refund adds the entries returning one contribution to cs. With no active
// goals the refund is a single untagged entry.
func (s *Service) refund(ctx context.Context, cs *storage.ChangeSet, req *models.PoolRequest, c models.PoolContribution, now time.Time) ([]models.LedgerEntry, error) {
	goals, weights, err := s.goalWeights(ctx, c.ContributorID)
	if err != nil {
		return nil, err
	}
	base := models.LedgerEntry{
		UserID:             c.ContributorID,
		Kind:               models.KindPoolContribution,
		PoolContributionID: &c.ID,
		PoolRequestID:      &req.ID,
		Description:        "Pool contribution refund: " + req.Description,
		Period:             models.PeriodOf(now).Key(),
		CreatedAt:          now,
	}
	if len(goals) == 0 {
		base.ID = uuid.New().String()
		base.Amount = c.Amount
		cs.AppendEntry(base)
		return []models.LedgerEntry{base}, nil
	}

	var entries []models.LedgerEntry
	for i, share := range allocation.Proportional(c.Amount, weights) {
		if share.IsZero() {
			continue
		}
		e := base
		e.ID = uuid.New().String()
		e.GoalID = &goals[i].ID
		e.Amount = share
		cs.AppendEntry(e)
		cs.TagGoal(goals[i], 1)
		entries = append(entries, e)
	}
	return entries, nil
}
