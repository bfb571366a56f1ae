package pools

import (
	"context"
	"net/http"

	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/handlers/respond"
	"github.com/chris/pooled-savings/pkg/mapping"
	"github.com/chris/pooled-savings/pkg/middleware"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/chris/pooled-savings/pkg/savings"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:generate mockery --name Service --output ./mocks --outpkg mocks

// Service is the part of savings.Service the pool and request endpoints use.
type Service interface {
	CreatePool(ctx context.Context, creatorID, name string) (*models.Pool, *models.PoolMembership, error)
	GetPool(ctx context.Context, poolID string) (*models.Pool, error)
	JoinPool(ctx context.Context, poolID, userID string) (*models.PoolMembership, error)
	LeavePool(ctx context.Context, poolID, userID string) error
	ListMembers(ctx context.Context, poolID, userID string) ([]models.PoolMembership, error)
	CreateRequest(ctx context.Context, poolID, requesterID string, amount money.Amount, description string) (*models.PoolRequest, error)
	ListRequests(ctx context.Context, poolID, userID string, status *models.RequestStatus) ([]models.PoolRequest, error)
	GetRequest(ctx context.Context, userID, requestID string) (*savings.RequestView, error)
	DeleteRequest(ctx context.Context, requestID, requesterID string) (*savings.CancellationResult, error)
	SuggestContribution(ctx context.Context, requestID, contributorID string) (money.Amount, error)
	Contribute(ctx context.Context, requestID, contributorID string, amount *money.Amount) (*savings.ContributionResult, error)
}

// PoolsHandler holds the dependencies for pool and request handlers.
type PoolsHandler struct {
	Service   Service
	Publisher notify.Publisher
}

// NewPoolsHandler creates a new PoolsHandler.
func NewPoolsHandler(service Service, publisher notify.Publisher) *PoolsHandler {
	return &PoolsHandler{Service: service, Publisher: publisher}
}

// CreatePool creates a pool with the caller as its admin.
func (h *PoolsHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	var body api.NewPool
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	pool, admin, err := h.Service.CreatePool(r.Context(), middleware.UserID(r.Context()), body.Name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, api.PoolCreated{
		Pool:       *mapping.ToApiPool(pool),
		Membership: *mapping.ToApiPoolMember(admin),
	})
}

func (h *PoolsHandler) GetPool(w http.ResponseWriter, r *http.Request, poolId openapi_types.UUID) {
	pool, err := h.Service.GetPool(r.Context(), poolId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiPool(pool))
}

func (h *PoolsHandler) JoinPool(w http.ResponseWriter, r *http.Request, poolId openapi_types.UUID) {
	membership, err := h.Service.JoinPool(r.Context(), poolId.String(), middleware.UserID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiPoolMember(membership))
}

func (h *PoolsHandler) LeavePool(w http.ResponseWriter, r *http.Request, poolId openapi_types.UUID) {
	if err := h.Service.LeavePool(r.Context(), poolId.String(), middleware.UserID(r.Context())); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

func (h *PoolsHandler) ListPoolMembers(w http.ResponseWriter, r *http.Request, poolId openapi_types.UUID) {
	members, err := h.Service.ListMembers(r.Context(), poolId.String(), middleware.UserID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiPoolMembers(members))
}

// CreatePoolRequest opens a request for funds in the pool.
func (h *PoolsHandler) CreatePoolRequest(w http.ResponseWriter, r *http.Request, poolId openapi_types.UUID) {
	var body api.NewPoolRequest
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	req, err := h.Service.CreateRequest(r.Context(), poolId.String(), middleware.UserID(r.Context()), body.Amount, body.Description)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiPoolRequest(req))
}

func (h *PoolsHandler) ListPoolRequests(w http.ResponseWriter, r *http.Request, poolId openapi_types.UUID, params api.ListPoolRequestsParams) {
	var status *models.RequestStatus
	if params.Status != nil {
		s := models.RequestStatus(*params.Status)
		status = &s
	}

	reqs, err := h.Service.ListRequests(r.Context(), poolId.String(), middleware.UserID(r.Context()), status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiPoolRequests(reqs))
}

func (h *PoolsHandler) GetPoolRequest(w http.ResponseWriter, r *http.Request, requestId openapi_types.UUID) {
	view, err := h.Service.GetRequest(r.Context(), middleware.UserID(r.Context()), requestId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiRequestDetail(view))
}

// DeletePoolRequest cancels an active request and refunds every contributor.
func (h *PoolsHandler) DeletePoolRequest(w http.ResponseWriter, r *http.Request, requestId openapi_types.UUID) {
	res, err := h.Service.DeleteRequest(r.Context(), requestId.String(), middleware.UserID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	notify.PublishAll(r.Context(), h.Publisher, cancellationEvents(res))
	respond.JSON(w, http.StatusOK, mapping.ToApiCancellation(res))
}

func (h *PoolsHandler) GetSuggestedContribution(w http.ResponseWriter, r *http.Request, requestId openapi_types.UUID) {
	amount, err := h.Service.SuggestContribution(r.Context(), requestId.String(), middleware.UserID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.SuggestedContribution{RequestId: requestId, Amount: amount})
}

// Contribute pays toward a request. Without an amount (or without a body)
// the suggested contribution is used.
func (h *PoolsHandler) Contribute(w http.ResponseWriter, r *http.Request, requestId openapi_types.UUID) {
	var body api.NewContribution
	if err := respond.DecodeOptional(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	res, err := h.Service.Contribute(r.Context(), requestId.String(), middleware.UserID(r.Context()), body.Amount)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if res.Completed {
		notify.PublishAll(r.Context(), h.Publisher, []notify.Event{completionEvent(res)})
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiContributionResult(res))
}

// completionEvent tells the requester the request filled, and where the
// money went. A stranded completion is reported separately so the
// requester can create a goal.
func completionEvent(res *savings.ContributionResult) notify.Event {
	payload := notify.RequestPayload{
		RequestID: res.Request.ID,
		PoolID:    res.Request.PoolID,
		Amount:    res.Request.Amount,
	}
	event := notify.Event{
		Type:       notify.EventRequestCompleted,
		UserID:     res.Request.RequesterID,
		OccurredAt: res.Contribution.ContributedAt,
	}
	if res.Stranded {
		event.Type = notify.EventFundsStranded
	} else {
		payload.Receipts = make(map[string]money.Amount, len(res.Distribution))
		for _, e := range res.Distribution {
			if e.GoalID != nil {
				payload.Receipts[*e.GoalID] = payload.Receipts[*e.GoalID].Add(e.Amount)
			}
		}
	}
	event.Payload = payload
	return event
}

// cancellationEvents sends one event per refunded contributor with the
// total they got back.
func cancellationEvents(res *savings.CancellationResult) []notify.Event {
	var order []string
	totals := make(map[string]money.Amount)
	for _, e := range res.Refunds {
		if _, ok := totals[e.UserID]; !ok {
			order = append(order, e.UserID)
		}
		totals[e.UserID] = totals[e.UserID].Add(e.Amount)
	}

	events := make([]notify.Event, 0, len(order))
	for _, userID := range order {
		events = append(events, notify.Event{
			Type:       notify.EventRequestCancelled,
			UserID:     userID,
			OccurredAt: res.Refunds[0].CreatedAt,
			Payload: notify.RequestPayload{
				RequestID: res.Request.ID,
				PoolID:    res.Request.PoolID,
				Amount:    totals[userID],
			},
		})
	}
	return events
}
