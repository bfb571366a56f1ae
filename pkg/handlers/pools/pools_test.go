package pools_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/handlers/pools"
	"github.com/chris/pooled-savings/pkg/handlers/pools/mocks"
	"github.com/chris/pooled-savings/pkg/middleware"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/notify"
	notify_mocks "github.com/chris/pooled-savings/pkg/notify/mocks"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC)

func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func request(poolID uuid.UUID, status models.RequestStatus) models.PoolRequest {
	return models.PoolRequest{
		ID:            uuid.New().String(),
		PoolID:        poolID.String(),
		RequesterID:   "requester",
		Amount:        money.FromInt(100),
		CurrentAmount: money.Zero,
		Description:   "help with the water bill",
		Status:        status,
		CreatedAt:     now,
	}
}

func strPtr(s string) *string { return &s }

func TestCreatePool(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		pool := &models.Pool{ID: uuid.New().String(), Name: "Neighbours", IsActive: true, CreatedAt: now}
		admin := &models.PoolMembership{PoolID: pool.ID, UserID: "user1", Role: models.RoleAdmin, IsActive: true, JoinedAt: now}
		svc.On("CreatePool", mock.Anything, "user1", "Neighbours").Return(pool, admin, nil).Once()
		req := asUser(httptest.NewRequest(http.MethodPost, "/pools", strings.NewReader(`{"name":"Neighbours"}`)), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.CreatePool(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var body api.PoolCreated
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, pool.ID, body.Pool.Id.String())
		assert.Equal(t, api.PoolMemberRoleAdmin, body.Membership.Role)
	})

	t.Run("Name Too Short", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		svc.On("CreatePool", mock.Anything, "user1", "ab").
			Return(nil, nil, &savings.Error{Kind: savings.ErrValidation, Message: "pool name must be 3 to 100 characters"}).Once()
		req := asUser(httptest.NewRequest(http.MethodPost, "/pools", strings.NewReader(`{"name":"ab"}`)), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.CreatePool(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMembership(t *testing.T) {
	poolID := uuid.New()

	t.Run("Join", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		svc.On("JoinPool", mock.Anything, poolID.String(), "user2").
			Return(&models.PoolMembership{PoolID: poolID.String(), UserID: "user2", Role: models.RoleMember, IsActive: true, JoinedAt: now}, nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.JoinPool(rr, asUser(httptest.NewRequest(http.MethodPost, "/pools/"+poolID.String()+"/members", nil), "user2"), poolID)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"role":"member"`)
	})

	t.Run("Leave", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		svc.On("LeavePool", mock.Anything, poolID.String(), "user2").Return(nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.LeavePool(rr, asUser(httptest.NewRequest(http.MethodDelete, "/pools/"+poolID.String()+"/members", nil), "user2"), poolID)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Members Hidden From Outsiders", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		svc.On("ListMembers", mock.Anything, poolID.String(), "stranger").
			Return(nil, &savings.Error{Kind: savings.ErrForbidden, Message: "not a member of this pool"}).Once()
		rr := httptest.NewRecorder()

		// Act
		h.ListPoolMembers(rr, asUser(httptest.NewRequest(http.MethodGet, "/pools/"+poolID.String()+"/members", nil), "stranger"), poolID)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestPoolRequests(t *testing.T) {
	poolID := uuid.New()

	t.Run("Create", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		created := request(poolID, models.RequestActive)
		svc.On("CreateRequest", mock.Anything, poolID.String(), "requester", money.MustParse("100"), "help with the water bill").
			Return(&created, nil).Once()
		req := asUser(httptest.NewRequest(http.MethodPost, "/pools/"+poolID.String()+"/requests",
			strings.NewReader(`{"amount":100,"description":"help with the water bill"}`)), "requester")
		rr := httptest.NewRecorder()

		// Act
		h.CreatePoolRequest(rr, req, poolID)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var body api.PoolRequest
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, api.PoolRequestStatusActive, body.Status)
		assert.Equal(t, "0.00", body.CurrentAmount.String())
	})

	t.Run("List By Status", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		completed := models.RequestCompleted
		svc.On("ListRequests", mock.Anything, poolID.String(), "user1", &completed).
			Return([]models.PoolRequest{request(poolID, models.RequestCompleted)}, nil).Once()
		status := api.PoolRequestStatusCompleted
		rr := httptest.NewRecorder()

		// Act
		h.ListPoolRequests(rr, asUser(httptest.NewRequest(http.MethodGet, "/pools/"+poolID.String()+"/requests", nil), "user1"), poolID, api.ListPoolRequestsParams{Status: &status})

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var body []api.PoolRequest
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, api.PoolRequestStatusCompleted, body[0].Status)
	})

	t.Run("Get With Contributions", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		req := request(poolID, models.RequestActive)
		requestID := uuid.MustParse(req.ID)
		view := &savings.RequestView{
			Request: req,
			Contributions: []models.PoolContribution{
				{ID: uuid.New().String(), RequestID: req.ID, ContributorID: "helper", Amount: money.FromInt(34), ContributedAt: now},
			},
		}
		svc.On("GetRequest", mock.Anything, "helper", req.ID).Return(view, nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.GetPoolRequest(rr, asUser(httptest.NewRequest(http.MethodGet, "/requests/"+req.ID, nil), "helper"), requestID)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var body api.PoolRequestDetail
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Contributions, 1)
		assert.Equal(t, "34.00", body.Contributions[0].Amount.String())
	})

	t.Run("Suggestion", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		requestID := uuid.New()
		svc.On("SuggestContribution", mock.Anything, requestID.String(), "helper").Return(money.MustParse("33.33"), nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.GetSuggestedContribution(rr, asUser(httptest.NewRequest(http.MethodGet, "/requests/"+requestID.String()+"/suggestion", nil), "helper"), requestID)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"request_id":"`+requestID.String()+`","amount":33.33}`, rr.Body.String())
	})
}

func TestContribute(t *testing.T) {
	poolID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		publisher := notify_mocks.NewPublisher(t)
		h := pools.NewPoolsHandler(svc, publisher)
		req := request(poolID, models.RequestActive)
		req.CurrentAmount = money.FromInt(34)
		res := &savings.ContributionResult{
			Contribution: models.PoolContribution{ID: uuid.New().String(), RequestID: req.ID, ContributorID: "helper", Amount: money.FromInt(34), ContributedAt: now},
			Request:      req,
			Entry:        models.LedgerEntry{ID: uuid.New().String(), UserID: "helper", Amount: money.FromInt(-34), Kind: models.KindPoolContribution, CreatedAt: now},
		}
		amount := money.MustParse("34")
		svc.On("Contribute", mock.Anything, req.ID, "helper", &amount).Return(res, nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Contribute(rr, asUser(httptest.NewRequest(http.MethodPost, "/requests/"+req.ID+"/contributions", strings.NewReader(`{"amount":34}`)), "helper"), uuid.MustParse(req.ID))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var body api.ContributionResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Completed)
		assert.Equal(t, "-34.00", body.Entry.Amount.String())
		assert.Empty(t, body.Distribution)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Empty Body Uses Suggestion", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		req := request(poolID, models.RequestActive)
		svc.On("Contribute", mock.Anything, req.ID, "helper", (*money.Amount)(nil)).
			Return(&savings.ContributionResult{Request: req}, nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Contribute(rr, asUser(httptest.NewRequest(http.MethodPost, "/requests/"+req.ID+"/contributions", nil), "helper"), uuid.MustParse(req.ID))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Empty Chunked Body Uses Suggestion", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		req := request(poolID, models.RequestActive)
		svc.On("Contribute", mock.Anything, req.ID, "helper", (*money.Amount)(nil)).
			Return(&savings.ContributionResult{Request: req}, nil).Once()
		httpReq := httptest.NewRequest(http.MethodPost, "/requests/"+req.ID+"/contributions", nil)
		httpReq.ContentLength = -1
		httpReq.Body = io.NopCloser(strings.NewReader(""))
		rr := httptest.NewRecorder()

		// Act
		h.Contribute(rr, asUser(httpReq, "helper"), uuid.MustParse(req.ID))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Completion Notifies Requester", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		publisher := notify_mocks.NewPublisher(t)
		h := pools.NewPoolsHandler(svc, publisher)
		req := request(poolID, models.RequestCompleted)
		req.CurrentAmount = req.Amount
		rent, food := uuid.New().String(), uuid.New().String()
		res := &savings.ContributionResult{
			Contribution: models.PoolContribution{ContributedAt: now},
			Request:      req,
			Completed:    true,
			Distribution: []models.LedgerEntry{
				{ID: uuid.New().String(), UserID: "requester", GoalID: &rent, Amount: money.FromInt(40), Kind: models.KindPoolReceive, CreatedAt: now},
				{ID: uuid.New().String(), UserID: "requester", GoalID: &food, Amount: money.FromInt(60), Kind: models.KindPoolReceive, CreatedAt: now},
			},
		}
		svc.On("Contribute", mock.Anything, req.ID, "helper", mock.Anything).Return(res, nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
			p := e.Payload.(notify.RequestPayload)
			return e.Type == notify.EventRequestCompleted && e.UserID == "requester" &&
				p.Receipts[rent].String() == "40.00" && p.Receipts[food].String() == "60.00"
		})).Return(nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Contribute(rr, asUser(httptest.NewRequest(http.MethodPost, "/requests/"+req.ID+"/contributions", strings.NewReader(`{"amount":66}`)), "helper"), uuid.MustParse(req.ID))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var body api.ContributionResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Completed)
		assert.Len(t, body.Distribution, 2)
	})

	t.Run("Stranded Completion", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		publisher := notify_mocks.NewPublisher(t)
		h := pools.NewPoolsHandler(svc, publisher)
		req := request(poolID, models.RequestCompleted)
		req.Stranded = true
		res := &savings.ContributionResult{Request: req, Completed: true, Stranded: true}
		svc.On("Contribute", mock.Anything, req.ID, "helper", mock.Anything).Return(res, nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
			return e.Type == notify.EventFundsStranded && e.UserID == "requester"
		})).Return(nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Contribute(rr, asUser(httptest.NewRequest(http.MethodPost, "/requests/"+req.ID+"/contributions", strings.NewReader(`{"amount":100}`)), "helper"), uuid.MustParse(req.ID))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"stranded":true`)
	})

	t.Run("Too Large", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		requestID := uuid.New()
		svc.On("Contribute", mock.Anything, requestID.String(), "helper", mock.Anything).
			Return(nil, &savings.Error{Kind: savings.ErrContributionTooLarge, Message: "contribution exceeds 50.00"}).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Contribute(rr, asUser(httptest.NewRequest(http.MethodPost, "/requests/"+requestID.String()+"/contributions", strings.NewReader(`{"amount":80}`)), "helper"), requestID)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"contribution_too_large"`)
	})
}

func TestDeletePoolRequest(t *testing.T) {
	poolID := uuid.New()

	t.Run("Refunds Notify Contributors", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		publisher := notify_mocks.NewPublisher(t)
		h := pools.NewPoolsHandler(svc, publisher)
		req := request(poolID, models.RequestCancelled)
		refund := func(userID, amount string) models.LedgerEntry {
			return models.LedgerEntry{ID: uuid.New().String(), UserID: userID, Amount: money.MustParse(amount), Kind: models.KindPoolContribution, PoolRequestID: strPtr(req.ID), CreatedAt: now}
		}
		res := &savings.CancellationResult{
			Request: req,
			Refunds: []models.LedgerEntry{refund("alice", "10"), refund("alice", "30"), refund("bob", "25")},
		}
		svc.On("DeleteRequest", mock.Anything, req.ID, "requester").Return(res, nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
			return e.Type == notify.EventRequestCancelled && e.UserID == "alice" && e.Payload.(notify.RequestPayload).Amount.String() == "40.00"
		})).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
			return e.Type == notify.EventRequestCancelled && e.UserID == "bob" && e.Payload.(notify.RequestPayload).Amount.String() == "25.00"
		})).Return(nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.DeletePoolRequest(rr, asUser(httptest.NewRequest(http.MethodDelete, "/requests/"+req.ID, nil), "requester"), uuid.MustParse(req.ID))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var body api.RequestCancellation
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, api.PoolRequestStatusCancelled, body.Request.Status)
		assert.Len(t, body.Refunds, 3)
	})

	t.Run("Only The Requester", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := pools.NewPoolsHandler(svc, &notify.NoOpPublisher{})
		requestID := uuid.New()
		svc.On("DeleteRequest", mock.Anything, requestID.String(), "helper").
			Return(nil, &savings.Error{Kind: savings.ErrForbidden, Message: "only the requester can cancel a request"}).Once()
		rr := httptest.NewRecorder()

		// Act
		h.DeletePoolRequest(rr, asUser(httptest.NewRequest(http.MethodDelete, "/requests/"+requestID.String(), nil), "helper"), requestID)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
