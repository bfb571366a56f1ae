package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/handlers"
	"github.com/chris/pooled-savings/pkg/handlers/respond"
	"github.com/chris/pooled-savings/pkg/middleware"
	"github.com/chris/pooled-savings/pkg/notify"
	notify_mocks "github.com/chris/pooled-savings/pkg/notify/mocks"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/chris/pooled-savings/pkg/storage/memory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router http.Handler
}

func newTestServer(t *testing.T, publisher notify.Publisher) *testServer {
	now := time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC)
	svc := savings.New(memory.New(),
		savings.WithClock(func() time.Time { return now }),
		savings.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequireUser)
	api.HandlerWithOptions(handlers.NewApiHandler(svc, publisher), api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: respond.ParamError,
	})
	return &testServer{t: t, router: r}
}

// do sends a request as userID and decodes the response into out when
// out is non-nil.
func (s *testServer) do(userID, method, path string, body any, out any) int {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set(middleware.UserHeader, userID)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	if out != nil {
		require.NoError(s.t, json.Unmarshal(rr.Body.Bytes(), out), rr.Body.String())
	}
	return rr.Code
}

func TestMissingUser(t *testing.T) {
	// Arrange
	s := newTestServer(t, &notify.NoOpPublisher{})

	// Act
	var body api.ErrorResponse
	code := s.do("", http.MethodGet, "/goals", nil, &body)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "unauthorized", body.Error.Code)
}

func TestInvalidPathParameter(t *testing.T) {
	// Arrange
	s := newTestServer(t, &notify.NoOpPublisher{})

	// Act
	code := s.do("alice", http.MethodGet, "/goals/not-a-uuid", nil, nil)

	// Assert
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPoolRequestEndToEnd(t *testing.T) {
	// Arrange
	publisher := notify_mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.EventLevelUp || e.Type == notify.EventChallengeCompleted
	})).Return(nil).Maybe()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.EventRequestCompleted && e.UserID == "alice"
	})).Return(nil).Once()
	s := newTestServer(t, publisher)

	var goal api.Goal
	require.Equal(t, http.StatusCreated, s.do("alice", http.MethodPost, "/goals",
		map[string]any{"name": "Rent", "target_amount": 500}, &goal))

	goalID := goal.Id.String()
	var saved api.SaveResult
	require.Equal(t, http.StatusCreated, s.do("alice", http.MethodPost, "/ledger/entries",
		map[string]any{"amount": 100, "goal_id": goalID, "description": "paycheck"}, &saved))
	assert.Equal(t, "100.00", saved.MonthlyTotal.String())
	require.NotNil(t, saved.Progress)

	require.Equal(t, http.StatusCreated, s.do("bob", http.MethodPost, "/ledger/entries",
		map[string]any{"amount": 200}, nil))

	var created api.PoolCreated
	require.Equal(t, http.StatusCreated, s.do("alice", http.MethodPost, "/pools",
		map[string]any{"name": "Neighbours"}, &created))
	poolPath := "/pools/" + created.Pool.Id.String()
	require.Equal(t, http.StatusOK, s.do("bob", http.MethodPost, poolPath+"/members", nil, nil))

	var req api.PoolRequest
	require.Equal(t, http.StatusCreated, s.do("alice", http.MethodPost, poolPath+"/requests",
		map[string]any{"amount": 60, "description": "help with the water bill"}, &req))
	requestPath := "/requests/" + req.Id.String()

	// Act
	var tooLarge api.ErrorResponse
	tooLargeCode := s.do("bob", http.MethodPost, requestPath+"/contributions", map[string]any{"amount": 60.01}, &tooLarge)

	var suggestion api.SuggestedContribution
	suggestionCode := s.do("bob", http.MethodGet, requestPath+"/suggestion", nil, &suggestion)

	var result api.ContributionResult
	contributeCode := s.do("bob", http.MethodPost, requestPath+"/contributions", map[string]any{"amount": 60}, &result)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, tooLargeCode)
	assert.Equal(t, "contribution_too_large", tooLarge.Error.Code)

	assert.Equal(t, http.StatusOK, suggestionCode)
	assert.Equal(t, "30.00", suggestion.Amount.String())

	require.Equal(t, http.StatusCreated, contributeCode)
	assert.True(t, result.Completed)
	assert.False(t, result.Stranded)
	assert.Equal(t, api.PoolRequestStatusCompleted, result.Request.Status)
	require.Len(t, result.Distribution, 1)
	assert.Equal(t, "60.00", result.Distribution[0].Amount.String())

	var after api.Goal
	require.Equal(t, http.StatusOK, s.do("alice", http.MethodGet, "/goals/"+goalID, nil, &after))
	assert.Equal(t, "160.00", after.CurrentAmount.String())

	var snapshot api.MonthlySnapshot
	require.Equal(t, http.StatusOK, s.do("bob", http.MethodGet, "/aggregates/2026/10", nil, &snapshot))
	assert.Equal(t, "140.00", snapshot.TotalSaved.String())
}

func TestOutsiderCannotContribute(t *testing.T) {
	// Arrange
	s := newTestServer(t, &notify.NoOpPublisher{})
	require.Equal(t, http.StatusCreated, s.do("carol", http.MethodPost, "/ledger/entries", map[string]any{"amount": 200}, nil))

	var created api.PoolCreated
	require.Equal(t, http.StatusCreated, s.do("alice", http.MethodPost, "/pools", map[string]any{"name": "Neighbours"}, &created))
	var req api.PoolRequest
	require.Equal(t, http.StatusCreated, s.do("alice", http.MethodPost, "/pools/"+created.Pool.Id.String()+"/requests",
		map[string]any{"amount": 60, "description": "help with the water bill"}, &req))

	// Act
	var body api.ErrorResponse
	code := s.do("carol", http.MethodPost, "/requests/"+req.Id.String()+"/contributions", map[string]any{"amount": 10}, &body)

	// Assert
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "forbidden", body.Error.Code)
}
