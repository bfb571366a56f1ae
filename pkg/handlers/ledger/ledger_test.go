package ledger_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/handlers/ledger"
	"github.com/chris/pooled-savings/pkg/handlers/ledger/mocks"
	"github.com/chris/pooled-savings/pkg/middleware"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/notify"
	notify_mocks "github.com/chris/pooled-savings/pkg/notify/mocks"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC)

func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func entry(amount string) models.LedgerEntry {
	return models.LedgerEntry{
		ID:        uuid.New().String(),
		UserID:    "user1",
		Amount:    money.MustParse(amount),
		Kind:      models.KindSave,
		Points:    10,
		CreatedAt: now,
	}
}

func TestCreateLedgerEntry(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		publisher := notify_mocks.NewPublisher(t)
		h := ledger.NewLedgerHandler(svc, publisher)

		saved := entry("30")
		res := &savings.SaveResult{
			Entry:     saved,
			Aggregate: money.MustParse("30"),
			Progress: &savings.ProgressUpdate{
				Period:              models.ProgressionPeriod{CurrentLevel: 1},
				PreviousLevel:       0,
				LeveledUp:           true,
				Points:              30,
				UnlockedRewards:     []models.RewardDefinition{{ID: "level-1"}},
				CompletedChallenges: []models.ChallengeDefinition{{ID: "first-steps", Points: 15}},
			},
		}
		svc.On("AppendEntry", mock.Anything, "user1", savings.NewEntry{Amount: money.MustParse("30"), Description: "lunch skipped"}).Return(res, nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
			p, ok := e.Payload.(notify.LevelUpPayload)
			return e.Type == notify.EventLevelUp && e.UserID == "user1" && ok && p.Level == 1 && p.UnlockedRewardIDs[0] == "level-1"
		})).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
			p, ok := e.Payload.(notify.ChallengePayload)
			return e.Type == notify.EventChallengeCompleted && ok && p.ChallengeID == "first-steps"
		})).Return(nil).Once()

		req := asUser(httptest.NewRequest(http.MethodPost, "/ledger/entries", strings.NewReader(`{"amount":30,"description":"lunch skipped"}`)), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.CreateLedgerEntry(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var body api.SaveResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, saved.ID, body.Entry.Id.String())
		assert.Equal(t, "30.00", body.MonthlyTotal.String())
		require.NotNil(t, body.Progress)
		assert.True(t, body.Progress.LeveledUp)
		assert.Equal(t, int64(30), body.Progress.PointsAwarded)
	})

	t.Run("Withdrawal Publishes Nothing", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		publisher := notify_mocks.NewPublisher(t)
		h := ledger.NewLedgerHandler(svc, publisher)
		goalID := uuid.New()
		goal := goalID.String()
		svc.On("AppendEntry", mock.Anything, "user1", savings.NewEntry{Amount: money.MustParse("-5"), GoalID: &goal}).
			Return(&savings.SaveResult{Entry: entry("-5"), Aggregate: money.MustParse("25")}, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodPost, "/ledger/entries", strings.NewReader(`{"amount":-5,"goal_id":"`+goalID.String()+`"}`)), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.CreateLedgerEntry(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Publish Failure Is Not Fatal", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		publisher := notify_mocks.NewPublisher(t)
		h := ledger.NewLedgerHandler(svc, publisher)
		res := &savings.SaveResult{
			Entry:     entry("10"),
			Aggregate: money.MustParse("10"),
			Progress:  &savings.ProgressUpdate{LeveledUp: true, Period: models.ProgressionPeriod{CurrentLevel: 1}},
		}
		svc.On("AppendEntry", mock.Anything, "user1", mock.Anything).Return(res, nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()

		req := asUser(httptest.NewRequest(http.MethodPost, "/ledger/entries", strings.NewReader(`{"amount":10}`)), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.CreateLedgerEntry(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		req := asUser(httptest.NewRequest(http.MethodPost, "/ledger/entries", strings.NewReader(`{"amount":"ten"}`)), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.CreateLedgerEntry(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "AppendEntry", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		svc.On("AppendEntry", mock.Anything, "user1", mock.Anything).
			Return(nil, &savings.Error{Kind: savings.ErrInsufficientFunds, Message: "withdrawal exceeds savings"}).Once()
		req := asUser(httptest.NewRequest(http.MethodPost, "/ledger/entries", strings.NewReader(`{"amount":-500}`)), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.CreateLedgerEntry(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"insufficient_funds"`)
	})
}

func TestListLedgerEntries(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		expected := []models.LedgerEntry{entry("10"), entry("20")}
		kind := api.LedgerEntryKindSave
		year, month, limit := 2026, 10, int32(5)
		svc.On("ListByUser", mock.Anything, "user1", mock.MatchedBy(func(f storage.LedgerFilter) bool {
			return *f.Kind == models.KindSave && *f.Period == models.Period{Year: 2026, Month: 10} && f.Limit == 5 && f.GoalID == nil
		})).Return(expected, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodGet, "/ledger/entries", nil), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.ListLedgerEntries(rr, req, api.ListLedgerEntriesParams{Kind: &kind, Year: &year, Month: &month, Limit: &limit})

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var returned []api.LedgerEntry
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		require.Len(t, returned, 2)
		assert.Equal(t, expected[0].ID, returned[0].Id.String())
		assert.Equal(t, "20.00", returned[1].Amount.String())
	})

	t.Run("Empty List", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		svc.On("ListByUser", mock.Anything, "user1", storage.LedgerFilter{}).Return(nil, nil).Once()
		req := asUser(httptest.NewRequest(http.MethodGet, "/ledger/entries", nil), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.ListLedgerEntries(rr, req, api.ListLedgerEntriesParams{})

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Year Without Month", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		year := 2026
		req := asUser(httptest.NewRequest(http.MethodGet, "/ledger/entries", nil), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.ListLedgerEntries(rr, req, api.ListLedgerEntriesParams{Year: &year})

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Storage Error", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		svc.On("ListByUser", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
		req := asUser(httptest.NewRequest(http.MethodGet, "/ledger/entries", nil), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.ListLedgerEntries(rr, req, api.ListLedgerEntriesParams{})

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
	})
}

func TestReverseLedgerEntry(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		reversed := entry("15")
		reversed.ID = id.String()
		svc.On("ReverseEntry", mock.Anything, "user1", id.String()).Return(&reversed, nil).Once()
		req := asUser(httptest.NewRequest(http.MethodDelete, "/ledger/entries/"+id.String(), nil), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.ReverseLedgerEntry(rr, req, id)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var body api.LedgerEntry
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, id, body.Id)
	})

	t.Run("Forbidden", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		svc.On("ReverseEntry", mock.Anything, "user2", id.String()).
			Return(nil, &savings.Error{Kind: savings.ErrForbidden, Message: "entry belongs to another user"}).Once()
		req := asUser(httptest.NewRequest(http.MethodDelete, "/ledger/entries/"+id.String(), nil), "user2")
		rr := httptest.NewRecorder()

		// Act
		h.ReverseLedgerEntry(rr, req, id)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestGetMonthlySnapshot(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		svc.On("Snapshot", mock.Anything, "user1", models.Period{Year: 2026, Month: 10}).Return(money.MustParse("35.5"), nil).Once()
		req := asUser(httptest.NewRequest(http.MethodGet, "/aggregates/2026/10", nil), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.GetMonthlySnapshot(rr, req, 2026, 10)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"user_id":"user1","year":2026,"month":10,"total_saved":35.50}`, rr.Body.String())
	})

	t.Run("Invalid Month", func(t *testing.T) {
		// Arrange
		svc := mocks.NewService(t)
		h := ledger.NewLedgerHandler(svc, &notify.NoOpPublisher{})
		svc.On("Snapshot", mock.Anything, "user1", models.Period{Year: 2026, Month: 13}).
			Return(money.Zero, &savings.Error{Kind: savings.ErrValidation, Message: "invalid period"}).Once()
		req := asUser(httptest.NewRequest(http.MethodGet, "/aggregates/2026/13", nil), "user1")
		rr := httptest.NewRecorder()

		// Act
		h.GetMonthlySnapshot(rr, req, 2026, 13)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

