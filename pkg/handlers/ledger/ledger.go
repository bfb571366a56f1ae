package ledger

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
	"github.com/chris/pooled-savings/pkg/storage"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:generate mockery --name Service --output ./mocks --outpkg mocks

// Service is the part of savings.Service the ledger endpoints use.
type Service interface {
	AppendEntry(ctx context.Context, userID string, in savings.NewEntry) (*savings.SaveResult, error)
	ListByUser(ctx context.Context, userID string, filter storage.LedgerFilter) ([]models.LedgerEntry, error)
	ReverseEntry(ctx context.Context, userID, entryID string) (*models.LedgerEntry, error)
	Snapshot(ctx context.Context, userID string, period models.Period) (money.Amount, error)
}

// LedgerHandler holds the dependencies for ledger-related handlers.
type LedgerHandler struct {
	Service   Service
	Publisher notify.Publisher
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(service Service, publisher notify.Publisher) *LedgerHandler {
	return &LedgerHandler{Service: service, Publisher: publisher}
}

// CreateLedgerEntry records a save or a manual withdrawal for the caller.
func (h *LedgerHandler) CreateLedgerEntry(w http.ResponseWriter, r *http.Request) {
	var body api.NewLedgerEntry
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	userID := middleware.UserID(r.Context())
	res, err := h.Service.AppendEntry(r.Context(), userID, mapping.ToDomainNewEntry(&body))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	notify.PublishAll(r.Context(), h.Publisher, notify.ProgressEvents(userID, res))
	respond.JSON(w, http.StatusCreated, mapping.ToApiSaveResult(res))
}

// ListLedgerEntries lists the caller's entries, newest first.
func (h *LedgerHandler) ListLedgerEntries(w http.ResponseWriter, r *http.Request, params api.ListLedgerEntriesParams) {
	if (params.Year == nil) != (params.Month == nil) {
		respond.BadRequest(w, "year and month must be given together")
		return
	}

	entries, err := h.Service.ListByUser(r.Context(), middleware.UserID(r.Context()), mapping.ToDomainLedgerFilter(&params))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiLedgerEntries(entries))
}

// ReverseLedgerEntry undoes an entry's effects and deletes it.
func (h *LedgerHandler) ReverseLedgerEntry(w http.ResponseWriter, r *http.Request, entryId openapi_types.UUID) {
	entry, err := h.Service.ReverseEntry(r.Context(), middleware.UserID(r.Context()), entryId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiLedgerEntry(entry))
}

// GetMonthlySnapshot returns the caller's savings total for a month.
func (h *LedgerHandler) GetMonthlySnapshot(w http.ResponseWriter, r *http.Request, year int, month int) {
	userID := middleware.UserID(r.Context())
	total, err := h.Service.Snapshot(r.Context(), userID, models.Period{Year: year, Month: month})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.MonthlySnapshot{
		UserId:     userID,
		Year:       year,
		Month:      month,
		TotalSaved: total,
	})
}
