package handlers

import (
	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/handlers/goals"
	"github.com/chris/pooled-savings/pkg/handlers/ledger"
	"github.com/chris/pooled-savings/pkg/handlers/pools"
	"github.com/chris/pooled-savings/pkg/handlers/progression"
	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/chris/pooled-savings/pkg/savings"
)

// ApiHandler implements the generated server interface by composing
// the handlers for each part of the API.
type ApiHandler struct {
	*ledger.LedgerHandler
	*goals.GoalsHandler
	*pools.PoolsHandler
	*progression.ProgressionHandler
}

// NewApiHandler wires every handler to the same savings service.
func NewApiHandler(svc *savings.Service, publisher notify.Publisher) *ApiHandler {
	return &ApiHandler{
		LedgerHandler:      ledger.NewLedgerHandler(svc, publisher),
		GoalsHandler:       goals.NewGoalsHandler(svc),
		PoolsHandler:       pools.NewPoolsHandler(svc, publisher),
		ProgressionHandler: progression.NewProgressionHandler(svc),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)
