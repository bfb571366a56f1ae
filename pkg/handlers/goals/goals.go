package goals

import (
	"context"
	"net/http"

	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/handlers/respond"
	"github.com/chris/pooled-savings/pkg/mapping"
	"github.com/chris/pooled-savings/pkg/middleware"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/savings"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:generate mockery --name Service --output ./mocks --outpkg mocks

// Service is the part of savings.Service the goal endpoints use.
type Service interface {
	CreateGoal(ctx context.Context, userID string, in savings.GoalInput) (*models.Goal, error)
	ListGoals(ctx context.Context, userID string, status *models.GoalStatus) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, in savings.GoalUpdate) (*models.Goal, error)
	CancelGoal(ctx context.Context, userID, goalID string) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
	CompleteGoal(ctx context.Context, userID, goalID string) (*models.Goal, *models.LedgerEntry, error)
}

// GoalsHandler holds the dependencies for goal-related handlers.
type GoalsHandler struct {
	Service Service
}

// NewGoalsHandler creates a new GoalsHandler.
func NewGoalsHandler(service Service) *GoalsHandler {
	return &GoalsHandler{Service: service}
}

// CreateGoal handles the logic for creating a new goal.
func (h *GoalsHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var body api.NewGoal
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	goal, err := h.Service.CreateGoal(r.Context(), middleware.UserID(r.Context()), mapping.ToDomainGoalInput(&body))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiGoal(goal))
}

// ListGoals lists the caller's goals with their displayed amounts.
func (h *GoalsHandler) ListGoals(w http.ResponseWriter, r *http.Request, params api.ListGoalsParams) {
	var status *models.GoalStatus
	if params.Status != nil {
		s := models.GoalStatus(*params.Status)
		status = &s
	}

	goals, err := h.Service.ListGoals(r.Context(), middleware.UserID(r.Context()), status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiGoals(goals))
}

func (h *GoalsHandler) GetGoal(w http.ResponseWriter, r *http.Request, goalId openapi_types.UUID) {
	goal, err := h.Service.GetGoal(r.Context(), middleware.UserID(r.Context()), goalId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiGoal(goal))
}

// UpdateGoal renames or retargets an active goal.
func (h *GoalsHandler) UpdateGoal(w http.ResponseWriter, r *http.Request, goalId openapi_types.UUID) {
	var body api.GoalUpdate
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	goal, err := h.Service.UpdateGoal(r.Context(), middleware.UserID(r.Context()), goalId.String(), mapping.ToDomainGoalUpdate(&body))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiGoal(goal))
}

func (h *GoalsHandler) CancelGoal(w http.ResponseWriter, r *http.Request, goalId openapi_types.UUID) {
	goal, err := h.Service.CancelGoal(r.Context(), middleware.UserID(r.Context()), goalId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiGoal(goal))
}

// DeleteGoal removes a goal and reverses the savings tagged to it.
func (h *GoalsHandler) DeleteGoal(w http.ResponseWriter, r *http.Request, goalId openapi_types.UUID) {
	if err := h.Service.DeleteGoal(r.Context(), middleware.UserID(r.Context()), goalId.String()); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

// CompleteGoal spends the goal's target from the month's savings.
func (h *GoalsHandler) CompleteGoal(w http.ResponseWriter, r *http.Request, goalId openapi_types.UUID) {
	goal, entry, err := h.Service.CompleteGoal(r.Context(), middleware.UserID(r.Context()), goalId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.GoalCompletion{
		Goal:  *mapping.ToApiGoal(goal),
		Entry: *mapping.ToApiLedgerEntry(entry),
	})
}
