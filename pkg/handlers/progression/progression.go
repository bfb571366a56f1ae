package progression

import (
	"context"
	"net/http"
	"strings"

	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/handlers/respond"
	"github.com/chris/pooled-savings/pkg/mapping"
	"github.com/chris/pooled-savings/pkg/middleware"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/savings"
)

//go:generate mockery --name Service --output ./mocks --outpkg mocks

// Service is the part of savings.Service the progression endpoints use.
type Service interface {
	GetProgress(ctx context.Context, userID string) (*savings.ProgressView, error)
	ListRewards(ctx context.Context) ([]models.RewardDefinition, error)
	ListUserRewards(ctx context.Context, userID string) ([]models.UserReward, error)
	RedeemReward(ctx context.Context, userID, rewardID string) (*models.UserReward, error)
	UseReward(ctx context.Context, userID, rewardID, periodID string) (*models.UserReward, error)
	ListChallenges(ctx context.Context) ([]models.ChallengeDefinition, error)
}

// ProgressionHandler holds the dependencies for level, reward and challenge handlers.
type ProgressionHandler struct {
	Service Service
}

// NewProgressionHandler creates a new ProgressionHandler.
func NewProgressionHandler(service Service) *ProgressionHandler {
	return &ProgressionHandler{Service: service}
}

// GetProgress returns the caller's level, points and streak for this month.
func (h *ProgressionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetProgress(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiProgress(view))
}

func (h *ProgressionHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.Service.ListRewards(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiRewards(rewards))
}

func (h *ProgressionHandler) ListMyRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.Service.ListUserRewards(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiUserRewards(rewards))
}

// RedeemReward issues a redemption code for this month.
func (h *ProgressionHandler) RedeemReward(w http.ResponseWriter, r *http.Request, rewardId string) {
	reward, err := h.Service.RedeemReward(r.Context(), middleware.UserID(r.Context()), rewardId)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiUserReward(reward))
}

// UseReward marks a redemption as used.
func (h *ProgressionHandler) UseReward(w http.ResponseWriter, r *http.Request, rewardId string) {
	var body api.RewardUse
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}
	if strings.TrimSpace(body.PeriodId) == "" {
		respond.BadRequest(w, "period_id is required")
		return
	}

	reward, err := h.Service.UseReward(r.Context(), middleware.UserID(r.Context()), rewardId, body.PeriodId)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiUserReward(reward))
}

func (h *ProgressionHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.Service.ListChallenges(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiChallenges(challenges))
}
