package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/questa-app/questa-backend/internal/authctx"
	"github.com/questa-app/questa-backend/internal/service"
)

type RewardHandler struct {
	svc service.RewardService
}

func NewRewardHandler(svc service.RewardService) *RewardHandler {
	return &RewardHandler{svc: svc}
}

type RewardResponse struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	PointsNeeded int64  `json:"points_needed"`
	CanPurchase  bool   `json:"can_purchase"`
	Action       string `json:"action"`
}

func (h *RewardHandler) List(c echo.Context) error {
	userID, ok := authctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewDetailResponse("Authentication credentials were not provided."))
	}
	rewards, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewDetailResponse("Could not fetch rewards."))
	}
	resp := make([]RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		resp = append(resp, RewardResponse{
			ID:           r.Reward.ID,
			Title:        r.Reward.Title,
			PointsNeeded: r.Reward.PointsNeeded,
			CanPurchase:  r.CanPurchase,
			Action:       r.Action,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RewardHandler) Redeem(c echo.Context) error {
	userID, ok := authctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewDetailResponse("Authentication credentials were not provided."))
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, NewDetailResponse("Reward not found."))
	}
	if err := h.svc.Redeem(c.Request().Context(), userID, id); err != nil {
		switch err {
		case service.ErrNotFound:
			return c.JSON(http.StatusNotFound, NewDetailResponse("Reward not found."))
		case service.ErrInsufficientPoints:
			return c.JSON(http.StatusBadRequest, NewDetailResponse("Not enough points to redeem this reward."))
		default:
			return c.JSON(http.StatusInternalServerError, NewDetailResponse("Could not redeem reward."))
		}
	}
	return c.JSON(http.StatusOK, NewDetailResponse("Reward redeemed successfully."))
}
