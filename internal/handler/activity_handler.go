package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/questa-app/questa-backend/internal/authctx"
	"github.com/questa-app/questa-backend/internal/service"
)

type ActivityHandler struct {
	svc service.ActivityService
}

func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type ActivityResponse struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Points      int64   `json:"points"`
	Image       *string `json:"image"`
	TimeHours   int64   `json:"time_hours"`
	Weather     int64   `json:"weather"`
	StarRating  float64 `json:"star_rating"`
	Completed   bool    `json:"completed"`
}

func (h *ActivityHandler) List(c echo.Context) error {
	userID, ok := authctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewDetailResponse("Authentication credentials were not provided."))
	}
	activities, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewDetailResponse("Could not fetch activities."))
	}
	resp := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, toActivityResponse(a))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ActivityHandler) Get(c echo.Context) error {
	userID, ok := authctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewDetailResponse("Authentication credentials were not provided."))
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, NewDetailResponse("Activity not found."))
	}
	a, err := h.svc.Get(c.Request().Context(), userID, id)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewDetailResponse("Activity not found."))
		}
		return c.JSON(http.StatusInternalServerError, NewDetailResponse("Could not fetch activity."))
	}
	return c.JSON(http.StatusOK, toActivityResponse(*a))
}

func (h *ActivityHandler) Complete(c echo.Context) error {
	userID, ok := authctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewDetailResponse("Authentication credentials were not provided."))
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, NewDetailResponse("Activity not found."))
	}
	if err := h.svc.Complete(c.Request().Context(), userID, id); err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewDetailResponse("Activity not found."))
		}
		return c.JSON(http.StatusInternalServerError, NewDetailResponse("Could not complete activity."))
	}
	return c.JSON(http.StatusOK, NewDetailResponse("Activity completed successfully."))
}

func toActivityResponse(a service.ActivityForUser) ActivityResponse {
	return ActivityResponse{
		ID:          a.Activity.ID,
		Title:       a.Activity.Title,
		Description: a.Activity.Description,
		Points:      a.Activity.Points,
		Image:       a.Activity.Image,
		TimeHours:   a.Activity.TimeHours,
		Weather:     a.Activity.Weather,
		StarRating:  a.Activity.StarRating,
		Completed:   a.Completed,
	}
}
