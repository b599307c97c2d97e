package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/questa-app/questa-backend/internal/authctx"
	"github.com/questa-app/questa-backend/internal/service"
)

type AccountHandler struct {
	accounts service.AccountService
}

func NewAccountHandler(accounts service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type AccountResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Points   int64  `json:"points"`
}

func (h *AccountHandler) MyAccount(c echo.Context) error {
	userID, ok := authctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewDetailResponse("Authentication credentials were not provided."))
	}
	u, err := h.accounts.Get(c.Request().Context(), userID)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewDetailResponse("Not found."))
		}
		return c.JSON(http.StatusInternalServerError, NewDetailResponse("Could not fetch account."))
	}
	return c.JSON(http.StatusOK, AccountResponse{
		Username: u.Username,
		Email:    u.Email,
		Points:   u.Points,
	})
}
