package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/questa-app/questa-backend/internal/service"
	"github.com/questa-app/questa-backend/internal/token"
)

type AuthHandler struct {
	accounts service.AccountService
	tokens   *token.Manager
}

func NewAuthHandler(accounts service.AccountService, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewDetailResponse("Invalid request body."))
	}
	_, err := h.accounts.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, NewDetailResponse("Username and password are required."))
		case errors.Is(err, service.ErrUsernameTaken):
			return c.JSON(http.StatusBadRequest, NewDetailResponse("A user with that username already exists."))
		default:
			return c.JSON(http.StatusBadRequest, NewDetailResponse("Could not create user."))
		}
	}
	return c.JSON(http.StatusCreated, NewDetailResponse("User created successfully."))
}

type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewDetailResponse("Invalid request body."))
	}
	u, err := h.accounts.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, NewDetailResponse("No active account found with the given credentials"))
		}
		return c.JSON(http.StatusInternalServerError, NewDetailResponse("Could not issue token."))
	}
	access, refresh, err := h.tokens.IssuePair(u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewDetailResponse("Could not issue token."))
	}
	return c.JSON(http.StatusOK, TokenPairResponse{Access: access, Refresh: refresh})
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh"`
}

type TokenRefreshResponse struct {
	Access string `json:"access"`
}

func (h *AuthHandler) TokenRefresh(c echo.Context) error {
	var req TokenRefreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewDetailResponse("Invalid request body."))
	}
	access, err := h.tokens.Refresh(req.Refresh)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, NewDetailResponse("Token is invalid or expired"))
	}
	return c.JSON(http.StatusOK, TokenRefreshResponse{Access: access})
}
