package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/questa-app/questa-backend/internal/authctx"
	"github.com/questa-app/questa-backend/internal/token"
)

type AuthMiddleware struct {
	tokens *token.Manager
}

func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth verifies the bearer access token and stores the resolved user id
// on the request context before the handler runs.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Authentication credentials were not provided."})
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")
		userID, err := m.tokens.VerifyAccess(tokenStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
		}
		ctx := authctx.WithUserID(c.Request().Context(), userID)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
