package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/questa-app/questa-backend/internal/config"
	"github.com/questa-app/questa-backend/internal/handler"
	appmw "github.com/questa-app/questa-backend/internal/middleware"
	"github.com/questa-app/questa-backend/internal/repository"
	"github.com/questa-app/questa-backend/internal/service"
	"github.com/questa-app/questa-backend/internal/token"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config, tokens *token.Manager) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc:  allowOrigin(cfg.CORSAllowedOrigins),
	}))

	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	rewardRepo := repository.NewRewardRepository(db)

	accountSvc := service.NewAccountService(userRepo)
	activitySvc := service.NewActivityService(activityRepo)
	rewardSvc := service.NewRewardService(rewardRepo, userRepo)

	authHandler := handler.NewAuthHandler(accountSvc, tokens)
	accountHandler := handler.NewAccountHandler(accountSvc)
	activityHandler := handler.NewActivityHandler(activitySvc)
	rewardHandler := handler.NewRewardHandler(rewardSvc)

	authMw := appmw.NewAuthMiddleware(tokens)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/token", authHandler.Token)
	api.POST("/token/refresh", authHandler.TokenRefresh)

	api.GET("/my-account", accountHandler.MyAccount, authMw.RequireAuth)
	api.GET("/activities", activityHandler.List, authMw.RequireAuth)
	api.GET("/activities/:id", activityHandler.Get, authMw.RequireAuth)
	api.POST("/activities/:id", activityHandler.Complete, authMw.RequireAuth)
	api.GET("/rewards", rewardHandler.List, authMw.RequireAuth)
	api.POST("/rewards/:id", rewardHandler.Redeem, authMw.RequireAuth)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// allowOrigin admits localhost during development plus the configured
// deployment origins; everything else is rejected since credentials are
// allowed on CORS responses.
func allowOrigin(allowlist []string) func(origin string) (bool, error) {
	return func(origin string) (bool, error) {
		low := strings.ToLower(origin)
		if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
			strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
			return true, nil
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false, nil
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return false, nil
		}
		for _, allowed := range allowlist {
			if strings.EqualFold(strings.TrimSuffix(allowed, "/"), strings.TrimSuffix(origin, "/")) {
				return true, nil
			}
		}
		return false, nil
	}
}
