package server

import (
	"context"
	"fmt"
	"net/http"

	_ "pinboard/docs"
	"pinboard/internal/auth"
	"pinboard/internal/handler"
	"pinboard/internal/middleware"
	"pinboard/internal/repository"
	"pinboard/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Deps is everything the router needs to build its handlers.
type Deps struct {
	Users      repository.UserRepositoryInterface
	Pins       repository.PinRepositoryInterface
	Boards     repository.BoardRepositoryInterface
	Placements repository.PlacementRepositoryInterface
	Tokens     *auth.TokenService
	Log        *zap.Logger

	// Health reports whether the record store is reachable.
	Health         func(ctx context.Context) error
	SecureCookies  bool
	MetricsEnabled bool
}

func NewRouter(deps Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(middleware.Identify(deps.Tokens))
	r.Use(middleware.RequestLogger(deps.Log))
	if deps.MetricsEnabled {
		r.Use(middleware.Metrics())
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(deps.Users, deps.Tokens, deps.SecureCookies)
	pinHandler := handler.NewPinHandler(deps.Pins)
	boardHandler := handler.NewBoardHandler(deps.Boards, deps.Pins, deps.Placements)

	r.GET("/", handler.Index)

	// Account routes
	r.GET("/login", userHandler.LoginForm)
	r.POST("/login", userHandler.Login)
	r.GET("/register", userHandler.RegisterForm)
	r.POST("/register", userHandler.Register)
	r.GET("/logout", userHandler.Logout)

	// Pin routes
	r.GET("/pin", pinHandler.GetAll)
	r.GET("/pin/", pinHandler.GetAll)
	r.POST("/pin/", pinHandler.Create)
	r.GET("/pin/:id", pinHandler.GetByID)
	r.POST("/pin/:id", pinHandler.Update)

	// Board routes, /board/{id}.json included
	r.GET("/board", boardHandler.GetAll)
	r.GET("/board/", boardHandler.GetAll)
	r.POST("/board/", boardHandler.Create)
	r.GET("/board/:id", boardHandler.GetByID)
	r.POST("/board/:id", boardHandler.Update)

	r.StaticFS("/static", web.Static())

	// Operational routes
	r.GET("/healthz", func(c *gin.Context) {
		if deps.Health != nil {
			if err := deps.Health(c.Request.Context()); err != nil {
				deps.Log.Error("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}
