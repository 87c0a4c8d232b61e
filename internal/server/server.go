package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pinboard/internal/auth"
	"pinboard/internal/config"
	"pinboard/internal/database"
	"pinboard/internal/logger"
	"pinboard/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.MigrationURL()); err != nil {
			return nil, err
		}
	}

	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	logger.Log.Info("connected to database", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))

	r, err := NewRouter(Deps{
		Users:          repository.NewUserRepository(db),
		Pins:           repository.NewPinRepository(db),
		Boards:         repository.NewBoardRepository(db),
		Placements:     repository.NewPlacementRepository(db),
		Tokens:         auth.NewTokenService(cfg.JWTSecret, cfg.SessionTTL),
		Log:            logger.Log,
		Health:         sqlDB.PingContext,
		SecureCookies:  cfg.SecureCookies,
		MetricsEnabled: cfg.MetricsEnabled,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		logger.Log.Info("server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("failed to listen", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Log.Info("server exited properly")
}
