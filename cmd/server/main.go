package main

import (
	"log"

	"pinboard/internal/config"
	"pinboard/internal/logger"
	"pinboard/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Pinboard API
// @version         1.0
// @description     JSON view of pinboard boards. Pages are served as HTML.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	logger.Init(cfg.LogLevel)
	defer logger.Log.Sync()
	gin.SetMode(cfg.GinMode)

	s, err := server.Init(cfg)
	if err != nil {
		logger.Log.Fatal("server initialization failed", zap.Error(err))
	}

	s.Run()
}
