package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"deal_analyzer/pkg/api/analysis"
	"deal_analyzer/pkg/api/worksheet"
	"deal_analyzer/pkg/core/config"
	"deal_analyzer/pkg/core/store"
)

func corsMiddleware(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func gracefulShutdown(server *http.Server) {
	stopper := make(chan os.Signal, 1)
	signal.Notify(stopper, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stopper
		zap.L().Info("Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			zap.L().Error("Server shutdown failed", zap.Error(err))
			return
		}
		store.Close()
		zap.L().Info("Server exited gracefully")
	}()
}

func main() {
	godotenv.Load()

	logCfg := zap.NewProductionConfig()
	logger, _ := logCfg.Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	cfg, err := config.Load("config/server.yaml")
	if err != nil {
		zap.L().Warn("Config load failed, using defaults", zap.Error(err))
	}

	// The database is optional: without it the calculate and analyze
	// endpoints still work, only save/load are unavailable.
	if err := store.InitDB(context.Background(), os.Getenv("DATABASE_URL")); err != nil {
		zap.L().Warn("Database unavailable, running without persistence", zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.AllowOrigin))

	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	worksheet.Register(router)
	analysis.Register(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	gracefulShutdown(server)

	zap.L().Info("API server listening", zap.Int("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Error starting server: %v", err)
	}
}
