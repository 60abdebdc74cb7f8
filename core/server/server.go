package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/cache"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/config"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/queue"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole service: config, logging, postgres, redis, the asynq
// worker and the echo HTTP server. Blocks until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Logger.Level, cfg.Logger.Format)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer redisCache.Close()

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// auth first: every other module hangs its routes off the auth middleware
	_, mw := auth.Init(e, &db, redisCache)
	demo.Init(e, &db, queueClient, mw)
	schedule.Init(e, &db, queueClient, mw)
	team.Init(e, &db, mw)
	recipe.Init(e, &db, mw)
	notifSvc := notification.Init(e, &db, mw)

	// background worker for notification fan-out
	go func() {
		if err := queue.RunWorker(cfg.Redis, notifSvc.BuildMux()); err != nil {
			logger.Error("Server:AsynqWorker:Error", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Server listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
