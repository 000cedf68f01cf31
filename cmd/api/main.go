package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-reservas/internal/audit"
	"github.com/BruksfildServices01/barberia-reservas/internal/auth"
	"github.com/BruksfildServices01/barberia-reservas/internal/config"
	dbpkg "github.com/BruksfildServices01/barberia-reservas/internal/db"
	"github.com/BruksfildServices01/barberia-reservas/internal/logs"
	"github.com/BruksfildServices01/barberia-reservas/internal/media"
	"github.com/BruksfildServices01/barberia-reservas/internal/metrics"
	"github.com/BruksfildServices01/barberia-reservas/internal/routes"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logs.New(cfg)
	log.Info("starting barberia-reservas", slog.String("env", cfg.Server.Environment))

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Error("database unavailable", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Error("database handle", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	m := metrics.New(cfg.MetricsSpace)

	// ------------------------------------------------------
	// Token revocation: redis when configured, memory otherwise
	// ------------------------------------------------------
	var revoker auth.Revoker = auth.NewMemoryRevoker()
	if cfg.Redis.Addr != "" {
		rdb, err := auth.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Error("redis unavailable", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			os.Exit(1)
		}
		defer rdb.Close()
		revoker = auth.NewRedisRevoker(rdb)
		log.Info("token revocation backed by redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		log.Warn("REDIS_ADDR not set, revoked tokens are kept in memory")
	}

	var photos media.Store
	if cfg.S3.Bucket != "" {
		store, err := media.NewS3Store(cfg.S3)
		if err != nil {
			log.Error("object storage", slog.Any("error", err))
			os.Exit(1)
		}
		photos = store
		log.Info("profile photos enabled", slog.String("bucket", cfg.S3.Bucket))
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log, 100)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		SQL:     sqlDB,
		Config:  cfg,
		Log:     log,
		Metrics: m,
		Audit:   dispatcher,
		Revoker: revoker,
		Photos:  photos,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", slog.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", slog.Any("error", err))
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.Warn("audit queue not fully drained", slog.Any("error", err))
	}

	log.Info("server exited")
}
