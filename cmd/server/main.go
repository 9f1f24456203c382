package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/cache"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/config"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/repository/mongodb"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/scheduler"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/server/handlers"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/server/router"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/alerting"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/estimations"
	reportingsvc "github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/reporting"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/views"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/session"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
	whatsappclient "github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/whatsapp"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	api := cattle.NewClient(cfg.API, baseLogger.Named("client.cattle"))

	var store cache.Store = cache.NewMemoryStore()
	if cfg.Cache.Backend == config.CacheBackendMongoDB {
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoStore, err := mongodb.NewCacheStore(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb cache store", zap.Error(err))
		}
		defer func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		store = mongoStore
	}
	baseLogger.Info("estimation cache ready",
		zap.String("backend", cfg.Cache.Backend),
		zap.Int("ttl_minutes", cfg.Cache.TTLMinutes))

	estimationCache := cache.NewEstimationCache(store, baseLogger.Named("cache.estimations"))
	estimationSvc := estimations.NewService(api, estimationCache, cfg.Cache.TTLMinutes, baseLogger.Named("svc.estimations"))
	viewSvc := views.NewService(api, estimationSvc, baseLogger.Named("svc.views"))
	reportingSvc := reportingsvc.NewService(api, baseLogger.Named("svc.reporting"))
	sessionState := session.NewState(api, baseLogger.Named("session"))

	var forwarder scheduler.AlertForwarder
	if cfg.WhatsApp.Enabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		forwarder = alerting.NewForwarder(api, whatsClient, cfg.WhatsApp.AlertsTo, baseLogger.Named("svc.alerting"))
		baseLogger.Info("whatsapp alert forwarding enabled")
	} else {
		baseLogger.Warn("whatsapp credentials missing, alert forwarding disabled")
	}

	handler := handlers.New(viewSvc, sessionState, reportingSvc, estimationSvc, api, baseLogger.Named("handlers"))
	engine := router.New(handler, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(cfg.Schedule, estimationSvc, forwarder, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.API.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("api", cfg.API.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
