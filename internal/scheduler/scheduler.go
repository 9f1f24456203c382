package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/config"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

// CacheWarmer refreshes the estimation cache.
type CacheWarmer interface {
	Refresh(ctx context.Context) ([]models.WeightEstimation, error)
}

// AlertForwarder pushes pending alerts out.
type AlertForwarder interface {
	ForwardPending(ctx context.Context) (int, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	cfg       config.ScheduleConfig
	warmer    CacheWarmer
	forwarder AlertForwarder
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. forwarder may be nil when
// alert forwarding is disabled.
func NewScheduler(cfg config.ScheduleConfig, warmer CacheWarmer, forwarder AlertForwarder, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		cfg:       cfg,
		warmer:    warmer,
		forwarder: forwarder,
		logger:    logger,
	}, nil
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.CacheWarmCron, s.warmCache); err != nil {
		return fmt.Errorf("schedule cache warm-up: %w", err)
	}

	if s.forwarder != nil {
		if _, err := s.cron.AddFunc(s.cfg.AlertsCron, s.forwardAlerts); err != nil {
			return fmt.Errorf("schedule alert forwarding: %w", err)
		}
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// Jobs returns the number of registered jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) warmCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	items, err := s.warmer.Refresh(ctx)
	if err != nil {
		s.logger.Error("failed to warm estimation cache", zap.Error(err))
		return
	}
	s.logger.Info("estimation cache warmed", zap.Int("count", len(items)))
}

func (s *Scheduler) forwardAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.forwarder.ForwardPending(ctx); err != nil {
		s.logger.Error("failed to forward alerts", zap.Error(err))
	}
}
