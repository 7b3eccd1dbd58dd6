package scheduler

import (
	"context"
	"fmt"

	"github.com/finlearn/finlearn-api/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the periodic market snapshot job. It only reads market
// data and logs it; nothing is written to the store.
type Scheduler struct {
	cron *cron.Cron
	svc  *service.Service
	log  *logrus.Logger
	ctx  context.Context
}

// New creates a scheduler bound to the given service.
func New(ctx context.Context, svc *service.Service, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		svc:  svc,
		log:  log,
		ctx:  ctx,
	}
}

// Register adds the trend snapshot job. An empty spec registers nothing.
func (s *Scheduler) Register(trendsCron string) error {
	if trendsCron == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(trendsCron, s.snapshotTrends); err != nil {
		return fmt.Errorf("register trends job: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) snapshotTrends() {
	trends := s.svc.MarketTrends(s.ctx)
	if len(trends) == 0 {
		s.log.Warn("market snapshot: no index data available")
		return
	}
	for _, t := range trends {
		s.log.WithFields(logrus.Fields{
			"index":  t.Name,
			"value":  t.Value,
			"change": t.Change,
			"trend":  t.Trend,
		}).Info("market snapshot")
	}
}
