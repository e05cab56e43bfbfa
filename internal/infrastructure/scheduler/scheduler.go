package scheduler

import (
	"context"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"
)

// Scheduler periodically runs the due-soon and overdue notification sweeps.
// The interval is re-read from the settings cache on every cycle so a config
// change takes effect without a restart.
type Scheduler struct {
	notificationService notifications.NotificationService
	settingsCache       *settings.Cache
	logger              logger.Logger
	stopCh              chan struct{}
	doneCh              chan struct{}
}

// NewScheduler creates a Scheduler. Call Start to begin sweeping.
func NewScheduler(notificationService notifications.NotificationService, settingsCache *settings.Cache, logger logger.Logger) (*Scheduler, error) {
	return &Scheduler{
		notificationService: notificationService,
		settingsCache:       settingsCache,
		logger:              logger,
		stopCh:              make(chan struct{}),
		doneCh:              make(chan struct{}),
	}, nil
}

// Start launches the sweep loop in a background goroutine.
func (s *Scheduler) Start() {
	go s.run()
	s.logger.Info("Notification scheduler started")
}

// Stop terminates the sweep loop and waits for the current cycle to finish.
func (s *Scheduler) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.logger.Info("Notification scheduler stopped")
}

func (s *Scheduler) run() {
	defer close(s.doneCh)

	for {
		interval := time.Duration(s.settingsCache.Current().SchedulerIntervalSeconds) * time.Second

		select {
		case <-s.stopCh:
			return
		case <-time.After(interval):
			s.sweep()
		}
	}
}

func (s *Scheduler) sweep() {
	current := s.settingsCache.Current()
	if !current.NotificationsEnabled {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if sent, err := s.notificationService.TriggerDueSoon(ctx); err != nil {
		s.logger.Error("Due-soon sweep failed: ", err)
	} else if sent > 0 {
		s.logger.Info("Due-soon sweep sent ", sent, " notifications")
	}

	if sent, err := s.notificationService.TriggerOverdue(ctx); err != nil {
		s.logger.Error("Overdue sweep failed: ", err)
	} else if sent > 0 {
		s.logger.Info("Overdue sweep sent ", sent, " notifications")
	}
}
