package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gsushant/task-reminder-api/internal/model"
)

// TaskSource yields the tasks due inside a window.
type TaskSource interface {
	ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error)
}

// Notifier delivers a reminder for one task.
type Notifier interface {
	Notify(ctx context.Context, t model.Task) error
}

// Scheduler periodically scans for tasks due within the look-ahead
// window and sends a reminder for each. It keeps no record of what was
// already notified: a task inside the window on two consecutive ticks
// is notified twice (at-least-once).
type Scheduler struct {
	source    TaskSource
	notifier  Notifier
	logger    *zap.Logger
	interval  time.Duration
	lookAhead time.Duration
	now       func() time.Time
	wg        sync.WaitGroup
	stop      chan struct{}
}

func New(source TaskSource, notifier Notifier, logger *zap.Logger, interval, lookAhead time.Duration) *Scheduler {
	return &Scheduler{
		source:    source,
		notifier:  notifier,
		logger:    logger,
		interval:  interval,
		lookAhead: lookAhead,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting reminder scheduler",
		zap.Duration("interval", s.interval),
		zap.Duration("look_ahead", s.lookAhead),
	)

	s.wg.Add(1)
	go s.run(ctx)
}

func (s *Scheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	close(s.stop)
	s.wg.Wait()
	s.logger.Info("Reminder scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Scan(ctx, s.now()); err != nil {
				s.logger.Error("reminder scan failed", zap.Error(err))
			}
		}
	}
}

// Scan notifies every task whose due_date falls in [now, now+lookAhead]
// inclusive, sequentially. A failed send is logged and does not stop
// the rest of the batch. Returns the number of reminders delivered.
func (s *Scheduler) Scan(ctx context.Context, now time.Time) (int, error) {
	tasks, err := s.source.ListDueBetween(ctx, now, now.Add(s.lookAhead))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, t := range tasks {
		if err := s.notifier.Notify(ctx, t); err != nil {
			s.logger.Error("failed to send reminder",
				zap.Int64("task_id", t.ID),
				zap.String("name", t.Name),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	if len(tasks) > 0 {
		s.logger.Info("reminder scan complete",
			zap.Int("due", len(tasks)),
			zap.Int("sent", sent),
		)
	}
	return sent, nil
}
