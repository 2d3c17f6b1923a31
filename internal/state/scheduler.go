package state

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Task is a named refresh operation run on a fixed interval.
type Task struct {
	Name  string
	Every time.Duration
	Run   func(ctx context.Context) error

	next time.Time
}

// Scheduler drives named refresh tasks at fixed intervals.
//
// Tasks carry explicit intervals and tests can drive ticks deterministically
// through [Scheduler.Tick]. A failed run is logged and
// rescheduled; the next successful tick self-heals the view, so no task error
// is ever fatal.
type Scheduler struct {
	logger *log.Logger
	tasks  []*Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler(logger *log.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Add registers a named task. The first Tick after Add runs it immediately.
func (s *Scheduler) Add(name string, every time.Duration, run func(ctx context.Context) error) {
	s.tasks = append(s.tasks, &Task{Name: name, Every: every, Run: run})
}

// Tick runs every task whose interval has elapsed at now.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	for _, task := range s.tasks {
		if now.Before(task.next) {
			continue
		}
		s.run(ctx, task, now)
	}
}

// Force runs the named task immediately and restarts its interval, regardless
// of schedule. Mutations use this for the refresh that follows them.
func (s *Scheduler) Force(ctx context.Context, name string) {
	for _, task := range s.tasks {
		if task.Name == name {
			s.run(ctx, task, time.Now())
			return
		}
	}
	s.logger.Warn("no such task", "task", name)
}

func (s *Scheduler) run(ctx context.Context, task *Task, now time.Time) {
	task.next = now.Add(task.Every)
	if err := task.Run(ctx); err != nil {
		s.logger.Error("refresh failed", "task", task.Name, "error", err)
	}
}

// Start ticks the scheduler on the given step until the context is done.
func (s *Scheduler) Start(ctx context.Context, step time.Duration) {
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	s.Tick(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Tick(ctx, now)
		}
	}
}
