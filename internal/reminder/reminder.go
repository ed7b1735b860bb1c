package reminder

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sgn7/packmate/internal/service"
	"github.com/sgn7/packmate/pkg/cleanup"
	"github.com/sgn7/packmate/pkg/entity"
)

// DefaultSchedule fires the reminder every day at 07:30 local time.
const DefaultSchedule = "30 7 * * *"

const runTimeout = time.Minute

// NotificationSink receives the unchecked-item count computed by the
// trigger. Rendering the notification is outside this package.
type NotificationSink interface {
	Notify(ctx context.Context, uncheckedCount int) error
}

// LogSink writes the reminder to the log. It is the default sink when no
// push delivery is wired up.
type LogSink struct{}

func (LogSink) Notify(_ context.Context, uncheckedCount int) error {
	slog.Default().Info("daily reminder", slog.Int("unchecked_count", uncheckedCount))
	return nil
}

// Trigger owns the single recurring job of the app: once per interval it
// reconciles today's check history, computes the unchecked count and hands
// it to the sink. A failed run is logged and retried on the next interval;
// the trigger keeps no retry state of its own.
type Trigger struct {
	checklist service.ChecklistServiceI
	stats     service.StatsServiceI
	sink      NotificationSink
	schedule  string
	cron      *cron.Cron
}

func New(checklist service.ChecklistServiceI, stats service.StatsServiceI, sink NotificationSink, schedule string) *Trigger {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if sink == nil {
		sink = LogSink{}
	}
	return &Trigger{
		checklist: checklist,
		stats:     stats,
		sink:      sink,
		schedule:  schedule,
		cron:      cron.New(),
	}
}

func (t *Trigger) Start() error {
	_, err := t.cron.AddFunc(t.schedule, t.tick)
	if err != nil {
		return errors.New("scheduling reminder error: " + err.Error())
	}
	t.cron.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping reminder cron",
		F: func() error {
			t.cron.Stop()
			return nil
		},
	})
	return nil
}

func (t *Trigger) tick() {
	logger := slog.Default().With(slog.String("job", "daily_reminder"))
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	if err := t.Run(ctx, time.Now()); err != nil {
		logger.Error("reminder run failed, retrying next interval", slog.String("error", err.Error()))
		return
	}
	logger.Info("reminder run completed")
}

// Run executes one reminder pass for the given wall-clock time. History is
// reconciled before the count is read, so a scheduled item always has a
// record by the time it is counted.
func (t *Trigger) Run(ctx context.Context, now time.Time) error {
	today := entity.DateOf(now)
	if err := t.checklist.EnsureHistoryForDate(ctx, today); err != nil {
		return err
	}
	count, err := t.stats.UncheckedCountFor(ctx, today)
	if err != nil {
		return err
	}
	if err := t.sink.Notify(ctx, count); err != nil {
		return errors.New("notification sink error: " + err.Error())
	}
	return nil
}
