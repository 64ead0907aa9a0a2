package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
	"github.com/Mriskiali/motion-fits/internal/store"
)

// Service applies goals changes: it re-schedules reminders through the
// Scheduler and persists the settings with the fresh handles.
type Service struct {
	store     *store.Store
	scheduler Scheduler
	log       *slog.Logger
}

// NewService wires the goals store to a scheduler.
func NewService(st *store.Store, sched Scheduler, log *slog.Logger) *Service {
	return &Service{store: st, scheduler: sched, log: log}
}

// Apply saves the settings and rebuilds the reminder schedule: cancel the
// old handles, then schedule the new occurrences. Permission denial is not
// an error — the enabled preference is kept but zero occurrences are
// booked, so the settings round-trip cleanly once permission appears.
func (s *Service) Apply(ctx context.Context, gs models.GoalsSettings, now time.Time) (models.GoalsSettings, error) {
	prev := s.store.Goals()
	if len(prev.ScheduledIDs) > 0 {
		if err := s.scheduler.Cancel(ctx, prev.ScheduledIDs); err != nil {
			s.log.Warn("canceling old reminders failed", "error", err)
		}
	}

	gs.ScheduledIDs = []string{}
	gs.UpdatedAt = now.UnixMilli()

	if gs.RemindersEnabled {
		if !s.scheduler.CheckOrRequestPermission(ctx) {
			s.log.Info("reminder permission denied, keeping preference without schedule")
		} else {
			ids, err := s.scheduler.Schedule(ctx, gs, now)
			if err != nil {
				return models.GoalsSettings{}, err
			}
			gs.ScheduledIDs = ids
		}
	}

	if err := s.store.SaveGoals(ctx, gs); err != nil {
		return models.GoalsSettings{}, err
	}
	saved := s.store.Goals()
	s.log.Info("goals applied",
		"weeklyTarget", saved.WeeklyTarget,
		"reminders", saved.RemindersEnabled,
		"scheduled", len(saved.ScheduledIDs),
	)
	return saved, nil
}
