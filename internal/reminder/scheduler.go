package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
	"github.com/google/uuid"
)

// Scheduler is the external reminder-delivery capability. Implementations
// wrap a platform notification system; scheduling returns opaque handles
// the caller stores for later cancellation.
type Scheduler interface {
	// CheckOrRequestPermission reports whether reminders may be delivered,
	// prompting the user if the platform requires it.
	CheckOrRequestPermission(ctx context.Context) bool
	// Cancel revokes previously scheduled reminders by handle. Unknown
	// handles are ignored.
	Cancel(ctx context.Context, ids []string) error
	// Schedule books one reminder per upcoming preferred-day/time slot
	// within the schedule window and returns their handles.
	Schedule(ctx context.Context, gs models.GoalsSettings, now time.Time) ([]string, error)
}

// InProcess is a Scheduler that keeps scheduled occurrences in memory.
// It stands in where no platform notification integration exists (server
// deployments, tests); the occurrence bookkeeping is real, delivery is not.
type InProcess struct {
	mu        sync.Mutex
	scheduled map[string]time.Time
	denied    bool
}

// NewInProcess returns an empty in-process scheduler.
func NewInProcess() *InProcess {
	return &InProcess{scheduled: make(map[string]time.Time)}
}

// Deny makes permission checks fail, for exercising the denial path.
func (s *InProcess) Deny(denied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied = denied
}

func (s *InProcess) CheckOrRequestPermission(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.denied
}

func (s *InProcess) Cancel(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.scheduled, id)
	}
	return nil
}

func (s *InProcess) Schedule(_ context.Context, gs models.GoalsSettings, now time.Time) ([]string, error) {
	if !gs.RemindersEnabled || len(gs.PreferredDays) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dates := Occurrences(gs, now, ScheduleWeeks)
	ids := make([]string, 0, len(dates))
	for _, when := range dates {
		id := uuid.NewString()
		s.scheduled[id] = when
		ids = append(ids, id)
	}
	return ids, nil
}

// Pending returns the number of currently scheduled occurrences.
func (s *InProcess) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scheduled)
}
