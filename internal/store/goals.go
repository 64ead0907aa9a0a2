package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// Goals returns the current goals and reminder settings.
func (s *Store) Goals() models.GoalsSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals
}

// SaveGoals validates and persists goals settings. The weekly target is
// clamped to [0, 7] and preferred days are deduplicated and sorted.
func (s *Store) SaveGoals(ctx context.Context, gs models.GoalsSettings) error {
	if gs.WeeklyTarget < 0 {
		gs.WeeklyTarget = 0
	}
	if gs.WeeklyTarget > 7 {
		gs.WeeklyTarget = 7
	}

	seen := map[int]bool{}
	days := gs.PreferredDays[:0]
	for _, d := range gs.PreferredDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: preferred day %d out of range", ErrValidation, d)
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Ints(days)
	gs.PreferredDays = days

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, keyGoals, gs); err != nil {
		return err
	}
	s.goals = gs
	return nil
}
