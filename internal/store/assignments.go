package store

import (
	"context"
	"fmt"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// Assignments returns a copy of all day-to-plan assignments.
func (s *Store) Assignments() []models.DayWorkoutAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DayWorkoutAssignment{}, s.assignments...)
}

// AssignmentFor returns the plan assigned to a date key, if any.
func (s *Store) AssignmentFor(date string) (models.WorkoutPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assignments {
		if a.Date == date && a.PlanID != nil {
			p, err := s.planByIDLocked(*a.PlanID)
			if err != nil {
				return models.WorkoutPlan{}, false
			}
			return p, true
		}
	}
	return models.WorkoutPlan{}, false
}

// Assign sets or clears the plan for a date. At most one assignment exists
// per date; a repeated assign overwrites. A nil planID clears the day.
func (s *Store) Assign(ctx context.Context, date string, planID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if planID != nil {
		if _, err := s.planByIDLocked(*planID); err != nil {
			return err
		}
	}

	found := false
	for i, a := range s.assignments {
		if a.Date == date {
			s.assignments[i].PlanID = planID
			found = true
			break
		}
	}
	if !found {
		s.assignments = append(s.assignments, models.DayWorkoutAssignment{Date: date, PlanID: planID})
	}

	if err := s.persist(ctx, keyAssignments, s.assignments); err != nil {
		return fmt.Errorf("assigning %s: %w", date, err)
	}
	pid := "none"
	if planID != nil {
		pid = *planID
	}
	s.log.Info("workout assigned", "date", date, "plan", pid)
	return nil
}
