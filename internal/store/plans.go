package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// Plans returns all workout plans, built-ins first, then custom plans.
func (s *Store) Plans() []models.WorkoutPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	plans := models.BuiltinPlans()
	return append(plans, s.customPlans...)
}

// PlanByID resolves a plan by its identifier across built-in and custom
// plans.
func (s *Store) PlanByID(id string) (models.WorkoutPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planByIDLocked(id)
}

func (s *Store) planByIDLocked(id string) (models.WorkoutPlan, error) {
	for _, p := range models.BuiltinPlans() {
		if p.ID == id {
			return p, nil
		}
	}
	for _, p := range s.customPlans {
		if p.ID == id {
			return p, nil
		}
	}
	return models.WorkoutPlan{}, fmt.Errorf("plan %q: %w", id, ErrPlanNotFound)
}

// NewPlanInput is the payload for creating a custom plan. Exercise IDs are
// assigned by the store.
type NewPlanInput struct {
	Name      string             `json:"name"`
	Subtitle  string             `json:"subtitle"`
	Icon      string             `json:"icon"`
	Color     string             `json:"color"`
	Exercises []NewExerciseInput `json:"exercises"`
}

// NewExerciseInput describes one exercise of a plan being created. Either
// Reps or Duration must be present.
type NewExerciseInput struct {
	Name     string `json:"name"`
	Sets     string `json:"sets"`
	Reps     string `json:"reps,omitempty"`
	Duration string `json:"duration,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

func (in NewPlanInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: workout name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Subtitle) == "" {
		return fmt.Errorf("%w: workout description is required", ErrValidation)
	}
	if len(in.Exercises) == 0 {
		return fmt.Errorf("%w: at least one exercise is required", ErrValidation)
	}
	for i, ex := range in.Exercises {
		if strings.TrimSpace(ex.Name) == "" || strings.TrimSpace(ex.Sets) == "" {
			return fmt.Errorf("%w: exercise %d needs a name and sets", ErrValidation, i+1)
		}
		if strings.TrimSpace(ex.Reps) == "" && strings.TrimSpace(ex.Duration) == "" {
			return fmt.Errorf("%w: exercise %d needs reps or a duration", ErrValidation, i+1)
		}
	}
	return nil
}

// CreateCustomPlan validates and persists a user-created plan. No state
// changes on validation failure.
func (s *Store) CreateCustomPlan(ctx context.Context, in NewPlanInput) (models.WorkoutPlan, error) {
	if err := in.validate(); err != nil {
		return models.WorkoutPlan{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	plan := models.WorkoutPlan{
		ID:       fmt.Sprintf("custom-%d", now),
		Name:     strings.TrimSpace(in.Name),
		Subtitle: strings.TrimSpace(in.Subtitle),
		Icon:     in.Icon,
		Color:    in.Color,
		IsCustom: true,
	}
	for i, ex := range in.Exercises {
		plan.Exercises = append(plan.Exercises, models.Exercise{
			ID:       fmt.Sprintf("ex-%d-%d", now, i+1),
			Name:     strings.TrimSpace(ex.Name),
			Sets:     strings.TrimSpace(ex.Sets),
			Reps:     strings.TrimSpace(ex.Reps),
			Duration: strings.TrimSpace(ex.Duration),
			Notes:    strings.TrimSpace(ex.Notes),
		})
	}

	updated := append(append([]models.WorkoutPlan{}, s.customPlans...), plan)
	if err := s.persist(ctx, keyCustomPlans, updated); err != nil {
		return models.WorkoutPlan{}, err
	}
	s.customPlans = updated
	return plan, nil
}

// DeletePlan removes a custom plan and cascades: days referencing it are
// unassigned, and its completion and set-count records are dropped.
// Session history keeps its denormalized snapshot of the plan.
func (s *Store) DeletePlan(ctx context.Context, planID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.customPlans {
		if p.ID == planID {
			idx = i
			break
		}
	}
	if idx < 0 {
		if _, err := s.planByIDLocked(planID); err == nil {
			return ErrBuiltinPlan
		}
		return fmt.Errorf("plan %q: %w", planID, ErrPlanNotFound)
	}

	s.customPlans = append(s.customPlans[:idx], s.customPlans[idx+1:]...)
	s.persistLogged(ctx, keyCustomPlans, s.customPlans)

	for i, a := range s.assignments {
		if a.PlanID != nil && *a.PlanID == planID {
			s.assignments[i].PlanID = nil
		}
	}
	s.persistLogged(ctx, keyAssignments, s.assignments)

	kept := s.completed[:0]
	for _, ce := range s.completed {
		if ce.PlanID != planID {
			kept = append(kept, ce)
		}
	}
	s.completed = kept
	s.persistLogged(ctx, keyCompletedExercises, s.completed)

	counts := s.setCounts[:0]
	for _, sc := range s.setCounts {
		if sc.PlanID != planID {
			counts = append(counts, sc)
		}
	}
	s.setCounts = counts
	s.persistLogged(ctx, keySetCounts, s.setCounts)

	s.log.Info("workout plan deleted", "plan", planID)
	return nil
}
