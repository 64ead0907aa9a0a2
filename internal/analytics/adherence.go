package analytics

import (
	"math"
	"time"

	"github.com/Mriskiali/motion-fits/internal/dateutil"
	"github.com/Mriskiali/motion-fits/internal/models"
)

// completionIndex answers "is this exercise completed on this date" in
// constant time.
type completionIndex map[[3]string]bool

func indexCompletions(completed []models.CompletedExercise) completionIndex {
	idx := make(completionIndex, len(completed))
	for _, ce := range completed {
		idx[[3]string{ce.PlanID, ce.ExerciseID, ce.Date}] = true
	}
	return idx
}

// adherence walks the given days: a day with a plan assignment counts as
// assigned, and as complete only when every exercise of its plan is
// completed that day. Returns the rounded percentage, 0 with no assigned
// days.
func adherence(
	days []time.Time,
	assignments []models.DayWorkoutAssignment,
	plans []models.WorkoutPlan,
	completed []models.CompletedExercise,
) int {
	planByID := make(map[string]models.WorkoutPlan, len(plans))
	for _, p := range plans {
		planByID[p.ID] = p
	}
	assignmentByDate := make(map[string]string, len(assignments))
	for _, a := range assignments {
		if a.PlanID != nil {
			assignmentByDate[a.Date] = *a.PlanID
		}
	}
	idx := indexCompletions(completed)

	assigned, complete := 0, 0
	for _, day := range days {
		date := dateutil.Key(day)
		planID, ok := assignmentByDate[date]
		if !ok {
			continue
		}
		assigned++

		plan, ok := planByID[planID]
		if !ok {
			continue
		}
		allDone := true
		for _, ex := range plan.Exercises {
			if !idx[[3]string{planID, ex.ID, date}] {
				allDone = false
				break
			}
		}
		if allDone {
			complete++
		}
	}

	if assigned == 0 {
		return 0
	}
	return int(math.Round(float64(complete) / float64(assigned) * 100))
}

// WeeklyAdherence is the plan-completion percentage over the assigned days
// of the current week.
func WeeklyAdherence(now time.Time, assignments []models.DayWorkoutAssignment, plans []models.WorkoutPlan, completed []models.CompletedExercise) int {
	return adherence(dateutil.WeekDates(now), assignments, plans, completed)
}

// MonthlyAdherence is the plan-completion percentage over the assigned days
// of the current calendar month.
func MonthlyAdherence(now time.Time, assignments []models.DayWorkoutAssignment, plans []models.WorkoutPlan, completed []models.CompletedExercise) int {
	return adherence(dateutil.MonthDates(now), assignments, plans, completed)
}
