package models

import (
	"regexp"
	"strings"
)

// Exercise is a single entry within a workout plan. Sets is kept in string
// form as entered by the user; ParseTargetSets extracts the numeric target.
// Reps and Duration are alternatives: rep-based exercises carry Reps
// (possibly a range like "12–15"), timed ones carry Duration.
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sets     string `json:"sets"`
	Reps     string `json:"reps,omitempty"`
	Duration string `json:"duration,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// WorkoutPlan is an ordered collection of exercises, either shipped as a
// built-in or created by the user (IsCustom).
type WorkoutPlan struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Subtitle  string     `json:"subtitle"`
	Exercises []Exercise `json:"exercises"`
	Icon      string     `json:"icon"`
	Color     string     `json:"color"`
	IsCustom  bool       `json:"isCustom,omitempty"`
}

var (
	nonDigits = regexp.MustCompile(`[^\d]`)
	digitRuns = regexp.MustCompile(`\d+`)
)

// ParseTargetSets extracts the target set count from a sets string like "4".
// Returns 0 for empty or non-numeric input.
func ParseTargetSets(sets string) int {
	clean := nonDigits.ReplaceAllString(strings.TrimSpace(sets), "")
	if clean == "" {
		return 0
	}
	n := 0
	for _, c := range clean {
		n = n*10 + int(c-'0')
	}
	return n
}

// ParseDefaultReps extracts a default rep count from a reps string.
// Range strings like "12–15" yield the first number; 0 if none present.
func ParseDefaultReps(reps string) int {
	m := digitRuns.FindString(reps)
	if m == "" {
		return 0
	}
	n := 0
	for _, c := range m {
		n = n*10 + int(c-'0')
	}
	return n
}

// BuiltinPlans returns the workout plans shipped with the app. The slice is
// freshly allocated on each call so callers may not mutate shared state.
func BuiltinPlans() []WorkoutPlan {
	return []WorkoutPlan{
		{
			ID:       "upper1",
			Name:     "UPPER",
			Subtitle: "Chest, Shoulder, Triceps",
			Icon:     "figure.strengthtraining.traditional",
			Color:    "#64b5f6",
			Exercises: []Exercise{
				{ID: "u1-1", Name: "Resistance Band Chest Press", Sets: "4", Reps: "12"},
				{ID: "u1-2", Name: "Incline Push-up / Pike Push-up", Sets: "3", Reps: "10"},
				{ID: "u1-3", Name: "Single Dumbbell Shoulder Press", Sets: "3", Reps: "12"},
				{ID: "u1-4", Name: "Resistance Band Lateral Raise", Sets: "3", Reps: "12–15"},
				{ID: "u1-5", Name: "Single Dumbbell Overhead Tricep Extension", Sets: "3", Reps: "12"},
				{ID: "u1-6", Name: "Resistance Band Tricep Pushdown", Sets: "3", Reps: "12"},
				{ID: "u1-7", Name: "Cooldown Cycling", Sets: "1", Duration: "5–15 minutes light"},
			},
		},
		{
			ID:       "lower",
			Name:     "LOWER",
			Subtitle: "Legs + Glutes + Calves",
			Icon:     "figure.strengthtraining.functional",
			Color:    "#aed581",
			Exercises: []Exercise{
				{ID: "l-1", Name: "Goblet Squat (with dumbbell)", Sets: "4", Reps: "12"},
				{ID: "l-2", Name: "Resistance Band Deadlift / Romanian Deadlift", Sets: "3", Reps: "12"},
				{ID: "l-3", Name: "Front Lunges", Sets: "3", Reps: "12"},
				{ID: "l-4", Name: "Glute Bridge", Sets: "3", Reps: "15"},
				{ID: "l-5", Name: "Standing Calf Raise", Sets: "4", Reps: "15–20"},
				{ID: "l-6", Name: "Cycling", Sets: "1", Duration: "10–20 minutes"},
			},
		},
		{
			ID:       "upper2",
			Name:     "UPPER",
			Subtitle: "Back, Biceps, Forearm, Core",
			Icon:     "figure.core.training",
			Color:    "#ffb74d",
			Exercises: []Exercise{
				{ID: "u2-1", Name: "Resistance Band Row", Sets: "4", Reps: "12"},
				{ID: "u2-2", Name: "Resistance Band Face Pull", Sets: "3", Reps: "12"},
				{ID: "u2-3", Name: "Single Dumbbell Bicep Curl", Sets: "3", Reps: "12"},
				{ID: "u2-4", Name: "Hammer Curl (alternate dumbbell)", Sets: "3", Reps: "12"},
				{ID: "u2-5", Name: "Resistance Band Reverse Curl", Sets: "3", Reps: "12"},
				{ID: "u2-6", Name: "Renegade Row (with dumbbell)", Sets: "3", Reps: "10"},
				{ID: "u2-7", Name: "Penguin Crunch", Sets: "3", Reps: "20"},
				{ID: "u2-8", Name: "Plank", Sets: "3", Duration: "30–45 seconds"},
				{ID: "u2-9", Name: "Hollow Position", Sets: "3", Duration: "30 seconds"},
				{ID: "u2-10", Name: "Cooldown Cycling", Sets: "1", Duration: "5–15 minutes easy"},
			},
		},
	}
}
