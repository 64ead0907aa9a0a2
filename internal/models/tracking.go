package models

// CompletedExercise marks an exercise as done for one plan on one day.
// Presence of the record is the completion flag; there is no boolean field.
type CompletedExercise struct {
	PlanID     string `json:"planId"`
	ExerciseID string `json:"exerciseId"`
	Date       string `json:"date"`
}

// DayWorkoutAssignment maps a calendar date to the plan scheduled for it.
// A nil PlanID means the day was explicitly cleared.
type DayWorkoutAssignment struct {
	Date   string  `json:"date"`
	PlanID *string `json:"planId"`
}

// ExerciseSetCount is the number of sets completed for one exercise on one
// day, always held within [0, target sets].
type ExerciseSetCount struct {
	PlanID     string `json:"planId"`
	ExerciseID string `json:"exerciseId"`
	Date       string `json:"date"`
	Count      int    `json:"count"`
}

// RestTimer is a countdown between sets. EndsAt is absolute wall time in
// Unix milliseconds. Notified flips to true exactly once, when the timer
// first expires.
type RestTimer struct {
	PlanID      string `json:"planId"`
	ExerciseID  string `json:"exerciseId"`
	Date        string `json:"date"`
	EndsAt      int64  `json:"endsAt"`
	DurationSec int    `json:"durationSec"`
	Notified    bool   `json:"notified,omitempty"`
}

// Key reports whether the timer belongs to the given (plan, exercise, date).
func (t RestTimer) Key(planID, exerciseID, date string) bool {
	return t.PlanID == planID && t.ExerciseID == exerciseID && t.Date == date
}

// RestEvent records that a rest was started during the current session.
// Events are session-scoped: they feed the rest statistics of the session
// being finished and are discarded afterwards.
type RestEvent struct {
	PlanID      string `json:"planId"`
	ExerciseID  string `json:"exerciseId"`
	Date        string `json:"date"`
	StartedAt   int64  `json:"startedAt"`
	DurationSec int    `json:"durationSec"`
}

// SetLog is one logged set for an exercise on a day. SetIndex is 1-based and
// unique within (plan, exercise, date); re-logging an index overwrites.
type SetLog struct {
	PlanID     string  `json:"planId"`
	ExerciseID string  `json:"exerciseId"`
	Date       string  `json:"date"`
	SetIndex   int     `json:"setIndex"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
}
