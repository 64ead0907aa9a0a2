package models

import "fmt"

// SessionExercise is a snapshot of one exercise's progress taken when the
// session is finished.
type SessionExercise struct {
	ExerciseID    string `json:"exerciseId"`
	Name          string `json:"name"`
	TargetSets    int    `json:"targetSets"`
	CompletedSets int    `json:"completedSets"`
	Completed     bool   `json:"completed"`
}

// PersonalBest is a new all-time best achieved within a session.
// Metric is currently always "1RM".
type PersonalBest struct {
	ExerciseID string  `json:"exerciseId"`
	Name       string  `json:"name"`
	Metric     string  `json:"metric"`
	Value      float64 `json:"value"`
}

// WorkoutSession is the immutable record of one finished workout. Plan name
// and color are denormalized so history survives plan deletion. Timestamps
// are Unix milliseconds.
type WorkoutSession struct {
	ID                string            `json:"id"`
	Date              string            `json:"date"`
	PlanID            string            `json:"planId"`
	PlanName          string            `json:"planName"`
	Color             string            `json:"color"`
	StartedAt         int64             `json:"startedAt"`
	EndedAt           int64             `json:"endedAt"`
	DurationSec       int               `json:"durationSec"`
	Exercises         []SessionExercise `json:"exercises"`
	CompletionPercent int               `json:"completionPercent"`
	TotalSets         int               `json:"totalSets"`
	RestCount         int               `json:"restCount,omitempty"`
	RestAvgSec        int               `json:"restAvgSec,omitempty"`
	SetLogs           []SetLog          `json:"setLogs,omitempty"`
	NewPBs            []PersonalBest    `json:"newPBs,omitempty"`
}

// SessionID builds the unique session identifier from its date, plan and
// end timestamp.
func SessionID(date, planID string, endedAt int64) string {
	return fmt.Sprintf("%s_%s_%d", date, planID, endedAt)
}
