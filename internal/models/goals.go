package models

import "time"

// GoalsSettings holds the weekly training goal and reminder preferences.
// PreferredDays are weekday indices (0=Sunday .. 6=Saturday), stored sorted
// ascending. ReminderTime is a 24-hour "HH:mm" string. ScheduledIDs are
// opaque handles returned by the reminder scheduler.
type GoalsSettings struct {
	WeeklyTarget     int      `json:"weeklyTarget"`
	PreferredDays    []int    `json:"preferredDays"`
	RemindersEnabled bool     `json:"remindersEnabled"`
	ReminderTime     string   `json:"reminderTime"`
	ScheduledIDs     []string `json:"scheduledNotificationIds"`
	UpdatedAt        int64    `json:"updatedAt"`
}

// DefaultGoalsSettings returns the out-of-the-box goals configuration:
// three sessions a week on Mon/Wed/Fri, reminders off, 18:00.
func DefaultGoalsSettings() GoalsSettings {
	return GoalsSettings{
		WeeklyTarget:     3,
		PreferredDays:    []int{1, 3, 5},
		RemindersEnabled: false,
		ReminderTime:     "18:00",
		ScheduledIDs:     []string{},
		UpdatedAt:        time.Now().UnixMilli(),
	}
}
