package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Mriskiali/motion-fits/internal/analytics"
	"github.com/Mriskiali/motion-fits/internal/dateutil"
	"github.com/Mriskiali/motion-fits/internal/models"
)

// defaultDateRange returns start/end date keys defaulting to the last 30
// days. Both bounds are inclusive.
func defaultDateRange(startStr, endStr string, now time.Time) (string, string, bool) {
	end := dateutil.Key(now)
	if endStr != "" {
		if _, ok := dateutil.ParseKey(endStr); !ok {
			return "", "", false
		}
		end = endStr
	}

	start := dateutil.Key(now.AddDate(0, 0, -30))
	if startStr != "" {
		if _, ok := dateutil.ParseKey(startStr); !ok {
			return "", "", false
		}
		start = startStr
	}

	return start, end, true
}

func filterSessions(sessions []models.WorkoutSession, start, end string) []models.WorkoutSession {
	out := make([]models.WorkoutSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Date >= start && s.Date <= end {
			out = append(out, s)
		}
	}
	return out
}

// --- Tool definitions ---

var toolGetSessions = mcp.NewTool("get_sessions",
	mcp.WithDescription("Retrieve finished workout sessions. Each session includes the exercise snapshot, set counts, completion percentage, rest stats and any new personal bests."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD, inclusive). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD, inclusive). Defaults to today.")),
	mcp.WithString("plan_id", mcp.Description("Filter by workout plan ID")),
)

var toolGetTrainingStats = mcp.NewTool("get_training_stats",
	mcp.WithDescription("Aggregate training statistics: day streaks, weekly-goal streak, weekly and monthly totals, standout sessions, and schedule adherence percentages."),
)

var toolGetPersonalBests = mcp.NewTool("get_personal_bests",
	mcp.WithDescription("Recent personal bests (estimated 1RM records), newest first, with the session date and plan they were set in."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of entries. Defaults to 10.")),
)

var toolGetOneRMHistory = mcp.NewTool("get_exercise_one_rm_history",
	mcp.WithDescription("Estimated-1RM trend for one exercise across all sessions, chronological. Estimates use the Epley formula over logged sets."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise ID (e.g. u1-1)")),
)

var toolLogSet = mcp.NewTool("log_set",
	mcp.WithDescription("Record a completed set of an exercise. Also increments the day's set count and starts a rest timer."),
	mcp.WithString("plan_id", mcp.Required(), mcp.Description("Workout plan ID")),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise ID within the plan")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight in kg")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed")),
	mcp.WithNumber("target_sets", mcp.Description("Target set count used to clamp the day's progress. Defaults to the plan's parsed target.")),
	mcp.WithString("date", mcp.Description("Date (YYYY-MM-DD). Defaults to today.")),
)

// --- Tool handlers ---

func (h *handlers) getSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, ok := defaultDateRange(req.GetString("start", ""), req.GetString("end", ""), time.Now())
	if !ok {
		return mcp.NewToolResultError("invalid date format, want YYYY-MM-DD"), nil
	}

	sessions := filterSessions(h.store.Sessions(), start, end)
	if planID := req.GetString("plan_id", ""); planID != "" {
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.PlanID == planID {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := time.Now()
	sessions := h.store.Sessions()
	goals := h.store.Goals()
	assignments := h.store.Assignments()
	plans := h.store.Plans()
	completed := h.store.CompletedExercises()

	stats := map[string]any{
		"streaks":          analytics.ComputeStreaks(sessions, now),
		"weeklyGoalStreak": analytics.WeeklyGoalStreak(sessions, goals.WeeklyTarget, now),
		"week":             analytics.WeekTotals(sessions, now),
		"month":            analytics.MonthTotals(sessions, now),
		"superlatives":     analytics.Superlatives(sessions),
		"weeklyAdherence":  analytics.WeeklyAdherence(now, assignments, plans, completed),
		"monthlyAdherence": analytics.MonthlyAdherence(now, assignments, plans, completed),
		"totalSessions":    len(sessions),
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalBests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 10)
	if limit < 1 {
		return mcp.NewToolResultError("limit must be positive"), nil
	}

	pbs := analytics.RecentPBs(h.store.Sessions(), limit)
	if pbs == nil {
		pbs = []analytics.DatedPB{}
	}

	result, err := mcp.NewToolResultJSON(pbs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getOneRMHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	series, ok := analytics.OneRMHistory(h.store.Sessions())[exerciseID]
	if !ok {
		return mcp.NewToolResultError("no 1RM history for exercise: " + exerciseID), nil
	}

	result, err := mcp.NewToolResultJSON(series)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	planID, err := req.RequireString("plan_id")
	if err != nil {
		return mcp.NewToolResultError("plan_id parameter is required"), nil
	}
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}

	date := req.GetString("date", "")
	if date == "" {
		date = dateutil.Key(time.Now())
	} else if _, ok := dateutil.ParseKey(date); !ok {
		return mcp.NewToolResultError("invalid date format, want YYYY-MM-DD"), nil
	}

	plan, err := h.store.PlanByID(planID)
	if err != nil {
		return mcp.NewToolResultError("unknown plan: " + planID), nil
	}

	targetSets := req.GetInt("target_sets", 0)
	if targetSets <= 0 {
		for _, ex := range plan.Exercises {
			if ex.ID == exerciseID {
				targetSets = models.ParseTargetSets(ex.Sets)
				break
			}
		}
	}

	index := h.store.LogSet(ctx, planID, exerciseID, date, weight, reps, targetSets)
	h.log.Info("mcp log_set", "plan", planID, "exercise", exerciseID, "index", index)

	result, err := mcp.NewToolResultJSON(map[string]any{
		"setIndex": index,
		"count":    h.store.GetCount(planID, exerciseID, date),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
