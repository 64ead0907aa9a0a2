package server

import (
	"encoding/json"
	"net/http"

	"github.com/Mriskiali/motion-fits/internal/models"
	"github.com/Mriskiali/motion-fits/internal/store"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Plans())
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.store.PlanByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var in store.NewPlanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	plan, err := s.store.CreateCustomPlan(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePlan(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// dayView is what the day endpoint returns: the assignment plus live
// per-exercise progress for that date.
type dayView struct {
	Date      string              `json:"date"`
	Plan      *models.WorkoutPlan `json:"plan,omitempty"`
	Exercises []dayExercise       `json:"exercises,omitempty"`
}

type dayExercise struct {
	ExerciseID    string `json:"exerciseId"`
	Name          string `json:"name"`
	TargetSets    int    `json:"targetSets"`
	CompletedSets int    `json:"completedSets"`
	Completed     bool   `json:"completed"`
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	date, ok := dateOrToday(chi.URLParam(r, "date"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	view := dayView{Date: date}
	plan, assigned := s.store.AssignmentFor(date)
	if assigned {
		view.Plan = &plan
		for _, ex := range plan.Exercises {
			view.Exercises = append(view.Exercises, dayExercise{
				ExerciseID:    ex.ID,
				Name:          ex.Name,
				TargetSets:    models.ParseTargetSets(ex.Sets),
				CompletedSets: s.store.GetCount(plan.ID, ex.ID, date),
				Completed:     s.store.IsCompleted(plan.ID, ex.ID, date),
			})
		}
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAssignDay(w http.ResponseWriter, r *http.Request) {
	date, ok := dateOrToday(chi.URLParam(r, "date"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	var body struct {
		PlanID *string `json:"planId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.store.Assign(r.Context(), date, body.PlanID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "assigned"})
}
