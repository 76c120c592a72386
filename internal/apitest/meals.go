package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-meal-log/internal/app"
	"github.com/MKhiriev/go-meal-log/internal/utils"
	"github.com/MKhiriev/go-meal-log/models"
)

func (s *Server) listMeals(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.WriteError(w, app.MsgUserIDRequired, http.StatusBadRequest)
		return
	}
	if s.isFailing() {
		utils.WriteError(w, app.MsgDatabaseError, http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	meals := make([]models.Meal, 0, len(s.meals))
	for _, m := range s.meals {
		if m.UserID == userID {
			meals = append(meals, m)
		}
	}
	s.mu.Unlock()

	// newest first
	slices.SortStableFunc(meals, func(a, b models.Meal) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})

	_, _ = utils.WriteJSON(w, meals, http.StatusOK)
}

func (s *Server) createMeal(w http.ResponseWriter, r *http.Request) {
	fields, raw := readObject(r)
	if len(fields) == 0 {
		utils.WriteError(w, app.MsgInvalidData, http.StatusBadRequest)
		return
	}
	if _, ok := fields["userId"]; !ok {
		utils.WriteError(w, app.MsgInvalidData, http.StatusBadRequest)
		return
	}

	var meal models.Meal
	if err := json.Unmarshal(raw, &meal); err != nil {
		utils.WriteError(w, app.MsgDatabaseError, http.StatusInternalServerError)
		return
	}
	if s.isFailing() {
		utils.WriteError(w, app.MsgDatabaseError, http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.meals = append(s.meals, meal)
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, meal, http.StatusOK)
}

func (s *Server) updateMeal(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.WriteError(w, app.MsgUserIDRequired, http.StatusBadRequest)
		return
	}

	fields, raw := readObject(r)
	if len(fields) == 0 {
		utils.WriteError(w, app.MsgNoUpdateData, http.StatusBadRequest)
		return
	}

	var patch models.MealPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		utils.WriteError(w, app.MsgDatabaseError, http.StatusInternalServerError)
		return
	}
	if s.isFailing() {
		utils.WriteError(w, app.MsgDatabaseError, http.StatusInternalServerError)
		return
	}

	mealID := mealIDParam(r)

	s.mu.Lock()
	idx := s.indexOf(mealID, userID)
	if idx >= 0 {
		patch.Apply(&s.meals[idx])
	}
	s.mu.Unlock()

	if idx < 0 {
		utils.WriteError(w, app.MsgMealNotFound, http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (s *Server) deleteMeal(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.WriteError(w, app.MsgUserIDRequired, http.StatusBadRequest)
		return
	}
	if s.isFailing() {
		utils.WriteError(w, app.MsgDatabaseError, http.StatusInternalServerError)
		return
	}

	mealID := mealIDParam(r)

	s.mu.Lock()
	idx := s.indexOf(mealID, userID)
	if idx >= 0 {
		s.meals = slices.Delete(s.meals, idx, idx+1)
	}
	s.mu.Unlock()

	if idx < 0 {
		utils.WriteError(w, app.MsgMealNotFound, http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// indexOf finds the meal owned by userID. Callers hold s.mu.
func (s *Server) indexOf(mealID, userID string) int {
	return slices.IndexFunc(s.meals, func(m models.Meal) bool {
		return m.ID == mealID && m.UserID == userID
	})
}

// mealIDParam returns the decoded {mealId} path segment. chi routes on the
// raw path when the request carries escaped characters.
func mealIDParam(r *http.Request) string {
	id := chi.URLParam(r, "mealId")
	if r.URL.RawPath == "" {
		return id
	}
	if decoded, err := url.PathUnescape(id); err == nil {
		return decoded
	}
	return id
}

// readObject reads a JSON object body. A missing, null, malformed or empty
// object yields no fields.
func readObject(r *http.Request) (map[string]json.RawMessage, []byte) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, nil
	}

	return fields, raw
}
