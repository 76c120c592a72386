package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-meal-log/internal/app"
	"github.com/MKhiriev/go-meal-log/internal/utils"
	"github.com/MKhiriev/go-meal-log/models"
)

var requiredCustomFoodFields = []string{
	models.CustomFoodKeyFoodName,
	models.CustomFoodKeyServingSize,
	models.CustomFoodKeyServingUnit,
	models.CustomFoodKeyCalories,
}

type customFoodRow struct {
	FoodName    string  `json:"foodName"`
	BrandName   string  `json:"brandName"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

func (s *Server) addCustomFood(w http.ResponseWriter, r *http.Request) {
	fields, raw := readObject(r)
	if len(fields) == 0 {
		utils.WriteError(w, app.MsgNoDataProvided, http.StatusBadRequest)
		return
	}
	for _, key := range requiredCustomFoodFields {
		if _, ok := fields[key]; !ok {
			utils.WriteError(w, app.MsgMissingRequiredField+key, http.StatusBadRequest)
			return
		}
	}

	var row customFoodRow
	if err := json.Unmarshal(raw, &row); err != nil || s.isFailing() {
		utils.WriteError(w, app.MsgSaveCustomFoodFailed, http.StatusInternalServerError)
		return
	}

	var created models.CustomFood
	if err := json.Unmarshal(raw, &created); err != nil {
		utils.WriteError(w, app.MsgSaveCustomFoodFailed, http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	id := fmt.Sprintf("custom-%d", len(s.customFoods)+1)
	created["fdcId"] = id
	s.customFoods = append(s.customFoods, created)
	s.foods = append(s.foods, catalogEntry{
		custom: true,
		food: models.Food{
			FdcID:         id,
			Description:   row.FoodName,
			BrandName:     row.BrandName,
			ServingSize:   row.ServingSize,
			ServingUnit:   row.ServingUnit,
			PreCalculated: true,
			Calories:      row.Calories,
			Protein:       row.Protein,
			Carbs:         row.Carbs,
			Fat:           row.Fat,
		},
	})
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, created, http.StatusOK)
}

func (s *Server) searchFood(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	result := models.FoodSearchResult{Foods: []models.Food{}}
	if len(query) < 2 {
		_, _ = utils.WriteJSON(w, result, http.StatusOK)
		return
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	localOnly := strings.ToLower(r.URL.Query().Get("local_only")) == "true"

	s.mu.Lock()
	// custom foods first
	for _, pass := range []bool{true, false} {
		for _, e := range s.foods {
			if e.custom != pass || (localOnly && !e.custom) {
				continue
			}
			if strings.Contains(strings.ToLower(e.food.Description), needle) {
				result.Foods = append(result.Foods, e.food)
			}
		}
	}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (s *Server) getFoodDetails(w http.ResponseWriter, r *http.Request) {
	foodID := r.URL.Query().Get("food_id")
	if foodID == "" {
		utils.WriteError(w, app.MsgFoodIDRequired, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.foods {
		if e.food.FdcID == foodID {
			_, _ = utils.WriteJSON(w, e.food, http.StatusOK)
			return
		}
	}

	utils.WriteError(w, app.MsgNoServingData, http.StatusNotFound)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status: "ok",
		Environment: map[string]bool{
			"POSTGRES_URL_SET": true,
			"USDA_KEY_SET":     false,
		},
	}

	if s.isFailing() {
		msg := "database unavailable"
		status.Database = models.DatabaseStatus{Status: "error", Error: &msg, Details: "Connection failed"}
	} else {
		s.mu.Lock()
		count := len(s.meals)
		s.mu.Unlock()
		status.Database = models.DatabaseStatus{
			Status:  "connected",
			Details: fmt.Sprintf("Table 'meals' exists with %d rows", count),
		}
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}
