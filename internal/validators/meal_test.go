// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/MKhiriev/go-meal-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validMeal() models.Meal {
	return models.Meal{
		ID:          "meal-1",
		UserID:      "user-1700000000000-abcdefghi",
		FoodName:    "Oatmeal",
		MealType:    models.MealTypeBreakfast,
		Nutrition:   models.Nutrition{Calories: 150, Protein: 5, Carbs: 27, Fat: 3},
		ServingSize: 1,
		ServingUnit: models.DefaultServingUnit,
		Timestamp:   1700000000000,
	}
}

func validCustomFood() models.CustomFood {
	return models.CustomFood{
		"foodName":    "Grandma's pie",
		"servingSize": 1.0,
		"servingUnit": "slice",
		"calories":    320.0,
		"protein":     4.0,
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewMealValidator()
	ctx := context.Background()

	meal := validMeal()
	newMeal := models.NewMeal{FoodName: "Apple", MealType: models.MealTypeSnack}
	patch := models.MealPatch{FoodName: ptr("Pear")}

	assert.NoError(t, v.Validate(ctx, meal))
	assert.NoError(t, v.Validate(ctx, &meal))
	assert.NoError(t, v.Validate(ctx, newMeal))
	assert.NoError(t, v.Validate(ctx, &newMeal))
	assert.NoError(t, v.Validate(ctx, patch))
	assert.NoError(t, v.Validate(ctx, &patch))
	assert.NoError(t, v.Validate(ctx, validCustomFood()))

	assert.ErrorIs(t, v.Validate(ctx, "meal"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Meal
// ---------------------------------------------------------------------------

func TestValidateMeal(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *models.Meal)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(m *models.Meal) {}},
		{name: "empty id", mutate: func(m *models.Meal) { m.ID = " " }, wantErr: ErrInvalidMealID},
		{name: "empty user", mutate: func(m *models.Meal) { m.UserID = "" }, wantErr: ErrInvalidUserID},
		{name: "empty food", mutate: func(m *models.Meal) { m.FoodName = "" }, wantErr: ErrEmptyFoodName},
		{name: "empty meal type", mutate: func(m *models.Meal) { m.MealType = "" }, wantErr: ErrEmptyMealType},
		{name: "free text meal type", mutate: func(m *models.Meal) { m.MealType = "second breakfast" }},
		{name: "negative calories", mutate: func(m *models.Meal) { m.Nutrition.Calories = -1 }, wantErr: ErrInvalidNutrition},
		{name: "nan fat", mutate: func(m *models.Meal) { m.Nutrition.Fat = math.NaN() }, wantErr: ErrInvalidNutrition},
		{name: "negative sodium", mutate: func(m *models.Meal) { m.Nutrition.Sodium = ptr(-5.0) }, wantErr: ErrInvalidNutrition},
		{name: "zero serving", mutate: func(m *models.Meal) { m.ServingSize = 0 }, wantErr: ErrInvalidServingSize},
		{name: "infinite serving", mutate: func(m *models.Meal) { m.ServingSize = math.Inf(1) }, wantErr: ErrInvalidServingSize},
		{name: "empty unit", mutate: func(m *models.Meal) { m.ServingUnit = "" }, wantErr: ErrEmptyServingUnit},
		{name: "zero timestamp", mutate: func(m *models.Meal) { m.Timestamp = 0 }, wantErr: ErrInvalidTimestamp},
		{
			name:   "scoped to id ignores food",
			mutate: func(m *models.Meal) { m.FoodName = "" },
			fields: []string{FieldID},
		},
		{
			name:    "unknown field",
			mutate:  func(m *models.Meal) {},
			fields:  []string{"calories_per_gram"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewMealValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeal()
			tt.mutate(&m)

			err := v.Validate(context.Background(), m, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// NewMeal
// ---------------------------------------------------------------------------

func TestValidateNewMeal(t *testing.T) {
	tests := []struct {
		name    string
		meal    models.NewMeal
		wantErr error
	}{
		{name: "minimal", meal: models.NewMeal{FoodName: "Apple", MealType: "snack"}},
		{name: "missing food", meal: models.NewMeal{MealType: "snack"}, wantErr: ErrEmptyFoodName},
		{name: "missing type", meal: models.NewMeal{FoodName: "Apple"}, wantErr: ErrEmptyMealType},
		{
			name:    "negative protein",
			meal:    models.NewMeal{FoodName: "Apple", MealType: "snack", Nutrition: &models.Nutrition{Protein: -2}},
			wantErr: ErrInvalidNutrition,
		},
		{
			name:    "negative serving",
			meal:    models.NewMeal{FoodName: "Apple", MealType: "snack", ServingSize: ptr(-1.0)},
			wantErr: ErrInvalidServingSize,
		},
		{
			name:    "negative timestamp",
			meal:    models.NewMeal{FoodName: "Apple", MealType: "snack", Timestamp: -1},
			wantErr: ErrInvalidTimestamp,
		},
	}

	v := NewMealValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.meal)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// MealPatch
// ---------------------------------------------------------------------------

func TestValidateMealPatch(t *testing.T) {
	tests := []struct {
		name    string
		patch   models.MealPatch
		wantErr error
	}{
		{name: "empty", patch: models.MealPatch{}, wantErr: ErrNoFieldsToUpdate},
		{name: "empty nutrition only", patch: models.MealPatch{Nutrition: &models.NutritionPatch{}}, wantErr: ErrNoFieldsToUpdate},
		{name: "rename", patch: models.MealPatch{FoodName: ptr("Pear")}},
		{name: "blank rename", patch: models.MealPatch{FoodName: ptr("  ")}, wantErr: ErrEmptyFoodName},
		{name: "calories", patch: models.MealPatch{Nutrition: &models.NutritionPatch{Calories: ptr(0.0)}}},
		{name: "negative iron", patch: models.MealPatch{Nutrition: &models.NutritionPatch{Iron: ptr(-0.1)}}, wantErr: ErrInvalidNutrition},
		{name: "zero serving", patch: models.MealPatch{ServingSize: ptr(0.0)}, wantErr: ErrInvalidServingSize},
		{name: "blank unit", patch: models.MealPatch{ServingUnit: ptr("")}, wantErr: ErrEmptyServingUnit},
	}

	v := NewMealValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.patch)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// CustomFood
// ---------------------------------------------------------------------------

func TestValidateCustomFood(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f models.CustomFood)
		wantErr error
		wantMsg string
	}{
		{name: "valid", mutate: func(f models.CustomFood) {}},
		{name: "int serving size", mutate: func(f models.CustomFood) { f["servingSize"] = 2 }},
		{name: "json number calories", mutate: func(f models.CustomFood) { f["calories"] = json.Number("12.5") }},
		{name: "missing calories", mutate: func(f models.CustomFood) { delete(f, "calories") }, wantErr: ErrMissingRequired, wantMsg: "calories"},
		{name: "missing unit", mutate: func(f models.CustomFood) { delete(f, "servingUnit") }, wantErr: ErrMissingRequired, wantMsg: "servingUnit"},
		{name: "blank name", mutate: func(f models.CustomFood) { f["foodName"] = "" }, wantErr: ErrEmptyFoodName},
		{name: "numeric name", mutate: func(f models.CustomFood) { f["foodName"] = 7 }, wantErr: ErrEmptyFoodName},
		{name: "string size", mutate: func(f models.CustomFood) { f["servingSize"] = "one" }, wantErr: ErrInvalidFieldType},
		{name: "zero size", mutate: func(f models.CustomFood) { f["servingSize"] = 0.0 }, wantErr: ErrInvalidServingSize},
		{name: "negative calories", mutate: func(f models.CustomFood) { f["calories"] = -10.0 }, wantErr: ErrInvalidNutrition},
	}

	v := NewMealValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			food := validCustomFood()
			tt.mutate(food)

			err := v.Validate(context.Background(), food)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateCustomFood_Empty(t *testing.T) {
	err := NewMealValidator().Validate(context.Background(), models.CustomFood{})
	assert.ErrorIs(t, err, ErrEmptyCustomFood)
}
