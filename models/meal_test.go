package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMealPatch_IsEmpty(t *testing.T) {
	assert.True(t, MealPatch{}.IsEmpty())
	assert.True(t, MealPatch{Nutrition: &NutritionPatch{}}.IsEmpty())
	assert.False(t, MealPatch{FoodName: ptr("apple")}.IsEmpty())
	assert.False(t, MealPatch{Nutrition: &NutritionPatch{Fat: ptr(0.0)}}.IsEmpty())
	assert.False(t, MealPatch{ServingUnit: ptr("g")}.IsEmpty())
}

func TestMealPatch_Apply(t *testing.T) {
	m := Meal{
		ID:          "meal-1",
		FoodName:    "banana",
		Nutrition:   Nutrition{Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
		ServingSize: 1,
		ServingUnit: "serving",
	}

	MealPatch{
		FoodName:    ptr("big banana"),
		Nutrition:   &NutritionPatch{Calories: ptr(120.0), Fiber: ptr(3.1)},
		ServingSize: ptr(1.5),
	}.Apply(&m)

	want := Meal{
		ID:          "meal-1",
		FoodName:    "big banana",
		Nutrition:   Nutrition{Calories: 120, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: ptr(3.1)},
		ServingSize: 1.5,
		ServingUnit: "serving",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("patched meal mismatch (-want +got):\n%s", diff)
	}
}

func TestMealPatch_JSONOmitsUnsetFields(t *testing.T) {
	payload, err := json.Marshal(MealPatch{ServingUnit: ptr("g")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"servingUnit":"g"}`, string(payload))
}

func TestMeal_JSONShape(t *testing.T) {
	m := Meal{
		ID:          "meal-1",
		UserID:      "user-1-abc",
		FoodName:    "oats",
		MealType:    MealTypeBreakfast,
		Nutrition:   Nutrition{Calories: 150},
		ServingSize: DefaultServingSize,
		ServingUnit: DefaultServingUnit,
		Timestamp:   1700000000000,
	}

	payload, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id":"meal-1","userId":"user-1-abc","foodName":"oats","mealType":"breakfast",
		"nutrition":{"calories":150,"protein":0,"carbs":0,"fat":0},
		"servingSize":1,"servingUnit":"serving","timestamp":1700000000000
	}`, string(payload))
}

func TestCustomFood_WithUserID(t *testing.T) {
	f := CustomFood{"foodName": "granola", "calories": 200}
	got := f.WithUserID("user-1")

	assert.Equal(t, "user-1", got[CustomFoodKeyUserID])
	_, mutated := f[CustomFoodKeyUserID]
	assert.False(t, mutated, "original payload must not be modified")
}

func TestNewDailySummary(t *testing.T) {
	day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	meals := []Meal{
		{Nutrition: Nutrition{Calories: 100, Protein: 10, Carbs: 5, Fat: 1}},
		{Nutrition: Nutrition{Calories: 250, Protein: 2, Carbs: 40, Fat: 9}},
	}

	got := NewDailySummary(day, meals)
	want := DailySummary{Day: day, Meals: 2, Calories: 350, Protein: 12, Carbs: 45, Fat: 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}
