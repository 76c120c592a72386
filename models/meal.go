// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default values applied to a meal when the caller omits them.
const (
	DefaultServingSize = 1.0
	DefaultServingUnit = "serving"
)

// Meal types understood by the web frontend. The server stores meal_type as
// free text, so other values are accepted as well.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// Meal is one logged food entry owned by a single device identity.
// The JSON layout mirrors the /api/meals wire format.
type Meal struct {
	// ID is the opaque, client-generated identifier of the record.
	// It is unique per record.
	ID string `json:"id"`

	// UserID ties the record to exactly one device identity.
	UserID string `json:"userId"`

	// FoodName is the human readable food label.
	FoodName string `json:"foodName"`

	// MealType is the category of the meal (breakfast, lunch, dinner, snack).
	MealType string `json:"mealType"`

	// Nutrition is the nutrition summary of the logged serving.
	Nutrition Nutrition `json:"nutrition"`

	// ServingSize is the number of ServingUnit portions eaten.
	ServingSize float64 `json:"servingSize"`

	// ServingUnit names the portion (e.g. "serving", "g", "cup").
	ServingUnit string `json:"servingUnit"`

	// Timestamp is the creation time in milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
}

// Nutrition is the nutrition summary of a meal. The four macro fields are
// always present and default to zero; the remaining nutrients are optional
// and omitted from the payload when unknown.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Cholesterol        *float64 `json:"cholesterol,omitempty"`
	Sodium             *float64 `json:"sodium,omitempty"`
	Fiber              *float64 `json:"fiber,omitempty"`
	Sugar              *float64 `json:"sugar,omitempty"`
	SaturatedFat       *float64 `json:"saturatedFat,omitempty"`
	TransFat           *float64 `json:"transFat,omitempty"`
	PolyunsaturatedFat *float64 `json:"polyunsaturatedFat,omitempty"`
	MonounsaturatedFat *float64 `json:"monounsaturatedFat,omitempty"`
	AddedSugar         *float64 `json:"addedSugar,omitempty"`
	VitaminD           *float64 `json:"vitaminD,omitempty"`
	Calcium            *float64 `json:"calcium,omitempty"`
	Iron               *float64 `json:"iron,omitempty"`
	Potassium          *float64 `json:"potassium,omitempty"`
	VitaminC           *float64 `json:"vitaminC,omitempty"`
}

// NewMeal carries the caller supplied fields of a meal that is about to be
// saved. Nil pointers and zero values are replaced with defaults.
type NewMeal struct {
	FoodName string
	MealType string

	// Nutrition defaults to all-zero macros when nil.
	Nutrition *Nutrition

	// ServingSize defaults to DefaultServingSize when nil.
	ServingSize *float64

	// ServingUnit defaults to DefaultServingUnit when empty.
	ServingUnit string

	// Timestamp defaults to the time of the call when zero.
	Timestamp int64
}

// MealPatch is a partial update of a meal. Only non-nil fields are sent to
// the server and applied.
type MealPatch struct {
	FoodName    *string         `json:"foodName,omitempty"`
	Nutrition   *NutritionPatch `json:"nutrition,omitempty"`
	ServingSize *float64        `json:"servingSize,omitempty"`
	ServingUnit *string         `json:"servingUnit,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p MealPatch) IsEmpty() bool {
	return p.FoodName == nil &&
		(p.Nutrition == nil || p.Nutrition.IsEmpty()) &&
		p.ServingSize == nil &&
		p.ServingUnit == nil
}

// NutritionPatch is the nutrition part of a MealPatch.
type NutritionPatch struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`

	Cholesterol        *float64 `json:"cholesterol,omitempty"`
	Sodium             *float64 `json:"sodium,omitempty"`
	Fiber              *float64 `json:"fiber,omitempty"`
	Sugar              *float64 `json:"sugar,omitempty"`
	SaturatedFat       *float64 `json:"saturatedFat,omitempty"`
	TransFat           *float64 `json:"transFat,omitempty"`
	PolyunsaturatedFat *float64 `json:"polyunsaturatedFat,omitempty"`
	MonounsaturatedFat *float64 `json:"monounsaturatedFat,omitempty"`
	AddedSugar         *float64 `json:"addedSugar,omitempty"`
	VitaminD           *float64 `json:"vitaminD,omitempty"`
	Calcium            *float64 `json:"calcium,omitempty"`
	Iron               *float64 `json:"iron,omitempty"`
	Potassium          *float64 `json:"potassium,omitempty"`
	VitaminC           *float64 `json:"vitaminC,omitempty"`
}

// IsEmpty reports whether no nutrient is set.
func (n NutritionPatch) IsEmpty() bool {
	return n == NutritionPatch{}
}

// Apply copies every non-nil nutrient of the patch into dst.
func (n NutritionPatch) Apply(dst *Nutrition) {
	if n.Calories != nil {
		dst.Calories = *n.Calories
	}
	if n.Protein != nil {
		dst.Protein = *n.Protein
	}
	if n.Carbs != nil {
		dst.Carbs = *n.Carbs
	}
	if n.Fat != nil {
		dst.Fat = *n.Fat
	}

	optional := []struct {
		src *float64
		dst **float64
	}{
		{n.Cholesterol, &dst.Cholesterol},
		{n.Sodium, &dst.Sodium},
		{n.Fiber, &dst.Fiber},
		{n.Sugar, &dst.Sugar},
		{n.SaturatedFat, &dst.SaturatedFat},
		{n.TransFat, &dst.TransFat},
		{n.PolyunsaturatedFat, &dst.PolyunsaturatedFat},
		{n.MonounsaturatedFat, &dst.MonounsaturatedFat},
		{n.AddedSugar, &dst.AddedSugar},
		{n.VitaminD, &dst.VitaminD},
		{n.Calcium, &dst.Calcium},
		{n.Iron, &dst.Iron},
		{n.Potassium, &dst.Potassium},
		{n.VitaminC, &dst.VitaminC},
	}
	for _, f := range optional {
		if f.src != nil {
			v := *f.src
			*f.dst = &v
		}
	}
}

// Apply applies the patch to m in place.
func (p MealPatch) Apply(m *Meal) {
	if p.FoodName != nil {
		m.FoodName = *p.FoodName
	}
	if p.Nutrition != nil {
		p.Nutrition.Apply(&m.Nutrition)
	}
	if p.ServingSize != nil {
		m.ServingSize = *p.ServingSize
	}
	if p.ServingUnit != nil {
		m.ServingUnit = *p.ServingUnit
	}
}
