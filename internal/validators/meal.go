package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-meal-log/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldFoodName    = "food_name"
	FieldMealType    = "meal_type"
	FieldNutrition   = "nutrition"
	FieldServingSize = "serving_size"
	FieldServingUnit = "serving_unit"
	FieldTimestamp   = "timestamp"
)

// MealValidator implements [Validator] for meal records, new meals, meal
// patches and custom food definitions. Value and pointer forms are accepted.
type MealValidator struct {
}

// NewMealValidator constructs a new MealValidator and returns it as the
// Validator interface.
func NewMealValidator() Validator {
	return &MealValidator{}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - models.Meal / *models.Meal
//   - models.NewMeal / *models.NewMeal
//   - models.MealPatch / *models.MealPatch
//   - models.CustomFood
//
// Returns ErrUnsupportedType for anything else. Optional fields restrict
// validation to the named subset.
func (v *MealValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Meal:
		return v.validateMeal(ctx, value, fields...)
	case *models.Meal:
		return v.validateMeal(ctx, *value, fields...)

	case models.NewMeal:
		return v.validateNewMeal(ctx, value, fields...)
	case *models.NewMeal:
		return v.validateNewMeal(ctx, *value, fields...)

	case models.MealPatch:
		return v.validateMealPatch(ctx, value, fields...)
	case *models.MealPatch:
		return v.validateMealPatch(ctx, *value, fields...)

	case models.CustomFood:
		return v.validateCustomFood(ctx, value)

	default:
		return ErrUnsupportedType
	}
}

func (v *MealValidator) validateMeal(ctx context.Context, meal models.Meal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldFoodName, FieldMealType, FieldNutrition, FieldServingSize, FieldServingUnit, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(meal.ID) == "" {
				return ErrInvalidMealID
			}
		case FieldUserID:
			if strings.TrimSpace(meal.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldFoodName:
			if strings.TrimSpace(meal.FoodName) == "" {
				return ErrEmptyFoodName
			}
		case FieldMealType:
			if strings.TrimSpace(meal.MealType) == "" {
				return ErrEmptyMealType
			}
		case FieldNutrition:
			if err := validateNutrition(meal.Nutrition); err != nil {
				return err
			}
		case FieldServingSize:
			if !isPositive(meal.ServingSize) {
				return ErrInvalidServingSize
			}
		case FieldServingUnit:
			if strings.TrimSpace(meal.ServingUnit) == "" {
				return ErrEmptyServingUnit
			}
		case FieldTimestamp:
			if meal.Timestamp <= 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MealValidator) validateNewMeal(ctx context.Context, meal models.NewMeal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFoodName, FieldMealType, FieldNutrition, FieldServingSize, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldFoodName:
			if strings.TrimSpace(meal.FoodName) == "" {
				return ErrEmptyFoodName
			}
		case FieldMealType:
			if strings.TrimSpace(meal.MealType) == "" {
				return ErrEmptyMealType
			}
		case FieldNutrition:
			if meal.Nutrition != nil {
				if err := validateNutrition(*meal.Nutrition); err != nil {
					return err
				}
			}
		case FieldServingSize:
			if meal.ServingSize != nil && !isPositive(*meal.ServingSize) {
				return ErrInvalidServingSize
			}
		case FieldServingUnit:
			// empty means default
		case FieldTimestamp:
			if meal.Timestamp < 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MealValidator) validateMealPatch(ctx context.Context, patch models.MealPatch, fields ...string) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldFoodName, FieldNutrition, FieldServingSize, FieldServingUnit}
	}

	for _, f := range fields {
		switch f {
		case FieldFoodName:
			if patch.FoodName != nil && strings.TrimSpace(*patch.FoodName) == "" {
				return ErrEmptyFoodName
			}
		case FieldNutrition:
			if patch.Nutrition != nil {
				for _, value := range patchNutrients(*patch.Nutrition) {
					if value != nil && !isNonNegative(*value) {
						return ErrInvalidNutrition
					}
				}
			}
		case FieldServingSize:
			if patch.ServingSize != nil && !isPositive(*patch.ServingSize) {
				return ErrInvalidServingSize
			}
		case FieldServingUnit:
			if patch.ServingUnit != nil && strings.TrimSpace(*patch.ServingUnit) == "" {
				return ErrEmptyServingUnit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCustomFood checks the keys the server requires. The rest of the
// definition is free-form and passed through untouched.
func (v *MealValidator) validateCustomFood(ctx context.Context, food models.CustomFood) error {
	if len(food) == 0 {
		return ErrEmptyCustomFood
	}

	for _, key := range []string{
		models.CustomFoodKeyFoodName,
		models.CustomFoodKeyServingSize,
		models.CustomFoodKeyServingUnit,
		models.CustomFoodKeyCalories,
	} {
		if _, ok := food[key]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingRequired, key)
		}
	}

	if name, ok := food[models.CustomFoodKeyFoodName].(string); !ok || strings.TrimSpace(name) == "" {
		return ErrEmptyFoodName
	}
	if unit, ok := food[models.CustomFoodKeyServingUnit].(string); !ok || strings.TrimSpace(unit) == "" {
		return ErrEmptyServingUnit
	}

	size, ok := toFloat(food[models.CustomFoodKeyServingSize])
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFieldType, models.CustomFoodKeyServingSize)
	}
	if !isPositive(size) {
		return ErrInvalidServingSize
	}

	calories, ok := toFloat(food[models.CustomFoodKeyCalories])
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFieldType, models.CustomFoodKeyCalories)
	}
	if !isNonNegative(calories) {
		return ErrInvalidNutrition
	}

	return nil
}

func validateNutrition(n models.Nutrition) error {
	for _, value := range []float64{n.Calories, n.Protein, n.Carbs, n.Fat} {
		if !isNonNegative(value) {
			return ErrInvalidNutrition
		}
	}
	for _, value := range optionalNutrients(n) {
		if value != nil && !isNonNegative(*value) {
			return ErrInvalidNutrition
		}
	}
	return nil
}

func optionalNutrients(n models.Nutrition) []*float64 {
	return []*float64{
		n.Cholesterol, n.Sodium, n.Fiber, n.Sugar, n.SaturatedFat, n.TransFat,
		n.PolyunsaturatedFat, n.MonounsaturatedFat, n.AddedSugar, n.VitaminD,
		n.Calcium, n.Iron, n.Potassium, n.VitaminC,
	}
}

func patchNutrients(n models.NutritionPatch) []*float64 {
	return []*float64{
		n.Calories, n.Protein, n.Carbs, n.Fat,
		n.Cholesterol, n.Sodium, n.Fiber, n.Sugar, n.SaturatedFat, n.TransFat,
		n.PolyunsaturatedFat, n.MonounsaturatedFat, n.AddedSugar, n.VitaminD,
		n.Calcium, n.Iron, n.Potassium, n.VitaminC,
	}
}

func isNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
