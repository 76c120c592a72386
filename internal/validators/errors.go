package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMealID      = errors.New("invalid meal ID")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrEmptyFoodName      = errors.New("food name is required")
	ErrEmptyMealType      = errors.New("meal type is required")
	ErrInvalidNutrition   = errors.New("nutrition values must be finite and non-negative")
	ErrInvalidServingSize = errors.New("serving size must be a positive number")
	ErrEmptyServingUnit   = errors.New("serving unit is required")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrMissingRequired    = errors.New("missing required field")
	ErrInvalidFieldType   = errors.New("invalid field type")
	ErrEmptyCustomFood    = errors.New("custom food definition is empty")
)
