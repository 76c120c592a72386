package service

import "errors"

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrMissingRequiredField = errors.New("missing required field")

	ErrUserIDRequired      = errors.New("user id required")
	ErrMealNotFound        = errors.New("meal not found or owned by another identity")
	ErrFoodNotFound        = errors.New("food not found")
	ErrEmptyFoodID         = errors.New("food id is required")
	ErrEmptyMealID         = errors.New("meal id is required")
	ErrDatabaseUnavailable = errors.New("meal api database unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
