// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the meal API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400). When the
// server answers with an {"error": "..."} payload its message is kept in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-meal-log/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the meal API.
// Implementations are responsible for serialisation, escaping of identifiers
// in URLs and mapping transport-level errors to the sentinel values defined in
// this package. Every non-nil error means the operation failed; callers do not
// need to distinguish transport failures from non-2xx responses.
type ServerAdapter interface {
	// CreateMeal submits a complete meal record and returns the record as
	// stored by the server.
	CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error)

	// ListMeals returns all meal records owned by userID. A nil slice is
	// never returned on success.
	ListMeals(ctx context.Context, userID string) ([]models.Meal, error)

	// UpdateMeal applies patch to the meal mealID owned by userID. Returns
	// [ErrNotFound] (wrapped) when the meal does not exist or belongs to
	// another identity.
	UpdateMeal(ctx context.Context, userID, mealID string, patch models.MealPatch) error

	// DeleteMeal removes the meal mealID owned by userID. Returns
	// [ErrNotFound] (wrapped) when nothing was deleted.
	DeleteMeal(ctx context.Context, userID, mealID string) error

	// AddCustomFood submits a free-form food definition with userID injected
	// and returns the created definition.
	AddCustomFood(ctx context.Context, userID string, food models.CustomFood) (models.CustomFood, error)

	// SearchFoods queries the food catalogue. localOnly restricts the search
	// to cached and custom foods.
	SearchFoods(ctx context.Context, query string, localOnly bool) ([]models.Food, error)

	// GetFoodDetails fetches the normalized serving data of one food.
	GetFoodDetails(ctx context.Context, foodID string) (models.Food, error)

	// Health fetches the API health report.
	Health(ctx context.Context) (models.HealthStatus, error)
}
