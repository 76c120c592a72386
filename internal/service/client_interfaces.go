package service

import (
	"context"

	"github.com/MKhiriev/go-meal-log/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// Notifier presents a blocking failure message to the user. Alert returns
// once the message has been acknowledged or ctx is done.
type Notifier interface {
	Alert(ctx context.Context, message string)
}

// ClientIdentityService owns the per-device user identity.
type ClientIdentityService interface {
	// UserID returns the device identity, generating and persisting a new
	// one on first use. Repeated calls return the same value.
	UserID(ctx context.Context) (string, error)

	// Reset forgets the stored identity and returns a freshly generated one.
	// Meals stored under the previous identity stay on the server but are no
	// longer visible to this device.
	Reset(ctx context.Context) (string, error)
}

// ClientMealService implements the meal CRUD operations of the device.
// Failures never surface as errors: they are logged and reported through
// the documented fallback value of each method.
type ClientMealService interface {
	// SaveMeal fills defaults, assigns a fresh meal id, the device identity
	// and the current timestamp, and stores the meal. On any failure it
	// alerts the user and returns nil.
	SaveMeal(ctx context.Context, meal models.NewMeal) *models.Meal

	// GetMeals returns every meal of the device in server order, newest
	// first. On failure it returns an empty slice.
	GetMeals(ctx context.Context) []models.Meal

	// GetTodaysMeals returns the meals whose timestamp falls on the current
	// local calendar day. On failure it returns an empty slice.
	GetTodaysMeals(ctx context.Context) []models.Meal

	// TodaySummary totals the macros of GetTodaysMeals.
	TodaySummary(ctx context.Context) models.DailySummary

	// UpdateMeal applies patch to the meal with the given id and reports
	// whether the server accepted it.
	UpdateMeal(ctx context.Context, mealID string, patch models.MealPatch) bool

	// DeleteMeal removes the meal with the given id and reports whether the
	// server accepted it.
	DeleteMeal(ctx context.Context, mealID string) bool
}

// ClientFoodService wraps the food lookup endpoints of the meal API.
type ClientFoodService interface {
	AddCustomFood(ctx context.Context, food models.CustomFood) (models.CustomFood, error)

	// SearchFoods returns foods matching query. Queries shorter than two
	// characters return an empty slice without a request.
	SearchFoods(ctx context.Context, query string, localOnly bool) []models.Food

	GetFoodDetails(ctx context.Context, foodID string) (models.Food, error)

	Health(ctx context.Context) (models.HealthStatus, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
