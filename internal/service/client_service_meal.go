package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-meal-log/internal/adapter"
	"github.com/MKhiriev/go-meal-log/internal/app"
	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/utils"
	"github.com/MKhiriev/go-meal-log/internal/validators"
	"github.com/MKhiriev/go-meal-log/models"
)

type mealIDGenerator interface {
	MealID() string
}

type clientMealService struct {
	identity  ClientIdentityService
	adapter   adapter.ServerAdapter
	validator validators.Validator
	notifier  Notifier
	ids       mealIDGenerator

	now      func() time.Time
	location *time.Location

	logger *logger.Logger
}

// NewClientMealService returns a [ClientMealService]. Day boundaries are
// computed in loc; a nil loc means the local time zone.
func NewClientMealService(identity ClientIdentityService, serverAdapter adapter.ServerAdapter, notifier Notifier, loc *time.Location, logger *logger.Logger) ClientMealService {
	if loc == nil {
		loc = time.Local
	}

	return &clientMealService{
		identity:  identity,
		adapter:   serverAdapter,
		validator: validators.NewMealValidator(),
		notifier:  notifier,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		location:  loc,
		logger:    logger,
	}
}

func (s *clientMealService) SaveMeal(ctx context.Context, newMeal models.NewMeal) *models.Meal {
	saved, err := s.saveMeal(ctx, newMeal)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientMealService.SaveMeal").
			Str("food_name", newMeal.FoodName).Msg("failed to save meal")
		s.notifier.Alert(ctx, app.MsgSaveMealFailed)
		return nil
	}

	s.logger.Debug().Str("func", "*clientMealService.SaveMeal").
		Str("meal_id", saved.ID).Msg("meal saved")
	return &saved
}

func (s *clientMealService) saveMeal(ctx context.Context, newMeal models.NewMeal) (models.Meal, error) {
	if err := s.validator.Validate(ctx, newMeal); err != nil {
		return models.Meal{}, err
	}

	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return models.Meal{}, err
	}

	meal := s.buildMeal(newMeal, userID)
	if err = s.validator.Validate(ctx, meal); err != nil {
		return models.Meal{}, err
	}

	saved, err := s.adapter.CreateMeal(ctx, meal)
	if err != nil {
		return models.Meal{}, mapAdapterError(err)
	}

	return saved, nil
}

func (s *clientMealService) buildMeal(newMeal models.NewMeal, userID string) models.Meal {
	meal := models.Meal{
		ID:          s.ids.MealID(),
		UserID:      userID,
		FoodName:    strings.TrimSpace(newMeal.FoodName),
		MealType:    strings.TrimSpace(newMeal.MealType),
		ServingSize: models.DefaultServingSize,
		ServingUnit: models.DefaultServingUnit,
		Timestamp:   newMeal.Timestamp,
	}

	if newMeal.Nutrition != nil {
		meal.Nutrition = *newMeal.Nutrition
	}
	if newMeal.ServingSize != nil {
		meal.ServingSize = *newMeal.ServingSize
	}
	if unit := strings.TrimSpace(newMeal.ServingUnit); unit != "" {
		meal.ServingUnit = unit
	}
	if meal.Timestamp == 0 {
		meal.Timestamp = s.now().UnixMilli()
	}

	return meal
}

func (s *clientMealService) GetMeals(ctx context.Context) []models.Meal {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientMealService.GetMeals").Msg("failed to resolve device identity")
		return []models.Meal{}
	}

	meals, err := s.adapter.ListMeals(ctx, userID)
	if err != nil {
		s.logger.Err(mapAdapterError(err)).Str("func", "*clientMealService.GetMeals").Msg("failed to list meals")
		return []models.Meal{}
	}
	if meals == nil {
		return []models.Meal{}
	}

	return meals
}

func (s *clientMealService) GetTodaysMeals(ctx context.Context) []models.Meal {
	now := s.now()
	meals := s.GetMeals(ctx)

	today := make([]models.Meal, 0, len(meals))
	for _, meal := range meals {
		if utils.SameDay(utils.FromUnixMilli(meal.Timestamp, s.location), now, s.location) {
			today = append(today, meal)
		}
	}

	return today
}

func (s *clientMealService) TodaySummary(ctx context.Context) models.DailySummary {
	day := utils.StartOfDay(s.now(), s.location)
	return models.NewDailySummary(day, s.GetTodaysMeals(ctx))
}

func (s *clientMealService) UpdateMeal(ctx context.Context, mealID string, patch models.MealPatch) bool {
	mealID = strings.TrimSpace(mealID)
	if mealID == "" {
		s.logger.Err(ErrEmptyMealID).Str("func", "*clientMealService.UpdateMeal").Msg("invalid update request")
		return false
	}

	if err := s.validator.Validate(ctx, patch); err != nil {
		s.logger.Err(err).Str("func", "*clientMealService.UpdateMeal").
			Str("meal_id", mealID).Msg("invalid update request")
		return false
	}

	userID, err := s.identity.UserID(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientMealService.UpdateMeal").Msg("failed to resolve device identity")
		return false
	}

	if err = s.adapter.UpdateMeal(ctx, userID, mealID, patch); err != nil {
		s.logger.Err(mapAdapterError(err)).Str("func", "*clientMealService.UpdateMeal").
			Str("meal_id", mealID).Msg("failed to update meal")
		return false
	}

	return true
}

func (s *clientMealService) DeleteMeal(ctx context.Context, mealID string) bool {
	mealID = strings.TrimSpace(mealID)
	if mealID == "" {
		s.logger.Err(ErrEmptyMealID).Str("func", "*clientMealService.DeleteMeal").Msg("invalid delete request")
		return false
	}

	userID, err := s.identity.UserID(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientMealService.DeleteMeal").Msg("failed to resolve device identity")
		return false
	}

	if err = s.adapter.DeleteMeal(ctx, userID, mealID); err != nil {
		s.logger.Err(mapAdapterError(err)).Str("func", "*clientMealService.DeleteMeal").
			Str("meal_id", mealID).Msg("failed to delete meal")
		return false
	}

	return true
}
