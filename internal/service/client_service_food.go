package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-meal-log/internal/adapter"
	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/validators"
	"github.com/MKhiriev/go-meal-log/models"
)

// minSearchQueryLen is the shortest query the food search endpoint answers.
const minSearchQueryLen = 2

type clientFoodService struct {
	identity  ClientIdentityService
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientFoodService(identity ClientIdentityService, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientFoodService {
	return &clientFoodService{
		identity:  identity,
		adapter:   serverAdapter,
		validator: validators.NewMealValidator(),
		logger:    logger,
	}
}

func (s *clientFoodService) AddCustomFood(ctx context.Context, food models.CustomFood) (models.CustomFood, error) {
	if err := s.validator.Validate(ctx, food); err != nil {
		return nil, fmt.Errorf("invalid custom food: %w", err)
	}

	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.adapter.AddCustomFood(ctx, userID, food)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*clientFoodService.AddCustomFood").
			Str("user_id", userID).Msg("failed to add custom food")
		return nil, fmt.Errorf("add custom food: %w", err)
	}

	return created, nil
}

func (s *clientFoodService) SearchFoods(ctx context.Context, query string, localOnly bool) []models.Food {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchQueryLen {
		return []models.Food{}
	}

	foods, err := s.adapter.SearchFoods(ctx, query, localOnly)
	if err != nil {
		s.logger.Err(mapAdapterError(err)).Str("func", "*clientFoodService.SearchFoods").
			Str("query", query).Msg("failed to search foods")
		return []models.Food{}
	}
	if foods == nil {
		return []models.Food{}
	}

	return foods
}

func (s *clientFoodService) GetFoodDetails(ctx context.Context, foodID string) (models.Food, error) {
	foodID = strings.TrimSpace(foodID)
	if foodID == "" {
		return models.Food{}, ErrEmptyFoodID
	}

	food, err := s.adapter.GetFoodDetails(ctx, foodID)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*clientFoodService.GetFoodDetails").
			Str("food_id", foodID).Msg("failed to get food details")
		return models.Food{}, fmt.Errorf("get food details: %w", err)
	}

	return food, nil
}

func (s *clientFoodService) Health(ctx context.Context) (models.HealthStatus, error) {
	status, err := s.adapter.Health(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientFoodService.Health").Msg("health check failed")
		return models.HealthStatus{}, fmt.Errorf("health check: %w", err)
	}

	return status, nil
}
