package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-meal-log/internal/config"
	"github.com/MKhiriev/go-meal-log/internal/utils"
	"github.com/MKhiriev/go-meal-log/models"
)

const (
	mealsPath         = "/api/meals"
	mealPath          = "/api/meals/{mealId}"
	addCustomFoodPath = "/api/add-custom-food"
	searchFoodPath    = "/api/search-food"
	foodDetailsPath   = "/api/get-food-details"
	healthPath        = "/api/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. A zero timeout leaves requests unbounded.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client}, nil
}

// request starts a call that decodes 2xx bodies as JSON whatever the
// response Content-Type says.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.request(ctx).
		ForceContentType("application/json")
}

// callError tells a failed round trip apart from a response body that could
// not be decoded.
func callError(op string, resp *resty.Response, err error) error {
	if resp != nil && resp.RawResponse != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return fmt.Errorf("%s request: %w", op, err)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateMeal implements [ServerAdapter]. It POSTs the meal to POST /api/meals
// and decodes the stored record from the response body.
func (h *httpServerAdapter) CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	var stored models.Meal

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(meal).
		SetResult(&stored).
		Post(mealsPath)
	if err != nil {
		return models.Meal{}, callError("create meal", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Meal{}, err
	}

	return stored, nil
}

// ListMeals implements [ServerAdapter]. It GETs /api/meals?userId=<id>.
func (h *httpServerAdapter) ListMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	var meals []models.Meal

	resp, err := h.request(ctx).
		SetQueryParam("userId", userID).
		SetResult(&meals).
		Get(mealsPath)
	if err != nil {
		return nil, callError("list meals", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if meals == nil {
		meals = []models.Meal{}
	}

	return meals, nil
}

// UpdateMeal implements [ServerAdapter]. It PUTs the patch to
// /api/meals/{id}?userId=<id>.
func (h *httpServerAdapter) UpdateMeal(ctx context.Context, userID, mealID string, patch models.MealPatch) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("mealId", mealID).
		SetQueryParam("userId", userID).
		SetBody(patch).
		Put(mealPath)
	if err != nil {
		return callError("update meal", resp, err)
	}

	return mapHTTPError(resp)
}

// DeleteMeal implements [ServerAdapter]. It sends
// DELETE /api/meals/{id}?userId=<id> without a body.
func (h *httpServerAdapter) DeleteMeal(ctx context.Context, userID, mealID string) error {
	resp, err := h.request(ctx).
		SetPathParam("mealId", mealID).
		SetQueryParam("userId", userID).
		Delete(mealPath)
	if err != nil {
		return callError("delete meal", resp, err)
	}

	return mapHTTPError(resp)
}

// AddCustomFood implements [ServerAdapter]. It POSTs food with the userId key
// injected to POST /api/add-custom-food.
func (h *httpServerAdapter) AddCustomFood(ctx context.Context, userID string, food models.CustomFood) (models.CustomFood, error) {
	var created models.CustomFood

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(food.WithUserID(userID)).
		SetResult(&created).
		Post(addCustomFoodPath)
	if err != nil {
		return nil, callError("add custom food", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return created, nil
}

// SearchFoods implements [ServerAdapter]. It GETs
// /api/search-food?q=<query>&local_only=<bool>.
func (h *httpServerAdapter) SearchFoods(ctx context.Context, query string, localOnly bool) ([]models.Food, error) {
	var result models.FoodSearchResult

	resp, err := h.request(ctx).
		SetQueryParam("q", query).
		SetQueryParam("local_only", strconv.FormatBool(localOnly)).
		SetResult(&result).
		Get(searchFoodPath)
	if err != nil {
		return nil, callError("search food", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Foods == nil {
		result.Foods = []models.Food{}
	}
	return result.Foods, nil
}

// GetFoodDetails implements [ServerAdapter]. It GETs
// /api/get-food-details?food_id=<id>.
func (h *httpServerAdapter) GetFoodDetails(ctx context.Context, foodID string) (models.Food, error) {
	var food models.Food

	resp, err := h.request(ctx).
		SetQueryParam("food_id", foodID).
		SetResult(&food).
		Get(foodDetailsPath)
	if err != nil {
		return models.Food{}, callError("get food details", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Food{}, err
	}

	return food, nil
}

// Health implements [ServerAdapter]. It GETs /api/health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.request(ctx).
		SetResult(&status).
		Get(healthPath)
	if err != nil {
		return models.HealthStatus{}, callError("health", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}
