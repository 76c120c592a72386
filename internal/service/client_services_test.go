// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-meal-log/internal/adapter"
	"github.com/MKhiriev/go-meal-log/internal/apitest"
	"github.com/MKhiriev/go-meal-log/internal/app"
	"github.com/MKhiriev/go-meal-log/internal/config"
	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/mock"
	"github.com/MKhiriev/go-meal-log/internal/store"
	"github.com/MKhiriev/go-meal-log/internal/utils"
	"github.com/MKhiriev/go-meal-log/models"
)

const reservedUserID = "user-1700000000000-a b&c=d/é?#%+"

type roundTrip struct {
	server   *apitest.Server
	storages *store.ClientStorages
	notifier *mock.MockNotifier
	services *ClientServices
	cfg      config.ClientConfig
	adapter  adapter.ServerAdapter
}

// newRoundTrip wires real services to the in-memory API and a SQLite file.
func newRoundTrip(t *testing.T, dsn string) *roundTrip {
	t.Helper()
	ctx := context.Background()

	server := apitest.NewServer(t)

	cfg := config.ClientConfig{
		App:     config.ClientApp{AlertMode: config.AlertModeNone, Location: time.Local},
		Adapter: config.ClientAdapter{HTTPAddress: server.URL, RequestTimeout: 5 * time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}, IdentityKey: config.DefaultIdentityKey},
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter)
	require.NoError(t, err)

	notifier := mock.NewMockNotifier(gomock.NewController(t))
	services, err := NewClientServices(storages, serverAdapter, notifier, cfg, models.NewAppBuildInfo("test", "N/A", "N/A"), logger.Nop())
	require.NoError(t, err)

	return &roundTrip{server: server, storages: storages, notifier: notifier, services: services, cfg: cfg, adapter: serverAdapter}
}

func tempDSN(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "meal-log.db")
}

func TestRoundTrip_IdentityStableAcrossInstances(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))

	first, err := rt.services.IdentityService.UserID(ctx)
	require.NoError(t, err)
	assert.True(t, utils.IsDeviceID(first))

	again, err := rt.services.IdentityService.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	other := NewClientIdentityService(rt.storages.LocalStorage, rt.cfg.Storage.IdentityKey, logger.Nop())
	fromOther, err := other.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, fromOther)
}

func TestRoundTrip_IdentitySurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := tempDSN(t)

	rt := newRoundTrip(t, dsn)
	first, err := rt.services.IdentityService.UserID(ctx)
	require.NoError(t, err)
	require.NoError(t, rt.storages.Close())

	reopened := newRoundTrip(t, dsn)
	second, err := reopened.services.IdentityService.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRoundTrip_SaveAndList(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))
	meals := rt.services.MealService

	saved := meals.SaveMeal(ctx, models.NewMeal{FoodName: "Apple", MealType: models.MealTypeSnack})
	require.NotNil(t, saved)
	assert.True(t, strings.HasPrefix(saved.ID, utils.MealIDPrefix))
	assert.Equal(t, models.DefaultServingSize, saved.ServingSize)
	assert.Equal(t, models.DefaultServingUnit, saved.ServingUnit)
	assert.Equal(t, models.Nutrition{}, saved.Nutrition)
	assert.InDelta(t, time.Now().UnixMilli(), saved.Timestamp, float64(time.Minute.Milliseconds()))

	listed := meals.GetMeals(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, *saved, listed[0])

	userID, err := rt.services.IdentityService.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, listed[0].UserID)
}

func TestRoundTrip_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))

	seen := map[string]bool{}
	for range 5 {
		saved := rt.services.MealService.SaveMeal(ctx, models.NewMeal{FoodName: "Tea", MealType: models.MealTypeSnack})
		require.NotNil(t, saved)
		assert.False(t, seen[saved.ID], saved.ID)
		seen[saved.ID] = true
	}
}

func TestRoundTrip_TodayFilter(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))

	userID, err := rt.services.IdentityService.UserID(ctx)
	require.NoError(t, err)
	rt.server.SeedMeals(models.Meal{
		ID: "meal-old", UserID: userID, FoodName: "Pizza", MealType: models.MealTypeDinner,
		ServingSize: 1, ServingUnit: "slice", Timestamp: time.Now().Add(-25 * time.Hour).UnixMilli(),
	})

	saved := rt.services.MealService.SaveMeal(ctx, models.NewMeal{FoodName: "Salad", MealType: models.MealTypeLunch})
	require.NotNil(t, saved)

	today := rt.services.MealService.GetTodaysMeals(ctx)
	require.Len(t, today, 1)
	assert.Equal(t, saved.ID, today[0].ID)
	assert.Len(t, rt.services.MealService.GetMeals(ctx), 2)
}

func TestRoundTrip_UpdateAndDeleteIsolation(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))
	meals := rt.services.MealService

	keep := meals.SaveMeal(ctx, models.NewMeal{FoodName: "Eggs", MealType: models.MealTypeBreakfast})
	drop := meals.SaveMeal(ctx, models.NewMeal{FoodName: "Toast", MealType: models.MealTypeBreakfast})
	require.NotNil(t, keep)
	require.NotNil(t, drop)

	calories := 180.0
	assert.True(t, meals.UpdateMeal(ctx, keep.ID, models.MealPatch{Nutrition: &models.NutritionPatch{Calories: &calories}}))

	assert.True(t, meals.DeleteMeal(ctx, drop.ID))
	assert.False(t, meals.DeleteMeal(ctx, drop.ID))

	listed := meals.GetMeals(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, keep.ID, listed[0].ID)
	assert.Equal(t, 180.0, listed[0].Nutrition.Calories)
}

func TestRoundTrip_OtherIdentityCannotTouchMeal(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))

	rt.server.SeedMeals(models.Meal{ID: "meal-foreign", UserID: "user-1-zzzzzzzzz", FoodName: "Soup", MealType: models.MealTypeLunch})

	assert.Empty(t, rt.services.MealService.GetMeals(ctx))
	assert.False(t, rt.services.MealService.DeleteMeal(ctx, "meal-foreign"))
	assert.False(t, rt.services.MealService.UpdateMeal(ctx, "meal-foreign", models.MealPatch{FoodName: ptr("Stew")}))
	assert.Len(t, rt.server.Meals(), 1)
}

func TestRoundTrip_NetworkFailure(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))
	meals := rt.services.MealService

	saved := meals.SaveMeal(ctx, models.NewMeal{FoodName: "Yogurt", MealType: models.MealTypeSnack})
	require.NotNil(t, saved)

	rt.server.Close()
	rt.notifier.EXPECT().Alert(ctx, app.MsgSaveMealFailed).Times(1)

	assert.Nil(t, meals.SaveMeal(ctx, models.NewMeal{FoodName: "Granola", MealType: models.MealTypeSnack}))

	listed := meals.GetMeals(ctx)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
	assert.Empty(t, meals.GetTodaysMeals(ctx))
	assert.False(t, meals.UpdateMeal(ctx, saved.ID, models.MealPatch{FoodName: ptr("Skyr")}))
	assert.False(t, meals.DeleteMeal(ctx, saved.ID))
	assert.Empty(t, rt.services.FoodService.SearchFoods(ctx, "yogurt", false))
}

func TestRoundTrip_DatabaseFailure(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))
	meals := rt.services.MealService

	rt.server.SetFailing(true)
	rt.notifier.EXPECT().Alert(ctx, app.MsgSaveMealFailed).Times(1)

	assert.Nil(t, meals.SaveMeal(ctx, models.NewMeal{FoodName: "Rice", MealType: models.MealTypeLunch}))
	assert.Empty(t, meals.GetMeals(ctx))

	status, err := rt.services.FoodService.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "error", status.Database.Status)
}

func TestRoundTrip_ReservedCharactersEscaped(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))
	require.NoError(t, rt.storages.LocalStorage.SetItem(ctx, rt.cfg.Storage.IdentityKey, reservedUserID))

	meals := rt.services.MealService
	saved := meals.SaveMeal(ctx, models.NewMeal{FoodName: "Kiwi", MealType: models.MealTypeSnack})
	require.NotNil(t, saved)
	assert.Equal(t, reservedUserID, saved.UserID)

	listed := meals.GetMeals(ctx)
	require.Len(t, listed, 1)

	weirdID := "meal/1 2?x=y#z"
	rt.server.SeedMeals(models.Meal{ID: weirdID, UserID: reservedUserID, FoodName: "Fig", MealType: models.MealTypeSnack})
	assert.True(t, meals.UpdateMeal(ctx, weirdID, models.MealPatch{FoodName: ptr("Dried fig")}))
	assert.True(t, meals.DeleteMeal(ctx, weirdID))
	require.Len(t, meals.GetMeals(ctx), 1)

	escapedUser := url.Values{"userId": {reservedUserID}}.Encode()
	for _, uri := range rt.server.RequestURIs() {
		if strings.HasPrefix(uri, "/api/meals") && strings.Contains(uri, "?") {
			assert.Contains(t, uri, escapedUser, uri)
		}
		assert.NotContains(t, uri, "#", uri)
		assert.NotContains(t, uri, " ", uri)
	}
}

func TestRoundTrip_CustomFoodAndSearch(t *testing.T) {
	ctx := context.Background()
	rt := newRoundTrip(t, tempDSN(t))
	foods := rt.services.FoodService

	created, err := foods.AddCustomFood(ctx, models.CustomFood{
		models.CustomFoodKeyFoodName:    "Overnight oats",
		models.CustomFoodKeyServingSize: 1.0,
		models.CustomFoodKeyServingUnit: "jar",
		models.CustomFoodKeyCalories:    340.0,
	})
	require.NoError(t, err)

	userID, err := rt.services.IdentityService.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, created[models.CustomFoodKeyUserID])

	found := foods.SearchFoods(ctx, "oats", true)
	require.Len(t, found, 1)
	assert.Equal(t, "Overnight oats", found[0].Description)

	details, err := foods.GetFoodDetails(ctx, found[0].FdcID)
	require.NoError(t, err)
	assert.Equal(t, 340.0, details.Calories)

	_, err = rt.adapter.AddCustomFood(ctx, userID, models.CustomFood{models.CustomFoodKeyFoodName: "x"})
	assert.ErrorIs(t, mapAdapterError(err), ErrMissingRequiredField)
}
