package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-meal-log/internal/adapter"
	"github.com/MKhiriev/go-meal-log/internal/app"
	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/mock"
	"github.com/MKhiriev/go-meal-log/internal/validators"
	"github.com/MKhiriev/go-meal-log/models"
)

func newTestFoodSvc(t *testing.T, ctrl *gomock.Controller) (ClientFoodService, *mock.MockClientIdentityService, *mock.MockServerAdapter) {
	t.Helper()
	identity := mock.NewMockClientIdentityService(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientFoodService(identity, serverAdapter, logger.Nop()), identity, serverAdapter
}

func validCustomFood() models.CustomFood {
	return models.CustomFood{
		models.CustomFoodKeyFoodName:    "Protein bar",
		models.CustomFoodKeyServingSize: 1.0,
		models.CustomFoodKeyServingUnit: "bar",
		models.CustomFoodKeyCalories:    210.0,
	}
}

// ── AddCustomFood ────────────────────────────────────────────────────────────

func TestClientFoodService_AddCustomFood_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, serverAdapter := newTestFoodSvc(t, ctrl)
	ctx := context.Background()

	food := validCustomFood()
	created := food.WithUserID(testUserID)
	created["fdcId"] = "custom-1"

	identity.EXPECT().UserID(ctx).Return(testUserID, nil)
	serverAdapter.EXPECT().AddCustomFood(ctx, testUserID, food).Return(created, nil)

	got, err := svc.AddCustomFood(ctx, food)
	require.NoError(t, err)
	assert.Equal(t, "custom-1", got["fdcId"])
}

func TestClientFoodService_AddCustomFood_InvalidSkipsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestFoodSvc(t, ctrl)

	food := validCustomFood()
	delete(food, models.CustomFoodKeyCalories)

	_, err := svc.AddCustomFood(context.Background(), food)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrMissingRequired)
}

func TestClientFoodService_AddCustomFood_ServerMessageSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, serverAdapter := newTestFoodSvc(t, ctrl)
	ctx := context.Background()

	identity.EXPECT().UserID(ctx).Return(testUserID, nil)
	serverAdapter.EXPECT().AddCustomFood(ctx, testUserID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgSaveCustomFoodFailed))

	_, err := svc.AddCustomFood(ctx, validCustomFood())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Contains(t, err.Error(), app.MsgSaveCustomFoodFailed)
}

// ── SearchFoods ──────────────────────────────────────────────────────────────

func TestClientFoodService_SearchFoods_ShortQuerySkipsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestFoodSvc(t, ctrl)

	for _, q := range []string{"", "a", " é ", "  "} {
		got := svc.SearchFoods(context.Background(), q, false)
		assert.NotNil(t, got, q)
		assert.Empty(t, got, q)
	}
}

func TestClientFoodService_SearchFoods(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, serverAdapter := newTestFoodSvc(t, ctrl)
	ctx := context.Background()

	foods := []models.Food{{FdcID: "1", Description: "Oatmeal"}}
	serverAdapter.EXPECT().SearchFoods(ctx, "oat", true).Return(foods, nil)

	assert.Equal(t, foods, svc.SearchFoods(ctx, " oat ", true))
}

func TestClientFoodService_SearchFoods_ErrorReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, serverAdapter := newTestFoodSvc(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().SearchFoods(ctx, "oat", false).Return(nil, errors.New("dial tcp: refused"))

	got := svc.SearchFoods(ctx, "oat", false)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ── GetFoodDetails / Health ──────────────────────────────────────────────────

func TestClientFoodService_GetFoodDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, serverAdapter := newTestFoodSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.GetFoodDetails(ctx, " ")
	assert.ErrorIs(t, err, ErrEmptyFoodID)

	serverAdapter.EXPECT().GetFoodDetails(ctx, "42").Return(models.Food{FdcID: "42", Calories: 90}, nil)
	food, err := svc.GetFoodDetails(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 90.0, food.Calories)

	serverAdapter.EXPECT().GetFoodDetails(ctx, "7").
		Return(models.Food{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgNoServingData))
	_, err = svc.GetFoodDetails(ctx, "7")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestClientFoodService_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, serverAdapter := newTestFoodSvc(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().Health(ctx).Return(models.HealthStatus{Status: "ok"}, nil)
	status, err := svc.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)

	serverAdapter.EXPECT().Health(ctx).Return(models.HealthStatus{}, errors.New("refused"))
	_, err = svc.Health(ctx)
	assert.Error(t, err)
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "user id", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgUserIDRequired), want: ErrUserIDRequired},
		{name: "invalid data", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidData), want: ErrInvalidDataProvided},
		{name: "no update data", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgNoUpdateData), want: ErrInvalidDataProvided},
		{name: "missing field", err: fmt.Errorf("%w: %sservingUnit", adapter.ErrBadRequest, app.MsgMissingRequiredField), want: ErrMissingRequiredField},
		{name: "meal not found", err: fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgMealNotFound), want: ErrMealNotFound},
		{name: "food not found", err: fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgNoServingData), want: ErrFoodNotFound},
		{name: "database", err: fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgDatabaseError), want: ErrDatabaseUnavailable},
		{name: "unknown bad request passes through", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, "weird"), want: adapter.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapAdapterError_MissingFieldName(t *testing.T) {
	err := mapAdapterError(fmt.Errorf("%w: %scalories", adapter.ErrBadRequest, app.MsgMissingRequiredField))
	assert.EqualError(t, err, "missing required field: calories")
}
