package service

import (
	"fmt"

	"github.com/MKhiriev/go-meal-log/internal/adapter"
	"github.com/MKhiriev/go-meal-log/internal/config"
	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/store"
	"github.com/MKhiriev/go-meal-log/models"
)

type ClientServices struct {
	IdentityService ClientIdentityService
	MealService     ClientMealService
	FoodService     ClientFoodService
	AppInfoService  AppInfoService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, notifier Notifier, cfg config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*ClientServices, error) {
	appInfoSvc, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	identitySvc := NewClientIdentityService(storages.LocalStorage, cfg.Storage.IdentityKey, logger)

	return &ClientServices{
		IdentityService: identitySvc,
		MealService:     NewClientMealService(identitySvc, serverAdapter, notifier, cfg.App.Location, logger),
		FoodService:     NewClientFoodService(identitySvc, serverAdapter, logger),
		AppInfoService:  appInfoSvc,
	}, nil
}
