// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/store"
	"github.com/MKhiriev/go-meal-log/internal/utils"
)

// idGenerator produces device identities.
type idGenerator interface {
	Generate() string
}

type clientIdentityService struct {
	storage   store.LocalStorageRepository
	key       string
	generator idGenerator

	mu     sync.Mutex
	cached string

	logger *logger.Logger
}

// NewClientIdentityService returns a [ClientIdentityService] that persists the
// identity under key in storage.
func NewClientIdentityService(storage store.LocalStorageRepository, key string, logger *logger.Logger) ClientIdentityService {
	return &clientIdentityService{
		storage:   storage,
		key:       key,
		generator: utils.NewDeviceIDGenerator(),
		logger:    logger,
	}
}

func (s *clientIdentityService) UserID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != "" {
		return s.cached, nil
	}

	stored, err := s.storage.GetItem(ctx, s.key)
	switch {
	case err == nil && strings.TrimSpace(stored) != "":
		s.cached = stored
		return stored, nil
	case err != nil && !errors.Is(err, store.ErrItemNotFound):
		return "", fmt.Errorf("read device identity: %w", err)
	}

	return s.assign(ctx)
}

func (s *clientIdentityService) Reset(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.RemoveItem(ctx, s.key); err != nil {
		return "", fmt.Errorf("remove device identity: %w", err)
	}
	s.cached = ""

	return s.assign(ctx)
}

// assign generates and persists a new identity. Callers hold s.mu.
func (s *clientIdentityService) assign(ctx context.Context) (string, error) {
	id := s.generator.Generate()
	if err := s.storage.SetItem(ctx, s.key, id); err != nil {
		return "", fmt.Errorf("persist device identity: %w", err)
	}

	s.logger.Info().Str("func", "*clientIdentityService.assign").
		Str("user_id", id).Msg("assigned new device identity")

	s.cached = id
	return id, nil
}
