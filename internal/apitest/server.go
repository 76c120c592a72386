// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest runs an in-memory implementation of the meal API for
// tests. It answers the same routes, status codes and {"error": ...}
// messages as the production API, keeps meals per identity in memory and
// records every request URI so tests can assert on escaping.
package apitest

import (
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"github.com/MKhiriev/go-meal-log/models"
)

type catalogEntry struct {
	food   models.Food
	custom bool
}

// Server is a running fake meal API. The embedded httptest.Server exposes
// URL and Close.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	meals       []models.Meal
	foods       []catalogEntry
	customFoods []models.CustomFood
	failing     bool
	requestURIs []string
}

// NewServer starts a Server that is closed when t finishes.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

// SetFailing makes every storage-backed route answer as if the API lost its
// database.
func (s *Server) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// SeedFoods adds foods to the searchable catalogue.
func (s *Server) SeedFoods(foods ...models.Food) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range foods {
		s.foods = append(s.foods, catalogEntry{food: f})
	}
}

// SeedMeals stores meals as if they had been posted.
func (s *Server) SeedMeals(meals ...models.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meals = append(s.meals, meals...)
}

// Meals returns a copy of every stored meal in insertion order.
func (s *Server) Meals() []models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.meals)
}

// CustomFoods returns a copy of every accepted custom food payload.
func (s *Server) CustomFoods() []models.CustomFood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.customFoods)
}

// RequestURIs returns the raw request URIs received so far.
func (s *Server) RequestURIs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requestURIs)
}

func (s *Server) isFailing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failing
}
