// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-meal-log/models"
)

// CSV column names. food_name and meal_type are required, the rest may be
// omitted from the header or left empty in a row.
const (
	ColumnFoodName    = "food_name"
	ColumnMealType    = "meal_type"
	ColumnCalories    = "calories"
	ColumnProtein     = "protein"
	ColumnCarbs       = "carbs"
	ColumnFat         = "fat"
	ColumnServingSize = "serving_size"
	ColumnServingUnit = "serving_unit"
	ColumnTimestamp   = "timestamp"
)

var knownColumns = map[string]bool{
	ColumnFoodName:    true,
	ColumnMealType:    true,
	ColumnCalories:    true,
	ColumnProtein:     true,
	ColumnCarbs:       true,
	ColumnFat:         true,
	ColumnServingSize: true,
	ColumnServingUnit: true,
	ColumnTimestamp:   true,
}

// ParseMeals reads a CSV meal export. Lines starting with '#' are comments.
//
// timestamp accepts Unix milliseconds or RFC 3339. Rows are not validated
// beyond their format; that is left to the meal service.
func ParseMeals(r io.Reader) ([]models.NewMeal, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnFoodName)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	meals := make([]models.NewMeal, 0)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		line, _ := cr.FieldPos(0)
		meal, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		meals = append(meals, meal)
	}

	return meals, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if !knownColumns[name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		columns[name] = i
	}

	for _, required := range []string{ColumnFoodName, ColumnMealType} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}
	return columns, nil
}

func parseRecord(record []string, columns map[string]int) (models.NewMeal, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	meal := models.NewMeal{
		FoodName:    field(ColumnFoodName),
		MealType:    field(ColumnMealType),
		ServingUnit: field(ColumnServingUnit),
	}

	var nutrition models.Nutrition
	hasNutrition := false
	for _, n := range []struct {
		column string
		dst    *float64
	}{
		{ColumnCalories, &nutrition.Calories},
		{ColumnProtein, &nutrition.Protein},
		{ColumnCarbs, &nutrition.Carbs},
		{ColumnFat, &nutrition.Fat},
	} {
		v, ok, err := parseNumber(n.column, field(n.column))
		if err != nil {
			return models.NewMeal{}, err
		}
		if ok {
			*n.dst = v
			hasNutrition = true
		}
	}
	if hasNutrition {
		meal.Nutrition = &nutrition
	}

	size, ok, err := parseNumber(ColumnServingSize, field(ColumnServingSize))
	if err != nil {
		return models.NewMeal{}, err
	}
	if ok {
		meal.ServingSize = &size
	}

	meal.Timestamp, err = parseTimestamp(field(ColumnTimestamp))
	if err != nil {
		return models.NewMeal{}, err
	}

	return meal, nil
}

func parseNumber(column, raw string) (float64, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", ErrInvalidValue, column, raw)
	}
	return v, true, nil
}

func parseTimestamp(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ms, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, ColumnTimestamp, raw)
	}
	return t.UnixMilli(), nil
}
