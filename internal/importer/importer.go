package importer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/service"
)

// Importer saves parsed CSV rows through the meal service. A row the service
// rejects counts as failed and does not stop the import.
type Importer struct {
	meals  service.ClientMealService
	logger *logger.Logger
}

func NewImporter(meals service.ClientMealService, logger *logger.Logger) *Importer {
	return &Importer{meals: meals, logger: logger}
}

// ImportFile imports the CSV file at path.
func (i *Importer) ImportFile(ctx context.Context, path string) (saved, failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	saved, failed, err = i.Import(ctx, f)
	if err != nil {
		return saved, failed, fmt.Errorf("import %s: %w", path, err)
	}

	i.logger.Info().
		Str("func", "*Importer.ImportFile").
		Str("path", path).
		Int("saved", saved).
		Int("failed", failed).
		Msg("import finished")
	return saved, failed, nil
}

// Import parses r completely before saving anything, so a malformed file
// saves no rows.
func (i *Importer) Import(ctx context.Context, r io.Reader) (saved, failed int, err error) {
	meals, err := ParseMeals(r)
	if err != nil {
		return 0, 0, err
	}

	for _, m := range meals {
		if err = ctx.Err(); err != nil {
			return saved, failed, err
		}
		if i.meals.SaveMeal(ctx, m) == nil {
			failed++
			continue
		}
		saved++
	}
	return saved, failed, nil
}
