package models

import "time"

// DailySummary aggregates the meals logged during one local day.
type DailySummary struct {
	// Day is local midnight of the summarized day.
	Day time.Time

	// Meals is the number of meals logged that day.
	Meals int

	// Calories, Protein, Carbs and Fat are the macro totals.
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// NewDailySummary totals the macros of meals for the given day.
func NewDailySummary(day time.Time, meals []Meal) DailySummary {
	s := DailySummary{Day: day, Meals: len(meals)}
	for _, m := range meals {
		s.Calories += m.Nutrition.Calories
		s.Protein += m.Nutrition.Protein
		s.Carbs += m.Nutrition.Carbs
		s.Fat += m.Nutrition.Fat
	}
	return s
}
