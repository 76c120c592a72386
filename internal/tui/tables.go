package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-meal-log/internal/utils"
	"github.com/MKhiriev/go-meal-log/models"
)

const (
	maxFoodNameWidth = 32
	timeLayout       = "2006-01-02 15:04"
)

// RenderMeals renders meals as a table with times in loc.
func RenderMeals(meals []models.Meal, loc *time.Location) string {
	rows := make([][]string, 0, len(meals))
	for _, m := range meals {
		rows = append(rows, []string{
			m.ID,
			utils.FromUnixMilli(m.Timestamp, loc).Format(timeLayout),
			valueOrDash(m.MealType),
			fitText(m.FoodName, maxFoodNameWidth),
			formatNumber(m.ServingSize) + " " + m.ServingUnit,
			formatNumber(m.Nutrition.Calories),
			formatNumber(m.Nutrition.Protein),
			formatNumber(m.Nutrition.Carbs),
			formatNumber(m.Nutrition.Fat),
		})
	}

	return newTable([]string{"ID", "TIME", "TYPE", "FOOD", "SERVING", "KCAL", "PROTEIN", "CARBS", "FAT"}, rows, 5)
}

// RenderFoods renders food search results.
func RenderFoods(foods []models.Food) string {
	rows := make([][]string, 0, len(foods))
	for _, f := range foods {
		rows = append(rows, []string{
			f.FdcID,
			fitText(f.Description, maxFoodNameWidth),
			valueOrDash(f.BrandName),
			formatNumber(f.ServingSize) + " " + f.ServingUnit,
			formatNumber(f.Calories),
			formatNumber(f.Protein),
			formatNumber(f.Carbs),
			formatNumber(f.Fat),
		})
	}

	return newTable([]string{"ID", "FOOD", "BRAND", "SERVING", "KCAL", "PROTEIN", "CARBS", "FAT"}, rows, 4)
}

// RenderFood renders every known nutrient of a single food.
func RenderFood(f models.Food) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", f.Description, valueOrDash(f.BrandName))
	fmt.Fprintf(&b, "Serving:  %s %s\n\n", formatNumber(f.ServingSize), f.ServingUnit)

	nutrients := [][2]string{
		{"Calories", formatNumber(f.Calories)},
		{"Protein", formatNumber(f.Protein)},
		{"Carbs", formatNumber(f.Carbs)},
		{"Fat", formatNumber(f.Fat)},
		{"Cholesterol", optionalNumber(f.Cholesterol)},
		{"Sodium", optionalNumber(f.Sodium)},
		{"Fiber", optionalNumber(f.Fiber)},
		{"Sugar", optionalNumber(f.Sugar)},
		{"Saturated fat", optionalNumber(f.SaturatedFat)},
		{"Trans fat", optionalNumber(f.TransFat)},
		{"Polyunsaturated fat", optionalNumber(f.PolyunsaturatedFat)},
		{"Monounsaturated fat", optionalNumber(f.MonounsaturatedFat)},
		{"Added sugar", optionalNumber(f.AddedSugar)},
		{"Vitamin D", optionalNumber(f.VitaminD)},
		{"Calcium", optionalNumber(f.Calcium)},
		{"Iron", optionalNumber(f.Iron)},
		{"Potassium", optionalNumber(f.Potassium)},
		{"Vitamin C", optionalNumber(f.VitaminC)},
	}
	rows := make([][]string, 0, len(nutrients))
	for _, n := range nutrients {
		rows = append(rows, []string{n[0], n[1]})
	}
	b.WriteString(newTable([]string{"NUTRIENT", "AMOUNT"}, rows, 1))

	return renderPage("FOOD "+f.FdcID, b.String())
}

// RenderSummary renders the macro totals of a day.
func RenderSummary(s models.DailySummary) string {
	data := fmt.Sprintf("Meals:    %d\nCalories: %s kcal\nProtein:  %s g\nCarbs:    %s g\nFat:      %s g",
		s.Meals,
		formatNumber(s.Calories),
		formatNumber(s.Protein),
		formatNumber(s.Carbs),
		formatNumber(s.Fat),
	)
	return renderPage("TODAY "+s.Day.Format(time.DateOnly), data)
}

// newTable right-aligns every column from firstNumeric on.
func newTable(headers []string, rows [][]string, firstNumeric int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col >= firstNumeric:
				return tableNumberStyle
			default:
				return tableCellStyle
			}
		})

	return t.Render() + "\n"
}
