package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-meal-log/internal/tui"
	"github.com/MKhiriev/go-meal-log/models"
)

var (
	errNothingToUpdate  = errors.New("nothing to update, set at least one field flag")
	errFoodNameRequired = errors.New("food name required, pass it as an argument or use --food-id")
)

// nutritionFlags are the macro flags shared by add and update.
type nutritionFlags struct {
	calories, protein, carbs, fat float64
	servingSize                   float64
	servingUnit                   string
}

func (n *nutritionFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&n.calories, "calories", 0, "Calories (kcal)")
	fs.Float64Var(&n.protein, "protein", 0, "Protein (g)")
	fs.Float64Var(&n.carbs, "carbs", 0, "Carbohydrates (g)")
	fs.Float64Var(&n.fat, "fat", 0, "Fat (g)")
	fs.Float64Var(&n.servingSize, "serving-size", 0, "Number of serving units eaten")
	fs.StringVar(&n.servingUnit, "serving-unit", "", "Serving unit (e.g. g, cup)")
}

func (c *cli) newAddCmd() *cobra.Command {
	var (
		n        nutritionFlags
		mealType string
		foodID   string
		at       string
	)

	cmd := &cobra.Command{
		Use:   "add [food name]",
		Short: "Log a meal",
		Long: `Log a meal for this device.

The nutrition can be given with flags or copied from a catalogue food with
--food-id. Flags override the catalogue values.`,
		Example: `  meal-log add "Greek yogurt" --type breakfast --calories 120 --protein 15
  meal-log add --food-id 171287 --type lunch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			meal := models.NewMeal{MealType: mealType}
			if len(args) == 1 {
				meal.FoodName = args[0]
			}

			if foodID != "" {
				food, err := app.Services().FoodService.GetFoodDetails(ctx, foodID)
				if err != nil {
					return fmt.Errorf("food %s: %w", foodID, err)
				}
				if meal.FoodName == "" {
					meal.FoodName = food.Description
				}
				nutrition := food.Nutrition()
				meal.Nutrition = &nutrition
				meal.ServingSize = &food.ServingSize
				meal.ServingUnit = food.ServingUnit
			}

			if strings.TrimSpace(meal.FoodName) == "" {
				return errFoodNameRequired
			}
			applyNutritionFlags(cmd.Flags(), n, &meal)

			if at != "" {
				ts, err := time.ParseInLocation(time.RFC3339, at, app.Config().App.Location)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				meal.Timestamp = ts.UnixMilli()
			}

			saved := app.Services().MealService.SaveMeal(ctx, meal)
			if saved == nil {
				return errReported
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMeals([]models.Meal{*saved}, app.Config().App.Location))
			return nil
		},
	}

	n.register(cmd.Flags())
	cmd.Flags().StringVarP(&mealType, "type", "t", "", "Meal type: breakfast, lunch, dinner or snack")
	cmd.Flags().StringVar(&foodID, "food-id", "", "Copy nutrition from this catalogue food")
	cmd.Flags().StringVar(&at, "at", "", "Meal time in RFC 3339, defaults to now")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

// applyNutritionFlags copies explicitly set flags into meal.
func applyNutritionFlags(fs *pflag.FlagSet, n nutritionFlags, meal *models.NewMeal) {
	macros := []struct {
		name string
		v    float64
		dst  func(*models.Nutrition) *float64
	}{
		{"calories", n.calories, func(m *models.Nutrition) *float64 { return &m.Calories }},
		{"protein", n.protein, func(m *models.Nutrition) *float64 { return &m.Protein }},
		{"carbs", n.carbs, func(m *models.Nutrition) *float64 { return &m.Carbs }},
		{"fat", n.fat, func(m *models.Nutrition) *float64 { return &m.Fat }},
	}
	for _, m := range macros {
		if !fs.Changed(m.name) {
			continue
		}
		if meal.Nutrition == nil {
			meal.Nutrition = &models.Nutrition{}
		}
		*m.dst(meal.Nutrition) = m.v
	}

	if fs.Changed("serving-size") {
		size := n.servingSize
		meal.ServingSize = &size
	}
	if fs.Changed("serving-unit") {
		meal.ServingUnit = n.servingUnit
	}
}

func (c *cli) newListCmd() *cobra.Command {
	var today bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the meals of this device, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd)
			if err != nil {
				return err
			}

			var meals []models.Meal
			if today {
				meals = app.Services().MealService.GetTodaysMeals(cmd.Context())
			} else {
				meals = app.Services().MealService.GetMeals(cmd.Context())
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMeals(meals, app.Config().App.Location))
			return nil
		},
	}
	cmd.Flags().BoolVar(&today, "today", false, "Only meals logged today")

	return cmd
}

func (c *cli) newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's totals and meals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd)
			if err != nil {
				return err
			}
			meals := app.Services().MealService

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tui.RenderSummary(meals.TodaySummary(cmd.Context())))
			fmt.Fprintln(out, tui.RenderMeals(meals.GetTodaysMeals(cmd.Context()), app.Config().App.Location))
			return nil
		},
	}
}

func (c *cli) newUpdateCmd() *cobra.Command {
	var (
		n        nutritionFlags
		foodName string
	)

	cmd := &cobra.Command{
		Use:     "update <meal id>",
		Short:   "Change fields of a meal",
		Example: `  meal-log update meal-01J... --calories 250 --serving-size 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := buildPatch(cmd.Flags(), n, foodName)
			if patch.IsEmpty() {
				return errNothingToUpdate
			}

			app, err := c.open(cmd)
			if err != nil {
				return err
			}

			mealID := strings.TrimSpace(args[0])
			if !app.Services().MealService.UpdateMeal(cmd.Context(), mealID, patch) {
				return fmt.Errorf("meal %s was not updated", mealID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", mealID)
			return nil
		},
	}

	n.register(cmd.Flags())
	cmd.Flags().StringVar(&foodName, "food", "", "New food name")

	return cmd
}

func buildPatch(fs *pflag.FlagSet, n nutritionFlags, foodName string) models.MealPatch {
	var patch models.MealPatch

	if fs.Changed("food") {
		patch.FoodName = &foodName
	}

	var nutrition models.NutritionPatch
	if fs.Changed("calories") {
		nutrition.Calories = &n.calories
	}
	if fs.Changed("protein") {
		nutrition.Protein = &n.protein
	}
	if fs.Changed("carbs") {
		nutrition.Carbs = &n.carbs
	}
	if fs.Changed("fat") {
		nutrition.Fat = &n.fat
	}
	if !nutrition.IsEmpty() {
		patch.Nutrition = &nutrition
	}

	if fs.Changed("serving-size") {
		patch.ServingSize = &n.servingSize
	}
	if fs.Changed("serving-unit") {
		patch.ServingUnit = &n.servingUnit
	}
	return patch
}

func (c *cli) newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <meal id>",
		Short: "Delete a meal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd)
			if err != nil {
				return err
			}
			mealID := strings.TrimSpace(args[0])

			if !yes {
				ok, err := app.UI().Confirm(cmd.Context(), fmt.Sprintf("Delete meal %s?", mealID))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if !app.Services().MealService.DeleteMeal(cmd.Context(), mealID) {
				return fmt.Errorf("meal %s was not deleted", mealID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", mealID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
