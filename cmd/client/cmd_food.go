package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-meal-log/internal/tui"
	"github.com/MKhiriev/go-meal-log/models"
)

func (c *cli) newFoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Search the food catalogue and add custom foods",
	}
	cmd.AddCommand(c.newFoodSearchCmd(), c.newFoodShowCmd(), c.newFoodAddCmd())
	return cmd
}

func (c *cli) newFoodSearchCmd() *cobra.Command {
	var localOnly bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search foods by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd)
			if err != nil {
				return err
			}

			foods := app.Services().FoodService.SearchFoods(cmd.Context(), strings.Join(args, " "), localOnly)
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFoods(foods))
			return nil
		},
	}
	cmd.Flags().BoolVar(&localOnly, "local", false, "Only search custom foods")

	return cmd
}

func (c *cli) newFoodShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <food id>",
		Short: "Show the nutrients of one serving of a food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd)
			if err != nil {
				return err
			}

			food, err := app.Services().FoodService.GetFoodDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFood(food))
			return nil
		},
	}
}

func (c *cli) newFoodAddCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "add --file <food.json|food.yaml>",
		Short: "Add a custom food definition",
		Long: `Add a custom food from a JSON or YAML file.

foodName, servingSize, servingUnit and calories are required. Any other keys
are stored as given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			food, err := readCustomFood(path)
			if err != nil {
				return err
			}

			app, err := c.open(cmd)
			if err != nil {
				return err
			}

			created, err := app.Services().FoodService.AddCustomFood(cmd.Context(), food)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %v (%v)\n", created[models.CustomFoodKeyFoodName], created["fdcId"])
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "JSON or YAML food definition")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readCustomFood(path string) (models.CustomFood, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read food file: %w", err)
	}

	food := models.CustomFood{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &food)
	default:
		err = json.Unmarshal(data, &food)
	}
	if err != nil {
		return nil, fmt.Errorf("parse food file %s: %w", path, err)
	}
	return food, nil
}
