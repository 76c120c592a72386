package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-meal-log/internal/config"
	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/models"
)

// ── models ───────────────────────────────────────────────────────────────────

func TestAlertModel_DismissKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			updated, cmd := newAlertModel("boom").Update(msg)
			require.NotNil(t, cmd)
			assert.True(t, updated.(alertModel).dismissed)
		})
	}
}

func TestAlertModel_OtherKeysIgnored(t *testing.T) {
	m := newAlertModel("Error saving meal. Check connection.")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.False(t, updated.(alertModel).dismissed)
	assert.Contains(t, updated.View(), "Error saving meal. Check connection.")
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		accepted bool
	}{
		{name: "yes", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, accepted: true},
		{name: "no", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, accepted: false},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, accepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, cmd := newConfirmModel("Delete meal?").Update(tt.msg)
			require.NotNil(t, cmd)

			result := updated.(confirmModel)
			assert.True(t, result.answered)
			assert.Equal(t, tt.accepted, result.accepted)
		})
	}
}

// ── TUI ──────────────────────────────────────────────────────────────────────

func TestNew_UnknownMode(t *testing.T) {
	_, err := New("popup", nil, nil, logger.Nop())
	assert.True(t, errors.Is(err, ErrUnknownAlertMode))
}

func TestAlert_PlainAndNone(t *testing.T) {
	var out bytes.Buffer

	plain, err := New(config.AlertModePlain, strings.NewReader(""), &out, logger.Nop())
	require.NoError(t, err)
	plain.Alert(context.Background(), "Error saving meal. Check connection.")
	assert.Equal(t, "Error: Error saving meal. Check connection.\n", out.String())

	out.Reset()
	none, err := New(config.AlertModeNone, strings.NewReader(""), &out, logger.Nop())
	require.NoError(t, err)
	none.Alert(context.Background(), "ignored")
	assert.Empty(t, out.String())
}

func TestConfirm_Plain(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			ui, err := New(config.AlertModePlain, strings.NewReader(tt.input), &out, logger.Nop())
			require.NoError(t, err)

			got, err := ui.Confirm(context.Background(), "Delete meal-1?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Delete meal-1? [y/N]: ", out.String())
		})
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func TestRenderMeals(t *testing.T) {
	ts := time.Date(2026, time.October, 17, 8, 5, 0, 0, time.UTC)
	out := RenderMeals([]models.Meal{{
		ID:          "meal-1",
		FoodName:    "Porridge with a very long description that will be cut",
		MealType:    models.MealTypeBreakfast,
		ServingSize: 1.5,
		ServingUnit: "bowl",
		Timestamp:   ts.UnixMilli(),
		Nutrition:   models.Nutrition{Calories: 310, Protein: 9.5},
	}}, time.UTC)

	assert.Contains(t, out, "meal-1")
	assert.Contains(t, out, "2026-10-17 08:05")
	assert.Contains(t, out, "1.5 bowl")
	assert.Contains(t, out, "9.5")
	assert.Contains(t, out, "...")
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(models.DailySummary{
		Day:      time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC),
		Meals:    3,
		Calories: 1450,
		Protein:  80.5,
	})

	assert.Contains(t, out, "TODAY 2026-10-17")
	assert.Contains(t, out, "Meals:    3")
	assert.Contains(t, out, "1450 kcal")
	assert.Contains(t, out, "80.5 g")
}

func TestRenderFood_OptionalNutrients(t *testing.T) {
	sodium := 0.2
	out := RenderFood(models.Food{FdcID: "42", Description: "Skyr", ServingSize: 150, ServingUnit: "g", Sodium: &sodium})

	assert.Contains(t, out, "FOOD 42")
	assert.Contains(t, out, "Skyr (-)")
	assert.Contains(t, out, "0.2")
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("1.2.0", "", "abc"))

	assert.Contains(t, out, "Version: 1.2.0")
	assert.Contains(t, out, "Date: N/A")
	assert.Contains(t, out, "Commit: abc")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "crèm...", fitText("crème brûlée", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, HumanizeError(nil))
	assert.Equal(t, "No network or the meal API is unavailable",
		HumanizeError(errors.New(`Get "http://localhost:5000/api/health": dial tcp [::1]:5000: connect: connection refused`)))
	assert.Equal(t, "food not found", HumanizeError(errors.New("food not found")))
}
