// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-meal-log/internal/config"
	"github.com/MKhiriev/go-meal-log/internal/logger"
)

var ErrUnknownAlertMode = errors.New("unknown alert mode")

// TUI owns the terminal streams used for alerts and prompts. Depending on
// the alert mode it renders a bubbletea dialog, prints plain text or stays
// silent.
type TUI struct {
	mode string
	in   io.Reader
	out  io.Writer

	logger *logger.Logger
}

// New returns a TUI for one of the config.AlertMode* values.
func New(mode string, in io.Reader, out io.Writer, logger *logger.Logger) (*TUI, error) {
	switch mode {
	case config.AlertModeTUI, config.AlertModePlain, config.AlertModeNone:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlertMode, mode)
	}

	return &TUI{mode: mode, in: in, out: out, logger: logger}, nil
}

// Alert shows message and blocks until the user dismisses it. In plain mode
// the message is printed and Alert returns at once; in none mode it is only
// logged.
func (t *TUI) Alert(ctx context.Context, message string) {
	t.logger.Warn().Str("func", "*TUI.Alert").Str("mode", t.mode).Msg(message)

	switch t.mode {
	case config.AlertModeNone:
		return
	case config.AlertModePlain:
		_, _ = fmt.Fprintln(t.out, "Error: "+message)
		return
	}

	if _, err := t.run(ctx, newAlertModel(message)); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Alert").Msg("alert dialog failed")
		_, _ = fmt.Fprintln(t.out, "Error: "+message)
	}
}

// Confirm asks a yes/no question. Plain and none modes read a line from the
// input and accept "y" or "yes".
func (t *TUI) Confirm(ctx context.Context, question string) (bool, error) {
	if t.mode != config.AlertModeTUI {
		return t.confirmPlain(question)
	}

	final, err := t.run(ctx, newConfirmModel(question))
	if err != nil {
		return false, fmt.Errorf("confirm dialog: %w", err)
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.accepted, nil
}

func (t *TUI) confirmPlain(question string) (bool, error) {
	_, _ = fmt.Fprintf(t.out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(t.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
}
