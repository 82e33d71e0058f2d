// FarmQuest - Gamified Farming Habits
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/app"
	"github.com/cloud-exit/farmquest/internal/config"
	"github.com/cloud-exit/farmquest/internal/dashboard"
	"github.com/cloud-exit/farmquest/internal/kvstore"
	"github.com/cloud-exit/farmquest/internal/logging"
	"github.com/cloud-exit/farmquest/internal/profile"
	"github.com/cloud-exit/farmquest/internal/render"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// tuiStart picks the first screen of the program.
type tuiStart struct {
	mode    app.Mode
	profile *profile.Summary
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := logging.New(verbose, config.LogFile())
	if err != nil {
		return nil, err
	}
	if verbose {
		ui.Debugf("Writing debug log to %s", config.LogFile())
	}
	return log, nil
}

func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// runTUI starts the bubbletea program. Without a terminal it prints a
// static summary instead.
func runTUI(cmd *cobra.Command, start tuiStart) error {
	if !ui.IsInteractive() {
		ui.Warn("Non-interactive terminal detected. Run farmquest in a terminal to play.")
		printSummary()
		return nil
	}

	cfg := config.LoadOrDefault()
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, err := kvstore.Open()
	if err != nil {
		return fmt.Errorf("opening message store: %w", err)
	}
	defer store.Close()

	md, err := render.New(markdownStyle())
	if err != nil {
		return err
	}

	model := app.New(app.Options{
		Config:   cfg,
		Store:    store,
		Markdown: md,
		Log:      log,
		Start:    start.mode,
		Profile:  start.profile,
	})

	var opts []tea.ProgramOption
	noAlt, _ := cmd.Flags().GetBool("no-alt-screen")
	if cfg.Settings.AltScreen && !noAlt {
		opts = append(opts, tea.WithAltScreen())
	}
	log.Info("starting", zap.Stringer("mode", start.mode), zap.String("version", Version))
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("running farmquest: %w", err)
	}
	return nil
}

func printSummary() {
	ui.Logo()
	fmt.Fprintln(ui.Stdout)
	fmt.Fprintln(ui.Stdout, "Tabs:")
	for _, t := range dashboard.Tabs {
		fmt.Fprintf(ui.Stdout, "  • %s\n", t.Label())
	}
}
