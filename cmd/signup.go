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
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/farmquest/internal/app"
	"github.com/cloud-exit/farmquest/internal/ui"
	"github.com/cloud-exit/farmquest/internal/wizard"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create your farmer profile",
	Long:  "Walk through onboarding (name, experience, avatar, specialization) and open the dashboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		accessible, _ := cmd.Flags().GetBool("accessible")
		if !accessible {
			return runTUI(cmd, tuiStart{mode: app.ModeOnboarding})
		}
		return runAccessibleSignup(cmd)
	},
}

// runAccessibleSignup asks the onboarding questions as plain prompts, then
// opens the dashboard with the resulting profile.
func runAccessibleSignup(cmd *cobra.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	summary, err := wizard.RunAccessible(wizard.AccessibleOptions{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Log: log,
	})
	if errors.Is(err, wizard.ErrCancelled) {
		ui.Info("Onboarding cancelled. Run 'farmquest signup' to start again.")
		return nil
	}
	if err != nil {
		return err
	}

	ui.Successf("Welcome to FarmQuest, %s!", summary.FirstName())
	ui.Field("Specialization", summary.Specialization.Label())
	ui.Field("Level", strconv.Itoa(summary.Level))
	return runTUI(cmd, tuiStart{mode: app.ModeDashboard, profile: &summary})
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Open the dashboard",
	Long:  "Open the dashboard directly with the demo farm. No credentials are checked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, tuiStart{mode: app.ModeDashboard})
	},
}

func init() {
	signupCmd.Flags().Bool("accessible", false, "Ask the onboarding questions as plain text prompts")
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
}
