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
	"os"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/farmquest/internal/assets"
	"github.com/cloud-exit/farmquest/internal/config"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// Version is set by ldflags at build time.
var Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "farmquest",
	Short: "Gamified farming habits in your terminal",
	Long:  "FarmQuest - build sustainable farming habits with quests, challenges, lessons and a community of farmers",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v

		if err := config.EnsureDirs(); err != nil {
			ui.Warnf("Could not create config directories: %v", err)
		}
		cfg := config.LoadOrDefault()
		flag, _ := cmd.Flags().GetString("base-path")
		assets.SetBasePath(cfg.ResolveBasePath(flag))
		ui.Debugf("asset prefix %q", assets.BasePath())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, tuiStart{})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("farmquest version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output and the debug log")
	rootCmd.PersistentFlags().String("base-path", "", "Prefix for static asset paths (overrides "+config.BasePathEnv+")")
	rootCmd.PersistentFlags().Bool("no-alt-screen", false, "Render inline instead of in the alternate screen")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("farmquest version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
