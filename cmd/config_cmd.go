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

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cloud-exit/farmquest/internal/config"
	"github.com/cloud-exit/farmquest/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage config.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config.yaml if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		wrote, err := config.WriteDefaults()
		if err != nil {
			ui.Errorf("Failed to write config: %v", err)
			return err
		}
		if !wrote {
			ui.Infof("Config already exists at %s", config.ConfigFile())
			return nil
		}
		ui.Successf("Wrote %s", config.ConfigFile())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			ui.Warnf("Using defaults: %v", err)
			cfg = config.DefaultConfig()
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		fmt.Fprint(ui.Stdout, string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
