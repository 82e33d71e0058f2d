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

	"github.com/cloud-exit/farmquest/internal/assets"
	"github.com/cloud-exit/farmquest/internal/config"
	"github.com/cloud-exit/farmquest/internal/settings"
	"github.com/cloud-exit/farmquest/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration and environment information",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()
		lang := settings.NewLanguage(cfg.Settings.Language)

		ui.Logo()
		fmt.Fprintln(ui.Stdout)
		ui.Info("System Information")
		ui.Field("Version", Version)
		ui.Field("Config file", config.ConfigFile())
		ui.Field("Cache dir", config.Cache)
		ui.Field("Debug log", config.LogFile())
		fmt.Fprintln(ui.Stdout)

		ui.Info("Settings")
		ui.Field("Language", fmt.Sprintf("%s (%s)", lang.Name(), lang.Code()))
		ui.Field("Clock", cfg.Settings.ClockEvery().String())
		ui.Field("Animations", onOff(cfg.Settings.Animations))
		ui.Field("Alt screen", onOff(cfg.Settings.AltScreen))
		prefix := assets.BasePath()
		if prefix == "" {
			prefix = "(none)"
		}
		ui.Field("Asset prefix", prefix)
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List static assets with their resolved paths",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range assets.Names() {
			ui.Field(name, assets.Path(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(assetsCmd)
}
