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

package config

import "time"

// Config is the top-level farmquest configuration (config.yaml).
type Config struct {
	Version       int            `yaml:"version"`
	AssetBasePath string         `yaml:"asset_base_path,omitempty"`
	Settings      SettingsConfig `yaml:"settings"`
}

// SettingsConfig holds user preferences.
type SettingsConfig struct {
	Language      string `yaml:"language"`
	ClockInterval string `yaml:"clock_interval,omitempty"` // Go duration, e.g. "60s"
	Animations    bool   `yaml:"animations"`
	AltScreen     bool   `yaml:"alt_screen"`
}

// ClockEvery returns the dashboard clock period. Unparseable or non-positive
// values fall back to the default.
func (s SettingsConfig) ClockEvery() time.Duration {
	d, err := time.ParseDuration(s.ClockInterval)
	if err != nil || d <= 0 {
		return DefaultClockInterval
	}
	return d
}
