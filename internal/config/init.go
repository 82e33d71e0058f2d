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

import (
	"fmt"
	"os"
)

// EnsureDirs creates the farmquest config and cache directories.
func EnsureDirs() error {
	for _, d := range []string{Home, Cache} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", d, err)
		}
	}
	return nil
}

// ConfigExists returns true if config.yaml exists.
func ConfigExists() bool {
	_, err := os.Stat(ConfigFile())
	return err == nil
}

// WriteDefaults writes the default config if none exists. It reports whether
// a file was written.
func WriteDefaults() (bool, error) {
	if ConfigExists() {
		return false, nil
	}
	if err := EnsureDirs(); err != nil {
		return false, err
	}
	if err := SaveConfig(DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}
