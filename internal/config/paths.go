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
	"os"
	"path/filepath"
	"runtime"
)

// XDG-compliant paths for farmquest configuration and cache.
var (
	// Home is the configuration directory (~/.config/farmquest).
	Home string
	// Cache is the cache directory (~/.cache/farmquest).
	Cache string
)

func init() {
	resolvePaths()
}

func resolvePaths() {
	Home = filepath.Join(xdgDir("XDG_CONFIG_HOME", "APPDATA", "", ".config"), "farmquest")
	Cache = filepath.Join(xdgDir("XDG_CACHE_HOME", "LOCALAPPDATA", "cache", ".cache"), "farmquest")
}

// xdgDir returns the directory named by env, the Windows fallback winEnv
// (joined with winSub), or dot under the home directory.
func xdgDir(env, winEnv, winSub, dot string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv(winEnv); v != "" {
			return filepath.Join(v, winSub)
		}
	}
	return filepath.Join(homeDir(), dot)
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// ConfigFile returns the path to config.yaml.
func ConfigFile() string {
	return filepath.Join(Home, "config.yaml")
}

// LogFile returns the path of the debug event log written with --verbose.
func LogFile() string {
	return filepath.Join(Cache, "farmquest.log")
}
