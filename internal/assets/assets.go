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

// Package assets resolves static asset paths against a deploy prefix and
// exposes the embedded terminal rendition of each asset.
package assets

import (
	"sort"

	"github.com/cloud-exit/farmquest/static"
)

// Asset paths, relative to the base path.
const (
	Logo         = "/farmquest-logo.png"
	FarmerAvatar = "/farmer-avatar.png"
)

var art = map[string][]byte{
	Logo:         static.FarmQuestLogo,
	FarmerAvatar: static.FarmerAvatar,
}

var basePath string

// SetBasePath sets the prefix prepended by Path. It is called once at
// startup, before any view renders.
func SetBasePath(prefix string) { basePath = prefix }

// BasePath returns the current prefix.
func BasePath() string { return basePath }

// Path returns the asset path p under the base path. The prefix is joined
// verbatim, so "" leaves p unchanged.
func Path(p string) string { return basePath + p }

// Art returns the terminal artwork for the asset at p, or "" when none is
// embedded.
func Art(p string) string { return string(art[p]) }

// Names lists the known asset paths in sorted order.
func Names() []string {
	names := make([]string, 0, len(art))
	for name := range art {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
