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

package ui

import (
	"fmt"
	"strings"

	"github.com/cloud-exit/farmquest/internal/assets"
)

// Tagline is shown under the logo.
const Tagline = "Grow better habits, grow a better farm."

// LogoText returns the FarmQuest logo artwork without trailing newline.
func LogoText() string {
	return strings.TrimRight(assets.Art(assets.Logo), "\n")
}

// Logo prints the FarmQuest logo with tagline.
func Logo() {
	fmt.Fprint(Stdout, Green)
	fmt.Fprintln(Stdout, LogoText())
	fmt.Fprint(Stdout, NC)
	fmt.Fprintf(Stdout, "%s  %s%s\n", Dim, Tagline, NC)
}
