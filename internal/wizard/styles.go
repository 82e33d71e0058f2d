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

package wizard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/farmquest/internal/ui"
)

const sidebarWidth = 24

var (
	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ui.ColorMuted).
			PaddingRight(1)

	sidebarActiveStyle = lipgloss.NewStyle().
				Foreground(ui.ColorPrimary).
				Bold(true)

	sidebarVisitedStyle = lipgloss.NewStyle().
				Foreground(ui.ColorPrimary)

	descStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			PaddingLeft(2)

	rowLabelStyle = lipgloss.NewStyle().
			Width(12)
)
