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

package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/farmquest/internal/ui"
)

// placeholder is a tab with nothing to do yet.
type placeholder struct {
	tab  Tab
	text string
}

func newPlaceholder(tab Tab, text string) *placeholder {
	return &placeholder{tab: tab, text: text}
}

func (v *placeholder) Init() tea.Cmd              { return nil }
func (v *placeholder) Update(msg tea.Msg) tea.Cmd { return nil }
func (v *placeholder) Editing() bool              { return false }
func (v *placeholder) Keys() []key.Binding        { return nil }

func (v *placeholder) View(width int) string {
	return heading(v.tab.Label()+" "+tabGlyph(v.tab), v.text) + ui.CardStyle.Render(ui.DimStyle.Render("Coming soon!"))
}
