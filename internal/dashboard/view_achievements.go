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
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/farmquest/internal/achievements"
	"github.com/cloud-exit/farmquest/internal/ui"
)

type achievementsView struct {
	all []achievements.Achievement
}

func newAchievementsView() *achievementsView {
	return &achievementsView{all: achievements.All()}
}

func (v *achievementsView) Init() tea.Cmd              { return nil }
func (v *achievementsView) Update(msg tea.Msg) tea.Cmd { return nil }
func (v *achievementsView) Editing() bool              { return false }
func (v *achievementsView) Keys() []key.Binding        { return nil }

func (v *achievementsView) View(width int) string {
	var b strings.Builder
	b.WriteString(heading("Achievements "+glyphStar, "Milestones on your sustainable farming journey"))
	earned := achievements.Earned(v.all)
	b.WriteString(ui.Meter(len(earned), len(v.all), 24) + ui.DimStyle.Render(" unlocked") + "\n\n")
	for _, a := range v.all {
		if a.Earned {
			b.WriteString(fmt.Sprintf("%s %s  %s\n", glyphTrophy, ui.SelectedStyle.Render(a.Name), ui.DimStyle.Render(a.Category)))
		} else {
			b.WriteString(fmt.Sprintf("🔒 %s  %s\n", ui.DimStyle.Render(a.Name), ui.DimStyle.Render(a.Category)))
		}
		b.WriteString(ui.DimStyle.Render("   "+a.Description) + "\n")
	}
	return b.String()
}
