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

	"github.com/cloud-exit/farmquest/internal/challenges"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/ui"
)

var challengePeriods = []challenges.Period{challenges.Daily, challenges.Weekly}

type challengesView struct {
	book   *challenges.Book
	period int
	cursor cursor
	status string
}

func newChallengesView(sess *session.Session) *challengesView {
	return &challengesView{book: challenges.NewBook(sess)}
}

func (v *challengesView) Init() tea.Cmd { return nil }
func (v *challengesView) Editing() bool { return false }

func (v *challengesView) Keys() []key.Binding {
	return []key.Binding{keyUp, keyDown, keyLeft, keyRight, keyStep, keyClaim}
}

func (v *challengesView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	list := v.book.ByPeriod(challengePeriods[v.period])
	if v.cursor.move(km, len(list)) {
		return nil
	}
	switch {
	case key.Matches(km, keyLeft), key.Matches(km, keyRight):
		v.period = 1 - v.period
		v.cursor = 0
		v.status = ""
	case len(list) == 0:
	case key.Matches(km, keyStep):
		v.book.RecordProgress(list[v.cursor].ID)
	case key.Matches(km, keyClaim):
		c := list[v.cursor]
		if v.book.Claim(c.ID) {
			v.status = fmt.Sprintf("Challenge complete! +%d credits, +%d XP", c.Credits, c.XP)
			if c.Badge != "" {
				v.status += ", badge: " + c.Badge
			}
		}
	}
	return nil
}

func (v *challengesView) View(width int) string {
	var b strings.Builder
	b.WriteString(heading("Farming Challenges "+glyphZap, "Complete challenges to earn credits, XP and badges"))
	b.WriteString(ui.DimStyle.Render(fmt.Sprintf("%d of %d completed", v.book.CompletedCount(), len(v.book.Items()))) + "\n")
	b.WriteString(tabs([]string{"Daily", "Weekly"}, v.period) + "\n")

	for i, c := range v.book.ByPeriod(challengePeriods[v.period]) {
		title := c.Title
		if v.cursor.at(i) {
			title = ui.SelectedStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", v.cursor.prefix(i), challengeGlyph(c.Icon), title,
			ui.DimStyle.Render(fmt.Sprintf("%s · ⏱ %s", c.Difficulty, c.TimeLeft))))
		b.WriteString("     " + ui.DimStyle.Render(c.Description) + "\n")
		reward := fmt.Sprintf("%s  +%d credits · +%d XP", ui.Meter(c.Progress, c.MaxProgress, 16), c.Credits, c.XP)
		if c.Badge != "" {
			reward += " · " + glyphTrophy + " " + c.Badge
		}
		b.WriteString("     " + reward + "\n")
		if v.cursor.at(i) {
			switch {
			case c.Completed:
				b.WriteString("     " + ui.SelectedStyle.Render("✓ Completed") + "\n")
			case c.Claimable():
				b.WriteString("     " + ui.SelectedStyle.Render("Press Enter to claim your reward") + "\n")
			default:
				b.WriteString("     " + ui.DimStyle.Render("Claim (finish the challenge first)") + "\n")
			}
		}
	}

	b.WriteString("\n" + ui.AccentStyle.Render(glyphTrophy+" Earned Badges") + "\n")
	b.WriteString(strings.Join(v.book.Badges(), " · ") + "\n")
	if v.status != "" {
		b.WriteString("\n" + ui.AccentStyle.Render(v.status))
	}
	return b.String()
}
