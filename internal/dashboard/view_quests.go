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

	"github.com/cloud-exit/farmquest/internal/quests"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/ui"
)

var questSections = []string{"Active Quests", "Completed"}

type questsView struct {
	board   *quests.Board
	section int
	cursor  cursor
	status  string
}

func newQuestsView(sess *session.Session) *questsView {
	return &questsView{board: quests.NewBoard(sess)}
}

func (v *questsView) Init() tea.Cmd { return nil }
func (v *questsView) Editing() bool { return false }

func (v *questsView) Keys() []key.Binding {
	if v.section == 1 {
		return []key.Binding{keyUp, keyDown, keyLeft, keyRight}
	}
	return []key.Binding{keyUp, keyDown, keyLeft, keyRight, keyStep, keyClaim}
}

func (v *questsView) list() []quests.Quest {
	if v.section == 1 {
		return v.board.Completed()
	}
	return v.board.Active()
}

func (v *questsView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	list := v.list()
	if v.cursor.move(km, len(list)) {
		return nil
	}
	switch {
	case key.Matches(km, keyLeft), key.Matches(km, keyRight):
		v.section = 1 - v.section
		v.cursor = 0
		v.status = ""
	case v.section == 1 || len(list) == 0:
	case key.Matches(km, keyStep):
		v.board.RecordProgress(list[v.cursor].ID)
	case key.Matches(km, keyClaim):
		q := list[v.cursor]
		if v.board.Claim(q.ID) {
			v.status = fmt.Sprintf("Quest complete! +%d XP, +%d credits", q.Rewards.XP, q.Rewards.Credits)
			v.cursor.clamp(len(v.board.Active()))
		}
	}
	return nil
}

func (v *questsView) View(width int) string {
	var b strings.Builder
	b.WriteString(heading("Farm Quests "+glyphTarget, "Embark on farming adventures and earn rewards"))
	b.WriteString(ui.DimStyle.Render(fmt.Sprintf("%d active · %d completed · %d XP earned · %d items collected",
		len(v.board.Active()), len(v.board.Completed()), v.board.EarnedXP(), v.board.ItemCount())) + "\n")
	b.WriteString(tabs(questSections, v.section) + "\n")

	list := v.list()
	if len(list) == 0 {
		b.WriteString(ui.DimStyle.Render("No quests here yet.") + "\n")
	}
	for i, q := range list {
		title := q.Title
		if v.cursor.at(i) {
			title = ui.SelectedStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", v.cursor.prefix(i), questGlyph(q.Icon), title,
			ui.DimStyle.Render(fmt.Sprintf("%s · %s", q.Type, q.Difficulty))))
		if !v.cursor.at(i) {
			continue
		}
		b.WriteString("     " + ui.DimStyle.Render(q.Description) + "\n")
		b.WriteString("     " + ui.Meter(q.Progress, q.MaxProgress, 20) + "\n")
		rewards := fmt.Sprintf("+%d XP · +%d credits", q.Rewards.XP, q.Rewards.Credits)
		if len(q.Rewards.Items) > 0 {
			rewards += " · " + strings.Join(q.Rewards.Items, ", ")
		}
		b.WriteString("     " + ui.AccentStyle.Render(glyphGift+" "+rewards) + "\n")
		meta := []string{}
		if q.TimeLimit != "" {
			meta = append(meta, "⏱ "+q.TimeLimit)
		}
		if q.Location != "" {
			meta = append(meta, "📍 "+q.Location)
		}
		if len(meta) > 0 {
			b.WriteString("     " + ui.DimStyle.Render(strings.Join(meta, "  ")) + "\n")
		}
		switch {
		case q.Completed:
			b.WriteString("     " + ui.SelectedStyle.Render("✓ Completed") + "\n")
		case q.Ready():
			b.WriteString("     " + ui.SelectedStyle.Render("Ready! Press Enter to claim") + "\n")
		default:
			b.WriteString("     " + ui.DimStyle.Render("Claim (finish the quest first)") + "\n")
		}
	}
	if v.status != "" {
		b.WriteString("\n" + ui.AccentStyle.Render(v.status))
	}
	return b.String()
}
