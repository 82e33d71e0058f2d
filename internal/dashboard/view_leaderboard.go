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
	"github.com/cloud-exit/farmquest/internal/leaderboard"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// playerStreak is the farmer's current streak on the leaderboard.
const playerStreak = 27

type leaderboardView struct {
	sess     *session.Session
	category int
}

func newLeaderboardView(sess *session.Session) *leaderboardView {
	return &leaderboardView{sess: sess}
}

func (v *leaderboardView) Init() tea.Cmd { return nil }
func (v *leaderboardView) Editing() bool { return false }

func (v *leaderboardView) Keys() []key.Binding {
	return []key.Binding{keyLeft, keyRight}
}

func (v *leaderboardView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := len(leaderboard.Categories)
	switch {
	case key.Matches(km, keyLeft):
		v.category = (v.category - 1 + n) % n
	case key.Matches(km, keyRight):
		v.category = (v.category + 1) % n
	}
	return nil
}

func (v *leaderboardView) player() leaderboard.Player {
	p := leaderboard.Player{
		Level:        v.sess.Level(),
		XP:           v.sess.XP(),
		Credits:      v.sess.Credits(),
		Achievements: len(achievements.Earned(achievements.All())),
		Streak:       playerStreak,
	}
	if v.sess.Profile != nil {
		p.Name = v.sess.Profile.DisplayName()
		p.Specialization = v.sess.Profile.Specialization.Label()
	}
	return p
}

func (v *leaderboardView) View(width int) string {
	var b strings.Builder
	b.WriteString(heading("Leaderboard "+glyphTrophy, "See how you rank among sustainable farmers worldwide"))

	names := make([]string, len(leaderboard.Categories))
	for i, c := range leaderboard.Categories {
		names[i] = c.Label()
	}
	b.WriteString(tabs(names, v.category))

	cat := leaderboard.Categories[v.category]
	rows := leaderboard.Board(cat, v.player())
	rank := leaderboard.Rank(rows)
	b.WriteString(ui.AccentStyle.Render(fmt.Sprintf("Your rank: #%d", rank)) + "  " + ui.DimStyle.Render(leaderboard.RankMessage(rank)) + "\n\n")

	for i, r := range rows {
		medal := fmt.Sprintf("#%d", i+1)
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		score := fmt.Sprintf("%d XP", r.XP)
		if cat.ByStreak() {
			score = fmt.Sprintf("🔥 %d days", r.Streak)
		}
		line := fmt.Sprintf("%-3s %-18s Lv %-3d %-14s %s", medal, r.Name, r.Level, score, ui.DimStyle.Render(r.Specialization+" · "+r.Location))
		if r.Current {
			line = ui.CursorStyle.Render("> ") + ui.SelectedStyle.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
