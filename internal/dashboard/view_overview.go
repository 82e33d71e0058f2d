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
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/farmquest/internal/achievements"
	"github.com/cloud-exit/farmquest/internal/habits"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// xpStep is the XP span of one level on the progress bar.
const xpStep = 250

// levelTitles names each pair of levels, 1-2 through 19-20.
var levelTitles = []string{
	"Seedling", "Sprout", "Sapling", "Young Plant", "Mature Plant",
	"Expert Grower", "Master Farmer", "Sustainable Steward", "Eco Champion", "Green Guardian",
}

func levelTitle(level int) string {
	i := (level - 1) / 2
	i = max(0, min(i, len(levelTitles)-1))
	return levelTitles[i]
}

// nextLevelXP returns the XP that completes the current level bar.
func nextLevelXP(xp int) int { return (xp/xpStep + 1) * xpStep }

func greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	}
	return "Good Evening"
}

type overview struct {
	sess   *session.Session
	habits *habits.List
	now    func() time.Time
	all    []achievements.Achievement
}

func newOverview(sess *session.Session, h *habits.List, now func() time.Time) *overview {
	return &overview{sess: sess, habits: h, now: now, all: achievements.All()}
}

func (v *overview) Init() tea.Cmd          { return nil }
func (v *overview) Update(tea.Msg) tea.Cmd { return nil }
func (v *overview) Keys() []key.Binding    { return nil }
func (v *overview) Editing() bool          { return false }

func (v *overview) View(width int) string {
	now := v.now()
	var b strings.Builder
	b.WriteString(heading(
		fmt.Sprintf("%s, %s! %s", greeting(now), v.sess.FirstName(), glyphSprout),
		now.Format("Monday, January 2, 2006")+" - Let's grow sustainably today"))

	earned := achievements.Earned(v.all)
	cards := []string{
		statCard(glyphZap, fmt.Sprint(v.sess.Credits()), "Farm Credits"),
		statCard(glyphTarget, fmt.Sprint(v.habits.Len()), "Active Habits"),
		statCard("⏱", fmt.Sprint(v.habits.LongestStreak()), "Day Streak"),
		statCard(glyphTrophy, fmt.Sprint(len(earned)), "Achievements"),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	level, xp := v.sess.Level(), v.sess.XP()
	next := nextLevelXP(xp)
	var lp strings.Builder
	lp.WriteString(ui.AccentStyle.Render(glyphStar+" Level Progress") + "\n")
	lp.WriteString(fmt.Sprintf("Level %d - %s    %d / %d XP\n", level, levelTitle(level), xp, next))
	lp.WriteString(ui.ProgressBar(xp*100/next, max(10, width-8)) + "\n")
	lp.WriteString(ui.DimStyle.Render(fmt.Sprintf("%d XP until Level %d - %s", next-xp, level+1, levelTitle(level+1))))
	b.WriteString(ui.CardStyle.Width(width-2).Render(lp.String()) + "\n")

	var st strings.Builder
	st.WriteString(ui.AccentStyle.Render("Your Farm Statistics") + "\n")
	st.WriteString(fmt.Sprintf("Farm Credits     %d\n", v.sess.Credits()))
	st.WriteString(fmt.Sprintf("Popularity       %d\n", v.sess.Popularity()))
	st.WriteString(fmt.Sprintf("Habits done      %d / %d today\n", v.habits.CompletedCount(), v.habits.Len()))
	st.WriteString(fmt.Sprintf("Achievements     %d / %d", len(earned), len(v.all)))

	var ra strings.Builder
	ra.WriteString(ui.AccentStyle.Render(glyphTrophy+" Recent Achievements") + "\n")
	for _, a := range achievements.Recent(v.all, 4) {
		ra.WriteString(ui.SelectedStyle.Render("✓ ") + a.Name + "  " + ui.DimStyle.Render(a.Description) + "\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		ui.CardStyle.Render(st.String()),
		ui.CardStyle.Render(strings.TrimRight(ra.String(), "\n"))))
	return b.String()
}

func statCard(glyph, value, label string) string {
	return ui.CardStyle.Width(18).Render(glyph + " " + ui.TitleStyle.Render(value) + "\n" + ui.DimStyle.Render(label))
}
