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

	"github.com/cloud-exit/farmquest/internal/habits"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// Add form field order.
const (
	habitName = iota
	habitDesc
	habitCategory
	habitIcon
	habitXP
)

type habitsView struct {
	list   *habits.List
	cursor cursor
	add    *form
}

func newHabitsView(list *habits.List) *habitsView {
	return &habitsView{list: list}
}

func (v *habitsView) Init() tea.Cmd { return nil }

func (v *habitsView) Editing() bool { return v.add != nil }

func (v *habitsView) Keys() []key.Binding {
	if v.add != nil {
		return formKeys
	}
	return []key.Binding{keyUp, keyDown, binding(" ", "complete"), keyAdd, keyDelete}
}

func newHabitForm() *form {
	icons := make([]string, len(habits.Icons))
	for i, ic := range habits.Icons {
		icons[i] = habitGlyph(ic) + " " + ic.String()
	}
	xps := make([]string, len(habits.XPChoices))
	def := 0
	for i, c := range habits.XPChoices {
		xps[i] = fmt.Sprintf("%d XP (%s)", c.XP, c.Label)
		if c.XP == habits.DefaultXP {
			def = i
		}
	}
	return newForm("Add New Habit",
		textField("Name", "e.g., Morning Irrigation Check", ""),
		textField("Description", "Describe your sustainable farming habit", ""),
		pickField("Category", habits.Categories, 0),
		pickField("Icon", icons, 0),
		pickField("XP Reward", xps, def),
	)
}

func (v *habitsView) draft() habits.New {
	return habits.New{
		Name:        v.add.value(habitName),
		Description: v.add.value(habitDesc),
		Category:    v.add.value(habitCategory),
		Icon:        habits.Icons[v.add.fields[habitIcon].choice],
		XP:          habits.XPChoices[v.add.fields[habitXP].choice].XP,
	}
}

func (v *habitsView) Update(msg tea.Msg) tea.Cmd {
	if v.add != nil {
		res, cmd := v.add.update(msg)
		switch res {
		case formCancelled:
			v.add = nil
		case formSubmitted:
			if _, ok := v.list.Add(v.draft()); ok {
				v.add = nil
				v.cursor = cursor(v.list.Len() - 1)
			}
		}
		return cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	items := v.list.Items()
	if v.cursor.move(km, len(items)) {
		return nil
	}
	switch {
	case key.Matches(km, keyAdd):
		v.add = newHabitForm()
		return nil
	case len(items) == 0:
		return nil
	case key.Matches(km, keyToggle), km.String() == "enter":
		v.list.Toggle(items[v.cursor].ID)
	case key.Matches(km, keyDelete):
		v.list.Delete(items[v.cursor].ID)
		v.cursor.clamp(v.list.Len())
	}
	return nil
}

func (v *habitsView) View(width int) string {
	var b strings.Builder
	b.WriteString(heading("My Farming Habits "+glyphSprout, "Track and manage your sustainable farming practices"))

	if v.add != nil {
		b.WriteString(v.add.view(v.draft().Valid()))
		return b.String()
	}

	items := v.list.Items()
	b.WriteString(ui.DimStyle.Render(fmt.Sprintf("%d of %d completed today", v.list.CompletedCount(), len(items))) + "\n\n")
	if len(items) == 0 {
		b.WriteString(ui.DimStyle.Render("No habits yet. Press a to add your first one.") + "\n")
		return b.String()
	}
	for i, h := range items {
		check := "[ ]"
		if h.Completed {
			check = ui.SelectedStyle.Render("[✓]")
		}
		name := h.Name
		if v.cursor.at(i) {
			name = ui.SelectedStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s\n", v.cursor.prefix(i), check, habitGlyph(h.Icon), name,
			ui.AccentStyle.Render(fmt.Sprintf("+%d XP", h.XP))))
		b.WriteString(ui.DimStyle.Render(fmt.Sprintf("      %s · %s · 🔥 %d day streak", h.Description, h.Category, h.Streak)) + "\n")
	}
	return b.String()
}
