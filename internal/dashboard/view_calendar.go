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

	"github.com/cloud-exit/farmquest/internal/calendar"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// Add form field order.
const (
	eventTitle = iota
	eventDesc
	eventDate
	eventTime
	eventKind
	eventCategory
	eventReminder
	eventLocation
)

var (
	eventKinds     = []calendar.Kind{calendar.KindTask, calendar.KindEvent}
	reminderLabels = []string{"Off", "Same day", "Day before"}
	weekdays       = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

var cellStyle = lipgloss.NewStyle().Width(5).Align(lipgloss.Right)

type calendarView struct {
	cal    *calendar.Calendar
	now    func() time.Time
	grid   [calendar.GridDays]time.Time
	day    int
	inList bool
	cursor cursor
	add    *form
}

func newCalendarView(now func() time.Time) *calendarView {
	t := now()
	return &calendarView{
		cal:  calendar.NewCalendar(t),
		now:  now,
		grid: calendar.Grid(t),
		day:  int(t.Weekday()),
	}
}

func (v *calendarView) Init() tea.Cmd { return nil }
func (v *calendarView) Editing() bool { return v.add != nil }

func (v *calendarView) Keys() []key.Binding {
	switch {
	case v.add != nil:
		return formKeys
	case v.inList:
		return []key.Binding{keyUp, keyDown, keyDelete, keyBack}
	}
	return []key.Binding{
		binding("left,h", "day"), binding("up,k", "week"),
		binding("enter", "events"), keyAdd,
	}
}

func (v *calendarView) newEventForm() *form {
	n := calendar.Blank(v.cal.Selected())
	cats := calendar.Categories
	def := 0
	for i, c := range cats {
		if c == n.Category {
			def = i
		}
	}
	kinds := make([]string, len(eventKinds))
	for i, k := range eventKinds {
		kinds[i] = string(k)
	}
	return newForm("Add Task or Event",
		textField("Title", "e.g., Soil Testing", ""),
		textField("Description", "What needs doing?", ""),
		textField("Date", "YYYY-MM-DD", n.Date),
		textField("Time", "HH:MM", n.Time),
		pickField("Type", kinds, 0),
		pickField("Category", cats, def),
		pickField("Reminder", reminderLabels, 0),
		textField("Location", "optional", ""),
	)
}

func (v *calendarView) draft() calendar.New {
	n := calendar.Blank(v.add.value(eventDate))
	n.Title = v.add.value(eventTitle)
	n.Description = v.add.value(eventDesc)
	n.Time = strings.TrimSpace(v.add.value(eventTime))
	n.Kind = eventKinds[v.add.fields[eventKind].choice]
	n.Category = v.add.value(eventCategory)
	n.Location = strings.TrimSpace(v.add.value(eventLocation))
	switch v.add.fields[eventReminder].choice {
	case 1:
		n.Reminder = calendar.Reminder{Enabled: true, Timing: calendar.SameDay, Time: n.Time}
	case 2:
		n.Reminder = calendar.Reminder{Enabled: true, Timing: calendar.DayBefore, Time: n.Time}
	}
	return n
}

func validDraft(n calendar.New) bool {
	if strings.TrimSpace(n.Title) == "" {
		return false
	}
	_, err := time.Parse(calendar.DateLayout+" "+calendar.TimeLayout, n.Date+" "+n.Time)
	return err == nil
}

func (v *calendarView) Update(msg tea.Msg) tea.Cmd {
	if v.add != nil {
		res, cmd := v.add.update(msg)
		switch res {
		case formCancelled:
			v.add = nil
		case formSubmitted:
			if e, ok := v.cal.Add(v.draft()); ok {
				v.add = nil
				v.selectDate(e.At)
			}
		}
		return cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.inList {
		events := v.cal.On(v.cal.Selected())
		if v.cursor.move(km, len(events)) {
			return nil
		}
		switch {
		case key.Matches(km, keyBack):
			v.inList = false
		case key.Matches(km, keyDelete) && len(events) > 0:
			v.cal.Delete(events[v.cursor].ID)
			v.cursor.clamp(len(events) - 1)
			if len(events) == 1 {
				v.inList = false
			}
		}
		return nil
	}

	switch {
	case key.Matches(km, keyLeft):
		v.moveDay(-1)
	case key.Matches(km, keyRight):
		v.moveDay(1)
	case key.Matches(km, keyUp):
		v.moveDay(-7)
	case key.Matches(km, keyDown):
		v.moveDay(7)
	case key.Matches(km, keyEnter):
		if len(v.cal.On(v.cal.Selected())) > 0 {
			v.inList = true
			v.cursor = 0
		}
	case key.Matches(km, keyAdd):
		v.add = v.newEventForm()
	}
	return nil
}

func (v *calendarView) moveDay(delta int) {
	i := v.day + delta
	if i < 0 || i >= len(v.grid) {
		return
	}
	v.day = i
	v.cal.Select(v.grid[i])
}

// selectDate moves the selection to t when it is on the grid.
func (v *calendarView) selectDate(t time.Time) {
	v.cal.Select(t)
	for i, d := range v.grid {
		if d.Format(calendar.DateLayout) == t.Format(calendar.DateLayout) {
			v.day = i
			return
		}
	}
}

func (v *calendarView) View(width int) string {
	var b strings.Builder
	b.WriteString(heading("Farm Calendar "+glyphCalendar, "Plan your farming tasks and events"))
	if v.add != nil {
		b.WriteString(v.add.view(validDraft(v.draft())))
		return b.String()
	}

	now := v.now()
	left := v.renderGrid(now) + "\n" + v.renderDay()
	right := v.renderUpcoming(now)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right))
	return b.String()
}

func (v *calendarView) renderGrid(now time.Time) string {
	var b strings.Builder
	b.WriteString(ui.AccentStyle.Render(v.grid[v.day].Format("January 2006")) + "\n")
	for _, w := range weekdays {
		b.WriteString(cellStyle.Render(ui.DimStyle.Render(w)))
	}
	b.WriteString("\n")
	today := now.Format(calendar.DateLayout)
	for i, d := range v.grid {
		date := d.Format(calendar.DateLayout)
		label := fmt.Sprintf("%d", d.Day())
		if len(v.cal.On(date)) > 0 {
			label = "•" + label
		}
		switch {
		case i == v.day:
			label = ui.SelectedStyle.Reverse(true).Render(label)
		case date == today:
			label = ui.AccentStyle.Render(label)
		}
		b.WriteString(cellStyle.Render(label))
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *calendarView) renderDay() string {
	var b strings.Builder
	sel := v.cal.Selected()
	b.WriteString(ui.AccentStyle.Render("Events on "+sel) + "\n")
	events := v.cal.On(sel)
	if len(events) == 0 {
		b.WriteString(ui.DimStyle.Render("Nothing scheduled. Press a to add a task.") + "\n")
	}
	for i, e := range events {
		prefix := "  "
		if v.inList {
			prefix = v.cursor.prefix(i)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s\n", prefix, eventGlyph(e.Icon), e.Time, e.Title, ui.DimStyle.Render(string(e.Kind)+" · "+e.Category)))
		if e.Description != "" {
			b.WriteString(ui.DimStyle.Render("     "+e.Description) + "\n")
		}
		if e.Location != "" {
			b.WriteString(ui.DimStyle.Render("     📍 "+e.Location) + "\n")
		}
		if e.Reminder.Enabled {
			b.WriteString(ui.DimStyle.Render(fmt.Sprintf("     🔔 %s at %s", e.Reminder.Timing, e.Reminder.Time)) + "\n")
		}
	}
	return b.String()
}

func (v *calendarView) renderUpcoming(now time.Time) string {
	var b strings.Builder
	b.WriteString(ui.AccentStyle.Render("Today") + "\n")
	today := v.cal.Today(now)
	if len(today) == 0 {
		b.WriteString(ui.DimStyle.Render("No tasks today") + "\n")
	}
	for _, e := range today {
		b.WriteString(fmt.Sprintf("%s %s %s\n", eventGlyph(e.Icon), e.Time, e.Title))
	}

	b.WriteString("\n" + ui.AccentStyle.Render("Upcoming") + "\n")
	upcoming := v.cal.Upcoming(now)
	if len(upcoming) == 0 {
		b.WriteString(ui.DimStyle.Render("Nothing upcoming") + "\n")
	}
	for _, e := range upcoming {
		b.WriteString(fmt.Sprintf("%s %s\n", eventGlyph(e.Icon), e.Title))
		b.WriteString(ui.DimStyle.Render(fmt.Sprintf("  %s %s · %s", e.Date, e.Time, calendar.TimeRemaining(e.At, now))) + "\n")
	}
	return ui.CardStyle.Render(b.String())
}
