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

// Package calendar keeps the farm's tasks and events, with optional
// reminders, and answers the date questions the calendar tab asks.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cloud-exit/farmquest/internal/records"
)

// Layouts for the date and time strings entered in the add form.
const (
	DateLayout = time.DateOnly
	TimeLayout = "15:04"
)

// Kind distinguishes tasks from events.
type Kind string

const (
	KindTask  Kind = "task"
	KindEvent Kind = "event"
)

// Timing says when a reminder fires relative to its event.
type Timing string

const (
	SameDay   Timing = "same-day"
	DayBefore Timing = "day-before"
)

// Reminder is an optional notification attached to an event.
type Reminder struct {
	Enabled bool
	Timing  Timing
	Time    string
}

// Icon is the closed set of calendar icons.
type Icon int

const (
	IconCalendar Icon = iota
	IconSprout
	IconDroplets
	IconSun
	IconShield
	IconTractor
	IconWheat
	IconUsers
)

// Categories lists the event categories in picker order.
var Categories = []string{
	"Soil Care",
	"Water Management",
	"Crop Management",
	"Plant Protection",
	"Equipment",
	"Harvest",
	"Marketing",
	"General",
}

var categoryIcons = map[string]Icon{
	"Soil Care":        IconSprout,
	"Water Management": IconDroplets,
	"Crop Management":  IconSun,
	"Plant Protection": IconShield,
	"Equipment":        IconTractor,
	"Harvest":          IconWheat,
	"Marketing":        IconUsers,
	"General":          IconCalendar,
}

// IconFor maps a category to its icon. Unknown categories get IconCalendar.
func IconFor(category string) Icon {
	if i, ok := categoryIcons[category]; ok {
		return i
	}
	return IconCalendar
}

// Event is one calendar entry. Date and Time keep the strings the user
// entered; At is the parsed local instant.
type Event struct {
	ID          int
	Title       string
	Description string
	Date        string
	Time        string
	At          time.Time
	Kind        Kind
	Category    string
	Icon        Icon
	Reminder    Reminder
	Location    string
	Attendees   []string
}

// RecordID implements records.Record.
func (e Event) RecordID() int { return e.ID }

// New holds the fields entered in the add form.
type New struct {
	Title       string
	Description string
	Date        string
	Time        string
	Kind        Kind
	Category    string
	Reminder    Reminder
	Location    string
}

// Blank returns the add form defaults for date.
func Blank(date string) New {
	return New{
		Date:     date,
		Time:     "09:00",
		Kind:     KindTask,
		Category: "General",
		Reminder: Reminder{Timing: SameDay, Time: "09:00"},
	}
}

func parseAt(date, clock string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, time.Local)
}

// Calendar is the event list owned by the calendar tab.
type Calendar struct {
	events   []Event
	selected string
}

// NewCalendar returns a calendar seeded with the starting events and with
// today selected.
func NewCalendar(now time.Time) *Calendar {
	return &Calendar{events: Seed(), selected: now.Format(DateLayout)}
}

// Events returns every event in insertion order.
func (c *Calendar) Events() []Event { return c.events }

// Selected returns the selected date as YYYY-MM-DD.
func (c *Calendar) Selected() string { return c.selected }

// Select changes the selected date.
func (c *Calendar) Select(day time.Time) { c.selected = day.Format(DateLayout) }

// Add appends an event with the next free ID. Title, date and time are
// required and the date and time must parse; otherwise nothing changes.
func (c *Calendar) Add(n New) (Event, bool) {
	if strings.TrimSpace(n.Title) == "" || n.Date == "" || n.Time == "" {
		return Event{}, false
	}
	at, err := parseAt(n.Date, n.Time)
	if err != nil {
		return Event{}, false
	}
	kind := n.Kind
	if kind == "" {
		kind = KindTask
	}
	var added Event
	c.events = records.Append(c.events, func(id int) Event {
		added = Event{
			ID:          id,
			Title:       strings.TrimSpace(n.Title),
			Description: strings.TrimSpace(n.Description),
			Date:        n.Date,
			Time:        n.Time,
			At:          at,
			Kind:        kind,
			Category:    n.Category,
			Icon:        IconFor(n.Category),
			Reminder:    n.Reminder,
			Location:    n.Location,
		}
		return added
	})
	return added, true
}

// Delete removes event id. Unknown ids are ignored.
func (c *Calendar) Delete(id int) {
	c.events = records.Remove(c.events, id)
}

// On returns the events scheduled on the given YYYY-MM-DD date.
func (c *Calendar) On(date string) []Event {
	var out []Event
	for _, e := range c.events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// Today returns the events scheduled on now's date.
func (c *Calendar) Today(now time.Time) []Event {
	return c.On(now.Format(DateLayout))
}

// UpcomingLimit caps the upcoming list.
const UpcomingLimit = 5

// Upcoming returns the next events at or after now, soonest first.
func (c *Calendar) Upcoming(now time.Time) []Event {
	var out []Event
	for _, e := range c.events {
		if !e.At.Before(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	if len(out) > UpcomingLimit {
		out = out[:UpcomingLimit]
	}
	return out
}

// TimeRemaining describes how long until at, or "Past due".
func TimeRemaining(at, now time.Time) string {
	d := at.Sub(now)
	if d < 0 {
		return "Past due"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d%(24*time.Hour)) / int(time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh remaining", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm remaining", hours, minutes)
	}
	return fmt.Sprintf("%dm remaining", minutes)
}

// GridDays is the number of cells in the month grid.
const GridDays = 35

// Grid returns five weeks of days starting on the Sunday of now's week.
func Grid(now time.Time) [GridDays]time.Time {
	y, m, d := now.Date()
	start := time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	var out [GridDays]time.Time
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func mustEvent(id int, title, desc, date, clock string, kind Kind, category string, r Reminder, location string, attendees ...string) Event {
	at, err := parseAt(date, clock)
	if err != nil {
		panic(err)
	}
	return Event{
		ID: id, Title: title, Description: desc, Date: date, Time: clock, At: at,
		Kind: kind, Category: category, Icon: IconFor(category), Reminder: r,
		Location: location, Attendees: attendees,
	}
}

// Seed returns the starting events.
func Seed() []Event {
	return []Event{
		mustEvent(1, "Soil pH Testing", "Test soil acidity levels in the north field",
			"2024-03-15", "09:00", KindTask, "Soil Care",
			Reminder{Enabled: true, Timing: SameDay, Time: "08:00"}, "North Field"),
		mustEvent(2, "Irrigation System Check", "Weekly maintenance of drip irrigation",
			"2024-03-16", "14:00", KindTask, "Water Management",
			Reminder{Enabled: true, Timing: DayBefore, Time: "18:00"}, ""),
		mustEvent(3, "Farmers Market", "Weekly produce sale at downtown market",
			"2024-03-17", "06:00", KindEvent, "Marketing",
			Reminder{Enabled: true, Timing: DayBefore, Time: "20:00"}, "Downtown Market Square",
			"Sarah", "Mike", "Local Customers"),
		mustEvent(4, "Crop Rotation Planning", "Plan next season's crop rotation schedule",
			"2024-03-20", "10:00", KindTask, "Crop Management",
			Reminder{Enabled: false, Timing: SameDay, Time: "09:00"}, ""),
	}
}
