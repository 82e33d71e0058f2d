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

// Package habits manages the farmer's recurring habits: a list of records
// that can be added, deleted and checked off for the day.
package habits

import (
	"strings"

	"github.com/cloud-exit/farmquest/internal/records"
)

// Icon is the closed set of habit icons. The dashboard maps each to a glyph.
type Icon int

const (
	IconSprout Icon = iota
	IconDroplets
	IconSun
	IconShield
	IconLeaf
	IconTractor
	IconBug
	IconThermometer
)

// Icons lists every icon in picker order.
var Icons = []Icon{IconDroplets, IconSprout, IconSun, IconShield, IconLeaf, IconTractor, IconBug, IconThermometer}

var iconNames = map[Icon]string{
	IconSprout:      "Sprout",
	IconDroplets:    "Droplets",
	IconSun:         "Sun",
	IconShield:      "Shield",
	IconLeaf:        "Leaf",
	IconTractor:     "Tractor",
	IconBug:         "Bug",
	IconThermometer: "Thermometer",
}

func (i Icon) String() string {
	if n, ok := iconNames[i]; ok {
		return n
	}
	return "Sprout"
}

// Categories lists the habit categories offered by the add form.
var Categories = []string{
	"Water Management",
	"Soil Care",
	"Crop Management",
	"Plant Protection",
	"Equipment Maintenance",
	"Pest Control",
	"Climate Monitoring",
	"Organic Practices",
}

// XPChoice is one entry of the reward picker.
type XPChoice struct {
	XP    int
	Label string
}

// XPChoices lists the XP rewards a new habit can carry.
var XPChoices = []XPChoice{
	{15, "Easy"},
	{25, "Medium"},
	{35, "Hard"},
	{50, "Expert"},
}

// DefaultXP is preselected in the add form.
const DefaultXP = 25

// Habit is one tracked habit.
type Habit struct {
	ID          int
	Name        string
	Description string
	Icon        Icon
	Streak      int
	Completed   bool
	XP          int
	Category    string
}

// RecordID implements records.Record.
func (h Habit) RecordID() int { return h.ID }

// New holds the user-supplied fields of a habit. ID, streak and completion
// are assigned by Add.
type New struct {
	Name        string
	Description string
	Icon        Icon
	XP          int
	Category    string
}

// Valid reports whether every required field is filled in.
func (n New) Valid() bool {
	return strings.TrimSpace(n.Name) != "" &&
		strings.TrimSpace(n.Description) != "" &&
		strings.TrimSpace(n.Category) != ""
}

// List is the habit collection owned by the habits view.
type List struct {
	items []Habit
}

// NewList returns a list holding items.
func NewList(items []Habit) *List {
	return &List{items: items}
}

// Seed returns the habits every session starts with.
func Seed() []Habit {
	return []Habit{
		{1, "Water Conservation Check", "Monitor and optimize water usage", IconDroplets, 7, true, 25, "Water Management"},
		{2, "Soil Health Assessment", "Test soil pH and nutrient levels", IconSprout, 3, false, 30, "Soil Care"},
		{3, "Crop Rotation Planning", "Plan next season crop rotation", IconSun, 12, true, 40, "Crop Management"},
		{4, "Pest Control Review", "Check for sustainable pest solutions", IconShield, 5, false, 35, "Plant Protection"},
	}
}

// Items returns the habits in insertion order. The slice must not be modified.
func (l *List) Items() []Habit { return l.items }

// Len returns the number of habits.
func (l *List) Len() int { return len(l.items) }

// Add appends a habit with the next free ID. It returns false and leaves the
// list unchanged when n is incomplete.
func (l *List) Add(n New) (Habit, bool) {
	if !n.Valid() {
		return Habit{}, false
	}
	xp := n.XP
	if xp <= 0 {
		xp = DefaultXP
	}
	var added Habit
	l.items = records.Append(l.items, func(id int) Habit {
		added = Habit{
			ID:          id,
			Name:        strings.TrimSpace(n.Name),
			Description: strings.TrimSpace(n.Description),
			Icon:        n.Icon,
			XP:          xp,
			Category:    n.Category,
		}
		return added
	})
	return added, true
}

// Delete removes the habit with id. Unknown ids are ignored.
func (l *List) Delete(id int) {
	l.items = records.Remove(l.items, id)
}

// Toggle flips the completion of habit id. Checking a habit off extends its
// streak; unchecking leaves the streak alone.
func (l *List) Toggle(id int) {
	l.items = records.Replace(l.items, id, func(h Habit) Habit {
		if !h.Completed {
			h.Streak++
		}
		h.Completed = !h.Completed
		return h
	})
}

// Get returns the habit with id.
func (l *List) Get(id int) (Habit, bool) {
	return records.Find(l.items, id)
}

// CompletedCount returns how many habits are checked off.
func (l *List) CompletedCount() int {
	n := 0
	for _, h := range l.items {
		if h.Completed {
			n++
		}
	}
	return n
}

// LongestStreak returns the highest streak across all habits.
func (l *List) LongestStreak() int {
	best := 0
	for _, h := range l.items {
		if h.Streak > best {
			best = h.Streak
		}
	}
	return best
}
