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

// Package leaderboard ranks the farmer against the rest of the community.
package leaderboard

import (
	"sort"
	"strings"
)

// Category selects the ranking.
type Category string

const (
	Global  Category = "global"
	Local   Category = "local"
	Weekly  Category = "weekly"
	Monthly Category = "monthly"
)

// Categories lists the rankings in tab order.
var Categories = []Category{Global, Local, Weekly, Monthly}

// Label returns the capitalized category name.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// ByStreak reports whether the category ranks by streak instead of XP.
func (c Category) ByStreak() bool { return c == Weekly || c == Monthly }

// Entry is one leaderboard row.
type Entry struct {
	ID             int
	Name           string
	Level          int
	XP             int
	Credits        int
	Location       string
	Specialization string
	Achievements   int
	Streak         int
	Current        bool
}

// Player describes the current farmer's row.
type Player struct {
	Name           string
	Level          int
	XP             int
	Credits        int
	Specialization string
	Achievements   int
	Streak         int
}

// CurrentID is the row id reserved for the current farmer.
const CurrentID = 4

func others() []Entry {
	return []Entry{
		{ID: 1, Name: "Sarah Chen", Level: 12, XP: 2450, Credits: 1850, Location: "California, USA", Specialization: "Organic Farming", Achievements: 18, Streak: 45},
		{ID: 2, Name: "Miguel Rodriguez", Level: 11, XP: 2280, Credits: 1720, Location: "Texas, USA", Specialization: "Sustainable Agriculture", Achievements: 16, Streak: 38},
		{ID: 3, Name: "Emma Thompson", Level: 10, XP: 2150, Credits: 1650, Location: "Ontario, Canada", Specialization: "Permaculture", Achievements: 15, Streak: 42},
		{ID: 5, Name: "Raj Patel", Level: 9, XP: 1850, Credits: 1420, Location: "Gujarat, India", Specialization: "Water Conservation", Achievements: 12, Streak: 33},
		{ID: 6, Name: "Lisa Johnson", Level: 8, XP: 1680, Credits: 1380, Location: "Queensland, Australia", Specialization: "Crop Rotation", Achievements: 11, Streak: 29},
		{ID: 7, Name: "Carlos Silva", Level: 7, XP: 1420, Credits: 1180, Location: "São Paulo, Brazil", Specialization: "Soil Health", Achievements: 9, Streak: 24},
		{ID: 8, Name: "Aisha Hassan", Level: 9, XP: 1750, Credits: 1350, Location: "Lagos, Nigeria", Specialization: "Pest Management", Achievements: 13, Streak: 31},
	}
}

// Board returns the ranked rows for category with p inserted as the current
// farmer. Global and local rank by XP, weekly and monthly by streak, both
// descending; ties keep id order.
func Board(c Category, p Player) []Entry {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "You"
	}
	spec := p.Specialization
	if spec == "" {
		spec = "Beginner"
	}
	rows := append(others(), Entry{
		ID: CurrentID, Name: name, Level: p.Level, XP: p.XP, Credits: p.Credits,
		Location: "Your Location", Specialization: spec, Achievements: p.Achievements,
		Streak: p.Streak, Current: true,
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	sort.SliceStable(rows, func(i, j int) bool {
		if c.ByStreak() {
			return rows[i].Streak > rows[j].Streak
		}
		return rows[i].XP > rows[j].XP
	})
	return rows
}

// Rank returns the 1-based position of the current farmer, or 0.
func Rank(rows []Entry) int {
	for i, r := range rows {
		if r.Current {
			return i + 1
		}
	}
	return 0
}

// RankMessage is the encouragement shown next to the farmer's rank.
func RankMessage(rank int) string {
	switch {
	case rank >= 1 && rank <= 3:
		return "Excellent work! You're in the top 3!"
	case rank >= 1 && rank <= 10:
		return "Great job! You're in the top 10!"
	}
	return "Keep farming sustainably to climb the ranks!"
}
