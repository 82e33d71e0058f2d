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

// Package community manages the list of fellow farmers: friends and
// discovery, gifts of credits and short messages.
package community

import (
	"strings"
	"time"
)

// Tab splits the member list.
type Tab int

const (
	TabFriends Tab = iota
	TabDiscover
)

func (t Tab) String() string {
	if t == TabDiscover {
		return "Discover"
	}
	return "Friends"
}

// Stats are a member's lifetime counters.
type Stats struct {
	HabitsCompleted int
	ChallengesWon   int
	GiftsGiven      int
	HelpfulMessages int
}

// Member is one community farmer.
type Member struct {
	ID             int
	Name           string
	Level          int
	Location       string
	Joined         time.Time
	Popularity     int
	Credits        int
	Specialization string
	Avatar         string
	Stats          Stats
	Badges         []string
	Online         bool
	Friend         bool
}

// RecordID implements records.Record.
func (m Member) RecordID() int { return m.ID }

// Matches reports whether term occurs in the name or specialization,
// ignoring case. An empty term matches everything.
func (m Member) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), term) ||
		strings.Contains(strings.ToLower(m.Specialization), term)
}

// InTab reports whether the member is listed under tab.
func (m Member) InTab(tab Tab) bool {
	if tab == TabFriends {
		return m.Friend
	}
	return !m.Friend
}

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

// SeedMembers returns the starting community.
func SeedMembers() []Member {
	return []Member{
		{
			ID: 1, Name: "Sarah Green", Level: 12, Location: "California, USA", Joined: date("2023-01-15"),
			Popularity: 850, Credits: 2400, Specialization: "Organic Farming", Avatar: "female",
			Stats:  Stats{HabitsCompleted: 245, ChallengesWon: 18, GiftsGiven: 32, HelpfulMessages: 67},
			Badges: []string{"Water Warrior", "Soil Guardian", "Eco Champion", "Community Helper"},
			Online: true, Friend: true,
		},
		{
			ID: 2, Name: "Mike Rodriguez", Level: 9, Location: "Texas, USA", Joined: date("2023-03-22"),
			Popularity: 620, Credits: 1800, Specialization: "Sustainable Livestock", Avatar: "male",
			Stats:  Stats{HabitsCompleted: 189, ChallengesWon: 12, GiftsGiven: 28, HelpfulMessages: 45},
			Badges: []string{"Animal Whisperer", "Green Thumb", "Mentor"},
			Online: false, Friend: true,
		},
		{
			ID: 3, Name: "Emma Watson", Level: 15, Location: "Ontario, Canada", Joined: date("2022-11-08"),
			Popularity: 1200, Credits: 3500, Specialization: "Permaculture Design", Avatar: "female",
			Stats:  Stats{HabitsCompleted: 356, ChallengesWon: 25, GiftsGiven: 48, HelpfulMessages: 89},
			Badges: []string{"Eco Master", "Design Guru", "Community Leader", "Sustainability Champion"},
			Online: true, Friend: false,
		},
		{
			ID: 4, Name: "RoboFarm-3000", Level: 7, Location: "Digital Farm", Joined: date("2023-06-10"),
			Popularity: 420, Credits: 1200, Specialization: "Smart Agriculture", Avatar: "robot",
			Stats:  Stats{HabitsCompleted: 156, ChallengesWon: 8, GiftsGiven: 15, HelpfulMessages: 23},
			Badges: []string{"Tech Pioneer", "Data Analyst", "Innovation Award"},
			Online: true, Friend: false,
		},
	}
}
