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

// Package achievements lists the milestones shown on the achievements tab.
package achievements

// Achievement is one milestone.
type Achievement struct {
	Name        string
	Description string
	Category    string
	Earned      bool
}

// All returns every achievement in display order.
func All() []Achievement {
	return []Achievement{
		{"Water Warrior", "7-day water conservation streak", "Water", true},
		{"Soil Guardian", "Complete 10 soil assessments", "Soil", true},
		{"Green Thumb", "Maintain 5 sustainable habits", "Habits", false},
		{"Eco Champion", "Reach Level 10", "Level", false},
		{"Crop Master", "Successfully rotate 3 crop cycles", "Crops", true},
		{"Pest Defender", "Use organic pest control for 30 days", "Protection", false},
		{"Community Helper", "Help 10 fellow farmers", "Community", true},
		{"Learning Enthusiast", "Complete 5 learning modules", "Education", false},
		{"Challenge Champion", "Complete 20 daily challenges", "Challenges", false},
	}
}

// Earned returns the achievements already unlocked.
func Earned(list []Achievement) []Achievement {
	var out []Achievement
	for _, a := range list {
		if a.Earned {
			out = append(out, a)
		}
	}
	return out
}

// Recent returns at most n earned achievements for the overview tab.
func Recent(list []Achievement, n int) []Achievement {
	e := Earned(list)
	if len(e) > n {
		e = e[:n]
	}
	return e
}
