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
	"github.com/cloud-exit/farmquest/internal/calendar"
	"github.com/cloud-exit/farmquest/internal/challenges"
	"github.com/cloud-exit/farmquest/internal/habits"
	"github.com/cloud-exit/farmquest/internal/learning"
	"github.com/cloud-exit/farmquest/internal/quests"
)

// Glyphs for the feature icon enums. Unknown values fall back to the
// sprout, matching habits.Icon.String.
const (
	glyphSprout   = "🌱"
	glyphDroplets = "💧"
	glyphSun      = "☀️"
	glyphShield   = "🛡️"
	glyphLeaf     = "🍃"
	glyphTractor  = "🚜"
	glyphBug      = "🐛"
	glyphThermo   = "🌡️"
	glyphTarget   = "🎯"
	glyphUsers    = "👥"
	glyphZap      = "⚡"
	glyphCalendar = "📅"
	glyphWheat    = "🌾"
	glyphTrophy   = "🏆"
	glyphStar     = "⭐"
	glyphHeart    = "❤️"
	glyphGift     = "🎁"
)

var tabGlyphs = map[Tab]string{
	TabOverview:     "🏠",
	TabHabits:       glyphSprout,
	TabLearn:        "📚",
	TabQuests:       glyphTarget,
	TabChallenges:   glyphZap,
	TabCommunity:    glyphUsers,
	TabLeaderboard:  "📊",
	TabAchievements: glyphTrophy,
	TabCalendar:     glyphCalendar,
	TabInventory:    "📦",
	TabShop:         "🛒",
	TabSettings:     "⚙️",
}

func tabGlyph(t Tab) string { return tabGlyphs[Resolve(t)] }

var habitGlyphs = map[habits.Icon]string{
	habits.IconSprout:      glyphSprout,
	habits.IconDroplets:    glyphDroplets,
	habits.IconSun:         glyphSun,
	habits.IconShield:      glyphShield,
	habits.IconLeaf:        glyphLeaf,
	habits.IconTractor:     glyphTractor,
	habits.IconBug:         glyphBug,
	habits.IconThermometer: glyphThermo,
}

func habitGlyph(i habits.Icon) string { return lookup(habitGlyphs, i) }

var questGlyphs = map[quests.Icon]string{
	quests.IconTarget:   glyphTarget,
	quests.IconDroplets: glyphDroplets,
	quests.IconSprout:   glyphSprout,
	quests.IconSun:      glyphSun,
	quests.IconUsers:    glyphUsers,
	quests.IconShield:   glyphShield,
	quests.IconZap:      glyphZap,
}

func questGlyph(i quests.Icon) string { return lookup(questGlyphs, i) }

var challengeGlyphs = map[challenges.Icon]string{
	challenges.IconTarget:   glyphTarget,
	challenges.IconDroplets: glyphDroplets,
	challenges.IconSprout:   glyphSprout,
	challenges.IconSun:      glyphSun,
	challenges.IconShield:   glyphShield,
}

func challengeGlyph(i challenges.Icon) string { return lookup(challengeGlyphs, i) }

var eventGlyphs = map[calendar.Icon]string{
	calendar.IconCalendar: glyphCalendar,
	calendar.IconSprout:   glyphSprout,
	calendar.IconDroplets: glyphDroplets,
	calendar.IconSun:      glyphSun,
	calendar.IconShield:   glyphShield,
	calendar.IconTractor:  glyphTractor,
	calendar.IconWheat:    glyphWheat,
	calendar.IconUsers:    glyphUsers,
}

func eventGlyph(i calendar.Icon) string { return lookup(eventGlyphs, i) }

var courseGlyphs = map[learning.Icon]string{
	learning.IconDroplets: glyphDroplets,
	learning.IconSprout:   glyphSprout,
	learning.IconSun:      glyphSun,
	learning.IconShield:   glyphShield,
}

func courseGlyph(i learning.Icon) string { return lookup(courseGlyphs, i) }

func lookup[K comparable](m map[K]string, k K) string {
	if g, ok := m[k]; ok {
		return g
	}
	return glyphSprout
}
