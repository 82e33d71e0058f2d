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

// Package challenges holds the daily and weekly challenges and the badges
// earned by completing them.
package challenges

import (
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/records"
	"github.com/cloud-exit/farmquest/internal/session"
)

// Period is the reset window of a challenge.
type Period string

const (
	Daily  Period = "daily"
	Weekly Period = "weekly"
)

// Difficulty grades a challenge.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Icon is the closed set of challenge icons.
type Icon int

const (
	IconTarget Icon = iota
	IconDroplets
	IconSprout
	IconSun
	IconShield
)

// Challenge is one challenge record. Badge is optional.
type Challenge struct {
	ID          int
	Title       string
	Description string
	Period      Period
	Difficulty  Difficulty
	Icon        Icon
	Progress    int
	MaxProgress int
	Credits     int
	XP          int
	Badge       string
	Completed   bool
	TimeLeft    string
}

// RecordID implements records.Record.
func (c Challenge) RecordID() int { return c.ID }

// Claimable reports whether the reward can be collected.
func (c Challenge) Claimable() bool { return !c.Completed && c.Progress >= c.MaxProgress }

// StartBadges are the badges every farmer begins with.
var StartBadges = []string{"Soil Guardian", "Water Warrior", "Eco Defender"}

// Book is the challenge list plus the earned-badge set.
type Book struct {
	sess   *session.Session
	items  []Challenge
	badges []string
}

// NewBook seeds a book with the starting challenges and badges.
func NewBook(sess *session.Session) *Book {
	return NewBookWith(sess, Seed(), StartBadges)
}

// NewBookWith builds a book from explicit challenges and badges.
func NewBookWith(sess *session.Session, items []Challenge, badges []string) *Book {
	b := &Book{sess: sess, items: items}
	for _, name := range badges {
		b.badges = records.Union(b.badges, name)
	}
	return b
}

// Items returns every challenge.
func (b *Book) Items() []Challenge { return b.items }

// ByPeriod returns the challenges of one period in list order.
func (b *Book) ByPeriod(p Period) []Challenge {
	var out []Challenge
	for _, c := range b.items {
		if c.Period == p {
			out = append(out, c)
		}
	}
	return out
}

// Badges returns the earned badge names without duplicates.
func (b *Book) Badges() []string { return b.badges }

// Get returns challenge id.
func (b *Book) Get(id int) (Challenge, bool) { return records.Find(b.items, id) }

// CompletedCount returns how many challenges are done.
func (b *Book) CompletedCount() int {
	n := 0
	for _, c := range b.items {
		if c.Completed {
			n++
		}
	}
	return n
}

// RecordProgress advances challenge id by one, up to its target.
func (b *Book) RecordProgress(id int) {
	b.items = records.Replace(b.items, id, func(c Challenge) Challenge {
		if !c.Completed && c.Progress < c.MaxProgress {
			c.Progress++
		}
		return c
	})
}

// Claim collects the reward of challenge id. Credits and XP go to the
// session and the badge, if any, joins the earned set. It returns false and
// changes nothing unless the challenge is claimable.
func (b *Book) Claim(id int) bool {
	c, ok := records.Find(b.items, id)
	if !ok || !c.Claimable() {
		return false
	}
	b.items = records.Replace(b.items, id, func(c Challenge) Challenge {
		c.Completed = true
		c.Progress = c.MaxProgress
		c.TimeLeft = "Completed"
		return c
	})
	if c.Badge != "" {
		b.badges = records.Union(b.badges, c.Badge)
	}
	if b.sess != nil {
		b.sess.Award(c.Credits, c.XP)
		b.sess.Log.Info("challenge claimed", zap.Int("id", id), zap.String("badge", c.Badge))
	}
	return true
}

// Seed returns the starting challenges.
func Seed() []Challenge {
	return []Challenge{
		{
			ID: 1, Title: "Water Wise Wednesday", Description: "Check irrigation efficiency in 3 different areas",
			Period: Daily, Difficulty: Easy, Icon: IconDroplets, Progress: 2, MaxProgress: 3,
			Credits: 25, XP: 50, TimeLeft: "6h 23m",
		},
		{
			ID: 2, Title: "Soil Health Check", Description: "Test soil pH and moisture levels",
			Period: Daily, Difficulty: Medium, Icon: IconSprout, Progress: 0, MaxProgress: 1,
			Credits: 35, XP: 75, Badge: "Soil Guardian", TimeLeft: "6h 23m",
		},
		{
			ID: 3, Title: "Sustainable Pest Control", Description: "Apply organic pest management techniques",
			Period: Daily, Difficulty: Hard, Icon: IconShield, Progress: 1, MaxProgress: 1,
			Credits: 50, XP: 100, Badge: "Eco Defender", Completed: true, TimeLeft: "Completed",
		},
		{
			ID: 4, Title: "Crop Rotation Master", Description: "Plan and implement crop rotation for 5 plots",
			Period: Weekly, Difficulty: Medium, Icon: IconSun, Progress: 3, MaxProgress: 5,
			Credits: 100, XP: 200, Badge: "Rotation Expert", TimeLeft: "3d 12h",
		},
		{
			ID: 5, Title: "Community Helper", Description: "Help 10 fellow farmers with sustainable practices",
			Period: Weekly, Difficulty: Hard, Icon: IconTarget, Progress: 7, MaxProgress: 10,
			Credits: 150, XP: 300, Badge: "Community Champion", TimeLeft: "3d 12h",
		},
	}
}
