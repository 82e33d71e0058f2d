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

// Package quests tracks multi-step farming quests. A quest whose progress
// reaches its target can be claimed once, which pays out its rewards and
// moves it to the completed list.
package quests

import (
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/records"
	"github.com/cloud-exit/farmquest/internal/session"
)

// Type is the quest line a quest belongs to.
type Type string

const (
	TypeMain   Type = "main"
	TypeSide   Type = "side"
	TypeDaily  Type = "daily"
	TypeWeekly Type = "weekly"
)

// Difficulty grades a quest.
type Difficulty string

const (
	Easy      Difficulty = "easy"
	Medium    Difficulty = "medium"
	Hard      Difficulty = "hard"
	Legendary Difficulty = "legendary"
)

// Icon is the closed set of quest icons.
type Icon int

const (
	IconTarget Icon = iota
	IconDroplets
	IconSprout
	IconSun
	IconUsers
	IconShield
	IconZap
)

// Rewards is what a quest pays out when claimed.
type Rewards struct {
	XP      int
	Credits int
	Items   []string
}

// Quest is one quest record.
type Quest struct {
	ID          int
	Title       string
	Description string
	Type        Type
	Difficulty  Difficulty
	Progress    int
	MaxProgress int
	Rewards     Rewards
	TimeLimit   string
	Location    string
	Completed   bool
	Icon        Icon
}

// RecordID implements records.Record.
func (q Quest) RecordID() int { return q.ID }

// Ready reports whether the quest has reached its target.
func (q Quest) Ready() bool { return !q.Completed && q.Progress >= q.MaxProgress }

// Percent returns progress as a fraction in [0, 1].
func (q Quest) Percent() float64 {
	if q.MaxProgress <= 0 {
		return 0
	}
	p := float64(q.Progress) / float64(q.MaxProgress)
	if p > 1 {
		return 1
	}
	return p
}

// Board holds the active and completed quests.
type Board struct {
	sess      *session.Session
	active    []Quest
	completed []Quest
}

// NewBoard returns a board seeded with the starting quests. Rewards are paid
// into sess.
func NewBoard(sess *session.Session) *Board {
	active, completed := Seed()
	return &Board{sess: sess, active: active, completed: completed}
}

// Active returns the quests still in progress.
func (b *Board) Active() []Quest { return b.active }

// Completed returns the claimed quests, oldest first.
func (b *Board) Completed() []Quest { return b.completed }

// Get looks a quest up in either list.
func (b *Board) Get(id int) (Quest, bool) {
	if q, ok := records.Find(b.active, id); ok {
		return q, true
	}
	return records.Find(b.completed, id)
}

// RecordProgress advances an active quest by one step, up to its target.
func (b *Board) RecordProgress(id int) {
	b.active = records.Replace(b.active, id, func(q Quest) Quest {
		if q.Progress < q.MaxProgress {
			q.Progress++
		}
		return q
	})
}

// Claim completes quest id when its progress has reached the target. The
// quest's XP and credits are added to the session and the quest moves to the
// completed list. Claiming an unknown, unfinished or already completed quest
// does nothing.
func (b *Board) Claim(id int) bool {
	q, ok := records.Find(b.active, id)
	if !ok || !q.Ready() {
		return false
	}
	q.Completed = true
	b.active = records.Remove(b.active, id)
	b.completed = append(b.completed[:len(b.completed):len(b.completed)], q)
	if b.sess != nil {
		b.sess.Award(q.Rewards.Credits, q.Rewards.XP)
		b.sess.Log.Info("quest claimed", zap.Int("id", id), zap.Int("xp", q.Rewards.XP))
	}
	return true
}

// EarnedXP sums the XP of every completed quest.
func (b *Board) EarnedXP() int {
	total := 0
	for _, q := range b.completed {
		total += q.Rewards.XP
	}
	return total
}

// ItemCount counts the reward items collected from completed quests.
func (b *Board) ItemCount() int {
	n := 0
	for _, q := range b.completed {
		n += len(q.Rewards.Items)
	}
	return n
}

// Seed returns the starting active and completed quests.
func Seed() (active, completed []Quest) {
	active = []Quest{
		{
			ID: 1, Title: "The Water Guardian's Trial",
			Description: "Master water conservation techniques across 5 different farm zones",
			Type:        TypeMain, Difficulty: Hard, Progress: 3, MaxProgress: 5,
			Rewards:  Rewards{XP: 500, Credits: 200, Items: []string{"Water Master Badge", "Irrigation Blueprint"}},
			Location: "Farm Zones 1-5", Icon: IconDroplets,
		},
		{
			ID: 2, Title: "Soil Whisperer Challenge",
			Description: "Achieve perfect soil pH balance in 3 crop fields",
			Type:        TypeMain, Difficulty: Medium, Progress: 1, MaxProgress: 3,
			Rewards:  Rewards{XP: 300, Credits: 150, Items: []string{"Soil Sage Title"}},
			Location: "Crop Fields A, B, C", Icon: IconSprout,
		},
		{
			ID: 3, Title: "Daily Harvest Inspection",
			Description: "Check crop health and document findings",
			Type:        TypeDaily, Difficulty: Easy, Progress: 0, MaxProgress: 1,
			Rewards:   Rewards{XP: 50, Credits: 25},
			TimeLimit: "Resets in 18h 32m", Icon: IconSun,
		},
		{
			ID: 4, Title: "Community Helper",
			Description: "Assist 3 fellow farmers with their sustainable practices",
			Type:        TypeWeekly, Difficulty: Medium, Progress: 1, MaxProgress: 3,
			Rewards:   Rewards{XP: 200, Credits: 100, Items: []string{"Helper's Crown"}},
			TimeLimit: "Resets in 4d 12h", Icon: IconUsers,
		},
		{
			ID: 5, Title: "Pest Defense Strategy",
			Description: "Implement organic pest control methods for 7 consecutive days",
			Type:        TypeSide, Difficulty: Medium, Progress: 4, MaxProgress: 7,
			Rewards: Rewards{XP: 250, Credits: 120, Items: []string{"Organic Defender Badge"}},
			Icon:    IconShield,
		},
	}
	completed = []Quest{
		{
			ID: 6, Title: "First Steps to Sustainability",
			Description: "Complete your first sustainable farming practice",
			Type:        TypeMain, Difficulty: Easy, Progress: 1, MaxProgress: 1,
			Rewards:   Rewards{XP: 100, Credits: 50, Items: []string{"Novice Farmer Badge"}},
			Completed: true, Icon: IconTarget,
		},
		{
			ID: 7, Title: "Green Energy Pioneer",
			Description: "Install and use renewable energy for 30 days",
			Type:        TypeSide, Difficulty: Hard, Progress: 30, MaxProgress: 30,
			Rewards:   Rewards{XP: 400, Credits: 250, Items: []string{"Solar Champion Title", "Energy Crystal"}},
			Completed: true, Icon: IconZap,
		},
	}
	return active, completed
}
