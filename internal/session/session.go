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

// Package session holds the counters shared between the dashboard shell and
// its feature views. All writes happen on the bubbletea update goroutine.
package session

import (
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/profile"
)

// Mock values used when the dashboard is opened without onboarding
// (login or "get started").
const (
	GuestCredits    = 1250
	GuestPopularity = 420
	GuestXP         = 1250
	GuestLevel      = 8
)

// Counters are the values shown in the dashboard header. None is ever negative.
type Counters struct {
	Credits    int
	Popularity int
	XP         int
}

// Session is passed by pointer to every feature view. Views read the current
// values, compute a new absolute value and hand it back through the On*Change
// methods.
type Session struct {
	Profile *profile.Summary
	Log     *zap.Logger

	counters Counters
}

// New seeds the counters from p, or from the guest mock values when p is nil.
func New(p *profile.Summary, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{Profile: p, Log: log}
	if p != nil {
		s.counters = Counters{Credits: p.Credits, Popularity: p.Popularity, XP: p.XP}
	} else {
		s.counters = Counters{Credits: GuestCredits, Popularity: GuestPopularity, XP: GuestXP}
	}
	s.counters = clampAll(s.counters)
	return s
}

// Counters returns a snapshot of the shared counters.
func (s *Session) Counters() Counters { return s.counters }

// Credits returns the current credit balance.
func (s *Session) Credits() int { return s.counters.Credits }

// Popularity returns the current popularity.
func (s *Session) Popularity() int { return s.counters.Popularity }

// XP returns the current experience points.
func (s *Session) XP() int { return s.counters.XP }

// OnCreditsChange replaces the credit balance. Negative values store 0.
func (s *Session) OnCreditsChange(v int) {
	s.counters.Credits = clamp(v)
	s.Log.Debug("credits changed", zap.Int("requested", v), zap.Int("stored", s.counters.Credits))
}

// OnPopularityChange replaces the popularity. Negative values store 0.
func (s *Session) OnPopularityChange(v int) {
	s.counters.Popularity = clamp(v)
	s.Log.Debug("popularity changed", zap.Int("requested", v), zap.Int("stored", s.counters.Popularity))
}

// OnXPChange replaces the experience points. Negative values store 0.
func (s *Session) OnXPChange(v int) {
	s.counters.XP = clamp(v)
	s.Log.Debug("xp changed", zap.Int("requested", v), zap.Int("stored", s.counters.XP))
}

// Award adds credits and XP in one step.
func (s *Session) Award(credits, xp int) {
	if credits != 0 {
		s.OnCreditsChange(s.counters.Credits + credits)
	}
	if xp != 0 {
		s.OnXPChange(s.counters.XP + xp)
	}
}

// Level returns the profile's level, or GuestLevel without a profile.
func (s *Session) Level() int {
	if s.Profile == nil {
		return GuestLevel
	}
	return s.Profile.Level
}

// FirstName returns the profile's first name, or "Farmer".
func (s *Session) FirstName() string {
	return s.Profile.FirstName()
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampAll(c Counters) Counters {
	return Counters{Credits: clamp(c.Credits), Popularity: clamp(c.Popularity), XP: clamp(c.XP)}
}
