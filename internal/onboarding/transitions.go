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

package onboarding

import "github.com/cloud-exit/farmquest/internal/profile"

// Transition names a wizard move.
type Transition int

const (
	TransitionAdvance Transition = iota
	TransitionRetreat
	TransitionSkipAvatar
	TransitionComplete
)

func (t Transition) String() string {
	switch t {
	case TransitionAdvance:
		return "advance"
	case TransitionRetreat:
		return "retreat"
	case TransitionSkipAvatar:
		return "skip-avatar"
	case TransitionComplete:
		return "complete"
	}
	return "unknown"
}

// Result is the outcome of applying a transition. Applied is false when the
// transition was a no-op; Summary is set only by a successful Complete.
type Result struct {
	State   State
	Draft   profile.Draft
	Applied bool
	Summary *profile.Summary
}

var transitions = map[Transition]func(State, profile.Draft) Result{
	TransitionAdvance: func(s State, d profile.Draft) Result {
		next := Advance(s, d)
		return Result{State: next, Draft: d, Applied: next != s}
	},
	TransitionRetreat: func(s State, d profile.Draft) Result {
		next := Retreat(s)
		return Result{State: next, Draft: d, Applied: next != s}
	},
	TransitionSkipAvatar: func(s State, d profile.Draft) Result {
		next, nd, ok := SkipAvatar(s, d)
		return Result{State: next, Draft: nd, Applied: ok}
	},
	TransitionComplete: func(s State, d profile.Draft) Result {
		sum, ok := Complete(s, d)
		r := Result{State: s, Draft: d, Applied: ok}
		if ok {
			r.Summary = &sum
		}
		return r
	},
}

// Apply runs transition t against (s, d). Unknown transitions are no-ops.
func Apply(s State, d profile.Draft, t Transition) Result {
	fn, ok := transitions[t]
	if !ok {
		return Result{State: s, Draft: d}
	}
	return fn(s, d)
}
