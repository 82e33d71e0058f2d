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

// Package onboarding implements the linear six-step wizard that collects a
// farmer profile. It is pure: no terminal or UI types appear here, so both the
// bubbletea wizard and the accessible huh runner drive the same transitions.
package onboarding

import (
	"strings"

	"github.com/cloud-exit/farmquest/internal/profile"
)

// Steps, numbered from 1.
const (
	StepName = iota + 1
	StepKnowledge
	StepExperience
	StepAge
	StepAvatar
	StepSpecialization
)

// TotalSteps is the number of wizard steps.
const TotalSteps = StepSpecialization

// StepTitles holds the heading of each step, indexed by step-1.
var StepTitles = [TotalSteps]string{
	"What's your name?",
	"What's your farming knowledge level?",
	"How long have you been farming?",
	"What's your age range?",
	"Customize your farming avatar",
	"Choose your farming specialization",
}

// State is the wizard position. 1 <= Current <= Total always holds for
// values produced by this package.
type State struct {
	Current int
	Total   int
}

// Start returns the state at the first step.
func Start() State {
	return State{Current: StepName, Total: TotalSteps}
}

// Percent returns the completion percentage shown in the progress bar.
func (s State) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Current) / float64(s.Total)
}

// Title returns the heading of the current step.
func (s State) Title() string {
	if s.Current < 1 || s.Current > len(StepTitles) {
		return ""
	}
	return StepTitles[s.Current-1]
}

// CanAdvance reports whether the field owned by step is filled in.
func CanAdvance(step int, d profile.Draft) bool {
	switch step {
	case StepName:
		return strings.TrimSpace(d.Name) != ""
	case StepKnowledge:
		return d.KnowledgeLevel != ""
	case StepExperience:
		return d.FarmingExperience != ""
	case StepAge:
		return d.AgeRange != ""
	case StepAvatar:
		return d.Avatar.Type != "" && d.Avatar.SkinTone != ""
	case StepSpecialization:
		return d.Specialization != ""
	}
	return false
}

// Advance moves one step forward when the current step is valid. It never
// moves past the last step.
func Advance(s State, d profile.Draft) State {
	if !CanAdvance(s.Current, d) {
		return s
	}
	if s.Current < s.Total {
		s.Current++
	}
	return s
}

// Retreat moves one step back, stopping at the first step.
func Retreat(s State) State {
	if s.Current > 1 {
		s.Current--
	}
	return s
}

// SkipAvatar fills the draft with the default avatar and jumps straight to
// the specialization step. It only applies on the avatar step.
func SkipAvatar(s State, d profile.Draft) (State, profile.Draft, bool) {
	if s.Current != StepAvatar {
		return s, d, false
	}
	d.Avatar = profile.DefaultAvatar()
	s.Current = StepSpecialization
	return s, d, true
}

// Complete freezes the draft once the last step is valid.
func Complete(s State, d profile.Draft) (profile.Summary, bool) {
	if s.Current != s.Total || !CanAdvance(s.Current, d) {
		return profile.Summary{}, false
	}
	return d.Freeze(), true
}
