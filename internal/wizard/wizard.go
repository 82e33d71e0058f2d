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

// Package wizard renders the onboarding flow. The bubbletea Model is embedded
// by the app shell; RunAccessible walks the same flow through huh forms for
// screen readers and plain terminals.
package wizard

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/onboarding"
	"github.com/cloud-exit/farmquest/internal/profile"
)

// ErrCancelled is returned when the farmer aborts onboarding.
var ErrCancelled = errors.New("onboarding cancelled")

// CompletedMsg hands the finished profile to the app shell.
type CompletedMsg struct {
	Summary profile.Summary
}

// CancelledMsg is sent when the farmer presses ctrl+c during onboarding.
type CancelledMsg struct{}

func cancel() tea.Msg { return CancelledMsg{} }

func newFlow(log *zap.Logger) *onboarding.Flow {
	flow := onboarding.NewFlow()
	flow.OnTransition = func(t onboarding.Transition, from, to onboarding.State) {
		log.Info("onboarding transition",
			zap.Stringer("transition", t),
			zap.Int("from", from.Current),
			zap.Int("to", to.Current))
	}
	return flow
}

// stepOptions returns the choices of a single-select step.
func stepOptions(step int) []profile.Option {
	switch step {
	case onboarding.StepKnowledge:
		return profile.KnowledgeLevels
	case onboarding.StepExperience:
		return profile.Experiences
	case onboarding.StepAge:
		return profile.AgeRanges
	case onboarding.StepSpecialization:
		return profile.Specializations
	}
	return nil
}

// selected returns the draft's answer for a single-select step.
func selected(step int, d profile.Draft) string {
	switch step {
	case onboarding.StepKnowledge:
		return string(d.KnowledgeLevel)
	case onboarding.StepExperience:
		return string(d.FarmingExperience)
	case onboarding.StepAge:
		return string(d.AgeRange)
	case onboarding.StepSpecialization:
		return string(d.Specialization)
	}
	return ""
}

// choose writes v as the answer of the flow's current single-select step.
func choose(flow *onboarding.Flow, v string) {
	switch flow.State().Current {
	case onboarding.StepKnowledge:
		flow.SetKnowledgeLevel(profile.KnowledgeLevel(v))
	case onboarding.StepExperience:
		flow.SetExperience(profile.Experience(v))
	case onboarding.StepAge:
		flow.SetAgeRange(profile.AgeRange(v))
	case onboarding.StepSpecialization:
		flow.SetSpecialization(profile.Specialization(v))
	}
}

// avatarField is one row of the avatar editor.
type avatarField struct {
	label string
	opts  []profile.Option
	get   func(profile.Avatar) string
	set   func(*profile.Avatar, string)
}

var avatarFields = []avatarField{
	{"Character", profile.AvatarTypes,
		func(a profile.Avatar) string { return string(a.Type) },
		func(a *profile.Avatar, v string) { a.Type = profile.AvatarType(v) }},
	{"Skin tone", profile.SkinTones,
		func(a profile.Avatar) string { return a.SkinTone },
		func(a *profile.Avatar, v string) { a.SkinTone = v }},
	{"Hair", profile.HairStyles,
		func(a profile.Avatar) string { return a.HairStyle },
		func(a *profile.Avatar, v string) { a.HairStyle = v }},
	{"Clothing", profile.Clothing,
		func(a profile.Avatar) string { return a.Clothing },
		func(a *profile.Avatar, v string) { a.Clothing = v }},
	{"Hat", profile.Hats,
		func(a profile.Avatar) string { return a.Hat },
		func(a *profile.Avatar, v string) { a.Hat = v }},
	{"Tool", profile.Tools,
		func(a profile.Avatar) string { return a.Tool },
		func(a *profile.Avatar, v string) { a.Tool = v }},
}

// cycle moves from cur by delta through opts, wrapping at both ends. An
// unset value starts before the first option.
func cycle(opts []profile.Option, cur string, delta int) string {
	n := len(opts)
	i := profile.IndexOf(opts, cur)
	if i < 0 && delta < 0 {
		i = 0
	}
	i = ((i+delta)%n + n) % n
	return opts[i].Value
}
