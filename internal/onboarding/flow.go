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

// Flow owns one onboarding run: the wizard state and the draft being filled
// in. Setters only write the field owned by the active step. After Complete
// succeeds the flow is finished and every further call is a no-op.
type Flow struct {
	state State
	draft profile.Draft
	done  bool

	// OnTransition, if set, is called after every applied transition.
	OnTransition func(t Transition, from, to State)
}

// NewFlow starts a flow at step 1 with an empty draft.
func NewFlow() *Flow {
	return &Flow{state: Start()}
}

// State returns the current wizard position.
func (f *Flow) State() State { return f.state }

// Draft returns a copy of the draft.
func (f *Flow) Draft() profile.Draft { return f.draft }

// Done reports whether the flow has completed.
func (f *Flow) Done() bool { return f.done }

// CanAdvance reports whether the active step is valid.
func (f *Flow) CanAdvance() bool {
	return !f.done && CanAdvance(f.state.Current, f.draft)
}

// Advance applies TransitionAdvance.
func (f *Flow) Advance() bool {
	_, ok := f.apply(TransitionAdvance)
	return ok
}

// Retreat applies TransitionRetreat.
func (f *Flow) Retreat() bool {
	_, ok := f.apply(TransitionRetreat)
	return ok
}

// SkipAvatar applies TransitionSkipAvatar.
func (f *Flow) SkipAvatar() bool {
	_, ok := f.apply(TransitionSkipAvatar)
	return ok
}

// Complete applies TransitionComplete and returns the frozen summary.
func (f *Flow) Complete() (profile.Summary, bool) {
	r, ok := f.apply(TransitionComplete)
	if !ok {
		return profile.Summary{}, false
	}
	f.done = true
	f.draft = profile.Draft{}
	return *r.Summary, true
}

func (f *Flow) apply(t Transition) (Result, bool) {
	if f.done {
		return Result{}, false
	}
	from := f.state
	r := Apply(f.state, f.draft, t)
	if !r.Applied {
		return r, false
	}
	f.state = r.State
	f.draft = r.Draft
	if f.OnTransition != nil {
		f.OnTransition(t, from, r.State)
	}
	return r, true
}

func (f *Flow) on(step int) bool {
	return !f.done && f.state.Current == step
}

// SetName writes the name on step 1.
func (f *Flow) SetName(name string) {
	if f.on(StepName) {
		f.draft.Name = name
	}
}

// SetKnowledgeLevel writes the knowledge level on step 2.
func (f *Flow) SetKnowledgeLevel(v profile.KnowledgeLevel) {
	if f.on(StepKnowledge) {
		f.draft.KnowledgeLevel = v
	}
}

// SetExperience writes the farming experience on step 3.
func (f *Flow) SetExperience(v profile.Experience) {
	if f.on(StepExperience) {
		f.draft.FarmingExperience = v
	}
}

// SetAgeRange writes the age range on step 4.
func (f *Flow) SetAgeRange(v profile.AgeRange) {
	if f.on(StepAge) {
		f.draft.AgeRange = v
	}
}

// EditAvatar lets fn change the avatar on step 5.
func (f *Flow) EditAvatar(fn func(a *profile.Avatar)) {
	if f.on(StepAvatar) {
		fn(&f.draft.Avatar)
	}
}

// SetSpecialization writes the specialization on step 6.
func (f *Flow) SetSpecialization(v profile.Specialization) {
	if f.on(StepSpecialization) {
		f.draft.Specialization = v
	}
}
