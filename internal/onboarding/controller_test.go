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

import (
	"testing"

	"github.com/cloud-exit/farmquest/internal/profile"
	"github.com/google/go-cmp/cmp"
)

func completeDraft() profile.Draft {
	return profile.Draft{
		Name:              "Ada Green",
		KnowledgeLevel:    profile.KnowledgeBeginner,
		FarmingExperience: profile.ExperienceNew,
		AgeRange:          profile.Age26to35,
		Avatar:            profile.Avatar{Type: profile.AvatarRobot, SkinTone: "#708090"},
		Specialization:    profile.SoilScientist,
	}
}

func TestCanAdvance_Table(t *testing.T) {
	full := completeDraft()
	tests := []struct {
		step  int
		clear func(d *profile.Draft)
	}{
		{StepName, func(d *profile.Draft) { d.Name = "   " }},
		{StepKnowledge, func(d *profile.Draft) { d.KnowledgeLevel = "" }},
		{StepExperience, func(d *profile.Draft) { d.FarmingExperience = "" }},
		{StepAge, func(d *profile.Draft) { d.AgeRange = "" }},
		{StepAvatar, func(d *profile.Draft) { d.Avatar.Type = "" }},
		{StepAvatar, func(d *profile.Draft) { d.Avatar.SkinTone = "" }},
		{StepSpecialization, func(d *profile.Draft) { d.Specialization = "" }},
	}
	for _, tc := range tests {
		if !CanAdvance(tc.step, full) {
			t.Errorf("CanAdvance(%d, full) = false, want true", tc.step)
		}
		d := full
		tc.clear(&d)
		if CanAdvance(tc.step, d) {
			t.Errorf("CanAdvance(%d) with field cleared = true, want false", tc.step)
		}
	}
	if CanAdvance(0, full) || CanAdvance(TotalSteps+1, full) {
		t.Error("CanAdvance outside the step range should be false")
	}
}

func TestAdvance_OnlyWhenValid(t *testing.T) {
	for step := 1; step <= TotalSteps; step++ {
		s := State{Current: step, Total: TotalSteps}

		if got := Advance(s, profile.Draft{}); got != s {
			t.Errorf("step %d: Advance with empty draft = %+v, want unchanged", step, got)
		}

		want := step + 1
		if want > TotalSteps {
			want = TotalSteps
		}
		if got := Advance(s, completeDraft()); got.Current != want {
			t.Errorf("step %d: Advance with valid draft = %d, want %d", step, got.Current, want)
		}
	}
}

func TestRetreat(t *testing.T) {
	if got := Retreat(Start()); got.Current != 1 {
		t.Errorf("Retreat from step 1 = %d, want 1", got.Current)
	}
	for step := 2; step <= TotalSteps; step++ {
		got := Retreat(State{Current: step, Total: TotalSteps})
		if got.Current != step-1 {
			t.Errorf("Retreat from %d = %d, want %d", step, got.Current, step-1)
		}
	}
}

func TestSkipAvatar(t *testing.T) {
	s := State{Current: StepAvatar, Total: TotalSteps}
	next, d, ok := SkipAvatar(s, profile.Draft{Name: "x"})
	if !ok {
		t.Fatal("SkipAvatar on step 5 should apply")
	}
	if next.Current != StepSpecialization {
		t.Errorf("SkipAvatar jumped to %d, want %d", next.Current, StepSpecialization)
	}
	if diff := cmp.Diff(profile.DefaultAvatar(), d.Avatar); diff != "" {
		t.Errorf("avatar mismatch (-want +got):\n%s", diff)
	}

	for _, step := range []int{1, 2, 3, 4, 6} {
		s := State{Current: step, Total: TotalSteps}
		if got, _, ok := SkipAvatar(s, profile.Draft{}); ok || got != s {
			t.Errorf("SkipAvatar on step %d should be a no-op", step)
		}
	}
}

func TestComplete(t *testing.T) {
	d := completeDraft()
	if _, ok := Complete(State{Current: StepAvatar, Total: TotalSteps}, d); ok {
		t.Error("Complete before the last step should fail")
	}

	last := State{Current: TotalSteps, Total: TotalSteps}
	d.Specialization = ""
	if _, ok := Complete(last, d); ok {
		t.Error("Complete with empty specialization should fail")
	}

	d.Specialization = profile.CropMaster
	sum, ok := Complete(last, d)
	if !ok {
		t.Fatal("Complete should succeed")
	}
	if sum.Level != 1 || sum.XP != 100 || sum.Credits != 100 || sum.Popularity != 100 {
		t.Errorf("summary stats = %d/%d/%d/%d, want 1/100/100/100", sum.Level, sum.XP, sum.Credits, sum.Popularity)
	}
	if len(sum.Achievements) != 3 {
		t.Errorf("achievements = %v, want 3 starters", sum.Achievements)
	}
}

func TestApply_UnknownTransition(t *testing.T) {
	s := Start()
	r := Apply(s, profile.Draft{}, Transition(99))
	if r.Applied || r.State != s {
		t.Errorf("unknown transition applied: %+v", r)
	}
}

func TestStateTitleAndPercent(t *testing.T) {
	s := Start()
	if s.Title() != StepTitles[0] {
		t.Errorf("Title() = %q", s.Title())
	}
	if got := (State{Current: 3, Total: 6}).Percent(); got != 0.5 {
		t.Errorf("Percent() = %v, want 0.5", got)
	}
	if (State{}).Percent() != 0 {
		t.Error("Percent() of zero state should be 0")
	}
}
