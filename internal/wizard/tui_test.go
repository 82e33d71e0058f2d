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

package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/cloud-exit/farmquest/internal/onboarding"
	"github.com/cloud-exit/farmquest/internal/profile"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func step(m Model) int { return m.Flow().State().Current }

func TestModel_NameRequired(t *testing.T) {
	m := New(nil)
	m, _ = send(t, m, enter)
	if step(m) != onboarding.StepName {
		t.Fatalf("advanced without a name to step %d", step(m))
	}
	if !strings.Contains(m.View(), "name required") {
		t.Error("view should hint that a name is required")
	}

	m, _ = send(t, m, runes("   "), enter)
	if step(m) != onboarding.StepName {
		t.Fatal("advanced with a blank name")
	}
}

func TestModel_FullRunWithSkip(t *testing.T) {
	m := New(nil)
	m, _ = send(t, m,
		runes("Ada Green"), enter,
		space, enter, // knowledge: first option
		runes("3"), enter, // experience: third option
		down, space, enter, // age: second option
	)
	if step(m) != onboarding.StepAvatar {
		t.Fatalf("step = %d, want avatar", step(m))
	}

	m, _ = send(t, m, runes("s"))
	if step(m) != onboarding.StepSpecialization {
		t.Fatalf("skip landed on step %d", step(m))
	}

	m, cmd := send(t, m, down, space, enter)
	if cmd == nil {
		t.Fatal("completing returned no command")
	}
	done, ok := cmd().(CompletedMsg)
	if !ok {
		t.Fatalf("expected CompletedMsg, got %T", cmd())
	}

	want := profile.Draft{
		Name:              "Ada Green",
		KnowledgeLevel:    profile.KnowledgeBeginner,
		FarmingExperience: profile.Experience3to10,
		AgeRange:          profile.Age26to35,
		Avatar:            profile.DefaultAvatar(),
		Specialization:    profile.WaterGuardian,
	}.Freeze()
	if diff := cmp.Diff(want, done.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if !m.Flow().Done() {
		t.Error("flow not done after completion")
	}
	if m, cmd = send(t, m, esc); cmd != nil || step(m) != onboarding.StepSpecialization {
		t.Error("completed wizard should ignore input")
	}
}

func TestModel_ChoiceNeedsSelection(t *testing.T) {
	m := New(nil)
	m, _ = send(t, m, runes("Ada"), enter, down, enter)
	if step(m) != onboarding.StepKnowledge {
		t.Fatal("moving the cursor should not select an option")
	}
	if !strings.Contains(m.View(), "choose an option") {
		t.Error("view should hint that an option is required")
	}
}

func TestModel_RetreatKeepsAnswers(t *testing.T) {
	m := New(nil)
	m, _ = send(t, m, runes("Ada"), enter, down, space, enter)
	if step(m) != onboarding.StepExperience {
		t.Fatalf("step = %d", step(m))
	}

	m, _ = send(t, m, esc)
	if step(m) != onboarding.StepKnowledge {
		t.Fatalf("esc went to step %d", step(m))
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want it on the chosen option", m.cursor)
	}

	m, _ = send(t, m, esc, esc)
	if step(m) != onboarding.StepName {
		t.Fatal("retreat should stop at step 1")
	}
	if m.Flow().Draft().Name != "Ada" || m.Flow().Draft().KnowledgeLevel != profile.KnowledgeIntermediate {
		t.Errorf("draft lost answers: %+v", m.Flow().Draft())
	}
}

func TestModel_AvatarEditor(t *testing.T) {
	m := New(nil)
	m, _ = send(t, m, runes("Ada"), enter, space, enter, space, enter, space, enter)
	if step(m) != onboarding.StepAvatar {
		t.Fatalf("step = %d", step(m))
	}

	m, _ = send(t, m, enter)
	if step(m) != onboarding.StepAvatar {
		t.Fatal("advanced with an empty avatar")
	}

	m, _ = send(t, m, right, right, down, left)
	a := m.Flow().Draft().Avatar
	if a.Type != profile.AvatarFemale {
		t.Errorf("Type = %q, want female", a.Type)
	}
	last := profile.SkinTones[len(profile.SkinTones)-1].Value
	if a.SkinTone != last {
		t.Errorf("SkinTone = %q, want %q", a.SkinTone, last)
	}

	m, _ = send(t, m, enter)
	if step(m) != onboarding.StepSpecialization {
		t.Errorf("step = %d, want specialization", step(m))
	}
}

func TestModel_CtrlCCancels(t *testing.T) {
	_, cmd := send(t, New(nil), tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("expected CancelledMsg, got %T", cmd())
	}
}

func TestCycle(t *testing.T) {
	opts := profile.AvatarTypes
	tests := []struct {
		cur   string
		delta int
		want  string
	}{
		{"", 1, "male"},
		{"", -1, "robot"},
		{"male", 1, "female"},
		{"robot", 1, "male"},
		{"male", -1, "robot"},
	}
	for _, tt := range tests {
		if got := cycle(opts, tt.cur, tt.delta); got != tt.want {
			t.Errorf("cycle(%q, %d) = %q, want %q", tt.cur, tt.delta, got, tt.want)
		}
	}
}

func TestHuhOptions(t *testing.T) {
	got := huhOptions(profile.Specializations)
	if len(got) != len(profile.Specializations) {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Key != "Crop Master - +10% XP from crop habits" || got[0].Value != string(profile.CropMaster) {
		t.Errorf("first option = %+v", got[0])
	}
}
