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

package habits

import "testing"

func TestToggle_StreakScenario(t *testing.T) {
	l := NewList([]Habit{{ID: 1, Name: "Water", Streak: 7, Completed: true}})

	l.Toggle(1)
	h, _ := l.Get(1)
	if h.Streak != 7 || h.Completed {
		t.Fatalf("first toggle: streak=%d completed=%v, want 7 false", h.Streak, h.Completed)
	}

	l.Toggle(1)
	h, _ = l.Get(1)
	if h.Streak != 8 || !h.Completed {
		t.Fatalf("second toggle: streak=%d completed=%v, want 8 true", h.Streak, h.Completed)
	}
}

func TestToggle_UnknownIDIsNoop(t *testing.T) {
	l := NewList(Seed())
	before := append([]Habit(nil), l.Items()...)
	l.Toggle(99)
	for i, h := range l.Items() {
		if h != before[i] {
			t.Errorf("habit %d changed: %+v -> %+v", h.ID, before[i], h)
		}
	}
}

func TestAdd(t *testing.T) {
	l := NewList(Seed())
	n := New{Name: "Compost Turn", Description: "Turn the pile", Icon: IconLeaf, XP: 15, Category: "Organic Practices"}

	h, ok := l.Add(n)
	if !ok {
		t.Fatal("Add should succeed")
	}
	if h.ID != 5 {
		t.Errorf("ID = %d, want 5", h.ID)
	}
	if h.Streak != 0 || h.Completed {
		t.Errorf("new habit streak=%d completed=%v", h.Streak, h.Completed)
	}
	if l.Len() != 5 {
		t.Errorf("Len() = %d, want 5", l.Len())
	}

	h2, _ := l.Add(n)
	if h2.ID <= h.ID {
		t.Errorf("ids not increasing: %d then %d", h.ID, h2.ID)
	}
}

func TestAdd_IncompleteIsNoop(t *testing.T) {
	tests := []struct {
		name string
		n    New
	}{
		{"no name", New{Description: "d", Category: "Soil Care"}},
		{"no description", New{Name: "n", Category: "Soil Care"}},
		{"no category", New{Name: "n", Description: "d"}},
		{"blank name", New{Name: "  ", Description: "d", Category: "Soil Care"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewList(Seed())
			if _, ok := l.Add(tc.n); ok {
				t.Error("Add should fail")
			}
			if l.Len() != 4 {
				t.Errorf("Len() = %d, want 4", l.Len())
			}
		})
	}
}

func TestAdd_DefaultXP(t *testing.T) {
	l := NewList(nil)
	h, _ := l.Add(New{Name: "n", Description: "d", Category: "Soil Care"})
	if h.ID != 1 || h.XP != DefaultXP {
		t.Errorf("got id=%d xp=%d", h.ID, h.XP)
	}
}

func TestDelete(t *testing.T) {
	l := NewList(Seed())
	l.Delete(2)
	if l.Len() != 3 {
		t.Fatalf("Len() = %d after delete, want 3", l.Len())
	}
	if _, ok := l.Get(2); ok {
		t.Error("habit 2 still present")
	}
	l.Delete(2)
	if l.Len() != 3 {
		t.Errorf("deleting absent id changed length to %d", l.Len())
	}
}

func TestStats(t *testing.T) {
	l := NewList(Seed())
	if got := l.CompletedCount(); got != 2 {
		t.Errorf("CompletedCount() = %d, want 2", got)
	}
	if got := l.LongestStreak(); got != 12 {
		t.Errorf("LongestStreak() = %d, want 12", got)
	}
}

func TestIconString(t *testing.T) {
	if IconThermometer.String() != "Thermometer" {
		t.Errorf("String() = %q", IconThermometer.String())
	}
	if Icon(42).String() != "Sprout" {
		t.Errorf("unknown icon = %q, want Sprout", Icon(42).String())
	}
}
