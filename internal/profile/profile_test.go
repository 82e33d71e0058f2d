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

package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreeze_StartingStats(t *testing.T) {
	d := Draft{Name: "  Ana Lima ", Specialization: WaterGuardian}
	got := d.Freeze()

	if got.Name != "Ana Lima" {
		t.Errorf("Name = %q, want trimmed", got.Name)
	}
	want := []int{StartLevel, StartXP, StartCredits, StartPopularity}
	have := []int{got.Level, got.XP, got.Credits, got.Popularity}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("starting stats mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(StartAchievements, got.Achievements); diff != "" {
		t.Errorf("achievements mismatch (-want +got):\n%s", diff)
	}
}

func TestFreeze_DoesNotShareAchievements(t *testing.T) {
	got := Draft{}.Freeze()
	got.Achievements[0] = "changed"
	if StartAchievements[0] == "changed" {
		t.Fatal("Freeze aliased StartAchievements")
	}
}

func TestSummary_Names(t *testing.T) {
	var nilSummary *Summary
	tests := []struct {
		name        string
		s           *Summary
		first, full string
	}{
		{"nil", nilSummary, "Farmer", "Farmer"},
		{"blank", &Summary{Name: "   "}, "Farmer", "Farmer"},
		{"full", &Summary{Name: "Ana Lima"}, "Ana", "Ana Lima"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.FirstName(); got != tt.first {
				t.Errorf("FirstName() = %q, want %q", got, tt.first)
			}
			if got := tt.s.DisplayName(); got != tt.full {
				t.Errorf("DisplayName() = %q, want %q", got, tt.full)
			}
		})
	}
}

func TestLabelFor(t *testing.T) {
	if got := LabelFor(Experiences, string(Experience1to3)); got != "Getting started" {
		t.Errorf("LabelFor = %q", got)
	}
	if got := IndexOf(Experiences, "nope"); got != -1 {
		t.Errorf("IndexOf unknown = %d, want -1", got)
	}
}

func TestSpecialization_Label(t *testing.T) {
	if got := Specialization("Unknown").Label(); got != "Unknown" {
		t.Errorf("unknown Label() = %q", got)
	}
	if got := WaterGuardian.Label(); got == "" {
		t.Error("WaterGuardian has no label")
	}
}
