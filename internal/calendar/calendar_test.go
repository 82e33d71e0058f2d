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

package calendar

import (
	"testing"
	"time"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestAdd(t *testing.T) {
	c := NewCalendar(at(t, "2024-03-14 12:00"))

	n := Blank("2024-03-18")
	n.Title = "Tractor service"
	n.Category = "Equipment"
	e, ok := c.Add(n)
	if !ok {
		t.Fatal("Add should succeed")
	}
	if e.ID != 5 || e.Icon != IconTractor || e.Kind != KindTask {
		t.Errorf("event = %+v", e)
	}
	if len(c.Events()) != 5 {
		t.Errorf("len = %d, want 5", len(c.Events()))
	}
}

func TestAdd_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		edit func(n *New)
	}{
		{"no title", func(n *New) { n.Title = "" }},
		{"no date", func(n *New) { n.Date = "" }},
		{"no time", func(n *New) { n.Time = "" }},
		{"bad date", func(n *New) { n.Date = "March 3rd" }},
		{"bad time", func(n *New) { n.Time = "25:99" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCalendar(time.Now())
			n := Blank("2024-03-18")
			n.Title = "x"
			tc.edit(&n)
			if _, ok := c.Add(n); ok {
				t.Error("Add should fail")
			}
			if len(c.Events()) != 4 {
				t.Errorf("len = %d, want 4", len(c.Events()))
			}
		})
	}
}

func TestDelete(t *testing.T) {
	c := NewCalendar(time.Now())
	c.Delete(3)
	c.Delete(3)
	if len(c.Events()) != 3 {
		t.Errorf("len = %d, want 3", len(c.Events()))
	}
}

func TestUpcoming(t *testing.T) {
	c := NewCalendar(time.Now())
	now := at(t, "2024-03-16 14:00")

	got := c.Upcoming(now)
	if len(got) != 3 {
		t.Fatalf("Upcoming = %d events, want 3", len(got))
	}
	wantIDs := []int{2, 3, 4}
	for i, e := range got {
		if e.ID != wantIDs[i] {
			t.Errorf("Upcoming[%d] = %d, want %d", i, e.ID, wantIDs[i])
		}
	}

	for i := 0; i < 6; i++ {
		n := Blank("2024-04-01")
		n.Title = "Extra"
		c.Add(n)
	}
	if got := c.Upcoming(now); len(got) != UpcomingLimit {
		t.Errorf("Upcoming = %d events, want %d", len(got), UpcomingLimit)
	}
}

func TestToday(t *testing.T) {
	c := NewCalendar(time.Now())
	got := c.Today(at(t, "2024-03-17 23:00"))
	if len(got) != 1 || got[0].Title != "Farmers Market" {
		t.Errorf("Today = %+v", got)
	}
}

func TestTimeRemaining(t *testing.T) {
	now := at(t, "2024-03-15 09:00")
	tests := []struct {
		event string
		want  string
	}{
		{"2024-03-15 08:59", "Past due"},
		{"2024-03-15 09:45", "45m remaining"},
		{"2024-03-15 12:30", "3h 30m remaining"},
		{"2024-03-17 15:00", "2d 6h remaining"},
	}
	for _, tc := range tests {
		if got := TimeRemaining(at(t, tc.event), now); got != tc.want {
			t.Errorf("TimeRemaining(%s) = %q, want %q", tc.event, got, tc.want)
		}
	}
}

func TestGrid(t *testing.T) {
	// 2024-03-14 is a Thursday.
	g := Grid(at(t, "2024-03-14 15:00"))
	if g[0].Format(DateLayout) != "2024-03-10" || g[0].Weekday() != time.Sunday {
		t.Errorf("grid starts %s (%s), want Sunday 2024-03-10", g[0].Format(DateLayout), g[0].Weekday())
	}
	if g[GridDays-1].Format(DateLayout) != "2024-04-13" {
		t.Errorf("grid ends %s, want 2024-04-13", g[GridDays-1].Format(DateLayout))
	}
}

func TestSelect(t *testing.T) {
	c := NewCalendar(at(t, "2024-03-14 15:00"))
	if c.Selected() != "2024-03-14" {
		t.Errorf("Selected() = %s", c.Selected())
	}
	c.Select(at(t, "2024-03-17 00:00"))
	if len(c.On(c.Selected())) != 1 {
		t.Errorf("On(selected) = %v", c.On(c.Selected()))
	}
}
