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

package challenges

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cloud-exit/farmquest/internal/session"
)

func TestClaim_Scenario(t *testing.T) {
	sess := session.New(nil, nil)
	sess.OnCreditsChange(100)
	b := NewBookWith(sess, []Challenge{
		{ID: 1, Title: "Pest patrol", Progress: 1, MaxProgress: 1, Credits: 50, XP: 100, Badge: "Eco Defender"},
	}, []string{"Water Warrior"})

	if !b.Claim(1) {
		t.Fatal("Claim should succeed")
	}
	if sess.Credits() != 150 {
		t.Errorf("credits = %d, want 150", sess.Credits())
	}
	want := []string{"Water Warrior", "Eco Defender"}
	if diff := cmp.Diff(want, b.Badges()); diff != "" {
		t.Errorf("badges mismatch (-want +got):\n%s", diff)
	}

	if b.Claim(1) {
		t.Error("second claim should be a no-op")
	}
	if sess.Credits() != 150 {
		t.Errorf("credits after second claim = %d, want 150", sess.Credits())
	}
	if diff := cmp.Diff(want, b.Badges()); diff != "" {
		t.Errorf("badges changed on second claim (-want +got):\n%s", diff)
	}
	c, _ := b.Get(1)
	if !c.Completed || c.TimeLeft != "Completed" {
		t.Errorf("challenge = %+v", c)
	}
}

func TestClaim_BadgeAlreadyEarned(t *testing.T) {
	b := NewBookWith(session.New(nil, nil), []Challenge{
		{ID: 1, Progress: 1, MaxProgress: 1, Credits: 10, Badge: "Soil Guardian"},
	}, StartBadges)
	b.Claim(1)
	if len(b.Badges()) != len(StartBadges) {
		t.Errorf("badges = %v, want no duplicate", b.Badges())
	}
}

func TestClaim_RequiresProgress(t *testing.T) {
	sess := session.New(nil, nil)
	b := NewBook(sess)
	before := sess.Credits()
	if b.Claim(1) {
		t.Error("challenge 1 at 2/3 must not be claimable")
	}
	if b.Claim(99) {
		t.Error("unknown challenge claimed")
	}
	if sess.Credits() != before {
		t.Errorf("credits changed to %d", sess.Credits())
	}

	b.RecordProgress(1)
	if !b.Claim(1) {
		t.Error("challenge 1 should be claimable after progress")
	}
	if sess.Credits() != before+25 {
		t.Errorf("credits = %d, want %d", sess.Credits(), before+25)
	}
}

func TestByPeriod(t *testing.T) {
	b := NewBook(nil)
	if n := len(b.ByPeriod(Daily)); n != 3 {
		t.Errorf("daily = %d, want 3", n)
	}
	if n := len(b.ByPeriod(Weekly)); n != 2 {
		t.Errorf("weekly = %d, want 2", n)
	}
	if b.CompletedCount() != 1 {
		t.Errorf("CompletedCount() = %d, want 1", b.CompletedCount())
	}
}

func TestNewBookWith_DedupesBadges(t *testing.T) {
	b := NewBookWith(nil, nil, []string{"a", "b", "a"})
	if diff := cmp.Diff([]string{"a", "b"}, b.Badges()); diff != "" {
		t.Errorf("badges mismatch (-want +got):\n%s", diff)
	}
}
