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

package community

import (
	"errors"
	"testing"
	"time"

	"github.com/cloud-exit/farmquest/internal/kvstore"
	"github.com/cloud-exit/farmquest/internal/session"
)

func newTestCommunity(t *testing.T, credits, popularity int) (*Community, *session.Session) {
	t.Helper()
	store, err := kvstore.Open()
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	sess := session.New(nil, nil)
	sess.OnCreditsChange(credits)
	sess.OnPopularityChange(popularity)

	c := New(sess, NewMessageLog(store))
	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	tick := 0
	c.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return c, sess
}

func TestFilter(t *testing.T) {
	c, _ := newTestCommunity(t, 0, 0)

	tests := []struct {
		tab  Tab
		term string
		want []string
	}{
		{TabFriends, "", []string{"Sarah Green", "Mike Rodriguez"}},
		{TabDiscover, "", []string{"Emma Watson", "RoboFarm-3000"}},
		{TabFriends, "LIVESTOCK", []string{"Mike Rodriguez"}},
		{TabDiscover, "robo", []string{"RoboFarm-3000"}},
		{TabDiscover, "nobody", nil},
	}
	for _, tc := range tests {
		got := c.Filter(tc.tab, tc.term)
		if len(got) != len(tc.want) {
			t.Errorf("Filter(%s, %q) = %d members, want %d", tc.tab, tc.term, len(got), len(tc.want))
			continue
		}
		for i, m := range got {
			if m.Name != tc.want[i] {
				t.Errorf("Filter(%s, %q)[%d] = %s, want %s", tc.tab, tc.term, i, m.Name, tc.want[i])
			}
		}
	}
}

func TestGift(t *testing.T) {
	c, sess := newTestCommunity(t, 500, 100)

	if !c.Gift(1, 200) {
		t.Fatal("Gift should succeed")
	}
	if sess.Credits() != 300 || sess.Popularity() != 120 {
		t.Errorf("sender credits=%d popularity=%d, want 300 120", sess.Credits(), sess.Popularity())
	}
	m, _ := c.Get(1)
	if m.Credits != 2600 {
		t.Errorf("member credits = %d, want 2600", m.Credits)
	}
}

func TestGift_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		amount int
	}{
		{"over balance", 1, 501},
		{"zero", 1, 0},
		{"negative", 1, -10},
		{"unknown member", 42, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, sess := newTestCommunity(t, 500, 100)
			if c.Gift(tc.id, tc.amount) {
				t.Error("Gift should be rejected")
			}
			if sess.Credits() != 500 || sess.Popularity() != 100 {
				t.Errorf("counters changed: %+v", sess.Counters())
			}
		})
	}
}

func TestSendMessage(t *testing.T) {
	c, sess := newTestCommunity(t, 0, 10)

	if _, ok, err := c.SendMessage(2, "   "); ok || err != nil {
		t.Fatalf("blank message: ok=%v err=%v", ok, err)
	}

	for _, text := range []string{"Hello!", "Any tips on compost?"} {
		if _, ok, err := c.SendMessage(2, text); !ok || err != nil {
			t.Fatalf("SendMessage(%q): ok=%v err=%v", text, ok, err)
		}
	}
	if sess.Popularity() != 20 {
		t.Errorf("popularity = %d, want 20", sess.Popularity())
	}

	thread, err := c.Thread(2)
	if err != nil {
		t.Fatalf("Thread: %v", err)
	}
	if len(thread) != 2 || thread[0].Text != "Hello!" || thread[1].Text != "Any tips on compost?" {
		t.Errorf("thread = %+v", thread)
	}
	if thread[0].ID == "" || thread[0].ID == thread[1].ID {
		t.Errorf("message ids not unique: %q %q", thread[0].ID, thread[1].ID)
	}

	recent, err := c.log.Recent(2, 1)
	if err != nil || len(recent) != 1 || recent[0].Text != "Any tips on compost?" {
		t.Errorf("Recent = %+v, %v", recent, err)
	}

	latest, err := c.Latest(2, 5)
	if err != nil || len(latest) != 2 || latest[0].Text != "Hello!" {
		t.Errorf("Latest = %+v, %v", latest, err)
	}

	other, _ := c.Thread(1)
	if len(other) != 0 {
		t.Errorf("member 1 thread = %+v, want empty", other)
	}
}

func TestSendMessage_NoLog(t *testing.T) {
	sess := session.New(nil, nil)
	c := New(sess, nil)
	if _, ok, err := c.SendMessage(1, "hi"); ok || !errors.Is(err, ErrNoMessageLog) {
		t.Errorf("SendMessage without log: ok=%v err=%v", ok, err)
	}
	if thread, err := c.Thread(1); thread != nil || err != nil {
		t.Errorf("Thread without log = %v, %v", thread, err)
	}
	if sess.Popularity() != session.GuestPopularity {
		t.Errorf("popularity changed to %d", sess.Popularity())
	}
}

func TestAddFriend(t *testing.T) {
	c, _ := newTestCommunity(t, 0, 0)
	c.AddFriend(3)
	if c.Count(TabFriends) != 3 || c.Count(TabDiscover) != 1 {
		t.Errorf("friends=%d discover=%d", c.Count(TabFriends), c.Count(TabDiscover))
	}
	c.AddFriend(99)
	if len(c.Members()) != 4 {
		t.Errorf("members = %d", len(c.Members()))
	}
}

func TestMessageLog_Clear(t *testing.T) {
	c, _ := newTestCommunity(t, 0, 0)
	for _, id := range []int{1, 2} {
		if _, ok, err := c.SendMessage(id, "hi"); !ok || err != nil {
			t.Fatalf("SendMessage(%d): ok=%v err=%v", id, ok, err)
		}
	}
	if err := c.log.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, err := c.log.Count(); err != nil || n != 0 {
		t.Errorf("Count after Clear = %d, %v", n, err)
	}
}
