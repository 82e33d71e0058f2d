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

package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/farmquest/internal/clock"
	"github.com/cloud-exit/farmquest/internal/community"
	"github.com/cloud-exit/farmquest/internal/kvstore"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/settings"
)

var testNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)

func newTestModel(t *testing.T, tab Tab) Model {
	t.Helper()
	store, err := kvstore.Open()
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	m := New(Options{
		Session:  session.New(nil, nil),
		Messages: community.NewMessageLog(store),
		Now:      func() time.Time { return testNow },
		Tab:      tab,
	})
	t.Cleanup(m.Stop)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyPress(k))
	}
	return m, cmd
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in   Tab
		want Tab
	}{
		{TabHabits, TabHabits},
		{TabShop, TabShop},
		{"", TabOverview},
		{"marketplace", TabOverview},
	}
	for _, tt := range tests {
		if got := Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRouter_NextWraps(t *testing.T) {
	r := &Router{}
	r.Select("unknown")
	if r.Current() != TabOverview || r.Selected() != "unknown" {
		t.Fatalf("Current = %q, Selected = %q", r.Current(), r.Selected())
	}
	r.Next(-1)
	if r.Current() != TabSettings {
		t.Errorf("Next(-1) from overview = %q, want settings", r.Current())
	}
	r.Next(1)
	if r.Current() != TabOverview {
		t.Errorf("Next(1) from settings = %q, want overview", r.Current())
	}
}

func TestModel_TabCycling(t *testing.T) {
	m := newTestModel(t, "")
	if m.Tab() != TabOverview {
		t.Fatalf("initial tab = %q", m.Tab())
	}
	m, _ = press(m, "tab")
	if m.Tab() != TabHabits {
		t.Errorf("after tab = %q, want habits", m.Tab())
	}
	m, _ = press(m, "shift+tab", "shift+tab")
	if m.Tab() != TabSettings {
		t.Errorf("after shift+tab twice = %q, want settings", m.Tab())
	}
}

func TestModel_EveryTabRenders(t *testing.T) {
	m := newTestModel(t, "")
	for _, tab := range Tabs {
		m, _ = m.Select(tab)
		out := m.View()
		if !strings.Contains(out, "FarmQuest") {
			t.Errorf("%s: header missing", tab)
		}
		if !strings.Contains(out, tab.Label()) {
			t.Errorf("%s: sidebar label %q missing", tab, tab.Label())
		}
	}
}

func TestModel_ClockTick(t *testing.T) {
	m := newTestModel(t, "")
	m.Init()
	later := testNow.Add(time.Hour)

	m, cmd := m.Update(clock.TickMsg{Name: ClockTicker, At: later})
	if !m.env.at.Equal(later) {
		t.Errorf("clock = %v, want %v", m.env.at, later)
	}
	if cmd == nil {
		t.Error("tick did not schedule the next wait")
	}

	m, cmd = m.Update(clock.TickMsg{Name: "landing-particles", At: testNow})
	if cmd != nil || !m.env.at.Equal(later) {
		t.Error("foreign ticker changed the clock")
	}
}

func TestHabits_ToggleAddDelete(t *testing.T) {
	m := newTestModel(t, TabHabits)
	list := m.env.habits
	first := list.Items()[0]

	m, _ = press(m, "space")
	if got, _ := list.Get(first.ID); got.Completed == first.Completed {
		t.Error("space did not toggle the habit")
	}

	m, _ = press(m, "a")
	if !m.current.Editing() {
		t.Fatal("add form not open")
	}
	m = typeText(m, "Compost Turning")
	m, _ = press(m, "enter")
	if list.Len() != 4 {
		t.Fatal("form submitted without a description")
	}
	m, _ = press(m, "tab")
	m = typeText(m, "Turn the compost pile")
	m, _ = press(m, "enter")
	if list.Len() != 5 {
		t.Fatalf("Len = %d, want 5", list.Len())
	}
	if m.current.Editing() {
		t.Error("form still open after a valid submit")
	}

	m, _ = press(m, "d")
	if list.Len() != 4 {
		t.Errorf("Len after delete = %d, want 4", list.Len())
	}

	m, _ = m.Select(TabOverview)
	m, _ = m.Select(TabHabits)
	if list.Len() != 4 {
		t.Error("habits lost across tab switch")
	}
}

func TestQuests_ProgressAndClaim(t *testing.T) {
	m := newTestModel(t, TabQuests)
	sess := m.Session()
	credits, xp := sess.Credits(), sess.XP()

	m, _ = press(m, "enter")
	if sess.Credits() != credits {
		t.Fatal("claimed an unfinished quest")
	}
	m, _ = press(m, "p", "p", "enter")
	if sess.Credits() != credits+200 || sess.XP() != xp+500 {
		t.Errorf("counters = %d/%d, want %d/%d", sess.Credits(), sess.XP(), credits+200, xp+500)
	}
	v := m.current.(*questsView)
	if _, ok := v.board.Get(1); !ok || len(v.board.Completed()) != 3 {
		t.Errorf("quest not moved to completed: %d completed", len(v.board.Completed()))
	}
}

func TestChallenges_SwitchPeriod(t *testing.T) {
	m := newTestModel(t, TabChallenges)
	v := m.current.(*challengesView)
	m, _ = press(m, "right")
	if v.period != 1 {
		t.Errorf("period = %d, want weekly", v.period)
	}
	if !strings.Contains(m.View(), "Earned Badges") {
		t.Error("badges section missing")
	}
}

func TestCommunity_GiftAndMessage(t *testing.T) {
	m := newTestModel(t, TabCommunity)
	sess := m.Session()
	credits, pop := sess.Credits(), sess.Popularity()

	m, _ = press(m, "enter", "g")
	if !m.current.Editing() {
		t.Fatal("gift form not open")
	}
	m = typeText(m, "50")
	m, _ = press(m, "enter")
	if sess.Credits() != credits-50 || sess.Popularity() != pop+5 {
		t.Errorf("after gift credits=%d popularity=%d", sess.Credits(), sess.Popularity())
	}

	m, _ = press(m, "m")
	m = typeText(m, "Thanks for the tips!")
	m, _ = press(m, "enter")
	if sess.Popularity() != pop+5+community.MessagePopularity {
		t.Errorf("popularity after message = %d", sess.Popularity())
	}
	if !strings.Contains(m.View(), "Thanks for the tips!") {
		t.Error("sent message missing from the thread")
	}
}

func TestCommunity_FriendShrinksDiscover(t *testing.T) {
	m := newTestModel(t, TabCommunity)
	m, _ = press(m, "right", "down", "enter")
	v := m.current.(*communityView)
	if v.member != 4 {
		t.Fatalf("opened member %d, want 4", v.member)
	}

	m, _ = press(m, "f", "esc")
	if n := len(v.visible()); n != 1 || int(v.cursor) != 0 {
		t.Fatalf("back at list: %d visible, cursor %d", n, v.cursor)
	}
	_ = m.View()

	m, _ = press(m, "enter")
	if v.member != 3 {
		t.Errorf("opened member %d, want 3", v.member)
	}
	if !strings.Contains(m.View(), "Emma Watson") {
		t.Error("remaining discover member not shown")
	}
}

func TestCommunity_SearchCapturesKeys(t *testing.T) {
	m := newTestModel(t, TabCommunity)
	m, _ = press(m, "right", "/")
	m = typeText(m, "zzz")
	m, _ = press(m, "tab")
	if m.Tab() != TabCommunity {
		t.Error("tab key left the view while searching")
	}
	if !strings.Contains(m.View(), "No farmers found.") {
		t.Error("search did not filter the list")
	}
}

func TestSettings_ProfileReward(t *testing.T) {
	m := newTestModel(t, TabSettings)
	sess := m.Session()
	m, _ = press(m, "enter")
	v := m.current.(*settingsView)
	v.profile.Update(settings.FieldPhone, "")
	credits := sess.Credits()

	m, _ = press(m, "down", "down", "enter")
	m = typeText(m, "555-0100")
	m, _ = press(m, "enter")
	if sess.Credits() != credits+settings.FieldReward {
		t.Errorf("credits = %d, want %d", sess.Credits(), credits+settings.FieldReward)
	}
	if v.profile.Value(settings.FieldPhone) != "555-0100" {
		t.Errorf("phone = %q", v.profile.Value(settings.FieldPhone))
	}
}

func TestSettings_LanguageAndLogout(t *testing.T) {
	m := newTestModel(t, TabSettings)
	m, _ = press(m, "down", "down", "enter", "down", "down", "down")
	m, cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("no command after choosing a language")
	}
	if msg, ok := cmd().(LanguageChangedMsg); !ok || msg.Code != "de" {
		t.Errorf("msg = %#v, want LanguageChangedMsg{de}", msg)
	}
	if got := m.env.lang.Number(1250); got != "1.250" {
		t.Errorf("Number(1250) = %q", got)
	}

	m, _ = press(m, "esc", "down", "enter", "down")
	_, cmd = press(m, "enter")
	if cmd == nil {
		t.Fatal("log out produced no command")
	}
	if _, ok := cmd().(LogoutMsg); !ok {
		t.Error("log out did not emit LogoutMsg")
	}
}

func TestSettings_ChatBotReply(t *testing.T) {
	m := newTestModel(t, TabSettings)
	m, _ = press(m, "down", "down", "down", "enter", "i")
	m = typeText(m, "How do I compost?")
	m, cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("sending did not schedule a reply")
	}
	v := m.current.(*settingsView)
	if n := len(v.chat.Messages()); n != 2 {
		t.Fatalf("messages = %d, want 2", n)
	}

	m, _ = m.Update(botReplyMsg{chat: settings.NewChat()})
	if len(v.chat.Messages()) != 2 {
		t.Error("stale reply was appended")
	}
	m.Update(botReplyMsg{chat: v.chat})
	msgs := v.chat.Messages()
	if len(msgs) != 3 || !msgs[2].FromBot {
		t.Errorf("bot reply missing: %+v", msgs)
	}
}

func TestCalendar_AddAndDelete(t *testing.T) {
	m := newTestModel(t, TabCalendar)
	v := m.current.(*calendarView)
	day := v.cal.Selected()
	if day != "2024-03-15" {
		t.Fatalf("selected = %s", day)
	}
	before := len(v.cal.On(day))

	m, _ = press(m, "a")
	m = typeText(m, "Soil sampling")
	m, _ = press(m, "enter")
	if got := len(v.cal.On(day)); got != before+1 {
		t.Fatalf("events on %s = %d, want %d", day, got, before+1)
	}

	m, _ = press(m, "enter", "d")
	if got := len(v.cal.On(day)); got != before {
		t.Errorf("events after delete = %d, want %d", got, before)
	}

	m, _ = press(m, "esc", "right")
	if v.cal.Selected() != "2024-03-16" {
		t.Errorf("right moved to %s", v.cal.Selected())
	}
}
