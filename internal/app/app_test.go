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

package app

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/cloud-exit/farmquest/internal/clock"
	"github.com/cloud-exit/farmquest/internal/config"
	"github.com/cloud-exit/farmquest/internal/dashboard"
	"github.com/cloud-exit/farmquest/internal/kvstore"
	"github.com/cloud-exit/farmquest/internal/profile"
	"github.com/cloud-exit/farmquest/internal/wizard"
)

func newTestApp(t *testing.T, opts Options) Model {
	t.Helper()
	store, err := kvstore.Open()
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	opts.Store = store
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
		opts.Config.Settings.Animations = false
	}
	// step waits on the dashboard clock, so keep it short.
	opts.Config.Settings.ClockInterval = "5ms"
	if opts.SaveConfig == nil {
		opts.SaveConfig = func(*config.Config) error { return nil }
	}
	m := New(opts)
	t.Cleanup(m.stop)
	return m
}

// step feeds msg to m and then feeds back whatever single message the
// returned command produces.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	out := cmd()
	if out == nil {
		return m
	}
	next, _ = m.Update(out)
	return next.(Model)
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestApp_GetStartedOpensGuestDashboard(t *testing.T) {
	m := newTestApp(t, Options{})
	if m.Mode() != ModeLanding {
		t.Fatalf("start mode = %v", m.Mode())
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	t.Cleanup(m.stop)
	if m.Mode() != ModeDashboard {
		t.Fatalf("mode = %v, want dashboard", m.Mode())
	}
	if m.dash.Session().Profile != nil {
		t.Error("guest dashboard has a profile")
	}
}

func TestApp_LoginModal(t *testing.T) {
	m := newTestApp(t, Options{})
	m = step(t, m, keyRunes("l"))
	if !m.landing.AuthOpen() {
		t.Fatal("login modal not open")
	}
	for _, r := range "ana@farm.io" {
		m = step(t, m, keyRunes(string(r)))
	}
	if m.Mode() != ModeLanding {
		t.Fatal("typing in the modal left the landing screen")
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	t.Cleanup(m.stop)
	if m.Mode() != ModeDashboard {
		t.Errorf("mode after login = %v", m.Mode())
	}
}

func TestApp_SignupThenOnboarding(t *testing.T) {
	m := newTestApp(t, Options{})
	m = step(t, m, keyRunes("s"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.landing.auth.signup {
		t.Fatal("ctrl+t did not switch to login")
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode() != ModeOnboarding {
		t.Fatalf("mode after signup = %v", m.Mode())
	}

	summary := profile.Draft{Name: "Asha Rao", Specialization: profile.WaterGuardian}.Freeze()
	m = step(t, m, wizard.CompletedMsg{Summary: summary})
	t.Cleanup(m.stop)
	if m.Mode() != ModeDashboard {
		t.Fatalf("mode after onboarding = %v", m.Mode())
	}
	got := m.dash.Session().Profile
	if diff := cmp.Diff(&summary, got); diff != "" {
		t.Errorf("dashboard profile mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_AuthModalEscCloses(t *testing.T) {
	m := newTestApp(t, Options{})
	m = step(t, m, keyRunes("s"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.landing.AuthOpen() || m.Mode() != ModeLanding {
		t.Error("esc did not close the modal")
	}
}

func TestApp_LogoutReturnsToFreshLanding(t *testing.T) {
	m := newTestApp(t, Options{Start: ModeDashboard})
	if _, err := m.messages.Append(1, "hello", time.Now()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	m = step(t, m, dashboard.LogoutMsg{})
	if m.Mode() != ModeLanding {
		t.Fatalf("mode after logout = %v", m.Mode())
	}
	if n, _ := m.messages.Count(); n != 0 {
		t.Errorf("%d messages survived logout", n)
	}
}

func TestApp_LanguageSaved(t *testing.T) {
	var saved *config.Config
	m := newTestApp(t, Options{
		Start:      ModeDashboard,
		SaveConfig: func(c *config.Config) error { saved = c; return nil },
	})
	m = step(t, m, dashboard.LanguageChangedMsg{Code: "es"})
	if saved == nil || saved.Settings.Language != "es" {
		t.Fatalf("saved config = %+v", saved)
	}
	if m.opts.Config.Settings.Language != "es" {
		t.Error("in-memory config not updated")
	}
}

func TestApp_LanguageSaveError(t *testing.T) {
	m := newTestApp(t, Options{
		Start:      ModeDashboard,
		SaveConfig: func(*config.Config) error { return errors.New("read-only") },
	})
	_, cmd := m.Update(dashboard.LanguageChangedMsg{Code: "fr"})
	msg, ok := cmd().(configSavedMsg)
	if !ok || msg.err == nil || !strings.Contains(msg.err.Error(), "read-only") {
		t.Errorf("configSavedMsg = %+v", msg)
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newTestApp(t, Options{Start: ModeDashboard})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
}

func TestApp_OnboardingCancelQuits(t *testing.T) {
	m := newTestApp(t, Options{Start: ModeOnboarding})
	_, cmd := m.Update(wizard.CancelledMsg{})
	if cmd == nil {
		t.Fatal("cancel returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("cancel did not quit")
	}
}

func TestLanding_Particles(t *testing.T) {
	l := NewLanding(true, time.Hour, rand.New(rand.NewPCG(1, 2)))
	t.Cleanup(l.Stop)
	l.Init()
	before := make([]particle, len(l.particles))
	copy(before, l.particles)

	l, cmd := l.Update(clock.TickMsg{Name: ParticleTicker, At: time.Now()})
	if cmd == nil {
		t.Error("tick did not schedule the next wait")
	}
	for i := range before {
		want := before[i].step()
		if l.particles[i] != want {
			t.Errorf("particle %d = %+v, want %+v", i, l.particles[i], want)
		}
	}

	l, cmd = l.Update(clock.TickMsg{Name: dashboard.ClockTicker})
	if cmd != nil {
		t.Error("foreign tick scheduled a wait")
	}
	if !strings.Contains(l.View(), "get started") {
		t.Error("landing view missing key help")
	}
}

func TestParticle_Wraps(t *testing.T) {
	p := particle{x: 50, y: 101, speed: 0.3}.step()
	if p.y != -10 {
		t.Errorf("y = %v, want -10 after leaving the field", p.y)
	}
	p = particle{x: 50, y: 10, speed: 0.5}.step()
	if p.y != 10.5 {
		t.Errorf("y = %v, want 10.5", p.y)
	}
}
