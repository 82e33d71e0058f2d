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

// Package app is the root bubbletea model. It owns the top-level mode
// (landing, onboarding or dashboard) and makes sure every ticker started by
// a screen is stopped when that screen goes away.
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/community"
	"github.com/cloud-exit/farmquest/internal/config"
	"github.com/cloud-exit/farmquest/internal/dashboard"
	"github.com/cloud-exit/farmquest/internal/kvstore"
	"github.com/cloud-exit/farmquest/internal/profile"
	"github.com/cloud-exit/farmquest/internal/render"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/settings"
	"github.com/cloud-exit/farmquest/internal/wizard"
)

// Mode is the top-level screen.
type Mode int

const (
	ModeLanding Mode = iota
	ModeOnboarding
	ModeDashboard
)

func (m Mode) String() string {
	switch m {
	case ModeOnboarding:
		return "onboarding"
	case ModeDashboard:
		return "dashboard"
	}
	return "landing"
}

// particleEvery is the landing animation period.
const particleEvery = 50 * time.Millisecond

// Options configures the root model. Store backs the community message log;
// without it messages cannot be sent.
type Options struct {
	Config   *config.Config
	Store    *kvstore.Store
	Markdown *render.Markdown
	Log      *zap.Logger
	Start    Mode
	// Profile seeds the dashboard when Start is ModeDashboard; nil opens it
	// with the guest counters.
	Profile *profile.Summary
	// SaveConfig persists config changes; config.SaveConfig when nil.
	SaveConfig func(*config.Config) error
}

// configSavedMsg reports the result of writing config.yaml.
type configSavedMsg struct {
	err error
}

// Model is the root bubbletea model.
type Model struct {
	opts     Options
	mode     Mode
	landing  Landing
	wizard   wizard.Model
	dash     dashboard.Model
	lang     *settings.Language
	messages *community.MessageLog
	width    int
	height   int
}

// New builds the root model showing opts.Start.
func New(opts Options) Model {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.SaveConfig == nil {
		opts.SaveConfig = config.SaveConfig
	}
	m := Model{
		opts: opts,
		lang: settings.NewLanguage(opts.Config.Settings.Language),
	}
	if opts.Store != nil {
		m.messages = community.NewMessageLog(opts.Store)
	}
	switch opts.Start {
	case ModeOnboarding:
		m.mode = ModeOnboarding
		m.wizard = wizard.New(opts.Log)
	case ModeDashboard:
		m.mode = ModeDashboard
		m.dash = m.newDashboard(opts.Profile)
	default:
		m.mode = ModeLanding
		m.landing = m.newLanding()
	}
	return m
}

// Mode returns the screen being shown.
func (m Model) Mode() Mode { return m.mode }

func (m Model) newLanding() Landing {
	return NewLanding(m.opts.Config.Settings.Animations, particleEvery, nil)
}

func (m Model) newDashboard(p *profile.Summary) dashboard.Model {
	return dashboard.New(dashboard.Options{
		Session:    session.New(p, m.opts.Log),
		Messages:   m.messages,
		Language:   m.lang,
		Markdown:   m.opts.Markdown,
		ClockEvery: m.opts.Config.Settings.ClockEvery(),
		Log:        m.opts.Log,
	})
}

// Init starts whichever screen the app opened on.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case ModeOnboarding:
		return m.wizard.Init()
	case ModeDashboard:
		return m.dash.Init()
	}
	return m.landing.Init()
}

// stop halts whatever ticker the current screen owns.
func (m Model) stop() {
	switch m.mode {
	case ModeLanding:
		m.landing.Stop()
	case ModeDashboard:
		m.dash.Stop()
	}
}

// switchTo stops the current screen and mounts next.
func (m Model) switchTo(next Mode, p *profile.Summary) (Model, tea.Cmd) {
	m.stop()
	m.opts.Log.Info("mode switch", zap.Stringer("from", m.mode), zap.Stringer("to", next))
	m.mode = next
	var cmd tea.Cmd
	switch next {
	case ModeLanding:
		m.landing = m.newLanding()
		cmd = m.landing.Init()
	case ModeOnboarding:
		m.wizard = wizard.New(m.opts.Log)
		cmd = m.wizard.Init()
	case ModeDashboard:
		m.dash = m.newDashboard(p)
		cmd = m.dash.Init()
	}
	if m.width > 0 {
		size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
		cmd = tea.Batch(cmd, func() tea.Msg { return size })
	}
	return m, cmd
}

// Update routes screen transitions and forwards everything else to the
// active screen. ctrl+c quits from anywhere except the wizard, which owns it.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.mode != ModeOnboarding {
			m.stop()
			return m, tea.Quit
		}

	case GetStartedMsg:
		return m.switchTo(ModeDashboard, nil)
	case LoginMsg:
		m.opts.Log.Info("login", zap.Bool("email_given", msg.Email != ""))
		return m.switchTo(ModeDashboard, nil)
	case SignupMsg:
		m.opts.Log.Info("signup", zap.Bool("name_given", msg.Name != ""))
		return m.switchTo(ModeOnboarding, nil)

	case wizard.CompletedMsg:
		summary := msg.Summary
		return m.switchTo(ModeDashboard, &summary)
	case wizard.CancelledMsg:
		return m, tea.Quit

	case dashboard.LogoutMsg:
		if m.messages != nil {
			if err := m.messages.Clear(); err != nil {
				m.opts.Log.Warn("clearing messages failed", zap.Error(err))
			}
		}
		return m.switchTo(ModeLanding, nil)
	case dashboard.LanguageChangedMsg:
		return m, m.saveLanguage(msg.Code)
	case configSavedMsg:
		if msg.err != nil {
			m.opts.Log.Warn("saving config failed", zap.Error(msg.err))
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case ModeLanding:
		m.landing, cmd = m.landing.Update(msg)
	case ModeOnboarding:
		m.wizard, cmd = m.wizard.Update(msg)
	case ModeDashboard:
		m.dash, cmd = m.dash.Update(msg)
	}
	return m, cmd
}

// saveLanguage writes the language preference to config.yaml off the
// update loop.
func (m Model) saveLanguage(code string) tea.Cmd {
	cfg := *m.opts.Config
	cfg.Settings.Language = code
	m.opts.Config.Settings.Language = code
	save := m.opts.SaveConfig
	return func() tea.Msg {
		if err := save(&cfg); err != nil {
			return configSavedMsg{err: fmt.Errorf("save language: %w", err)}
		}
		return configSavedMsg{}
	}
}

// View renders the active screen.
func (m Model) View() string {
	switch m.mode {
	case ModeOnboarding:
		return m.wizard.View()
	case ModeDashboard:
		return m.dash.View()
	}
	return m.landing.View()
}
