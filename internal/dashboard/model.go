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

// Package dashboard is the post-onboarding shell: a header with the shared
// counters, a sidebar of tabs and exactly one feature view at a time.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/assets"
	"github.com/cloud-exit/farmquest/internal/clock"
	"github.com/cloud-exit/farmquest/internal/community"
	"github.com/cloud-exit/farmquest/internal/habits"
	"github.com/cloud-exit/farmquest/internal/render"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/settings"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// ClockTicker names the ticker that refreshes the header clock.
const ClockTicker = "dashboard-clock"

const sidebarWidth = 26

// LogoutMsg asks the app to return to the landing screen.
type LogoutMsg struct{}

// LanguageChangedMsg reports a new language preference to be saved.
type LanguageChangedMsg struct {
	Code string
}

// Options configures a dashboard.
type Options struct {
	Session    *session.Session
	Messages   *community.MessageLog
	Language   *settings.Language
	Markdown   *render.Markdown
	ClockEvery time.Duration
	// Now seeds the clock; time.Now when nil.
	Now func() time.Time
	Tab Tab
	Log *zap.Logger
}

// env is the state shared by the shell and the views it builds.
type env struct {
	sess     *session.Session
	habits   *habits.List
	messages *community.MessageLog
	lang     *settings.Language
	md       *render.Markdown
	at       time.Time
	now      func() time.Time
	log      *zap.Logger
}

// Model is the bubbletea model of the dashboard shell.
type Model struct {
	env     *env
	router  *Router
	current view
	clock   *clock.Ticker
	help    help.Model
	width   int
	height  int
}

var (
	keyNextTab = binding("tab", "next tab")
	keyPrevTab = binding("shift+tab", "prev tab")
	keyQuit    = binding("ctrl+c", "quit")
)

// New builds a dashboard showing opts.Tab.
func New(opts Options) Model {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Session == nil {
		opts.Session = session.New(nil, opts.Log)
	}
	if opts.Language == nil {
		opts.Language = settings.NewLanguage("en")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ClockEvery <= 0 {
		opts.ClockEvery = time.Minute
	}

	e := &env{
		sess:     opts.Session,
		habits:   habits.NewList(habits.Seed()),
		messages: opts.Messages,
		lang:     opts.Language,
		md:       opts.Markdown,
		at:       opts.Now(),
		log:      opts.Log,
	}
	e.now = func() time.Time { return e.at }

	m := Model{
		env:    e,
		router: &Router{},
		clock:  clock.New(ClockTicker, opts.ClockEvery),
		help:   help.New(),
	}
	m.router.Select(opts.Tab)
	m.current = builders[m.router.Current()](e)
	return m
}

// Init starts the header clock and the first view.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.clock.Start(), m.current.Init())
}

// Stop releases the clock ticker. The app calls it whenever the dashboard
// is unmounted.
func (m Model) Stop() { m.clock.Stop() }

// Session returns the shared counters.
func (m Model) Session() *session.Session { return m.env.sess }

// Tab returns the tab being shown.
func (m Model) Tab() Tab { return m.router.Current() }

// Select shows tab t, building a fresh view for it.
func (m Model) Select(t Tab) (Model, tea.Cmd) {
	m.router.Select(t)
	cur := m.router.Current()
	m.env.log.Debug("tab selected", zap.String("tab", string(t)), zap.String("shown", string(cur)))
	m.current = builders[cur](m.env)
	return m, m.current.Init()
}

// Update handles clock ticks, tab navigation and window resizes, and
// passes everything else to the current tab.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clock.TickMsg:
		if msg.Name != ClockTicker {
			return m, nil
		}
		m.env.at = msg.At
		return m, m.clock.Wait()

	case tea.KeyMsg:
		if !m.current.Editing() {
			switch {
			case key.Matches(msg, keyNextTab):
				m.router.Next(1)
				return m.Select(m.router.Selected())
			case key.Matches(msg, keyPrevTab):
				m.router.Next(-1)
				return m.Select(m.router.Selected())
			}
		}
	}
	return m, m.current.Update(msg)
}

func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 3
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the header, tab sidebar, current tab and key help.
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(),
		" "+m.current.View(m.contentWidth()))

	keys := append(append([]key.Binding{}, m.current.Keys()...), keyNextTab, keyPrevTab, keyQuit)
	return m.renderHeader() + "\n" + body + "\n" + m.help.ShortHelpView(keys)
}

func (m Model) renderHeader() string {
	s, lang := m.env.sess, m.env.lang
	left := ui.TitleStyle.Render(glyphSprout + " FarmQuest")
	counters := []string{
		ui.AccentStyle.Render(glyphZap + " " + lang.Number(s.Credits())),
		ui.DangerStyle.Render(glyphHeart + " " + lang.Number(s.Popularity())),
		ui.InfoStyle.Render(glyphStar + " " + lang.Number(s.XP()) + " XP"),
		ui.DimStyle.Render(m.env.at.Format("Mon Jan 2 15:04")),
	}
	right := strings.Join(counters, "   ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderSidebar() string {
	var b strings.Builder

	p := m.env.sess.Profile
	art := assets.Art(assets.FarmerAvatar)
	if p != nil && p.Avatar.SkinTone != "" {
		art = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Avatar.SkinTone)).Render(art)
	}
	b.WriteString(art)
	b.WriteString(ui.TitleStyle.Render(p.DisplayName()) + "\n")
	level := fmt.Sprintf("Level %d", m.env.sess.Level())
	if p != nil {
		level += " " + p.Specialization.Label()
	}
	b.WriteString(ui.DimStyle.Render(level) + "\n")
	b.WriteString("\n")

	cur := m.router.Current()
	for _, t := range Tabs {
		line := tabGlyph(t) + " " + t.Label()
		if t == cur {
			b.WriteString(sidebarActiveStyle.Render("▌"+line) + "\n")
		} else {
			b.WriteString(" " + line + "\n")
		}
	}
	return sidebarStyle.Render(b.String())
}

var (
	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ui.ColorMuted).
			PaddingRight(1)

	sidebarActiveStyle = lipgloss.NewStyle().
				Foreground(ui.ColorPrimary).
				Bold(true)
)
