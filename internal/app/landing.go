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
	"math"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/farmquest/internal/clock"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// GetStartedMsg opens the dashboard without an account.
type GetStartedMsg struct{}

// ParticleTicker names the landing animation ticker.
const ParticleTicker = "landing-particles"

const (
	particleCount = 15
	fieldRows     = 5
)

var particleGlyphs = []string{"🍃", "•", "💧"}

// particle positions are percentages of the field.
type particle struct {
	x, y  float64
	speed float64
	kind  int
}

func (p particle) step() particle {
	if p.y > 100 {
		p.y = -10
	} else {
		p.y += p.speed
	}
	p.x += math.Sin(p.y*0.01) * 0.1
	return p
}

var features = []struct{ title, text string }{
	{"Earn & Grow", "Complete farming challenges to earn credits, unlock badges, and climb the leaderboard."},
	{"Track Progress", "Monitor water management, soil testing, and organic farming habits every day."},
	{"Connect & Learn", "Network with farmers, exchange knowledge, and grow together as a community."},
}

// Landing is the entry screen with the auth modal.
type Landing struct {
	ticker    *clock.Ticker
	particles []particle
	auth      *authModal
	animate   bool
	width     int
}

// NewLanding builds the landing screen. With animate set, particles drift
// every period once Init runs.
func NewLanding(animate bool, every time.Duration, rng *rand.Rand) Landing {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	ps := make([]particle, particleCount)
	for i := range ps {
		ps[i] = particle{
			x:     rng.Float64() * 100,
			y:     rng.Float64() * 100,
			speed: rng.Float64()*0.5 + 0.1,
			kind:  rng.IntN(len(particleGlyphs)),
		}
	}
	return Landing{
		ticker:    clock.New(ParticleTicker, every),
		particles: ps,
		animate:   animate,
		width:     80,
	}
}

func (l Landing) Init() tea.Cmd {
	if !l.animate {
		return nil
	}
	return l.ticker.Start()
}

// Stop halts the particle ticker.
func (l Landing) Stop() { l.ticker.Stop() }

// AuthOpen reports whether the login/signup modal is showing.
func (l Landing) AuthOpen() bool { return l.auth != nil }

func (l Landing) Update(msg tea.Msg) (Landing, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		return l, nil
	case clock.TickMsg:
		if msg.Name != ParticleTicker {
			return l, nil
		}
		next := make([]particle, len(l.particles))
		for i, p := range l.particles {
			next[i] = p.step()
		}
		l.particles = next
		return l, l.ticker.Wait()
	}

	if l.auth != nil {
		closed, cmd := l.auth.update(msg)
		if closed {
			l.auth = nil
		}
		return l, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch km.String() {
	case "enter", "g":
		return l, func() tea.Msg { return GetStartedMsg{} }
	case "l":
		l.auth = newAuthModal(false)
		return l, nil
	case "s":
		l.auth = newAuthModal(true)
		return l, nil
	}
	return l, nil
}

func (l Landing) renderField() string {
	w := max(l.width-4, 20)
	grid := make([][]string, fieldRows)
	for r := range grid {
		grid[r] = make([]string, w)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for _, p := range l.particles {
		if p.y < 0 || p.y > 100 {
			continue
		}
		row := min(int(p.y/100*fieldRows), fieldRows-1)
		col := int(math.Mod(math.Abs(p.x), 100) / 100 * float64(w-1))
		grid[row][col] = particleGlyphs[p.kind]
	}
	lines := make([]string, fieldRows)
	for r := range grid {
		lines[r] = strings.Join(grid[r], "")
	}
	return ui.DimStyle.Render(strings.Join(lines, "\n"))
}

func (l Landing) View() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(ui.LogoText()) + "\n")
	b.WriteString(ui.SubtitleStyle.Render(ui.Tagline) + "\n\n")

	if l.auth != nil {
		b.WriteString(l.auth.view())
		return b.String()
	}

	b.WriteString(ui.AccentStyle.Render("Transform your farming journey") + "\n")
	b.WriteString("Join a community of farmers growing sustainable habits through quests, learning and rewards.\n\n")

	cards := make([]string, len(features))
	width := max((l.width-6)/len(features)-2, 20)
	for i, f := range features {
		cards[i] = ui.CardStyle.Width(width).Render(ui.SelectedStyle.Render(f.title) + "\n" + ui.DimStyle.Render(f.text))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n")
	if l.animate {
		b.WriteString(l.renderField() + "\n")
	}
	b.WriteString("\n" + ui.HelpStyle.Render("enter get started · l log in · s sign up · ctrl+c quit"))
	return b.String()
}
