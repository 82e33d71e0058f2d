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

package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/assets"
	"github.com/cloud-exit/farmquest/internal/onboarding"
	"github.com/cloud-exit/farmquest/internal/profile"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// sidebarLabels are the short step names shown in the sidebar.
var sidebarLabels = [onboarding.TotalSteps]string{"Name", "Knowledge", "Experience", "Age", "Avatar", "Specialization"}

// Model is the bubbletea model for the onboarding wizard.
type Model struct {
	flow   *onboarding.Flow
	name   textinput.Model
	cursor int
	width  int
	height int
}

// New returns a wizard at step 1 with an empty draft.
func New(log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Enter your full name"
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Focus()
	return Model{flow: newFlow(log), name: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message. It returns CompletedMsg through the command
// once the last step is confirmed, and CancelledMsg on ctrl+c.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.flow.Done() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, cancel
		case "esc":
			if m.flow.Retreat() {
				m = m.enterStep()
			}
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	switch step := m.flow.State().Current; step {
	case onboarding.StepName:
		return m.updateName(msg)
	case onboarding.StepAvatar:
		return m.updateAvatar(msg)
	default:
		return m.updateChoice(msg, stepOptions(step))
	}
}

// Flow exposes the underlying onboarding flow.
func (m Model) Flow() *onboarding.Flow { return m.flow }

func (m Model) submit() (Model, tea.Cmd) {
	st := m.flow.State()
	if st.Current == st.Total {
		sum, ok := m.flow.Complete()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return CompletedMsg{Summary: sum} }
	}
	if m.flow.Advance() {
		m = m.enterStep()
	}
	return m, nil
}

// enterStep resets the per-step widgets after a transition.
func (m Model) enterStep() Model {
	step := m.flow.State().Current
	m.cursor = 0
	if i := profile.IndexOf(stepOptions(step), selected(step, m.flow.Draft())); i >= 0 {
		m.cursor = i
	}
	if step == onboarding.StepName {
		m.name.Focus()
	} else {
		m.name.Blur()
	}
	return m
}

// --- Name Step ---

func (m Model) updateName(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	m.flow.SetName(m.name.Value())
	return m, cmd
}

func (m Model) viewName() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("Let's start your farming journey. What should we call you?"))
	b.WriteString("\n\n")
	b.WriteString("  Full name: " + ui.SelectedStyle.Render(m.name.View()))
	b.WriteString("\n")
	return b.String()
}

// --- Single-select Steps ---

func (m Model) updateChoice(msg tea.Msg, opts []profile.Option) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(opts) == 0 {
		return m, nil
	}
	switch s := key.String(); s {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case " ", "x":
		choose(m.flow, opts[m.cursor].Value)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if i := int(s[0]-'0') - 1; i < len(opts) {
			m.cursor = i
			choose(m.flow, opts[i].Value)
		}
	}
	return m, nil
}

func (m Model) viewChoice(opts []profile.Option) string {
	step := m.flow.State().Current
	current := selected(step, m.flow.Draft())

	var b strings.Builder
	for i, o := range opts {
		cursor := "  "
		if m.cursor == i {
			cursor = ui.CursorStyle.Render("> ")
		}
		mark := "( )"
		if o.Value == current {
			mark = ui.SelectedStyle.Render("(•)")
		}
		label := fmt.Sprintf("%-20s", o.Label)
		if m.cursor == i {
			label = ui.SelectedStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, label))
		if o.Desc != "" {
			b.WriteString(descStyle.Render("    "+o.Desc) + "\n")
		}
	}
	return b.String()
}

// --- Avatar Step ---

func (m Model) updateAvatar(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	delta := 0
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(avatarFields)-1 {
			m.cursor++
		}
	case "left", "h":
		delta = -1
	case "right", "l", " ":
		delta = 1
	case "s":
		if m.flow.SkipAvatar() {
			m = m.enterStep()
		}
		return m, nil
	}
	if delta != 0 {
		f := avatarFields[m.cursor]
		m.flow.EditAvatar(func(a *profile.Avatar) {
			f.set(a, cycle(f.opts, f.get(*a), delta))
		})
	}
	return m, nil
}

func (m Model) viewAvatar() string {
	a := m.flow.Draft().Avatar

	var rows strings.Builder
	for i, f := range avatarFields {
		cursor := "  "
		if m.cursor == i {
			cursor = ui.CursorStyle.Render("> ")
		}
		value := ui.DimStyle.Render("not set")
		if v := f.get(a); v != "" || profile.IndexOf(f.opts, "") >= 0 {
			value = "< " + profile.LabelFor(f.opts, v) + " >"
			if m.cursor == i {
				value = ui.SelectedStyle.Render(value)
			}
		}
		rows.WriteString(cursor + rowLabelStyle.Render(f.label) + value + "\n")
	}

	preview := ui.DimStyle.Render(assets.Art(assets.FarmerAvatar))
	if a.SkinTone != "" {
		preview = lipgloss.NewStyle().Foreground(lipgloss.Color(a.SkinTone)).Render(assets.Art(assets.FarmerAvatar))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rows.String(), "   ", ui.CardStyle.Render(preview))
}

// --- Layout ---

func (m Model) View() string {
	if m.flow.Done() {
		return ui.TitleStyle.Render("Preparing your farm...")
	}

	st := m.flow.State()
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(fmt.Sprintf("Step %d of %d: %s", st.Current, st.Total, st.Title())))
	b.WriteString("\n")
	b.WriteString(ui.ProgressBar(int(st.Percent()*100), 30))
	b.WriteString(ui.DimStyle.Render(fmt.Sprintf(" %d%% complete", int(st.Percent()*100))))
	b.WriteString("\n\n")

	switch st.Current {
	case onboarding.StepName:
		b.WriteString(m.viewName())
	case onboarding.StepAvatar:
		b.WriteString(m.viewAvatar())
	default:
		b.WriteString(m.viewChoice(stepOptions(st.Current)))
	}
	b.WriteString(m.helpLine())

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " "+b.String())
}

func (m Model) helpLine() string {
	st := m.flow.State()
	var keys []string
	switch st.Current {
	case onboarding.StepName:
		keys = append(keys, "Type your name")
	case onboarding.StepAvatar:
		keys = append(keys, "↑/↓ field", "←/→ change", "s skip")
	default:
		keys = append(keys, "↑/↓ move", "Space select")
	}
	next := "Enter next"
	if st.Current == st.Total {
		next = "Enter start farming"
	}
	if m.flow.CanAdvance() {
		keys = append(keys, next)
	}
	if st.Current > 1 {
		keys = append(keys, "Esc back")
	}

	line := ui.HelpStyle.Render("\n" + strings.Join(keys, ", "))
	if !m.flow.CanAdvance() {
		line += "  " + ui.DimStyle.Render("("+hint(st.Current)+")")
	}
	return line
}

func hint(step int) string {
	switch step {
	case onboarding.StepName:
		return "name required"
	case onboarding.StepAvatar:
		return "pick a character and skin tone"
	}
	return "choose an option"
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("FarmQuest") + "\n\n")

	current := m.flow.State().Current
	for i, label := range sidebarLabels {
		num := i + 1
		text := fmt.Sprintf("%d. %s", num, label)
		switch {
		case num == current:
			b.WriteString(sidebarActiveStyle.Render(">> "+text) + "\n")
		case num < current:
			b.WriteString(sidebarVisitedStyle.Render("   "+text+" ✓") + "\n")
		default:
			b.WriteString(ui.DimStyle.Render("   "+text) + "\n")
		}
	}
	return sidebarStyle.Render(b.String())
}
