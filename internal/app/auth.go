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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/farmquest/internal/ui"
)

// LoginMsg is emitted when the login form is submitted. Nothing is checked.
type LoginMsg struct {
	Email string
}

// SignupMsg is emitted when the signup form is submitted. Nothing is checked.
type SignupMsg struct {
	Name     string
	Email    string
	FarmName string
}

// authField indexes the modal inputs.
type authField int

const (
	authName authField = iota
	authFarm
	authEmail
	authPassword
)

// authModal is the login/signup dialog shown over the landing screen.
type authModal struct {
	signup bool
	inputs [4]textinput.Model
	focus  authField
}

func newAuthModal(signup bool) *authModal {
	a := &authModal{signup: signup}
	placeholders := [4]string{"John Farmer", "Green Valley Farm", "farmer@example.com", "••••••••"}
	for i := range a.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.CharLimit = 80
		a.inputs[i] = ti
	}
	a.inputs[authPassword].EchoMode = textinput.EchoPassword
	a.inputs[authPassword].EchoCharacter = '•'
	a.setFocus(a.fields()[0])
	return a
}

// fields returns the inputs shown in the current mode, in tab order.
func (a *authModal) fields() []authField {
	if a.signup {
		return []authField{authName, authFarm, authEmail, authPassword}
	}
	return []authField{authEmail, authPassword}
}

func (a *authModal) setFocus(f authField) {
	a.focus = f
	for i := range a.inputs {
		if authField(i) == f {
			a.inputs[i].Focus()
		} else {
			a.inputs[i].Blur()
		}
	}
}

func (a *authModal) move(delta int) {
	fs := a.fields()
	cur := 0
	for i, f := range fs {
		if f == a.focus {
			cur = i
		}
	}
	n := len(fs)
	a.setFocus(fs[((cur+delta)%n+n)%n])
}

func (a *authModal) value(f authField) string {
	return strings.TrimSpace(a.inputs[f].Value())
}

// update handles a key. closed reports that the modal should go away; cmd
// may carry the submit message.
func (a *authModal) update(msg tea.Msg) (closed bool, cmd tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch km.String() {
	case "esc":
		return true, nil
	case "tab", "down":
		a.move(1)
		return false, nil
	case "shift+tab", "up":
		a.move(-1)
		return false, nil
	case "ctrl+t":
		a.signup = !a.signup
		a.setFocus(a.fields()[0])
		return false, nil
	case "enter":
		if a.signup {
			out := SignupMsg{Name: a.value(authName), Email: a.value(authEmail), FarmName: a.value(authFarm)}
			return true, func() tea.Msg { return out }
		}
		out := LoginMsg{Email: a.value(authEmail)}
		return true, func() tea.Msg { return out }
	}
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return false, cmd
}

var authLabels = [4]string{"Full Name", "Farm Name", "Email", "Password"}

func (a *authModal) view() string {
	var b strings.Builder
	title, sub, toggle := "Welcome Back", "Sign in to continue your farming journey", "Don't have an account? ctrl+t to sign up"
	if a.signup {
		title, sub, toggle = "Join FarmQuest", "Start your sustainable farming journey today", "Already have an account? ctrl+t to sign in"
	}
	b.WriteString(ui.TitleStyle.Render(title) + "\n")
	b.WriteString(ui.SubtitleStyle.Render(sub) + "\n\n")
	for _, f := range a.fields() {
		prefix := "  "
		if f == a.focus {
			prefix = ui.CursorStyle.Render("> ")
		}
		label := lipgloss.NewStyle().Width(12).Render(authLabels[f])
		b.WriteString(prefix + label + a.inputs[f].View() + "\n")
	}
	b.WriteString("\n" + ui.DimStyle.Render(toggle) + "\n")
	b.WriteString(ui.HelpStyle.Render("Tab next field · Enter submit · Esc close"))
	return ui.ActiveCardStyle.Render(b.String())
}
