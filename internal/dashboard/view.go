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

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/farmquest/internal/ui"
)

// view is one feature tab. The shell forwards every message to the current
// view and swaps in a freshly built view when the tab changes, so list
// state not owned by the shell starts over on each visit.
type view interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	// Keys returns the bindings shown in the footer.
	Keys() []key.Binding
	// Editing reports whether a text field has focus. The shell then leaves
	// all keys except ctrl+c to the view.
	Editing() bool
}

func binding(keys, help string) key.Binding {
	first := strings.Split(keys, ",")[0]
	if first == " " {
		first = "space"
	}
	return key.NewBinding(key.WithKeys(strings.Split(keys, ",")...), key.WithHelp(first, help))
}

var (
	keyUp     = binding("up,k", "up")
	keyDown   = binding("down,j", "down")
	keyLeft   = binding("left,h", "prev")
	keyRight  = binding("right,l", "next")
	keyEnter  = binding("enter", "open")
	keyBack   = binding("esc", "back")
	keyAdd    = binding("a", "add")
	keyDelete = binding("d", "delete")
	keyToggle = binding(" ", "toggle")
	keyClaim  = binding("enter", "claim")
	keyStep   = binding("p", "log progress")
)

// cursor is a clamped index into a list.
type cursor int

// move handles up/down keys for a list of n items and reports whether the
// key was one of them.
func (c *cursor) move(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, keyUp):
		if *c > 0 {
			*c--
		}
	case key.Matches(msg, keyDown):
		if int(*c) < n-1 {
			*c++
		}
	default:
		return false
	}
	return true
}

// clamp keeps the cursor inside a list of n items after removals.
func (c *cursor) clamp(n int) {
	if int(*c) >= n {
		*c = cursor(n - 1)
	}
	if *c < 0 {
		*c = 0
	}
}

func (c cursor) at(i int) bool { return int(c) == i }

func (c cursor) prefix(i int) string {
	if c.at(i) {
		return ui.CursorStyle.Render("> ")
	}
	return "  "
}

// heading renders a view title with a one-line subtitle.
func heading(title, subtitle string) string {
	return ui.TitleStyle.Render(title) + "\n" + ui.SubtitleStyle.Render(subtitle) + "\n\n"
}

// tabs renders a row of section names with the active one highlighted.
func tabs(names []string, active int) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if i == active {
			parts[i] = ui.ActiveCardStyle.Render(ui.SelectedStyle.Render(n))
		} else {
			parts[i] = ui.CardStyle.Render(ui.DimStyle.Render(n))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

// --- Forms ---

// field is one row of a form: a text input or, when choices is set, a
// picker cycled with left/right.
type field struct {
	label   string
	input   textinput.Model
	choices []string
	choice  int
}

func textField(label, placeholder, value string) *field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.SetValue(value)
	return &field{label: label, input: ti}
}

func pickField(label string, choices []string, selected int) *field {
	return &field{label: label, choices: choices, choice: selected}
}

func (f *field) value() string {
	if f.choices != nil {
		return f.choices[f.choice]
	}
	return f.input.Value()
}

// form is a small stack of fields edited in place by a view.
type form struct {
	title  string
	fields []*field
	focus  int
}

func newForm(title string, fields ...*field) *form {
	f := &form{title: title, fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	for j, fl := range f.fields {
		if fl.choices != nil {
			continue
		}
		if j == f.focus {
			fl.input.Focus()
		} else {
			fl.input.Blur()
		}
	}
}

// formResult is what a key did to a form.
type formResult int

const (
	formEditing formResult = iota
	formSubmitted
	formCancelled
)

func (f *form) update(msg tea.Msg) (formResult, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return formEditing, nil
	}
	cur := f.fields[f.focus]
	switch km.String() {
	case "esc":
		return formCancelled, nil
	case "enter":
		return formSubmitted, nil
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return formEditing, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return formEditing, nil
	}
	if cur.choices != nil {
		switch km.String() {
		case "left", "h":
			cur.choice = (cur.choice - 1 + len(cur.choices)) % len(cur.choices)
		case "right", "l", " ":
			cur.choice = (cur.choice + 1) % len(cur.choices)
		}
		return formEditing, nil
	}
	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	return formEditing, cmd
}

func (f *form) value(i int) string { return f.fields[i].value() }

func (f *form) view(valid bool) string {
	var b strings.Builder
	b.WriteString(ui.AccentStyle.Render(f.title) + "\n")
	for i, fl := range f.fields {
		label := lipgloss.NewStyle().Width(14).Render(fl.label)
		prefix := "  "
		if i == f.focus {
			prefix = ui.CursorStyle.Render("> ")
		}
		val := fl.input.View()
		if fl.choices != nil {
			val = "< " + fl.choices[fl.choice] + " >"
			if i == f.focus {
				val = ui.SelectedStyle.Render(val)
			}
		}
		b.WriteString(prefix + label + val + "\n")
	}
	help := "Tab next field, ←/→ change choice, Esc cancel"
	if valid {
		help += ", Enter save"
	}
	b.WriteString(ui.HelpStyle.Render(help))
	if !valid {
		b.WriteString("  " + ui.DimStyle.Render("(fill in the required fields)"))
	}
	return ui.ActiveCardStyle.Render(b.String())
}

var formKeys = []key.Binding{
	binding("tab", "next field"),
	binding("enter", "save"),
	binding("esc", "cancel"),
}
