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
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/farmquest/internal/config"
	"github.com/cloud-exit/farmquest/internal/render"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/settings"
	"github.com/cloud-exit/farmquest/internal/ui"
)

const faqHeight = 10

var (
	keyEdit   = binding("enter", "edit")
	keyChat   = binding("i", "chat")
	keyLogout = binding("enter", "select")
)

// botReplyMsg fires BotDelay after the farmer sends a chat message. The
// chat pointer drops replies meant for a transcript that is gone.
type botReplyMsg struct {
	chat *settings.Chat
}

// accountActions are the rows of the accounts page.
var accountActions = []string{"Change language", "Log out"}

type settingsView struct {
	sess    *session.Session
	lang    *settings.Language
	md      *render.Markdown
	menu    settings.Menu
	cursor  cursor
	profile *settings.ProfileForm
	input   textinput.Model
	chat    *settings.Chat
	faq     viewport.Model
	status  string
}

func newSettingsView(sess *session.Session, lang *settings.Language, md *render.Markdown) *settingsView {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	return &settingsView{
		sess:    sess,
		lang:    lang,
		md:      md,
		profile: settings.NewProfileForm(sess),
		input:   ti,
		chat:    settings.NewChat(),
		faq:     viewport.New(60, faqHeight),
	}
}

func (v *settingsView) Init() tea.Cmd { return nil }

func (v *settingsView) Editing() bool { return v.input.Focused() }

func (v *settingsView) Keys() []key.Binding {
	if v.input.Focused() {
		return []key.Binding{binding("enter", "save"), binding("esc", "cancel")}
	}
	switch v.menu.Active() {
	case settings.SectionNone:
		return []key.Binding{keyUp, keyDown, keyEnter}
	case settings.SectionProfile:
		return []key.Binding{keyUp, keyDown, keyEdit, keyBack}
	case settings.SectionHelp:
		return []key.Binding{keyUp, keyDown, keyChat, keyBack}
	}
	return []key.Binding{keyUp, keyDown, keyLogout, keyBack}
}

func (v *settingsView) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(botReplyMsg); ok {
		if m.chat == v.chat {
			v.chat.Reply()
		}
		return nil
	}
	if v.input.Focused() {
		return v.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(km, keyBack) {
		if v.menu.Back() {
			v.cursor = 0
			v.status = ""
		}
		return nil
	}

	switch v.menu.Active() {
	case settings.SectionNone:
		if v.cursor.move(km, len(settings.MenuItems)) {
			return nil
		}
		if key.Matches(km, keyEnter) {
			v.menu.Open(settings.MenuItems[v.cursor].Section)
			v.cursor = 0
		}
	case settings.SectionProfile:
		if v.cursor.move(km, len(settings.Fields)) {
			return nil
		}
		if key.Matches(km, keyEdit) {
			v.input.SetValue(v.profile.Value(settings.Fields[v.cursor]))
			v.input.CursorEnd()
			return v.input.Focus()
		}
	case settings.SectionAccounts:
		if v.cursor.move(km, len(accountActions)) {
			return nil
		}
		if key.Matches(km, keyLogout) {
			if v.cursor == 1 {
				return func() tea.Msg { return LogoutMsg{} }
			}
			v.menu.Open(settings.SectionLanguage)
			v.cursor = 0
		}
	case settings.SectionLanguage:
		if v.cursor.move(km, len(config.Languages)) {
			return nil
		}
		if key.Matches(km, keyEnter) {
			return v.setLanguage(config.Languages[v.cursor].String())
		}
	case settings.SectionHelp:
		if key.Matches(km, keyChat) {
			v.input.SetValue("")
			return v.input.Focus()
		}
		var cmd tea.Cmd
		v.faq, cmd = v.faq.Update(msg)
		return cmd
	}
	return nil
}

func (v *settingsView) setLanguage(code string) tea.Cmd {
	if err := v.lang.Set(code); err != nil {
		v.status = err.Error()
		return nil
	}
	v.status = "Language set to " + v.lang.Name()
	chosen := v.lang.Code()
	return func() tea.Msg { return LanguageChangedMsg{Code: chosen} }
}

func (v *settingsView) updateInput(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if ok {
		switch km.String() {
		case "esc":
			v.input.Blur()
			return nil
		case "enter":
			v.input.Blur()
			return v.submit(v.input.Value())
		}
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *settingsView) submit(value string) tea.Cmd {
	switch v.menu.Active() {
	case settings.SectionProfile:
		field := settings.Fields[v.cursor]
		v.status = field.Label() + " saved"
		if v.profile.Update(field, value) {
			v.status = fmt.Sprintf("%s saved! +%d credits", field.Label(), settings.FieldReward)
		}
	case settings.SectionHelp:
		if v.chat.Send(value) {
			chat := v.chat
			return tea.Tick(settings.BotDelay, func(time.Time) tea.Msg { return botReplyMsg{chat: chat} })
		}
	}
	return nil
}

func (v *settingsView) View(width int) string {
	var b strings.Builder
	b.WriteString(heading("Settings ⚙️", "Manage your account and preferences"))

	switch v.menu.Active() {
	case settings.SectionNone:
		for i, item := range settings.MenuItems {
			title := item.Title
			if v.cursor.at(i) {
				title = ui.SelectedStyle.Render(title)
			}
			b.WriteString(v.cursor.prefix(i) + title + "\n")
			b.WriteString(ui.DimStyle.Render("    "+item.Description) + "\n")
		}
	case settings.SectionProfile:
		b.WriteString(v.profileView())
	case settings.SectionAccounts:
		b.WriteString(rowLine("Language", v.lang.Name()))
		b.WriteString(rowLine("Email", v.profile.Value(settings.FieldEmail)) + "\n")
		for i, a := range accountActions {
			label := a
			if i == 1 {
				label = ui.DangerStyle.Render(a)
			}
			b.WriteString(v.cursor.prefix(i) + label + "\n")
		}
	case settings.SectionLanguage:
		for i, tag := range config.Languages {
			name := config.LanguageName(tag)
			if base, _ := tag.Base(); base.String() == v.lang.Code() {
				name += " ✓"
			}
			if v.cursor.at(i) {
				name = ui.SelectedStyle.Render(name)
			}
			b.WriteString(v.cursor.prefix(i) + name + "\n")
		}
	case settings.SectionHelp:
		b.WriteString(v.helpView(width))
	}
	if v.status != "" {
		b.WriteString("\n" + ui.AccentStyle.Render(v.status))
	}
	return b.String()
}

func (v *settingsView) profileView() string {
	var b strings.Builder
	b.WriteString(ui.Meter(v.profile.Completion(), 100, 20) + ui.DimStyle.Render(" profile complete") + "\n")
	b.WriteString(ui.DimStyle.Render(fmt.Sprintf("Fill in an empty field to earn %d credits", settings.FieldReward)) + "\n\n")
	for i, f := range settings.Fields {
		value := v.profile.Value(f)
		if value == "" {
			value = ui.DimStyle.Render("(empty)")
		}
		if v.cursor.at(i) && v.input.Focused() {
			value = v.input.View()
		}
		b.WriteString(v.cursor.prefix(i) + rowLabel(f.Label()) + value + "\n")
	}
	return b.String()
}

func (v *settingsView) helpView(width int) string {
	var b strings.Builder
	doc := settings.FAQMarkdown()
	if v.md != nil {
		if out, err := v.md.Render(doc, width); err == nil {
			doc = out
		}
	}
	v.faq.Width = width
	v.faq.SetContent(doc)
	b.WriteString(v.faq.View() + "\n\n")

	b.WriteString(ui.AccentStyle.Render("Support chat") + "\n")
	for _, m := range v.chat.Messages() {
		if m.FromBot {
			b.WriteString(ui.InfoStyle.Render("🤖 "+m.Text) + "\n")
		} else {
			b.WriteString(ui.SelectedStyle.Render("You: ") + m.Text + "\n")
		}
	}
	if v.input.Focused() {
		b.WriteString(v.input.View() + "\n")
	}
	return b.String()
}

func rowLabel(label string) string {
	return ui.DimStyle.Width(14).Render(label)
}

func rowLine(label, value string) string {
	return rowLabel(label) + value + "\n"
}
