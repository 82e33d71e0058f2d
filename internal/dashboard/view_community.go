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
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/farmquest/internal/community"
	"github.com/cloud-exit/farmquest/internal/session"
	"github.com/cloud-exit/farmquest/internal/settings"
	"github.com/cloud-exit/farmquest/internal/ui"
)

// threadLimit caps the messages shown under a member.
const threadLimit = 5

var (
	keySearch = binding("/", "search")
	keyGift   = binding("g", "gift")
	keyMsg    = binding("m", "message")
	keyFriend = binding("f", "add friend")
)

type communityView struct {
	sess   *session.Session
	comm   *community.Community
	lang   *settings.Language
	tab    community.Tab
	search textinput.Model
	cursor cursor

	member int // open member id, 0 for the list
	gift   *form
	note   *form
	status string
}

func newCommunityView(sess *session.Session, messages *community.MessageLog, lang *settings.Language) *communityView {
	ti := textinput.New()
	ti.Placeholder = "Search farmers..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 40
	return &communityView{
		sess:   sess,
		comm:   community.New(sess, messages),
		lang:   lang,
		search: ti,
	}
}

func (v *communityView) Init() tea.Cmd { return nil }

func (v *communityView) Editing() bool {
	return v.search.Focused() || v.gift != nil || v.note != nil
}

func (v *communityView) Keys() []key.Binding {
	switch {
	case v.gift != nil, v.note != nil:
		return formKeys
	case v.search.Focused():
		return []key.Binding{binding("enter", "done"), keyBack}
	case v.member != 0:
		return []key.Binding{keyGift, keyMsg, keyFriend, keyBack}
	}
	return []key.Binding{keyUp, keyDown, keyLeft, keyRight, keySearch, keyEnter}
}

func (v *communityView) visible() []community.Member {
	return v.comm.Filter(v.tab, v.search.Value())
}

func (v *communityView) Update(msg tea.Msg) tea.Cmd {
	switch {
	case v.gift != nil:
		return v.updateGift(msg)
	case v.note != nil:
		return v.updateNote(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.search.Focused() {
		switch km.String() {
		case "enter":
			v.search.Blur()
		case "esc":
			v.search.SetValue("")
			v.search.Blur()
		default:
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			v.cursor = 0
			return cmd
		}
		return nil
	}

	if v.member != 0 {
		switch {
		case key.Matches(km, keyBack):
			v.member = 0
			v.status = ""
			v.cursor.clamp(len(v.visible()))
		case key.Matches(km, keyGift):
			v.gift = newForm("Send Credits", textField("Amount", "e.g. 50", ""))
		case key.Matches(km, keyMsg):
			v.note = newForm("Send Message", textField("Message", "Say hello...", ""))
		case key.Matches(km, keyFriend):
			v.comm.AddFriend(v.member)
			v.cursor.clamp(len(v.visible()))
			v.status = "Friend added!"
		}
		return nil
	}

	list := v.visible()
	v.cursor.clamp(len(list))
	if v.cursor.move(km, len(list)) {
		return nil
	}
	switch {
	case key.Matches(km, keyLeft), key.Matches(km, keyRight):
		v.tab = 1 - v.tab
		v.cursor = 0
	case key.Matches(km, keySearch):
		return v.search.Focus()
	case key.Matches(km, keyEnter) && len(list) > 0:
		v.member = list[v.cursor].ID
		v.status = ""
	}
	return nil
}

func (v *communityView) giftAmount() int {
	n, err := strconv.Atoi(strings.TrimSpace(v.gift.value(0)))
	if err != nil {
		return 0
	}
	return n
}

func (v *communityView) updateGift(msg tea.Msg) tea.Cmd {
	res, cmd := v.gift.update(msg)
	switch res {
	case formCancelled:
		v.gift = nil
	case formSubmitted:
		amount := v.giftAmount()
		if v.comm.Gift(v.member, amount) {
			v.status = fmt.Sprintf("Sent %s credits! +%d popularity", v.lang.Number(amount), amount/10)
			v.gift = nil
		}
	}
	return cmd
}

func (v *communityView) updateNote(msg tea.Msg) tea.Cmd {
	res, cmd := v.note.update(msg)
	switch res {
	case formCancelled:
		v.note = nil
	case formSubmitted:
		_, sent, err := v.comm.SendMessage(v.member, v.note.value(0))
		switch {
		case err != nil:
			v.status = "Could not send message: " + err.Error()
			v.note = nil
		case sent:
			v.status = fmt.Sprintf("Message sent! +%d popularity", community.MessagePopularity)
			v.note = nil
		}
	}
	return cmd
}

func (v *communityView) View(width int) string {
	var b strings.Builder
	b.WriteString(heading("Farming Community "+glyphUsers, "Connect with fellow farmers, share gifts and knowledge"))

	if v.member != 0 {
		if m, ok := v.comm.Get(v.member); ok {
			b.WriteString(v.memberView(m))
			return b.String()
		}
	}

	b.WriteString(tabs([]string{
		fmt.Sprintf("Friends (%d)", v.comm.Count(community.TabFriends)),
		fmt.Sprintf("Discover (%d)", v.comm.Count(community.TabDiscover)),
	}, int(v.tab)))
	b.WriteString(v.search.View() + "\n\n")

	list := v.visible()
	if len(list) == 0 {
		b.WriteString(ui.DimStyle.Render("No farmers found.") + "\n")
	}
	for i, m := range list {
		name := m.Name
		if v.cursor.at(i) {
			name = ui.SelectedStyle.Render(name)
		}
		status := ui.DimStyle.Render("○ offline")
		if m.Online {
			status = ui.SelectedStyle.Render("● online")
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", v.cursor.prefix(i), name, ui.DimStyle.Render(fmt.Sprintf("Lv %d", m.Level)), status))
		b.WriteString(ui.DimStyle.Render(fmt.Sprintf("    %s · %s · %s %s", m.Specialization, m.Location, glyphHeart, v.lang.Number(m.Popularity))) + "\n")
	}
	return b.String()
}

func (v *communityView) memberView(m community.Member) string {
	var b strings.Builder
	b.WriteString(ui.AccentStyle.Render(m.Name) + ui.DimStyle.Render(fmt.Sprintf("  Level %d %s", m.Level, m.Specialization)) + "\n")
	b.WriteString(ui.DimStyle.Render(fmt.Sprintf("%s · joined %s", m.Location, m.Joined.Format("January 2006"))) + "\n\n")
	b.WriteString(rowLine("Popularity", v.lang.Number(m.Popularity)))
	b.WriteString(rowLine("Credits", v.lang.Number(m.Credits)))
	b.WriteString(rowLine("Habits done", v.lang.Number(m.Stats.HabitsCompleted)))
	b.WriteString(rowLine("Challenges", v.lang.Number(m.Stats.ChallengesWon)))
	b.WriteString(rowLine("Gifts given", v.lang.Number(m.Stats.GiftsGiven)))
	if len(m.Badges) > 0 {
		b.WriteString(rowLine("Badges", strings.Join(m.Badges, ", ")))
	}
	if m.Friend {
		b.WriteString(ui.SelectedStyle.Render("✓ Friend") + "\n")
	}

	thread, err := v.comm.Latest(m.ID, threadLimit)
	if err != nil {
		b.WriteString(ui.DangerStyle.Render("Could not load messages: "+err.Error()) + "\n")
	} else if len(thread) > 0 {
		b.WriteString("\n" + ui.AccentStyle.Render("Your messages") + "\n")
		for _, msg := range thread {
			b.WriteString(ui.DimStyle.Render(msg.SentAt.Format("15:04")) + "  " + msg.Text + "\n")
		}
	}

	switch {
	case v.gift != nil:
		b.WriteString("\n" + ui.DimStyle.Render("Your credits: "+v.lang.Number(v.sess.Credits())) + "\n")
		b.WriteString(v.gift.view(v.comm.CanGift(v.giftAmount())))
	case v.note != nil:
		b.WriteString("\n" + v.note.view(strings.TrimSpace(v.note.value(0)) != ""))
	}
	if v.status != "" {
		b.WriteString("\n" + ui.AccentStyle.Render(v.status))
	}
	return b.String()
}
