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

// Package settings implements the settings tab: a one-level menu of
// sections, the editable farm profile, language choice and help.
package settings

// Section is a settings page.
type Section int

const (
	SectionNone Section = iota
	SectionProfile
	SectionAccounts
	SectionLanguage
	SectionHelp
)

// MenuItem describes one entry of the settings menu.
type MenuItem struct {
	Section     Section
	Title       string
	Description string
}

// MenuItems lists the sections in menu order.
var MenuItems = []MenuItem{
	{SectionProfile, "Profile", "Manage your personal information and farming details"},
	{SectionAccounts, "Accounts", "Language preferences and account settings"},
	{SectionLanguage, "Language", "Change your preferred language"},
	{SectionHelp, "Help", "Get support through FAQs, docs, and chat"},
}

// Menu tracks the open section. SectionNone shows the menu itself.
type Menu struct {
	active Section
}

// Active returns the open section.
func (m *Menu) Active() Section { return m.active }

// Open shows section s. Unknown sections are ignored.
func (m *Menu) Open(s Section) {
	if s < SectionProfile || s > SectionHelp {
		return
	}
	m.active = s
}

// Back returns to the menu. It reports false when already there.
func (m *Menu) Back() bool {
	if m.active == SectionNone {
		return false
	}
	m.active = SectionNone
	return true
}
