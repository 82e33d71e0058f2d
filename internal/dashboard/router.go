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

// Tab identifies a dashboard view. The zero value and any id without a
// mapping resolve to TabOverview.
type Tab string

const (
	TabOverview     Tab = "overview"
	TabHabits       Tab = "habits"
	TabLearn        Tab = "learn"
	TabQuests       Tab = "quests"
	TabChallenges   Tab = "challenges"
	TabCommunity    Tab = "community"
	TabLeaderboard  Tab = "leaderboard"
	TabAchievements Tab = "achievements"
	TabCalendar     Tab = "calendar"
	TabInventory    Tab = "inventory"
	TabShop         Tab = "shop"
	TabSettings     Tab = "settings"
)

// Tabs lists the tabs in sidebar order.
var Tabs = []Tab{
	TabOverview, TabHabits, TabLearn, TabQuests, TabChallenges, TabCommunity,
	TabLeaderboard, TabAchievements, TabCalendar, TabInventory, TabShop, TabSettings,
}

var tabLabels = map[Tab]string{
	TabOverview:     "Dashboard",
	TabHabits:       "My Habits",
	TabLearn:        "Learn",
	TabQuests:       "Quests",
	TabChallenges:   "Challenges",
	TabCommunity:    "Community",
	TabLeaderboard:  "Leaderboard",
	TabAchievements: "Achievements",
	TabCalendar:     "Calendar",
	TabInventory:    "Inventory",
	TabShop:         "Shop",
	TabSettings:     "Settings",
}

// Label returns the sidebar label of the resolved tab.
func (t Tab) Label() string { return tabLabels[Resolve(t)] }

// Resolve maps t to a tab with a view, falling back to TabOverview.
func Resolve(t Tab) Tab {
	if _, ok := builders[t]; ok {
		return t
	}
	return TabOverview
}

// Router holds the selected tab. Every tab is always reachable.
type Router struct {
	selected Tab
}

// Select sets the selected tab unconditionally.
func (r *Router) Select(t Tab) { r.selected = t }

// Selected returns the tab as selected, which may be unmapped.
func (r *Router) Selected() Tab { return r.selected }

// Current returns the tab whose view is shown.
func (r *Router) Current() Tab { return Resolve(r.selected) }

// Next selects the tab delta places from the current one in sidebar order,
// wrapping around.
func (r *Router) Next(delta int) {
	cur := r.Current()
	for i, t := range Tabs {
		if t == cur {
			n := len(Tabs)
			r.selected = Tabs[((i+delta)%n+n)%n]
			return
		}
	}
}

// builders maps each tab to the constructor of its view. Each constructor
// takes only what its view needs from the shared environment.
var builders map[Tab]func(e *env) view

func init() {
	builders = map[Tab]func(e *env) view{
		TabOverview:     func(e *env) view { return newOverview(e.sess, e.habits, e.now) },
		TabHabits:       func(e *env) view { return newHabitsView(e.habits) },
		TabLearn:        func(e *env) view { return newLearnView(e.sess.Profile, e.md) },
		TabQuests:       func(e *env) view { return newQuestsView(e.sess) },
		TabChallenges:   func(e *env) view { return newChallengesView(e.sess) },
		TabCommunity:    func(e *env) view { return newCommunityView(e.sess, e.messages, e.lang) },
		TabLeaderboard:  func(e *env) view { return newLeaderboardView(e.sess) },
		TabAchievements: func(e *env) view { return newAchievementsView() },
		TabCalendar:     func(e *env) view { return newCalendarView(e.now) },
		TabInventory:    func(e *env) view { return newPlaceholder(TabInventory, "Your inventory items will appear here.") },
		TabShop:         func(e *env) view { return newPlaceholder(TabShop, "Shop for new items and upgrades here.") },
		TabSettings:     func(e *env) view { return newSettingsView(e.sess, e.lang, e.md) },
	}
}
