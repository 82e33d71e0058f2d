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

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/farmquest/internal/learning"
	"github.com/cloud-exit/farmquest/internal/profile"
	"github.com/cloud-exit/farmquest/internal/render"
	"github.com/cloud-exit/farmquest/internal/ui"
)

const notesHeight = 16

var (
	keyComplete = binding("c", "mark complete")
	keyQuiz     = binding("t", "take quiz")
)

type learnView struct {
	profile  *profile.Summary
	md       *render.Markdown
	courses  []learning.Course
	nav      *learning.Navigator
	progress *learning.Progress
	cursor   cursor
	notes    viewport.Model
	status   string
}

func newLearnView(p *profile.Summary, md *render.Markdown) *learnView {
	courses := learning.Catalog()
	return &learnView{
		profile:  p,
		md:       md,
		courses:  courses,
		nav:      learning.NewNavigator(courses),
		progress: learning.NewProgress(),
		notes:    viewport.New(60, notesHeight),
	}
}

func (v *learnView) Init() tea.Cmd { return nil }
func (v *learnView) Editing() bool { return false }

func (v *learnView) Keys() []key.Binding {
	switch v.nav.Depth() {
	case 0:
		return []key.Binding{keyUp, keyDown, keyEnter}
	case 1:
		return []key.Binding{keyUp, keyDown, keyEnter, keyBack}
	}
	return []key.Binding{keyUp, keyDown, keyComplete, keyQuiz, keyBack}
}

func (v *learnView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(km, keyBack) {
		if v.nav.Back() {
			v.cursor = 0
			v.status = ""
		}
		return nil
	}

	switch v.nav.Depth() {
	case 0:
		if v.cursor.move(km, len(v.courses)) {
			return nil
		}
		if key.Matches(km, keyEnter) {
			v.nav.OpenCourse(v.courses[v.cursor].ID)
			v.cursor = 0
		}
	case 1:
		c, _ := v.nav.Course()
		if v.cursor.move(km, len(c.Lessons)) {
			return nil
		}
		if key.Matches(km, keyEnter) && len(c.Lessons) > 0 {
			v.nav.OpenLesson(c.Lessons[v.cursor].ID)
			v.notes.GotoTop()
		}
	case 2:
		l, _ := v.nav.Lesson()
		switch {
		case key.Matches(km, keyComplete):
			if v.progress.Complete(l.ID) {
				v.status = "Lesson marked complete."
			} else {
				v.status = "Lesson already completed."
			}
		case key.Matches(km, keyQuiz) && l.Quiz:
			v.status = fmt.Sprintf("Quiz submitted! Score: %d%%", v.progress.TakeQuiz(l.ID))
		default:
			var cmd tea.Cmd
			v.notes, cmd = v.notes.Update(msg)
			return cmd
		}
	}
	return nil
}

func (v *learnView) View(width int) string {
	switch v.nav.Depth() {
	case 1:
		return v.viewCourse()
	case 2:
		return v.viewLesson(width)
	}
	return v.viewCatalog()
}

func (v *learnView) viewCatalog() string {
	var b strings.Builder
	b.WriteString(heading("Learning Center 📚", "Grow your farming knowledge one lesson at a time"))
	b.WriteString(ui.DimStyle.Render(fmt.Sprintf("%d lessons completed · average quiz score %d%%",
		v.progress.CompletedCount(), v.progress.AverageScore())) + "\n\n")

	if v.profile != nil {
		if rec := learning.Recommended(v.courses, v.profile.KnowledgeLevel); len(rec) > 0 {
			names := make([]string, len(rec))
			for i, c := range rec {
				names[i] = c.Title
			}
			b.WriteString(ui.AccentStyle.Render("Recommended for you: ") + strings.Join(names, ", ") + "\n\n")
		}
	}

	for i, c := range v.courses {
		title := c.Title
		if v.cursor.at(i) {
			title = ui.SelectedStyle.Render(title)
		}
		pct := v.progress.CoursePercent(c)
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", v.cursor.prefix(i), courseGlyph(c.Icon), title, ui.DimStyle.Render(string(c.Level))))
		b.WriteString(fmt.Sprintf("     %s  %s\n", ui.ProgressBar(pct, 20),
			ui.DimStyle.Render(fmt.Sprintf("%d%% · %d lessons · %s", pct, c.LessonCount, c.Duration))))
	}
	return b.String()
}

func (v *learnView) viewCourse() string {
	c, _ := v.nav.Course()
	var b strings.Builder
	b.WriteString(heading(courseGlyph(c.Icon)+" "+c.Title, c.Description))
	b.WriteString(ui.ProgressBar(v.progress.CoursePercent(c), 30) + "\n\n")
	for i, l := range c.Lessons {
		check := "○"
		if v.progress.Done(l.ID) {
			check = ui.SelectedStyle.Render("✓")
		}
		title := l.Title
		if v.cursor.at(i) {
			title = ui.SelectedStyle.Render(title)
		}
		extra := l.Duration
		if l.Video {
			extra += " · video"
		}
		if l.Quiz {
			extra += " · quiz"
		}
		if s, ok := v.progress.Score(l.ID); ok {
			extra += fmt.Sprintf(" · score %d%%", s)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", v.cursor.prefix(i), check, title, ui.DimStyle.Render(extra)))
	}
	return b.String()
}

func (v *learnView) viewLesson(width int) string {
	c, _ := v.nav.Course()
	l, _ := v.nav.Lesson()

	doc := c.Notes(l)
	if v.md != nil {
		if out, err := v.md.Render(doc, width-4); err == nil {
			doc = out
		}
	}
	v.notes.Width = width
	v.notes.SetContent(doc)

	var b strings.Builder
	b.WriteString(v.notes.View() + "\n")
	if v.progress.Done(l.ID) {
		b.WriteString(ui.SelectedStyle.Render("✓ Completed") + "  ")
	}
	if v.status != "" {
		b.WriteString(ui.AccentStyle.Render(v.status))
	}
	return b.String()
}
