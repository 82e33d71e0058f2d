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

package learning

// QuizScore is the score recorded when a quiz is taken.
const QuizScore = 85

// Progress is the set of completed lessons and the latest quiz score per
// lesson.
type Progress struct {
	completed map[string]bool
	order     []string
	scores    map[string]int
}

// NewProgress returns the progress every farmer starts with.
func NewProgress() *Progress {
	p := &Progress{
		completed: map[string]bool{},
		scores: map[string]int{
			"water-basics-1":  85,
			"soil-intro-1":    92,
			"crop-rotation-1": 78,
		},
	}
	for _, id := range []string{"water-basics-1", "soil-intro-1", "crop-rotation-1"} {
		p.Complete(id)
	}
	return p
}

// Complete marks a lesson as done. Completing it again changes nothing.
func (p *Progress) Complete(id string) bool {
	if p.completed[id] {
		return false
	}
	p.completed[id] = true
	p.order = append(p.order, id)
	return true
}

// Done reports whether a lesson is complete.
func (p *Progress) Done(id string) bool { return p.completed[id] }

// TakeQuiz records QuizScore for the lesson and completes it.
func (p *Progress) TakeQuiz(id string) int {
	p.scores[id] = QuizScore
	p.Complete(id)
	return QuizScore
}

// Score returns the quiz score for a lesson.
func (p *Progress) Score(id string) (int, bool) {
	s, ok := p.scores[id]
	return s, ok
}

// CompletedCount returns the number of completed lessons.
func (p *Progress) CompletedCount() int { return len(p.order) }

// CoursePercent returns the share of the course's published lessons that are
// complete, as a whole percentage.
func (p *Progress) CoursePercent(c Course) int {
	if len(c.Lessons) == 0 {
		return 0
	}
	done := 0
	for _, l := range c.Lessons {
		if p.completed[l.ID] {
			done++
		}
	}
	return done * 100 / len(c.Lessons)
}

// AverageScore returns the mean quiz score, or 0 with no quizzes taken.
func (p *Progress) AverageScore() int {
	if len(p.scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range p.scores {
		total += s
	}
	return total / len(p.scores)
}
