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

// Navigator is the learn tab's back stack: nothing selected shows the
// catalog, a course shows its lessons and a lesson shows its notes. It never
// holds more than those two levels.
type Navigator struct {
	courses []Course
	course  string
	lesson  string
}

// NewNavigator returns a navigator at the catalog.
func NewNavigator(courses []Course) *Navigator {
	return &Navigator{courses: courses}
}

// Depth returns 0 at the catalog, 1 inside a course and 2 inside a lesson.
func (n *Navigator) Depth() int {
	switch {
	case n.lesson != "":
		return 2
	case n.course != "":
		return 1
	}
	return 0
}

// Course returns the open course.
func (n *Navigator) Course() (Course, bool) {
	for _, c := range n.courses {
		if c.ID == n.course {
			return c, true
		}
	}
	return Course{}, false
}

// Lesson returns the open lesson.
func (n *Navigator) Lesson() (Lesson, bool) {
	c, ok := n.Course()
	if !ok || n.lesson == "" {
		return Lesson{}, false
	}
	return c.Lesson(n.lesson)
}

// OpenCourse selects a course from the catalog. Unknown ids are ignored.
func (n *Navigator) OpenCourse(id string) bool {
	for _, c := range n.courses {
		if c.ID == id {
			n.course = id
			n.lesson = ""
			return true
		}
	}
	return false
}

// OpenLesson selects a lesson of the open course. It does nothing at the
// catalog or for lessons outside the course.
func (n *Navigator) OpenLesson(id string) bool {
	c, ok := n.Course()
	if !ok {
		return false
	}
	if _, ok := c.Lesson(id); !ok {
		return false
	}
	n.lesson = id
	return true
}

// Back pops one level. It reports false at the catalog.
func (n *Navigator) Back() bool {
	switch {
	case n.lesson != "":
		n.lesson = ""
	case n.course != "":
		n.course = ""
	default:
		return false
	}
	return true
}
