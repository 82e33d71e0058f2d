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

// Package learning holds the course catalog, the farmer's lesson progress and
// the two-level course/lesson navigation of the learn tab.
package learning

import (
	"fmt"
	"strings"

	"github.com/cloud-exit/farmquest/internal/profile"
)

// Icon is the closed set of course icons.
type Icon int

const (
	IconDroplets Icon = iota
	IconSprout
	IconSun
	IconShield
)

// Level is the difficulty band of a course.
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// Lesson is one unit of a course.
type Lesson struct {
	ID       string
	Title    string
	Duration string
	Video    bool
	Quiz     bool
}

// Course groups lessons under a topic. LessonCount and Duration describe the
// full course; Lessons holds the ones published so far.
type Course struct {
	ID          string
	Title       string
	Description string
	Icon        Icon
	Level       Level
	LessonCount int
	Duration    string
	Lessons     []Lesson
	KeyPoints   []string
}

// Lesson looks a lesson up by id.
func (c Course) Lesson(id string) (Lesson, bool) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// Notes renders the markdown notes for lesson l of the course.
func (c Course) Notes(l Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", l.Title)
	fmt.Fprintf(&b, "_%s · %s_\n\n", c.Title, l.Duration)
	b.WriteString("## Key learning points\n\n")
	for _, p := range c.KeyPoints {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString("\n## Practical applications\n\n")
	fmt.Fprintf(&b, "This lesson covers %s principles you can apply to your farm right away. ", strings.ToLower(l.Title))
	b.WriteString("Assess what you do today, then pick one improvement to try this week.\n")
	if l.Quiz {
		b.WriteString("\n> This lesson ends with a short quiz.\n")
	}
	return b.String()
}

// Catalog returns every course.
func Catalog() []Course {
	return []Course{
		{
			ID: "water-management", Title: "Water Management & Conservation",
			Description: "Learn sustainable water practices for your farm",
			Icon:        IconDroplets, Level: Beginner, LessonCount: 8, Duration: "2h 30m",
			Lessons: []Lesson{
				{"water-basics-1", "Introduction to Water Conservation", "15 min", true, true},
				{"water-basics-2", "Drip Irrigation Systems", "20 min", true, true},
				{"water-basics-3", "Rainwater Harvesting", "18 min", true, false},
			},
			KeyPoints: []string{
				"Understanding the importance of water conservation in sustainable farming",
				"Identifying water waste sources on your farm",
				"Implementing basic water-saving techniques",
				"Monitoring and measuring water usage effectively",
			},
		},
		{
			ID: "soil-health", Title: "Soil Health & Fertility",
			Description: "Master soil management for sustainable farming",
			Icon:        IconSprout, Level: Intermediate, LessonCount: 12, Duration: "4h 15m",
			Lessons: []Lesson{
				{"soil-intro-1", "Understanding Soil Composition", "22 min", true, true},
				{"soil-intro-2", "pH Testing and Management", "25 min", true, true},
				{"soil-intro-3", "Organic Matter and Composting", "30 min", true, true},
			},
			KeyPoints: []string{
				"Reading soil texture and structure",
				"Testing and correcting soil pH",
				"Building organic matter with compost and cover crops",
			},
		},
		{
			ID: "crop-rotation", Title: "Crop Rotation & Planning",
			Description: "Optimize your crop cycles for maximum yield",
			Icon:        IconSun, Level: Advanced, LessonCount: 10, Duration: "3h 45m",
			Lessons: []Lesson{
				{"crop-rotation-1", "Principles of Crop Rotation", "28 min", true, true},
				{"crop-rotation-2", "Nitrogen-Fixing Crops", "24 min", true, true},
			},
			KeyPoints: []string{
				"Grouping crops into families",
				"Breaking pest and disease cycles",
				"Using legumes to restore nitrogen",
			},
		},
		{
			ID: "pest-management", Title: "Integrated Pest Management",
			Description: "Sustainable approaches to pest control",
			Icon:        IconShield, Level: Intermediate, LessonCount: 9, Duration: "3h 20m",
			Lessons: []Lesson{
				{"pest-intro-1", "IPM Fundamentals", "20 min", true, true},
				{"pest-intro-2", "Beneficial Insects", "25 min", true, false},
			},
			KeyPoints: []string{
				"Monitoring before treating",
				"Encouraging beneficial insects",
				"Choosing the least disruptive control",
			},
		},
	}
}

// Recommended returns up to two courses suited to the knowledge level:
// beginners get beginner courses, intermediates anything but advanced, and
// advanced farmers any course.
func Recommended(courses []Course, k profile.KnowledgeLevel) []Course {
	var out []Course
	for _, c := range courses {
		ok := false
		switch k {
		case profile.KnowledgeBeginner:
			ok = c.Level == Beginner
		case profile.KnowledgeIntermediate:
			ok = c.Level != Advanced
		case profile.KnowledgeAdvanced:
			ok = true
		}
		if ok {
			out = append(out, c)
		}
		if len(out) == 2 {
			break
		}
	}
	return out
}
