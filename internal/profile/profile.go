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

// Package profile holds the farmer profile collected during onboarding: the
// mutable draft each wizard step writes into, and the frozen summary handed
// to the dashboard once onboarding completes.
package profile

import "strings"

// KnowledgeLevel is the self-assessed farming knowledge.
type KnowledgeLevel string

const (
	KnowledgeBeginner     KnowledgeLevel = "beginner"
	KnowledgeIntermediate KnowledgeLevel = "intermediate"
	KnowledgeAdvanced     KnowledgeLevel = "advanced"
)

// Experience is the number of years spent farming.
type Experience string

const (
	ExperienceNew    Experience = "new"
	Experience1to3   Experience = "1-3years"
	Experience3to10  Experience = "3-10years"
	Experience10Plus Experience = "10+years"
)

// AgeRange is the farmer's age bracket.
type AgeRange string

const (
	Age18to25 AgeRange = "18-25"
	Age26to35 AgeRange = "26-35"
	Age36to50 AgeRange = "36-50"
	Age50Plus AgeRange = "50+"
)

// AvatarType selects the avatar body.
type AvatarType string

const (
	AvatarMale   AvatarType = "male"
	AvatarFemale AvatarType = "female"
	AvatarRobot  AvatarType = "robot"
)

// Specialization is the farming specialty picked on the last onboarding step.
type Specialization string

const (
	CropMaster    Specialization = "CropMaster"
	WaterGuardian Specialization = "WaterGuardian"
	SoilScientist Specialization = "SoilScientist"
	EcoProtector  Specialization = "EcoProtector"
)

// Label returns the display name of the specialization.
func (s Specialization) Label() string {
	for _, o := range Specializations {
		if o.Value == string(s) {
			return o.Label
		}
	}
	return string(s)
}

// Avatar describes the farmer's character. Hair, clothing, hat and tool are
// tags from the catalogs in options.go; the presentation layer maps them to
// glyphs.
type Avatar struct {
	Type      AvatarType `yaml:"type"`
	SkinTone  string     `yaml:"skin_tone"`
	HairStyle string     `yaml:"hair_style"`
	Clothing  string     `yaml:"clothing"`
	Hat       string     `yaml:"hat,omitempty"`
	Tool      string     `yaml:"tool,omitempty"`
}

// DefaultAvatar is written into the draft when the avatar step is skipped.
func DefaultAvatar() Avatar {
	return Avatar{
		Type:      AvatarMale,
		SkinTone:  "#FDBCB4",
		HairStyle: "curly",
		Clothing:  "tshirt",
		Hat:       "cap",
		Tool:      "seedling",
	}
}

// Draft is the in-progress profile. Every field stays empty until the
// onboarding step that owns it has been filled in.
type Draft struct {
	Name              string
	KnowledgeLevel    KnowledgeLevel
	FarmingExperience Experience
	AgeRange          AgeRange
	Avatar            Avatar
	Specialization    Specialization
}

// Starting values granted to every new farmer.
const (
	StartLevel      = 1
	StartXP         = 100
	StartCredits    = 100
	StartPopularity = 100
)

// StartAchievements are awarded on completing onboarding.
var StartAchievements = []string{"Nature Conscious", "Farm Starter", "Green Thumb Beginner"}

// Summary is the frozen profile produced when onboarding completes.
type Summary struct {
	Name              string         `yaml:"name"`
	KnowledgeLevel    KnowledgeLevel `yaml:"knowledge_level"`
	FarmingExperience Experience     `yaml:"farming_experience"`
	AgeRange          AgeRange       `yaml:"age_range"`
	Avatar            Avatar         `yaml:"avatar"`
	Specialization    Specialization `yaml:"specialization"`
	Level             int            `yaml:"level"`
	XP                int            `yaml:"xp"`
	Credits           int            `yaml:"credits"`
	Popularity        int            `yaml:"popularity"`
	Achievements      []string       `yaml:"achievements"`
}

// Freeze copies the draft into a Summary with the starting stats. The
// returned value shares no memory with the draft.
func (d Draft) Freeze() Summary {
	achievements := make([]string, len(StartAchievements))
	copy(achievements, StartAchievements)
	return Summary{
		Name:              strings.TrimSpace(d.Name),
		KnowledgeLevel:    d.KnowledgeLevel,
		FarmingExperience: d.FarmingExperience,
		AgeRange:          d.AgeRange,
		Avatar:            d.Avatar,
		Specialization:    d.Specialization,
		Level:             StartLevel,
		XP:                StartXP,
		Credits:           StartCredits,
		Popularity:        StartPopularity,
		Achievements:      achievements,
	}
}

// FirstName returns the first word of the name, or "Farmer" when unnamed.
func (s *Summary) FirstName() string {
	if s == nil {
		return "Farmer"
	}
	fields := strings.Fields(s.Name)
	if len(fields) == 0 {
		return "Farmer"
	}
	return fields[0]
}

// DisplayName returns the full name, or "Farmer" when unnamed.
func (s *Summary) DisplayName() string {
	if s == nil || strings.TrimSpace(s.Name) == "" {
		return "Farmer"
	}
	return strings.TrimSpace(s.Name)
}
