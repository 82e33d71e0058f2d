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

package profile

// Option is one selectable answer on an onboarding step.
type Option struct {
	Value string
	Label string
	Desc  string
}

// KnowledgeLevels lists the step 2 answers.
var KnowledgeLevels = []Option{
	{string(KnowledgeBeginner), "Beginner", "Just starting my farming journey"},
	{string(KnowledgeIntermediate), "Intermediate", "Some farming experience and knowledge"},
	{string(KnowledgeAdvanced), "Advanced", "Experienced farmer with deep knowledge"},
}

// Experiences lists the step 3 answers.
var Experiences = []Option{
	{string(ExperienceNew), "New to farming", "Less than 1 year"},
	{string(Experience1to3), "Getting started", "1-3 years of experience"},
	{string(Experience3to10), "Experienced", "3-10 years of experience"},
	{string(Experience10Plus), "Veteran farmer", "More than 10 years"},
}

// AgeRanges lists the step 4 answers.
var AgeRanges = []Option{
	{string(Age18to25), "18-25 years old", ""},
	{string(Age26to35), "26-35 years old", ""},
	{string(Age36to50), "36-50 years old", ""},
	{string(Age50Plus), "50+ years old", ""},
}

// AvatarTypes lists the avatar bodies.
var AvatarTypes = []Option{
	{string(AvatarMale), "Male", ""},
	{string(AvatarFemale), "Female", ""},
	{string(AvatarRobot), "Robot", ""},
}

// SkinTones lists the avatar skin colors.
var SkinTones = []Option{
	{"#FDBCB4", "Light", ""},
	{"#EEA990", "Medium Light", ""},
	{"#CE967C", "Medium", ""},
	{"#B07948", "Medium Dark", ""},
	{"#8D5524", "Dark", ""},
	{"#708090", "Robot Gray", ""},
}

// HairStyles lists the avatar hair tags.
var HairStyles = []Option{
	{"curly", "Curly", ""},
	{"red", "Red", ""},
	{"white", "White", ""},
	{"bald", "Bald", ""},
	{"long-curly", "Long curly", ""},
	{"long-red", "Long red", ""},
	{"long-white", "Long white", ""},
}

// Clothing lists the avatar clothing tags.
var Clothing = []Option{
	{"tshirt", "T-shirt", ""},
	{"shirt", "Shirt & tie", ""},
	{"vest", "Safety vest", ""},
	{"dress", "Dress", ""},
	{"blouse", "Blouse", ""},
	{"labcoat", "Lab coat", ""},
}

// Hats lists the avatar hat tags. The empty value means no hat.
var Hats = []Option{
	{"", "None", ""},
	{"cap", "Cap", ""},
	{"sunhat", "Sun hat", ""},
	{"tophat", "Top hat", ""},
	{"helmet", "Helmet", ""},
	{"crown", "Crown", ""},
}

// Tools lists the avatar tool tags. The empty value means no tool.
var Tools = []Option{
	{"", "None", ""},
	{"seedling", "Seedling", ""},
	{"axe", "Axe", ""},
	{"wrench", "Wrench", ""},
	{"tractor", "Tractor", ""},
	{"hammer", "Hammer & pick", ""},
}

// Specializations lists the step 6 answers.
var Specializations = []Option{
	{string(CropMaster), "Crop Master", "+10% XP from crop habits"},
	{string(WaterGuardian), "Water Guardian", "+10% XP from water habits"},
	{string(SoilScientist), "Soil Scientist", "+10% XP from soil habits"},
	{string(EcoProtector), "Eco Protector", "+10% XP from eco habits"},
}

// LabelFor returns the label of value within opts, or value itself.
func LabelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// IndexOf returns the index of value within opts, or -1.
func IndexOf(opts []Option, value string) int {
	for i, o := range opts {
		if o.Value == value {
			return i
		}
	}
	return -1
}
