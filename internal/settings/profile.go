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

package settings

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/profile"
	"github.com/cloud-exit/farmquest/internal/session"
)

// FieldReward is the credit bonus for filling a previously empty field.
const FieldReward = 10

// Field names an editable profile field.
type Field int

const (
	FieldFullName Field = iota
	FieldEmail
	FieldPhone
	FieldLocation
	FieldFarmSize
	FieldFarmType
	FieldBio
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldFullName, FieldEmail, FieldPhone, FieldLocation, FieldFarmSize, FieldFarmType, FieldBio}

var fieldLabels = [...]string{"Full Name", "Email", "Phone", "Location", "Farm Size", "Farm Type", "Bio"}

// Label returns the form label of the field.
func (f Field) Label() string {
	if int(f) < 0 || int(f) >= len(fieldLabels) {
		return ""
	}
	return fieldLabels[f]
}

// ProfileForm holds the farm profile edited in the settings profile page.
type ProfileForm struct {
	sess   *session.Session
	values map[Field]string
}

// NewProfileForm seeds the form. The full name comes from the onboarding
// profile when there is one.
func NewProfileForm(sess *session.Session) *ProfileForm {
	f := &ProfileForm{sess: sess, values: map[Field]string{
		FieldFullName: "John Doe",
		FieldEmail:    "john.doe@farmquest.com",
		FieldPhone:    "+1 (555) 123-4567",
		FieldLocation: "California, USA",
		FieldFarmSize: "50 acres",
		FieldFarmType: "Organic Vegetables",
		FieldBio:      "Passionate about sustainable farming practices and helping fellow farmers grow better crops.",
	}}
	if sess != nil && sess.Profile != nil {
		f.values[FieldFullName] = sess.Profile.DisplayName()
		if sess.Profile.Specialization != "" {
			f.values[FieldFarmType] = profile.LabelFor(profile.Specializations, string(sess.Profile.Specialization))
		}
	}
	return f
}

// Value returns the current value of field.
func (f *ProfileForm) Value(field Field) string { return f.values[field] }

// Update sets field to value. Filling a field that was empty awards
// FieldReward credits through the session; it reports whether it did.
func (f *ProfileForm) Update(field Field, value string) bool {
	was := strings.TrimSpace(f.values[field])
	f.values[field] = value
	if was != "" || strings.TrimSpace(value) == "" {
		return false
	}
	if f.sess != nil {
		f.sess.OnCreditsChange(f.sess.Credits() + FieldReward)
		f.sess.Log.Info("profile field filled", zap.String("field", field.Label()))
	}
	return true
}

// Completion returns the percentage of non-empty fields.
func (f *ProfileForm) Completion() int {
	filled := 0
	for _, field := range Fields {
		if strings.TrimSpace(f.values[field]) != "" {
			filled++
		}
	}
	return filled * 100 / len(Fields)
}
