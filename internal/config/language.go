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

package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrInvalidLanguage is returned for language codes the app has no
// translation for.
var ErrInvalidLanguage = errors.New("unsupported language")

// Languages are the supported interface languages in menu order.
var Languages = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Hindi,
	language.Chinese,
}

// ParseLanguage validates a language code such as "es" or "zh-Hans" and
// returns the supported tag it names.
func ParseLanguage(code string) (language.Tag, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
	}
	base, _ := tag.Base()
	for _, l := range Languages {
		if b, _ := l.Base(); b == base {
			return l, nil
		}
	}
	return language.Und, fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
}

// LanguageName returns the language's name in that language, e.g. "Español".
func LanguageName(tag language.Tag) string {
	return display.Self.Name(tag)
}
