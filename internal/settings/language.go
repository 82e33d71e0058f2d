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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cloud-exit/farmquest/internal/config"
)

// Language is the interface language preference.
type Language struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLanguage returns the preference for code, falling back to English when
// code is not supported.
func NewLanguage(code string) *Language {
	l := &Language{}
	if err := l.Set(code); err != nil {
		l.set(language.English)
	}
	return l
}

// Set changes the language. Unsupported codes return an error wrapping
// config.ErrInvalidLanguage and leave the preference unchanged.
func (l *Language) Set(code string) error {
	tag, err := config.ParseLanguage(code)
	if err != nil {
		return err
	}
	l.set(tag)
	return nil
}

func (l *Language) set(tag language.Tag) {
	l.tag = tag
	l.printer = message.NewPrinter(tag)
}

// Code returns the short language code, e.g. "es".
func (l *Language) Code() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Name returns the language's own name.
func (l *Language) Name() string { return config.LanguageName(l.tag) }

// Number formats n with the language's digit grouping, e.g. 1,250.
func (l *Language) Number(n int) string {
	return l.printer.Sprintf("%d", n)
}
