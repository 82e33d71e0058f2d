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

// Package render turns lesson notes and help pages into styled terminal text
// with glamour. Rendered output is cached per document and width, since views
// re-render on every bubbletea frame.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	cacheSize = 64
	minWidth  = 20
)

type cacheKey struct {
	doc   string
	width int
}

// Markdown renders markdown documents for a given wrap width.
type Markdown struct {
	style     string
	cache     *lru.Cache[cacheKey, string]
	renderers map[int]*glamour.TermRenderer
}

// New returns a renderer using the named glamour standard style ("dark",
// "light" or "notty").
func New(style string) (*Markdown, error) {
	cache, err := lru.New[cacheKey, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}
	return &Markdown{style: style, cache: cache, renderers: map[int]*glamour.TermRenderer{}}, nil
}

// Render returns doc styled and wrapped to width.
func (m *Markdown) Render(doc string, width int) (string, error) {
	if doc == "" {
		return "", nil
	}
	if width < minWidth {
		width = minWidth
	}
	key := cacheKey{doc: doc, width: width}
	if out, ok := m.cache.Get(key); ok {
		return out, nil
	}

	r, ok := m.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		m.renderers[width] = r
	}

	out, err := r.Render(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	m.cache.Add(key, out)
	return out, nil
}

// Cached reports how many rendered documents are held.
func (m *Markdown) Cached() int { return m.cache.Len() }
