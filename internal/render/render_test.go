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

package render

import (
	"strings"
	"testing"
)

func TestMarkdown_RenderAndCache(t *testing.T) {
	m, err := New("notty")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	doc := "# Drip Irrigation\n\n- Water at the roots\n- Save up to 50% water\n"
	out, err := m.Render(doc, 60)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Drip Irrigation") || !strings.Contains(out, "Water at the roots") {
		t.Errorf("rendered output missing content:\n%s", out)
	}

	again, err := m.Render(doc, 60)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if again != out || m.Cached() != 1 {
		t.Errorf("second render not served from cache (cached=%d)", m.Cached())
	}

	if _, err := m.Render(doc, 40); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if m.Cached() != 2 {
		t.Errorf("Cached() = %d, want 2 after a new width", m.Cached())
	}
}

func TestMarkdown_Empty(t *testing.T) {
	m, err := New("notty")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := m.Render("", 80)
	if err != nil || out != "" {
		t.Errorf("Render(\"\") = %q, %v", out, err)
	}
	if m.Cached() != 0 {
		t.Error("empty document should not be cached")
	}
}
