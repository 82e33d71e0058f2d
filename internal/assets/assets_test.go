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

package assets

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPath(t *testing.T) {
	t.Cleanup(func() { SetBasePath("") })

	tests := []struct {
		prefix string
		want   string
	}{
		{"", "/farmquest-logo.png"},
		{"/farmquest", "/farmquest/farmquest-logo.png"},
		{"https://cdn.example.com/app", "https://cdn.example.com/app/farmquest-logo.png"},
	}
	for _, tt := range tests {
		SetBasePath(tt.prefix)
		if got := Path(Logo); got != tt.want {
			t.Errorf("Path(%q) with prefix %q = %q, want %q", Logo, tt.prefix, got, tt.want)
		}
	}
}

func TestArt(t *testing.T) {
	if !strings.Contains(Art(Logo), "|_|") {
		t.Error("logo art not embedded")
	}
	if Art("/missing.png") != "" {
		t.Error("unknown asset returned art")
	}
}

func TestNames(t *testing.T) {
	want := []string{FarmerAvatar, Logo}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
