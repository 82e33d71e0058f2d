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

// Package records implements the list mutations shared by every dashboard
// feature: id assignment, append, remove and map-and-replace. Each operation
// returns a fresh slice and never modifies its input.
package records

// Record is an element of a feature list, identified by an id that is unique
// within that list.
type Record interface {
	RecordID() int
}

// NextID returns max(existing ids, 0) + 1.
func NextID[T Record](list []T) int {
	highest := 0
	for _, r := range list {
		if id := r.RecordID(); id > highest {
			highest = id
		}
	}
	return highest + 1
}

// Append builds a record with the next free id and returns the list with
// the record added at the end.
func Append[T Record](list []T, build func(id int) T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, build(NextID(list)))
}

// Remove returns the list without the record whose id matches. The returned
// list has the same contents as the input when no record matches.
func Remove[T Record](list []T, id int) []T {
	out := make([]T, 0, len(list))
	for _, r := range list {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	return out
}

// Replace returns the list with fn applied to the record whose id matches.
func Replace[T Record](list []T, id int, fn func(T) T) []T {
	out := make([]T, len(list))
	for i, r := range list {
		if r.RecordID() == id {
			r = fn(r)
		}
		out[i] = r
	}
	return out
}

// Find returns the record with the given id.
func Find[T Record](list []T, id int) (T, bool) {
	for _, r := range list {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Union appends s to set unless it is already present.
func Union(set []string, s string) []string {
	for _, v := range set {
		if v == s {
			return set
		}
	}
	out := make([]string, len(set), len(set)+1)
	copy(out, set)
	return append(out, s)
}
