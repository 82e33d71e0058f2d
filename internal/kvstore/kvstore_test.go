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

package kvstore

import (
	"errors"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func putAll(t *testing.T, s *Store, kvs ...string) {
	t.Helper()
	for i := 0; i+1 < len(kvs); i += 2 {
		if err := s.Put([]byte(kvs[i]), []byte(kvs[i+1])); err != nil {
			t.Fatalf("Put(%s): %v", kvs[i], err)
		}
	}
}

func TestPutAndGet(t *testing.T) {
	s := openTestStore(t)
	putAll(t, s, "k1", "v1")

	got, err := s.Get([]byte("k1"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("Get = %q, want %q", got, "v1")
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get([]byte("missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	putAll(t, s, "del", "val")

	if err := s.Delete([]byte("del")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get([]byte("del")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestScanPrefix(t *testing.T) {
	s := openTestStore(t)
	putAll(t, s,
		"msg:1:001", "a",
		"msg:1:002", "b",
		"msg:2:001", "c",
		"other:key", "d",
	)

	var keys []string
	err := s.Scan([]byte("msg:1:"), func(key, _ []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(keys) != 2 || keys[0] != "msg:1:001" || keys[1] != "msg:1:002" {
		t.Errorf("Scan(msg:1:) = %v", keys)
	}

	n, err := s.Count([]byte("msg:"))
	if err != nil || n != 3 {
		t.Errorf("Count(msg:) = %d, %v; want 3", n, err)
	}
}

func TestScanStopsOnError(t *testing.T) {
	s := openTestStore(t)
	putAll(t, s, "a", "1", "b", "2")

	stopErr := errors.New("stop")
	var count int
	err := s.Scan(nil, func(_, _ []byte) error {
		count++
		return stopErr
	})
	if !errors.Is(err, stopErr) {
		t.Errorf("Scan error = %v, want stopErr", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 (should stop after first)", count)
	}
}

func TestLatest(t *testing.T) {
	s := openTestStore(t)
	for i := 1; i <= 5; i++ {
		putAll(t, s, fmt.Sprintf("msg:7:%03d", i), fmt.Sprintf("m%d", i))
	}
	putAll(t, s, "msg:8:001", "other")

	got, err := s.Latest([]byte("msg:7:"), 3)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	want := []string{"m5", "m4", "m3"}
	if len(got) != len(want) {
		t.Fatalf("Latest returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("Latest[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClosed(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Put([]byte("k"), []byte("v")); !errors.Is(err, ErrClosed) {
		t.Errorf("Put after Close = %v, want ErrClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func TestDropPrefix(t *testing.T) {
	s := openTestStore(t)
	putAll(t, s, "msg:1", "a", "msg:2", "b", "cfg:lang", "en")

	if err := s.DropPrefix([]byte("msg:")); err != nil {
		t.Fatalf("DropPrefix: %v", err)
	}
	if n, _ := s.Count([]byte("msg:")); n != 0 {
		t.Errorf("%d msg keys left", n)
	}
	if _, err := s.Get([]byte("cfg:lang")); err != nil {
		t.Errorf("unrelated key dropped: %v", err)
	}
}
