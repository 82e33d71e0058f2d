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

// Package clock provides scoped tickers for bubbletea models. A Ticker is
// started when the view that owns it mounts and stopped when it unmounts;
// once stopped, its pending wait command returns nil and no goroutine is
// left behind.
package clock

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered on every tick of the named ticker.
type TickMsg struct {
	Name string
	At   time.Time
}

// Ticker wraps a time.Ticker whose ticks are read by tea commands.
type Ticker struct {
	name  string
	every time.Duration

	mu     sync.Mutex
	ticker *time.Ticker
	stop   chan struct{}
}

// New returns a stopped ticker.
func New(name string, every time.Duration) *Ticker {
	return &Ticker{name: name, every: every}
}

// Name returns the ticker's name, as found in its TickMsg values.
func (t *Ticker) Name() string { return t.name }

// Running reports whether the ticker has been started and not stopped.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticker != nil
}

// Start starts the ticker and returns the command that waits for the first
// tick. Starting a running ticker only returns a new wait command.
func (t *Ticker) Start() tea.Cmd {
	t.mu.Lock()
	if t.ticker == nil {
		t.ticker = time.NewTicker(t.every)
		t.stop = make(chan struct{})
	}
	t.mu.Unlock()
	return t.Wait()
}

// Wait returns a command that blocks until the next tick. It must be
// re-issued after each TickMsg. The command returns nil when the ticker is
// stopped, and Wait itself returns nil for a ticker that is not running.
func (t *Ticker) Wait() tea.Cmd {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ticker == nil {
		return nil
	}
	c, stop, name := t.ticker.C, t.stop, t.name
	return func() tea.Msg {
		select {
		case at := <-c:
			return TickMsg{Name: name, At: at}
		case <-stop:
			return nil
		}
	}
}

// Stop stops the ticker and releases any pending wait. It is safe to call
// more than once.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	close(t.stop)
	t.ticker = nil
	t.stop = nil
}
