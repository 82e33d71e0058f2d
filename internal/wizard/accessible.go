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

package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/onboarding"
	"github.com/cloud-exit/farmquest/internal/profile"
)

// AccessibleOptions configures RunAccessible.
type AccessibleOptions struct {
	In  io.Reader
	Out io.Writer
	Log *zap.Logger
}

// RunAccessible walks the onboarding flow with one huh form per step in
// accessible mode, so every prompt is a plain line of text. It returns the
// completed profile or ErrCancelled.
func RunAccessible(opts AccessibleOptions) (profile.Summary, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	opts.In = newLineReader(in)
	flow := newFlow(log)

	for {
		step := flow.State().Current
		if err := runStep(flow, step, opts); err != nil {
			return profile.Summary{}, err
		}

		if step == onboarding.StepSpecialization {
			sum, ok := flow.Complete()
			if !ok {
				return profile.Summary{}, fmt.Errorf("onboarding step %d incomplete", step)
			}
			return sum, nil
		}
		if step == onboarding.StepAvatar && flow.State().Current != step {
			continue // skipped
		}
		if !flow.Advance() {
			return profile.Summary{}, fmt.Errorf("onboarding step %d incomplete", step)
		}
	}
}

func runStep(flow *onboarding.Flow, step int, opts AccessibleOptions) error {
	title := flow.State().Title()
	switch step {
	case onboarding.StepName:
		var name string
		input := huh.NewInput().
			Title(title).
			Value(&name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name required")
				}
				return nil
			})
		if err := runForm(huh.NewGroup(input), opts); err != nil {
			return err
		}
		flow.SetName(name)

	case onboarding.StepAvatar:
		customize := true
		confirm := huh.NewConfirm().
			Title(title).
			Affirmative("Customize").
			Negative("Skip").
			Value(&customize)
		if err := runForm(huh.NewGroup(confirm), opts); err != nil {
			return err
		}
		if !customize {
			flow.SkipAvatar()
			return nil
		}

		values := make([]string, len(avatarFields))
		fields := make([]huh.Field, len(avatarFields))
		for i, f := range avatarFields {
			fields[i] = selectField(f.label, f.opts, &values[i])
		}
		if err := runForm(huh.NewGroup(fields...), opts); err != nil {
			return err
		}
		flow.EditAvatar(func(a *profile.Avatar) {
			for i, f := range avatarFields {
				f.set(a, values[i])
			}
		})

	default:
		var value string
		if err := runForm(huh.NewGroup(selectField(title, stepOptions(step), &value)), opts); err != nil {
			return err
		}
		choose(flow, value)
	}
	return nil
}

// lineReader hands out at most one line per Read. huh scans every accessible
// prompt with a fresh bufio.Scanner, which would otherwise swallow the
// answers meant for later prompts.
type lineReader struct {
	r       *bufio.Reader
	pending []byte
	err     error
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		if l.err != nil {
			return 0, l.err
		}
		l.pending, l.err = l.r.ReadBytes('\n')
		if len(l.pending) == 0 {
			return 0, l.err
		}
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

func runForm(g *huh.Group, opts AccessibleOptions) error {
	form := huh.NewForm(g).WithAccessible(true).WithInput(opts.In)
	if opts.Out != nil {
		form = form.WithOutput(opts.Out)
	}
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("onboarding form: %w", err)
	}
	return nil
}

func selectField(title string, opts []profile.Option, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(opts)...).
		Value(value)
}

// huhOptions converts catalog options to huh options, appending the
// description to the label when there is one.
func huhOptions(opts []profile.Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		key := o.Label
		if o.Desc != "" {
			key = o.Label + " - " + o.Desc
		}
		out[i] = huh.NewOption(key, o.Value)
	}
	return out
}
