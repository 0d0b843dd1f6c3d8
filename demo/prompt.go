// SPDX-License-Identifier: GPL-2.0-or-later

package demo

import (
	"bufio"
	"context"
	"io"
	"strings"

	"soundstage/conlog"
)

// LinePrompt waits for Enter between scenarios. Other input lines are
// handed to a console executor, so variables can be changed in between.
type LinePrompt struct {
	lines <-chan string
	exec  func(line string)
}

// NewLinePrompt starts reading lines from in. The reader goroutine ends
// with in.
func NewLinePrompt(in io.Reader, exec func(line string)) *LinePrompt {
	lines := make(chan string)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(in)
		for s.Scan() {
			lines <- s.Text()
		}
	}()
	return &LinePrompt{
		lines: lines,
		exec:  exec,
	}
}

// Prompt is a PromptFunc. At the end of the input it no longer waits.
func (p *LinePrompt) Prompt(ctx context.Context, next Scenario) error {
	for {
		conlog.Printf("press Enter to play %s: ", next.Name)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-p.lines:
			if !ok {
				conlog.Printf("\n")
				return nil
			}
			if strings.TrimSpace(l) == "" {
				return nil
			}
			if p.exec != nil {
				p.exec(l)
			}
		}
	}
}
