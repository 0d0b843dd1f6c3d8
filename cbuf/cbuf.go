// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf buffers console text and runs it one command at a time.
package cbuf

import (
	"strings"
)

type CommandBuffer struct {
	buf string
	// set by the wait command, causing the following commands to be executed
	// on the next call to Execute
	wait      bool
	executors executors
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

// Execute runs commands until the buffer is empty or a wait command is seen.
func (c *CommandBuffer) Execute() error {
	for len(c.buf) != 0 {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(c.buf); i++ {
			switch c.buf[i] {
			case '"':
				quote = !quote
			case ';':
				if !quote {
					break LineLoop
				}
			case '\n':
				break LineLoop
			}
		}
		// do not put ';' or '\n' in line
		line := c.buf[:i]
		// but remove this char as well
		if i < len(c.buf) {
			i++
		}
		c.buf = c.buf[i:]

		if strings.TrimSpace(line) == "wait" {
			c.wait = true
		} else if err := c.executors.execute(c, line); err != nil {
			return err
		}
		if c.wait {
			c.wait = false
			return nil
		}
	}
	return nil
}

// ExecuteAll runs commands until the buffer is empty, ignoring waits.
func (c *CommandBuffer) ExecuteAll() error {
	for len(c.buf) != 0 {
		if err := c.Execute(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CommandBuffer) AddText(text string) {
	c.buf += text
}

func (c *CommandBuffer) InsertText(text string) {
	c.buf = text + "\n" + c.buf
}

func (c *CommandBuffer) Empty() bool {
	return len(c.buf) == 0
}
