// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"strconv"
	"strings"
	"unicode"
)

type QArg struct {
	a string
}

func (a QArg) String() string {
	return a.a
}

func (a QArg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a QArg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a QArg) Bool() bool {
	switch strings.ToLower(a.a) {
	case "1", "t", "true", "on", "yes":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []QArg
	// the trimmed input
	full string
}

func (c *Arguments) Argv(i int) QArg {
	if i < 0 || i >= len(c.args) {
		return QArg{""}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []QArg {
	return c.args
}

// ArgumentString returns everything after the command name, without
// surrounding quotes.
func (c *Arguments) ArgumentString() string {
	// args[0] is the cmd
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a single command line into arguments. Double quotes group
// words, // starts a comment which runs to the end of the line.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []QArg{}

	in := args.full
	for len(in) > 0 {
		switch {
		case in[0] == '\n' || in[0] == '\r':
			return
		case in[0] <= ' ':
			// any other control character separates arguments like a space
			in = in[1:]
		case strings.HasPrefix(in, "//"):
			return
		case in[0] == '"':
			end := strings.IndexAny(in[1:], "\"\n")
			if end < 0 || in[1+end] == '\n' {
				// unterminated, take the rest of the line
				end = strings.IndexAny(in[1:], "\n")
				if end < 0 {
					end = len(in) - 1
				}
				args.args = append(args.args, QArg{in[1 : 1+end]})
				return
			}
			args.args = append(args.args, QArg{in[1 : 1+end]})
			in = in[2+end:]
		default:
			end := strings.IndexFunc(in, func(r rune) bool { return r <= ' ' || r == '"' })
			if end < 0 {
				end = len(in)
			}
			args.args = append(args.args, QArg{in[:end]})
			in = in[end:]
		}
	}
	return
}
