// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strings"

	"soundstage/cbuf"
	"soundstage/conlog"
	"soundstage/filesystem"
)

func init() {
	Must(AddCommand("cmdlist", commands.printCmdList))
	Must(AddCommand("echo", echo))
	Must(AddCommand("exec", exec))
}

func (c *Commands) printCmdList(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	args := a.Args()
	cl := c.List()
	switch len(args) {
	default:
		printPartialCmdList(cl, args[1].String())
	case 0, 1:
		printFullCmdList(cl)
	}
	return nil
}

func printFullCmdList(cl []string) {
	for _, c := range cl {
		conlog.SafePrintf("  %s\n", c)
	}
	conlog.SafePrintf("%v commands\n", len(cl))
}

func printPartialCmdList(cl []string, part string) {
	count := 0
	for _, c := range cl {
		if strings.HasPrefix(c, part) {
			conlog.SafePrintf("  %s\n", c)
			count++
		}
	}
	conlog.SafePrintf("%v commands beginning with \"%v\"\n", count, part)
}

func echo(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	conlog.Printf("%s\n", a.ArgumentString())
	return nil
}

// exec runs a config file found in the search path before any remaining
// buffered commands.
func exec(cb *cbuf.CommandBuffer, a cbuf.Arguments) error {
	if len(a.Args()) != 2 {
		conlog.Printf("exec <filename> : execute a script file\n")
		return nil
	}
	name := a.Args()[1].String()
	b, err := filesystem.ReadFile(name)
	if err != nil {
		conlog.Printf("couldn't exec %s\n", name)
		return nil
	}
	conlog.Printf("execing %s\n", name)
	cb.InsertText(string(b))
	return nil
}
