// SPDX-License-Identifier: GPL-2.0-or-later

// Package cmd holds the console commands.
package cmd

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"soundstage/cbuf"
)

type QFunc func(cb *cbuf.CommandBuffer, args cbuf.Arguments) error

type Commands map[string]QFunc

func New() *Commands {
	c := make(Commands)
	return &c
}

func (c *Commands) Add(name string, f QFunc) error {
	ln := strings.ToLower(name)
	if _, ok := (*c)[ln]; ok {
		return errors.Errorf("command %s already defined", ln)
	}
	(*c)[ln] = f
	return nil
}

func (c *Commands) Exists(cmdName string) bool {
	name := strings.ToLower(cmdName)
	_, ok := (*c)[name]
	return ok
}

func (c *Commands) List() []string {
	cmds := make([]string, 0, len(*c))
	for cmd := range *c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute is a cbuf.Efunc.
func (c *Commands) Execute(cb *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	name := strings.ToLower(n[0].String())
	if cmd, ok := (*c)[name]; ok {
		if err := cmd(cb, a); err != nil {
			return false, errors.Wrapf(err, "command %s", name)
		}
		return true, nil
	}
	return false, nil
}

var (
	commands = make(Commands)
)

func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func AddCommand(name string, f QFunc) error {
	return commands.Add(name, f)
}

func Exists(cmdName string) bool {
	return commands.Exists(cmdName)
}

func Execute(cb *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	return commands.Execute(cb, a)
}

func List() []string {
	return commands.List()
}
