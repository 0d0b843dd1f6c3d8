// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"log"
	"os"
	"strings"

	"soundstage/cbuf"
	"soundstage/cmd"
	"soundstage/conlog"
)

func init() {
	cmd.Must(cmd.AddCommand("cvarlist", list))
	cmd.Must(cmd.AddCommand("cycle", cycle))
	cmd.Must(cmd.AddCommand("inc", inc))
	cmd.Must(cmd.AddCommand("reset", reset))
	cmd.Must(cmd.AddCommand("resetall", resetAll))
	cmd.Must(cmd.AddCommand("set", set))
	cmd.Must(cmd.AddCommand("toggle", toggle))
	cmd.Must(cmd.AddCommand("writeconfig", writeConfig))
}

func set(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 2 {
		conlog.Printf("set <cvar> <value>\n")
		return nil
	}
	n := args[0].String()
	if cmd.Exists(n) {
		conlog.Printf("conflict with command\n")
		return nil
	}
	if cv, ok := Get(n); ok {
		cv.SetByString(args[1].String())
	} else {
		cv := create(n, args[1].String())
		cv.user = true
	}
	return nil
}

func toggle(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("toggle <cvar> : toggle cvar\n")
		return nil
	}
	arg := args[0].String()
	if cv, ok := Get(arg); ok {
		cv.Toggle()
	} else {
		log.Printf("toggle: Cvar not found %v", arg)
		conlog.Printf("toggle: variable %v not found\n", arg)
	}
	return nil
}

func incr(n string, v float32) {
	if cv, ok := Get(n); ok {
		cv.SetValue(cv.Value() + v)
	} else {
		log.Printf("Cvar not found %v", n)
		conlog.Printf("inc: variable %v not found\n", n)
	}
}

func inc(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 1:
		incr(args[0].String(), 1)
	case 2:
		incr(args[0].String(), args[1].Float32())
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
	}
	return nil
}

func reset(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("reset <cvar> : reset cvar to default\n")
		return nil
	}
	arg := args[0].String()
	if cv, ok := Get(arg); ok {
		cv.Reset()
	} else {
		log.Printf("Cvar not found %v", arg)
		conlog.Printf("reset: variable %v not found\n", arg)
	}
	return nil
}

func resetAll(_ *cbuf.CommandBuffer, _ cbuf.Arguments) error {
	for _, cv := range All() {
		cv.Reset()
	}
	return nil
}

func list(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	args := a.Args()
	prefix := ""
	if len(args) > 1 {
		prefix = args[1].String()
	}
	count := 0
	for _, v := range All() {
		if !strings.HasPrefix(v.Name(), prefix) {
			continue
		}
		mark := " "
		if v.Archive() {
			mark = "*"
		}
		conlog.SafePrintf("%s %s \"%s\"\n", mark, v.Name(), v.String())
		count++
	}
	if prefix != "" {
		conlog.SafePrintf("%v cvars beginning with \"%v\"\n", count, prefix)
	} else {
		conlog.SafePrintf("%v cvars\n", count)
	}
	return nil
}

func cycle(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 2 {
		conlog.Printf("cycle <cvar> <value list>: cycle cvar through a list of values\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		conlog.Printf("cycle: variable %v not found\n", args[0].String())
		return nil
	}
	values := args[1:]
	next := 0
	for i, v := range values {
		if v.String() == cv.String() {
			next = (i + 1) % len(values)
			break
		}
	}
	cv.SetByString(values[next].String())
	return nil
}

func writeConfig(_ *cbuf.CommandBuffer, a cbuf.Arguments) error {
	name := "soundstage.cfg"
	if len(a.Args()) > 1 {
		name = a.Args()[1].String()
	}
	f, err := os.Create(name)
	if err != nil {
		conlog.Printf("couldn't write %s\n", name)
		log.Printf("writeconfig: %v", err)
		return nil
	}
	defer f.Close()
	if err := WriteArchive(f); err != nil {
		return err
	}
	conlog.Printf("wrote %s\n", name)
	return nil
}
