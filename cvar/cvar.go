// SPDX-License-Identifier: GPL-2.0-or-later

// Package cvar implements named console variables which can be set from
// config files and the console.
package cvar

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"soundstage/cbuf"
	"soundstage/cmd"
	"soundstage/conlog"
)

var (
	mu         sync.RWMutex
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	NONE    flag = 0
	ARCHIVE flag = 1      // written by writeconfig
	ROM     flag = 1 << 6 // can not be changed from the console
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	rom      bool
	user     bool
	callback []CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
	id           int
}

func All() []*Cvar {
	mu.RLock()
	defer mu.RUnlock()
	return append([]*Cvar(nil), cvarArray...)
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = []CallbackFunc{cb}
}

// AddCallback adds cb after the already set callbacks.
func (cv *Cvar) AddCallback(cb CallbackFunc) {
	cv.callback = append(cv.callback, cb)
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	cv.set(s)
}

func (cv *Cvar) set(s string) {
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	for _, cb := range cv.callback {
		cb(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) ID() int {
	return cv.id
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Default() string {
	return cv.defaultValue
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		cv.SetByString(strconv.FormatInt(int64(value), 10))
	} else {
		cv.SetByString(strconv.FormatFloat(float64(value), 'f', -1, 32))
	}
}

func (cv *Cvar) Toggle() {
	if cv.Bool() {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0" && cv.stringValue != ""
}

func Get(name string) (*Cvar, bool) {
	mu.RLock()
	defer mu.RUnlock()
	cv, ok := cvarByName[strings.ToLower(name)]
	return cv, ok
}

func GetByID(id int) (*Cvar, error) {
	mu.RLock()
	defer mu.RUnlock()
	if id < 0 || id >= len(cvarArray) {
		return nil, errors.Errorf("cvar id %d out of bounds", id)
	}
	return cvarArray[id], nil
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.set(value)
	mu.Lock()
	cv.id = len(cvarArray)
	cvarArray = append(cvarArray, cv)
	cvarByName[strings.ToLower(name)] = cv
	mu.Unlock()
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := Get(name); ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}
	if cmd.Exists(name) {
		return nil, errors.Errorf("can't register variable %s, it is a command", name)
	}
	cv := create(name, value)
	cv.archive = flags&ARCHIVE != 0
	cv.rom = flags&ROM != 0
	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		log.Panic(err)
	}
	return cv
}

// Execute is a cbuf.Efunc which handles lines of the form "name [value]".
func Execute(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	if cv.rom {
		conlog.Printf("%s is read only\n", cv.Name())
		return true, nil
	}
	cv.SetByString(args[1].String())
	return true, nil
}

// WriteArchive writes all archive variables as config lines.
func WriteArchive(w io.Writer) error {
	for _, cv := range All() {
		if !cv.Archive() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %q\n", cv.Name(), cv.String()); err != nil {
			return errors.Wrap(err, "failed to write config")
		}
	}
	return nil
}
