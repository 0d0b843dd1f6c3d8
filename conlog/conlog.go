// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog prints user facing console text. Diagnostics go to log.
package conlog

import (
	"fmt"
	"os"
	"sync"
)

var (
	mu sync.Mutex
	p  = func(format string, v ...any) { fmt.Fprintf(os.Stdout, format, v...) }
	sp = func(format string, v ...any) { fmt.Fprintf(os.Stdout, format, v...) }
)

func SetPrintf(f func(string, ...any)) {
	mu.Lock()
	defer mu.Unlock()
	p = f
}

func SetSafePrintf(f func(string, ...any)) {
	mu.Lock()
	defer mu.Unlock()
	sp = f
}

func Printf(format string, v ...any) {
	mu.Lock()
	f := p
	mu.Unlock()
	f(format, v...)
}

// SafePrintf is for text which may be long, like lists.
func SafePrintf(format string, v ...any) {
	mu.Lock()
	f := sp
	mu.Unlock()
	f(format, v...)
}
