// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/gopxl/mainthread/v2"

	"soundstage/app"
)

func main() {
	flag.Parse()
	code := 0
	// SDL and GL need the main thread, everything else runs in mainthread.Run.
	mainthread.Run(func() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		code = app.Run(ctx)
	})
	os.Exit(code)
}
