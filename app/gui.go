// SPDX-License-Identifier: GPL-2.0-or-later

package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"

	"soundstage/clock"
	"soundstage/cvars"
	"soundstage/imui"
	"soundstage/math/vec"
	"soundstage/panel"
	"soundstage/snd"
	"soundstage/window"
)

// runGUI plays smp looped and lets the control panel move it until the
// window is closed or ctx is done.
func runGUI(ctx context.Context, s *snd.SndSys, smp *snd.Sample, rate int) error {
	if rate <= 0 {
		rate = int(cvars.UIUpdateRate.Value())
	}
	var ui *imui.Context
	vsync := false
	err := mainthread.CallErr(func() error {
		if err := window.Init("soundstage", int32(cvars.UIWidth.Value()), int32(cvars.UIHeight.Value())); err != nil {
			return err
		}
		var err error
		ui, err = imui.New(func(focus bool) {
			if focus {
				s.Unblock()
			} else {
				s.Block()
			}
		})
		if err != nil {
			window.Shutdown()
			return err
		}
		vsync = window.VSync()
		return nil
	})
	if err != nil {
		return err
	}
	defer mainthread.Call(func() {
		ui.Destroy()
		window.Shutdown()
	})

	state := cvars.UIPanelState.String()
	h := s.PlayPositional(smp, snd.DefaultListener.Origin, cvars.DemoVolume.Value())
	p := panel.New(func(v vec.Vec3) {
		s.SetSourcePosition(h, v)
	}, cvars.UIRange.Value(), float64(rate))
	if err := p.Load(state); err != nil {
		log.Printf("%v", err)
	}
	s.SetSourcePosition(h, p.Position())
	s.SetLooping(h, true)
	p.SetStatus(func() string {
		return fmt.Sprintf("voices %d", s.Playing())
	})
	defer func() {
		s.SetLooping(h, false)
		s.Stop(h)
		if err := p.Save(state); err != nil {
			log.Printf("%v", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if !p.FrameCoupled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.Run(ctx, clock.Real{}); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Panel: %v", err)
			}
		}()
	}
	defer func() {
		cancel()
		wg.Wait()
	}()

	for ctx.Err() == nil {
		stop := false
		var focus, minimized bool
		mainthread.Call(func() {
			focus = window.InputFocus()
			minimized = window.Minimized()
			ui.NewFrame()
			p.Frame(ui)
			if minimized {
				ui.Skip()
			} else {
				ui.Render()
			}
			stop = ui.ShouldStop()
		})
		if stop {
			return nil
		}
		time.Sleep(frameSleep(vsync, focus, minimized))
	}
	return ctx.Err()
}

// frameSleep throttles the panel loop. Without input focus there is
// nothing to react to quickly, a minimized window is not drawn at all.
func frameSleep(vsync, focus, minimized bool) time.Duration {
	switch {
	case minimized:
		return 32 * time.Millisecond
	case !focus:
		return 16 * time.Millisecond
	case !vsync:
		return 16 * time.Millisecond
	}
	return 0
}
