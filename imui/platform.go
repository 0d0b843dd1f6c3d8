// SPDX-License-Identifier: GPL-2.0-or-later

package imui

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

type platform struct {
	io          imgui.IO
	time        uint64
	buttonsDown [3]bool
	shouldStop  bool
	onFocus     func(bool)
}

func newPlatform(io imgui.IO, onFocus func(bool)) *platform {
	p := &platform{
		io:      io,
		onFocus: onFocus,
	}
	keys := map[int]int{
		imgui.KeyTab:        sdl.SCANCODE_TAB,
		imgui.KeyLeftArrow:  sdl.SCANCODE_LEFT,
		imgui.KeyRightArrow: sdl.SCANCODE_RIGHT,
		imgui.KeyUpArrow:    sdl.SCANCODE_UP,
		imgui.KeyDownArrow:  sdl.SCANCODE_DOWN,
		imgui.KeyHome:       sdl.SCANCODE_HOME,
		imgui.KeyEnd:        sdl.SCANCODE_END,
		imgui.KeyDelete:     sdl.SCANCODE_DELETE,
		imgui.KeyBackspace:  sdl.SCANCODE_BACKSPACE,
		imgui.KeyEnter:      sdl.SCANCODE_RETURN,
		imgui.KeyEscape:     sdl.SCANCODE_ESCAPE,
	}
	for ik, sk := range keys {
		io.KeyMap(ik, sk)
	}
	return p
}

func (p *platform) processEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		p.processEvent(event)
	}
}

func (p *platform) processEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		p.shouldStop = true
	case *sdl.MouseWheelEvent:
		p.io.AddMouseWheelDelta(float32(e.X), float32(e.Y))
	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN {
			return
		}
		switch e.Button {
		case sdl.BUTTON_LEFT:
			p.buttonsDown[0] = true
		case sdl.BUTTON_RIGHT:
			p.buttonsDown[1] = true
		case sdl.BUTTON_MIDDLE:
			p.buttonsDown[2] = true
		}
	case *sdl.TextInputEvent:
		p.io.AddInputCharacters(e.GetText())
	case *sdl.KeyboardEvent:
		sc := int(e.Keysym.Scancode)
		if e.Type == sdl.KEYDOWN {
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE && !p.io.WantCaptureKeyboard() {
				p.shouldStop = true
			}
			p.io.KeyPress(sc)
		} else {
			p.io.KeyRelease(sc)
		}
		p.updateModifiers()
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			if p.onFocus != nil {
				p.onFocus(true)
			}
		case sdl.WINDOWEVENT_FOCUS_LOST:
			if p.onFocus != nil {
				p.onFocus(false)
			}
		}
	}
}

func (p *platform) updateModifiers() {
	mod := sdl.GetModState()
	pressed := func(lmask sdl.Keymod, lkey int, rmask sdl.Keymod, rkey int) (int, int) {
		l, r := 0, 0
		if mod&lmask != 0 {
			l = lkey
		}
		if mod&rmask != 0 {
			r = rkey
		}
		return l, r
	}
	p.io.KeyShift(pressed(sdl.KMOD_LSHIFT, sdl.SCANCODE_LSHIFT, sdl.KMOD_RSHIFT, sdl.SCANCODE_RSHIFT))
	p.io.KeyCtrl(pressed(sdl.KMOD_LCTRL, sdl.SCANCODE_LCTRL, sdl.KMOD_RCTRL, sdl.SCANCODE_RCTRL))
	p.io.KeyAlt(pressed(sdl.KMOD_LALT, sdl.SCANCODE_LALT, sdl.KMOD_RALT, sdl.SCANCODE_RALT))
}

func (p *platform) newFrame(width, height float32) {
	p.io.SetDisplaySize(imgui.Vec2{X: width, Y: height})

	frequency := sdl.GetPerformanceFrequency()
	now := sdl.GetPerformanceCounter()
	if p.time > 0 {
		p.io.SetDeltaTime(float32(now-p.time) / float32(frequency))
	} else {
		p.io.SetDeltaTime(1.0 / 60.0)
	}
	p.time = now

	x, y, state := sdl.GetMouseState()
	p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		p.io.SetMouseButtonDown(i, p.buttonsDown[i] || (state&sdl.Button(button)) != 0)
		p.buttonsDown[i] = false
	}
}
