// SPDX-License-Identifier: GPL-2.0-or-later

// Package imui drives the immediate mode widget library on top of the
// SDL window. A Context implements panel.Widgets.
package imui

import (
	"fmt"

	"soundstage/window"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/pkg/errors"
)

type Context struct {
	ctx      *imgui.Context
	io       imgui.IO
	platform *platform
	renderer *renderer
}

// New creates the widget context. The window needs to be initialized and
// the call has to happen on the main thread.
func New(onFocus func(bool)) (*Context, error) {
	ctx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	imgui.StyleColorsDark()
	r, err := newRenderer(io)
	if err != nil {
		ctx.Destroy()
		return nil, errors.Wrap(err, "could not init widget renderer")
	}
	return &Context{
		ctx:      ctx,
		io:       io,
		platform: newPlatform(io, onFocus),
		renderer: r,
	}, nil
}

func (c *Context) Destroy() {
	c.ctx.Destroy()
}

// ShouldStop reports whether the window was closed or escape was pressed.
func (c *Context) ShouldStop() bool {
	return c.platform.shouldStop
}

// NewFrame processes pending input and starts a new widget frame.
func (c *Context) NewFrame() {
	c.platform.processEvents()
	w, h := window.Size()
	c.platform.newFrame(float32(w), float32(h))
	imgui.NewFrame()
}

// Skip ends the current frame without drawing it.
func (c *Context) Skip() {
	imgui.EndFrame()
}

// Render draws the widgets of the current frame and swaps the window.
func (c *Context) Render() {
	imgui.Render()
	w, h := window.Size()
	fw, fh := window.DrawableSize()
	c.renderer.render(
		[2]float32{float32(w), float32(h)},
		[2]float32{float32(fw), float32(fh)},
		imgui.RenderedDrawData())
	window.EndRendering()
}

func (c *Context) Begin(title string) bool {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 360, Y: 170}, imgui.ConditionFirstUseEver)
	return imgui.Begin(title)
}

func (c *Context) SliderFloat(label string, v *float32, min, max float32) bool {
	return imgui.SliderFloat(label, v, min, max)
}

func (c *Context) Text(format string, args ...any) {
	imgui.Text(fmt.Sprintf(format, args...))
}

func (c *Context) Button(label string) bool {
	return imgui.Button(label)
}

func (c *Context) End() {
	imgui.End()
}
