// SPDX-License-Identifier: GPL-2.0-or-later

// Package window owns the SDL window and its OpenGL context.
package window

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	window  *sdl.Window
	context sdl.GLContext
)

func Size() (int, int) {
	w, h := window.GetSize()
	return int(w), int(h)
}

func DrawableSize() (int, int) {
	w, h := window.GLGetDrawableSize()
	return int(w), int(h)
}

func Shutdown() {
	if window == nil {
		return
	}
	sdl.GLDeleteContext(context)
	context = nil
	window.Destroy()
	window = nil
	sdl.Quit()
}

func VSync() bool {
	i, _ := sdl.GLGetSwapInterval()
	return i == 1
}

func InputFocus() bool {
	return window.GetFlags()&(sdl.WINDOW_MOUSE_FOCUS|sdl.WINDOW_INPUT_FOCUS) != 0
}

func Minimized() bool {
	return window.GetFlags()&sdl.WINDOW_MINIMIZED != 0
}

// Init creates a resizable window with a 3.3 core profile context.
func Init(title string, width, height int32) error {
	if window != nil {
		return nil
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "could not init sdl video")
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, flags)
	if err != nil {
		sdl.Quit()
		return errors.Wrap(err, "couldn't create window")
	}
	window = w

	context, err = window.GLCreateContext()
	if err != nil {
		Shutdown()
		return errors.Wrap(err, "couldn't create GL context")
	}
	if err := gl.Init(); err != nil {
		Shutdown()
		return errors.Wrap(err, "couldn't init gl")
	}
	if err := sdl.GLSetSwapInterval(1); err != nil {
		log.Printf("No vsync: %v", err)
	}
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	// glDebugMessageCallback is core since 4.3
	if major > 4 || (major == 4 && minor >= 3) {
		gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	}
	return nil
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	}
}

func EndRendering() {
	window.GLSwap()
}
