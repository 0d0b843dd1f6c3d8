// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
)

type TexID uint32

type Texture2D struct {
	id uint32
}

func deleteTexture(id uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &id)
	})
}

func NewTexture2D() *Texture2D {
	t := &Texture2D{}
	gl.GenTextures(1, &t.id)
	runtime.AddCleanup(t, deleteTexture, t.id)
	return t
}

func (t *Texture2D) ID() TexID {
	return TexID(t.id)
}

func (t *Texture2D) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// SetRGBA uploads 8 bit RGBA pixels with linear filtering. The texture
// needs to be bound first.
func (t *Texture2D) SetRGBA(width, height int, pixels unsafe.Pointer) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
}

// BindTextureID binds a texture known only by its id, as handed out by
// the widget library.
func BindTextureID(id TexID) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
}
