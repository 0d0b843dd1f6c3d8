// SPDX-License-Identifier: GPL-2.0-or-later

package imui

import (
	"soundstage/glh"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

const (
	vertexSource = `#version 330
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main() {
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`
	fragmentSource = `#version 330
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main() {
	Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
`
)

type renderer struct {
	prog     *glh.Program
	vao      *glh.VertexArray
	vbo      *glh.Buffer
	ebo      *glh.Buffer
	font     *glh.Texture2D
	texture  int32
	proj     int32
	position uint32
	uv       uint32
	color    uint32
}

func newRenderer(io imgui.IO) (*renderer, error) {
	prog, err := glh.NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	r := &renderer{
		prog:     prog,
		vao:      glh.NewVertexArray(),
		vbo:      glh.NewBuffer(glh.ArrayBuffer),
		ebo:      glh.NewBuffer(glh.ElementArrayBuffer),
		font:     glh.NewTexture2D(),
		texture:  prog.GetUniformLocation("Texture"),
		proj:     prog.GetUniformLocation("ProjMtx"),
		position: prog.GetAttribLocation("Position"),
		uv:       prog.GetAttribLocation("UV"),
		color:    prog.GetAttribLocation("Color"),
	}
	image := io.Fonts().TextureDataRGBA32()
	r.font.Bind()
	r.font.SetRGBA(image.Width, image.Height, image.Pixels)
	io.Fonts().SetTextureID(imgui.TextureID(r.font.ID()))
	return r, nil
}

func (r *renderer) render(display, framebuffer [2]float32, data imgui.DrawData) {
	fbWidth, fbHeight := framebuffer[0], framebuffer[1]
	if fbWidth <= 0 || fbHeight <= 0 || display[0] <= 0 || display[1] <= 0 {
		return
	}
	data.ScaleClipRects(imgui.Vec2{
		X: fbWidth / display[0],
		Y: fbHeight / display[1],
	})

	gl.ClearColor(0.1, 0.1, 0.12, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	r.prog.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texture, 0)
	glh.Ortho(0, 0, display[0], display[1]).SetAsUniform(r.proj)

	r.vao.Bind()
	r.vbo.Bind()
	r.ebo.Bind()
	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	glh.FloatAttrib(r.position, 2, vertexSize, posOffset)
	glh.FloatAttrib(r.uv, 2, vertexSize, uvOffset)
	glh.ColorAttrib(r.color, vertexSize, colOffset)
	indexSize := imgui.IndexBufferLayout()
	indexType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range data.CommandLists() {
		vb, vbSize := list.VertexBuffer()
		r.vbo.StreamData(vbSize, vb)
		ib, ibSize := list.IndexBuffer()
		r.ebo.StreamData(ibSize, ib)

		offset := 0
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				glh.BindTextureID(glh.TexID(cmd.TextureID()))
				clip := cmd.ClipRect()
				gl.Scissor(int32(clip.X), int32(fbHeight)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, uintptr(offset))
			}
			offset += cmd.ElementCount() * indexSize
		}
	}
	gl.Disable(gl.SCISSOR_TEST)
}
