// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

type Matrix struct {
	m [16]float32
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%v %v %v %v\n%v %v %v %v\n%v %v %v %v\n%v %v %v %v",
		m.m[0], m.m[1], m.m[2], m.m[3],
		m.m[4], m.m[5], m.m[6], m.m[7],
		m.m[8], m.m[9], m.m[10], m.m[11],
		m.m[12], m.m[13], m.m[14], m.m[15],
	)
}

func Identity() *Matrix {
	return &Matrix{
		m: [16]float32{
			1, 0, 0, 0, // 0 - 3
			0, 1, 0, 0, // 4 - 7
			0, 0, 1, 0, // 8 - 11
			0, 0, 0, 1, // 12 - 15
		},
	}
}

func (m *Matrix) SetAsUniform(id int32) {
	// we use row major order, so transpose must be set to true
	// as opengl uses column major order
	gl.UniformMatrix4fv(id, 1, true, &m.m[0])
}

func (m *Matrix) Translate(x, y, z float32) {
	// 1, 0, 0, x
	// 0, 1, 0, y
	// 0, 0, 1, z
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		m.m[0], m.m[1], m.m[2], x*m.m[0] + y*m.m[1] + z*m.m[2] + m.m[3],
		m.m[4], m.m[5], m.m[6], x*m.m[4] + y*m.m[5] + z*m.m[6] + m.m[7],
		m.m[8], m.m[9], m.m[10], x*m.m[8] + y*m.m[9] + z*m.m[10] + m.m[11],
		m.m[12], m.m[13], m.m[14], x*m.m[12] + y*m.m[13] + z*m.m[14] + m.m[15],
	}
	m.m = n
}

func (m *Matrix) Scale(x, y, z float32) {
	// x, 0, 0, 0
	// 0, y, 0, 0
	// 0, 0, z, 0
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		x * m.m[0], y * m.m[1], z * m.m[2], m.m[3],
		x * m.m[4], y * m.m[5], z * m.m[6], m.m[7],
		x * m.m[8], y * m.m[9], z * m.m[10], m.m[11],
		x * m.m[12], y * m.m[13], z * m.m[14], m.m[15],
	}
	m.m = n
}

// Ortho returns the projection of the pixel rectangle starting at
// (left,top) with the given size onto clip space, y pointing down.
func Ortho(left, top, width, height float32) *Matrix {
	m := Identity()
	m.Scale(2/width, -2/height, -1)
	m.Translate(-left-width/2, -top-height/2, 0)
	return m
}
