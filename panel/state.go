// SPDX-License-Identifier: GPL-2.0-or-later

package panel

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"soundstage/math/vec"
)

// Save stores the slider position.
func (p *Panel) Save(name string) error {
	pos := p.Position()
	data, err := structpb.NewStruct(map[string]any{
		"x": float64(pos.X),
		"y": float64(pos.Y),
		"z": float64(pos.Z),
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode panel state")
	}
	out, err := proto.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode panel state")
	}
	if err := os.WriteFile(name, out, 0660); err != nil {
		return errors.Wrap(err, "failed to write panel state")
	}
	return nil
}

// Load restores the slider position. A missing file keeps the current one.
// Values are clamped to the slider range.
func (p *Panel) Load(name string) error {
	in, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read panel state")
	}
	data := &structpb.Struct{}
	if err := proto.Unmarshal(in, data); err != nil {
		return errors.Wrap(err, "failed to decode panel state")
	}
	f := data.GetFields()
	get := func(k string) float32 {
		v := float32(f[k].GetNumberValue())
		return min(max(v, -p.rng), p.rng)
	}
	p.SetPosition(vec.Vec3{X: get("x"), Y: get("y"), Z: get("z")})
	return nil
}
