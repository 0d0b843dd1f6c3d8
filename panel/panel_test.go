// SPDX-License-Identifier: GPL-2.0-or-later

package panel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundstage/clock"
	"soundstage/math/vec"
)

// fakeWidgets moves sliders to preset values and records text.
type fakeWidgets struct {
	open    bool
	sliders map[string]float32
	press   map[string]bool
	texts   []string
	ranges  [][2]float32
	ended   int
}

func (f *fakeWidgets) Begin(string) bool {
	return f.open
}

func (f *fakeWidgets) SliderFloat(label string, v *float32, lo, hi float32) bool {
	f.ranges = append(f.ranges, [2]float32{lo, hi})
	if nv, ok := f.sliders[label]; ok {
		*v = nv
		return true
	}
	return false
}

func (f *fakeWidgets) Text(format string, args ...any) {
	f.texts = append(f.texts, fmt.Sprintf(format, args...))
}

func (f *fakeWidgets) Button(label string) bool {
	return f.press[label]
}

func (f *fakeWidgets) End() {
	f.ended++
}

func TestFrameCoupled(t *testing.T) {
	var pushed []vec.Vec3
	p := New(func(v vec.Vec3) { pushed = append(pushed, v) }, 5, 0)
	p.SetStatus(func() string { return "playing" })
	require.True(t, p.FrameCoupled())

	w := &fakeWidgets{open: true, sliders: map[string]float32{"X": 3, "Z": -4}}
	p.Frame(w)
	p.Frame(&fakeWidgets{open: true})

	// every frame pushes the current slider position
	assert.Equal(t, []vec.Vec3{{X: 3, Z: -4}, {X: 3, Z: -4}}, pushed)
	assert.Equal(t, []string{"distance 5.00", "playing"}, w.texts)
	assert.Equal(t, [2]float32{-5, 5}, w.ranges[0])
	assert.Equal(t, 1, w.ended)
	assert.Equal(t, vec.Vec3{X: 3, Z: -4}, p.Position())
}

func TestFrameCollapsed(t *testing.T) {
	var pushed []vec.Vec3
	p := New(func(v vec.Vec3) { pushed = append(pushed, v) }, 5, 0)
	w := &fakeWidgets{open: false, sliders: map[string]float32{"X": 3}}
	p.Frame(w)
	assert.Empty(t, w.ranges)
	assert.Equal(t, 1, w.ended)
	assert.Equal(t, []vec.Vec3{{}}, pushed)
}

func TestCenter(t *testing.T) {
	p := New(func(vec.Vec3) {}, 5, 0)
	p.SetPosition(vec.Vec3{X: 1, Y: 2, Z: 3})
	p.Frame(&fakeWidgets{open: true, press: map[string]bool{"Center": true}})
	assert.Equal(t, vec.Vec3{}, p.Position())
}

func TestRunDecoupled(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pushed []vec.Vec3
	var at []time.Time
	var p *Panel
	p = New(func(v vec.Vec3) {
		pushed = append(pushed, v)
		at = append(at, fake.Now())
		switch len(pushed) {
		case 1:
			p.SetPosition(vec.Vec3{X: 1})
		case 2:
			cancel()
		}
	}, 5, 10)
	require.False(t, p.FrameCoupled())

	// frames do not push in decoupled mode
	p.Frame(&fakeWidgets{open: true})

	err := p.Run(ctx, fake)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, []vec.Vec3{{}, {X: 1}}, pushed)
	assert.Equal(t, time.Unix(0, 0), at[0])
	assert.Equal(t, time.Unix(0, 0).Add(100*time.Millisecond), at[1])
}

// cancelClock cancels after a number of sleeps.
type cancelClock struct {
	*clock.Fake
	left   int
	cancel context.CancelFunc
}

func (c *cancelClock) Sleep(ctx context.Context, d time.Duration) error {
	c.left--
	if c.left == 0 {
		c.cancel()
	}
	return c.Fake.Sleep(ctx, d)
}

func TestRunSkipsUnchanged(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := &cancelClock{Fake: clock.NewFake(time.Unix(0, 0)), left: 5, cancel: cancel}
	pushes := 0
	p := New(func(vec.Vec3) { pushes++ }, 5, 100)
	err := p.Run(ctx, c)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, pushes)
	assert.Len(t, c.Sleeps(), 4)
}

func TestRunFrameCoupled(t *testing.T) {
	p := New(func(vec.Vec3) {}, 5, 0)
	assert.NoError(t, p.Run(context.Background(), clock.NewFake(time.Unix(0, 0))))
}

func TestSaveLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "panel.state")
	p := New(func(vec.Vec3) {}, 5, 0)
	p.SetPosition(vec.Vec3{X: 1.5, Y: -2, Z: 4})
	require.NoError(t, p.Save(name))

	q := New(func(vec.Vec3) {}, 5, 0)
	require.NoError(t, q.Load(name))
	assert.Equal(t, vec.Vec3{X: 1.5, Y: -2, Z: 4}, q.Position())

	// a smaller range clamps
	r := New(func(vec.Vec3) {}, 2, 0)
	require.NoError(t, r.Load(name))
	assert.Equal(t, vec.Vec3{X: 1.5, Y: -2, Z: 2}, r.Position())
}

func TestLoadMissing(t *testing.T) {
	p := New(func(vec.Vec3) {}, 5, 0)
	p.SetPosition(vec.Vec3{X: 1})
	require.NoError(t, p.Load(filepath.Join(t.TempDir(), "none")))
	assert.Equal(t, vec.Vec3{X: 1}, p.Position())
}

func TestLoadGarbage(t *testing.T) {
	name := filepath.Join(t.TempDir(), "panel.state")
	require.NoError(t, os.WriteFile(name, []byte{0xff, 0xff}, 0o644))
	p := New(func(vec.Vec3) {}, 5, 0)
	assert.Error(t, p.Load(name))
}

func TestLoadUnreadable(t *testing.T) {
	// a directory exists but can not be read as a file
	p := New(func(vec.Vec3) {}, 5, 0)
	p.SetPosition(vec.Vec3{X: 1})
	assert.Error(t, p.Load(t.TempDir()))
	assert.Equal(t, vec.Vec3{X: 1}, p.Position())
}
