// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"soundstage/cvar"
	"soundstage/math"
)

var (
	DemoDurationScale *cvar.Cvar
	DemoVolume        *cvar.Cvar
	Sample            *cvar.Cvar
	SoundBufferMs     *cvar.Cvar
	SoundQuality      *cvar.Cvar
	SoundRate         *cvar.Cvar
	UIHeight          *cvar.Cvar
	UIPanelState      *cvar.Cvar
	UIRange           *cvar.Cvar
	UIUpdateRate      *cvar.Cvar
	UIWidth           *cvar.Cvar
	Volume            *cvar.Cvar
)

func init() {
	DemoDurationScale = cvar.MustRegister("demo_durationscale", "1", cvar.ARCHIVE) // stretches every scenario
	DemoVolume = cvar.MustRegister("demo_volume", "1", cvar.ARCHIVE)               // per voice volume
	Sample = cvar.MustRegister("sample", "sound.wav", cvar.ARCHIVE)
	SoundBufferMs = cvar.MustRegister("snd_buffer_ms", "100", cvar.ARCHIVE)
	SoundQuality = cvar.MustRegister("snd_quality", "4", cvar.ARCHIVE) // resampler quality 1..64
	SoundRate = cvar.MustRegister("snd_rate", "44100", cvar.ARCHIVE)
	UIHeight = cvar.MustRegister("ui_height", "600", cvar.ARCHIVE)
	UIPanelState = cvar.MustRegister("ui_panelstate", "panel.state", cvar.ARCHIVE)
	UIRange = cvar.MustRegister("ui_range", "10", cvar.ARCHIVE)          // slider range is [-ui_range, ui_range]
	UIUpdateRate = cvar.MustRegister("ui_update_rate", "0", cvar.ARCHIVE) // 0 updates every frame
	UIWidth = cvar.MustRegister("ui_width", "800", cvar.ARCHIVE)
	Volume = cvar.MustRegister("volume", "0.7", cvar.ARCHIVE)

	Volume.SetCallback(clampCallback(0, 1))
	DemoVolume.SetCallback(clampCallback(0, 1))
	DemoDurationScale.SetCallback(clampCallback(0.1, 10))
	SoundQuality.SetCallback(clampCallback(1, 64))
}

// clampCallback keeps a numeric cvar inside [lo,hi].
func clampCallback(lo, hi float32) cvar.CallbackFunc {
	return func(cv *cvar.Cvar) {
		v := cv.Value()
		if c := math.Clamp(lo, v, hi); c != v {
			cv.SetValue(c)
		}
	}
}
