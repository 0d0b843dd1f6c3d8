// SPDX-License-Identifier: GPL-2.0-or-later

package snd

// aSounds tracks the voices started by the sound system. All access
// happens with the output locked.
type aSounds struct {
	sounds map[Handle]*playingSound
}

func newASounds() *aSounds {
	return &aSounds{
		sounds: make(map[Handle]*playingSound),
	}
}

func (a *aSounds) add(p *playingSound) {
	a.sounds[p.handle] = p
}

// get returns the voice for h if it is still playing.
func (a *aSounds) get(h Handle) *playingSound {
	p, ok := a.sounds[h]
	if !ok {
		return nil
	}
	if p.done || p.stopped {
		delete(a.sounds, h)
		return nil
	}
	return p
}

func (a *aSounds) stop(h Handle) {
	p, ok := a.sounds[h]
	if !ok {
		return
	}
	p.stopped = true
	delete(a.sounds, h)
}

func (a *aSounds) stopAll() {
	for h, p := range a.sounds {
		p.stopped = true
		delete(a.sounds, h)
	}
}

func (a *aSounds) update(l Listener) {
	for h, p := range a.sounds {
		if p.done {
			delete(a.sounds, h)
			continue
		}
		p.spatialize(l)
	}
}

func (a *aSounds) updateSample(smp *Sample, l Listener) {
	for _, p := range a.sounds {
		if p.sample == smp {
			p.spatialize(l)
		}
	}
}

func (a *aSounds) len() int {
	return len(a.sounds)
}
