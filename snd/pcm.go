// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep/v2"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/pkg/errors"
)

// Sample is a fully decoded sound held in memory as stereo frames.
type Sample struct {
	name   string
	rate   beep.SampleRate
	frames [][2]float64
	// written and read with the output locked
	attenuation Attenuation
}

func NewSample(name string, rate beep.SampleRate, frames [][2]float64) *Sample {
	return &Sample{
		name:        name,
		rate:        rate,
		frames:      frames,
		attenuation: DefaultAttenuation,
	}
}

func (s *Sample) Name() string {
	return s.name
}

func (s *Sample) SampleRate() beep.SampleRate {
	return s.rate
}

// Len returns the number of frames.
func (s *Sample) Len() int {
	return len(s.frames)
}

func (s *Sample) Duration() time.Duration {
	return s.rate.D(len(s.frames))
}

// pcmStream plays the frames of a sample, optionally wrapping around.
type pcmStream struct {
	frames [][2]float64
	pos    int
	loop   bool
}

func (p *pcmStream) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if p.pos >= len(p.frames) {
			if !p.loop || len(p.frames) == 0 {
				break
			}
			p.pos = 0
		}
		c := copy(samples[n:], p.frames[p.pos:])
		n += c
		p.pos += c
	}
	return n, n > 0
}

func (p *pcmStream) Err() error {
	return nil
}

func (p *pcmStream) Len() int {
	return len(p.frames)
}

func (p *pcmStream) Position() int {
	return p.pos
}

func (p *pcmStream) Seek(newPos int) error {
	if newPos < 0 || len(p.frames) < newPos {
		return errors.Errorf("seek position %d is out of range [%d,%d]", newPos, 0, len(p.frames))
	}
	p.pos = newPos
	return nil
}

type decodeFunc func(r io.ReadSeeker) (frames [][2]float64, rate int, err error)

var decoders = map[string]decodeFunc{
	".wav":  decodeWAV,
	".wave": decodeWAV,
	".ogg":  decodeOgg,
	".mp3":  decodeMP3,
}

func decode(name string, r io.ReadSeeker) (*Sample, error) {
	ext := strings.ToLower(filepath.Ext(name))
	dec, ok := decoders[ext]
	if !ok {
		return nil, errors.Errorf("unsupported sound format %q", ext)
	}
	frames, rate, err := dec(r)
	if err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, errors.Errorf("invalid sample rate %d", rate)
	}
	if len(frames) == 0 {
		return nil, errors.New("sound has no samples")
	}
	return NewSample(name, beep.SampleRate(rate), frames), nil
}

func decodeWAV(r io.ReadSeeker) ([][2]float64, int, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, 0, errors.New("not a valid wav file")
	}
	// 1 is PCM, 0xFFFE is WAVE_FORMAT_EXTENSIBLE which go-audio reads as PCM
	if d.WavAudioFormat != 1 && d.WavAudioFormat != 0xFFFE {
		return nil, 0, errors.Errorf("invalid sound format: %v, only PCM is supported", d.WavAudioFormat)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to read pcm data")
	}
	depth := int(d.BitDepth)
	conv, err := intConverter(depth)
	if err != nil {
		return nil, 0, err
	}
	frames, err := toFrames(buf.Data, int(d.NumChans), conv)
	if err != nil {
		return nil, 0, err
	}
	return frames, int(d.SampleRate), nil
}

func intConverter(bitDepth int) (func(int) float64, error) {
	switch bitDepth {
	case 8:
		// 8 bit wave data is unsigned
		return func(v int) float64 { return float64(v-128) / (1 << 7) }, nil
	case 16, 24, 32:
		scale := float64(int64(1) << (bitDepth - 1))
		return func(v int) float64 { return float64(v) / scale }, nil
	}
	return nil, errors.Errorf("invalid sound bit depth: %v", bitDepth)
}

func decodeOgg(r io.ReadSeeker) ([][2]float64, int, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode ogg")
	}
	frames, err := toFrames(data, format.Channels, func(v float32) float64 { return float64(v) })
	if err != nil {
		return nil, 0, err
	}
	return frames, format.SampleRate, nil
}

func decodeMP3(r io.ReadSeeker) ([][2]float64, int, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode mp3")
	}
	// go-mp3 always produces 16 bit little endian stereo
	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode mp3")
	}
	data := make([]int, len(raw)/2)
	for i := range data {
		data[i] = int(int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8))
	}
	conv, _ := intConverter(16)
	frames, err := toFrames(data, 2, conv)
	if err != nil {
		return nil, 0, err
	}
	return frames, d.SampleRate(), nil
}

// toFrames turns interleaved data into stereo frames. Mono is copied to both
// sides, only the first two channels of anything wider are used.
func toFrames[T int | float32](data []T, channels int, conv func(T) float64) ([][2]float64, error) {
	if channels <= 0 {
		return nil, errors.Errorf("invalid number of sound channels: %v", channels)
	}
	frames := make([][2]float64, len(data)/channels)
	for i := range frames {
		f := data[i*channels : (i+1)*channels]
		l := conv(f[0])
		r := l
		if channels > 1 {
			r = conv(f[1])
		}
		frames[i] = [2]float64{l, r}
	}
	return frames, nil
}

// pcmBuffer builds the go-audio buffer for a set of frames, used to write
// samples back to disk.
func pcmBuffer(frames [][2]float64, rate, bitDepth int) *audio.IntBuffer {
	scale := float64(int64(1)<<(bitDepth-1) - 1)
	data := make([]int, 0, len(frames)*2)
	for _, f := range frames {
		data = append(data, int(f[0]*scale), int(f[1]*scale))
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// WriteWAV encodes a sample as 16 bit PCM wave.
func WriteWAV(w io.WriteSeeker, s *Sample) error {
	const bitDepth = 16
	enc := wav.NewEncoder(w, int(s.rate), bitDepth, 2, 1)
	if err := enc.Write(pcmBuffer(s.frames, int(s.rate), bitDepth)); err != nil {
		return errors.Wrap(err, "failed to write wav")
	}
	return errors.Wrap(enc.Close(), "failed to write wav")
}
