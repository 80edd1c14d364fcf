// Package audio implements the tone sink on top of oto. Engines request
// cues as (frequency, duration) pairs; everything about how they sound,
// including whether they sound at all, is decided here.
package audio

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/arcbox/arcbox/internal/core"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	volume = 0.25
)

// Beeper plays sine tones through the system audio device. Safe to mute at
// runtime; Tone never blocks the caller.
type Beeper struct {
	ctx     *oto.Context
	ready   chan struct{}
	enabled atomic.Bool
}

var _ core.AudioSink = (*Beeper)(nil)

// NewBeeper opens the audio device. On failure the caller should fall back
// to core.NopSink; sound is never worth crashing over.
func NewBeeper(enabled bool) (*Beeper, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	b := &Beeper{ctx: ctx, ready: ready}
	b.enabled.Store(enabled)
	return b, nil
}

// SetEnabled mutes or unmutes the sink.
func (b *Beeper) SetEnabled(v bool) {
	b.enabled.Store(v)
}

// Enabled reports whether the sink is audible.
func (b *Beeper) Enabled() bool {
	return b.enabled.Load()
}

// Tone plays a sine tone at the given frequency for the given duration.
// Dropped silently when muted or while the device is still warming up.
func (b *Beeper) Tone(freqHz, durMs int) {
	if !b.enabled.Load() || freqHz <= 0 || durMs <= 0 {
		return
	}
	select {
	case <-b.ready:
	default:
		return
	}

	samples := genTone(float64(freqHz), durMs)
	go func() {
		reader := &toneReader{data: samples}
		player := b.ctx.NewPlayer(reader)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// genTone renders a sine burst with a short linear fade at both ends to
// avoid clicks.
func genTone(freq float64, durMs int) []byte {
	frames := sampleRate * durMs / 1000
	fade := sampleRate / 200 // 5ms
	if fade > frames/2 {
		fade = frames / 2
	}

	buf := make([]byte, frames*8)
	for i := 0; i < frames; i++ {
		s := volume * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
		switch {
		case i < fade:
			s *= float64(i) / float64(fade)
		case i > frames-fade:
			s *= float64(frames-i) / float64(fade)
		}
		putStereoF32(buf, i, s)
	}
	return buf
}

type toneReader struct {
	data []byte
	pos  int
}

func (r *toneReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels
// at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
