package core

// AudioSink receives fire-and-forget tone cues from game engines. Games
// only decide when a cue fires, never how it sounds; the platform decides
// whether anything is audible at all. Implementations must not block the
// simulation tick.
type AudioSink interface {
	// Tone plays a tone at the given frequency for the given duration.
	Tone(freqHz, durMs int)
}

// NopSink discards all cues. Used when audio is disabled or the audio
// context failed to initialize.
type NopSink struct{}

func (NopSink) Tone(_, _ int) {}

// RecorderSink captures cues for tests.
type RecorderSink struct {
	Cues []Cue
}

// Cue is one recorded tone request.
type Cue struct {
	FreqHz int
	DurMs  int
}

func (r *RecorderSink) Tone(freqHz, durMs int) {
	r.Cues = append(r.Cues, Cue{FreqHz: freqHz, DurMs: durMs})
}
