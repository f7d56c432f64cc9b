// Package sound synthesizes the short tones played for game cues.
// It only produces PCM bytes; playing them is up to the caller.
package sound

import (
	"math"
	"time"

	"github.com/tomz197/giftdrop/internal/feedback"
)

// SampleRate is the rate tones are rendered at by default.
const SampleRate = 44100

// silence is the gain every tone decays to by its end.
const silence = 0.0001

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
)

// Tone is a single oscillator note with an exponential fade-out and an
// optional exponential pitch sweep. Sweep and fade end early when their
// durations are set and then hold their final value.
type Tone struct {
	Freq     float64 // Hz at the start
	EndFreq  float64 // Hz once the sweep ends; 0 keeps Freq
	Duration time.Duration
	Sweep    time.Duration // 0 sweeps over the whole tone
	Fade     time.Duration // 0 fades over the whole tone
	Wave     Wave
	Gain     float64 // Peak amplitude in [0, 1]
}

// Chord is a set of tones started together and mixed.
type Chord []Tone

// Presets for each cue.
var (
	Beep      = Tone{Freq: 660, Duration: 60 * time.Millisecond, Wave: Sine, Gain: 0.05}
	StartHigh = Tone{Freq: 880, Duration: 60 * time.Millisecond, Wave: Sine, Gain: 0.06}
	StartLow  = Tone{Freq: 660, Duration: 60 * time.Millisecond, Wave: Sine, Gain: 0.06}
	Pickup    = Tone{Freq: 880, Duration: 50 * time.Millisecond, Wave: Square, Gain: 0.04}
)

// Boom drops to 40 Hz by 180 ms, is silent by 200 ms and stops at 220 ms.
var Boom = Tone{
	Freq:     140,
	EndFreq:  40,
	Duration: 220 * time.Millisecond,
	Sweep:    180 * time.Millisecond,
	Fade:     200 * time.Millisecond,
	Wave:     Triangle,
	Gain:     0.10,
}

// ForCue returns the chord played for a cue, or nil if the cue is silent.
func ForCue(c feedback.Cue) Chord {
	switch c {
	case feedback.CueGameStarted:
		return Chord{StartLow, StartHigh}
	case feedback.CueGiftCollected:
		return Chord{Pickup}
	case feedback.CueBombHit, feedback.CueGameOver:
		return Chord{Boom}
	default:
		return nil
	}
}

// sample returns the oscillator value in [-1, 1] for a phase in cycles.
func (w Wave) sample(phase float64) float64 {
	p := phase - math.Floor(phase)
	switch w {
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 1 - 4*math.Abs(p-0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Samples renders the tone as mono float samples.
func (t Tone) Samples(sampleRate int) []float64 {
	n := int(math.Round(t.Duration.Seconds() * float64(sampleRate)))
	if n <= 0 || t.Gain <= 0 || t.Freq <= 0 {
		return nil
	}
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		freq, gain := t.at(float64(i) / float64(sampleRate))
		out[i] = t.Wave.sample(phase) * gain
		phase += freq / float64(sampleRate)
	}
	return out
}

// at returns the frequency and gain sec seconds into the tone.
func (t Tone) at(sec float64) (freq, gain float64) {
	freq = t.Freq
	if t.EndFreq > 0 {
		freq = t.Freq * math.Pow(t.EndFreq/t.Freq, ramp(sec, t.Sweep, t.Duration))
	}
	gain = t.Gain * math.Pow(silence/t.Gain, ramp(sec, t.Fade, t.Duration))
	return freq, gain
}

// ramp returns progress in [0, 1] through a ramp of length d, or of
// length whole when d is 0.
func ramp(sec float64, d, whole time.Duration) float64 {
	if d <= 0 {
		d = whole
	}
	return min(sec/d.Seconds(), 1)
}

// PCM renders the tone as 16-bit little-endian stereo.
func (t Tone) PCM(sampleRate int) []byte {
	return Chord{t}.PCM(sampleRate)
}

// PCM mixes the chord's tones and renders 16-bit little-endian stereo.
// The result is as long as the longest tone.
func (c Chord) PCM(sampleRate int) []byte {
	var mix []float64
	for _, t := range c {
		s := t.Samples(sampleRate)
		if len(s) > len(mix) {
			mix = append(mix, make([]float64, len(s)-len(mix))...)
		}
		for i, v := range s {
			mix[i] += v
		}
	}
	return encode(mix)
}

func encode(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, v := range samples {
		v = math.Max(-1, math.Min(1, v))
		s := int16(v * math.MaxInt16)
		buf[i*4] = byte(s)
		buf[i*4+1] = byte(s >> 8)
		buf[i*4+2] = byte(s)
		buf[i*4+3] = byte(s >> 8)
	}
	return buf
}
