package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sound timings
const (
	captureDuration = 40 * time.Millisecond
	captureAttack   = 2 * time.Millisecond
	captureRelease  = 30 * time.Millisecond

	whooshDuration = 250 * time.Millisecond
	whooshAttack   = 60 * time.Millisecond
	whooshRelease  = 150 * time.Millisecond

	chimeNoteDuration = 180 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 140 * time.Millisecond
)

// Capture pitch spans two octaves above captureBaseFreq as the text fills in
const captureBaseFreq = 440.0

// chimeNotes is a rising C major arpeggio
var chimeNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given wave shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CaptureFrequency maps capture progress in [0,1] to blip pitch
func CaptureFrequency(progress float64) float64 {
	progress = min(max(progress, 0), 1)
	return captureBaseFreq * math.Exp2(2*progress)
}

// CreateCaptureSound is a short sine blip pitched by progress
func CreateCaptureSound(cfg *Config, progress float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(CaptureFrequency(progress), captureDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, captureDuration, captureAttack, captureRelease, rate)
	return newVolume(shaped, 0.4*cfg.MasterVolume)
}

// CreateSpawnSound is a noise swell for an arriving wave
func CreateSpawnSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, whooshDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, whooshDuration, whooshAttack, whooshRelease, rate)
	return newVolume(shaped, 0.25*cfg.MasterVolume)
}

// CreateCompleteSound plays the arpeggio once the text is fully lit
func CreateCompleteSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, f := range chimeNotes {
		osc := NewOscillator(f, chimeNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, chimeNoteDuration, chimeAttack, chimeRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.3*cfg.MasterVolume)
}
