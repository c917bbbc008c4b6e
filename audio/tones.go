package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/zombie-conga/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

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

// envelope applies linear attack and release to a stream of fixed length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or negative is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CaptureCue is a bright chirp: a sine at the capture pitch over its octave
func CaptureCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.CaptureCueDuration
	fund := NewEnvelope(NewOscillator(parameter.CaptureCueFreq, d, WaveSine, rate), d, 5*time.Millisecond, d/2, rate)
	over := NewEnvelope(NewOscillator(parameter.CaptureCueFreq*2, d, WaveSine, rate), d, 5*time.Millisecond, d*3/4, rate)
	return newVolume(beep.Mix(newVolume(fund, 0.5), newVolume(over, 0.2)), 0.8)
}

// HitCue is a low saw buzz with a short attack
func HitCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.HitCueDuration
	osc := NewOscillator(parameter.HitCueFreq, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 10*time.Millisecond, d/2, rate), 0.35)
}

var (
	winNotes  = []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6
	loseNotes = []float64{392.00, 349.23, 311.13, 261.63}  // G4 F4 Eb4 C4
)

// Jingle plays a rising arpeggio for a win or a falling one for a loss
func Jingle(rate beep.SampleRate, won bool) beep.Streamer {
	notes := loseNotes
	wave := WaveSquare
	if won {
		notes = winNotes
		wave = WaveSine
	}

	d := parameter.JingleNoteDuration
	seq := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		nd := d
		if i == len(notes)-1 {
			nd = 2 * d
		}
		seq = append(seq, NewEnvelope(NewOscillator(f, nd, wave, rate), nd, 5*time.Millisecond, nd/3, rate))
	}
	return newVolume(beep.Seq(seq...), 0.3)
}

// musicLoop is an endless bass-and-kick groove, bar after bar
type musicLoop struct {
	rate  beep.SampleRate
	pos   int
	beat  int
	kick  int
	bass  beep.Streamer
	notes []float64
}

const musicBeat = 500 * time.Millisecond

var bassLine = []float64{55.00, 55.00, 65.41, 73.42} // A1 A1 C2 D2

func newMusicLoop(rate beep.SampleRate) *musicLoop {
	return &musicLoop{
		rate:  rate,
		beat:  rate.N(musicBeat),
		kick:  rate.N(90 * time.Millisecond),
		notes: bassLine,
	}
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := m.pos % m.beat
		if beatPos == 0 {
			note := m.notes[(m.pos/m.beat)%len(m.notes)]
			m.bass, _ = generators.SineTone(m.rate, note)
		}

		var bass [1][2]float64
		if m.bass != nil {
			m.bass.Stream(bass[:])
		}

		kick := 0.0
		if beatPos < m.kick {
			env := 1 - float64(beatPos)/float64(m.kick)
			t := float64(beatPos) / float64(m.rate)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		v := 0.25*bass[0][0] + kick
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }

// Music returns the endless background loop attenuated to music level
func Music(rate beep.SampleRate) beep.Streamer {
	return &effects.Volume{Streamer: newMusicLoop(rate), Base: 2, Volume: parameter.MusicVolume}
}
