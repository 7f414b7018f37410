package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/skyfighter/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// newTone creates an oscillator that plays for d.
func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewSource(int64(freq*1000) + 1)), //#nosec G404 -- audio noise
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// decay fades a stream exponentially; rate is in 1/seconds.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	k        float64
	position int
}

func newDecay(s beep.Streamer, k float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, k: k}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.rate)
		vol := math.Exp(-t * d.k)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// loop restarts a finite stream forever.
type loop struct {
	make func() beep.Streamer
	cur  beep.Streamer
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	empty := 0
	for n < len(samples) {
		if l.cur == nil {
			l.cur = l.make()
		}
		got, more := l.cur.Stream(samples[n:])
		n += got
		if !more || got == 0 {
			l.cur = nil
		}
		if got == 0 {
			empty++
			if empty > 1 {
				break
			}
			continue
		}
		empty = 0
	}
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (l *loop) Err() error { return nil }

// scale applies a linear volume. Zero or less is silent.
func scale(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// synth builds the streamer for a cue, or nil for unknown cues.
// Every cue except CueMusic is finite.
func synth(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueShot:
		return newDecay(newTone(880, ms(60), WaveSquare, rate), 40, rate)
	case core.CueExplosion:
		return beep.Seq(
			scale(newDecay(newTone(0, ms(250), WaveNoise, rate), 9, rate), 0.7),
			scale(newDecay(newTone(70, ms(300), WaveSine, rate), 6, rate), 0.5),
		)
	case core.CueDamage:
		return newDecay(newTone(110, ms(180), WaveSaw, rate), 12, rate)
	case core.CuePickup:
		return beep.Seq(
			newDecay(newTone(987.77, ms(80), WaveSine, rate), 10, rate),
			newDecay(newTone(1318.51, ms(160), WaveSine, rate), 10, rate),
		)
	case core.CueBoss:
		return beep.Seq(
			newTone(98, ms(200), WaveSaw, rate),
			newDecay(newTone(73.42, ms(400), WaveSaw, rate), 4, rate),
		)
	case core.CueWin:
		return beep.Seq(
			newTone(523.25, ms(120), WaveSquare, rate),
			newTone(659.25, ms(120), WaveSquare, rate),
			newDecay(newTone(783.99, ms(400), WaveSquare, rate), 4, rate),
		)
	case core.CueLose:
		return beep.Seq(
			newTone(392, ms(200), WaveSaw, rate),
			newDecay(newTone(261.63, ms(500), WaveSaw, rate), 3, rate),
		)
	case core.CueMusic:
		return &loop{make: func() beep.Streamer { return bassline(rate) }}
	default:
		return nil
	}
}

// bassline is one bar of the background loop.
func bassline(rate beep.SampleRate) beep.Streamer {
	notes := []float64{110, 110, 130.81, 98}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, newDecay(newTone(f, ms(300), WaveSaw, rate), 5, rate))
	}
	return scale(beep.Seq(parts...), 0.5)
}
