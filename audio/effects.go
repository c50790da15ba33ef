package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gaia-snake/parameter"
)

// WaveType defines oscillator wave shapes; every cue uses at least one
type WaveType int

const (
	WaveSine   WaveType = iota // chomp, bell
	WaveSquare                 // level-up arpeggio, coin
	WaveSaw                    // game over
	WaveNoise                  // elevation whoosh
)

// sample returns the wave value at phase in [0, 1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// oscillator streams a fixed number of mono samples duplicated to both channels
type oscillator struct {
	wave      WaveType
	step      float64 // phase advance per sample
	phase     float64
	remaining int
}

// NewOscillator creates a fixed-length tone or noise burst
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:      wave,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	n = min(len(samples), o.remaining)
	for i := 0; i < n; i++ {
		v := o.wave.sample(o.phase)
		samples[i] = [2]float64{v, v}
		_, o.phase = math.Modf(o.phase + o.step)
	}
	o.remaining -= n
	return n, n > 0
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack ramp and a linear release tail
// and cuts it off after total samples
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

// gain returns the multiplier at sample position p; release wins where the ramps overlap
func (e *envelope) gain(p int) float64 {
	if left := e.total - p; e.release > 0 && left <= e.release {
		return float64(left) / float64(e.release)
	}
	if e.attack > 0 && p < e.attack {
		return float64(p) / float64(e.attack)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples[:min(len(samples), e.total-e.pos)])
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok || n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// chompSound is a short E4 sine blip
func chompSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ChompSoundDuration
	sine, err := generators.SineTone(rate, 329.63)
	if err != nil {
		// rate too low for the pitch
		return tone(329.63, WaveSine, d, parameter.ChompSoundAttack, parameter.ChompSoundRelease, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, parameter.ChompSoundAttack, parameter.ChompSoundRelease, rate)
}

// bellSound is A5 with an octave overtone
func bellSound(rate beep.SampleRate) beep.Streamer {
	fund := tone(880, WaveSine, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, rate)
	over := tone(1760, WaveSine, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// levelUpSound is a rising C major arpeggio
func levelUpSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = tone(f, WaveSquare, parameter.ArpeggioNoteDuration, parameter.ArpeggioNoteAttack, parameter.ArpeggioNoteRelease, rate)
	}
	return beep.Seq(seq...)
}

// elevatedSound is a swelling noise burst
func elevatedSound(rate beep.SampleRate) beep.Streamer {
	return tone(0, WaveNoise, parameter.WhooshSoundDuration, parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)
}

// gameOverSound is a falling saw pair
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.BuzzSoundDuration / 2
	return beep.Seq(
		tone(220, WaveSaw, half, parameter.BuzzSoundAttack, half/4, rate),
		tone(110, WaveSaw, half, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease/2, rate),
	)
}

// coinSound is the two-note B5-E6 chime
func coinSound(rate beep.SampleRate) beep.Streamer {
	n1 := tone(987.77, WaveSquare, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, rate)
	n2 := tone(1318.51, WaveSquare, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, rate)
	return beep.Seq(n1, n2)
}

// Sound returns a fresh streamer for cue at the configured gain, nil for unknown cues
func Sound(cue Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueChomp:
		s = chompSound(rate)
	case CueBell:
		s = bellSound(rate)
	case CueLevelUp:
		s = levelUpSound(rate)
	case CueElevated:
		s = elevatedSound(rate)
	case CueGameOver:
		s = gameOverSound(rate)
	case CueCoin:
		s = coinSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.volume(cue))
}
