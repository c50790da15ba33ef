package audio

import (
	"github.com/lixenwraith/gaia-snake/parameter"
)

// Config holds audio output settings
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns the stock audio settings
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		CueVolumes: map[Cue]float64{
			CueChomp:    0.5,
			CueBell:     0.7,
			CueLevelUp:  0.6,
			CueElevated: 0.5,
			CueGameOver: 0.6,
			CueCoin:     0.7,
		},
	}
}

// volume returns the effective gain of a cue, clamped to [0, 1]
func (c Config) volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	v *= c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
