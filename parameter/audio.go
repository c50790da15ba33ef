package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.6
)

// Chomp Sound (Score item)
const (
	ChompSoundDuration = 70 * time.Millisecond
	ChompSoundAttack   = 5 * time.Millisecond
	ChompSoundRelease  = 40 * time.Millisecond
)

// Bell Sound (Bonus item)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Arpeggio Sound (LevelUp)
const (
	ArpeggioNoteDuration = 60 * time.Millisecond
	ArpeggioNoteAttack   = 5 * time.Millisecond
	ArpeggioNoteRelease  = 30 * time.Millisecond
)

// Whoosh Sound (ModeElevated)
const (
	WhooshSoundDuration = 250 * time.Millisecond
	WhooshSoundAttack   = 80 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Buzz Sound (GameOver)
const (
	BuzzSoundDuration = 400 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 250 * time.Millisecond
)

// Coin Sound (RewardClaimed)
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)
