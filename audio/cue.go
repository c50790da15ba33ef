package audio

// Cue identifies a short sound effect bound to a game event
type Cue int

const (
	CueChomp    Cue = iota // Score item eaten
	CueBell                // Bonus item eaten
	CueLevelUp             // level boundary crossed
	CueElevated            // mode elevated
	CueGameOver            // collision
	CueCoin                // win claimed
)

var cueNames = [...]string{
	CueChomp:    "chomp",
	CueBell:     "bell",
	CueLevelUp:  "levelup",
	CueElevated: "elevated",
	CueGameOver: "gameover",
	CueCoin:     "coin",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// AllCues lists every cue in declaration order
func AllCues() []Cue {
	out := make([]Cue, len(cueNames))
	for i := range out {
		out[i] = Cue(i)
	}
	return out
}
