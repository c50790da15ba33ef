package world

import "github.com/lixenwraith/gaia-snake/core"

// ItemKind tags a collectible
type ItemKind uint8

const (
	KindNone ItemKind = iota
	KindScore
	KindBonus
)

func (k ItemKind) String() string {
	switch k {
	case KindScore:
		return "score"
	case KindBonus:
		return "bonus"
	}
	return "none"
}

// Item is a collectible occupying one cell
type Item struct {
	Pos  core.Point `msgpack:"pos" json:"pos"`
	Kind ItemKind   `msgpack:"kind" json:"kind"`
}
