package world

import "github.com/lixenwraith/gaia-snake/core"

// Collision classifies a proposed head move
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	}
	return "none"
}

// Classify decides whether moving the head of body to next is safe on a size×size board
// The tail cell vacates this tick unless the actor grows, so it only blocks when grow is set
func Classify(size int, body []core.Point, next core.Point, grow bool) Collision {
	if !next.In(size) {
		return CollisionWall
	}
	limit := len(body)
	if !grow {
		limit--
	}
	for i := 0; i < limit; i++ {
		if body[i] == next {
			return CollisionSelf
		}
	}
	return CollisionNone
}
