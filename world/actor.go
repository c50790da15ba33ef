package world

import (
	"fmt"

	"github.com/lixenwraith/gaia-snake/core"
)

// Actor is the player-controlled body, head first
// Values are immutable; every mutation returns a new Actor
type Actor struct {
	cells   []core.Point
	dir     core.Direction
	pending core.Direction
}

// NewActor creates a single-cell actor heading dir
func NewActor(head core.Point, dir core.Direction) Actor {
	return Actor{
		cells: []core.Point{head},
		dir:   dir,
	}
}

// NewActorFromCells builds an actor from head-first cells
func NewActorFromCells(cells []core.Point, dir core.Direction) (Actor, error) {
	a := Actor{cells: append([]core.Point(nil), cells...), dir: dir}
	if err := a.Validate(); err != nil {
		return Actor{}, err
	}
	return a, nil
}

func (a Actor) Head() core.Point {
	return a.cells[0]
}

func (a Actor) Tail() core.Point {
	return a.cells[len(a.cells)-1]
}

func (a Actor) Len() int {
	return len(a.cells)
}

// Cells returns a copy of the body, head first
func (a Actor) Cells() []core.Point {
	return append([]core.Point(nil), a.cells...)
}

// Direction returns the heading applied on the last tick
func (a Actor) Direction() core.Direction {
	return a.dir
}

// Pending returns the buffered request, DirNone when empty
func (a Actor) Pending() core.Direction {
	return a.pending
}

// Occupies reports whether p is any body cell
func (a Actor) Occupies(p core.Point) bool {
	for _, c := range a.cells {
		if c == p {
			return true
		}
	}
	return false
}

// Request buffers d for the next tick
// The exact reverse of the current heading is ignored; later requests in the same tick replace earlier ones
func (a Actor) Request(d core.Direction) (Actor, bool) {
	if !d.Valid() || d == a.dir.Reverse() {
		return a, false
	}
	a.pending = d
	return a, true
}

// heading is the direction the next step will use
func (a Actor) heading() core.Direction {
	if a.pending != core.DirNone {
		return a.pending
	}
	return a.dir
}

// advance moves to next with the committed heading, keeping the tail when growing
func (a Actor) advance(next core.Point, dir core.Direction, grow bool) Actor {
	n := len(a.cells)
	if !grow {
		n--
	}
	cells := make([]core.Point, 0, n+1)
	cells = append(cells, next)
	cells = append(cells, a.cells[:n]...)
	return Actor{cells: cells, dir: dir}
}

// Validate checks the body is non-empty, pairwise distinct and contiguous
func (a Actor) Validate() error {
	if len(a.cells) == 0 {
		return fmt.Errorf("actor has no cells")
	}
	seen := make(map[core.Point]struct{}, len(a.cells))
	for i, c := range a.cells {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("actor cell %d %v duplicated", i, c)
		}
		seen[c] = struct{}{}
		if i > 0 && !a.cells[i-1].Adjacent(c) {
			return fmt.Errorf("actor cells %d %v and %d %v not adjacent", i-1, a.cells[i-1], i, c)
		}
	}
	return nil
}
