// Package world holds the board, the actor and the collectibles as immutable values.
// Every tick derives a new World from the previous one through Step, so callers can
// keep old values for snapshots and replay.
package world

import (
	"fmt"

	"github.com/lixenwraith/gaia-snake/core"
)

// World is the board state of one session
type World struct {
	size  int
	actor Actor
	items []Item
}

// New creates an empty size×size board holding actor
func New(size int, actor Actor) World {
	return World{size: size, actor: actor}
}

func (w World) Size() int {
	return w.size
}

func (w World) Actor() Actor {
	return w.actor
}

// Items returns a copy of the collectibles in placement order
func (w World) Items() []Item {
	return append([]Item(nil), w.items...)
}

// Count returns the number of items of kind k
func (w World) Count(k ItemKind) int {
	n := 0
	for _, it := range w.items {
		if it.Kind == k {
			n++
		}
	}
	return n
}

// Free reports whether p is on the board and not occupied by the actor or an item
func (w World) Free(p core.Point) bool {
	if !p.In(w.size) || w.actor.Occupies(p) {
		return false
	}
	return w.itemAt(p) < 0
}

// FreeCells returns the number of unoccupied cells
func (w World) FreeCells() int {
	return w.size*w.size - w.actor.Len() - len(w.items)
}

// WithItem places it, reporting false when its cell is not free
func (w World) WithItem(it Item) (World, bool) {
	if !w.Free(it.Pos) {
		return w, false
	}
	items := make([]Item, len(w.items), len(w.items)+1)
	copy(items, w.items)
	w.items = append(items, it)
	return w, true
}

// WithRequest buffers a direction request on the actor
func (w World) WithRequest(d core.Direction) (World, bool) {
	a, ok := w.actor.Request(d)
	if !ok {
		return w, false
	}
	w.actor = a
	return w, true
}

func (w World) itemAt(p core.Point) int {
	for i, it := range w.items {
		if it.Pos == p {
			return i
		}
	}
	return -1
}

func (w World) withoutItem(idx int) World {
	items := make([]Item, 0, len(w.items)-1)
	items = append(items, w.items[:idx]...)
	items = append(items, w.items[idx+1:]...)
	w.items = items
	return w
}

// Outcome describes what one Step did
type Outcome struct {
	Collision  Collision
	Head       core.Point // Proposed head, set on collision too
	Direction  core.Direction
	Consumed   ItemKind
	ScoreDelta int
	Grew       bool
	Spawned    int // Score items placed to keep one on the board
	Skipped    int // Score spawns skipped for lack of a free cell
}

// Step advances the actor one cell using the buffered direction
// On collision the world is returned unchanged
func (w World) Step(sp *Spawner) (World, Outcome) {
	dir := w.actor.heading()
	next := w.actor.Head().Add(dir)
	out := Outcome{Head: next, Direction: dir}

	idx := -1
	if next.In(w.size) {
		idx = w.itemAt(next)
	}
	grow := idx >= 0 && w.items[idx].Kind == KindScore

	if c := Classify(w.size, w.actor.cells, next, grow); c != CollisionNone {
		out.Collision = c
		return w, out
	}

	nw := w
	nw.actor = w.actor.advance(next, dir, grow)
	if idx >= 0 {
		kind := w.items[idx].Kind
		nw = nw.withoutItem(idx)
		out.Consumed = kind
		out.Grew = grow
		out.ScoreDelta = sp.points(kind)
	}

	// Keep one Score item on the board; a skipped spawn retries next tick
	if nw.Count(KindScore) == 0 {
		var ok bool
		if nw, ok = sp.SpawnScore(nw); ok {
			out.Spawned++
		} else {
			out.Skipped++
		}
	}

	mustValidate(nw)
	return nw, out
}

// Validate checks actor integrity and that no item overlaps the actor, another item or the border
func (w World) Validate() error {
	if err := w.actor.Validate(); err != nil {
		return err
	}
	for _, c := range w.actor.cells {
		if !c.In(w.size) {
			return fmt.Errorf("actor cell %v outside %dx%d board", c, w.size, w.size)
		}
	}
	seen := make(map[core.Point]struct{}, len(w.items))
	for _, it := range w.items {
		if !it.Pos.In(w.size) {
			return fmt.Errorf("%s item %v outside board", it.Kind, it.Pos)
		}
		if w.actor.Occupies(it.Pos) {
			return fmt.Errorf("%s item %v overlaps actor", it.Kind, it.Pos)
		}
		if _, dup := seen[it.Pos]; dup {
			return fmt.Errorf("items overlap at %v", it.Pos)
		}
		seen[it.Pos] = struct{}{}
	}
	return nil
}

// mustValidate trips on invariant violations in debug builds only
func mustValidate(w World) {
	if !debugAssertions {
		return
	}
	if err := w.Validate(); err != nil {
		panic(fmt.Errorf("world invariant violated: %w", err))
	}
}
