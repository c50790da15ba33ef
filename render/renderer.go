// Package render draws engine snapshots to a tcell screen
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/world"
)

// Board geometry: each grid cell is two columns wide to look square
const (
	CellWidth   = 2
	BorderWidth = 1
	HUDLines    = 6
)

// Glyphs
const (
	GlyphHead  = '█'
	GlyphBody  = '▓'
	GlyphScore = '●'
	GlyphBonus = '◆'
)

// View is everything one frame needs
type View struct {
	Snapshot      engine.Snapshot
	ClaimEligible bool
	IdleInterval  time.Duration
	Muted         bool
	Debug         string // empty hides the debug line
}

// Renderer draws views to a screen
// Not safe for concurrent use; the host calls Draw from its frame loop
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Required returns the minimum terminal size for a grid
func Required(grid int) (w, h int) {
	return grid*CellWidth + 2*BorderWidth, grid + 2*BorderWidth + HUDLines
}

// Draw renders one full frame and shows it
func (r *Renderer) Draw(v View) {
	snap := v.Snapshot
	theme := ThemeFor(snap.Mode)

	r.screen.SetStyle(theme.Background)
	r.screen.Clear()

	sw, sh := r.screen.Size()
	needW, needH := Required(snap.GridSize)
	if sw < needW || sh < needH {
		msg := fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", needW, needH, sw, sh)
		r.text(0, 0, theme.Error, msg)
		r.screen.Show()
		return
	}

	r.border(snap.GridSize, theme)
	r.items(snap.Items, theme)
	r.actor(snap, theme)
	r.banner(snap, theme)
	r.hud(v, theme, snap.GridSize+2*BorderWidth)

	r.screen.Show()
}

// cell fills one grid cell, both columns
func (r *Renderer) cell(x, y int, ch rune, style tcell.Style) {
	sx := BorderWidth + x*CellWidth
	sy := BorderWidth + y
	for i := 0; i < CellWidth; i++ {
		r.screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

func (r *Renderer) border(grid int, theme Theme) {
	right := grid*CellWidth + BorderWidth
	bottom := grid + BorderWidth

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, theme.Border)
		r.screen.SetContent(x, bottom, '─', nil, theme.Border)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, theme.Border)
		r.screen.SetContent(right, y, '│', nil, theme.Border)
	}
	r.screen.SetContent(0, 0, '┌', nil, theme.Border)
	r.screen.SetContent(right, 0, '┐', nil, theme.Border)
	r.screen.SetContent(0, bottom, '└', nil, theme.Border)
	r.screen.SetContent(right, bottom, '┘', nil, theme.Border)
}

func (r *Renderer) items(items []world.Item, theme Theme) {
	for _, it := range items {
		switch it.Kind {
		case world.KindScore:
			r.cell(it.Pos.X, it.Pos.Y, GlyphScore, theme.ScoreItem)
		case world.KindBonus:
			r.cell(it.Pos.X, it.Pos.Y, GlyphBonus, theme.BonusItem)
		}
	}
}

// actor draws tail first so the head wins on overlap
func (r *Renderer) actor(snap engine.Snapshot, theme Theme) {
	for i := len(snap.Actor) - 1; i >= 1; i-- {
		p := snap.Actor[i]
		r.cell(p.X, p.Y, GlyphBody, theme.Body)
	}
	if len(snap.Actor) > 0 {
		head := snap.Actor[0]
		style := theme.Head
		if snap.State == engine.StateGameOver {
			style = theme.Error
		}
		r.cell(head.X, head.Y, GlyphHead, style)
	}
}

// banner centers a state prompt over the board
func (r *Renderer) banner(snap engine.Snapshot, theme Theme) {
	var msg string
	style := theme.Accent
	switch snap.State {
	case engine.StateIdle:
		msg = " press space to start "
	case engine.StatePaused:
		msg = " paused "
	case engine.StateGameOver:
		msg = " game over - space to restart "
		style = theme.Error
	default:
		return
	}
	width := snap.GridSize*CellWidth + 2*BorderWidth
	x := max((width-len([]rune(msg)))/2, 0)
	y := BorderWidth + snap.GridSize/2
	r.text(x, y, style.Reverse(true), msg)
}

// text writes a single-width string starting at x, y
func (r *Renderer) text(x, y int, style tcell.Style, s string) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
