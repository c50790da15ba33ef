package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/mode"
	"github.com/lixenwraith/gaia-snake/world"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// row reads a screen line as text
func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// gridCell returns the rune and style at grid position p
func gridCell(screen tcell.Screen, p core.Point) (rune, tcell.Style) {
	ch, _, style, _ := screen.GetContent(BorderWidth+p.X*CellWidth, BorderWidth+p.Y)
	return ch, style
}

func runwaySnapshot(t *testing.T) engine.Snapshot {
	t.Helper()
	g, _ := engine.NewTestGame(engine.RunwayConfig())
	g.Start()
	g.Tick()
	g.Tick()
	return g.Snapshot()
}

func TestDrawBoard(t *testing.T) {
	screen := newScreen(t, 80, 40)
	r := NewRenderer(screen)
	snap := runwaySnapshot(t)

	r.Draw(View{Snapshot: snap})

	// Corners of a 20x20 board
	if ch, _, _, _ := screen.GetContent(0, 0); ch != '┌' {
		t.Errorf("Expected top-left corner, got %q", ch)
	}
	right := 20*CellWidth + BorderWidth
	if ch, _, _, _ := screen.GetContent(right, 21); ch != '┘' {
		t.Errorf("Expected bottom-right corner, got %q", ch)
	}

	head := snap.Actor[0]
	if head != (core.Point{X: 2, Y: 0}) {
		t.Fatalf("Expected head at (2,0) after two ticks, got %v", head)
	}
	if ch, _ := gridCell(screen, head); ch != GlyphHead {
		t.Errorf("Expected head glyph, got %q", ch)
	}
	for _, p := range snap.Actor[1:] {
		if ch, _ := gridCell(screen, p); ch != GlyphBody {
			t.Errorf("Expected body glyph at %v, got %q", p, ch)
		}
	}
	// Both columns of a cell are filled
	if ch, _, _, _ := screen.GetContent(BorderWidth+head.X*CellWidth+1, BorderWidth+head.Y); ch != GlyphHead {
		t.Errorf("Expected second head column, got %q", ch)
	}

	if ch, _ := gridCell(screen, core.Point{X: 19, Y: 19}); ch != GlyphScore {
		t.Errorf("Expected score item glyph, got %q", ch)
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newScreen(t, 100, 40)
	r := NewRenderer(screen)
	snap := runwaySnapshot(t)
	snap.Progression.Score = 1240
	snap.Reward.Tokens = 12000
	snap.Reward.XP = 3400
	snap.Reward.ConsecutiveWins = 3
	snap.Reward.PlayTime = 2

	r.Draw(View{
		Snapshot:      snap,
		ClaimEligible: true,
		IdleInterval:  time.Hour,
		Debug:         "engine.ticks=2",
	})

	y := 22
	tests := []struct {
		line int
		want string
	}{
		{0, "Score 1,240"},
		{0, "Level 1"},
		{1, "Mode Normal"},
		{2, "Tokens 12,000"},
		{2, "XP 3,400"},
		{2, "Streak 3"},
		{2, "Played 2 hours"},
		{3, "Running"},
		{3, "[c] claim win"},
		{4, "space pause"},
		{5, "engine.ticks=2"},
	}
	for _, tt := range tests {
		if got := row(screen, y+tt.line); !strings.Contains(got, tt.want) {
			t.Errorf("HUD line %d: expected %q in %q", tt.line, tt.want, strings.TrimRight(got, " "))
		}
	}
}

func TestDrawEscalationAndMute(t *testing.T) {
	screen := newScreen(t, 100, 40)
	r := NewRenderer(screen)
	snap := runwaySnapshot(t)
	snap.Escalation = 1.4

	r.Draw(View{Snapshot: snap, Muted: true})

	if got := row(screen, 22); !strings.Contains(got, "x1.4") {
		t.Errorf("Expected escalation marker, got %q", strings.TrimRight(got, " "))
	}
	if got := row(screen, 25); !strings.Contains(got, "muted") || strings.Contains(got, "claim win") {
		t.Errorf("Expected muted without claim prompt, got %q", strings.TrimRight(got, " "))
	}
}

func TestDrawElevatedTheme(t *testing.T) {
	screen := newScreen(t, 80, 40)
	r := NewRenderer(screen)
	snap := runwaySnapshot(t)

	r.Draw(View{Snapshot: snap})
	_, normal := gridCell(screen, snap.Actor[0])

	snap.Mode = mode.Elevated
	r.Draw(View{Snapshot: snap})
	_, elevated := gridCell(screen, snap.Actor[0])

	if normal == elevated {
		t.Error("Expected elevated head style to differ from normal")
	}
	if elevated != ElevatedTheme().Head {
		t.Error("Expected elevated head to use ElevatedTheme")
	}
	if got := row(screen, 23); !strings.Contains(got, "Mode Elevated") {
		t.Errorf("Expected Mode Elevated, got %q", strings.TrimRight(got, " "))
	}
}

func TestDrawBanners(t *testing.T) {
	tests := []struct {
		name  string
		state engine.GameState
		want  string
	}{
		{"idle", engine.StateIdle, "press space to start"},
		{"paused", engine.StatePaused, "paused"},
		{"game over", engine.StateGameOver, "game over"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newScreen(t, 80, 40)
			r := NewRenderer(screen)
			snap := runwaySnapshot(t)
			snap.State = tt.state

			r.Draw(View{Snapshot: snap})

			if got := row(screen, BorderWidth+snap.GridSize/2); !strings.Contains(got, tt.want) {
				t.Errorf("Expected banner %q, got %q", tt.want, strings.TrimRight(got, " "))
			}
		})
	}
}

func TestDrawBonusItem(t *testing.T) {
	screen := newScreen(t, 80, 40)
	r := NewRenderer(screen)
	snap := runwaySnapshot(t)
	snap.Items = append(snap.Items, world.Item{Pos: core.Point{X: 5, Y: 5}, Kind: world.KindBonus})

	r.Draw(View{Snapshot: snap})

	if ch, _ := gridCell(screen, core.Point{X: 5, Y: 5}); ch != GlyphBonus {
		t.Errorf("Expected bonus glyph, got %q", ch)
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := newScreen(t, 30, 10)
	r := NewRenderer(screen)

	r.Draw(View{Snapshot: runwaySnapshot(t)})

	if got := row(screen, 0); !strings.Contains(got, "too small") {
		t.Errorf("Expected size warning, got %q", strings.TrimRight(got, " "))
	}
	if ch, _, _, _ := screen.GetContent(0, 1); ch != ' ' && ch != 0 {
		t.Errorf("Expected no board, got %q", ch)
	}
}

func TestRequired(t *testing.T) {
	w, h := Required(20)
	if w != 42 || h != 28 {
		t.Errorf("Expected 42x28, got %dx%d", w, h)
	}
}

func TestPlayedTime(t *testing.T) {
	if got := PlayedTime(0, time.Hour); got != "-" {
		t.Errorf("Expected -, got %q", got)
	}
	if got := PlayedTime(3, time.Hour); got != "3 hours" {
		t.Errorf("Expected 3 hours, got %q", got)
	}
}
