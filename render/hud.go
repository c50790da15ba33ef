package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/mode"
)

// hud draws the status block below the board, starting at row y
func (r *Renderer) hud(v View, theme Theme, y int) {
	snap := v.Snapshot
	prog := snap.Progression
	led := snap.Reward

	// Progress
	x := r.text(0, y, theme.Text, fmt.Sprintf("Score %s  Level %d  Tick %s",
		humanize.Comma(int64(prog.Score)), prog.Level, snap.EffectiveInterval.Round(time.Millisecond)))
	if snap.Escalation > 1 {
		r.text(x, y, theme.Warn, fmt.Sprintf("  x%s", humanize.FtoaWithDigits(snap.Escalation, 2)))
	}
	y++

	// Mode
	modeStyle := theme.Dim
	if snap.Mode == mode.Elevated {
		modeStyle = theme.Accent
	}
	r.text(0, y, modeStyle, fmt.Sprintf("Mode %s  Bonus %s", snap.Mode, humanize.Comma(int64(snap.BonusCollected))))
	y++

	// Ledger
	r.text(0, y, theme.Text, fmt.Sprintf("Tokens %s  XP %s  Streak %d  Played %s",
		humanize.Comma(int64(led.Tokens)), humanize.Comma(int64(led.XP)), led.ConsecutiveWins,
		PlayedTime(led.PlayTime, v.IdleInterval)))
	y++

	// State and claim prompt
	x = r.text(0, y, theme.Accent, snap.State.String())
	if v.ClaimEligible {
		x = r.text(x, y, theme.Warn, "  [c] claim win")
	}
	if v.Muted {
		r.text(x, y, theme.Dim, "  muted")
	}
	y++

	r.text(0, y, theme.Dim, helpLine(snap.State))
	y++

	if v.Debug != "" {
		r.text(0, y, theme.Dim, v.Debug)
	}
}

// helpLine lists the keys that do something in state s
func helpLine(s engine.GameState) string {
	parts := []string{}
	switch s {
	case engine.StateIdle:
		parts = append(parts, "space start")
	case engine.StateRunning:
		parts = append(parts, "arrows/wasd steer", "space pause", "c claim")
	case engine.StatePaused:
		parts = append(parts, "space resume")
	case engine.StateGameOver:
		parts = append(parts, "space restart")
	}
	parts = append(parts, "r reset", "n new", "m mute", "q quit")
	return strings.Join(parts, "  ")
}

// PlayedTime renders idle timer fires as elapsed wall time, e.g. "3 hours"
func PlayedTime(fires int, interval time.Duration) string {
	if fires <= 0 || interval <= 0 {
		return "-"
	}
	epoch := time.Unix(0, 0)
	d := time.Duration(fires) * interval
	return strings.TrimSpace(humanize.RelTime(epoch, epoch.Add(d), "", ""))
}
