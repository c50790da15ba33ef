package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/gaia-snake/store"
)

// formatLeaderboard renders standings as an aligned plain-text table
func formatLeaderboard(rows []store.Standing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-16s %10s %10s %10s %6s %6s\n", "#", "player", "tokens", "xp", "best", "wins", "games")
	for i, r := range rows {
		fmt.Fprintf(&b, "%-4s %-16s %10s %10s %10s %6d %6d\n",
			humanize.Ordinal(i+1), r.Player,
			humanize.Comma(int64(r.Tokens)), humanize.Comma(int64(r.XP)), humanize.Comma(int64(r.BestScore)),
			r.MaxWins, r.Games)
	}
	return b.String()
}
