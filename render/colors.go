package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gaia-snake/mode"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbDim        = tcell.NewRGBColor(120, 120, 140) // Muted hint text

	RgbHeadNormal = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbBodyNormal = tcell.NewRGBColor(0, 170, 0)   // Normal Green

	RgbHeadElevated = tcell.NewRGBColor(255, 120, 255) // Bright Magenta
	RgbBodyElevated = tcell.NewRGBColor(170, 60, 200)  // Purple

	RgbScoreItem = tcell.NewRGBColor(255, 80, 80) // Normal Red
	RgbBonusItem = tcell.NewRGBColor(255, 255, 0) // Bright Yellow

	RgbAccent = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbWarn   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbError  = tcell.NewRGBColor(255, 0, 0)     // Error Red
)

// Theme bundles the styles for one mode
type Theme struct {
	Background tcell.Style
	Border     tcell.Style
	Head       tcell.Style
	Body       tcell.Style
	ScoreItem  tcell.Style
	BonusItem  tcell.Style
	Text       tcell.Style
	Dim        tcell.Style
	Accent     tcell.Style
	Warn       tcell.Style
	Error      tcell.Style
}

func baseTheme() Theme {
	bg := tcell.StyleDefault.Background(RgbBackground)
	return Theme{
		Background: bg,
		Border:     bg.Foreground(RgbBorder),
		ScoreItem:  bg.Foreground(RgbScoreItem),
		BonusItem:  bg.Foreground(RgbBonusItem),
		Text:       bg.Foreground(RgbText),
		Dim:        bg.Foreground(RgbDim),
		Accent:     bg.Foreground(RgbAccent).Bold(true),
		Warn:       bg.Foreground(RgbWarn).Bold(true),
		Error:      bg.Foreground(RgbError).Bold(true),
	}
}

// NormalTheme is the default palette
func NormalTheme() Theme {
	t := baseTheme()
	t.Head = t.Background.Foreground(RgbHeadNormal)
	t.Body = t.Background.Foreground(RgbBodyNormal)
	return t
}

// ElevatedTheme recolors the actor and border once the mode elevates
func ElevatedTheme() Theme {
	t := baseTheme()
	t.Head = t.Background.Foreground(RgbHeadElevated)
	t.Body = t.Background.Foreground(RgbBodyElevated)
	t.Border = t.Background.Foreground(RgbBodyElevated)
	return t
}

// ThemeFor selects the palette for a mode
func ThemeFor(m mode.Mode) Theme {
	if m == mode.Elevated {
		return ElevatedTheme()
	}
	return NormalTheme()
}
