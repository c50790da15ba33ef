package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gaia-snake/core"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent    IntentType
	Direction core.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

func move(d core.Direction) KeyEntry { return KeyEntry{Intent: IntentMove, Direction: d} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyF1:     {Intent: IntentToggleDebug},
			tcell.KeyEnter:  {Intent: IntentToggle},
			tcell.KeyUp:     move(core.DirUp),
			tcell.KeyDown:   move(core.DirDown),
			tcell.KeyLeft:   move(core.DirLeft),
			tcell.KeyRight:  move(core.DirRight),
		},

		Runes: map[rune]KeyEntry{
			'w': move(core.DirUp),
			's': move(core.DirDown),
			'a': move(core.DirLeft),
			'd': move(core.DirRight),
			'k': move(core.DirUp),
			'j': move(core.DirDown),
			'h': move(core.DirLeft),
			'l': move(core.DirRight),

			' ': {Intent: IntentToggle},
			'p': {Intent: IntentToggle},
			'r': {Intent: IntentReset},
			'n': {Intent: IntentNewGame},
			'c': {Intent: IntentClaim},
			'm': {Intent: IntentToggleMute},
			'q': {Intent: IntentQuit},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event; rune keys match case-insensitively
// A rune reported with ModCtrl resolves as the matching Ctrl key
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if lr := unicode.ToLower(r); lr >= 'a' && lr <= 'z' {
				e, ok := kt.SpecialKeys[tcell.KeyCtrlA+tcell.Key(lr-'a')]
				return e, ok
			}
		}
		if e, ok := kt.Runes[r]; ok {
			return e, true
		}
		if r >= 'A' && r <= 'Z' {
			e, ok := kt.Runes[r+('a'-'A')]
			return e, ok
		}
		return KeyEntry{}, false
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
