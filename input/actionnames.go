package input

import (
	"slices"

	"github.com/lixenwraith/gaia-snake/core"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":         {Intent: IntentQuit},
	"toggle_mute":  {Intent: IntentToggleMute},
	"toggle_debug": {Intent: IntentToggleDebug},

	"move_up":    move(core.DirUp),
	"move_down":  move(core.DirDown),
	"move_left":  move(core.DirLeft),
	"move_right": move(core.DirRight),

	"toggle":   {Intent: IntentToggle},
	"reset":    {Intent: IntentReset},
	"new_game": {Intent: IntentNewGame},
	"claim":    {Intent: IntentClaim},
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for n := range actionRegistry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
