package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine translates terminal events into intents
// Stateless apart from the key table; safe for a single event goroutine
type Machine struct {
	table *KeyTable
}

// NewMachine creates a machine over table, or the default table when nil
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Process converts one terminal event into an intent
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e, ok := m.table.Lookup(ev)
		if !ok {
			return Intent{}
		}
		return Intent{Type: e.Intent, Direction: e.Direction}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
