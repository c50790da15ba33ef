package network

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/event"
)

// ProtocolVersion is carried in every frame
const ProtocolVersion = 1

// FrameKind identifies the frame body
type FrameKind uint8

const (
	FrameSnapshot FrameKind = iota + 1
	FrameEvent
)

func (k FrameKind) String() string {
	switch k {
	case FrameSnapshot:
		return "snapshot"
	case FrameEvent:
		return "event"
	}
	return "unknown"
}

// Frame is one binary websocket message; exactly one body is set
type Frame struct {
	Version  int              `msgpack:"v" json:"v"`
	Kind     FrameKind        `msgpack:"k" json:"k"`
	Snapshot *engine.Snapshot `msgpack:"s,omitempty" json:"s,omitempty"`
	Event    *WireEvent       `msgpack:"e,omitempty" json:"e,omitempty"`
}

// WireEvent is a GameEvent with its type name resolved for clients
type WireEvent struct {
	Type    event.EventType `msgpack:"type" json:"type"`
	Name    string          `msgpack:"name" json:"name"`
	Session string          `msgpack:"session" json:"session"`
	Tick    uint64          `msgpack:"tick" json:"tick"`
	UnixMs  int64           `msgpack:"ts" json:"ts"`
	Payload any             `msgpack:"payload" json:"payload"`
}

// SnapshotFrame wraps s
func SnapshotFrame(s engine.Snapshot) Frame {
	return Frame{Version: ProtocolVersion, Kind: FrameSnapshot, Snapshot: &s}
}

// EventFrame wraps ev
func EventFrame(ev event.GameEvent) Frame {
	return Frame{
		Version: ProtocolVersion,
		Kind:    FrameEvent,
		Event: &WireEvent{
			Type:    ev.Type,
			Name:    ev.Type.String(),
			Session: ev.Session,
			Tick:    ev.Tick,
			UnixMs:  ev.Timestamp.UnixMilli(),
			Payload: ev.Payload,
		},
	}
}

// Encode marshals f with msgpack
func (f Frame) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", f.Kind, err)
	}
	return data, nil
}

// DecodeFrame unmarshals a frame; event payloads decode as generic maps
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("decode frame: %w", err)
	}
	if f.Version != ProtocolVersion {
		return f, fmt.Errorf("decode frame: protocol version %d, want %d", f.Version, ProtocolVersion)
	}
	return f, nil
}
