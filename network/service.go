package network

import (
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/event"
	"github.com/lixenwraith/gaia-snake/status"
)

// Feed broadcasts snapshots and events to websocket spectators
// It is an http.Handler, an engine.EventHandler and an engine.SnapshotSink
type Feed struct {
	config   *Config
	log      *logrus.Entry
	upgrader websocket.Upgrader

	mu     sync.Mutex
	peers  map[*peer]struct{}
	last   []byte // Latest snapshot frame, sent to new peers
	closed bool

	statPeers   *atomic.Int64
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
}

// NewFeed creates a feed; nil config uses DefaultConfig
func NewFeed(cfg *Config, log *logrus.Entry, reg *status.Registry) *Feed {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Feed{
		config: cfg,
		log:    log.WithField("component", "feed"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		peers:       make(map[*peer]struct{}),
		statPeers:   reg.Ints.Get("feed.peers"),
		statFrames:  reg.Ints.Get("feed.frames"),
		statDropped: reg.Ints.Get("feed.dropped"),
	}
}

// ServeHTTP upgrades to a websocket and registers a spectator
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	full := f.closed || (f.config.MaxPeers > 0 && len(f.peers) >= f.config.MaxPeers)
	f.mu.Unlock()
	if full {
		http.Error(w, "feed unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.WithError(err).Debug("upgrade failed")
		return
	}

	p := newPeer(conn, f.config.SendQueueSize)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		conn.Close()
		return
	}
	f.peers[p] = struct{}{}
	if f.last != nil {
		p.enqueue(f.last)
	}
	count := len(f.peers)
	f.mu.Unlock()

	f.statPeers.Store(int64(count))
	f.log.WithFields(logrus.Fields{"peer": p.addr, "peers": count}).Info("spectator connected")

	core.Go(func() { p.writePump(f.config) })
	core.Go(func() { p.readPump(f.config, func() { f.remove(p) }) })
}

func (f *Feed) remove(p *peer) {
	f.mu.Lock()
	if _, ok := f.peers[p]; ok {
		delete(f.peers, p)
		p.close()
	}
	count := len(f.peers)
	f.mu.Unlock()

	f.statPeers.Store(int64(count))
	f.log.WithFields(logrus.Fields{"peer": p.addr, "peers": count}).Info("spectator disconnected")
}

// broadcast queues data to every peer, dropping for peers whose queue is full
func (f *Feed) broadcast(data []byte, snapshot bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if snapshot {
		f.last = data
	}
	for p := range f.peers {
		if p.enqueue(data) {
			f.statFrames.Add(1)
		} else {
			f.statDropped.Add(1)
		}
	}
}

func (f *Feed) publish(fr Frame) {
	data, err := fr.Encode()
	if err != nil {
		f.log.WithError(err).Warn("frame dropped")
		return
	}
	f.broadcast(data, fr.Kind == FrameSnapshot)
}

// PublishSnapshot implements engine.SnapshotSink
func (f *Feed) PublishSnapshot(s engine.Snapshot) {
	f.publish(SnapshotFrame(s))
}

// HandleEvent implements engine.EventHandler
func (f *Feed) HandleEvent(_ engine.Snapshot, ev event.GameEvent) {
	f.publish(EventFrame(ev))
}

// EventTypes returns every domain event
func (f *Feed) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreChanged,
		event.EventBonusCollected,
		event.EventLevelUp,
		event.EventModeElevated,
		event.EventGameOver,
		event.EventRewardClaimed,
		event.EventXPAccrued,
		event.EventStateChanged,
	}
}

// PeerCount returns connected spectator count
func (f *Feed) PeerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.peers)
}

// Close disconnects every spectator and rejects new ones
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	for p := range f.peers {
		delete(f.peers, p)
		p.close()
	}
	f.statPeers.Store(0)
}
