package network

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// peer is one spectator connection
type peer struct {
	conn *websocket.Conn
	addr string
	send chan []byte

	closeOnce sync.Once
}

func newPeer(conn *websocket.Conn, queueSize int) *peer {
	return &peer{
		conn: conn,
		addr: conn.RemoteAddr().String(),
		send: make(chan []byte, queueSize),
	}
}

// enqueue offers msg without blocking; false when the queue is full
func (p *peer) enqueue(msg []byte) bool {
	select {
	case p.send <- msg:
		return true
	default:
		return false
	}
}

// close ends the write pump; called with the feed lock held
func (p *peer) close() {
	p.closeOnce.Do(func() {
		close(p.send)
	})
}

// writePump drains the send queue and keeps the connection alive with pings
func (p *peer) writePump(cfg *Config) {
	ticker := time.NewTicker(cfg.PingInterval)
	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed"))
				return
			}
			if err := p.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound messages until the connection fails; the feed is read-only
func (p *peer) readPump(cfg *Config, onClose func()) {
	defer onClose()

	p.conn.SetReadLimit(cfg.ReadLimit)
	p.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
		return nil
	})
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}
