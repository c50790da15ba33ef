package network

import "time"

// Config holds spectator feed configuration
type Config struct {
	// Address to bind
	Address string

	// Path serving the websocket upgrade
	Path string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	PingInterval time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
	ReadLimit       int64
}

// DefaultConfig returns local-only defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "127.0.0.1:7777",
		Path:            "/feed",
		MaxPeers:        16,
		WriteTimeout:    5 * time.Second,
		PongTimeout:     60 * time.Second,
		PingInterval:    54 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		SendQueueSize:   64,
		ReadLimit:       512,
	}
}

// DebugConfig returns defaults bound to addr
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}
