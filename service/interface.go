package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio backend, ledger writer, spectator feed, tick loop
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Register with a Hub
//  3. Start() - launch background goroutines, in dependency order
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources, in reverse order
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	// Return nil or empty slice if no dependencies
	Dependencies() []string

	// Start begins service operation (launches goroutines if any)
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Func adapts a pair of closures to Service
type Func struct {
	ID       string
	Requires []string
	OnStart  func() error
	OnStop   func() error
}

func (f *Func) Name() string           { return f.ID }
func (f *Func) Dependencies() []string { return f.Requires }

func (f *Func) Start() error {
	if f.OnStart == nil {
		return nil
	}
	return f.OnStart()
}

func (f *Func) Stop() error {
	if f.OnStop == nil {
		return nil
	}
	return f.OnStop()
}
