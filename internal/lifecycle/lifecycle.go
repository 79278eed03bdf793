package lifecycle

import "sync/atomic"

const (
	stateUninitialized int32 = iota
	stateInitialized
)

// Manager guards a two-state lifecycle. The zero value is not ready; use New.
type Manager struct {
	state    atomic.Int32
	teardown func()
}

// New returns a Manager in the uninitialized state.
func New() *Manager { return &Manager{} }

// Initialize runs setup and transitions to the initialized state. When
// already initialized it does nothing and returns nil. setup returns the
// teardown hook Shutdown will run; the state flips only after setup succeeds,
// so concurrent readers never observe a half-built library.
func (m *Manager) Initialize(setup func() (func(), error)) error {
	if m.state.Load() == stateInitialized {
		return nil
	}
	teardown, err := setup()
	if err != nil {
		return err
	}
	m.teardown = teardown
	m.state.Store(stateInitialized)
	return nil
}

// Shutdown transitions back to uninitialized and runs the teardown hook
// exactly once per initialized period. A no-op when not initialized. The
// state flips before teardown runs, so entry points checking Initialized
// stop admitting work first.
func (m *Manager) Shutdown() {
	if !m.state.CompareAndSwap(stateInitialized, stateUninitialized) {
		return
	}
	if m.teardown != nil {
		m.teardown()
		m.teardown = nil
	}
}

// Initialized reports the current state. Safe from any goroutine.
func (m *Manager) Initialized() bool {
	return m.state.Load() == stateInitialized
}
