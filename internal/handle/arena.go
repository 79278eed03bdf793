package handle

import (
	"sync"

	"github.com/google/uuid"
)

// ID names one live result in an Arena. The zero value is never issued.
type ID string

// Arena is the set of handles currently owned by callers.
type Arena struct {
	mu   sync.Mutex
	live map[ID]struct{}
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{live: make(map[ID]struct{})}
}

// Acquire registers a new result and returns its handle.
func (a *Arena) Acquire() ID {
	id := ID(uuid.NewString())
	a.mu.Lock()
	a.live[id] = struct{}{}
	a.mu.Unlock()
	return id
}

// Release forgets the handle. It reports false when the handle was not live,
// which callers treat as a harmless repeat release.
func (a *Arena) Release(id ID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.live[id]; !ok {
		return false
	}
	delete(a.live, id)
	return true
}

// Live returns the number of unreleased results.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Drain forgets every live handle and returns how many there were. Used at
// shutdown to reclaim results the caller never released.
func (a *Arena) Drain() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := len(a.live)
	a.live = make(map[ID]struct{})
	return n
}
