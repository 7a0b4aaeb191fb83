package migrate

import (
	"context"
	"sync"
)

// MarkerStore persists the per-owner "migration done" marker. The
// marker only skips redundant scans; migration stays correct without
// it, so implementations may lose markers freely (an expired key or a
// wiped map just means one extra scan).
//
// Implementations must be safe for concurrent use.
type MarkerStore interface {
	// Done reports whether the owner's migration completed previously.
	Done(ctx context.Context, did string) (bool, error)

	// SetDone records that the owner's migration completed.
	SetDone(ctx context.Context, did string) error

	// Clear removes the owner's marker, forcing the next run to scan.
	Clear(ctx context.Context, did string) error
}

// MemoryMarkers is an in-process MarkerStore. It is the default when a
// Migrator is built without one; markers then live as long as the
// process.
type MemoryMarkers struct {
	mu   sync.RWMutex
	done map[string]bool
}

var _ MarkerStore = (*MemoryMarkers)(nil)

// NewMemoryMarkers returns an empty in-process marker store.
func NewMemoryMarkers() *MemoryMarkers {
	return &MemoryMarkers{done: make(map[string]bool)}
}

// Done reports whether the owner's marker is set.
func (m *MemoryMarkers) Done(ctx context.Context, did string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.done[did], nil
}

// SetDone sets the owner's marker.
func (m *MemoryMarkers) SetDone(ctx context.Context, did string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done[did] = true
	return nil
}

// Clear removes the owner's marker.
func (m *MemoryMarkers) Clear(ctx context.Context, did string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.done, did)
	return nil
}
