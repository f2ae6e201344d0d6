package catalog

import (
	"sync"

	"github.com/pcpick/backend/internal/domain"
)

// Store holds the current catalog snapshot and FPS reference in memory.
// A refresh swaps the whole snapshot under the lock; readers get the
// snapshot value that was current when they asked and compute over it
// without further coordination.
type Store struct {
	mutex    sync.RWMutex
	snapshot *domain.Catalog
	fps      *domain.FPSReference
}

// NewStore creates an empty store. Snapshot returns ErrSnapshotNotLoaded
// until the first successful SetSnapshot.
func NewStore() *Store {
	return &Store{}
}

// SetSnapshot replaces the current catalog snapshot.
func (s *Store) SetSnapshot(c *domain.Catalog) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot = c
}

// Snapshot returns the current catalog snapshot.
func (s *Store) Snapshot() (*domain.Catalog, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.snapshot == nil {
		return nil, domain.ErrSnapshotNotLoaded
	}
	return s.snapshot, nil
}

// Product looks up one product by id in the current snapshot.
func (s *Store) Product(id string) (*domain.Product, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	for i := range snapshot.Products {
		if snapshot.Products[i].ID == id {
			return &snapshot.Products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// SetReference replaces the FPS reference table.
func (s *Store) SetReference(ref *domain.FPSReference) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.fps = ref
}

// Reference returns the FPS reference table, or nil when none is loaded.
func (s *Store) Reference() *domain.FPSReference {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.fps
}

// LastUpdated returns the snapshot's last-updated stamp, or "" when no
// snapshot is loaded.
func (s *Store) LastUpdated() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.snapshot == nil {
		return ""
	}
	return s.snapshot.LastUpdated
}

// Size returns the number of products in the current snapshot (for status
// reporting).
func (s *Store) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.snapshot == nil {
		return 0
	}
	return len(s.snapshot.Products)
}
