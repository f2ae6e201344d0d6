package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pcpick/backend/internal/domain"
)

// Loader reads catalog and FPS reference JSON files into the store and
// refreshes the catalog on an interval. A failed or unchanged reload keeps
// the previous snapshot; the store never goes backwards to empty.
type Loader struct {
	store    *Store
	dataPath string
	fpsPath  string
}

// NewLoader creates a loader for the given file paths. fpsPath may be empty
// when no FPS reference is deployed.
func NewLoader(store *Store, dataPath, fpsPath string) *Loader {
	return &Loader{
		store:    store,
		dataPath: dataPath,
		fpsPath:  fpsPath,
	}
}

// Load reads both files once. The catalog is required; the FPS reference is
// optional and a missing or malformed file only logs.
func (l *Loader) Load() error {
	snapshot, err := l.readCatalog()
	if err != nil {
		return err
	}
	l.store.SetSnapshot(snapshot)
	log.Printf("[CATALOG] Loaded %d products (last_updated: %s)", len(snapshot.Products), snapshot.LastUpdated)

	if l.fpsPath != "" {
		ref, err := l.readReference()
		if err != nil {
			log.Printf("[CATALOG] FPS reference unavailable: %v", err)
		} else {
			l.store.SetReference(ref)
			log.Printf("[CATALOG] Loaded FPS reference for %d GPUs", len(ref.GPUs))
		}
	}

	return nil
}

// Refresh re-reads the catalog file and swaps the snapshot only when its
// last_updated stamp changed. Returns true when a swap happened.
func (l *Loader) Refresh() (bool, error) {
	snapshot, err := l.readCatalog()
	if err != nil {
		return false, err
	}
	if snapshot.LastUpdated != "" && snapshot.LastUpdated == l.store.LastUpdated() {
		return false, nil
	}
	l.store.SetSnapshot(snapshot)
	return true, nil
}

// StartRefresh refreshes the catalog on the given interval until the
// context is cancelled. Errors are logged and the previous snapshot stays
// in place.
func (l *Loader) StartRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			swapped, err := l.Refresh()
			if err != nil {
				log.Printf("[CATALOG] Refresh failed, keeping previous snapshot: %v", err)
				continue
			}
			if swapped {
				log.Printf("[CATALOG] Snapshot refreshed (last_updated: %s, %d products)",
					l.store.LastUpdated(), l.store.Size())
			}
		}
	}
}

func (l *Loader) readCatalog() (*domain.Catalog, error) {
	data, err := os.ReadFile(l.dataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	var snapshot domain.Catalog
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrCatalogUnavailable, l.dataPath, err)
	}
	return &snapshot, nil
}

func (l *Loader) readReference() (*domain.FPSReference, error) {
	data, err := os.ReadFile(l.fpsPath)
	if err != nil {
		return nil, err
	}
	var ref domain.FPSReference
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.fpsPath, err)
	}
	return &ref, nil
}
