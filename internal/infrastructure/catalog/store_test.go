package catalog

import (
	"testing"

	"github.com/pcpick/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSnapshot(t *testing.T) {
	store := NewStore()

	_, err := store.Snapshot()
	assert.ErrorIs(t, err, domain.ErrSnapshotNotLoaded)
	assert.Equal(t, "", store.LastUpdated())
	assert.Equal(t, 0, store.Size())

	store.SetSnapshot(&domain.Catalog{
		LastUpdated: "2026-08-30 06:00",
		Products: []domain.Product{
			{ID: "p1", InStock: true, Price: 1450000},
			{ID: "p2", InStock: false, Price: 900000},
		},
	})

	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot.Products, 2)
	assert.Equal(t, "2026-08-30 06:00", store.LastUpdated())
	assert.Equal(t, 2, store.Size())
}

func TestStoreProduct(t *testing.T) {
	store := NewStore()

	_, err := store.Product("p1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotLoaded)

	store.SetSnapshot(&domain.Catalog{Products: []domain.Product{
		{ID: "p1", Name: "조립PC 1"},
		{ID: "p2", Name: "조립PC 2"},
	}})

	product, err := store.Product("p2")
	require.NoError(t, err)
	assert.Equal(t, "조립PC 2", product.Name)

	_, err = store.Product("missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestStoreReference(t *testing.T) {
	store := NewStore()
	assert.Nil(t, store.Reference())

	ref := &domain.FPSReference{GPUs: map[string]map[string]map[string]int{
		"RTX 5060": {"리그오브레전드": {"FHD": 400}},
	}}
	store.SetReference(ref)
	assert.Same(t, ref, store.Reference())
}
