package domain

// CatalogRepository provides read access to the current catalog snapshot.
// Implementations must return the snapshot as an immutable value: callers
// receive the whole product list and compute over it synchronously.
type CatalogRepository interface {
	Snapshot() (*Catalog, error)
	Product(id string) (*Product, error)
}

// FPSRepository provides read access to the FPS reference table.
// The table is optional; implementations return nil when absent.
type FPSRepository interface {
	Reference() *FPSReference
}
