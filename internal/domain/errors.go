package domain

import "errors"

var (
	// ErrSnapshotNotLoaded is returned when no catalog snapshot has been
	// loaded yet (e.g. the first load failed at startup)
	ErrSnapshotNotLoaded = errors.New("catalog snapshot not loaded")

	// ErrCatalogUnavailable is returned when the catalog source cannot be
	// read or decoded
	ErrCatalogUnavailable = errors.New("catalog source unavailable")

	// ErrProductNotFound is returned when a product id is not in the
	// current snapshot
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
