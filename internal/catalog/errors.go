package catalog

import (
	"errors"
	"fmt"

	"cardgallery/internal/services"
)

var (
	// ErrCatalogLocked is returned by Open when another process holds the
	// catalog lock.
	ErrCatalogLocked = errors.New("catalog is locked by another process")

	// ErrRecordNotFound matches services.ErrNotFound.
	ErrRecordNotFound = fmt.Errorf("catalog record %w", services.ErrNotFound)
)
