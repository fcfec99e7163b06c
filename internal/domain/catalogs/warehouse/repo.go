package warehouse

import (
	"context"

	"godown/internal/domain"
)

// Repository defines the interface for Warehouse persistence.
type Repository interface {
	domain.CatalogRepository[*Warehouse]

	// GetDefault retrieves the default warehouse.
	GetDefault(ctx context.Context) (*Warehouse, error)
}
