package party

import (
	"context"

	"godown/internal/domain"
)

// Repository defines the interface for Party persistence.
type Repository interface {
	domain.CatalogRepository[*Party]

	// FindByGSTIN retrieves a party by GST identification number.
	FindByGSTIN(ctx context.Context, gstin string) (*Party, error)
}
