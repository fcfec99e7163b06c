package product

import (
	"context"

	"godown/internal/core/id"
	"godown/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindBySKU retrieves a product by SKU.
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindByBarcode retrieves a product by barcode.
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// TaxInfoByIDs retrieves tax classification for a batch of products.
	// Unknown IDs are absent from the result map.
	TaxInfoByIDs(ctx context.Context, ids []id.ID) (map[id.ID]TaxInfo, error)
}
