package ledger

import (
	"context"

	"godown/internal/core/id"
	"godown/internal/domain"
)

// Repository defines the interface for ChargeLedger persistence.
type Repository interface {
	domain.CatalogRepository[*ChargeLedger]

	// TaxInfoByIDs retrieves tax classification for a batch of ledgers.
	// Unknown IDs are absent from the result map.
	TaxInfoByIDs(ctx context.Context, ids []id.ID) (map[id.ID]TaxInfo, error)
}
