package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"godown/internal/domain/catalogs/warehouse"
	"godown/internal/infrastructure/storage/postgres"
)

var warehouseColumns = []string{
	"id", "deletion_mark", "version", "attributes",
	"code", "name", "parent_id", "is_folder",
	"type", "address", "state_code",
	"is_active", "is_default", "description",
}

// WarehouseRepo implements warehouse.Repository on PostgreSQL.
type WarehouseRepo struct {
	*BaseCatalogRepo[*warehouse.Warehouse]
}

var _ warehouse.Repository = (*WarehouseRepo)(nil)

func NewWarehouseRepo(txm *postgres.TxManager) *WarehouseRepo {
	return &WarehouseRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_warehouses",
			warehouseColumns,
			func() *warehouse.Warehouse { return &warehouse.Warehouse{} },
		),
	}
}

// GetDefault retrieves the default warehouse.
func (r *WarehouseRepo) GetDefault(ctx context.Context) (*warehouse.Warehouse, error) {
	q := r.Builder().
		Select(warehouseColumns...).
		From("cat_warehouses").
		Where(squirrel.Eq{"is_default": true}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}
