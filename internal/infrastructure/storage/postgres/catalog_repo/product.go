package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"godown/internal/core/id"
	"godown/internal/domain/catalogs/product"
	"godown/internal/infrastructure/storage/postgres"
)

var productColumns = []string{
	"id", "deletion_mark", "version", "attributes",
	"code", "name", "parent_id", "is_folder",
	"type", "sku", "barcode", "hsn_code", "unit",
	"tax_type", "gst_rate", "selling_price", "description",
}

// ProductRepo implements product.Repository on PostgreSQL.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

var _ product.Repository = (*ProductRepo)(nil)

func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_products",
			productColumns,
			func() *product.Product { return &product.Product{} },
		),
	}
}

// FindBySKU retrieves a product by SKU.
func (r *ProductRepo) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	q := r.Builder().
		Select(productColumns...).
		From("cat_products").
		Where(squirrel.Eq{"sku": sku}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}

// FindByBarcode retrieves a product by barcode.
func (r *ProductRepo) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	q := r.Builder().
		Select(productColumns...).
		From("cat_products").
		Where(squirrel.Eq{"barcode": barcode}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}

// TaxInfoByIDs loads tax classification for a batch of products in one query.
// IDs not found in the table are simply absent from the result.
func (r *ProductRepo) TaxInfoByIDs(ctx context.Context, ids []id.ID) (map[id.ID]product.TaxInfo, error) {
	result := make(map[id.ID]product.TaxInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	q := r.Builder().
		Select("id", "tax_type", "gst_rate").
		From("cat_products").
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tax info query: %w", err)
	}

	var rows []struct {
		ID      id.ID           `db:"id"`
		TaxType product.TaxType `db:"tax_type"`
		GSTRate decimal.Decimal `db:"gst_rate"`
	}
	if err := pgxscan.Select(ctx, r.querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select product tax info: %w", err)
	}

	for _, row := range rows {
		result[row.ID] = product.TaxInfo{
			TaxType: row.TaxType,
			GSTRate: row.GSTRate,
		}
	}

	return result, nil
}
