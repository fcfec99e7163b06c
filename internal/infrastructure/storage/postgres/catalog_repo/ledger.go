package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"godown/internal/core/id"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/infrastructure/storage/postgres"
)

var ledgerColumns = []string{
	"id", "deletion_mark", "version", "attributes",
	"code", "name", "parent_id", "is_folder",
	"gst_rate", "description",
}

// LedgerRepo implements ledger.Repository on PostgreSQL.
type LedgerRepo struct {
	*BaseCatalogRepo[*ledger.ChargeLedger]
}

var _ ledger.Repository = (*LedgerRepo)(nil)

func NewLedgerRepo(txm *postgres.TxManager) *LedgerRepo {
	return &LedgerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_charge_ledgers",
			ledgerColumns,
			func() *ledger.ChargeLedger { return &ledger.ChargeLedger{} },
		),
	}
}

// TaxInfoByIDs loads the GST rate for a batch of charge ledgers in one query.
func (r *LedgerRepo) TaxInfoByIDs(ctx context.Context, ids []id.ID) (map[id.ID]ledger.TaxInfo, error) {
	result := make(map[id.ID]ledger.TaxInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	q := r.Builder().
		Select("id", "gst_rate").
		From("cat_charge_ledgers").
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tax info query: %w", err)
	}

	var rows []struct {
		ID      id.ID           `db:"id"`
		GSTRate decimal.Decimal `db:"gst_rate"`
	}
	if err := pgxscan.Select(ctx, r.querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select ledger tax info: %w", err)
	}

	for _, row := range rows {
		result[row.ID] = ledger.TaxInfo{GSTRate: row.GSTRate}
	}

	return result, nil
}
