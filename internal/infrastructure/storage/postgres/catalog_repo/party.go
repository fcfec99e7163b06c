package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"godown/internal/domain/catalogs/party"
	"godown/internal/infrastructure/storage/postgres"
)

var partyColumns = []string{
	"id", "deletion_mark", "version", "attributes",
	"code", "name", "parent_id", "is_folder",
	"type", "legal_name", "gstin", "pan",
	"billing_address", "shipping_address", "state_code",
	"phone", "email", "contact_person", "comment",
}

// PartyRepo implements party.Repository on PostgreSQL.
type PartyRepo struct {
	*BaseCatalogRepo[*party.Party]
}

var _ party.Repository = (*PartyRepo)(nil)

func NewPartyRepo(txm *postgres.TxManager) *PartyRepo {
	return &PartyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_parties",
			partyColumns,
			func() *party.Party { return &party.Party{} },
		),
	}
}

// FindByGSTIN retrieves a party by GST identification number.
func (r *PartyRepo) FindByGSTIN(ctx context.Context, gstin string) (*party.Party, error) {
	q := r.Builder().
		Select(partyColumns...).
		From("cat_parties").
		Where(squirrel.Eq{"gstin": gstin}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}
