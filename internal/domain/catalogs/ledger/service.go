package ledger

import (
	"context"
	"fmt"
	"time"

	"godown/internal/core/id"
	"godown/internal/core/tx"
	"godown/internal/domain"
	"godown/pkg/numerator"
)

// Service provides business logic for the ChargeLedger catalog.
type Service struct {
	*domain.CatalogService[*ChargeLedger]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new ChargeLedger service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	gen numerator.Generator,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*ChargeLedger]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "charge ledger",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, item *ChargeLedger) error {
	if item.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("LDG"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		item.Code = code
	}
	return nil
}

// TaxInfoByIDs retrieves tax classification for a batch of ledgers.
func (s *Service) TaxInfoByIDs(ctx context.Context, ids []id.ID) (map[id.ID]TaxInfo, error) {
	return s.repo.TaxInfoByIDs(ctx, ids)
}
