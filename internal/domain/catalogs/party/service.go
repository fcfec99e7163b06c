package party

import (
	"context"
	"fmt"
	"time"

	"godown/internal/core/apperror"
	"godown/internal/core/id"
	"godown/internal/core/tx"
	"godown/internal/domain"
	"godown/pkg/numerator"
)

// Service provides business logic for the Party catalog.
type Service struct {
	*domain.CatalogService[*Party]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Party service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	gen numerator.Generator,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Party]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "party",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, item *Party) error {
	if item.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("PTY"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		item.Code = code
	}
	return s.checkGSTINUnique(ctx, item)
}

func (s *Service) prepareForUpdate(ctx context.Context, item *Party) error {
	return s.checkGSTINUnique(ctx, item)
}

func (s *Service) checkGSTINUnique(ctx context.Context, item *Party) error {
	if item.GSTIN == nil || *item.GSTIN == "" {
		return nil
	}
	if exists, _ := s.checkGSTINExists(ctx, *item.GSTIN, item.ID); exists {
		return apperror.NewConflict("party with this GSTIN already exists").
			WithDetail("gstin", item.GSTIN)
	}
	return nil
}

// FindByGSTIN retrieves a party by GST identification number.
func (s *Service) FindByGSTIN(ctx context.Context, gstin string) (*Party, error) {
	return s.repo.FindByGSTIN(ctx, gstin)
}

func (s *Service) checkGSTINExists(ctx context.Context, gstin string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByGSTIN(ctx, gstin)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
