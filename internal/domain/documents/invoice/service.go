package invoice

import (
	"context"
	"fmt"
	"time"

	"godown/internal/core/id"
	"godown/internal/core/tx"
	"godown/internal/domain"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/domain/catalogs/product"
	"godown/pkg/logger"
	"godown/pkg/numerator"
)

// ProductTaxSource supplies tax classification for products.
type ProductTaxSource interface {
	TaxInfoByIDs(ctx context.Context, ids []id.ID) (map[id.ID]product.TaxInfo, error)
}

// LedgerTaxSource supplies tax classification for charge ledgers.
type LedgerTaxSource interface {
	TaxInfoByIDs(ctx context.Context, ids []id.ID) (map[id.ID]ledger.TaxInfo, error)
}

// OrderLifecycle transitions the sales order an invoice was created
// from. Optional: services built without it leave linked orders alone.
type OrderLifecycle interface {
	MarkInvoiced(ctx context.Context, orderID id.ID) error
	Reopen(ctx context.Context, orderID id.ID) error
}

// Service provides business operations for sales invoices.
// Totals are recomputed from scratch on every save and preview; client
// supplied amounts are never trusted.
type Service struct {
	repo      Repository
	products  ProductTaxSource
	ledgers   LedgerTaxSource
	orders    OrderLifecycle
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new sales invoice service.
func NewService(
	repo Repository,
	products ProductTaxSource,
	ledgers LedgerTaxSource,
	orders OrderLifecycle,
	gen numerator.Generator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		ledgers:   ledgers,
		orders:    orders,
		numerator: gen,
		txManager: txManager,
	}
}

// lookups fetches the tax maps for every product and ledger the document
// references. Unknown references simply stay absent from the maps; the
// calculator handles them.
func (s *Service) lookups(ctx context.Context, doc *SalesInvoice) (map[id.ID]product.TaxInfo, map[id.ID]ledger.TaxInfo, error) {
	productIDs := make([]id.ID, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		productIDs = append(productIDs, line.ProductID)
	}
	ledgerIDs := make([]id.ID, 0, len(doc.Charges))
	for _, ch := range doc.Charges {
		ledgerIDs = append(ledgerIDs, ch.LedgerID)
	}

	productTax, err := s.products.TaxInfoByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("product tax lookup: %w", err)
	}
	ledgerTax, err := s.ledgers.TaxInfoByIDs(ctx, ledgerIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger tax lookup: %w", err)
	}
	return productTax, ledgerTax, nil
}

// Recompute runs the totals calculation and writes the result back onto
// the document.
func (s *Service) Recompute(ctx context.Context, doc *SalesInvoice) error {
	productTax, ledgerTax, err := s.lookups(ctx, doc)
	if err != nil {
		return err
	}
	doc.ApplyTotals(doc.Compute(productTax, ledgerTax))
	return nil
}

// PreviewTotals computes totals for an unsaved document without
// mutating or persisting anything. This backs the live preview shown
// while the invoice is being edited; the same calculation runs again on
// save, so the previewed amounts are exactly the posted ones.
func (s *Service) PreviewTotals(ctx context.Context, doc *SalesInvoice) (Totals, error) {
	productTax, ledgerTax, err := s.lookups(ctx, doc)
	if err != nil {
		return Totals{}, err
	}
	return doc.Compute(productTax, ledgerTax), nil
}

// Create validates, numbers, computes totals and persists a new invoice.
func (s *Service) Create(ctx context.Context, doc *SalesInvoice) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.Recompute(ctx, doc); err != nil {
		return err
	}
	if err := doc.CheckDiscountBounds(); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig(NumberPrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		if err := s.repo.SaveCharges(ctx, doc.ID, doc.Charges); err != nil {
			return fmt.Errorf("save charges: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "invoice created", "id", doc.ID, "number", doc.Number, "grandTotal", doc.GrandTotal)
	return nil
}

// GetByID retrieves an invoice with lines and charges.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*SalesInvoice, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	charges, err := s.repo.GetCharges(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get charges: %w", err)
	}
	doc.Charges = charges

	return doc, nil
}

// GetByNumber retrieves an invoice by its document number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*SalesInvoice, error) {
	doc, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, doc.ID)
}

// Update recomputes totals and persists an existing invoice.
// Posted invoices must be unposted first.
func (s *Service) Update(ctx context.Context, doc *SalesInvoice) error {
	if err := doc.CanModify(); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.Recompute(ctx, doc); err != nil {
		return err
	}
	if err := doc.CheckDiscountBounds(); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		if err := s.repo.SaveCharges(ctx, doc.ID, doc.Charges); err != nil {
			return fmt.Errorf("save charges: %w", err)
		}
		return nil
	})
}

// Delete soft-deletes an unposted invoice.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.Posted {
		return doc.CanModify()
	}

	return s.repo.Delete(ctx, docID)
}

// Post finalizes an invoice. Totals are recomputed one last time under
// the transaction so the committed amounts are authoritative.
func (s *Service) Post(ctx context.Context, docID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		lines, err := s.repo.GetLines(ctx, doc.ID)
		if err != nil {
			return fmt.Errorf("get lines: %w", err)
		}
		doc.Lines = lines

		charges, err := s.repo.GetCharges(ctx, doc.ID)
		if err != nil {
			return fmt.Errorf("get charges: %w", err)
		}
		doc.Charges = charges

		if doc.Posted {
			return nil // already posted, idempotent
		}

		if err := s.Recompute(ctx, doc); err != nil {
			return err
		}
		if err := doc.CheckDiscountBounds(); err != nil {
			return err
		}

		doc.MarkPosted()
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		if err := s.repo.SaveCharges(ctx, doc.ID, doc.Charges); err != nil {
			return fmt.Errorf("save charges: %w", err)
		}

		if doc.OrderID != nil && s.orders != nil {
			if err := s.orders.MarkInvoiced(ctx, *doc.OrderID); err != nil {
				return fmt.Errorf("mark order invoiced: %w", err)
			}
		}

		logger.Info(ctx, "invoice posted", "id", doc.ID, "number", doc.Number, "grandTotal", doc.GrandTotal)
		return nil
	})
}

// Unpost reopens a posted invoice for editing.
func (s *Service) Unpost(ctx context.Context, docID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if !doc.Posted {
			return nil
		}

		doc.MarkUnposted()
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}

		if doc.OrderID != nil && s.orders != nil {
			if err := s.orders.Reopen(ctx, *doc.OrderID); err != nil {
				return fmt.Errorf("reopen order: %w", err)
			}
		}

		logger.Info(ctx, "invoice unposted", "id", doc.ID, "number", doc.Number)
		return nil
	})
}

// List retrieves invoices with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*SalesInvoice], error) {
	return s.repo.List(ctx, filter)
}
