// Package ledger provides the ChargeLedger catalog.
// Charge ledgers classify document-level charges (freight, packing,
// insurance) and carry the GST rate applied to each charge.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"godown/internal/core/apperror"
	"godown/internal/core/entity"
)

// ChargeLedger represents an account head for document-level charges.
type ChargeLedger struct {
	entity.Catalog

	// GSTRate is the GST rate percentage applied to charges posted
	// against this ledger. Zero means the charge is untaxed.
	GSTRate decimal.Decimal `db:"gst_rate" json:"gstRate"`

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`
}

// TaxInfo is the tax slice of a charge ledger, used by invoice
// tax calculation without loading the full catalog row.
type TaxInfo struct {
	GSTRate decimal.Decimal
}

// TaxInfo returns the ledger's tax classification.
func (l *ChargeLedger) TaxInfo() TaxInfo {
	return TaxInfo{GSTRate: l.GSTRate}
}

// NewChargeLedger creates a new ChargeLedger with required fields.
func NewChargeLedger(code, name string) *ChargeLedger {
	return &ChargeLedger{
		Catalog: entity.NewCatalog(code, name),
		GSTRate: decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (l *ChargeLedger) Validate(ctx context.Context) error {
	if err := l.Catalog.Validate(ctx); err != nil {
		return err
	}

	if l.GSTRate.IsNegative() {
		return apperror.NewValidation("GST rate cannot be negative").
			WithDetail("field", "gstRate")
	}

	if l.GSTRate.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("GST rate cannot exceed 100").
			WithDetail("field", "gstRate")
	}

	return nil
}
