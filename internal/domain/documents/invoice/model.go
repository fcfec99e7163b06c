// Package invoice provides the SalesInvoice document and the totals
// calculation behind its preview and posting.
package invoice

import (
	"context"

	"github.com/shopspring/decimal"

	"godown/internal/core/apperror"
	"godown/internal/core/entity"
	"godown/internal/core/id"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/domain/catalogs/product"
)

// SalesInvoice represents a sales invoice issued to a customer.
// Its monetary fields are never entered directly: they are always the
// output of ComputeTotals over the lines and charges, recomputed on
// every save so the stored document matches what was previewed.
type SalesInvoice struct {
	entity.Document

	// PartyID is the customer being billed
	PartyID id.ID `db:"party_id" json:"partyId"`

	// WarehouseID is the location goods ship from
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`

	// OrderID optionally links back to the originating sales order
	OrderID *id.ID `db:"order_id" json:"orderId,omitempty"`

	// TaxMode is the invoice-wide tax switch
	TaxMode TaxMode `db:"tax_mode" json:"taxMode"`

	// Invoice-wide discount specification
	DiscountType  DiscountType    `db:"discount_type" json:"discountType"`
	DiscountValue decimal.Decimal `db:"discount_value" json:"discountValue"`

	// Computed totals (see ComputeTotals)
	Subtotal       decimal.Decimal `db:"subtotal" json:"subtotal"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discountAmount"`
	ChargesAmount  decimal.Decimal `db:"charges_amount" json:"chargesAmount"`
	TaxableAmount  decimal.Decimal `db:"taxable_amount" json:"taxableAmount"`
	TotalCGST      decimal.Decimal `db:"total_cgst" json:"totalCGST"`
	TotalSGST      decimal.Decimal `db:"total_sgst" json:"totalSGST"`
	TotalIGST      decimal.Decimal `db:"total_igst" json:"totalIGST"`
	TotalTax       decimal.Decimal `db:"total_tax" json:"totalTax"`
	RoundOff       decimal.Decimal `db:"round_off" json:"roundOff"`
	GrandTotal     decimal.Decimal `db:"grand_total" json:"grandTotal"`

	// Table parts
	Lines   []InvoiceLine   `db:"-" json:"lines"`
	Charges []InvoiceCharge `db:"-" json:"charges"`
}

// InvoiceLine is one product line with its computed breakdown.
type InvoiceLine struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID           `db:"product_id" json:"productId"`
	Quantity  decimal.Decimal `db:"quantity" json:"quantity"`
	Rate      decimal.Decimal `db:"rate" json:"rate"`

	GrossAmount  decimal.Decimal `db:"gross_amount" json:"grossAmount"`
	Discount     decimal.Decimal `db:"discount" json:"discount"`
	TaxableValue decimal.Decimal `db:"taxable_value" json:"taxableValue"`
	CGST         decimal.Decimal `db:"cgst" json:"cgst"`
	SGST         decimal.Decimal `db:"sgst" json:"sgst"`
	IGST         decimal.Decimal `db:"igst" json:"igst"`
	TotalTax     decimal.Decimal `db:"total_tax" json:"totalTax"`
}

// InvoiceCharge is one additional charge with its computed breakdown.
type InvoiceCharge struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	LedgerID id.ID           `db:"ledger_id" json:"ledgerId"`
	Type     ChargeType      `db:"charge_type" json:"type"`
	Value    decimal.Decimal `db:"charge_value" json:"value"`

	Amount   decimal.Decimal `db:"amount" json:"amount"`
	CGST     decimal.Decimal `db:"cgst" json:"cgst"`
	SGST     decimal.Decimal `db:"sgst" json:"sgst"`
	IGST     decimal.Decimal `db:"igst" json:"igst"`
	TotalTax decimal.Decimal `db:"total_tax" json:"totalTax"`
}

// NewSalesInvoice creates a new sales invoice document.
func NewSalesInvoice(partyID, warehouseID id.ID) *SalesInvoice {
	return &SalesInvoice{
		Document:     entity.NewDocument(),
		PartyID:      partyID,
		WarehouseID:  warehouseID,
		TaxMode:      TaxModeGST,
		DiscountType: DiscountNone,
		Lines:        make([]InvoiceLine, 0),
		Charges:      make([]InvoiceCharge, 0),
	}
}

// AddLine appends a product line. Amounts stay zero until the next
// totals recalculation.
func (inv *SalesInvoice) AddLine(productID id.ID, quantity, rate decimal.Decimal) {
	inv.Lines = append(inv.Lines, InvoiceLine{
		LineID:    id.New(),
		LineNo:    len(inv.Lines) + 1,
		ProductID: productID,
		Quantity:  quantity,
		Rate:      rate,
	})
}

// AddCharge appends an additional charge.
func (inv *SalesInvoice) AddCharge(ledgerID id.ID, chargeType ChargeType, value decimal.Decimal) {
	inv.Charges = append(inv.Charges, InvoiceCharge{
		LineID:   id.New(),
		LineNo:   len(inv.Charges) + 1,
		LedgerID: ledgerID,
		Type:     chargeType,
		Value:    value,
	})
}

// LineInputs extracts the calculator inputs from the document lines.
func (inv *SalesInvoice) LineInputs() []LineInput {
	inputs := make([]LineInput, 0, len(inv.Lines))
	for _, line := range inv.Lines {
		inputs = append(inputs, LineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Rate:      line.Rate,
		})
	}
	return inputs
}

// ChargeInputs extracts the calculator inputs from the document charges.
func (inv *SalesInvoice) ChargeInputs() []ChargeInput {
	inputs := make([]ChargeInput, 0, len(inv.Charges))
	for _, ch := range inv.Charges {
		inputs = append(inputs, ChargeInput{
			LedgerID: ch.LedgerID,
			Type:     ch.Type,
			Value:    ch.Value,
		})
	}
	return inputs
}

// Discount returns the document's discount specification.
func (inv *SalesInvoice) Discount() Discount {
	return Discount{Type: inv.DiscountType, Value: inv.DiscountValue}
}

// ApplyTotals writes a computed result back onto the document.
// Lines dropped by the calculator (zero quantity) are dropped here too,
// and line numbers are reassigned, so the persisted table parts mirror
// the computed breakdown exactly.
func (inv *SalesInvoice) ApplyTotals(t Totals) {
	lines := make([]InvoiceLine, 0, len(t.Lines))
	src := 0
	for i, lt := range t.Lines {
		// The calculator keeps input order and drops only zero-quantity
		// lines; skip those so each result line inherits the ID of the
		// source line it was actually computed from.
		for src < len(inv.Lines) && !inv.Lines[src].Quantity.IsPositive() {
			src++
		}
		lineID := id.New()
		if src < len(inv.Lines) {
			lineID = inv.Lines[src].LineID
			src++
		}
		lines = append(lines, InvoiceLine{
			LineID:       lineID,
			LineNo:       i + 1,
			ProductID:    lt.ProductID,
			Quantity:     lt.Quantity,
			Rate:         lt.Rate,
			GrossAmount:  lt.GrossAmount,
			Discount:     lt.Discount,
			TaxableValue: lt.TaxableValue,
			CGST:         lt.CGST,
			SGST:         lt.SGST,
			IGST:         lt.IGST,
			TotalTax:     lt.TotalTax,
		})
	}
	inv.Lines = lines

	charges := make([]InvoiceCharge, 0, len(t.Charges))
	src = 0
	for i, ct := range t.Charges {
		// Charges may be dropped for an unresolved ledger or a zero
		// value; match each result to the next source charge with the
		// same ledger and type (order is preserved).
		lineID := id.New()
		for j := src; j < len(inv.Charges); j++ {
			if inv.Charges[j].LedgerID == ct.LedgerID && inv.Charges[j].Type == ct.Type {
				lineID = inv.Charges[j].LineID
				src = j + 1
				break
			}
		}
		charges = append(charges, InvoiceCharge{
			LineID:   lineID,
			LineNo:   i + 1,
			LedgerID: ct.LedgerID,
			Type:     ct.Type,
			Value:    ct.Value,
			Amount:   ct.Amount,
			CGST:     ct.CGST,
			SGST:     ct.SGST,
			IGST:     ct.IGST,
			TotalTax: ct.TotalTax,
		})
	}
	inv.Charges = charges

	inv.Subtotal = t.Subtotal
	inv.DiscountAmount = t.DiscountAmount
	inv.ChargesAmount = t.ChargesAmount
	inv.TaxableAmount = t.TaxableAmount
	inv.TotalCGST = t.TotalCGST
	inv.TotalSGST = t.TotalSGST
	inv.TotalIGST = t.TotalIGST
	inv.TotalTax = t.TotalTax
	inv.RoundOff = t.RoundOff
	inv.GrandTotal = t.GrandTotal
}

// Compute runs the totals calculation over the document's current lines
// and charges without mutating the document.
func (inv *SalesInvoice) Compute(productTax map[id.ID]product.TaxInfo, ledgerTax map[id.ID]ledger.TaxInfo) Totals {
	return ComputeTotals(inv.LineInputs(), inv.ChargeInputs(), inv.TaxMode, inv.Discount(), productTax, ledgerTax)
}

// Validate implements entity.Validatable.
// Validation is where discount bounds are enforced; the calculator
// itself never clamps.
func (inv *SalesInvoice) Validate(ctx context.Context) error {
	if err := inv.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(inv.PartyID) {
		return apperror.NewValidation("party is required").
			WithDetail("field", "partyId")
	}

	if id.IsNil(inv.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	if !isValidTaxMode(inv.TaxMode) {
		return apperror.NewValidation("invalid tax mode").
			WithDetail("field", "taxMode").
			WithDetail("value", string(inv.TaxMode))
	}

	if !isValidDiscountType(inv.DiscountType) {
		return apperror.NewValidation("invalid discount type").
			WithDetail("field", "discountType").
			WithDetail("value", string(inv.DiscountType))
	}

	if inv.DiscountValue.IsNegative() {
		return apperror.NewValidation("discount value cannot be negative").
			WithDetail("field", "discountValue")
	}

	if inv.DiscountType == DiscountPercentage && inv.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("percentage discount cannot exceed 100").
			WithDetail("field", "discountValue")
	}

	if len(inv.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range inv.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Rate.IsNegative() {
			return apperror.NewValidation("rate cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	for i, ch := range inv.Charges {
		if id.IsNil(ch.LedgerID) {
			return apperror.NewValidation("charge ledger is required").
				WithDetail("field", "charges").
				WithDetail("lineNo", i+1)
		}
		if !isValidChargeType(ch.Type) {
			return apperror.NewValidation("invalid charge type").
				WithDetail("field", "charges").
				WithDetail("lineNo", i+1)
		}
		if ch.Value.IsNegative() {
			return apperror.NewValidation("charge value cannot be negative").
				WithDetail("field", "charges").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// CheckDiscountBounds rejects a flat discount larger than the computed
// subtotal. Called after totals are recomputed, before save.
func (inv *SalesInvoice) CheckDiscountBounds() error {
	if inv.DiscountType == DiscountFlat && inv.DiscountAmount.GreaterThan(inv.Subtotal) {
		return apperror.NewDiscountExceedsTotal(
			inv.DiscountAmount.String(),
			inv.Subtotal.String(),
		)
	}
	return nil
}

func isValidTaxMode(m TaxMode) bool {
	switch m {
	case TaxModeNone, TaxModeGST, TaxModeIGST:
		return true
	}
	return false
}

func isValidDiscountType(t DiscountType) bool {
	switch t {
	case DiscountNone, DiscountPercentage, DiscountFlat:
		return true
	}
	return false
}

func isValidChargeType(t ChargeType) bool {
	switch t {
	case ChargePercentage, ChargeFlat:
		return true
	}
	return false
}
