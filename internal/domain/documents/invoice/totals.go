package invoice

import (
	"github.com/shopspring/decimal"

	"godown/internal/core/id"
	"godown/internal/core/types"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/domain/catalogs/product"
)

// TaxMode is the invoice-wide tax switch.
type TaxMode string

const (
	// TaxModeNone zeroes all tax regardless of product/ledger rates.
	TaxModeNone TaxMode = "no_tax"
	// TaxModeGST splits the applicable rate evenly into CGST + SGST
	// (intra-state supply).
	TaxModeGST TaxMode = "gst"
	// TaxModeIGST charges the full rate as IGST (inter-state supply).
	TaxModeIGST TaxMode = "igst"
)

// DiscountType defines how the invoice-wide discount is interpreted.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat_amount"
)

// ChargeType defines how an additional charge value is interpreted.
type ChargeType string

const (
	ChargePercentage ChargeType = "percentage"
	ChargeFlat       ChargeType = "flat_amount"
)

// Discount is the single invoice-wide discount specification.
// A percentage is taken from the pre-discount subtotal; a flat amount is
// used as-is. Values are not clamped here: an over-large flat discount
// flows through as a negative after-discount amount for the validation
// layer to reject.
type Discount struct {
	Type  DiscountType    `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// NoDiscount is the zero discount.
func NoDiscount() Discount {
	return Discount{Type: DiscountNone, Value: decimal.Zero}
}

// LineInput is one selected product line as entered by the user.
type LineInput struct {
	ProductID id.ID           `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
}

// ChargeInput is one additional document-level charge (freight, packing).
type ChargeInput struct {
	LedgerID id.ID           `json:"ledgerId"`
	Type     ChargeType      `json:"type"`
	Value    decimal.Decimal `json:"value"`
}

// LineTotals is the computed breakdown of one invoice line.
type LineTotals struct {
	ProductID    id.ID           `json:"productId"`
	Quantity     decimal.Decimal `json:"quantity"`
	Rate         decimal.Decimal `json:"rate"`
	GrossAmount  decimal.Decimal `json:"grossAmount"`
	Discount     decimal.Decimal `json:"discount"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	TotalTax     decimal.Decimal `json:"totalTax"`
}

// ChargeTotals is the computed breakdown of one additional charge.
type ChargeTotals struct {
	LedgerID id.ID           `json:"ledgerId"`
	Type     ChargeType      `json:"type"`
	Value    decimal.Decimal `json:"value"`
	Amount   decimal.Decimal `json:"amount"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	IGST     decimal.Decimal `json:"igst"`
	TotalTax decimal.Decimal `json:"totalTax"`
}

// Totals is the full computed result of one invoice calculation.
// The same shape is rendered as a preview and written on save, so what
// the user reviewed is exactly what gets persisted.
type Totals struct {
	Lines   []LineTotals   `json:"lines"`
	Charges []ChargeTotals `json:"charges"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ChargesAmount  decimal.Decimal `json:"chargesAmount"`
	TaxableAmount  decimal.Decimal `json:"taxableAmount"`
	TotalCGST      decimal.Decimal `json:"totalCGST"`
	TotalSGST      decimal.Decimal `json:"totalSGST"`
	TotalIGST      decimal.Decimal `json:"totalIGST"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	RoundOff       decimal.Decimal `json:"roundOff"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
}

// ComputeTotals turns line items, an optional discount, and additional
// charges into a fully itemized invoice total.
//
// The computation is a pure function of its inputs: no I/O, no shared
// state, no mutation of the arguments. Tax classification is supplied by
// the caller as plain maps (see product.TaxInfo / ledger.TaxInfo).
// It never fails: a line whose product is missing from productTax is
// treated as not taxable, a charge whose ledger is missing from
// ledgerTax (or whose value is not positive) is skipped entirely, and
// empty input yields all-zero totals.
//
// Every monetary intermediate is rounded to 2 decimals as soon as it is
// computed. Accumulating unrounded values and rounding once at the end
// produces different totals and would make the preview diverge from the
// posted document.
func ComputeTotals(
	lines []LineInput,
	charges []ChargeInput,
	mode TaxMode,
	disc Discount,
	productTax map[id.ID]product.TaxInfo,
	ledgerTax map[id.ID]ledger.TaxInfo,
) Totals {
	res := Totals{
		Lines:          []LineTotals{},
		Charges:        []ChargeTotals{},
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		ChargesAmount:  decimal.Zero,
		TaxableAmount:  decimal.Zero,
		TotalCGST:      decimal.Zero,
		TotalSGST:      decimal.Zero,
		TotalIGST:      decimal.Zero,
		TotalTax:       decimal.Zero,
		RoundOff:       decimal.Zero,
		GrandTotal:     decimal.Zero,
	}

	// Step 1: normalize lines. Zero/negative quantities are dropped.
	for _, in := range lines {
		if !in.Quantity.IsPositive() {
			continue
		}
		qty := types.Round2(in.Quantity)
		rate := types.Round2(in.Rate)
		gross := types.Round2(qty.Mul(rate))

		res.Lines = append(res.Lines, LineTotals{
			ProductID:   in.ProductID,
			Quantity:    qty,
			Rate:        rate,
			GrossAmount: gross,
			// remaining fields filled below
			Discount:     decimal.Zero,
			TaxableValue: decimal.Zero,
			CGST:         decimal.Zero,
			SGST:         decimal.Zero,
			IGST:         decimal.Zero,
			TotalTax:     decimal.Zero,
		})
		res.Subtotal = types.Round2(res.Subtotal.Add(gross))
	}

	// Step 2: invoice-wide discount. Not clamped: validation is the
	// caller's concern, arithmetic fidelity is ours.
	switch disc.Type {
	case DiscountPercentage:
		res.DiscountAmount = types.PercentOf(res.Subtotal, disc.Value)
	case DiscountFlat:
		res.DiscountAmount = types.Round2(disc.Value)
	}
	amountAfterDiscount := types.Round2(res.Subtotal.Sub(res.DiscountAmount))

	// Step 3: distribute the discount across lines in proportion to
	// their gross amounts, then fix each line's taxable value.
	for i := range res.Lines {
		line := &res.Lines[i]
		if res.Subtotal.IsPositive() {
			line.Discount = types.Round2(line.GrossAmount.Mul(res.DiscountAmount).Div(res.Subtotal))
		}
		line.TaxableValue = types.Round2(line.GrossAmount.Sub(line.Discount))
	}

	// Step 4: additional charges. A percentage charge is based on the
	// post-discount amount, not the raw subtotal. Each charge is taxed
	// on its own amount, independent of any line.
	for _, in := range charges {
		info, ok := ledgerTax[in.LedgerID]
		if !ok || !in.Value.IsPositive() {
			continue
		}

		var amount decimal.Decimal
		if in.Type == ChargePercentage {
			amount = types.PercentOf(amountAfterDiscount, in.Value)
		} else {
			amount = types.Round2(in.Value)
		}

		ch := ChargeTotals{
			LedgerID: in.LedgerID,
			Type:     in.Type,
			Value:    in.Value,
			Amount:   amount,
			CGST:     decimal.Zero,
			SGST:     decimal.Zero,
			IGST:     decimal.Zero,
			TotalTax: decimal.Zero,
		}
		if mode != TaxModeNone && info.GSTRate.IsPositive() {
			switch mode {
			case TaxModeGST:
				half := types.HalfPercentOf(amount, info.GSTRate)
				ch.CGST = half
				ch.SGST = half
			case TaxModeIGST:
				ch.IGST = types.PercentOf(amount, info.GSTRate)
			}
			ch.TotalTax = types.Round2(ch.CGST.Add(ch.SGST).Add(ch.IGST))
		}

		res.Charges = append(res.Charges, ch)
		res.ChargesAmount = types.Round2(res.ChargesAmount.Add(ch.Amount))
	}

	// Step 5: line tax on the post-discount taxable value. A missing or
	// exempt product contributes zero tax but the line still counts
	// toward the subtotal.
	for i := range res.Lines {
		line := &res.Lines[i]
		info, ok := productTax[line.ProductID]
		if !ok || info.TaxType != product.TaxGST || mode == TaxModeNone {
			continue
		}
		switch mode {
		case TaxModeGST:
			half := types.HalfPercentOf(line.TaxableValue, info.GSTRate)
			line.CGST = half
			line.SGST = half
		case TaxModeIGST:
			line.IGST = types.PercentOf(line.TaxableValue, info.GSTRate)
		}
		line.TotalTax = types.Round2(line.CGST.Add(line.SGST).Add(line.IGST))
	}

	// Step 6: aggregate. Charges join the taxable base at the invoice
	// level only, after lines and charges were taxed independently.
	var itemsCGST, itemsSGST, itemsIGST decimal.Decimal
	for _, line := range res.Lines {
		itemsCGST = types.Round2(itemsCGST.Add(line.CGST))
		itemsSGST = types.Round2(itemsSGST.Add(line.SGST))
		itemsIGST = types.Round2(itemsIGST.Add(line.IGST))
	}
	var chargesCGST, chargesSGST, chargesIGST decimal.Decimal
	for _, ch := range res.Charges {
		chargesCGST = types.Round2(chargesCGST.Add(ch.CGST))
		chargesSGST = types.Round2(chargesSGST.Add(ch.SGST))
		chargesIGST = types.Round2(chargesIGST.Add(ch.IGST))
	}

	res.TaxableAmount = types.Round2(amountAfterDiscount.Add(res.ChargesAmount))
	res.TotalCGST = types.Round2(itemsCGST.Add(chargesCGST))
	res.TotalSGST = types.Round2(itemsSGST.Add(chargesSGST))
	res.TotalIGST = types.Round2(itemsIGST.Add(chargesIGST))
	res.TotalTax = types.Round2(res.TotalCGST.Add(res.TotalSGST).Add(res.TotalIGST))

	// Step 7: grand total is a whole currency unit; the fractional
	// remainder becomes the signed round-off adjustment.
	grandExact := res.TaxableAmount.Add(res.TotalTax)
	res.GrandTotal = types.RoundUnit(grandExact)
	res.RoundOff = types.Round2(res.GrandTotal.Sub(grandExact))

	return res
}
