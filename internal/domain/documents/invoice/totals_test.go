package invoice

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"godown/internal/core/id"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/domain/catalogs/product"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertEq(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func gstProduct(rate string) product.TaxInfo {
	return product.TaxInfo{TaxType: product.TaxGST, GSTRate: d(rate)}
}

func exemptProduct() product.TaxInfo {
	return product.TaxInfo{TaxType: product.TaxExempt, GSTRate: decimal.Zero}
}

func TestComputeTotalsSingleLineGST(t *testing.T) {
	productID := id.New()
	got := ComputeTotals(
		[]LineInput{{ProductID: productID, Quantity: d("10"), Rate: d("100")}},
		nil,
		TaxModeGST,
		NoDiscount(),
		map[id.ID]product.TaxInfo{productID: gstProduct("18")},
		nil,
	)

	assertEq(t, "Subtotal", got.Subtotal, d("1000"))
	assertEq(t, "TaxableAmount", got.TaxableAmount, d("1000"))
	assertEq(t, "TotalCGST", got.TotalCGST, d("90"))
	assertEq(t, "TotalSGST", got.TotalSGST, d("90"))
	assertEq(t, "TotalIGST", got.TotalIGST, d("0"))
	assertEq(t, "TotalTax", got.TotalTax, d("180"))
	assertEq(t, "GrandTotal", got.GrandTotal, d("1180"))
	assertEq(t, "RoundOff", got.RoundOff, d("0"))

	if len(got.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(got.Lines))
	}
	assertEq(t, "line.GrossAmount", got.Lines[0].GrossAmount, d("1000"))
	assertEq(t, "line.TaxableValue", got.Lines[0].TaxableValue, d("1000"))
	assertEq(t, "line.TotalTax", got.Lines[0].TotalTax, d("180"))
}

func TestComputeTotalsPercentageDiscount(t *testing.T) {
	productID := id.New()
	got := ComputeTotals(
		[]LineInput{{ProductID: productID, Quantity: d("10"), Rate: d("100")}},
		nil,
		TaxModeGST,
		Discount{Type: DiscountPercentage, Value: d("10")},
		map[id.ID]product.TaxInfo{productID: gstProduct("18")},
		nil,
	)

	assertEq(t, "DiscountAmount", got.DiscountAmount, d("100"))
	assertEq(t, "line.Discount", got.Lines[0].Discount, d("100"))
	assertEq(t, "line.TaxableValue", got.Lines[0].TaxableValue, d("900"))
	assertEq(t, "TotalCGST", got.TotalCGST, d("81"))
	assertEq(t, "TotalSGST", got.TotalSGST, d("81"))
	assertEq(t, "TotalTax", got.TotalTax, d("162"))
	assertEq(t, "TaxableAmount", got.TaxableAmount, d("900"))
	assertEq(t, "GrandTotal", got.GrandTotal, d("1062"))
	assertEq(t, "RoundOff", got.RoundOff, d("0"))
}

// Two equal lines, one taxable and one exempt, with a flat discount split
// proportionally. The taxable line's tax must be rounded at its own step
// (42.75), not recovered from a later aggregate.
func TestComputeTotalsMixedTaxabilityFlatDiscount(t *testing.T) {
	taxableID := id.New()
	exemptID := id.New()
	got := ComputeTotals(
		[]LineInput{
			{ProductID: taxableID, Quantity: d("1"), Rate: d("500")},
			{ProductID: exemptID, Quantity: d("1"), Rate: d("500")},
		},
		nil,
		TaxModeGST,
		Discount{Type: DiscountFlat, Value: d("50")},
		map[id.ID]product.TaxInfo{
			taxableID: gstProduct("18"),
			exemptID:  exemptProduct(),
		},
		nil,
	)

	assertEq(t, "DiscountAmount", got.DiscountAmount, d("50"))
	assertEq(t, "line0.Discount", got.Lines[0].Discount, d("25"))
	assertEq(t, "line1.Discount", got.Lines[1].Discount, d("25"))
	assertEq(t, "line0.TaxableValue", got.Lines[0].TaxableValue, d("475"))
	assertEq(t, "line0.CGST", got.Lines[0].CGST, d("42.75"))
	assertEq(t, "line0.SGST", got.Lines[0].SGST, d("42.75"))
	assertEq(t, "line1.CGST", got.Lines[1].CGST, d("0"))
	assertEq(t, "line1.TotalTax", got.Lines[1].TotalTax, d("0"))
	assertEq(t, "TotalCGST", got.TotalCGST, d("42.75"))
	assertEq(t, "TotalSGST", got.TotalSGST, d("42.75"))
}

// A percentage charge is based on the post-discount amount, not the raw
// subtotal, and carries its own tax independent of any line.
func TestComputeTotalsPercentageCharge(t *testing.T) {
	productID := id.New()
	freightID := id.New()
	got := ComputeTotals(
		[]LineInput{{ProductID: productID, Quantity: d("10"), Rate: d("100")}},
		[]ChargeInput{{LedgerID: freightID, Type: ChargePercentage, Value: d("10")}},
		TaxModeGST,
		Discount{Type: DiscountPercentage, Value: d("10")},
		map[id.ID]product.TaxInfo{productID: gstProduct("18")},
		map[id.ID]ledger.TaxInfo{freightID: {GSTRate: d("18")}},
	)

	if len(got.Charges) != 1 {
		t.Fatalf("len(Charges) = %d, want 1", len(got.Charges))
	}
	// 10% of 900 after discount, not 10% of 1000
	assertEq(t, "charge.Amount", got.Charges[0].Amount, d("90"))
	assertEq(t, "charge.CGST", got.Charges[0].CGST, d("8.10"))
	assertEq(t, "charge.SGST", got.Charges[0].SGST, d("8.10"))
	assertEq(t, "ChargesAmount", got.ChargesAmount, d("90"))
	assertEq(t, "TaxableAmount", got.TaxableAmount, d("990"))
	assertEq(t, "TotalCGST", got.TotalCGST, d("89.10"))
	assertEq(t, "TotalSGST", got.TotalSGST, d("89.10"))
	assertEq(t, "TotalTax", got.TotalTax, d("178.20"))
	assertEq(t, "GrandTotal", got.GrandTotal, d("1168"))
	assertEq(t, "RoundOff", got.RoundOff, d("-0.20"))
}

func TestComputeTotalsIGSTMode(t *testing.T) {
	productID := id.New()
	got := ComputeTotals(
		[]LineInput{{ProductID: productID, Quantity: d("10"), Rate: d("100")}},
		nil,
		TaxModeIGST,
		NoDiscount(),
		map[id.ID]product.TaxInfo{productID: gstProduct("18")},
		nil,
	)

	assertEq(t, "TotalCGST", got.TotalCGST, d("0"))
	assertEq(t, "TotalSGST", got.TotalSGST, d("0"))
	assertEq(t, "TotalIGST", got.TotalIGST, d("180"))
	assertEq(t, "TotalTax", got.TotalTax, d("180"))
	assertEq(t, "GrandTotal", got.GrandTotal, d("1180"))
}

func TestComputeTotalsNoTaxMode(t *testing.T) {
	productID := id.New()
	freightID := id.New()
	got := ComputeTotals(
		[]LineInput{{ProductID: productID, Quantity: d("10"), Rate: d("100")}},
		[]ChargeInput{{LedgerID: freightID, Type: ChargeFlat, Value: d("50")}},
		TaxModeNone,
		NoDiscount(),
		map[id.ID]product.TaxInfo{productID: gstProduct("18")},
		map[id.ID]ledger.TaxInfo{freightID: {GSTRate: d("18")}},
	)

	// Nonzero rates everywhere, but no-tax mode wins.
	assertEq(t, "TotalTax", got.TotalTax, d("0"))
	assertEq(t, "ChargesAmount", got.ChargesAmount, d("50"))
	assertEq(t, "TaxableAmount", got.TaxableAmount, d("1050"))
	assertEq(t, "GrandTotal", got.GrandTotal, d("1050"))
}

func TestComputeTotalsTaxBaseIndependence(t *testing.T) {
	aID := id.New()
	bID := id.New()
	lines := []LineInput{
		{ProductID: aID, Quantity: d("3"), Rate: d("99.99")},
		{ProductID: bID, Quantity: d("1.5"), Rate: d("240.40")},
	}
	lookup := map[id.ID]product.TaxInfo{
		aID: exemptProduct(),
		bID: exemptProduct(),
	}

	for _, mode := range []TaxMode{TaxModeNone, TaxModeGST, TaxModeIGST} {
		got := ComputeTotals(lines, nil, mode, NoDiscount(), lookup, nil)
		assertEq(t, "TotalCGST", got.TotalCGST, d("0"))
		assertEq(t, "TotalSGST", got.TotalSGST, d("0"))
		assertEq(t, "TotalIGST", got.TotalIGST, d("0"))
		assertEq(t, "TotalTax", got.TotalTax, d("0"))
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	productID := id.New()
	freightID := id.New()
	lines := []LineInput{
		{ProductID: productID, Quantity: d("7"), Rate: d("123.45")},
	}
	charges := []ChargeInput{
		{LedgerID: freightID, Type: ChargePercentage, Value: d("2.5")},
	}
	products := map[id.ID]product.TaxInfo{productID: gstProduct("12")}
	ledgers := map[id.ID]ledger.TaxInfo{freightID: {GSTRate: d("5")}}

	first := ComputeTotals(lines, charges, TaxModeGST, Discount{Type: DiscountPercentage, Value: d("3")}, products, ledgers)
	second := ComputeTotals(lines, charges, TaxModeGST, Discount{Type: DiscountPercentage, Value: d("3")}, products, ledgers)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestComputeTotalsDiscountConservation(t *testing.T) {
	ids := []id.ID{id.New(), id.New(), id.New(), id.New(), id.New()}
	lines := []LineInput{
		{ProductID: ids[0], Quantity: d("1"), Rate: d("33.33")},
		{ProductID: ids[1], Quantity: d("2"), Rate: d("66.67")},
		{ProductID: ids[2], Quantity: d("3"), Rate: d("10.01")},
		{ProductID: ids[3], Quantity: d("0.5"), Rate: d("199.99")},
		{ProductID: ids[4], Quantity: d("7"), Rate: d("14.29")},
	}
	lookup := make(map[id.ID]product.TaxInfo, len(ids))
	for _, pid := range ids {
		lookup[pid] = gstProduct("18")
	}

	got := ComputeTotals(lines, nil, TaxModeGST, Discount{Type: DiscountFlat, Value: d("77.77")}, lookup, nil)

	var distributed decimal.Decimal
	for _, line := range got.Lines {
		distributed = distributed.Add(line.Discount)
	}
	drift := distributed.Sub(got.DiscountAmount).Abs()
	maxDrift := d("0.01").Mul(decimal.NewFromInt(int64(len(got.Lines))))
	if drift.GreaterThan(maxDrift) {
		t.Errorf("distributed discount %s drifts from %s by %s (max %s)",
			distributed, got.DiscountAmount, drift, maxDrift)
	}
}

func TestComputeTotalsGrandTotalInteger(t *testing.T) {
	tests := []struct {
		name       string
		rate       string
		wantGrand  string
		wantRound  string
	}{
		// half-away-from-zero at the exact .50 boundary
		{name: "exact half rounds up", rate: "100.50", wantGrand: "101", wantRound: "0.50"},
		{name: "below half rounds down", rate: "100.49", wantGrand: "100", wantRound: "-0.49"},
		{name: "above half rounds up", rate: "100.51", wantGrand: "101", wantRound: "0.49"},
		{name: "whole amount untouched", rate: "100.00", wantGrand: "100", wantRound: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productID := id.New()
			got := ComputeTotals(
				[]LineInput{{ProductID: productID, Quantity: d("1"), Rate: d(tt.rate)}},
				nil,
				TaxModeNone,
				NoDiscount(),
				map[id.ID]product.TaxInfo{productID: exemptProduct()},
				nil,
			)

			assertEq(t, "GrandTotal", got.GrandTotal, d(tt.wantGrand))
			assertEq(t, "RoundOff", got.RoundOff, d(tt.wantRound))
			if !got.GrandTotal.Equal(got.GrandTotal.Truncate(0)) {
				t.Errorf("GrandTotal %s has a fractional part", got.GrandTotal)
			}
			// roundOff stays within (-0.5, 0.5]
			if got.RoundOff.LessThanOrEqual(d("-0.5")) || got.RoundOff.GreaterThan(d("0.5")) {
				t.Errorf("RoundOff %s outside (-0.5, 0.5]", got.RoundOff)
			}
		})
	}
}

func TestComputeTotalsUnresolvedProduct(t *testing.T) {
	got := ComputeTotals(
		[]LineInput{{ProductID: id.New(), Quantity: d("2"), Rate: d("100")}},
		nil,
		TaxModeGST,
		NoDiscount(),
		map[id.ID]product.TaxInfo{}, // empty lookup
		nil,
	)

	// Unknown product: line counts toward subtotal but carries no tax.
	assertEq(t, "Subtotal", got.Subtotal, d("200"))
	assertEq(t, "TotalTax", got.TotalTax, d("0"))
	assertEq(t, "GrandTotal", got.GrandTotal, d("200"))
}

func TestComputeTotalsUnresolvedLedgerSkipsCharge(t *testing.T) {
	productID := id.New()
	got := ComputeTotals(
		[]LineInput{{ProductID: productID, Quantity: d("1"), Rate: d("100")}},
		[]ChargeInput{
			{LedgerID: id.New(), Type: ChargeFlat, Value: d("50")},       // unknown ledger
			{LedgerID: id.New(), Type: ChargePercentage, Value: d("0")}, // zero value
		},
		TaxModeGST,
		NoDiscount(),
		map[id.ID]product.TaxInfo{productID: gstProduct("18")},
		map[id.ID]ledger.TaxInfo{},
	)

	if len(got.Charges) != 0 {
		t.Errorf("len(Charges) = %d, want 0", len(got.Charges))
	}
	assertEq(t, "ChargesAmount", got.ChargesAmount, d("0"))
	assertEq(t, "TaxableAmount", got.TaxableAmount, d("100"))
}

func TestComputeTotalsEmptyAndZeroQuantity(t *testing.T) {
	empty := ComputeTotals(nil, nil, TaxModeGST, NoDiscount(), nil, nil)
	assertEq(t, "Subtotal", empty.Subtotal, d("0"))
	assertEq(t, "GrandTotal", empty.GrandTotal, d("0"))
	assertEq(t, "RoundOff", empty.RoundOff, d("0"))
	if len(empty.Lines) != 0 || len(empty.Charges) != 0 {
		t.Errorf("empty input produced %d lines, %d charges", len(empty.Lines), len(empty.Charges))
	}

	productID := id.New()
	zeroQty := ComputeTotals(
		[]LineInput{
			{ProductID: productID, Quantity: d("0"), Rate: d("100")},
			{ProductID: productID, Quantity: d("-1"), Rate: d("100")},
		},
		nil,
		TaxModeGST,
		NoDiscount(),
		map[id.ID]product.TaxInfo{productID: gstProduct("18")},
		nil,
	)
	if len(zeroQty.Lines) != 0 {
		t.Errorf("zero/negative quantity lines not dropped: %d", len(zeroQty.Lines))
	}
	assertEq(t, "Subtotal", zeroQty.Subtotal, d("0"))
}

// An oversized flat discount is not clamped: the negative after-discount
// amount flows through so validation can reject it before submission.
func TestComputeTotalsOversizedFlatDiscount(t *testing.T) {
	productID := id.New()
	got := ComputeTotals(
		[]LineInput{{ProductID: productID, Quantity: d("1"), Rate: d("100")}},
		nil,
		TaxModeNone,
		Discount{Type: DiscountFlat, Value: d("150")},
		map[id.ID]product.TaxInfo{productID: exemptProduct()},
		nil,
	)

	assertEq(t, "DiscountAmount", got.DiscountAmount, d("150"))
	assertEq(t, "TaxableAmount", got.TaxableAmount, d("-50"))
	assertEq(t, "GrandTotal", got.GrandTotal, d("-50"))
	assertEq(t, "line.Discount", got.Lines[0].Discount, d("150"))
	assertEq(t, "line.TaxableValue", got.Lines[0].TaxableValue, d("-50"))
}

// Per-step rounding: fractional quantities and rates are rounded before
// the gross amount is computed, and each tax amount is rounded on its own.
func TestComputeTotalsPerStepRounding(t *testing.T) {
	productID := id.New()
	got := ComputeTotals(
		// 3.333 rounds to 3.33 before multiplication
		[]LineInput{{ProductID: productID, Quantity: d("3.333"), Rate: d("9.999")}},
		nil,
		TaxModeGST,
		NoDiscount(),
		map[id.ID]product.TaxInfo{productID: gstProduct("18")},
		nil,
	)

	assertEq(t, "line.Quantity", got.Lines[0].Quantity, d("3.33"))
	assertEq(t, "line.Rate", got.Lines[0].Rate, d("10.00"))
	// 3.33 * 10.00, not 3.333 * 9.999
	assertEq(t, "line.GrossAmount", got.Lines[0].GrossAmount, d("33.30"))
	// 33.30 * 9 / 100 = 2.997 -> 3.00 at this step
	assertEq(t, "line.CGST", got.Lines[0].CGST, d("3.00"))
	assertEq(t, "line.SGST", got.Lines[0].SGST, d("3.00"))
}
