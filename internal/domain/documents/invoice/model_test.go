package invoice

import (
	"context"
	"testing"

	"godown/internal/core/id"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/domain/catalogs/product"
)

func validInvoice() *SalesInvoice {
	inv := NewSalesInvoice(id.New(), id.New())
	inv.AddLine(id.New(), d("2"), d("250"))
	return inv
}

func TestSalesInvoiceValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*SalesInvoice)
		wantErr bool
	}{
		{
			name:    "valid invoice",
			mutate:  func(inv *SalesInvoice) {},
			wantErr: false,
		},
		{
			name:    "missing party",
			mutate:  func(inv *SalesInvoice) { inv.PartyID = id.Nil() },
			wantErr: true,
		},
		{
			name:    "missing warehouse",
			mutate:  func(inv *SalesInvoice) { inv.WarehouseID = id.Nil() },
			wantErr: true,
		},
		{
			name:    "invalid tax mode",
			mutate:  func(inv *SalesInvoice) { inv.TaxMode = "vat" },
			wantErr: true,
		},
		{
			name:    "no lines",
			mutate:  func(inv *SalesInvoice) { inv.Lines = nil },
			wantErr: true,
		},
		{
			name:    "zero quantity line",
			mutate:  func(inv *SalesInvoice) { inv.Lines[0].Quantity = d("0") },
			wantErr: true,
		},
		{
			name:    "negative rate",
			mutate:  func(inv *SalesInvoice) { inv.Lines[0].Rate = d("-1") },
			wantErr: true,
		},
		{
			name: "percentage discount over 100",
			mutate: func(inv *SalesInvoice) {
				inv.DiscountType = DiscountPercentage
				inv.DiscountValue = d("120")
			},
			wantErr: true,
		},
		{
			name: "negative charge value",
			mutate: func(inv *SalesInvoice) {
				inv.AddCharge(id.New(), ChargeFlat, d("-10"))
			},
			wantErr: true,
		},
		{
			name: "invalid charge type",
			mutate: func(inv *SalesInvoice) {
				inv.AddCharge(id.New(), "markup", d("10"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvoice()
			tt.mutate(inv)

			err := inv.Validate(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyTotalsMirrorsComputation(t *testing.T) {
	productID := id.New()
	inv := NewSalesInvoice(id.New(), id.New())
	inv.AddLine(productID, d("10"), d("100"))
	inv.DiscountType = DiscountPercentage
	inv.DiscountValue = d("10")

	lookup := map[id.ID]product.TaxInfo{
		productID: {TaxType: product.TaxGST, GSTRate: d("18")},
	}

	totals := inv.Compute(lookup, nil)
	inv.ApplyTotals(totals)

	assertEq(t, "Subtotal", inv.Subtotal, totals.Subtotal)
	assertEq(t, "GrandTotal", inv.GrandTotal, d("1062"))
	assertEq(t, "line.TaxableValue", inv.Lines[0].TaxableValue, d("900"))
	if inv.Lines[0].LineNo != 1 {
		t.Errorf("LineNo = %d, want 1", inv.Lines[0].LineNo)
	}
}

func TestApplyTotalsDropsZeroQuantityLines(t *testing.T) {
	productID := id.New()
	inv := NewSalesInvoice(id.New(), id.New())
	inv.AddLine(productID, d("1"), d("100"))
	inv.AddLine(productID, d("0"), d("500"))

	inv.ApplyTotals(inv.Compute(nil, nil))

	if len(inv.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(inv.Lines))
	}
	assertEq(t, "Subtotal", inv.Subtotal, d("100"))
}

func TestCheckDiscountBounds(t *testing.T) {
	inv := NewSalesInvoice(id.New(), id.New())
	inv.AddLine(id.New(), d("1"), d("100"))
	inv.DiscountType = DiscountFlat
	inv.DiscountValue = d("150")

	inv.ApplyTotals(inv.Compute(nil, nil))

	if err := inv.CheckDiscountBounds(); err == nil {
		t.Error("CheckDiscountBounds() = nil, want error for oversized flat discount")
	}

	inv.DiscountValue = d("50")
	inv.ApplyTotals(inv.Compute(nil, nil))
	if err := inv.CheckDiscountBounds(); err != nil {
		t.Errorf("CheckDiscountBounds() = %v, want nil", err)
	}
}

func TestApplyTotalsKeepsLineIDsAcrossDroppedLines(t *testing.T) {
	inv := NewSalesInvoice(id.New(), id.New())
	inv.AddLine(id.New(), d("1"), d("100"))
	inv.AddLine(id.New(), d("0"), d("500")) // dropped by the calculator
	inv.AddLine(id.New(), d("2"), d("50"))

	firstID := inv.Lines[0].LineID
	thirdID := inv.Lines[2].LineID

	inv.ApplyTotals(inv.Compute(nil, nil))

	if len(inv.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(inv.Lines))
	}
	if inv.Lines[0].LineID != firstID {
		t.Errorf("Lines[0].LineID = %s, want %s", inv.Lines[0].LineID, firstID)
	}
	if inv.Lines[1].LineID != thirdID {
		t.Errorf("Lines[1].LineID = %s, want ID of the surviving third line %s", inv.Lines[1].LineID, thirdID)
	}
}

func TestApplyTotalsKeepsChargeIDsAcrossSkippedCharges(t *testing.T) {
	unknownLedger := id.New()
	freight := id.New()

	inv := NewSalesInvoice(id.New(), id.New())
	inv.AddLine(id.New(), d("1"), d("100"))
	inv.AddCharge(unknownLedger, ChargeFlat, d("10")) // unresolved ledger, skipped
	inv.AddCharge(freight, ChargeFlat, d("25"))

	freightID := inv.Charges[1].LineID

	ledgerTax := map[id.ID]ledger.TaxInfo{freight: {GSTRate: d("18")}}
	inv.ApplyTotals(inv.Compute(nil, ledgerTax))

	if len(inv.Charges) != 1 {
		t.Fatalf("len(Charges) = %d, want 1", len(inv.Charges))
	}
	if inv.Charges[0].LedgerID != freight {
		t.Fatalf("Charges[0].LedgerID = %s, want %s", inv.Charges[0].LedgerID, freight)
	}
	if inv.Charges[0].LineID != freightID {
		t.Errorf("Charges[0].LineID = %s, want %s", inv.Charges[0].LineID, freightID)
	}
}
