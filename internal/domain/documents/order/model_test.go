package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"godown/internal/core/id"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSalesOrderTotals(t *testing.T) {
	o := NewSalesOrder(id.New(), id.New())
	o.AddLine(id.New(), d("2"), d("49.99"))
	o.AddLine(id.New(), d("1.5"), d("100"))

	if !o.TotalAmount.Equal(d("249.98")) {
		t.Errorf("TotalAmount = %s, want 249.98", o.TotalAmount)
	}
	if !o.Lines[0].Amount.Equal(d("99.98")) {
		t.Errorf("line0.Amount = %s, want 99.98", o.Lines[0].Amount)
	}
	if o.Lines[1].LineNo != 2 {
		t.Errorf("line1.LineNo = %d, want 2", o.Lines[1].LineNo)
	}
}

func TestSalesOrderStatusTransitions(t *testing.T) {
	o := NewSalesOrder(id.New(), id.New())
	o.AddLine(id.New(), d("1"), d("10"))

	if err := o.MarkInvoiced(); err != nil {
		t.Fatalf("MarkInvoiced() = %v", err)
	}
	if err := o.Cancel(); err == nil {
		t.Error("Cancel() on invoiced order should fail")
	}

	if err := o.Reopen(); err != nil {
		t.Fatalf("Reopen() = %v", err)
	}
	if o.Status != StatusOpen {
		t.Errorf("Status = %s after Reopen, want %s", o.Status, StatusOpen)
	}

	o2 := NewSalesOrder(id.New(), id.New())
	if err := o2.Cancel(); err != nil {
		t.Fatalf("Cancel() = %v", err)
	}
	if err := o2.MarkInvoiced(); err == nil {
		t.Error("MarkInvoiced() on cancelled order should fail")
	}
	if err := o2.Reopen(); err == nil {
		t.Error("Reopen() on cancelled order should fail")
	}
}

func TestSalesOrderValidate(t *testing.T) {
	ctx := context.Background()

	o := NewSalesOrder(id.New(), id.New())
	if err := o.Validate(ctx); err == nil {
		t.Error("Validate() = nil for order without lines")
	}

	o.AddLine(id.New(), d("1"), d("10"))
	if err := o.Validate(ctx); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	o.Lines[0].Quantity = d("0")
	if err := o.Validate(ctx); err == nil {
		t.Error("Validate() = nil for zero quantity line")
	}
}
