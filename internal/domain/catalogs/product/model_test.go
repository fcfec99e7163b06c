package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*Product)
		wantErr bool
	}{
		{
			name:    "valid product",
			mutate:  func(p *Product) {},
			wantErr: false,
		},
		{
			name:    "empty name",
			mutate:  func(p *Product) { p.Name = "" },
			wantErr: true,
		},
		{
			name:    "invalid product type",
			mutate:  func(p *Product) { p.Type = "bundle" },
			wantErr: true,
		},
		{
			name:    "invalid tax type",
			mutate:  func(p *Product) { p.TaxType = "vat" },
			wantErr: true,
		},
		{
			name:    "negative GST rate",
			mutate:  func(p *Product) { p.GSTRate = decimal.NewFromInt(-5) },
			wantErr: true,
		},
		{
			name:    "GST rate over 100",
			mutate:  func(p *Product) { p.GSTRate = decimal.NewFromInt(101) },
			wantErr: true,
		},
		{
			name:    "negative selling price",
			mutate:  func(p *Product) { p.SellingPrice = decimal.NewFromInt(-1) },
			wantErr: true,
		},
		{
			name:    "exempt product with zero rate",
			mutate:  func(p *Product) { p.TaxType = TaxExempt },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProduct("PRD-001", "Steel Bolt M8", TypeGoods)
			p.GSTRate = decimal.NewFromInt(18)
			tt.mutate(p)

			err := p.Validate(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProductTaxInfo(t *testing.T) {
	p := NewProduct("PRD-002", "Consulting", TypeService)
	p.TaxType = TaxGST
	p.GSTRate = decimal.NewFromInt(18)

	info := p.TaxInfo()
	if info.TaxType != TaxGST {
		t.Errorf("TaxType = %v, want %v", info.TaxType, TaxGST)
	}
	if !info.GSTRate.Equal(decimal.NewFromInt(18)) {
		t.Errorf("GSTRate = %v, want 18", info.GSTRate)
	}

	if !p.IsTaxable() {
		t.Error("IsTaxable() = false, want true")
	}
	p.TaxType = TaxExempt
	if p.IsTaxable() {
		t.Error("IsTaxable() = true for exempt product")
	}

	if p.IsPhysical() {
		t.Error("IsPhysical() = true for service")
	}
}
