// Package product provides the Product catalog.
// Products are the goods and services sold from warehouses; each carries
// the GST classification used by invoice tax calculation.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"godown/internal/core/apperror"
	"godown/internal/core/entity"
)

// TaxType defines how a product is treated by GST.
type TaxType string

const (
	// TaxGST marks a product as subject to GST at its GSTRate.
	TaxGST TaxType = "gst"
	// TaxExempt marks a product as outside GST entirely.
	TaxExempt TaxType = "exempt"
)

// ProductType defines the type of item.
type ProductType string

const (
	TypeGoods   ProductType = "goods"
	TypeService ProductType = "service"
)

// Product represents a sellable good or service.
type Product struct {
	entity.Catalog

	// Type defines item category
	Type ProductType `db:"type" json:"type"`

	// SKU is the stock keeping unit / article
	SKU *string `db:"sku" json:"sku,omitempty"`

	// Barcode is the item barcode (EAN-13, etc.)
	Barcode *string `db:"barcode" json:"barcode,omitempty"`

	// HSNCode is the GST harmonized system of nomenclature code
	HSNCode *string `db:"hsn_code" json:"hsnCode,omitempty"`

	// Unit is the unit of measure (pcs, kg, box)
	Unit string `db:"unit" json:"unit"`

	// TaxType marks whether the product is subject to GST at all
	TaxType TaxType `db:"tax_type" json:"taxType"`

	// GSTRate is the GST rate percentage (0, 5, 12, 18, 28)
	GSTRate decimal.Decimal `db:"gst_rate" json:"gstRate"`

	// SellingPrice is the default selling rate per unit
	SellingPrice decimal.Decimal `db:"selling_price" json:"sellingPrice"`

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`
}

// TaxInfo is the tax classification slice of a product, used by invoice
// tax calculation without loading the full catalog row.
type TaxInfo struct {
	TaxType TaxType
	GSTRate decimal.Decimal
}

// TaxInfo returns the product's tax classification.
func (p *Product) TaxInfo() TaxInfo {
	return TaxInfo{TaxType: p.TaxType, GSTRate: p.GSTRate}
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string, itemType ProductType) *Product {
	return &Product{
		Catalog:      entity.NewCatalog(code, name),
		Type:         itemType,
		Unit:         "pcs",
		TaxType:      TaxGST,
		GSTRate:      decimal.Zero,
		SellingPrice: decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidProductType(p.Type) {
		return apperror.NewValidation("invalid product type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}

	if !isValidTaxType(p.TaxType) {
		return apperror.NewValidation("invalid tax type").
			WithDetail("field", "taxType").
			WithDetail("value", string(p.TaxType))
	}

	if p.GSTRate.IsNegative() {
		return apperror.NewValidation("GST rate cannot be negative").
			WithDetail("field", "gstRate")
	}

	if p.GSTRate.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("GST rate cannot exceed 100").
			WithDetail("field", "gstRate")
	}

	if p.SellingPrice.IsNegative() {
		return apperror.NewValidation("selling price cannot be negative").
			WithDetail("field", "sellingPrice")
	}

	return nil
}

// IsTaxable returns true if the product is subject to GST.
// An exempt product contributes zero tax regardless of the invoice tax mode.
func (p *Product) IsTaxable() bool {
	return p.TaxType == TaxGST
}

// IsPhysical returns true if item has physical presence (not a service).
func (p *Product) IsPhysical() bool {
	return p.Type != TypeService
}

func isValidProductType(t ProductType) bool {
	switch t {
	case TypeGoods, TypeService:
		return true
	}
	return false
}

func isValidTaxType(t TaxType) bool {
	switch t {
	case TaxGST, TaxExempt:
		return true
	}
	return false
}
