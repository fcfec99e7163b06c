// Package order provides the SalesOrder document.
// Orders capture a customer's intent to buy; amounts here are indicative
// and carry no tax breakdown. The binding numbers appear on the invoice.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"godown/internal/core/apperror"
	"godown/internal/core/entity"
	"godown/internal/core/id"
	"godown/internal/core/types"
)

// OrderStatus tracks order fulfillment.
type OrderStatus string

const (
	StatusOpen      OrderStatus = "open"
	StatusInvoiced  OrderStatus = "invoiced"
	StatusCancelled OrderStatus = "cancelled"
)

// SalesOrder represents a customer order.
type SalesOrder struct {
	entity.Document

	// PartyID is the ordering customer
	PartyID id.ID `db:"party_id" json:"partyId"`

	// WarehouseID is the location goods will ship from
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`

	// Status tracks fulfillment
	Status OrderStatus `db:"status" json:"status"`

	// DeliveryDate is the promised delivery date
	DeliveryDate *time.Time `db:"delivery_date" json:"deliveryDate,omitempty"`

	// TotalAmount is the indicative order value (sum of line amounts)
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`

	// Table part: ordered goods
	Lines []OrderLine `db:"-" json:"lines"`
}

// OrderLine represents a line in the sales order.
type OrderLine struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID           `db:"product_id" json:"productId"`
	Quantity  decimal.Decimal `db:"quantity" json:"quantity"`
	Rate      decimal.Decimal `db:"rate" json:"rate"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
}

// NewSalesOrder creates a new sales order document.
func NewSalesOrder(partyID, warehouseID id.ID) *SalesOrder {
	return &SalesOrder{
		Document:    entity.NewDocument(),
		PartyID:     partyID,
		WarehouseID: warehouseID,
		Status:      StatusOpen,
		TotalAmount: decimal.Zero,
		Lines:       make([]OrderLine, 0),
	}
}

// AddLine adds a line to the order and recalculates the total.
func (o *SalesOrder) AddLine(productID id.ID, quantity, rate decimal.Decimal) {
	qty := types.Round2(quantity)
	r := types.Round2(rate)
	o.Lines = append(o.Lines, OrderLine{
		LineID:    id.New(),
		LineNo:    len(o.Lines) + 1,
		ProductID: productID,
		Quantity:  qty,
		Rate:      r,
		Amount:    types.Round2(qty.Mul(r)),
	})
	o.RecalculateTotal()
}

// RecalculateTotal recomputes line amounts and the order total.
func (o *SalesOrder) RecalculateTotal() {
	total := decimal.Zero
	for i := range o.Lines {
		line := &o.Lines[i]
		line.Quantity = types.Round2(line.Quantity)
		line.Rate = types.Round2(line.Rate)
		line.Amount = types.Round2(line.Quantity.Mul(line.Rate))
		total = types.Round2(total.Add(line.Amount))
	}
	o.TotalAmount = total
}

// Validate implements entity.Validatable.
func (o *SalesOrder) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(o.PartyID) {
		return apperror.NewValidation("party is required").
			WithDetail("field", "partyId")
	}

	if id.IsNil(o.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	if !isValidStatus(o.Status) {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}

	if len(o.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range o.Lines {
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

	return nil
}

// MarkInvoiced transitions the order after an invoice is created from it.
func (o *SalesOrder) MarkInvoiced() error {
	if o.Status == StatusCancelled {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"cannot invoice a cancelled order",
		).WithDetail("orderId", o.ID.String())
	}
	o.Status = StatusInvoiced
	o.Touch()
	return nil
}

// Reopen returns an invoiced order to open, e.g. when the invoice
// created from it is unposted.
func (o *SalesOrder) Reopen() error {
	if o.Status == StatusCancelled {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"cannot reopen a cancelled order",
		).WithDetail("orderId", o.ID.String())
	}
	o.Status = StatusOpen
	o.Touch()
	return nil
}

// Cancel transitions the order to cancelled.
func (o *SalesOrder) Cancel() error {
	if o.Status == StatusInvoiced {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"cannot cancel an invoiced order",
		).WithDetail("orderId", o.ID.String())
	}
	o.Status = StatusCancelled
	o.Touch()
	return nil
}

func isValidStatus(s OrderStatus) bool {
	switch s {
	case StatusOpen, StatusInvoiced, StatusCancelled:
		return true
	}
	return false
}
