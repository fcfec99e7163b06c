package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"godown/internal/core/id"
	"godown/internal/domain/documents/order"
)

// --- Request DTOs ---

type OrderLineRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Rate      decimal.Decimal `json:"rate" binding:"required"`
}

type CreateOrderRequest struct {
	Number       string             `json:"number,omitempty"`
	Date         time.Time          `json:"date"`
	PartyID      string             `json:"partyId" binding:"required"`
	WarehouseID  string             `json:"warehouseId" binding:"required"`
	DeliveryDate *time.Time         `json:"deliveryDate,omitempty"`
	Comment      string             `json:"comment,omitempty"`
	Lines        []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r *CreateOrderRequest) ToEntity() *order.SalesOrder {
	partyID, _ := id.Parse(r.PartyID)
	warehouseID, _ := id.Parse(r.WarehouseID)

	doc := order.NewSalesOrder(partyID, warehouseID)
	doc.Number = r.Number
	if !r.Date.IsZero() {
		doc.Date = r.Date
	}
	doc.DeliveryDate = r.DeliveryDate
	doc.Comment = r.Comment

	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		doc.AddLine(productID, line.Quantity, line.Rate)
	}

	return doc
}

type UpdateOrderRequest struct {
	Number       *string            `json:"number,omitempty"`
	Date         *time.Time         `json:"date,omitempty"`
	PartyID      *string            `json:"partyId,omitempty"`
	WarehouseID  *string            `json:"warehouseId,omitempty"`
	DeliveryDate *time.Time         `json:"deliveryDate,omitempty"`
	Comment      *string            `json:"comment,omitempty"`
	Lines        []OrderLineRequest `json:"lines,omitempty"`
}

func (r *UpdateOrderRequest) ApplyTo(doc *order.SalesOrder) {
	if r.Number != nil {
		doc.Number = *r.Number
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.PartyID != nil {
		partyID, _ := id.Parse(*r.PartyID)
		doc.PartyID = partyID
	}
	if r.WarehouseID != nil {
		warehouseID, _ := id.Parse(*r.WarehouseID)
		doc.WarehouseID = warehouseID
	}
	if r.DeliveryDate != nil {
		doc.DeliveryDate = r.DeliveryDate
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}

	if r.Lines != nil {
		doc.Lines = make([]order.OrderLine, 0, len(r.Lines))
		for _, line := range r.Lines {
			productID, _ := id.Parse(line.ProductID)
			doc.AddLine(productID, line.Quantity, line.Rate)
		}
	}
}

// --- List Query ---

type OrderListQuery struct {
	ListQuery
	PartyID     string `form:"partyId"`
	WarehouseID string `form:"warehouseId"`
	Status      string `form:"status"`
	DateFrom    string `form:"dateFrom"`
	DateTo      string `form:"dateTo"`
}

// --- Response DTOs ---

type OrderLineResponse struct {
	LineID    string          `json:"lineId"`
	LineNo    int             `json:"lineNo"`
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	Date         time.Time           `json:"date"`
	Posted       bool                `json:"posted"`
	PartyID      string              `json:"partyId"`
	WarehouseID  string              `json:"warehouseId"`
	Status       order.OrderStatus   `json:"status"`
	DeliveryDate *time.Time          `json:"deliveryDate,omitempty"`
	TotalAmount  decimal.Decimal     `json:"totalAmount"`
	Comment      string              `json:"comment,omitempty"`
	Lines        []OrderLineResponse `json:"lines,omitempty"`
	DeletionMark bool                `json:"deletionMark,omitempty"`
	Version      int                 `json:"version"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func FromOrder(doc *order.SalesOrder) *OrderResponse {
	resp := &OrderResponse{
		ID:           doc.ID.String(),
		Number:       doc.Number,
		Date:         doc.Date,
		Posted:       doc.Posted,
		PartyID:      doc.PartyID.String(),
		WarehouseID:  doc.WarehouseID.String(),
		Status:       doc.Status,
		DeliveryDate: doc.DeliveryDate,
		TotalAmount:  doc.TotalAmount,
		Comment:      doc.Comment,
		DeletionMark: doc.DeletionMark,
		Version:      doc.Version,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}

	for _, line := range doc.Lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			LineID:    line.LineID.String(),
			LineNo:    line.LineNo,
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			Rate:      line.Rate,
			Amount:    line.Amount,
		})
	}

	return resp
}
