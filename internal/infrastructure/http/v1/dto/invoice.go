package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"godown/internal/core/id"
	"godown/internal/domain/documents/invoice"
)

// --- Request DTOs ---

type InvoiceLineRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Rate      decimal.Decimal `json:"rate" binding:"required"`
}

type InvoiceChargeRequest struct {
	LedgerID string             `json:"ledgerId" binding:"required"`
	Type     invoice.ChargeType `json:"type" binding:"required"`
	Value    decimal.Decimal    `json:"value" binding:"required"`
}

type CreateInvoiceRequest struct {
	Number        string                 `json:"number,omitempty"`
	Date          time.Time              `json:"date"`
	PartyID       string                 `json:"partyId" binding:"required"`
	WarehouseID   string                 `json:"warehouseId" binding:"required"`
	OrderID       *string                `json:"orderId,omitempty"`
	TaxMode       invoice.TaxMode        `json:"taxMode"`
	DiscountType  invoice.DiscountType   `json:"discountType"`
	DiscountValue decimal.Decimal        `json:"discountValue"`
	Comment       string                 `json:"comment,omitempty"`
	Lines         []InvoiceLineRequest   `json:"lines" binding:"required,min=1,dive"`
	Charges       []InvoiceChargeRequest `json:"charges,omitempty"`
}

func (r *CreateInvoiceRequest) ToEntity() *invoice.SalesInvoice {
	partyID, _ := id.Parse(r.PartyID)
	warehouseID, _ := id.Parse(r.WarehouseID)

	doc := invoice.NewSalesInvoice(partyID, warehouseID)
	doc.Number = r.Number
	if !r.Date.IsZero() {
		doc.Date = r.Date
	}
	if r.OrderID != nil {
		orderID, err := id.Parse(*r.OrderID)
		if err == nil {
			doc.OrderID = &orderID
		}
	}
	if r.TaxMode != "" {
		doc.TaxMode = r.TaxMode
	}
	if r.DiscountType != "" {
		doc.DiscountType = r.DiscountType
	}
	doc.DiscountValue = r.DiscountValue
	doc.Comment = r.Comment

	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		doc.AddLine(productID, line.Quantity, line.Rate)
	}
	for _, charge := range r.Charges {
		ledgerID, _ := id.Parse(charge.LedgerID)
		doc.AddCharge(ledgerID, charge.Type, charge.Value)
	}

	return doc
}

type UpdateInvoiceRequest struct {
	Number        *string                `json:"number,omitempty"`
	Date          *time.Time             `json:"date,omitempty"`
	PartyID       *string                `json:"partyId,omitempty"`
	WarehouseID   *string                `json:"warehouseId,omitempty"`
	OrderID       *string                `json:"orderId,omitempty"`
	TaxMode       *invoice.TaxMode       `json:"taxMode,omitempty"`
	DiscountType  *invoice.DiscountType  `json:"discountType,omitempty"`
	DiscountValue *decimal.Decimal       `json:"discountValue,omitempty"`
	Comment       *string                `json:"comment,omitempty"`
	Lines         []InvoiceLineRequest   `json:"lines,omitempty"`
	Charges       []InvoiceChargeRequest `json:"charges,omitempty"`
}

func (r *UpdateInvoiceRequest) ApplyTo(doc *invoice.SalesInvoice) {
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
	if r.OrderID != nil {
		orderID, err := id.Parse(*r.OrderID)
		if err == nil {
			doc.OrderID = &orderID
		}
	}
	if r.TaxMode != nil {
		doc.TaxMode = *r.TaxMode
	}
	if r.DiscountType != nil {
		doc.DiscountType = *r.DiscountType
	}
	if r.DiscountValue != nil {
		doc.DiscountValue = *r.DiscountValue
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}

	if r.Lines != nil {
		doc.Lines = make([]invoice.InvoiceLine, 0, len(r.Lines))
		for _, line := range r.Lines {
			productID, _ := id.Parse(line.ProductID)
			doc.AddLine(productID, line.Quantity, line.Rate)
		}
	}
	if r.Charges != nil {
		doc.Charges = make([]invoice.InvoiceCharge, 0, len(r.Charges))
		for _, charge := range r.Charges {
			ledgerID, _ := id.Parse(charge.LedgerID)
			doc.AddCharge(ledgerID, charge.Type, charge.Value)
		}
	}
}

// PreviewTotalsRequest computes invoice totals without persisting anything.
// Same shape as CreateInvoiceRequest minus document identity fields.
type PreviewTotalsRequest struct {
	TaxMode       invoice.TaxMode        `json:"taxMode"`
	DiscountType  invoice.DiscountType   `json:"discountType"`
	DiscountValue decimal.Decimal        `json:"discountValue"`
	Lines         []InvoiceLineRequest   `json:"lines" binding:"required,min=1,dive"`
	Charges       []InvoiceChargeRequest `json:"charges,omitempty"`
}

func (r *PreviewTotalsRequest) ToEntity() *invoice.SalesInvoice {
	doc := invoice.NewSalesInvoice(id.Nil(), id.Nil())
	if r.TaxMode != "" {
		doc.TaxMode = r.TaxMode
	}
	if r.DiscountType != "" {
		doc.DiscountType = r.DiscountType
	}
	doc.DiscountValue = r.DiscountValue

	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		doc.AddLine(productID, line.Quantity, line.Rate)
	}
	for _, charge := range r.Charges {
		ledgerID, _ := id.Parse(charge.LedgerID)
		doc.AddCharge(ledgerID, charge.Type, charge.Value)
	}

	return doc
}

// --- List Query ---

type InvoiceListQuery struct {
	ListQuery
	PartyID     string `form:"partyId"`
	WarehouseID string `form:"warehouseId"`
	Posted      *bool  `form:"posted"`
	DateFrom    string `form:"dateFrom"`
	DateTo      string `form:"dateTo"`
}

// --- Response DTOs ---

type InvoiceLineResponse struct {
	LineID       string          `json:"lineId"`
	LineNo       int             `json:"lineNo"`
	ProductID    string          `json:"productId"`
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

type InvoiceChargeResponse struct {
	LineID   string             `json:"lineId"`
	LineNo   int                `json:"lineNo"`
	LedgerID string             `json:"ledgerId"`
	Type     invoice.ChargeType `json:"type"`
	Value    decimal.Decimal    `json:"value"`
	Amount   decimal.Decimal    `json:"amount"`
	CGST     decimal.Decimal    `json:"cgst"`
	SGST     decimal.Decimal    `json:"sgst"`
	IGST     decimal.Decimal    `json:"igst"`
	TotalTax decimal.Decimal    `json:"totalTax"`
}

type InvoiceResponse struct {
	ID            string                  `json:"id"`
	Number        string                  `json:"number"`
	Date          time.Time               `json:"date"`
	Posted        bool                    `json:"posted"`
	PartyID       string                  `json:"partyId"`
	WarehouseID   string                  `json:"warehouseId"`
	OrderID       *string                 `json:"orderId,omitempty"`
	TaxMode       invoice.TaxMode         `json:"taxMode"`
	DiscountType  invoice.DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal         `json:"discountValue"`

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

	Comment      string                  `json:"comment,omitempty"`
	Lines        []InvoiceLineResponse   `json:"lines,omitempty"`
	Charges      []InvoiceChargeResponse `json:"charges,omitempty"`
	DeletionMark bool                    `json:"deletionMark,omitempty"`
	Version      int                     `json:"version"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

func FromInvoice(doc *invoice.SalesInvoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:            doc.ID.String(),
		Number:        doc.Number,
		Date:          doc.Date,
		Posted:        doc.Posted,
		PartyID:       doc.PartyID.String(),
		WarehouseID:   doc.WarehouseID.String(),
		TaxMode:       doc.TaxMode,
		DiscountType:  doc.DiscountType,
		DiscountValue: doc.DiscountValue,

		Subtotal:       doc.Subtotal,
		DiscountAmount: doc.DiscountAmount,
		ChargesAmount:  doc.ChargesAmount,
		TaxableAmount:  doc.TaxableAmount,
		TotalCGST:      doc.TotalCGST,
		TotalSGST:      doc.TotalSGST,
		TotalIGST:      doc.TotalIGST,
		TotalTax:       doc.TotalTax,
		RoundOff:       doc.RoundOff,
		GrandTotal:     doc.GrandTotal,

		Comment:      doc.Comment,
		DeletionMark: doc.DeletionMark,
		Version:      doc.Version,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}

	if doc.OrderID != nil {
		s := doc.OrderID.String()
		resp.OrderID = &s
	}

	for _, line := range doc.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			LineID:       line.LineID.String(),
			LineNo:       line.LineNo,
			ProductID:    line.ProductID.String(),
			Quantity:     line.Quantity,
			Rate:         line.Rate,
			GrossAmount:  line.GrossAmount,
			Discount:     line.Discount,
			TaxableValue: line.TaxableValue,
			CGST:         line.CGST,
			SGST:         line.SGST,
			IGST:         line.IGST,
			TotalTax:     line.TotalTax,
		})
	}

	for _, charge := range doc.Charges {
		resp.Charges = append(resp.Charges, InvoiceChargeResponse{
			LineID:   charge.LineID.String(),
			LineNo:   charge.LineNo,
			LedgerID: charge.LedgerID.String(),
			Type:     charge.Type,
			Value:    charge.Value,
			Amount:   charge.Amount,
			CGST:     charge.CGST,
			SGST:     charge.SGST,
			IGST:     charge.IGST,
			TotalTax: charge.TotalTax,
		})
	}

	return resp
}
