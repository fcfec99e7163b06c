package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"godown/internal/core/apperror"
	"godown/internal/core/id"
	"godown/internal/domain"
	"godown/internal/domain/documents/invoice"
	"godown/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles HTTP requests for SalesInvoice documents.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new sales invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /document/sales-invoice
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.InvoiceListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	filter := invoice.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = q.Search
	filter.IncludeDeleted = q.IncludeDeleted
	if q.Limit > 0 {
		filter.Limit = q.Limit
	}
	filter.Offset = q.Offset
	if q.OrderBy != "" {
		filter.OrderBy = q.OrderBy
	} else {
		filter.OrderBy = "date DESC"
	}
	filter.Posted = q.Posted

	if q.PartyID != "" {
		partyID, err := id.Parse(q.PartyID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid partyId format"))
			return
		}
		filter.PartyID = &partyID
	}

	if q.WarehouseID != "" {
		warehouseID, err := id.Parse(q.WarehouseID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid warehouseId format"))
			return
		}
		filter.WarehouseID = &warehouseID
	}

	if q.DateFrom != "" {
		from, err := time.Parse("2006-01-02", q.DateFrom)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateFrom format, expected YYYY-MM-DD"))
			return
		}
		filter.DateFrom = &from
	}

	if q.DateTo != "" {
		to, err := time.Parse("2006-01-02", q.DateTo)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateTo format, expected YYYY-MM-DD"))
			return
		}
		filter.DateTo = &to
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.InvoiceResponse, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromInvoice(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// Get handles GET /document/sales-invoice/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromInvoice(doc))
}

// Create handles POST /document/sales-invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc := req.ToEntity()
	if userID := h.GetUserID(c); userID != "" {
		doc.CreatedBy = userID
	}

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromInvoice(doc))
}

// Update handles PUT /document/sales-invoice/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromInvoice(doc))
}

// Delete handles DELETE /document/sales-invoice/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Post handles POST /document/sales-invoice/:id/post
func (h *InvoiceHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Post(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "invoice posted"})
}

// Unpost handles POST /document/sales-invoice/:id/unpost
func (h *InvoiceHandler) Unpost(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Unpost(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "invoice unposted"})
}

// PreviewTotals handles POST /document/sales-invoice/preview-totals.
// Computes the full tax breakdown for a draft without persisting anything.
func (h *InvoiceHandler) PreviewTotals(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PreviewTotalsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	totals, err := h.service.PreviewTotals(ctx, req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}
