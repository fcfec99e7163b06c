package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"godown/internal/core/apperror"
	"godown/internal/core/id"
	"godown/internal/domain"
	"godown/internal/domain/documents/order"
	"godown/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles HTTP requests for SalesOrder documents.
type OrderHandler struct {
	*BaseHandler
	service *order.Service
}

// NewOrderHandler creates a new sales order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /document/sales-order
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.OrderListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	filter := order.ListFilter{
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

	if q.Status != "" {
		status := order.OrderStatus(q.Status)
		filter.Status = &status
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

	items := make([]*dto.OrderResponse, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromOrder(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// Get handles GET /document/sales-order/:id
func (h *OrderHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.FromOrder(doc))
}

// Create handles POST /document/sales-order
func (h *OrderHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateOrderRequest
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

	c.JSON(http.StatusCreated, dto.FromOrder(doc))
}

// Update handles PUT /document/sales-order/:id
func (h *OrderHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateOrderRequest
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

	c.JSON(http.StatusOK, dto.FromOrder(doc))
}

// Delete handles DELETE /document/sales-order/:id
func (h *OrderHandler) Delete(c *gin.Context) {
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

// Cancel handles POST /document/sales-order/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Cancel(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "order cancelled"})
}
