package handlers

import (
	"github.com/gin-gonic/gin"

	"godown/internal/core/apperror"
	"godown/internal/domain/catalogs/party"
	"godown/internal/infrastructure/http/v1/dto"
)

// PartyHTTPHandler handles party catalog endpoints.
type PartyHTTPHandler struct {
	*CatalogHandler[*party.Party, dto.CreatePartyRequest, dto.UpdatePartyRequest]
	service *party.Service
}

// NewPartyHandler creates a party handler.
func NewPartyHandler(base *BaseHandler, service *party.Service) *PartyHTTPHandler {
	config := CatalogHandlerConfig[*party.Party, dto.CreatePartyRequest, dto.UpdatePartyRequest]{
		Service:    service.CatalogService,
		EntityName: "party",
		MapCreateDTO: func(req dto.CreatePartyRequest) *party.Party {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePartyRequest, existing *party.Party) *party.Party {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *party.Party) any {
			return dto.FromParty(entity)
		},
	}

	return &PartyHTTPHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// FindByGSTIN handles GET /parties/by-gstin/:gstin
func (h *PartyHTTPHandler) FindByGSTIN(c *gin.Context) {
	gstin := c.Param("gstin")
	if gstin == "" {
		h.Error(c, apperror.NewValidation("gstin is required"))
		return
	}

	item, err := h.service.FindByGSTIN(c.Request.Context(), gstin)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromParty(item))
}
