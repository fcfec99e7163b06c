package handlers

import (
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/infrastructure/http/v1/dto"
)

// LedgerHTTPHandler handles charge ledger catalog endpoints.
type LedgerHTTPHandler = CatalogHandler[*ledger.ChargeLedger, dto.CreateLedgerRequest, dto.UpdateLedgerRequest]

// NewLedgerHandler creates a charge ledger handler.
func NewLedgerHandler(base *BaseHandler, service *ledger.Service) *LedgerHTTPHandler {
	config := CatalogHandlerConfig[*ledger.ChargeLedger, dto.CreateLedgerRequest, dto.UpdateLedgerRequest]{
		Service:    service.CatalogService,
		EntityName: "charge_ledger",
		MapCreateDTO: func(req dto.CreateLedgerRequest) *ledger.ChargeLedger {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateLedgerRequest, existing *ledger.ChargeLedger) *ledger.ChargeLedger {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *ledger.ChargeLedger) any {
			return dto.FromLedger(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
