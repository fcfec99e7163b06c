package dto

import (
	"github.com/shopspring/decimal"

	"godown/internal/core/entity"
	"godown/internal/domain/catalogs/ledger"
)

// CreateLedgerRequest is the request body for creating a charge ledger.
type CreateLedgerRequest struct {
	Code        string            `json:"code"`
	Name        string            `json:"name" binding:"required"`
	GSTRate     decimal.Decimal   `json:"gstRate"`
	Description *string           `json:"description"`
	ParentID    *string           `json:"parentId"`
	IsFolder    bool              `json:"isFolder"`
	Attributes  entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateLedgerRequest) ToEntity() *ledger.ChargeLedger {
	item := ledger.NewChargeLedger(r.Code, r.Name)
	item.GSTRate = r.GSTRate
	item.Description = r.Description
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	return item
}

// UpdateLedgerRequest is the request body for updating a charge ledger.
type UpdateLedgerRequest struct {
	Code        string            `json:"code"`
	Name        string            `json:"name" binding:"required"`
	GSTRate     decimal.Decimal   `json:"gstRate"`
	Description *string           `json:"description"`
	ParentID    *string           `json:"parentId"`
	IsFolder    bool              `json:"isFolder"`
	Attributes  entity.Attributes `json:"attributes"`
	Version     int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateLedgerRequest) ApplyTo(item *ledger.ChargeLedger) {
	item.Code = r.Code
	item.Name = r.Name
	item.GSTRate = r.GSTRate
	item.Description = r.Description
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	item.Version = r.Version
}

// LedgerResponse is the response body for a charge ledger.
type LedgerResponse struct {
	ID           string            `json:"id"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	GSTRate      decimal.Decimal   `json:"gstRate"`
	Description  *string           `json:"description,omitempty"`
	ParentID     *string           `json:"parentId,omitempty"`
	IsFolder     bool              `json:"isFolder"`
	DeletionMark bool              `json:"deletionMark"`
	Version      int               `json:"version"`
	Attributes   entity.Attributes `json:"attributes,omitempty"`
}

// FromLedger creates response DTO from domain entity.
func FromLedger(item *ledger.ChargeLedger) *LedgerResponse {
	return &LedgerResponse{
		ID:           item.ID.String(),
		Code:         item.Code,
		Name:         item.Name,
		GSTRate:      item.GSTRate,
		Description:  item.Description,
		ParentID:     item.ParentID,
		IsFolder:     item.IsFolder,
		DeletionMark: item.DeletionMark,
		Version:      item.Version,
		Attributes:   item.Attributes,
	}
}
