package dto

import (
	"godown/internal/core/entity"
	"godown/internal/domain/catalogs/warehouse"
)

// CreateWarehouseRequest is the request body for creating a warehouse.
type CreateWarehouseRequest struct {
	Code        string                  `json:"code"`
	Name        string                  `json:"name" binding:"required"`
	Type        warehouse.WarehouseType `json:"type"`
	Address     *string                 `json:"address"`
	StateCode   *string                 `json:"stateCode"`
	IsActive    *bool                   `json:"isActive"`
	IsDefault   bool                    `json:"isDefault"`
	Description *string                 `json:"description"`
	ParentID    *string                 `json:"parentId"`
	IsFolder    bool                    `json:"isFolder"`
	Attributes  entity.Attributes       `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	item := warehouse.NewWarehouse(r.Code, r.Name, r.Type)
	item.Address = r.Address
	item.StateCode = r.StateCode
	if r.IsActive != nil {
		item.IsActive = *r.IsActive
	}
	item.IsDefault = r.IsDefault
	item.Description = r.Description
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	return item
}

// UpdateWarehouseRequest is the request body for updating a warehouse.
type UpdateWarehouseRequest struct {
	Code        string                  `json:"code"`
	Name        string                  `json:"name" binding:"required"`
	Type        warehouse.WarehouseType `json:"type"`
	Address     *string                 `json:"address"`
	StateCode   *string                 `json:"stateCode"`
	IsActive    bool                    `json:"isActive"`
	IsDefault   bool                    `json:"isDefault"`
	Description *string                 `json:"description"`
	ParentID    *string                 `json:"parentId"`
	IsFolder    bool                    `json:"isFolder"`
	Attributes  entity.Attributes       `json:"attributes"`
	Version     int                     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateWarehouseRequest) ApplyTo(item *warehouse.Warehouse) {
	item.Code = r.Code
	item.Name = r.Name
	item.Type = r.Type
	item.Address = r.Address
	item.StateCode = r.StateCode
	item.IsActive = r.IsActive
	item.IsDefault = r.IsDefault
	item.Description = r.Description
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	item.Version = r.Version
}

// WarehouseResponse is the response body for a warehouse.
type WarehouseResponse struct {
	ID           string                  `json:"id"`
	Code         string                  `json:"code"`
	Name         string                  `json:"name"`
	Type         warehouse.WarehouseType `json:"type"`
	Address      *string                 `json:"address,omitempty"`
	StateCode    *string                 `json:"stateCode,omitempty"`
	IsActive     bool                    `json:"isActive"`
	IsDefault    bool                    `json:"isDefault"`
	Description  *string                 `json:"description,omitempty"`
	ParentID     *string                 `json:"parentId,omitempty"`
	IsFolder     bool                    `json:"isFolder"`
	DeletionMark bool                    `json:"deletionMark"`
	Version      int                     `json:"version"`
	Attributes   entity.Attributes       `json:"attributes,omitempty"`
}

// FromWarehouse creates response DTO from domain entity.
func FromWarehouse(item *warehouse.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		ID:           item.ID.String(),
		Code:         item.Code,
		Name:         item.Name,
		Type:         item.Type,
		Address:      item.Address,
		StateCode:    item.StateCode,
		IsActive:     item.IsActive,
		IsDefault:    item.IsDefault,
		Description:  item.Description,
		ParentID:     item.ParentID,
		IsFolder:     item.IsFolder,
		DeletionMark: item.DeletionMark,
		Version:      item.Version,
		Attributes:   item.Attributes,
	}
}
