package dto

import (
	"github.com/shopspring/decimal"

	"godown/internal/core/entity"
	"godown/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code         string              `json:"code"`
	Name         string              `json:"name" binding:"required"`
	Type         product.ProductType `json:"type" binding:"required"`
	SKU          *string             `json:"sku"`
	Barcode      *string             `json:"barcode"`
	HSNCode      *string             `json:"hsnCode"`
	Unit         string              `json:"unit"`
	TaxType      product.TaxType     `json:"taxType"`
	GSTRate      decimal.Decimal     `json:"gstRate"`
	SellingPrice decimal.Decimal     `json:"sellingPrice"`
	Description  *string             `json:"description"`
	ParentID     *string             `json:"parentId"`
	IsFolder     bool                `json:"isFolder"`
	Attributes   entity.Attributes   `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	item := product.NewProduct(r.Code, r.Name, r.Type)
	item.SKU = r.SKU
	item.Barcode = r.Barcode
	item.HSNCode = r.HSNCode
	if r.Unit != "" {
		item.Unit = r.Unit
	}
	if r.TaxType != "" {
		item.TaxType = r.TaxType
	}
	item.GSTRate = r.GSTRate
	item.SellingPrice = r.SellingPrice
	item.Description = r.Description
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	return item
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code         string              `json:"code"`
	Name         string              `json:"name" binding:"required"`
	Type         product.ProductType `json:"type" binding:"required"`
	SKU          *string             `json:"sku"`
	Barcode      *string             `json:"barcode"`
	HSNCode      *string             `json:"hsnCode"`
	Unit         string              `json:"unit"`
	TaxType      product.TaxType     `json:"taxType"`
	GSTRate      decimal.Decimal     `json:"gstRate"`
	SellingPrice decimal.Decimal     `json:"sellingPrice"`
	Description  *string             `json:"description"`
	ParentID     *string             `json:"parentId"`
	IsFolder     bool                `json:"isFolder"`
	Attributes   entity.Attributes   `json:"attributes"`
	Version      int                 `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(item *product.Product) {
	item.Code = r.Code
	item.Name = r.Name
	item.Type = r.Type
	item.SKU = r.SKU
	item.Barcode = r.Barcode
	item.HSNCode = r.HSNCode
	item.Unit = r.Unit
	item.TaxType = r.TaxType
	item.GSTRate = r.GSTRate
	item.SellingPrice = r.SellingPrice
	item.Description = r.Description
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	item.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID           string              `json:"id"`
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	Type         product.ProductType `json:"type"`
	SKU          *string             `json:"sku,omitempty"`
	Barcode      *string             `json:"barcode,omitempty"`
	HSNCode      *string             `json:"hsnCode,omitempty"`
	Unit         string              `json:"unit"`
	TaxType      product.TaxType     `json:"taxType"`
	GSTRate      decimal.Decimal     `json:"gstRate"`
	SellingPrice decimal.Decimal     `json:"sellingPrice"`
	Description  *string             `json:"description,omitempty"`
	ParentID     *string             `json:"parentId,omitempty"`
	IsFolder     bool                `json:"isFolder"`
	DeletionMark bool                `json:"deletionMark"`
	Version      int                 `json:"version"`
	Attributes   entity.Attributes   `json:"attributes,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(item *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:           item.ID.String(),
		Code:         item.Code,
		Name:         item.Name,
		Type:         item.Type,
		SKU:          item.SKU,
		Barcode:      item.Barcode,
		HSNCode:      item.HSNCode,
		Unit:         item.Unit,
		TaxType:      item.TaxType,
		GSTRate:      item.GSTRate,
		SellingPrice: item.SellingPrice,
		Description:  item.Description,
		ParentID:     item.ParentID,
		IsFolder:     item.IsFolder,
		DeletionMark: item.DeletionMark,
		Version:      item.Version,
		Attributes:   item.Attributes,
	}
}
