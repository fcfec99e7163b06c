package dto

import (
	"godown/internal/core/entity"
	"godown/internal/domain/catalogs/party"
)

// CreatePartyRequest is the request body for creating a party.
type CreatePartyRequest struct {
	Code            string            `json:"code"`
	Name            string            `json:"name" binding:"required"`
	Type            party.PartyType   `json:"type" binding:"required"`
	LegalName       *string           `json:"legalName"`
	GSTIN           *string           `json:"gstin"`
	PAN             *string           `json:"pan"`
	BillingAddress  *string           `json:"billingAddress"`
	ShippingAddress *string           `json:"shippingAddress"`
	StateCode       *string           `json:"stateCode"`
	Phone           *string           `json:"phone"`
	Email           *string           `json:"email"`
	ContactPerson   *string           `json:"contactPerson"`
	Comment         *string           `json:"comment"`
	ParentID        *string           `json:"parentId"`
	IsFolder        bool              `json:"isFolder"`
	Attributes      entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePartyRequest) ToEntity() *party.Party {
	item := party.NewParty(r.Code, r.Name, r.Type)
	item.LegalName = r.LegalName
	item.GSTIN = r.GSTIN
	item.PAN = r.PAN
	item.BillingAddress = r.BillingAddress
	item.ShippingAddress = r.ShippingAddress
	item.StateCode = r.StateCode
	item.Phone = r.Phone
	item.Email = r.Email
	item.ContactPerson = r.ContactPerson
	item.Comment = r.Comment
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	return item
}

// UpdatePartyRequest is the request body for updating a party.
type UpdatePartyRequest struct {
	Code            string            `json:"code"`
	Name            string            `json:"name" binding:"required"`
	Type            party.PartyType   `json:"type" binding:"required"`
	LegalName       *string           `json:"legalName"`
	GSTIN           *string           `json:"gstin"`
	PAN             *string           `json:"pan"`
	BillingAddress  *string           `json:"billingAddress"`
	ShippingAddress *string           `json:"shippingAddress"`
	StateCode       *string           `json:"stateCode"`
	Phone           *string           `json:"phone"`
	Email           *string           `json:"email"`
	ContactPerson   *string           `json:"contactPerson"`
	Comment         *string           `json:"comment"`
	ParentID        *string           `json:"parentId"`
	IsFolder        bool              `json:"isFolder"`
	Attributes      entity.Attributes `json:"attributes"`
	Version         int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePartyRequest) ApplyTo(item *party.Party) {
	item.Code = r.Code
	item.Name = r.Name
	item.Type = r.Type
	item.LegalName = r.LegalName
	item.GSTIN = r.GSTIN
	item.PAN = r.PAN
	item.BillingAddress = r.BillingAddress
	item.ShippingAddress = r.ShippingAddress
	item.StateCode = r.StateCode
	item.Phone = r.Phone
	item.Email = r.Email
	item.ContactPerson = r.ContactPerson
	item.Comment = r.Comment
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	item.Version = r.Version
}

// PartyResponse is the response body for a party.
type PartyResponse struct {
	ID              string            `json:"id"`
	Code            string            `json:"code"`
	Name            string            `json:"name"`
	Type            party.PartyType   `json:"type"`
	LegalName       *string           `json:"legalName,omitempty"`
	GSTIN           *string           `json:"gstin,omitempty"`
	PAN             *string           `json:"pan,omitempty"`
	BillingAddress  *string           `json:"billingAddress,omitempty"`
	ShippingAddress *string           `json:"shippingAddress,omitempty"`
	StateCode       *string           `json:"stateCode,omitempty"`
	Phone           *string           `json:"phone,omitempty"`
	Email           *string           `json:"email,omitempty"`
	ContactPerson   *string           `json:"contactPerson,omitempty"`
	Comment         *string           `json:"comment,omitempty"`
	Registered      bool              `json:"registered"`
	ParentID        *string           `json:"parentId,omitempty"`
	IsFolder        bool              `json:"isFolder"`
	DeletionMark    bool              `json:"deletionMark"`
	Version         int               `json:"version"`
	Attributes      entity.Attributes `json:"attributes,omitempty"`
}

// FromParty creates response DTO from domain entity.
func FromParty(item *party.Party) *PartyResponse {
	return &PartyResponse{
		ID:              item.ID.String(),
		Code:            item.Code,
		Name:            item.Name,
		Type:            item.Type,
		LegalName:       item.LegalName,
		GSTIN:           item.GSTIN,
		PAN:             item.PAN,
		BillingAddress:  item.BillingAddress,
		ShippingAddress: item.ShippingAddress,
		StateCode:       item.StateCode,
		Phone:           item.Phone,
		Email:           item.Email,
		ContactPerson:   item.ContactPerson,
		Comment:         item.Comment,
		Registered:      item.IsRegistered(),
		ParentID:        item.ParentID,
		IsFolder:        item.IsFolder,
		DeletionMark:    item.DeletionMark,
		Version:         item.Version,
		Attributes:      item.Attributes,
	}
}
