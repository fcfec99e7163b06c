// Package party provides the Party catalog.
// Parties represent business partners: customers, suppliers, transporters.
package party

import (
	"context"
	"regexp"
	"strings"

	"godown/internal/core/apperror"
	"godown/internal/core/entity"
)

// Pre-compiled regex patterns for validation
var (
	// GSTIN: 2-digit state code, 10-char PAN, entity number, 'Z', checksum
	gstinRE = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panRE   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// PartyType defines the role of the party.
type PartyType string

const (
	TypeCustomer    PartyType = "customer"
	TypeSupplier    PartyType = "supplier"
	TypeBoth        PartyType = "both"
	TypeTransporter PartyType = "transporter"
)

// Party represents a business partner.
type Party struct {
	entity.Catalog

	// Type defines whether this is a customer, supplier, or both
	Type PartyType `db:"type" json:"type"`

	// LegalName is the official registered name
	LegalName *string `db:"legal_name" json:"legalName,omitempty"`

	// GSTIN is the GST identification number; empty for unregistered parties
	GSTIN *string `db:"gstin" json:"gstin,omitempty"`

	// PAN is the permanent account number
	PAN *string `db:"pan" json:"pan,omitempty"`

	// BillingAddress is the billing/registered address
	BillingAddress *string `db:"billing_address" json:"billingAddress,omitempty"`

	// ShippingAddress is the delivery address
	ShippingAddress *string `db:"shipping_address" json:"shippingAddress,omitempty"`

	// StateCode is the two-digit GST state code used to pick the
	// intra-state vs inter-state tax split
	StateCode *string `db:"state_code" json:"stateCode,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// Comment is a free-form note
	Comment *string `db:"comment" json:"comment,omitempty"`
}

// NewParty creates a new Party with required fields.
func NewParty(code, name string, partyType PartyType) *Party {
	return &Party{
		Catalog: entity.NewCatalog(code, name),
		Type:    partyType,
	}
}

// Validate implements entity.Validatable interface.
func (p *Party) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidPartyType(p.Type) {
		return apperror.NewValidation("invalid party type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}

	if p.GSTIN != nil && *p.GSTIN != "" {
		gstin := strings.ToUpper(strings.TrimSpace(*p.GSTIN))
		if !gstinRE.MatchString(gstin) {
			return apperror.NewValidation("invalid GSTIN format").
				WithDetail("field", "gstin")
		}
		// State code inside GSTIN must match the declared one
		if p.StateCode != nil && *p.StateCode != "" && gstin[:2] != *p.StateCode {
			return apperror.NewValidation("GSTIN state code does not match party state code").
				WithDetail("field", "gstin").
				WithDetail("stateCode", *p.StateCode)
		}
	}

	if p.PAN != nil && *p.PAN != "" && !panRE.MatchString(strings.ToUpper(*p.PAN)) {
		return apperror.NewValidation("invalid PAN format").
			WithDetail("field", "pan")
	}

	if p.Email != nil && *p.Email != "" && !emailRE.MatchString(*p.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}

// IsCustomer returns true if party is a customer.
func (p *Party) IsCustomer() bool {
	return p.Type == TypeCustomer || p.Type == TypeBoth
}

// IsSupplier returns true if party is a supplier.
func (p *Party) IsSupplier() bool {
	return p.Type == TypeSupplier || p.Type == TypeBoth
}

// IsRegistered returns true if the party has a GSTIN.
func (p *Party) IsRegistered() bool {
	return p.GSTIN != nil && *p.GSTIN != ""
}

func isValidPartyType(t PartyType) bool {
	switch t {
	case TypeCustomer, TypeSupplier, TypeBoth, TypeTransporter:
		return true
	}
	return false
}
