package invoice

import (
	"context"
	"time"

	"godown/internal/core/id"
	"godown/internal/domain"
)

// Repository defines operations for sales invoice documents.
type Repository interface {
	Create(ctx context.Context, doc *SalesInvoice) error
	GetByID(ctx context.Context, docID id.ID) (*SalesInvoice, error)
	GetByNumber(ctx context.Context, number string) (*SalesInvoice, error)
	Update(ctx context.Context, doc *SalesInvoice) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]InvoiceLine, error)
	SaveLines(ctx context.Context, docID id.ID, lines []InvoiceLine) error
	GetCharges(ctx context.Context, docID id.ID) ([]InvoiceCharge, error)
	SaveCharges(ctx context.Context, docID id.ID, charges []InvoiceCharge) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*SalesInvoice], error)
	GetForUpdate(ctx context.Context, docID id.ID) (*SalesInvoice, error)
}

// ListFilter for filtering sales invoices.
type ListFilter struct {
	domain.ListFilter

	PartyID     *id.ID
	WarehouseID *id.ID
	Posted      *bool
	DateFrom    *time.Time
	DateTo      *time.Time
}
