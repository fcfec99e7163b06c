package order

import (
	"context"
	"time"

	"godown/internal/core/id"
	"godown/internal/domain"
)

// Repository defines operations for sales order documents.
type Repository interface {
	Create(ctx context.Context, doc *SalesOrder) error
	GetByID(ctx context.Context, docID id.ID) (*SalesOrder, error)
	GetByNumber(ctx context.Context, number string) (*SalesOrder, error)
	Update(ctx context.Context, doc *SalesOrder) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]OrderLine, error)
	SaveLines(ctx context.Context, docID id.ID, lines []OrderLine) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*SalesOrder], error)
	GetForUpdate(ctx context.Context, docID id.ID) (*SalesOrder, error)
}

// ListFilter for filtering sales orders.
type ListFilter struct {
	domain.ListFilter

	PartyID     *id.ID
	WarehouseID *id.ID
	Status      *OrderStatus
	DateFrom    *time.Time
	DateTo      *time.Time
}
