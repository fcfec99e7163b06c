package invoice

import (
	"context"
	"testing"

	"godown/internal/core/id"
	"godown/internal/domain"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/domain/catalogs/product"
)

// fakeTxManager runs the function directly, no transaction semantics.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	docs map[id.ID]*SalesInvoice
}

func newFakeRepo(docs ...*SalesInvoice) *fakeRepo {
	r := &fakeRepo{docs: make(map[id.ID]*SalesInvoice)}
	for _, doc := range docs {
		r.docs[doc.ID] = doc
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, doc *SalesInvoice) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, docID id.ID) (*SalesInvoice, error) {
	return r.docs[docID], nil
}

func (r *fakeRepo) GetByNumber(_ context.Context, _ string) (*SalesInvoice, error) {
	return nil, nil
}

func (r *fakeRepo) Update(_ context.Context, doc *SalesInvoice) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, docID id.ID) error {
	delete(r.docs, docID)
	return nil
}

func (r *fakeRepo) GetLines(_ context.Context, docID id.ID) ([]InvoiceLine, error) {
	return r.docs[docID].Lines, nil
}

func (r *fakeRepo) SaveLines(_ context.Context, docID id.ID, lines []InvoiceLine) error {
	r.docs[docID].Lines = lines
	return nil
}

func (r *fakeRepo) GetCharges(_ context.Context, docID id.ID) ([]InvoiceCharge, error) {
	return r.docs[docID].Charges, nil
}

func (r *fakeRepo) SaveCharges(_ context.Context, docID id.ID, charges []InvoiceCharge) error {
	r.docs[docID].Charges = charges
	return nil
}

func (r *fakeRepo) List(_ context.Context, _ ListFilter) (domain.ListResult[*SalesInvoice], error) {
	return domain.ListResult[*SalesInvoice]{}, nil
}

func (r *fakeRepo) GetForUpdate(_ context.Context, docID id.ID) (*SalesInvoice, error) {
	return r.docs[docID], nil
}

type emptyProductTax struct{}

func (emptyProductTax) TaxInfoByIDs(_ context.Context, _ []id.ID) (map[id.ID]product.TaxInfo, error) {
	return map[id.ID]product.TaxInfo{}, nil
}

type emptyLedgerTax struct{}

func (emptyLedgerTax) TaxInfoByIDs(_ context.Context, _ []id.ID) (map[id.ID]ledger.TaxInfo, error) {
	return map[id.ID]ledger.TaxInfo{}, nil
}

// orderRecorder records lifecycle transitions requested by the service.
type orderRecorder struct {
	invoiced []id.ID
	reopened []id.ID
}

func (o *orderRecorder) MarkInvoiced(_ context.Context, orderID id.ID) error {
	o.invoiced = append(o.invoiced, orderID)
	return nil
}

func (o *orderRecorder) Reopen(_ context.Context, orderID id.ID) error {
	o.reopened = append(o.reopened, orderID)
	return nil
}

func TestPostMarksLinkedOrderInvoiced(t *testing.T) {
	ctx := context.Background()

	orderID := id.New()
	doc := validInvoice()
	doc.OrderID = &orderID

	orders := &orderRecorder{}
	svc := NewService(newFakeRepo(doc), emptyProductTax{}, emptyLedgerTax{}, orders, nil, fakeTxManager{})

	if err := svc.Post(ctx, doc.ID); err != nil {
		t.Fatalf("Post() = %v", err)
	}
	if !doc.Posted {
		t.Fatal("invoice not marked posted")
	}
	if len(orders.invoiced) != 1 || orders.invoiced[0] != orderID {
		t.Fatalf("MarkInvoiced calls = %v, want exactly [%s]", orders.invoiced, orderID)
	}

	if err := svc.Unpost(ctx, doc.ID); err != nil {
		t.Fatalf("Unpost() = %v", err)
	}
	if len(orders.reopened) != 1 || orders.reopened[0] != orderID {
		t.Fatalf("Reopen calls = %v, want exactly [%s]", orders.reopened, orderID)
	}
}

func TestPostWithoutOrderLeavesLifecycleAlone(t *testing.T) {
	ctx := context.Background()

	doc := validInvoice()

	orders := &orderRecorder{}
	svc := NewService(newFakeRepo(doc), emptyProductTax{}, emptyLedgerTax{}, orders, nil, fakeTxManager{})

	if err := svc.Post(ctx, doc.ID); err != nil {
		t.Fatalf("Post() = %v", err)
	}
	if len(orders.invoiced) != 0 || len(orders.reopened) != 0 {
		t.Fatalf("lifecycle calls = %v/%v, want none", orders.invoiced, orders.reopened)
	}
}
