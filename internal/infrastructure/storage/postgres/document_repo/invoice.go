package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"godown/internal/core/id"
	"godown/internal/domain"
	"godown/internal/domain/documents/invoice"
	"godown/internal/infrastructure/storage/postgres"
)

const (
	invoicesTable       = "doc_sales_invoices"
	invoiceLinesTable   = "doc_sales_invoice_lines"
	invoiceChargesTable = "doc_sales_invoice_charges"
)

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	*BaseDocumentRepo[*invoice.SalesInvoice]
}

var _ invoice.Repository = (*InvoiceRepo)(nil)

// NewInvoiceRepo creates a new sales invoice repository.
func NewInvoiceRepo(txm *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*invoice.SalesInvoice](
			txm,
			invoicesTable,
			postgres.ExtractDBColumns[invoice.SalesInvoice](),
			func() *invoice.SalesInvoice { return &invoice.SalesInvoice{} },
		),
	}
}

func (r *InvoiceRepo) GetLines(ctx context.Context, docID id.ID) ([]invoice.InvoiceLine, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "product_id", "quantity", "rate",
			"gross_amount", "discount", "taxable_value",
			"cgst", "sgst", "igst", "total_tax",
		).
		From(invoiceLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []invoice.InvoiceLine
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

func (r *InvoiceRepo) SaveLines(ctx context.Context, docID id.ID, lines []invoice.InvoiceLine) error {
	querier := r.querier(ctx)

	deleteSQL := "DELETE FROM " + invoiceLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(invoiceLinesTable).
		Columns(
			"line_id", "document_id", "line_no", "product_id", "quantity", "rate",
			"gross_amount", "discount", "taxable_value",
			"cgst", "sgst", "igst", "total_tax",
		)

	for _, line := range lines {
		q = q.Values(
			line.LineID, docID, line.LineNo, line.ProductID, line.Quantity, line.Rate,
			line.GrossAmount, line.Discount, line.TaxableValue,
			line.CGST, line.SGST, line.IGST, line.TotalTax,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

func (r *InvoiceRepo) GetCharges(ctx context.Context, docID id.ID) ([]invoice.InvoiceCharge, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "ledger_id", "charge_type", "charge_value",
			"amount", "cgst", "sgst", "igst", "total_tax",
		).
		From(invoiceChargesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var charges []invoice.InvoiceCharge
	if err := pgxscan.Select(ctx, r.querier(ctx), &charges, sql, args...); err != nil {
		return nil, fmt.Errorf("get charges: %w", err)
	}

	return charges, nil
}

func (r *InvoiceRepo) SaveCharges(ctx context.Context, docID id.ID, charges []invoice.InvoiceCharge) error {
	querier := r.querier(ctx)

	deleteSQL := "DELETE FROM " + invoiceChargesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing charges: %w", err)
	}

	if len(charges) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(invoiceChargesTable).
		Columns(
			"line_id", "document_id", "line_no", "ledger_id", "charge_type", "charge_value",
			"amount", "cgst", "sgst", "igst", "total_tax",
		)

	for _, charge := range charges {
		q = q.Values(
			charge.LineID, docID, charge.LineNo, charge.LedgerID, charge.Type, charge.Value,
			charge.Amount, charge.CGST, charge.SGST, charge.IGST, charge.TotalTax,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert charges: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert charges: %w", err)
	}

	return nil
}

func (r *InvoiceRepo) List(ctx context.Context, filter invoice.ListFilter) (domain.ListResult[*invoice.SalesInvoice], error) {
	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.PartyID != nil {
		q = q.Where(squirrel.Eq{"party_id": *filter.PartyID})
	}

	if filter.WarehouseID != nil {
		q = q.Where(squirrel.Eq{"warehouse_id": *filter.WarehouseID})
	}

	if filter.Posted != nil {
		q = q.Where(squirrel.Eq{"posted": *filter.Posted})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + filter.Search + "%"})
	}

	return r.listPage(ctx, q, filter.ListFilter)
}
