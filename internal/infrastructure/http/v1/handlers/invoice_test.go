package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"godown/internal/core/id"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/domain/catalogs/product"
	"godown/internal/domain/documents/invoice"
	"godown/internal/infrastructure/http/v1/middleware"
)

type stubProductTax map[id.ID]product.TaxInfo

func (s stubProductTax) TaxInfoByIDs(_ context.Context, ids []id.ID) (map[id.ID]product.TaxInfo, error) {
	out := make(map[id.ID]product.TaxInfo, len(ids))
	for _, pid := range ids {
		if info, ok := s[pid]; ok {
			out[pid] = info
		}
	}
	return out, nil
}

type stubLedgerTax map[id.ID]ledger.TaxInfo

func (s stubLedgerTax) TaxInfoByIDs(_ context.Context, ids []id.ID) (map[id.ID]ledger.TaxInfo, error) {
	out := make(map[id.ID]ledger.TaxInfo, len(ids))
	for _, lid := range ids {
		if info, ok := s[lid]; ok {
			out[lid] = info
		}
	}
	return out, nil
}

func previewRouter(products stubProductTax, ledgers stubLedgerTax) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := invoice.NewService(nil, products, ledgers, nil, nil, nil)
	handler := NewInvoiceHandler(NewBaseHandler(), service)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/preview-totals", handler.PreviewTotals)
	return router
}

func postPreview(t *testing.T, router *gin.Engine, body map[string]any) (*httptest.ResponseRecorder, invoice.Totals) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/preview-totals", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var totals invoice.Totals
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &totals); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
	}
	return rec, totals
}

func TestPreviewTotals_GSTWithCharge(t *testing.T) {
	productID := id.New()
	freightID := id.New()

	router := previewRouter(
		stubProductTax{productID: {TaxType: product.TaxGST, GSTRate: decimal.NewFromInt(18)}},
		stubLedgerTax{freightID: {GSTRate: decimal.NewFromInt(18)}},
	)

	rec, totals := postPreview(t, router, map[string]any{
		"taxMode": "gst",
		"lines": []map[string]any{
			{"productId": productID.String(), "quantity": "2", "rate": "100"},
		},
		"charges": []map[string]any{
			{"ledgerId": freightID.String(), "type": "flat_amount", "value": "50"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"subtotal", totals.Subtotal, "200"},
		{"chargesAmount", totals.ChargesAmount, "50"},
		{"totalCGST", totals.TotalCGST, "22.50"},
		{"totalSGST", totals.TotalSGST, "22.50"},
		{"totalIGST", totals.TotalIGST, "0"},
		{"totalTax", totals.TotalTax, "45"},
		{"grandTotal", totals.GrandTotal, "295"},
		{"roundOff", totals.RoundOff, "0"},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestPreviewTotals_UnknownProductStaysUntaxed(t *testing.T) {
	router := previewRouter(stubProductTax{}, stubLedgerTax{})

	rec, totals := postPreview(t, router, map[string]any{
		"taxMode": "gst",
		"lines": []map[string]any{
			{"productId": id.New().String(), "quantity": "1", "rate": "99.99"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !totals.TotalTax.IsZero() {
		t.Errorf("totalTax = %s, want 0", totals.TotalTax)
	}
	if !totals.GrandTotal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("grandTotal = %s, want 100", totals.GrandTotal)
	}
	if !totals.RoundOff.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("roundOff = %s, want 0.01", totals.RoundOff)
	}
}

func TestPreviewTotals_RejectsEmptyLines(t *testing.T) {
	router := previewRouter(stubProductTax{}, stubLedgerTax{})

	rec, _ := postPreview(t, router, map[string]any{
		"taxMode": "gst",
		"lines":   []map[string]any{},
	})

	if rec.Code == http.StatusOK {
		t.Fatalf("expected binding failure, got 200")
	}
}
