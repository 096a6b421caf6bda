package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"

	"restaurant-pos/models"
	"restaurant-pos/services"
	"restaurant-pos/store"
)

type fakeDraftStore struct {
	drafts map[string]*models.Draft
}

func (s *fakeDraftStore) List(ctx context.Context) ([]models.Draft, error) {
	out := make([]models.Draft, 0, len(s.drafts))
	for _, d := range s.drafts {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeDraftStore) FindByID(ctx context.Context, draftID string) (*models.Draft, error) {
	d, ok := s.drafts[draftID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copy := *d
	return &copy, nil
}

func (s *fakeDraftStore) FindByTable(ctx context.Context, tableNumber, excludeID string) (*models.Draft, error) {
	for _, d := range s.drafts {
		if d.TableNumber == tableNumber && d.DraftID != excludeID {
			copy := *d
			return &copy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeDraftStore) Insert(ctx context.Context, draft *models.Draft) error {
	for _, d := range s.drafts {
		if d.TableNumber == draft.TableNumber {
			return store.ErrDuplicateKey
		}
	}
	copy := *draft
	s.drafts[draft.DraftID] = &copy
	return nil
}

func (s *fakeDraftStore) Update(ctx context.Context, draft *models.Draft) error {
	if _, ok := s.drafts[draft.DraftID]; !ok {
		return store.ErrNotFound
	}
	copy := *draft
	s.drafts[draft.DraftID] = &copy
	return nil
}

func (s *fakeDraftStore) Delete(ctx context.Context, draftID string) error {
	if _, ok := s.drafts[draftID]; !ok {
		return store.ErrNotFound
	}
	delete(s.drafts, draftID)
	return nil
}

type fakeInvoiceStore struct {
	invoices map[string]*models.Invoice
}

func (s *fakeInvoiceStore) List(ctx context.Context, limit, skip int64) ([]models.Invoice, error) {
	out := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, *inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeInvoiceStore) FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	inv, ok := s.invoices[invoiceID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copy := *inv
	return &copy, nil
}

func (s *fakeInvoiceStore) Insert(ctx context.Context, invoice *models.Invoice) error {
	if _, ok := s.invoices[invoice.InvoiceID]; ok {
		return store.ErrDuplicateKey
	}
	copy := *invoice
	s.invoices[invoice.InvoiceID] = &copy
	return nil
}

func (s *fakeInvoiceStore) Delete(ctx context.Context, invoiceID string) error {
	if _, ok := s.invoices[invoiceID]; !ok {
		return store.ErrNotFound
	}
	delete(s.invoices, invoiceID)
	return nil
}

type fakeProductStore []models.Product

func (s fakeProductStore) List(ctx context.Context) ([]models.Product, error) {
	return s, nil
}

// setupTest wires the handlers to in-memory fakes and returns a router
// with the public POS routes registered.
func setupTest(t *testing.T) (*gin.Engine, *fakeDraftStore, *fakeInvoiceStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	drafts := &fakeDraftStore{drafts: map[string]*models.Draft{}}
	invoices := &fakeInvoiceStore{invoices: map[string]*models.Invoice{}}

	draftService = services.NewDraftService(drafts)
	invoiceService = services.NewInvoiceService(invoices, drafts)
	productStore = fakeProductStore{
		{Name: "Chapathi", Price: 15},
		{Name: "Ghee Roti", Price: 70},
	}
	corrector = nil

	r := gin.New()
	r.POST("/invoices", CreateInvoice)
	r.GET("/invoices", ListInvoices)
	r.GET("/invoices/:id", GetInvoice)
	r.DELETE("/invoices/:id", DeleteInvoice)
	r.GET("/drafts", ListDrafts)
	r.POST("/drafts", SaveDraft)
	r.DELETE("/drafts/:id", DeleteDraft)
	r.POST("/ai/correct-name", CorrectName)
	r.POST("/orders/parse", ParseOrder)
	return r, drafts, invoices
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
