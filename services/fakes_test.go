package services

import (
	"context"
	"sort"

	"restaurant-pos/models"
	"restaurant-pos/store"
)

// fakeDraftStore mimics the Mongo draft collection including its unique
// index on tableNumber. blindPrecheck simulates a concurrent writer racing
// past the application-level check: FindByTable sees nothing, but the
// unique index still rejects the insert.
type fakeDraftStore struct {
	drafts        map[string]*models.Draft
	deleteErr     error
	blindPrecheck bool
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: map[string]*models.Draft{}}
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
	if s.blindPrecheck {
		return nil, store.ErrNotFound
	}
	for _, d := range s.drafts {
		if d.TableNumber == tableNumber && d.DraftID != excludeID {
			copy := *d
			return &copy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeDraftStore) Insert(ctx context.Context, draft *models.Draft) error {
	if _, ok := s.drafts[draft.DraftID]; ok {
		return store.ErrDuplicateKey
	}
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
	for _, d := range s.drafts {
		if d.TableNumber == draft.TableNumber && d.DraftID != draft.DraftID {
			return store.ErrDuplicateKey
		}
	}
	copy := *draft
	s.drafts[draft.DraftID] = &copy
	return nil
}

func (s *fakeDraftStore) Delete(ctx context.Context, draftID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.drafts[draftID]; !ok {
		return store.ErrNotFound
	}
	delete(s.drafts, draftID)
	return nil
}

type fakeInvoiceStore struct {
	invoices  map[string]*models.Invoice
	lastLimit int64
	lastSkip  int64
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{invoices: map[string]*models.Invoice{}}
}

func (s *fakeInvoiceStore) List(ctx context.Context, limit, skip int64) ([]models.Invoice, error) {
	s.lastLimit, s.lastSkip = limit, skip
	out := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, *inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if skip > int64(len(out)) {
		skip = int64(len(out))
	}
	out = out[skip:]
	if limit < int64(len(out)) {
		out = out[:limit]
	}
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
