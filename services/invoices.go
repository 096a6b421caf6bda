package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"restaurant-pos/models"
	"restaurant-pos/store"
	"restaurant-pos/utils"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
	totalTolerance   = 0.01
)

// InvoiceService turns validated line items into immutable invoices and
// retires the originating draft. The invoice write is the durability
// boundary; draft cleanup afterwards is best-effort.
type InvoiceService struct {
	invoices store.InvoiceStore
	drafts   store.DraftStore
}

func NewInvoiceService(invoices store.InvoiceStore, drafts store.DraftStore) *InvoiceService {
	return &InvoiceService{invoices: invoices, drafts: drafts}
}

func (s *InvoiceService) Finalize(ctx context.Context, input models.InvoiceInput) (*models.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	items := make([]models.InvoiceItem, 0, len(input.Items))
	computed := 0.0
	for i, item := range input.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, &InvalidItemError{Index: i, Reason: "name is required"}
		}
		if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
			return nil, &InvalidItemError{Index: i, Reason: "price is invalid"}
		}
		if math.IsNaN(item.Qty) || math.IsInf(item.Qty, 0) || item.Qty <= 0 {
			return nil, &InvalidItemError{Index: i, Reason: "qty is invalid"}
		}
		items = append(items, models.InvoiceItem{Name: name, Price: item.Price, Qty: item.Qty})
		computed += item.Price * item.Qty
	}

	total := computed
	if input.Total != nil {
		claimed := *input.Total
		if math.IsNaN(claimed) || math.IsInf(claimed, 0) || claimed < 0 {
			return nil, ErrInvalidTotal
		}
		if math.Abs(claimed-computed) > totalTolerance {
			// The server is authoritative on money.
			log.Printf("finalize: client total %.2f differs from computed %.2f, using computed", claimed, computed)
		} else {
			total = claimed
		}
	}

	invoiceID := input.InvoiceID
	if invoiceID == "" {
		invoiceID = input.ID
	}
	if invoiceID == "" {
		invoiceID = utils.NewInvoiceID()
	}

	now := time.Now()
	date := now
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	invoice := &models.Invoice{
		InvoiceID:     invoiceID,
		OrderType:     defaultNA(input.OrderType),
		PaymentType:   defaultNA(input.PaymentType),
		Date:          date,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Items:         items,
		Total:         total,
		SourceDraftID: input.SourceDraftID,
		CreatedAt:     now,
	}

	if err := s.invoices.Insert(ctx, invoice); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, ErrDuplicateInvoice
		}
		return nil, err
	}

	// The invoice is final at this point. Failing to retire the draft is a
	// minor cleanup problem surfaced via the drafts list and retried by the
	// background sweep, never a reason to fail the sale.
	if input.SourceDraftID != "" {
		if err := s.drafts.Delete(ctx, input.SourceDraftID); err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Printf("finalize: could not delete draft %s: %v", input.SourceDraftID, err)
		}
	}

	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context, limit, skip int64) ([]models.Invoice, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.invoices.List(ctx, limit, skip)
}

func (s *InvoiceService) Get(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	return s.invoices.FindByID(ctx, invoiceID)
}

func (s *InvoiceService) Delete(ctx context.Context, invoiceID string) error {
	return s.invoices.Delete(ctx, invoiceID)
}

func defaultNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
