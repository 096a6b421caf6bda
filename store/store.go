// Package store wraps the MongoDB collections behind small interfaces so
// the draft and invoice services can be exercised without a live database.
package store

import (
	"context"
	"errors"

	"restaurant-pos/models"
)

var (
	// ErrNotFound is returned when no document matches the given key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

type DraftStore interface {
	List(ctx context.Context) ([]models.Draft, error)
	FindByID(ctx context.Context, draftID string) (*models.Draft, error)
	// FindByTable returns the draft holding tableNumber, skipping the draft
	// with excludeID when excludeID is non-empty.
	FindByTable(ctx context.Context, tableNumber, excludeID string) (*models.Draft, error)
	Insert(ctx context.Context, draft *models.Draft) error
	Update(ctx context.Context, draft *models.Draft) error
	Delete(ctx context.Context, draftID string) error
}

type InvoiceStore interface {
	List(ctx context.Context, limit, skip int64) ([]models.Invoice, error)
	FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error)
	Insert(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, invoiceID string) error
}

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
}
