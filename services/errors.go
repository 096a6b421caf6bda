package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTable rejects a draft save without a table number.
	ErrMissingTable = errors.New("table number is required")
	// ErrTableConflict means another active draft already holds the table.
	ErrTableConflict = errors.New("table already in use by another active order")
	// ErrDuplicateInvoice means a client-supplied invoice ID already exists.
	ErrDuplicateInvoice = errors.New("invoice id already exists")
	// ErrNoItems rejects a finalize call with an empty item list.
	ErrNoItems = errors.New("invoice must contain items")
	// ErrInvalidTotal rejects a client-supplied total that is not a finite
	// non-negative number.
	ErrInvalidTotal = errors.New("invalid total")
)

// InvalidItemError fails a whole finalize call when any single line item
// is malformed; nothing is persisted.
type InvalidItemError struct {
	Index  int
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("item[%d]: %s", e.Index, e.Reason)
}
