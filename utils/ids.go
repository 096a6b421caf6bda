package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomSuffix() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// NewInvoiceID returns an id like INV-1717171717171-X4K9ZQ.
func NewInvoiceID() string {
	return fmt.Sprintf("INV-%d-%s", time.Now().UnixMilli(), randomSuffix())
}

// NewDraftID returns an id like DRAFT-1717171717171-X4K9ZQ.
func NewDraftID() string {
	return fmt.Sprintf("DRAFT-%d-%s", time.Now().UnixMilli(), randomSuffix())
}
