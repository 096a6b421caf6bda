package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InvoiceItem struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
	Qty   float64 `bson:"qty" json:"qty"`
}

// Invoice is immutable once written. Total is always the server-computed
// sum of item line totals.
type Invoice struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	InvoiceID     string             `bson:"invoiceId" json:"invoiceId"`
	OrderType     string             `bson:"orderType" json:"orderType"`
	PaymentType   string             `bson:"paymentType" json:"paymentType"`
	Date          time.Time          `bson:"date" json:"date"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	CustomerPhone string             `bson:"customerPhone" json:"customerPhone"`
	Items         []InvoiceItem      `bson:"items" json:"items"`
	Total         float64            `bson:"total" json:"total"`
	SourceDraftID string             `bson:"sourceDraftId,omitempty" json:"sourceDraftId,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

type InvoiceInput struct {
	ID            string        `json:"id"`
	InvoiceID     string        `json:"invoiceId"`
	OrderType     string        `json:"orderType"`
	PaymentType   string        `json:"paymentType"`
	Date          *time.Time    `json:"date"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Items         []InvoiceItem `json:"items"`
	Total         *float64      `json:"total"`
	SourceDraftID string        `json:"sourceDraftId"`
}
