package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Draft is an in-progress order pinned to a table. At most one draft may
// hold a given tableNumber at any time; the unique index on tableNumber
// is the backstop for that invariant.
type Draft struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	DraftID       string             `bson:"draftId" json:"draftId"`
	TableNumber   string             `bson:"tableNumber" json:"tableNumber"`
	Text          string             `bson:"text" json:"text"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	CustomerPhone string             `bson:"customerPhone" json:"customerPhone"`
	Lines         int                `bson:"lines" json:"lines"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// DraftInput is a create when ID is empty, otherwise an update of that draft.
type DraftInput struct {
	ID            string `json:"id"`
	TableNumber   string `json:"tableNumber"`
	Text          string `json:"text"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Lines         int    `json:"lines"`
}
