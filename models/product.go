package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry consumed read-only by the order matching
// pipeline and edited via the admin routes.
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name" binding:"required"`
	Price           float64            `bson:"price" json:"price"`
	Productphotourl string             `bson:"productphotourl,omitempty" json:"productphotourl,omitempty"`
	Previewphotourl string             `bson:"previewphotourl,omitempty" json:"previewphotourl,omitempty"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt       time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type UpdateProduct struct {
	Name            string   `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Productphotourl string   `json:"productphotourl,omitempty"`
	Previewphotourl string   `json:"previewphotourl,omitempty"`
}
