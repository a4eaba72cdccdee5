package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultImageURL is used when a catalog entry or product is created
// without images.
const DefaultImageURL = "https://placehold.co/400"

// Catalog is the shared document shape of brands, categories and colors:
// a named grouping owned by a user that accumulates product references.
type Catalog struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	User      primitive.ObjectID   `bson:"user" json:"user"`
	Images    string               `bson:"images" json:"images"`
	Products  []primitive.ObjectID `bson:"products" json:"products"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}
