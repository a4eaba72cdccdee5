package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product references its category and brand by name; the id-linked
// back-references live on the Catalog documents instead.
type Product struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"name" json:"name"`
	Description   string               `bson:"description" json:"description"`
	Brand         string               `bson:"brand" json:"brand"`
	Category      string               `bson:"category" json:"category"`
	Price         float64              `bson:"price" json:"price"`
	Size          []string             `bson:"size" json:"size"`
	Colors        []string             `bson:"colors" json:"colors"`
	User          primitive.ObjectID   `bson:"user" json:"user"`
	Images        []string             `bson:"images" json:"images"`
	Reviews       []primitive.ObjectID `bson:"reviews" json:"reviews"`
	TotalQuantity int                  `bson:"totalQuantity" json:"totalQuantity"`
	SoldQuantity  int                  `bson:"soldQuantity" json:"soldQuantity"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}
