package models

import (
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

const PaymentStatusNotPaid = "not-paid"

// Order items and the shipping address are stored as opaque documents;
// their shape is owned by the storefront.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	OrderItems      []bson.M           `bson:"orderItems" json:"orderItems"`
	ShippingAddress bson.M             `bson:"shippingAddress" json:"shippingAddress"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	Currency        string             `bson:"currency" json:"currency"`
	Status          OrderStatus        `bson:"status" json:"status"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewOrderNumber returns an "ORDER-<n>" tag with n in [0, 1000000).
// Uniqueness is enforced by the orders index, not by the generator.
func NewOrderNumber() string {
	return fmt.Sprintf("ORDER-%d", rand.Intn(1000000))
}
