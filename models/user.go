package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShippingAddress struct {
	FirstName   string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName    string `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
	City        string `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode  string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Province    string `bson:"province,omitempty" json:"province,omitempty"`
	Country     string `bson:"country,omitempty" json:"country,omitempty"`
	PhoneNumber string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
}

type User struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name               string               `bson:"name" json:"name"`
	Email              string               `bson:"email" json:"email"`
	Password           string               `bson:"password,omitempty" json:"password,omitempty"`
	Orders             []primitive.ObjectID `bson:"orders" json:"orders"`
	Wishlist           []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	IsAdmin            bool                 `bson:"isAdmin" json:"isAdmin"`
	HasShippingAddress bool                 `bson:"hasShippingAddress" json:"hasShippingAddress"`
	ShippingAddress    *ShippingAddress     `bson:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Sanitize clears the password hash before the user leaves the API.
func (u *User) Sanitize() {
	u.Password = ""
}
