package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CartItem is a snapshot of a product line at checkout time. Title and price
// are copied so the order stays stable when the catalog changes.
type CartItem struct {
	ProductID string          `bson:"product_id" json:"product_id"`
	Title     string          `bson:"title" json:"title"`
	Price     float64         `bson:"price" json:"price"`
	Quantity  int             `bson:"quantity" json:"quantity"`
	Variant   *ProductVariant `bson:"variant,omitempty" json:"variant,omitempty"`
	Image     string          `bson:"image,omitempty" json:"image,omitempty"`
}

type Order struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"_id"`

	Items    []CartItem `bson:"items" json:"items"`
	Subtotal float64    `bson:"subtotal" json:"subtotal"`
	Discount float64    `bson:"discount" json:"discount"`
	Shipping float64    `bson:"shipping" json:"shipping"`
	Total    float64    `bson:"total" json:"total"`
	Currency string     `bson:"currency" json:"currency"`

	CustomerName    string `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	ShippingAddress string `bson:"shipping_address" json:"shipping_address"`
	Notes           string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
