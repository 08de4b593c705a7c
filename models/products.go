package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection names double as the record kinds listed by GET /schema.
const (
	UserCollection    = "user"
	ProductCollection = "product"
	OrderCollection   = "order"
)

// Collections lists every record kind the store knows about.
func Collections() []string {
	return []string{UserCollection, ProductCollection, OrderCollection}
}

type ProductVariant struct {
	Size  string `bson:"size" json:"size"`
	Color string `bson:"color" json:"color"`
	SKU   string `bson:"sku,omitempty" json:"sku,omitempty"`
	Stock int    `bson:"stock" json:"stock"`
}

type ProductImage struct {
	URL string `bson:"url" json:"url"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

type Product struct {
	Id             bson.ObjectID    `bson:"_id,omitempty" json:"_id"`
	Title          string           `bson:"title" json:"title"`
	Slug           string           `bson:"slug" json:"slug"`
	Description    string           `bson:"description,omitempty" json:"description,omitempty"`
	Price          float64          `bson:"price" json:"price"`
	CompareAtPrice *float64         `bson:"compare_at_price,omitempty" json:"compare_at_price,omitempty"`
	Category       string           `bson:"category" json:"category"`
	Subcategory    string           `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Brand          string           `bson:"brand,omitempty" json:"brand,omitempty"`
	Rating         float64          `bson:"rating" json:"rating"`
	RatingCount    int              `bson:"rating_count" json:"rating_count"`
	Tags           []string         `bson:"tags" json:"tags"`
	Variants       []ProductVariant `bson:"variants" json:"variants"`
	Images         []ProductImage   `bson:"images" json:"images"`
	IsActive       bool             `bson:"is_active" json:"is_active"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `bson:"updated_at" json:"updated_at"`
}
