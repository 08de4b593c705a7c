package dto

import (
	"strings"
	"time"

	"github.com/princinho/lingeriestore/models"
)

const DefaultCurrency = "INR"

type CartItemDTO struct {
	ProductID string             `json:"product_id" binding:"required"`
	Title     string             `json:"title" binding:"required"`
	Price     *float64           `json:"price" binding:"required"`
	Quantity  *int               `json:"quantity" binding:"omitempty,gte=1"`
	Variant   *ProductVariantDTO `json:"variant"`
	Image     *string            `json:"image"`
}

// CreateOrderDTO mirrors the checkout payload. Totals are taken as sent.
type CreateOrderDTO struct {
	Items    []CartItemDTO `json:"items" binding:"required,dive"`
	Subtotal *float64      `json:"subtotal" binding:"required"`
	Discount *float64      `json:"discount"`
	Shipping *float64      `json:"shipping"`
	Total    *float64      `json:"total" binding:"required"`
	Currency string        `json:"currency"`

	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerEmail   string  `json:"customer_email" binding:"required"`
	CustomerPhone   *string `json:"customer_phone"`
	ShippingAddress string  `json:"shipping_address" binding:"required"`
	Notes           *string `json:"notes"`

	CreatedAt *time.Time `json:"created_at"`
}

func (i CartItemDTO) ToCartItem() models.CartItem {
	item := models.CartItem{
		ProductID: strings.TrimSpace(i.ProductID),
		Title:     i.Title,
		Price:     *i.Price,
		Quantity:  1,
		Image:     deref(i.Image),
	}
	if i.Quantity != nil {
		item.Quantity = *i.Quantity
	}
	if i.Variant != nil {
		v := i.Variant.ToVariant()
		item.Variant = &v
	}
	return item
}

func (d CreateOrderDTO) ToOrder(now time.Time) models.Order {
	o := models.Order{
		Items:           make([]models.CartItem, 0, len(d.Items)),
		Subtotal:        *d.Subtotal,
		Discount:        deref(d.Discount),
		Shipping:        deref(d.Shipping),
		Total:           *d.Total,
		Currency:        strings.TrimSpace(d.Currency),
		CustomerName:    strings.TrimSpace(d.CustomerName),
		CustomerEmail:   strings.TrimSpace(d.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(deref(d.CustomerPhone)),
		ShippingAddress: strings.TrimSpace(d.ShippingAddress),
		Notes:           deref(d.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	if d.CreatedAt != nil {
		o.CreatedAt = d.CreatedAt.UTC()
	}
	for _, item := range d.Items {
		o.Items = append(o.Items, item.ToCartItem())
	}
	return o
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}
