package dto

import (
	"strings"
	"time"

	"github.com/princinho/lingeriestore/models"
	"github.com/princinho/lingeriestore/utils"
)

const (
	DefaultBrand  = "Enamor"
	DefaultRating = 4.0
)

type ProductVariantDTO struct {
	Size  string  `json:"size" binding:"required"`
	Color string  `json:"color" binding:"required"`
	SKU   *string `json:"sku"`
	Stock *int    `json:"stock" binding:"omitempty,gte=0"`
}

type ProductImageDTO struct {
	URL string  `json:"url" binding:"required"`
	Alt *string `json:"alt"`
}

// CreateProductDTO is one element of the seed payload. Optional fields are
// pointers so that absent values pick up the catalog defaults.
type CreateProductDTO struct {
	Title          string              `json:"title" binding:"required"`
	Description    *string             `json:"description"`
	Price          *float64            `json:"price" binding:"required,gte=0"`
	CompareAtPrice *float64            `json:"compare_at_price" binding:"omitempty,gte=0"`
	Category       string              `json:"category" binding:"required"`
	Subcategory    *string             `json:"subcategory"`
	Brand          *string             `json:"brand"`
	Rating         *float64            `json:"rating" binding:"omitempty,gte=0,lte=5"`
	RatingCount    *int                `json:"rating_count" binding:"omitempty,gte=0"`
	Tags           []string            `json:"tags"`
	Variants       []ProductVariantDTO `json:"variants" binding:"omitempty,dive"`
	Images         []ProductImageDTO   `json:"images" binding:"omitempty,dive"`
	IsActive       *bool               `json:"is_active"`
}

func (v ProductVariantDTO) ToVariant() models.ProductVariant {
	variant := models.ProductVariant{
		Size:  strings.TrimSpace(v.Size),
		Color: strings.TrimSpace(v.Color),
		SKU:   deref(v.SKU),
	}
	if v.Stock != nil {
		variant.Stock = *v.Stock
	}
	return variant
}

func (d CreateProductDTO) ToProduct(now time.Time) models.Product {
	title := strings.TrimSpace(d.Title)
	p := models.Product{
		Title:          title,
		Slug:           utils.GenerateSlug(title),
		Description:    deref(d.Description),
		Price:          *d.Price,
		CompareAtPrice: d.CompareAtPrice,
		Category:       strings.TrimSpace(d.Category),
		Subcategory:    strings.TrimSpace(deref(d.Subcategory)),
		Brand:          DefaultBrand,
		Rating:         DefaultRating,
		Tags:           []string{},
		Variants:       make([]models.ProductVariant, 0, len(d.Variants)),
		Images:         make([]models.ProductImage, 0, len(d.Images)),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if d.Brand != nil {
		p.Brand = *d.Brand
	}
	if d.Rating != nil {
		p.Rating = *d.Rating
	}
	if d.RatingCount != nil {
		p.RatingCount = *d.RatingCount
	}
	if d.IsActive != nil {
		p.IsActive = *d.IsActive
	}
	if d.Tags != nil {
		p.Tags = d.Tags
	}
	for _, v := range d.Variants {
		p.Variants = append(p.Variants, v.ToVariant())
	}
	for _, img := range d.Images {
		p.Images = append(p.Images, models.ProductImage{URL: img.URL, Alt: deref(img.Alt)})
	}
	return p
}

type SeedProductsResponse struct {
	Inserted int      `json:"inserted"`
	IDs      []string `json:"ids"`
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
