package dto

import (
	"github.com/princinho/lingeriestore/catalog"
)

// FilterRequest is the body of POST /api/products/search.
type FilterRequest struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	PriceMin    *float64 `json:"price_min"`
	PriceMax    *float64 `json:"price_max"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Tags        []string `json:"tags"`
	Sort        string   `json:"sort"` // price_asc, price_desc, rating
	Search      string   `json:"search"`
	Page        *int     `json:"page" binding:"omitempty,gte=1"`
	Limit       *int     `json:"limit" binding:"omitempty,gte=1"`
}

func (r FilterRequest) ToFilter() catalog.Filter {
	f := catalog.Filter{
		Category:    r.Category,
		Subcategory: r.Subcategory,
		PriceMin:    r.PriceMin,
		PriceMax:    r.PriceMax,
		Colors:      r.Colors,
		Sizes:       r.Sizes,
		Tags:        r.Tags,
		Sort:        catalog.ParseSort(r.Sort),
		Search:      r.Search,
		Page:        catalog.DefaultPage,
		Limit:       catalog.DefaultLimit,
	}
	if r.Page != nil {
		f.Page = *r.Page
	}
	if r.Limit != nil {
		f.Limit = *r.Limit
	}
	return f
}
