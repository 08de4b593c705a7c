// Package catalog turns product filter requests into MongoDB predicates,
// sort documents and facet pipelines, and runs them through a Store.
package catalog

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	DefaultPage  = 1
	DefaultLimit = 24
)

type SortMode int

const (
	SortNatural SortMode = iota
	SortPriceAsc
	SortPriceDesc
	SortRating
)

// ParseSort maps a sort tag to a mode. Unknown tags fall back to natural order.
func ParseSort(tag string) SortMode {
	switch strings.TrimSpace(tag) {
	case "price_asc":
		return SortPriceAsc
	case "price_desc":
		return SortPriceDesc
	case "rating":
		return SortRating
	default:
		return SortNatural
	}
}

func (m SortMode) String() string {
	switch m {
	case SortPriceAsc:
		return "price_asc"
	case SortPriceDesc:
		return "price_desc"
	case SortRating:
		return "rating"
	default:
		return ""
	}
}

// Filter is a resolved product search request. Zero values mean "not filtered".
type Filter struct {
	Category    string
	Subcategory string
	PriceMin    *float64
	PriceMax    *float64
	Colors      []string
	Sizes       []string
	Tags        []string
	Sort        SortMode
	Search      string
	Page        int
	Limit       int
}

// Predicate builds the conjunctive match document. Inactive products are
// always excluded.
func (f Filter) Predicate() bson.D {
	q := bson.D{{Key: "is_active", Value: true}}

	if f.Category != "" {
		q = append(q, bson.E{Key: "category", Value: f.Category})
	}
	if f.Subcategory != "" {
		q = append(q, bson.E{Key: "subcategory", Value: f.Subcategory})
	}
	if len(f.Colors) > 0 {
		q = append(q, bson.E{Key: "variants.color", Value: bson.D{{Key: "$in", Value: f.Colors}}})
	}
	if len(f.Sizes) > 0 {
		q = append(q, bson.E{Key: "variants.size", Value: bson.D{{Key: "$in", Value: f.Sizes}}})
	}
	if len(f.Tags) > 0 {
		q = append(q, bson.E{Key: "tags", Value: bson.D{{Key: "$in", Value: f.Tags}}})
	}
	if strings.TrimSpace(f.Search) != "" {
		pattern := regexp.QuoteMeta(f.Search)
		q = append(q, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
			bson.D{{Key: "description", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
		}})
	}

	price := bson.D{}
	if f.PriceMin != nil {
		price = append(price, bson.E{Key: "$gte", Value: *f.PriceMin})
	}
	if f.PriceMax != nil {
		price = append(price, bson.E{Key: "$lte", Value: *f.PriceMax})
	}
	if len(price) > 0 {
		q = append(q, bson.E{Key: "price", Value: price})
	}

	return q
}

// SortSpec returns the sort document, or nil for natural order.
func (f Filter) SortSpec() bson.D {
	switch f.Sort {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	default:
		return nil
	}
}

// Skip is the 1-indexed page offset, never negative.
func (f Filter) Skip() int64 {
	return max(0, int64(f.Page-1)*int64(f.Limit))
}

// FacetPipeline counts variant values of field ("color" or "size") across every
// product matching the predicate, most frequent first.
func FacetPipeline(match bson.D, field string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$unwind", Value: "$variants"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$variants." + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: bson.D{{Key: "$nin", Value: bson.A{nil, ""}}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}
