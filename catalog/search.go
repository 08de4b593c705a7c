package catalog

import (
	"context"
	"fmt"

	"github.com/princinho/lingeriestore/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Store is the subset of the document gateway a search needs.
type Store interface {
	Count(ctx context.Context, kind string, filter any) (int64, error)
	FindPage(ctx context.Context, kind string, filter, sort any, skip, limit int64, out any) error
	Aggregate(ctx context.Context, kind string, pipeline any, out any) error
}

type FacetCount struct {
	Value string `bson:"_id" json:"value"`
	Count int64  `bson:"count" json:"count"`
}

type Facets struct {
	Colors []FacetCount `json:"colors"`
	Sizes  []FacetCount `json:"sizes"`
}

type SearchResult struct {
	Total  int64            `json:"total"`
	Page   int              `json:"page"`
	Limit  int              `json:"limit"`
	Items  []models.Product `json:"items"`
	Facets Facets           `json:"facets"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Search returns one page of active products matching f, the total match
// count and color/size facets computed over the whole match set.
func (s *Service) Search(ctx context.Context, f Filter) (*SearchResult, error) {
	match := f.Predicate()

	total, err := s.store.Count(ctx, models.ProductCollection, match)
	if err != nil {
		return nil, err
	}

	items := make([]models.Product, 0)
	if err := s.store.FindPage(ctx, models.ProductCollection, match, f.SortSpec(), f.Skip(), int64(f.Limit), &items); err != nil {
		return nil, err
	}

	colors, err := s.facet(ctx, match, "color")
	if err != nil {
		return nil, err
	}
	sizes, err := s.facet(ctx, match, "size")
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Total:  total,
		Page:   f.Page,
		Limit:  f.Limit,
		Items:  items,
		Facets: Facets{Colors: colors, Sizes: sizes},
	}, nil
}

func (s *Service) facet(ctx context.Context, match bson.D, field string) ([]FacetCount, error) {
	var counts []FacetCount
	if err := s.store.Aggregate(ctx, models.ProductCollection, FacetPipeline(match, field), &counts); err != nil {
		return nil, fmt.Errorf("%s facets: %w", field, err)
	}
	out := make([]FacetCount, 0, len(counts))
	for _, c := range counts {
		if c.Value == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
