package controllers

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/princinho/lingeriestore/catalog"
	"github.com/princinho/lingeriestore/config"
	"github.com/princinho/lingeriestore/database"
	"github.com/princinho/lingeriestore/models"
	"github.com/princinho/lingeriestore/utils"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// memoryStore is an in-process stand-in for the gateway and the catalog
// service. Its search follows the same matching rules as the Mongo predicate.
type memoryStore struct {
	configured bool
	status     database.Status
	failWith   error
	products   []models.Product
	orders     []models.Order
}

func newMemoryStore() *memoryStore {
	return &memoryStore{configured: true}
}

func (m *memoryStore) Configured() bool { return m.configured }

func (m *memoryStore) Status(context.Context) database.Status { return m.status }

func (m *memoryStore) Create(_ context.Context, kind string, doc any) (string, error) {
	if m.failWith != nil {
		return "", m.failWith
	}
	id := bson.NewObjectID()
	switch d := doc.(type) {
	case models.Order:
		d.ID = id
		m.orders = append(m.orders, d)
	case models.Product:
		d.Id = id
		m.products = append(m.products, d)
	default:
		return "", errors.New("unsupported kind " + kind)
	}
	return id.Hex(), nil
}

func (m *memoryStore) CreateMany(ctx context.Context, kind string, docs []any) ([]string, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id, err := m.Create(ctx, kind, doc)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memoryStore) FindByID(_ context.Context, _ string, id string, out any) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return database.ErrInvalidID
	}
	for _, p := range m.products {
		if p.Id == oid {
			*out.(*models.Product) = p
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memoryStore) Search(_ context.Context, f catalog.Filter) (*catalog.SearchResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	matched := make([]models.Product, 0)
	for _, p := range m.products {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}
	switch f.Sort {
	case catalog.SortPriceAsc:
		slices.SortStableFunc(matched, func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) })
	case catalog.SortPriceDesc:
		slices.SortStableFunc(matched, func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) })
	case catalog.SortRating:
		slices.SortStableFunc(matched, func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}

	skip := min(int(f.Skip()), len(matched))
	end := min(skip+f.Limit, len(matched))

	return &catalog.SearchResult{
		Total: int64(len(matched)),
		Page:  f.Page,
		Limit: f.Limit,
		Items: matched[skip:end],
		Facets: catalog.Facets{
			Colors: facet(matched, func(v models.ProductVariant) string { return v.Color }),
			Sizes:  facet(matched, func(v models.ProductVariant) string { return v.Size }),
		},
	}, nil
}

func matches(p models.Product, f catalog.Filter) bool {
	if !p.IsActive {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && p.Subcategory != f.Subcategory {
		return false
	}
	if len(f.Colors) > 0 && !slices.ContainsFunc(p.Variants, func(v models.ProductVariant) bool { return slices.Contains(f.Colors, v.Color) }) {
		return false
	}
	if len(f.Sizes) > 0 && !slices.ContainsFunc(p.Variants, func(v models.ProductVariant) bool { return slices.Contains(f.Sizes, v.Size) }) {
		return false
	}
	if len(f.Tags) > 0 && !slices.ContainsFunc(p.Tags, func(t string) bool { return slices.Contains(f.Tags, t) }) {
		return false
	}
	if s := strings.ToLower(f.Search); strings.TrimSpace(s) != "" &&
		!strings.Contains(strings.ToLower(p.Title), s) && !strings.Contains(strings.ToLower(p.Description), s) {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	return true
}

func facet(products []models.Product, value func(models.ProductVariant) string) []catalog.FacetCount {
	counts := map[string]int64{}
	for _, p := range products {
		for _, v := range p.Variants {
			if k := value(v); k != "" {
				counts[k]++
			}
		}
	}
	out := make([]catalog.FacetCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, catalog.FacetCount{Value: k, Count: n})
	}
	slices.SortFunc(out, func(a, b catalog.FacetCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

type fakeUploader struct {
	slug  string
	files int
	err   error
}

func (f *fakeUploader) UploadProductImages(_ context.Context, slug string, files []*multipart.FileHeader) ([]string, error) {
	f.slug = slug
	f.files = len(files)
	if f.err != nil {
		return nil, f.err
	}
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		urls = append(urls, "https://files.example/media/products/"+slug+"/"+fh.Filename)
	}
	return urls, nil
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:    "mongodb://localhost:27017",
		DatabaseName:   "store",
		AllowedOrigins: []string{"*"},
		Uploads: config.UploadConfig{
			AllowedExtensions: []string{".png"},
			AllowedMimeTypes:  []string{"image/png"},
			MaxSizeMB:         1,
			MaxFiles:          2,
		},
	}
}

func newTestRouter(store *memoryStore, uploader ImageUploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	return NewRouter(&App{
		Config:    cfg,
		Documents: store,
		Products:  store,
		Database:  store,
		Images:    uploader,
		Validator: utils.NewImageValidator(cfg.Uploads),
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
