package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/lingeriestore/dto"
	"github.com/princinho/lingeriestore/models"
	"github.com/princinho/lingeriestore/utils"
)

// SeedProducts inserts a list of products as one batch.
// POST /api/products/seed
func SeedProducts(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []dto.CreateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondBindError(c, err)
			return
		}

		now := time.Now().UTC()
		docs := make([]any, 0, len(body))
		for _, p := range body {
			docs = append(docs, p.ToProduct(now))
		}

		ids, err := store.CreateMany(c.Request.Context(), models.ProductCollection, docs)
		if err != nil {
			respondError(c, err, "product")
			return
		}

		c.JSON(http.StatusCreated, dto.SeedProductsResponse{Inserted: len(ids), IDs: ids})
	}
}

// SearchProducts runs a filtered, sorted, paginated search with facets.
// POST /api/products/search
func SearchProducts(searcher ProductSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.FilterRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			respondBindError(c, err)
			return
		}

		res, err := searcher.Search(c.Request.Context(), body.ToFilter())
		if err != nil {
			respondError(c, err, "product")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// ListProducts is the query-string form of SearchProducts.
// GET /api/products?category=Bras&colors=Black,Nude&sort=price_asc&page=2
func ListProducts(searcher ProductSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := filterFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := searcher.Search(c.Request.Context(), req.ToFilter())
		if err != nil {
			respondError(c, err, "product")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetProduct fetches one product by its hex id.
// GET /api/products/:id
func GetProduct(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := store.FindByID(c.Request.Context(), models.ProductCollection, c.Param("id"), &product); err != nil {
			respondError(c, err, "product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func filterFromQuery(c *gin.Context) (dto.FilterRequest, error) {
	req := dto.FilterRequest{
		Category:    strings.TrimSpace(c.Query("category")),
		Subcategory: strings.TrimSpace(c.Query("subcategory")),
		Colors:      utils.SplitCSV(c.Query("colors")),
		Sizes:       utils.SplitCSV(c.Query("sizes")),
		Tags:        utils.SplitCSV(c.Query("tags")),
		Sort:        strings.TrimSpace(c.Query("sort")),
		Search:      c.Query("search"),
	}

	var err error
	if req.PriceMin, err = utils.ParseFloatQuery(c.Query("price_min")); err != nil {
		return req, fmt.Errorf("invalid price_min")
	}
	if req.PriceMax, err = utils.ParseFloatQuery(c.Query("price_max")); err != nil {
		return req, fmt.Errorf("invalid price_max")
	}
	if req.Page, err = utils.ParseIntQuery(c.Query("page")); err != nil || (req.Page != nil && *req.Page < 1) {
		return req, fmt.Errorf("page must be a positive integer")
	}
	if req.Limit, err = utils.ParseIntQuery(c.Query("limit")); err != nil || (req.Limit != nil && *req.Limit < 1) {
		return req, fmt.Errorf("limit must be a positive integer")
	}
	return req, nil
}
