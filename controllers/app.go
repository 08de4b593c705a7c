package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/princinho/lingeriestore/catalog"
	"github.com/princinho/lingeriestore/config"
	"github.com/princinho/lingeriestore/database"
	"github.com/princinho/lingeriestore/middleware"
	"github.com/princinho/lingeriestore/utils"
)

// DocumentStore is the document gateway as seen by the handlers.
type DocumentStore interface {
	Create(ctx context.Context, kind string, doc any) (string, error)
	CreateMany(ctx context.Context, kind string, docs []any) ([]string, error)
	FindByID(ctx context.Context, kind, id string, out any) error
}

type ProductSearcher interface {
	Search(ctx context.Context, f catalog.Filter) (*catalog.SearchResult, error)
}

type DatabaseProbe interface {
	Configured() bool
	Status(ctx context.Context) database.Status
}

type ImageUploader interface {
	UploadProductImages(ctx context.Context, productSlug string, files []*multipart.FileHeader) ([]string, error)
}

// App carries the process-wide dependencies handed to every handler.
// Images may be nil when object storage is not configured.
type App struct {
	Config    *config.Config
	Documents DocumentStore
	Products  ProductSearcher
	Database  DatabaseProbe
	Images    ImageUploader
	Validator *utils.FileValidator
}

func NewRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(cors.New(corsConfig(app.Config.AllowedOrigins)))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/", Root())
	r.GET("/schema", Schema())
	r.GET("/test", TestDatabase(app.Database, app.Config))

	api := r.Group("/api")

	products := api.Group("/products")
	products.Use(middleware.RequireDatabase(app.Database))
	{
		products.POST("/seed", SeedProducts(app.Documents))
		products.POST("/search", SearchProducts(app.Products))
		products.GET("", ListProducts(app.Products))
		products.GET("/:id", GetProduct(app.Documents))
	}

	orders := api.Group("/orders")
	orders.Use(middleware.RequireDatabase(app.Database))
	{
		orders.POST("", CreateOrder(app.Documents))
	}

	api.POST("/media/images", UploadProductImages(app.Images, app.Validator))

	return r
}

func corsConfig(origins []string) cors.Config {
	allowAll := slices.Contains(origins, "*")
	allowed := map[string]bool{}
	for _, origin := range origins {
		allowed[origin] = true
	}
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowAll || allowed[origin]
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
