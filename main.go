package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/princinho/lingeriestore/catalog"
	"github.com/princinho/lingeriestore/config"
	"github.com/princinho/lingeriestore/controllers"
	"github.com/princinho/lingeriestore/database"
	"github.com/princinho/lingeriestore/utils"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)
	ctx := context.Background()

	client, db := database.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if client != nil {
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("MongoDB disconnect: %v", err)
			}
		}()
	}
	gateway := database.NewGateway(db)

	app := &controllers.App{
		Config:    cfg,
		Documents: gateway,
		Products:  catalog.NewService(gateway),
		Database:  gateway,
		Validator: utils.NewImageValidator(cfg.Uploads),
	}

	if cfg.Storage.Enabled() {
		r2, err := utils.NewCloudClient(ctx, cfg.Storage)
		if err != nil {
			log.Printf("Image storage disabled: %v", err)
		} else {
			app.Images = r2
		}
	} else {
		log.Println("R2 settings not set, image uploads disabled")
	}

	log.Printf("Allowed origins: %v", cfg.AllowedOrigins)
	r := controllers.NewRouter(app)

	log.Printf("Starting Lingerie Store API on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
