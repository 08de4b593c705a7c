package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/lingeriestore/models"
	"github.com/princinho/lingeriestore/utils"
)

// UploadProductImages stores product photos in object storage and returns
// image records ready to embed in a seed payload.
// POST /api/media/images
// multipart/form-data:
//   - images: 1..MAX_PRODUCT_IMAGES files
//   - title: optional product title, used for the object path
func UploadProductImages(uploader ImageUploader, v *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uploader == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["images"]
		if err := v.ValidateFiles(files); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		slug := utils.GenerateSlug(c.PostForm("title"))
		urls, err := uploader.UploadProductImages(c.Request.Context(), slug, files)
		if err != nil {
			log.Printf("image upload failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
			return
		}

		images := make([]models.ProductImage, 0, len(urls))
		for _, u := range urls {
			images = append(images, models.ProductImage{URL: u})
		}
		c.JSON(http.StatusCreated, gin.H{"images": images})
	}
}
