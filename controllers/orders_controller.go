package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/lingeriestore/dto"
	"github.com/princinho/lingeriestore/models"
)

// CreateOrder stores a checkout as sent; totals are the caller's responsibility.
// POST /api/orders
func CreateOrder(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateOrderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondBindError(c, err)
			return
		}

		id, err := store.Create(c.Request.Context(), models.OrderCollection, body.ToOrder(time.Now().UTC()))
		if err != nil {
			respondError(c, err, "order")
			return
		}

		c.JSON(http.StatusCreated, dto.CreateOrderResponse{OrderID: id})
	}
}
