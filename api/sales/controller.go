// Package sales serves the /sales surface.
package sales

import (
	"net/http"

	"dashboard/api/response"
	salesapp "dashboard/application/sales"

	"github.com/gin-gonic/gin"
)

// Controller Sales controller
type Controller struct {
	sales *salesapp.Service
}

// NewController Create sales controller
func NewController(sales *salesapp.Service) *Controller {
	return &Controller{sales: sales}
}

// RegisterRoutes Register sales routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sales", c.GetSales)
}

// GetSales Return the overall-statistics record.
func (c *Controller) GetSales(ctx *gin.Context) {
	overall, err := c.sales.Overview(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err, http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, overall)
}
