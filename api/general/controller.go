// Package general serves the /general surface: user lookup and the
// dashboard summary.
package general

import (
	"net/http"

	"dashboard/api/response"
	customerapp "dashboard/application/customer"
	salesapp "dashboard/application/sales"

	"github.com/gin-gonic/gin"
)

// Controller General controller
type Controller struct {
	customers *customerapp.Service
	sales     *salesapp.Service
}

// NewController Create general controller
func NewController(customers *customerapp.Service, sales *salesapp.Service) *Controller {
	return &Controller{customers: customers, sales: sales}
}

// RegisterRoutes Register general routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/user/:id", c.GetUser)
	router.GET("/dashboard", c.GetDashboard)
}

// GetUser Fetch one user by id.
func (c *Controller) GetUser(ctx *gin.Context) {
	user, err := c.customers.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, err, http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetDashboard Return the dashboard summary.
func (c *Controller) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.sales.Dashboard(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err, http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}
