// Package management serves the /management surface.
package management

import (
	"net/http"

	"dashboard/api/response"
	customerapp "dashboard/application/customer"

	"github.com/gin-gonic/gin"
)

// Controller Management controller
type Controller struct {
	customers *customerapp.Service
}

// NewController Create management controller
func NewController(customers *customerapp.Service) *Controller {
	return &Controller{customers: customers}
}

// RegisterRoutes Register management routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/admins", c.GetAdmins)
}

// GetAdmins List every admin account, passwords stripped.
func (c *Controller) GetAdmins(ctx *gin.Context) {
	admins, err := c.customers.Admins(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err, http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, admins)
}
