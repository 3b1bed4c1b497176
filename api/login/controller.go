// Package login serves the /login surface.
package login

import (
	"net/http"

	"dashboard/api/response"
	customerapp "dashboard/application/customer"

	"github.com/gin-gonic/gin"
)

// Controller Login controller
type Controller struct {
	customers *customerapp.Service
}

// NewController Create login controller
func NewController(customers *customerapp.Service) *Controller {
	return &Controller{customers: customers}
}

// RegisterRoutes Register login routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", c.Login)
}

// LoginRequest Login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login Compare credentials and return the user's name and email. The
// failure message never says more than which check failed.
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Message(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := c.customers.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(ctx, err, http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}
