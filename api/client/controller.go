// Package client serves the /client surface: customer lifecycle,
// transaction listing, geography and products.
package client

import (
	"net/http"
	"strconv"

	"dashboard/api/response"
	catalogapp "dashboard/application/catalog"
	customerapp "dashboard/application/customer"
	geographyapp "dashboard/application/geography"
	transactionapp "dashboard/application/transaction"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

// Controller Client surface controller
type Controller struct {
	customers    *customerapp.Service
	transactions *transactionapp.Service
	geography    *geographyapp.Service
	catalog      *catalogapp.Service
}

// NewController Create client controller
func NewController(
	customers *customerapp.Service,
	transactions *transactionapp.Service,
	geography *geographyapp.Service,
	catalog *catalogapp.Service,
) *Controller {
	return &Controller{
		customers:    customers,
		transactions: transactions,
		geography:    geography,
		catalog:      catalog,
	}
}

// RegisterRoutes Register client routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/customers", c.GetCustomers)
	router.POST("/customers", c.CreateCustomer)
	router.GET("/customers/update/:id", c.GetCustomer)
	router.PATCH("/customers/update/:id", c.UpdateCustomer)
	router.DELETE("/customers/:id", c.DeleteCustomer)
	router.GET("/transactions", c.GetTransactions)
	router.GET("/geography", c.GetGeography)
	router.GET("/products", c.GetProducts)
}

// GetCustomers List all user-role customers without their passwords.
func (c *Controller) GetCustomers(ctx *gin.Context) {
	customers, err := c.customers.List(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err, http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// CreateCustomer Create a customer record.
func (c *Controller) CreateCustomer(ctx *gin.Context) {
	var req customerapp.CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Message(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := c.customers.Create(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, err, http.StatusBadRequest)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// GetCustomer Fetch one customer by id, password included.
func (c *Controller) GetCustomer(ctx *gin.Context) {
	customer, err := c.customers.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, err, http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// UpdateCustomer Partially update one customer by id.
func (c *Controller) UpdateCustomer(ctx *gin.Context) {
	var req customerapp.UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Message(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := c.customers.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.Error(ctx, err, http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// DeleteCustomer Remove one customer by id.
func (c *Controller) DeleteCustomer(ctx *gin.Context) {
	if err := c.customers.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.Error(ctx, err, http.StatusInternalServerError)
		return
	}
	response.Message(ctx, http.StatusOK, "Customer deleted successfully!")
}

// GetTransactions List transactions with pagination, sort and search.
// Every failure here, parse errors included, surfaces as a 404.
func (c *Controller) GetTransactions(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	if err != nil {
		response.Message(ctx, http.StatusNotFound, "Invalid page parameter")
		return
	}
	pageSize, err := strconv.Atoi(ctx.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil {
		response.Message(ctx, http.StatusNotFound, "Invalid pageSize parameter")
		return
	}

	result, err := c.transactions.Query(ctx.Request.Context(), transactionapp.QueryRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     ctx.Query("sort"),
		Search:   ctx.Query("search"),
	})
	if err != nil {
		response.ErrorStatus(ctx, err, http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetGeography Aggregate customer counts per country.
func (c *Controller) GetGeography(ctx *gin.Context) {
	locations, err := c.geography.Aggregate(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err, http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, locations)
}

// GetProducts List products joined with their stats.
func (c *Controller) GetProducts(ctx *gin.Context) {
	products, err := c.catalog.Products(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err, http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, products)
}
