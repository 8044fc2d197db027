package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/services"
)

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name             string                `json:"name" binding:"required"`
	Description      string                `json:"description" binding:"required"`
	DistributorPrice *float64              `json:"distributor_price" binding:"required,gte=0"`
	ClientPrice      *float64              `json:"client_price" binding:"required,gte=0"`
	Colors           []models.ProductColor `json:"colors" binding:"omitempty,dive"`
}

// ListProducts handles GET /api/products
func ListProducts(c *gin.Context) {
	products, err := productRepository().List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, productResource)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func GetProduct(c *gin.Context) {
	product, err := productRepository().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, productResource)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	product := models.Product{
		Name:             req.Name,
		Description:      req.Description,
		DistributorPrice: *req.DistributorPrice,
		ClientPrice:      *req.ClientPrice,
		Colors:           req.Colors,
	}
	if err := productRepository().Create(c.Request.Context(), &product); err != nil {
		respondServiceError(c, err, productResource)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /api/products/:id - only the fields present in
// the body are changed
func UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()
	repo := productRepository()

	// Resolve the id first so a bad id reports 400/404 before body errors
	product, err := repo.Get(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, productResource)
		return
	}

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondValidationError(c, err)
		return
	}

	if !patch.IsEmpty() {
		patch.Apply(product)
		if err := repo.Update(ctx, product); err != nil {
			respondServiceError(c, err, productResource)
			return
		}
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id. Quotes referencing the
// product keep working with their stored figures.
func DeleteProduct(c *gin.Context) {
	if err := productRepository().Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, productResource)
		return
	}
	respondMessage(c, "Producto eliminado exitosamente")
}

// SeedProducts handles POST /api/products/seed - loads the sample catalog
// into an empty store
func SeedProducts(c *gin.Context) {
	result, err := services.SeedCatalog(c.Request.Context(), productRepository())
	if err != nil {
		respondServiceError(c, err, productResource)
		return
	}
	respondMessage(c, result.Message())
}
