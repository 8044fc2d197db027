package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kendall-kelly/blinds-quote-api/services"
	"github.com/kendall-kelly/blinds-quote-api/utils"
)

// resource names the messages shown when an id does not resolve
type resource struct {
	invalidID string
	notFound  string
}

var (
	productResource = resource{invalidID: "ID de producto inválido", notFound: "Producto no encontrado"}
	quoteResource   = resource{invalidID: "ID de cotización inválido", notFound: "Cotización no encontrada"}
	logoResource    = resource{invalidID: "Logo inválido", notFound: "No hay logo configurado"}
	configResource  = resource{notFound: "Configuración no encontrada"}
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// validationDetails lists the failing field and rule of each validator error
func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	details := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, gin.H{
			"field": fe.Namespace(),
			"rule":  fe.Tag(),
			"param": fe.Param(),
		})
	}
	return details
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": validationDetails(err),
		},
	})
}

// respondServiceError maps service errors onto the HTTP error taxonomy
func respondServiceError(c *gin.Context, err error, res resource) {
	var uploadErr *utils.FileUploadError
	switch {
	case errors.Is(err, services.ErrInvalidID):
		respondError(c, http.StatusBadRequest, "INVALID_ID", res.invalidID)
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", res.notFound)
	case errors.Is(err, services.ErrInvalidInput):
		respondValidationError(c, err)
	case errors.Is(err, services.ErrInvalidLogo):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_LOGO",
				"message": "Logo must be a PNG or JPEG image",
				"details": err.Error(),
			},
		})
	case errors.As(err, &uploadErr):
		respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to process request")
	}
}
