package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/blinds-quote-api/models"
)

// GetBusinessConfig handles GET /api/config - returns the letterhead, creating
// the default one on first use
func GetBusinessConfig(c *gin.Context) {
	cfg, err := businessConfigService().Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, configResource)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateBusinessConfig handles PUT /api/config - applies a partial update
func UpdateBusinessConfig(c *gin.Context) {
	var patch models.BusinessConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondValidationError(c, err)
		return
	}

	cfg, err := businessConfigService().Update(c.Request.Context(), patch)
	if err != nil {
		respondServiceError(c, err, configResource)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UploadLogo handles POST /api/config/logo - stores a PNG or JPEG logo sent
// as the multipart field "logo"
func UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "NO_FILE", "No logo file provided")
		return
	}

	cfg, err := businessConfigService().UploadLogo(c.Request.Context(), fileHeader)
	if err != nil {
		respondServiceError(c, err, logoResource)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetLogo handles GET /api/config/logo - serves the decoded logo image
func GetLogo(c *gin.Context) {
	data, contentType, err := businessConfigService().Logo(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, logoResource)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, contentType, data)
}
