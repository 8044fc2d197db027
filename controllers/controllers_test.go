package controllers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/blinds-quote-api/config"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.SetDB(db)
	services.SetDocumentArchive(nil)
	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/config", GetBusinessConfig)
	router.PUT("/config", UpdateBusinessConfig)
	router.GET("/config/logo", GetLogo)
	router.POST("/config/logo", UploadLogo)

	router.GET("/products", ListProducts)
	router.POST("/products", CreateProduct)
	router.POST("/products/seed", SeedProducts)
	router.GET("/products/:id", GetProduct)
	router.PUT("/products/:id", UpdateProduct)
	router.DELETE("/products/:id", DeleteProduct)

	router.GET("/quotes", ListQuotes)
	router.POST("/quotes", CreateQuote)
	router.GET("/quotes/:id", GetQuote)
	router.DELETE("/quotes/:id", DeleteQuote)
	router.GET("/quotes/:id/pdf", GetQuotePDF)
	router.GET("/quotes/:id/pdf/both", GetQuotePDFBoth)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	var response []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) map[string]interface{} {
	assert.Equal(t, status, w.Code, w.Body.String())
	response := decodeObject(t, w)
	assert.Equal(t, false, response["success"])
	errorData, ok := response["error"].(map[string]interface{})
	require.True(t, ok, "error envelope expected")
	assert.Equal(t, code, errorData["code"])
	return errorData
}

func createTestProduct(t *testing.T, router *gin.Engine, name string, distributor, client float64) map[string]interface{} {
	w := performRequest(router, http.MethodPost, "/products", map[string]interface{}{
		"name":              name,
		"description":       "Producto de prueba",
		"distributor_price": distributor,
		"client_price":      client,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeObject(t, w)
}

func testPNG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 6, 3))
	img.Set(1, 1, color.RGBA{R: 52, G: 152, B: 219, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
