package controllers

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadLogo(t *testing.T, router *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("logo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/config/logo", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetBusinessConfig_Defaults(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	w := performRequest(router, http.MethodGet, "/config", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cfg := decodeObject(t, w)
	assert.NotEmpty(t, cfg["id"])
	assert.Equal(t, models.DefaultBusinessName, cfg["business_name"])
	assert.Equal(t, models.DefaultPhone, cfg["phone"])
	assert.Equal(t, models.DefaultEmail, cfg["email"])
	assert.Equal(t, models.DefaultAddress, cfg["address"])
	assert.Nil(t, cfg["logo_base64"])

	w = performRequest(router, http.MethodGet, "/config", nil)
	assert.Equal(t, cfg["id"], decodeObject(t, w)["id"])
}

func TestUpdateBusinessConfig(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	w := performRequest(router, http.MethodPut, "/config", map[string]interface{}{
		"business_name": "Cortinas Sol",
		"phone":         "+52 33 1234 5678",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cfg := decodeObject(t, w)
	assert.Equal(t, "Cortinas Sol", cfg["business_name"])
	assert.Equal(t, "+52 33 1234 5678", cfg["phone"])
	assert.Equal(t, models.DefaultEmail, cfg["email"])

	w = performRequest(router, http.MethodGet, "/config", nil)
	assert.Equal(t, "Cortinas Sol", decodeObject(t, w)["business_name"])
}

func TestUpdateBusinessConfig_Validation(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	w := performRequest(router, http.MethodPut, "/config", map[string]interface{}{"email": "not-an-email"})
	assertErrorCode(t, w, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	w = performRequest(router, http.MethodPut, "/config", map[string]interface{}{"logo_base64": "bm90IGFuIGltYWdl"})
	assertErrorCode(t, w, http.StatusUnprocessableEntity, "INVALID_LOGO")
}

func TestUploadAndGetLogo(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()
	logo := testPNG(t)

	w := performRequest(router, http.MethodGet, "/config/logo", nil)
	assertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")

	w = uploadLogo(t, router, "logo.png", logo)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, base64.StdEncoding.EncodeToString(logo), decodeObject(t, w)["logo_base64"])

	w = performRequest(router, http.MethodGet, "/config/logo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, logo, w.Body.Bytes())
}

func TestUploadLogo_Rejected(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	w := uploadLogo(t, router, "logo.gif", []byte("GIF89a"))
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_FILE_FORMAT")

	w = uploadLogo(t, router, "logo.png", []byte("plain text"))
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_FILE_FORMAT")

	req := httptest.NewRequest(http.MethodPost, "/config/logo", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assertErrorCode(t, w, http.StatusBadRequest, "NO_FILE")
}

func TestQuotePDFWithLogo(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	w := uploadLogo(t, router, "logo.png", testPNG(t))
	require.Equal(t, http.StatusOK, w.Code)

	quote := createTestQuote(t, router, "client", quoteItemBody("p", 1, 1, 100))
	w = performRequest(router, http.MethodGet, "/quotes/"+quote["id"].(string)+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodePDF(t, decodeObject(t, w)["pdf_base64"])
}
