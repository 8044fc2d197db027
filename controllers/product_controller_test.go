package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	w := performRequest(router, http.MethodPost, "/products", map[string]interface{}{
		"name":              "Persiana Día/Noche",
		"description":       "Sistema dual",
		"distributor_price": 480,
		"client_price":      624,
		"colors": []map[string]interface{}{
			{"name": "Marfil", "code": "#FFFFF0"},
			{"name": "Chocolate"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	product := decodeObject(t, w)
	assert.NotEmpty(t, product["id"])
	assert.Equal(t, "Persiana Día/Noche", product["name"])
	assert.Equal(t, 480.0, product["distributor_price"])
	assert.Equal(t, 624.0, product["client_price"])
	colors := product["colors"].([]interface{})
	require.Len(t, colors, 2)
	assert.Equal(t, "Marfil", colors[0].(map[string]interface{})["name"])
	assert.Nil(t, colors[1].(map[string]interface{})["code"])
}

func TestCreateProduct_Validation(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"description": "d", "distributor_price": 1, "client_price": 2}},
		{"missing price", map[string]interface{}{"name": "n", "description": "d", "client_price": 2}},
		{"negative price", map[string]interface{}{"name": "n", "description": "d", "distributor_price": -1, "client_price": 2}},
		{"color without name", map[string]interface{}{
			"name": "n", "description": "d", "distributor_price": 1, "client_price": 2,
			"colors": []map[string]interface{}{{"code": "#FFFFFF"}},
		}},
		{"wrong type", map[string]interface{}{"name": "n", "description": "d", "distributor_price": "cheap", "client_price": 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/products", tt.body)
			assertErrorCode(t, w, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
		})
	}
}

func TestGetProduct(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()
	created := createTestProduct(t, router, "Blackout", 450, 585)

	w := performRequest(router, http.MethodGet, "/products/"+created["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Blackout", decodeObject(t, w)["name"])

	w = performRequest(router, http.MethodGet, "/products/not-an-id", nil)
	errorData := assertErrorCode(t, w, http.StatusBadRequest, "INVALID_ID")
	assert.Equal(t, "ID de producto inválido", errorData["message"])

	w = performRequest(router, http.MethodGet, "/products/3f1b2c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d", nil)
	errorData = assertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	assert.Equal(t, "Producto no encontrado", errorData["message"])
}

func TestListProducts(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	w := performRequest(router, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	createTestProduct(t, router, "Uno", 100, 130)
	createTestProduct(t, router, "Dos", 200, 260)

	w = performRequest(router, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestUpdateProduct_PartialPatch(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()
	created := createTestProduct(t, router, "Blackout", 450, 585)
	path := "/products/" + created["id"].(string)

	w := performRequest(router, http.MethodPut, path, map[string]interface{}{"client_price": 600})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeObject(t, w)
	assert.Equal(t, "Blackout", updated["name"])
	assert.Equal(t, 450.0, updated["distributor_price"])
	assert.Equal(t, 600.0, updated["client_price"])

	// Empty body leaves the product unchanged
	w = performRequest(router, http.MethodPut, path, map[string]interface{}{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 600.0, decodeObject(t, w)["client_price"])

	w = performRequest(router, http.MethodPut, path, map[string]interface{}{"distributor_price": -5})
	assertErrorCode(t, w, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	w = performRequest(router, http.MethodPut, "/products/bogus", map[string]interface{}{"name": "x"})
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_ID")
}

func TestDeleteProduct(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()
	created := createTestProduct(t, router, "Blackout", 450, 585)
	path := "/products/" + created["id"].(string)

	w := performRequest(router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	response := decodeObject(t, w)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Producto eliminado exitosamente", response["message"])

	w = performRequest(router, http.MethodGet, path, nil)
	assertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")

	w = performRequest(router, http.MethodDelete, path, nil)
	assertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestSeedProducts_Idempotent(t *testing.T) {
	setupTestDB(t)
	router := setupTestRouter()

	w := performRequest(router, http.MethodPost, "/products/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Se crearon 5 productos de ejemplo con colores", decodeObject(t, w)["message"])

	w = performRequest(router, http.MethodPost, "/products/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ya existen 5 productos en la base de datos", decodeObject(t, w)["message"])

	w = performRequest(router, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 5)
}
