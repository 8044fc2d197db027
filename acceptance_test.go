package main

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	DistributorPrice float64 `json:"distributor_price"`
	ClientPrice      float64 `json:"client_price"`
}

type quoteResponse struct {
	ID         string  `json:"id"`
	Total      float64 `json:"total"`
	ClientType string  `json:"client_type"`
	Items      []struct {
		ProductID    string  `json:"product_id"`
		SquareMeters float64 `json:"square_meters"`
		UnitPrice    float64 `json:"unit_price"`
		Subtotal     float64 `json:"subtotal"`
	} `json:"items"`
}

type dualResponse struct {
	DistributorPDF      string `json:"distributor_pdf_base64"`
	DistributorFilename string `json:"distributor_filename"`
	ClientPDF           string `json:"client_pdf_base64"`
	ClientFilename      string `json:"client_filename"`
}

// TestQuoteLifecycleAcceptance walks a salesperson through seeding the
// catalog, quoting a window and downloading both price lists
func TestQuoteLifecycleAcceptance(t *testing.T) {
	router := setupTestApp(t)

	w := doJSON(router, http.MethodPost, "/api/products/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []productResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 5)

	var blackout productResponse
	for _, p := range products {
		if p.Name == "Persiana Enrollable Blackout" {
			blackout = p
		}
	}
	require.NotEmpty(t, blackout.ID, "seeded catalog should contain the blackout blind")

	// A 2.5m x 2m window quoted to a distributor
	w = doJSON(router, http.MethodPost, "/api/quotes", map[string]interface{}{
		"client_type": "distributor",
		"client_name": "Distribuidora Norte",
		"items": []map[string]interface{}{{
			"product_id":   blackout.ID,
			"product_name": blackout.Name,
			"color":        "Gris",
			"width":        2.5,
			"height":       2,
			"unit_price":   blackout.DistributorPrice,
		}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var quote quoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 5.0, quote.Items[0].SquareMeters)
	assert.Equal(t, 2250.0, quote.Total)

	w = doJSON(router, http.MethodGet, "/api/quotes/"+quote.ID+"/pdf/both", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var dual dualResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dual))
	assert.True(t, strings.HasSuffix(dual.DistributorFilename, "_distribuidor.pdf"))
	assert.True(t, strings.HasSuffix(dual.ClientFilename, "_cliente.pdf"))

	distributorPDF, err := base64.StdEncoding.DecodeString(dual.DistributorPDF)
	require.NoError(t, err)
	clientPDF, err := base64.StdEncoding.DecodeString(dual.ClientPDF)
	require.NoError(t, err)
	assert.NotEqual(t, distributorPDF, clientPDF, "distributor and client documents must differ")

	// The quote history survives catalog changes
	w = doJSON(router, http.MethodDelete, "/api/products/"+blackout.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/quotes/"+quote.ID+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodGet, "/api/quotes/"+quote.ID+"/pdf/both", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/quotes/"+quote.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodGet, "/api/quotes/"+quote.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestLetterheadAcceptance configures the business details shown on documents
func TestLetterheadAcceptance(t *testing.T) {
	router := setupTestApp(t)

	w := doJSON(router, http.MethodPut, "/api/config", map[string]interface{}{
		"business_name": "Persianas del Bajío",
		"email":         "ventas@bajio.mx",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cfg map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "Persianas del Bajío", cfg["business_name"])
	assert.Equal(t, "ventas@bajio.mx", cfg["email"])
	assert.Equal(t, "+52 555 123 4567", cfg["phone"])
}
