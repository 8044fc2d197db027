package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/services"
)

// QuoteItemRequest is one blind of a new quote
type QuoteItemRequest struct {
	ProductID         string   `json:"product_id" binding:"required"`
	ProductName       string   `json:"product_name" binding:"required"`
	Color             *string  `json:"color"`
	Width             float64  `json:"width" binding:"required,gt=0"`
	Height            float64  `json:"height" binding:"required,gt=0"`
	UnitPrice         *float64 `json:"unit_price" binding:"required,gte=0"`
	ChainOrientation  string   `json:"chain_orientation"`
	FasciaType        string   `json:"fascia_type"`
	FasciaColor       string   `json:"fascia_color"`
	FasciaPrice       float64  `json:"fascia_price" binding:"gte=0"`
	InstallationPrice float64  `json:"installation_price" binding:"gte=0"`
}

// CreateQuoteRequest represents the request body for creating a quote
type CreateQuoteRequest struct {
	Items       []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
	ClientType  string             `json:"client_type" binding:"required,oneof=distributor client"`
	ClientName  *string            `json:"client_name"`
	ClientPhone *string            `json:"client_phone"`
	ClientEmail *string            `json:"client_email"`
	Notes       *string            `json:"notes"`
}

func (r CreateQuoteRequest) toQuote() *models.Quote {
	quote := &models.Quote{
		ClientType:  r.ClientType,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Notes:       r.Notes,
		Items:       make([]models.QuoteItem, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		quote.Items = append(quote.Items, models.QuoteItem{
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			Color:             item.Color,
			Width:             item.Width,
			Height:            item.Height,
			UnitPrice:         *item.UnitPrice,
			ChainOrientation:  item.ChainOrientation,
			FasciaType:        item.FasciaType,
			FasciaColor:       item.FasciaColor,
			FasciaPrice:       item.FasciaPrice,
			InstallationPrice: item.InstallationPrice,
		})
	}
	return quote
}

// CreateQuote handles POST /api/quotes - prices every item under the chosen
// client type and stores the quote
func CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	quote := req.toQuote()
	if err := quoteService().Create(c.Request.Context(), quote); err != nil {
		respondServiceError(c, err, quoteResource)
		return
	}

	slog.InfoContext(c.Request.Context(), "quote created",
		"quote_id", quote.ID, "client_type", quote.ClientType, "items", len(quote.Items), "total", quote.Total)
	c.JSON(http.StatusOK, quote)
}

// ListQuotes handles GET /api/quotes - newest first
func ListQuotes(c *gin.Context) {
	quotes, err := quoteService().List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, quoteResource)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// GetQuote handles GET /api/quotes/:id
func GetQuote(c *gin.Context) {
	quote, err := quoteService().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, quoteResource)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// DeleteQuote handles DELETE /api/quotes/:id - removes the quote, its items
// and any archived documents
func DeleteQuote(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := quoteService().Delete(ctx, id); err != nil {
		respondServiceError(c, err, quoteResource)
		return
	}

	if archive := services.GetDocumentArchive(); archive != nil {
		if err := archive.DeleteQuote(ctx, id); err != nil {
			slog.WarnContext(ctx, "failed to delete archived documents", "quote_id", id, "error", err)
		}
	}
	respondMessage(c, "Cotización eliminada exitosamente")
}
