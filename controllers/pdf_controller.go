package controllers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/services"
)

// loadQuoteAndLetterhead fetches what every document needs, writing the error
// response itself when something is missing
func loadQuoteAndLetterhead(c *gin.Context) (*models.Quote, *models.BusinessConfig, bool) {
	ctx := c.Request.Context()
	quote, err := quoteService().Get(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, quoteResource)
		return nil, nil, false
	}
	cfg, err := businessConfigService().Get(ctx)
	if err != nil {
		respondServiceError(c, err, configResource)
		return nil, nil, false
	}
	return quote, cfg, true
}

func respondRenderError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "failed to render quote document", "quote_id", c.Param("id"), "error", err)
	respondError(c, http.StatusInternalServerError, "PDF_ERROR", "Failed to generate PDF")
}

// GetQuotePDF handles GET /api/quotes/:id/pdf - the quote as stored, base64 encoded
func GetQuotePDF(c *gin.Context) {
	quote, cfg, ok := loadQuoteAndLetterhead(c)
	if !ok {
		return
	}

	doc, err := quoteRenderer().RenderSingle(quote, cfg)
	if err != nil {
		respondRenderError(c, err)
		return
	}

	body := gin.H{
		"pdf_base64": base64.StdEncoding.EncodeToString(doc.Data),
		"filename":   doc.Filename,
	}
	links := services.ArchiveDocuments(c.Request.Context(), services.GetDocumentArchive(), quote.ID, *doc)
	if url, ok := links[doc.Filename]; ok {
		body["archive_url"] = url
	}
	c.JSON(http.StatusOK, body)
}

// GetQuotePDFBoth handles GET /api/quotes/:id/pdf/both - distributor and
// client documents priced from the current catalog
func GetQuotePDFBoth(c *gin.Context) {
	quote, cfg, ok := loadQuoteAndLetterhead(c)
	if !ok {
		return
	}

	docs, err := quoteRenderer().RenderDual(c.Request.Context(), quote, cfg)
	if err != nil {
		respondRenderError(c, err)
		return
	}

	body := gin.H{
		"distributor_pdf_base64": base64.StdEncoding.EncodeToString(docs.Distributor.Data),
		"distributor_filename":   docs.Distributor.Filename,
		"client_pdf_base64":      base64.StdEncoding.EncodeToString(docs.Client.Data),
		"client_filename":        docs.Client.Filename,
	}
	links := services.ArchiveDocuments(c.Request.Context(), services.GetDocumentArchive(), quote.ID, docs.Distributor, docs.Client)
	if len(links) > 0 {
		body["archive_urls"] = links
	}
	c.JSON(http.StatusOK, body)
}
