package controllers

import (
	"github.com/kendall-kelly/blinds-quote-api/config"
	"github.com/kendall-kelly/blinds-quote-api/document"
	"github.com/kendall-kelly/blinds-quote-api/services"
)

// documentBackend renders every quote document; tests may replace it
var documentBackend document.Backend = document.NewPDFBackend()

func productRepository() services.ProductRepository {
	return services.NewProductRepository(config.GetDB())
}

func quoteService() *services.QuoteService {
	return services.NewQuoteService(services.NewQuoteRepository(config.GetDB()))
}

func businessConfigService() *services.BusinessConfigService {
	return services.NewBusinessConfigService(services.NewBusinessConfigRepository(config.GetDB()))
}

func quoteRenderer() *services.QuoteRenderer {
	return services.NewQuoteRenderer(services.NewProductPriceResolver(productRepository()), documentBackend)
}
