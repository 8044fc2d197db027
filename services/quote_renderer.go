package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kendall-kelly/blinds-quote-api/document"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/pricing"
)

// RenderedDocument is an encoded quote document and its download name
type RenderedDocument struct {
	Filename string
	Data     []byte
}

// DualDocuments holds the distributor and client versions of a quote
type DualDocuments struct {
	Distributor RenderedDocument
	Client      RenderedDocument
}

// QuoteRenderer turns stored quotes into documents
type QuoteRenderer struct {
	resolver PriceResolver
	backend  document.Backend
}

// NewQuoteRenderer creates a renderer. The resolver is only used by dual
// rendering.
func NewQuoteRenderer(resolver PriceResolver, backend document.Backend) *QuoteRenderer {
	return &QuoteRenderer{resolver: resolver, backend: backend}
}

// SingleFilename is the download name of the as-stored document
func SingleFilename(quote *models.Quote) string {
	return fmt.Sprintf("cotizacion_%s.pdf", quote.FilePrefix())
}

// TierFilename is the download name of the document priced under tier
func TierFilename(quote *models.Quote, tier pricing.Tier) string {
	return fmt.Sprintf("cotizacion_%s_%s.pdf", quote.FilePrefix(), tier.FileSuffix())
}

// StoredPricing presents the quote exactly as it was recorded
func StoredPricing(quote *models.Quote) *PricedQuote {
	tier, err := pricing.ParseTier(quote.ClientType)
	if err != nil {
		tier = pricing.TierClient
	}
	items := make([]PricedItem, 0, len(quote.Items))
	for _, item := range quote.Items {
		items = append(items, PricedItem{QuoteItem: item})
	}
	return &PricedQuote{Quote: quote, Tier: tier, Items: items, Total: quote.Total}
}

// ResolveQuotePrices looks up the current rates of every distinct product in
// the quote. Products that no longer resolve map to nil.
func (r *QuoteRenderer) ResolveQuotePrices(ctx context.Context, quote *models.Quote) (map[string]*TierPrices, error) {
	prices := make(map[string]*TierPrices, len(quote.Items))
	for _, item := range quote.Items {
		if _, seen := prices[item.ProductID]; seen {
			continue
		}
		resolved, err := r.resolver.ResolvePrices(ctx, item.ProductID)
		switch {
		case err == nil:
			prices[item.ProductID] = &resolved
		case errors.Is(err, ErrNotFound):
			slog.InfoContext(ctx, "product no longer in catalog, using stored price",
				"quote_id", quote.ID, "product_id", item.ProductID)
			prices[item.ProductID] = nil
		default:
			return nil, fmt.Errorf("failed to resolve prices for product %s: %w", item.ProductID, err)
		}
	}
	return prices, nil
}

// TierPricing re-prices every item at the current catalog rate of tier.
// Items missing from prices keep their stored unit price and are flagged.
func TierPricing(quote *models.Quote, tier pricing.Tier, prices map[string]*TierPrices) *PricedQuote {
	inputs := make([]pricing.LineInput, 0, len(quote.Items))
	items := make([]PricedItem, 0, len(quote.Items))
	for _, item := range quote.Items {
		priced := PricedItem{QuoteItem: item}
		if resolved := prices[item.ProductID]; resolved != nil {
			priced.UnitPrice = resolved.For(tier)
		} else {
			priced.LegacyPricing = true
		}
		inputs = append(inputs, priced.LineInput(priced.UnitPrice))
		items = append(items, priced)
	}

	result := pricing.CalculateQuote(inputs)
	for i, line := range result.Lines {
		items[i].SquareMeters = line.SquareMeters
		items[i].Subtotal = line.Subtotal
	}
	return &PricedQuote{Quote: quote, Tier: tier, Items: items, Total: result.Total}
}

func (r *QuoteRenderer) render(pq *PricedQuote, cfg *models.BusinessConfig, filename string) (RenderedDocument, error) {
	data, err := r.backend.Render(BuildQuoteDocument(pq, cfg))
	if err != nil {
		return RenderedDocument{}, fmt.Errorf("failed to render %s: %w", filename, err)
	}
	return RenderedDocument{Filename: filename, Data: data}, nil
}

// RenderSingle renders the quote with its stored figures
func (r *QuoteRenderer) RenderSingle(quote *models.Quote, cfg *models.BusinessConfig) (*RenderedDocument, error) {
	doc, err := r.render(StoredPricing(quote), cfg, SingleFilename(quote))
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// RenderDual renders one document per tier, each priced from the current
// catalog
func (r *QuoteRenderer) RenderDual(ctx context.Context, quote *models.Quote, cfg *models.BusinessConfig) (*DualDocuments, error) {
	prices, err := r.ResolveQuotePrices(ctx, quote)
	if err != nil {
		return nil, err
	}

	docs := make(map[pricing.Tier]RenderedDocument, len(pricing.Tiers))
	for _, tier := range pricing.Tiers {
		doc, err := r.render(TierPricing(quote, tier, prices), cfg, TierFilename(quote, tier))
		if err != nil {
			return nil, err
		}
		docs[tier] = doc
	}
	return &DualDocuments{
		Distributor: docs[pricing.TierDistributor],
		Client:      docs[pricing.TierClient],
	}, nil
}
