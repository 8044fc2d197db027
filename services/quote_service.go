package services

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/pricing"
)

// MaxQuoteList caps quote listings
const MaxQuoteList = 100

// QuoteService prices and records quotes
type QuoteService struct {
	quotes QuoteRepository
}

// NewQuoteService creates a quote service on top of a repository
func NewQuoteService(quotes QuoteRepository) *QuoteService {
	return &QuoteService{quotes: quotes}
}

// PriceItems fills the derived figures of every item from its dimensions and
// stored unit price and sets the quote total
func PriceItems(quote *models.Quote) {
	inputs := make([]pricing.LineInput, 0, len(quote.Items))
	for _, item := range quote.Items {
		inputs = append(inputs, item.LineInput(item.UnitPrice))
	}
	result := pricing.CalculateQuote(inputs)
	for i, line := range result.Lines {
		quote.Items[i].SquareMeters = line.SquareMeters
		quote.Items[i].FasciaPrice = line.FasciaPrice
		quote.Items[i].InstallationPrice = line.InstallationPrice
		quote.Items[i].Subtotal = line.Subtotal
	}
	quote.Total = result.Total
}

func applyItemDefaults(item *models.QuoteItem) {
	if item.ChainOrientation == "" {
		item.ChainOrientation = models.DefaultChainOrientation
	}
	if item.FasciaType == "" {
		item.FasciaType = models.DefaultFasciaType
	}
	if item.FasciaColor == "" {
		item.FasciaColor = models.DefaultFasciaColor
	}
}

// Create prices a draft quote under its client type and stores it. Figures
// sent by the caller for area, subtotal or total are ignored.
func (s *QuoteService) Create(ctx context.Context, quote *models.Quote) error {
	if _, err := pricing.ParseTier(quote.ClientType); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(quote.Items) == 0 {
		return fmt.Errorf("%w: a quote needs at least one item", ErrInvalidInput)
	}
	for i := range quote.Items {
		item := &quote.Items[i]
		if item.Width <= 0 || item.Height <= 0 {
			return fmt.Errorf("%w: item %d must have positive dimensions", ErrInvalidInput, i+1)
		}
		if item.UnitPrice < 0 || item.FasciaPrice < 0 || item.InstallationPrice < 0 {
			return fmt.Errorf("%w: item %d has a negative price", ErrInvalidInput, i+1)
		}
		applyItemDefaults(item)
	}

	PriceItems(quote)
	return s.quotes.Create(ctx, quote)
}

// List returns the most recent quotes
func (s *QuoteService) List(ctx context.Context) ([]models.Quote, error) {
	return s.quotes.List(ctx, MaxQuoteList)
}

// Get returns one quote
func (s *QuoteService) Get(ctx context.Context, id string) (*models.Quote, error) {
	return s.quotes.Get(ctx, id)
}

// Delete removes a quote and its items
func (s *QuoteService) Delete(ctx context.Context, id string) error {
	return s.quotes.Delete(ctx, id)
}
