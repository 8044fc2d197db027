package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/blinds-quote-api/pricing"
)

// TierPrices holds both catalog rates of a product per square meter
type TierPrices struct {
	Distributor float64 `json:"distributor_price"`
	Client      float64 `json:"client_price"`
}

// For returns the rate of the given tier
func (p TierPrices) For(tier pricing.Tier) float64 {
	if tier == pricing.TierDistributor {
		return p.Distributor
	}
	return p.Client
}

// PriceResolver looks up the current catalog rates of a product
type PriceResolver interface {
	ResolvePrices(ctx context.Context, productID string) (TierPrices, error)
}

// ProductPriceResolver reads rates from the product repository at call time
type ProductPriceResolver struct {
	products ProductRepository
}

// NewProductPriceResolver creates a resolver backed by the catalog
func NewProductPriceResolver(products ProductRepository) *ProductPriceResolver {
	return &ProductPriceResolver{products: products}
}

// ResolvePrices returns the current rates of productID. A malformed id can
// never resolve, so it is reported as ErrNotFound like a deleted product.
func (r *ProductPriceResolver) ResolvePrices(ctx context.Context, productID string) (TierPrices, error) {
	product, err := r.products.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			return TierPrices{}, fmt.Errorf("product %q: %w", productID, ErrNotFound)
		}
		return TierPrices{}, err
	}
	return TierPrices{Distributor: product.DistributorPrice, Client: product.ClientPrice}, nil
}
