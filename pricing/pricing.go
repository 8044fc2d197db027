package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier identifies one of the two pricing perspectives of the catalog.
type Tier string

const (
	TierDistributor Tier = "distributor"
	TierClient      Tier = "client"
)

// Tiers lists both tiers in rendering order.
var Tiers = []Tier{TierDistributor, TierClient}

// ParseTier validates a client_type value.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierDistributor, TierClient:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown pricing tier %q", s)
}

// Label returns the upper-case label printed on documents.
func (t Tier) Label() string {
	if t == TierDistributor {
		return "DISTRIBUIDOR"
	}
	return "CLIENTE"
}

// FileSuffix returns the suffix appended to document filenames for this tier.
func (t Tier) FileSuffix() string {
	if t == TierDistributor {
		return "distribuidor"
	}
	return "cliente"
}

// LineInput holds the raw figures of one quote line.
type LineInput struct {
	Width             float64
	Height            float64
	UnitPrice         float64
	FasciaPrice       float64
	InstallationPrice float64
}

// Line is the priced result of a LineInput.
type Line struct {
	SquareMeters      float64
	ProductSubtotal   float64
	FasciaPrice       float64
	InstallationPrice float64
	Subtotal          float64
}

// Result groups every priced line with the quote total.
type Result struct {
	Lines []Line
	Total float64
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CalculateLine prices a single line. Area and each money figure are rounded
// before they are summed.
func CalculateLine(in LineInput) Line {
	area := decimal.NewFromFloat(in.Width).Mul(decimal.NewFromFloat(in.Height)).Round(2)
	product := area.Mul(decimal.NewFromFloat(in.UnitPrice)).Round(2)
	fascia := decimal.NewFromFloat(in.FasciaPrice).Round(2)
	installation := decimal.NewFromFloat(in.InstallationPrice).Round(2)

	return Line{
		SquareMeters:      area.InexactFloat64(),
		ProductSubtotal:   product.InexactFloat64(),
		FasciaPrice:       fascia.InexactFloat64(),
		InstallationPrice: installation.InexactFloat64(),
		Subtotal:          product.Add(fascia).Add(installation).InexactFloat64(),
	}
}

// Total sums line subtotals and rounds the result.
func Total(subtotals []float64) float64 {
	sum := decimal.Zero
	for _, s := range subtotals {
		sum = sum.Add(decimal.NewFromFloat(s))
	}
	return sum.Round(2).InexactFloat64()
}

// CalculateQuote prices every line and the quote total.
func CalculateQuote(inputs []LineInput) Result {
	lines := make([]Line, 0, len(inputs))
	subtotals := make([]float64, 0, len(inputs))
	for _, in := range inputs {
		line := CalculateLine(in)
		lines = append(lines, line)
		subtotals = append(subtotals, line.Subtotal)
	}
	return Result{Lines: lines, Total: Total(subtotals)}
}
