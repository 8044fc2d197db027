package services

import (
	"strings"

	"github.com/kendall-kelly/blinds-quote-api/document"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/pricing"
	"github.com/kendall-kelly/blinds-quote-api/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const inch = 72.0

// Palette of the quote document
var (
	colorHeading    = document.Hex("#2C3E50")
	colorSubtitle   = document.Hex("#7F8C8D")
	colorAccent     = document.Hex("#3498DB")
	colorRow        = document.Hex("#ECF0F1")
	colorGrid       = document.Hex("#BDC3C7")
	colorFootnote   = document.Hex("#95A5A6")
	colorWhitesmoke = document.Hex("#F5F5F5")
)

// Fixed document texts
const (
	quoteSubtitle   = "Cotización de Persianas Enrollables"
	legacyFootnote  = "* Producto descontinuado: se usó el precio original de la cotización."
	footerValidity  = "Esta cotización tiene una vigencia de 15 días."
	footerPrices    = "Precios sujetos a cambio sin previo aviso."
	footerGratitude = "¡Gracias por su preferencia!"
)

var quoteColumns = []document.Column{
	{Header: "#", Width: 0.25 * inch, Align: document.AlignCenter},
	{Header: "Producto", Width: 1.0 * inch, Align: document.AlignLeft},
	{Header: "Color", Width: 0.65 * inch},
	{Header: "Medidas", Width: 0.7 * inch},
	{Header: "M²", Width: 0.4 * inch},
	{Header: "Cadena", Width: 0.4 * inch},
	{Header: "Fascia", Width: 0.7 * inch},
	{Header: "Extras", Width: 0.65 * inch},
	{Header: "Subtotal", Width: 0.7 * inch},
}

var fasciaAbbreviations = map[string]string{
	"Redonda":             "Red.",
	"Cuadrada sin forrar": "C. s/f",
	"Cuadrada forrada":    "C. forr.",
}

// PricedItem is a quote item as printed on one document
type PricedItem struct {
	models.QuoteItem
	// LegacyPricing marks items whose product left the catalog; they keep
	// the unit price stored on the quote
	LegacyPricing bool
}

// PricedQuote is a quote priced under one tier, ready for layout
type PricedQuote struct {
	Quote *models.Quote
	Tier  pricing.Tier
	Items []PricedItem
	Total float64
}

// HasLegacyPricing reports whether any item fell back to its stored price
func (p *PricedQuote) HasLegacyPricing() bool {
	for _, item := range p.Items {
		if item.LegacyPricing {
			return true
		}
	}
	return false
}

func chainLabel(orientation string) string {
	if orientation == "" {
		orientation = models.DefaultChainOrientation
	}
	return utils.Truncate(orientation, 3) + "."
}

func fasciaLabel(fasciaType, fasciaColor string) string {
	label := fasciaType
	if abbr, ok := fasciaAbbreviations[fasciaType]; ok {
		label = abbr
	}
	if fasciaColor == "" {
		return label
	}
	return label + " (" + utils.Truncate(fasciaColor, 4) + ")"
}

func extrasLabel(p *message.Printer, fascia, installation float64) string {
	var extras []string
	if fascia > 0 {
		extras = append(extras, p.Sprintf("F:$%.0f", fascia))
	}
	if installation > 0 {
		extras = append(extras, p.Sprintf("I:$%.0f", installation))
	}
	if len(extras) == 0 {
		return "-"
	}
	return strings.Join(extras, " ")
}

func itemRow(p *message.Printer, n int, item PricedItem) []string {
	name := utils.Truncate(item.ProductName, 16)
	if item.LegacyPricing {
		name += "*"
	}
	color := "-"
	if item.Color != nil && *item.Color != "" {
		color = utils.Truncate(*item.Color, 10)
	}
	return []string{
		p.Sprintf("%d", n),
		name,
		color,
		p.Sprintf("%.2fx%.2f", item.Width, item.Height),
		p.Sprintf("%.2f", item.SquareMeters),
		chainLabel(item.ChainOrientation),
		fasciaLabel(item.FasciaType, item.FasciaColor),
		extrasLabel(p, item.FasciaPrice, item.InstallationPrice),
		p.Sprintf("$%.2f", item.Subtotal),
	}
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// BuildQuoteDocument lays out a priced quote with the business letterhead
func BuildQuoteDocument(pq *PricedQuote, cfg *models.BusinessConfig) document.Document {
	p := message.NewPrinter(language.English)
	quote := pq.Quote

	info := document.TextStyle{Size: 10, SpaceAfter: 4}
	b := document.NewBuilder("Cotización "+quote.Folio()).
		Author(cfg.BusinessName).
		CreatedAt(quote.CreatedAt)

	if present(cfg.LogoBase64) {
		if data, format, err := utils.DecodeLogoBase64(*cfg.LogoBase64); err == nil {
			b.Image(document.ImageBlock{Data: data, Format: format, Width: 1.5 * inch, Align: document.AlignCenter})
			b.Spacer(8)
		}
	}

	b.Paragraph(document.TextStyle{Size: 24, Bold: true, Align: document.AlignCenter, Color: colorHeading, SpaceAfter: 12},
		strings.ToUpper(cfg.BusinessName))
	b.Paragraph(document.TextStyle{Size: 12, Align: document.AlignCenter, Color: colorSubtitle, SpaceAfter: 20},
		quoteSubtitle)

	b.Text(info,
		document.Span{Text: "Teléfono: ", Bold: true}, document.Span{Text: cfg.Phone + " | "},
		document.Span{Text: "Email: ", Bold: true}, document.Span{Text: cfg.Email})
	b.Text(info, document.Span{Text: "Dirección: ", Bold: true}, document.Span{Text: cfg.Address})
	b.Spacer(20)

	b.Text(info, document.Span{Text: "Folio: ", Bold: true}, document.Span{Text: quote.Folio()})
	b.Text(info, document.Span{Text: "Fecha: ", Bold: true}, document.Span{Text: quote.CreatedAt.Format("02/01/2006 15:04")})
	b.Text(info, document.Span{Text: "Tipo de Cliente: ", Bold: true}, document.Span{Text: pq.Tier.Label()})
	if present(quote.ClientName) {
		b.Text(info, document.Span{Text: "Cliente: ", Bold: true}, document.Span{Text: *quote.ClientName})
	}
	if present(quote.ClientPhone) {
		b.Text(info, document.Span{Text: "Teléfono: ", Bold: true}, document.Span{Text: *quote.ClientPhone})
	}
	if present(quote.ClientEmail) {
		b.Text(info, document.Span{Text: "Email: ", Bold: true}, document.Span{Text: *quote.ClientEmail})
	}
	b.Spacer(20)

	rows := make([][]string, 0, len(pq.Items))
	for i, item := range pq.Items {
		rows = append(rows, itemRow(p, i+1, item))
	}
	b.Table(document.TableBlock{
		Columns: quoteColumns,
		Rows:    rows,
		Footer:  []string{"", "", "", "", "", "", "", "TOTAL:", p.Sprintf("$%.2f", pq.Total)},
		Header: document.CellStyle{
			Size: 8, Bold: true, TextColor: colorWhitesmoke, FillColor: colorAccent, Fill: true, Grid: true, RowHeight: 22,
		},
		Body: document.CellStyle{
			Size: 8, TextColor: colorHeading, FillColor: colorRow, Fill: true, Grid: true, RowHeight: 16,
		},
		FooterStyle: document.CellStyle{
			Size: 10, Bold: true, TextColor: colorWhitesmoke, FillColor: colorHeading, Fill: true, RowHeight: 26,
		},
		GridColor: colorGrid,
	})
	b.Spacer(20)

	if present(quote.Notes) {
		b.Text(document.TextStyle{Size: 10, Color: colorSubtitle},
			document.Span{Text: "Notas: ", Bold: true}, document.Span{Text: *quote.Notes})
		b.Spacer(20)
	}
	if pq.HasLegacyPricing() {
		b.Paragraph(document.TextStyle{Size: 8, Color: colorFootnote, SpaceAfter: 6}, legacyFootnote)
	}

	footer := document.TextStyle{Size: 9, Align: document.AlignCenter, Color: colorFootnote}
	b.Spacer(30)
	b.Paragraph(footer, footerValidity)
	b.Paragraph(footer, footerPrices)
	b.Paragraph(footer, footerGratitude)

	return b.Build()
}
