package document

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

const (
	fontFamily     = "Helvetica"
	defaultSize    = 10.0
	defaultRowSize = 18.0
)

// PDFBackend renders documents as letter-size PDF files using gofpdf core
// fonts. Text is translated to cp1252 so Spanish accents render correctly.
type PDFBackend struct {
	PageSize string
	Margin   float64 // points
	Compress bool
}

// NewPDFBackend returns a backend with half-inch margins and compression on.
func NewPDFBackend() *PDFBackend {
	return &PDFBackend{PageSize: "Letter", Margin: 36, Compress: true}
}

// Render implements Backend.
func (b *PDFBackend) Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", b.PageSize, "")
	pdf.SetMargins(b.Margin, b.Margin, b.Margin)
	pdf.SetAutoPageBreak(true, b.Margin)
	pdf.SetCompression(b.Compress)
	// Font and image catalogs are maps; sorting them keeps the output stable.
	pdf.SetCatalogSort(true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
		pdf.SetModificationDate(doc.CreatedAt)
	}
	pdf.SetTitle(doc.Title, true)
	if doc.Author != "" {
		pdf.SetAuthor(doc.Author, true)
	}
	pdf.AddPage()

	r := &pdfRenderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), margin: b.Margin}
	for i, block := range doc.Blocks {
		var err error
		switch blk := block.(type) {
		case TextBlock:
			r.text(blk)
		case SpacerBlock:
			pdf.Ln(blk.Height)
		case TableBlock:
			err = r.table(blk)
		case ImageBlock:
			err = r.image(i, blk)
		default:
			err = fmt.Errorf("unsupported block %T", block)
		}
		if err != nil {
			return nil, fmt.Errorf("render block %d: %w", i, err)
		}
		if pdf.Err() {
			return nil, fmt.Errorf("render block %d: %w", i, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfRenderer struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	margin float64
}

func style(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}

func (r *pdfRenderer) text(blk TextBlock) {
	s := blk.Style
	if s.Size == 0 {
		s.Size = defaultSize
	}
	lineHeight := s.LineHeight
	if lineHeight == 0 {
		lineHeight = s.Size * 1.25
	}
	r.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
	r.pdf.SetX(r.margin)

	mixed := false
	for _, sp := range blk.Spans {
		if sp.Bold != blk.Spans[0].Bold {
			mixed = true
			break
		}
	}

	if mixed && (s.Align == "" || s.Align == AlignLeft) {
		// Write flows spans with different weights on the same line.
		for _, sp := range blk.Spans {
			r.pdf.SetFont(fontFamily, style(sp.Bold || s.Bold), s.Size)
			r.pdf.Write(lineHeight, r.tr(sp.Text))
		}
		r.pdf.Ln(lineHeight)
	} else {
		bold := s.Bold || (len(blk.Spans) > 0 && blk.Spans[0].Bold)
		r.pdf.SetFont(fontFamily, style(bold), s.Size)
		align := s.Align
		if align == "" {
			align = AlignLeft
		}
		r.pdf.MultiCell(0, lineHeight, r.tr(blk.Plain()), "", string(align), false)
	}
	if s.SpaceAfter > 0 {
		r.pdf.Ln(s.SpaceAfter)
	}
}

func (r *pdfRenderer) table(blk TableBlock) error {
	if err := blk.Validate(); err != nil {
		return err
	}
	pageWidth, _ := r.pdf.GetPageSize()
	x0 := (pageWidth - blk.Width()) / 2
	if x0 < r.margin {
		x0 = r.margin
	}
	r.pdf.SetDrawColor(blk.GridColor.R, blk.GridColor.G, blk.GridColor.B)

	headers := make([]string, len(blk.Columns))
	for i, c := range blk.Columns {
		headers[i] = c.Header
	}
	r.row(x0, blk.Columns, headers, blk.Header, true)
	for _, row := range blk.Rows {
		r.row(x0, blk.Columns, row, blk.Body, false)
	}
	if blk.Footer != nil {
		r.row(x0, blk.Columns, blk.Footer, blk.FooterStyle, true)
	}
	return nil
}

func (r *pdfRenderer) row(x0 float64, cols []Column, cells []string, cs CellStyle, center bool) {
	size := cs.Size
	if size == 0 {
		size = 8
	}
	height := cs.RowHeight
	if height == 0 {
		height = defaultRowSize
	}
	border := ""
	if cs.Grid {
		border = "1"
	}
	r.pdf.SetFont(fontFamily, style(cs.Bold), size)
	r.pdf.SetTextColor(cs.TextColor.R, cs.TextColor.G, cs.TextColor.B)
	r.pdf.SetFillColor(cs.FillColor.R, cs.FillColor.G, cs.FillColor.B)
	r.pdf.SetX(x0)
	for i, col := range cols {
		align := col.Align
		if center || align == "" {
			align = AlignCenter
		}
		r.pdf.CellFormat(col.Width, height, r.tr(cells[i]), border, 0, string(align), cs.Fill, 0, "")
	}
	r.pdf.Ln(height)
}

func (r *pdfRenderer) image(idx int, blk ImageBlock) error {
	format := blk.Format
	if format == "" {
		format = "PNG"
	}
	name := fmt.Sprintf("image-%d", idx)
	opts := gofpdf.ImageOptions{ImageType: format}
	info := r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(blk.Data))
	if r.pdf.Err() || info == nil {
		return fmt.Errorf("failed to register image: %w", r.pdf.Error())
	}
	if info.Width() <= 0 {
		return fmt.Errorf("image has no width")
	}
	width := blk.Width
	height := width * info.Height() / info.Width()

	pageWidth, _ := r.pdf.GetPageSize()
	x := r.margin
	switch blk.Align {
	case AlignCenter:
		x = (pageWidth - width) / 2
	case AlignRight:
		x = pageWidth - r.margin - width
	}
	r.pdf.ImageOptions(name, x, r.pdf.GetY(), width, height, false, opts, 0, "")
	r.pdf.Ln(height)
	return nil
}
