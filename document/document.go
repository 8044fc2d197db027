// Package document describes printable documents as an ordered list of
// blocks and renders them through a pluggable Backend.
package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Align is the horizontal alignment of text or images.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Color is an RGB color.
type Color struct {
	R, G, B int
}

// Hex parses a #RRGGBB color. Malformed input yields black.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}
	}
	return Color{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}
}

// Common palette
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// Block is one element of a document body.
type Block interface {
	kind() string
}

// Span is a run of text sharing the same weight.
type Span struct {
	Text string
	Bold bool
}

// TextStyle controls how a TextBlock is laid out.
type TextStyle struct {
	Size       float64
	Bold       bool
	Align      Align
	Color      Color
	LineHeight float64 // defaults to 1.25 * Size
	SpaceAfter float64
}

// TextBlock is a paragraph made of spans. A "\n" inside a span breaks the line.
type TextBlock struct {
	Spans []Span
	Style TextStyle
}

func (TextBlock) kind() string { return "text" }

// Plain returns the paragraph text without weight information.
func (t TextBlock) Plain() string {
	var sb strings.Builder
	for _, s := range t.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// SpacerBlock adds vertical whitespace.
type SpacerBlock struct {
	Height float64
}

func (SpacerBlock) kind() string { return "spacer" }

// Column describes one table column.
type Column struct {
	Header string
	Width  float64
	Align  Align
}

// CellStyle controls the rendering of one band of a table.
type CellStyle struct {
	Size      float64
	Bold      bool
	TextColor Color
	FillColor Color
	Fill      bool
	Grid      bool
	RowHeight float64
}

// TableBlock is a grid with a header row, body rows and an optional footer row.
type TableBlock struct {
	Columns     []Column
	Rows        [][]string
	Footer      []string
	Header      CellStyle
	Body        CellStyle
	FooterStyle CellStyle
	GridColor   Color
}

func (TableBlock) kind() string { return "table" }

// Width returns the sum of the column widths.
func (t TableBlock) Width() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c.Width
	}
	return w
}

// Validate checks that every row matches the column count.
func (t TableBlock) Validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table has no columns")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("table row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}
	if t.Footer != nil && len(t.Footer) != len(t.Columns) {
		return fmt.Errorf("table footer has %d cells, want %d", len(t.Footer), len(t.Columns))
	}
	return nil
}

// ImageBlock places a PNG or JPEG image scaled to Width.
type ImageBlock struct {
	Data   []byte
	Format string // PNG or JPG
	Width  float64
	Align  Align
}

func (ImageBlock) kind() string { return "image" }

// Document is the backend-independent description of a printable document.
type Document struct {
	Title     string
	Author    string
	CreatedAt time.Time
	Blocks    []Block
}

// Text returns the plain text of every text and table block, in order.
// Useful to inspect a layout without rendering it.
func (d Document) Text() string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		switch blk := b.(type) {
		case TextBlock:
			sb.WriteString(blk.Plain())
			sb.WriteByte('\n')
		case TableBlock:
			headers := make([]string, 0, len(blk.Columns))
			for _, c := range blk.Columns {
				headers = append(headers, c.Header)
			}
			sb.WriteString(strings.Join(headers, " | "))
			sb.WriteByte('\n')
			for _, row := range blk.Rows {
				sb.WriteString(strings.Join(row, " | "))
				sb.WriteByte('\n')
			}
			if blk.Footer != nil {
				sb.WriteString(strings.Join(blk.Footer, " | "))
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// Backend turns a Document into an encoded file.
type Backend interface {
	Render(doc Document) ([]byte, error)
}
