package document

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(total string) Document {
	return NewBuilder("Cotización").
		CreatedAt(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)).
		Paragraph(TextStyle{Size: 24, Bold: true, Align: AlignCenter}, "PERSIANAS PREMIUM").
		Text(TextStyle{Size: 10}, Span{Text: "Teléfono: ", Bold: true}, Span{Text: "+52 555 123 4567"}).
		Spacer(20).
		Table(TableBlock{
			Columns: []Column{
				{Header: "#", Width: 18},
				{Header: "Producto", Width: 72, Align: AlignLeft},
				{Header: "Subtotal", Width: 50},
			},
			Rows:        [][]string{{"1", "Blackout", total}},
			Footer:      []string{"", "TOTAL:", total},
			Header:      CellStyle{Bold: true, TextColor: White, FillColor: Hex("#3498DB"), Fill: true, Grid: true},
			Body:        CellStyle{FillColor: Hex("#ECF0F1"), Fill: true, Grid: true},
			FooterStyle: CellStyle{Size: 10, Bold: true, TextColor: White, FillColor: Hex("#2C3E50"), Fill: true},
		}).
		Paragraph(TextStyle{Size: 9, Align: AlignCenter}, "¡Gracias por su preferencia!").
		Build()
}

func TestPDFBackendRender(t *testing.T) {
	backend := &PDFBackend{PageSize: "Letter", Margin: 36, Compress: false}

	data, err := backend.Render(sampleDocument("$2250.00"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output should be a PDF file")
	assert.True(t, bytes.Contains(data, []byte("$2250.00")), "uncompressed output should contain the total")
	assert.True(t, bytes.Contains(data, []byte("PERSIANAS PREMIUM")))
}

func TestPDFBackendDifferentContentDifferentBytes(t *testing.T) {
	backend := NewPDFBackend()

	a, err := backend.Render(sampleDocument("$2250.00"))
	require.NoError(t, err)
	b, err := backend.Render(sampleDocument("$2925.00"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPDFBackendSameDocumentSameBytes(t *testing.T) {
	for _, compress := range []bool{true, false} {
		backend := &PDFBackend{PageSize: "Letter", Margin: 36, Compress: compress}

		first, err := backend.Render(sampleDocument("$2250.00"))
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := backend.Render(sampleDocument("$2250.00"))
			require.NoError(t, err)
			require.Equal(t, first, again, "render %d (compress=%v) differs from the first", i, compress)
		}
	}
}

func TestPDFBackendRejectsMalformedTable(t *testing.T) {
	doc := NewBuilder("bad").
		Table(TableBlock{Columns: []Column{{Header: "A", Width: 10}}, Rows: [][]string{{"1", "2"}}}).
		Build()

	_, err := NewPDFBackend().Render(doc)

	assert.Error(t, err)
}

func TestPDFBackendRendersImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	doc := NewBuilder("logo").
		Image(ImageBlock{Data: buf.Bytes(), Format: "PNG", Width: 80, Align: AlignCenter}).
		Paragraph(TextStyle{}, "debajo del logo").
		Build()

	data, err := NewPDFBackend().Render(doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFBackendRejectsBrokenImage(t *testing.T) {
	doc := NewBuilder("logo").
		Image(ImageBlock{Data: []byte("not a png"), Format: "PNG", Width: 80}).
		Build()

	_, err := NewPDFBackend().Render(doc)

	assert.Error(t, err)
}
