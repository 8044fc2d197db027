package document

import "time"

// Builder assembles a Document block by block.
type Builder struct {
	doc Document
}

// NewBuilder starts a document with the given title.
func NewBuilder(title string) *Builder {
	return &Builder{doc: Document{Title: title}}
}

// Author sets the document author metadata.
func (b *Builder) Author(author string) *Builder {
	b.doc.Author = author
	return b
}

// CreatedAt pins the creation date written into the document metadata.
func (b *Builder) CreatedAt(t time.Time) *Builder {
	b.doc.CreatedAt = t
	return b
}

// Text appends a paragraph made of spans.
func (b *Builder) Text(style TextStyle, spans ...Span) *Builder {
	b.doc.Blocks = append(b.doc.Blocks, TextBlock{Spans: spans, Style: style})
	return b
}

// Paragraph appends a paragraph of plain text.
func (b *Builder) Paragraph(style TextStyle, text string) *Builder {
	return b.Text(style, Span{Text: text})
}

// Spacer appends vertical whitespace.
func (b *Builder) Spacer(height float64) *Builder {
	b.doc.Blocks = append(b.doc.Blocks, SpacerBlock{Height: height})
	return b
}

// Table appends a table.
func (b *Builder) Table(t TableBlock) *Builder {
	b.doc.Blocks = append(b.doc.Blocks, t)
	return b
}

// Image appends an image. Empty data is ignored.
func (b *Builder) Image(img ImageBlock) *Builder {
	if len(img.Data) == 0 {
		return b
	}
	b.doc.Blocks = append(b.doc.Blocks, img)
	return b
}

// Build returns the assembled document.
func (b *Builder) Build() Document {
	return b.doc
}
