package model

import "strings"

// Span is an inline run of text with a uniform style
type Span struct {
	Text string
	Size float64 // Font size in points
	Bold bool    // Font-weight flag reported by the renderer
	Font string  // Font family or PostScript name
}

// IsBold reports whether the span is set in a bold weight, either through the
// renderer's flag or through a weight marker in the font name.
func (s Span) IsBold() bool {
	if s.Bold {
		return true
	}
	fontLower := strings.ToLower(s.Font)
	return strings.Contains(fontLower, "bold") ||
		strings.Contains(fontLower, "black") ||
		strings.Contains(fontLower, "heavy") ||
		strings.Contains(fontLower, "semibold") ||
		strings.Contains(fontLower, "demibold")
}

// Line is an ordered sequence of spans sharing a baseline
type Line struct {
	Spans []Span
	BBox  Rect
}

// Text returns the span texts joined by a space, trimmed
func (l Line) Text() string {
	parts := make([]string, len(l.Spans))
	for i, s := range l.Spans {
		parts[i] = s.Text
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// WordCount returns the number of whitespace-separated words in the line
func (l Line) WordCount() int {
	return len(strings.Fields(l.Text()))
}

// IsBold returns true if any span in the line is bold
func (l Line) IsBold() bool {
	for _, s := range l.Spans {
		if s.IsBold() {
			return true
		}
	}
	return false
}

// Block is a layout region holding one or more lines
type Block struct {
	Lines []Line
	BBox  Rect
}

// Text returns the line texts joined by a space
func (b Block) Text() string {
	parts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		parts[i] = l.Text()
	}
	return strings.Join(parts, " ")
}

// Document is the read-only layout model of a rendered PDF.
// Pages, blocks, lines and spans are in reading order.
type Document struct {
	Pages []Page
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if d == nil {
		return nil
	}
	for i := range d.Pages {
		if d.Pages[i].Number == number {
			return &d.Pages[i]
		}
	}
	return nil
}

// HasText returns true if any block on any page holds at least one line
func (d *Document) HasText() bool {
	if d == nil {
		return false
	}
	for _, page := range d.Pages {
		for _, block := range page.Blocks {
			if len(block.Lines) > 0 {
				return true
			}
		}
	}
	return false
}

// LastPage returns the final page, or nil for an empty document
func (d *Document) LastPage() *Page {
	if d == nil || len(d.Pages) == 0 {
		return nil
	}
	return &d.Pages[len(d.Pages)-1]
}
