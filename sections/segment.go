package sections

import (
	"strings"

	"github.com/tsawler/cvoutline/layout"
	"github.com/tsawler/cvoutline/model"
)

const (
	// EndOfDocument is the text of the synthetic heading closing the last section
	EndOfDocument = "End of Document"

	// DefaultSectionKey holds the whole document when no heading can be placed
	DefaultSectionKey = "document"
)

// BlockRef identifies a block by page number and index within the page
type BlockRef struct {
	Page  int
	Index int
}

// Segment is the raw text owned by one heading
type Segment struct {
	Heading string
	Page    int
	BBox    model.Rect // Box of the relocated heading line
	Content string
	Blocks  []BlockRef
}

// SegmentResult holds the segments in heading order and the outline
// entries that could not be placed on their page
type SegmentResult struct {
	Segments   []Segment
	Unresolved []model.OutlineEntry
}

// IsFallback reports whether the document was collapsed into a single
// default segment
func (r *SegmentResult) IsFallback() bool {
	return len(r.Segments) == 1 && r.Segments[0].Heading == DefaultSectionKey
}

// anchor is a heading placed at a concrete line box
type anchor struct {
	text string
	page int
	bbox model.Rect
}

// Segmenter cuts a document into the text lying between consecutive
// outline headings
type Segmenter struct {
	boilerplate layout.KeySet
}

// NewSegmenter creates a segmenter. Lines whose keys are in boilerplate are
// left out of section content.
func NewSegmenter(boilerplate layout.KeySet) *Segmenter {
	return &Segmenter{boilerplate: boilerplate}
}

// Segment returns one segment per resolvable heading of the outline. A
// document without usable headings becomes a single DefaultSectionKey
// segment holding every block.
func (s *Segmenter) Segment(doc *model.Document, outline *model.Outline) *SegmentResult {
	result := &SegmentResult{}
	if doc.PageCount() == 0 {
		return result
	}

	var anchors []anchor
	if outline != nil {
		for _, h := range outline.Headings {
			bbox, ok := relocate(doc, h)
			if !ok {
				result.Unresolved = append(result.Unresolved, h)
				continue
			}
			anchors = append(anchors, anchor{text: h.Text, page: h.Page, bbox: bbox})
		}
	}

	if len(anchors) == 0 {
		result.Segments = []Segment{s.wholeDocument(doc)}
		return result
	}

	last := doc.LastPage()
	anchors = append(anchors, anchor{
		text: EndOfDocument,
		page: last.Number,
		bbox: model.NewRect(0, last.Height, last.Width, last.Height),
	})

	for i := 0; i < len(anchors)-1; i++ {
		result.Segments = append(result.Segments, s.between(doc, anchors[i], anchors[i+1]))
	}
	return result
}

// relocate finds the box of the line a heading came from: exact text and
// rounded box first, then the first line with the same text on the page
func relocate(doc *model.Document, h model.OutlineEntry) (model.Rect, bool) {
	page := doc.GetPage(h.Page)
	if page == nil {
		return model.Rect{}, false
	}

	want := h.BBox.Rounded()
	var fallback *model.Line
	for bi := range page.Blocks {
		for li := range page.Blocks[bi].Lines {
			line := &page.Blocks[bi].Lines[li]
			if line.Text() != h.Text {
				continue
			}
			if line.BBox.Rounded() == want {
				return line.BBox, true
			}
			if fallback == nil {
				fallback = line
			}
		}
	}
	if fallback != nil {
		return fallback.BBox, true
	}
	return model.Rect{}, false
}

// between collects the blocks lying after from and before to. Ownership is
// decided by a block's top edge, so a tall block beside a heading in
// another column stays with the section it starts in.
func (s *Segmenter) between(doc *model.Document, from, to anchor) Segment {
	seg := Segment{Heading: from.text, Page: from.page, BBox: from.bbox}

	var parts []string
	for _, page := range doc.Pages {
		if page.Number < from.page || page.Number > to.page {
			continue
		}
		for bi, block := range page.Blocks {
			if page.Number == from.page && block.BBox.Y0 < from.bbox.Y1 {
				continue
			}
			if page.Number == to.page && block.BBox.Y0 >= to.bbox.Y0 {
				continue
			}
			text := s.blockText(block)
			if text == "" {
				continue
			}
			parts = append(parts, text)
			seg.Blocks = append(seg.Blocks, BlockRef{Page: page.Number, Index: bi})
		}
	}

	seg.Content = strings.Join(parts, " ")
	return seg
}

func (s *Segmenter) wholeDocument(doc *model.Document) Segment {
	seg := Segment{Heading: DefaultSectionKey, Page: doc.Pages[0].Number}

	var parts []string
	for _, page := range doc.Pages {
		for bi, block := range page.Blocks {
			text := s.blockText(block)
			if text == "" {
				continue
			}
			parts = append(parts, text)
			seg.Blocks = append(seg.Blocks, BlockRef{Page: page.Number, Index: bi})
		}
	}

	seg.Content = strings.Join(parts, " ")
	return seg
}

// blockText joins the block's non-boilerplate line texts
func (s *Segmenter) blockText(block model.Block) string {
	var lines []string
	for _, line := range block.Lines {
		if s.boilerplate.HasLine(line) {
			continue
		}
		if text := line.Text(); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, " ")
}
