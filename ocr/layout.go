package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	// Decoders for image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/cvoutline/model"
)

// DefaultDPI is the scan resolution assumed when none is set
const DefaultDPI = 300

// WordBox is one recognised word with its Tesseract layout position
type WordBox struct {
	Text       string
	Box        image.Rectangle // Pixel coordinates, origin top-left
	Confidence float64
	Block      int
	Paragraph  int
	Line       int
}

// ImageInfo describes an image without decoding its pixels
type ImageInfo struct {
	Width  int
	Height int
	Format string
}

// ProbeImage reads the dimensions and format of PNG, JPEG, GIF, BMP, TIFF
// or WebP data
func ProbeImage(data []byte) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("reading image header: %w", err)
	}
	return ImageInfo{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// BuildPage converts word boxes into a layout page. Words are grouped into
// lines by (block, paragraph, line) and lines into blocks by block number,
// both in first-appearance order. Pixel coordinates become points at dpi.
// A word's font size is its box height in points.
func BuildPage(words []WordBox, pageNum int, info ImageInfo, dpi int) model.Page {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	pt := func(px int) float64 { return float64(px) * 72 / float64(dpi) }

	page := model.Page{
		Number: pageNum,
		Width:  pt(info.Width),
		Height: pt(info.Height),
	}

	type lineID struct{ block, par, line int }

	blockIndex := make(map[int]int)
	lineIndex := make(map[lineID][2]int)

	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" || w.Box.Empty() {
			continue
		}

		r := model.NewRect(pt(w.Box.Min.X), pt(w.Box.Min.Y), pt(w.Box.Max.X), pt(w.Box.Max.Y))
		span := model.Span{Text: text, Size: r.Height()}

		bi, ok := blockIndex[w.Block]
		if !ok {
			bi = len(page.Blocks)
			blockIndex[w.Block] = bi
			page.Blocks = append(page.Blocks, model.Block{BBox: r})
		}
		block := &page.Blocks[bi]

		id := lineID{w.Block, w.Paragraph, w.Line}
		pos, ok := lineIndex[id]
		if !ok {
			pos = [2]int{bi, len(block.Lines)}
			lineIndex[id] = pos
			block.Lines = append(block.Lines, model.Line{BBox: r})
		}
		line := &block.Lines[pos[1]]

		line.Spans = append(line.Spans, span)
		line.BBox = line.BBox.Union(r)
		block.BBox = block.BBox.Union(r)
	}

	return page
}
