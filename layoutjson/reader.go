package layoutjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/cvoutline/internal/schemas"
	"github.com/tsawler/cvoutline/model"
)

// Reader provides access to a decoded layout document.
type Reader struct {
	doc *model.Document
}

// Open reads a layout JSON file.
func Open(filename string, opts Options) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f, opts)
}

// OpenReader decodes layout JSON from an io.Reader.
func OpenReader(r io.Reader, opts Options) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}

	doc, err := Decode(data, opts)
	if err != nil {
		return nil, err
	}
	return &Reader{doc: doc}, nil
}

// Document returns the decoded layout model
func (r *Reader) Document() *model.Document {
	return r.doc
}

// PageCount returns the number of pages
func (r *Reader) PageCount() int {
	return r.doc.PageCount()
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	return nil
}

// Decode converts layout JSON into the layout model. Span text is NFKC
// normalised, lines without text and blocks without lines are dropped, and
// a missing page_num defaults to the page's position.
func Decode(data []byte, opts Options) (*model.Document, error) {
	if opts.Strict {
		if err := schemas.Validate(schemas.Layout, data); err != nil {
			return nil, err
		}
	}

	var file fileJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}

	doc := &model.Document{Pages: make([]model.Page, 0, len(file.Pages))}
	for i, p := range file.Pages {
		page := model.Page{
			Number: p.PageNum,
			Width:  p.PageWidth,
			Height: p.PageHeight,
		}
		if page.Number == 0 {
			page.Number = i + 1
		}

		for _, b := range p.Blocks {
			block := model.Block{BBox: rectOf(b.BBox)}
			for _, l := range b.Lines {
				line := decodeLine(l)
				if line.Text() == "" {
					continue
				}
				block.Lines = append(block.Lines, line)
			}
			if len(block.Lines) == 0 {
				continue
			}
			page.Blocks = append(page.Blocks, block)
		}

		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

func decodeLine(l lineJSON) model.Line {
	line := model.Line{BBox: rectOf(l.BBox)}
	for _, s := range l.Spans {
		line.Spans = append(line.Spans, model.Span{
			Text: strings.TrimSpace(norm.NFKC.String(s.Text)),
			Size: s.Size,
			Bold: s.Bold || s.Flags&flagBold != 0,
			Font: s.Font,
		})
	}
	return line
}

func rectOf(b [4]float64) model.Rect {
	return model.NewRect(b[0], b[1], b[2], b[3])
}
