package layoutjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/cvoutline/model"
)

// Encode writes the layout model as indented layout JSON
func Encode(w io.Writer, doc *model.Document) error {
	file := fileJSON{Pages: make([]pageJSON, 0, doc.PageCount())}
	if doc != nil {
		for _, p := range doc.Pages {
			page := pageJSON{
				PageNum:    p.Number,
				PageWidth:  p.Width,
				PageHeight: p.Height,
				Blocks:     make([]blockJSON, 0, len(p.Blocks)),
			}
			for _, b := range p.Blocks {
				block := blockJSON{BBox: boxOf(b.BBox), Lines: make([]lineJSON, 0, len(b.Lines))}
				for _, l := range b.Lines {
					line := lineJSON{BBox: boxOf(l.BBox), Spans: make([]spanJSON, 0, len(l.Spans))}
					for _, s := range l.Spans {
						span := spanJSON{Text: s.Text, Size: s.Size, Font: s.Font, Bold: s.Bold}
						if s.Bold {
							span.Flags = flagBold
						}
						line.Spans = append(line.Spans, span)
					}
					block.Lines = append(block.Lines, line)
				}
				page.Blocks = append(page.Blocks, block)
			}
			file.Pages = append(file.Pages, page)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return nil
}

// WriteFile encodes the layout model to a file
func WriteFile(filename string, doc *model.Document) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := Encode(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func boxOf(r model.Rect) [4]float64 {
	return [4]float64{r.X0, r.Y0, r.X1, r.Y1}
}
