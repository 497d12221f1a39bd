// Package layoutjson reads and writes the page/block/line/span layout JSON
// produced by the PDF renderer.
package layoutjson

// flagBold is the renderer's span flag bit for a bold weight
const flagBold = 1 << 4

type fileJSON struct {
	Pages []pageJSON `json:"pages"`
}

type pageJSON struct {
	PageNum    int         `json:"page_num,omitempty"`
	PageWidth  float64     `json:"page_width"`
	PageHeight float64     `json:"page_height"`
	Blocks     []blockJSON `json:"blocks"`
}

type blockJSON struct {
	BBox  [4]float64 `json:"bbox"`
	Lines []lineJSON `json:"lines"`
}

type lineJSON struct {
	BBox  [4]float64 `json:"bbox"`
	Spans []spanJSON `json:"spans"`
}

type spanJSON struct {
	Text  string  `json:"text"`
	Size  float64 `json:"size"`
	Font  string  `json:"font,omitempty"`
	Flags int     `json:"flags,omitempty"`
	Bold  bool    `json:"bold,omitempty"`
}

// Options controls decoding
type Options struct {
	// Strict validates the input against the layout JSON Schema before
	// decoding and fails on the first violation
	Strict bool
}
