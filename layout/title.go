package layout

import (
	"math"
	"strings"

	"github.com/tsawler/cvoutline/model"
)

// UntitledDocument is the title reported when no block qualifies
const UntitledDocument = "Untitled Document"

// TitleResult is the outcome of title detection
type TitleResult struct {
	// Text is the space-joined text of the winning block
	Text string

	// Keys are the line keys of the winning block
	Keys KeySet

	// Score is the winning layout score (0 when no block qualified)
	Score float64

	// Page is the page the title was found on (0 when no block qualified)
	Page int
}

// TitleDetector finds the most plausible title among early, short, top-of-page blocks
type TitleDetector struct {
	config Config
}

// NewTitleDetector creates a title detector with default configuration
func NewTitleDetector() *TitleDetector {
	return &TitleDetector{config: DefaultConfig()}
}

// NewTitleDetectorWithConfig creates a title detector with custom configuration
func NewTitleDetectorWithConfig(config Config) *TitleDetector {
	return &TitleDetector{config: config}
}

// Detect scores every eligible block on the first pages and returns the
// best one. Ties keep the earliest block in page and block order.
func (d *TitleDetector) Detect(doc *model.Document, ignored KeySet) TitleResult {
	best := TitleResult{Text: UntitledDocument, Keys: KeySet{}}
	found := false

	limit := min(max(d.config.TitlePageLimit, 0), doc.PageCount())

	for _, page := range doc.Pages[:limit] {
		for _, block := range page.Blocks {
			score, text, ok := d.scoreBlock(page, block, ignored)
			if !ok {
				continue
			}
			if !found || score > best.Score {
				keys := make([]LineKey, len(block.Lines))
				for i, line := range block.Lines {
					keys[i] = KeyOf(line)
				}
				best = TitleResult{Text: text, Keys: NewKeySet(keys...), Score: score, Page: page.Number}
				found = true
			}
		}
	}

	return best
}

// scoreBlock returns the title score for a block, or ok=false when the block
// is not a title candidate
func (d *TitleDetector) scoreBlock(page model.Page, block model.Block, ignored KeySet) (float64, string, bool) {
	for _, line := range block.Lines {
		if ignored.HasLine(line) {
			return 0, "", false
		}
	}

	if len(block.Lines) < 1 || len(block.Lines) > d.config.Title.MaxLines {
		return 0, "", false
	}
	region := page.Height * d.config.Title.RegionRatio
	if block.BBox.Y0 > region {
		return 0, "", false
	}

	text := block.Text()
	if strings.TrimSpace(text) == "" {
		return 0, "", false
	}

	var sizes []float64
	for _, line := range block.Lines {
		for _, s := range line.Spans {
			sizes = append(sizes, s.Size)
		}
	}
	score := median(sizes)

	if pageCenter := page.CenterX(); pageCenter > 0 {
		offset := math.Abs(block.BBox.CenterX() - pageCenter)
		score += (1 - offset/pageCenter) * d.config.Title.CenterWeight
	}
	if region > 0 {
		score += (1 - block.BBox.Y0/region) * d.config.Title.PositionWeight
	}

	return score, text, true
}
