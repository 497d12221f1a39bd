package layout

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/cvoutline/model"
)

// RegionType indicates whether a repeated text sits in the header or footer band
type RegionType int

const (
	Header RegionType = iota
	Footer
)

func (r RegionType) String() string {
	if r == Header {
		return "header"
	}
	return "footer"
}

// MarshalText encodes the region by name
func (r RegionType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a region name written by MarshalText
func (r *RegionType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "header":
		*r = Header
	case "footer":
		*r = Footer
	default:
		return fmt.Errorf("unknown region %q", text)
	}
	return nil
}

// RepeatedText is a normalized header/footer text classified as boilerplate
type RepeatedText struct {
	// Text is the normalized text (digit runs replaced by '#')
	Text string `json:"text"`

	// Region is the band the text was first seen in
	Region RegionType `json:"region"`

	// IsPageNumber indicates the text is a page-number pattern such as "Page #"
	IsPageNumber bool `json:"page_number"`

	// Pages lists the distinct pages (1-based) the text was seen on, ascending
	Pages []int `json:"pages"`
}

// RepeatedContentResult contains the detection results
type RepeatedContentResult struct {
	// Ignored holds the key of every line whose normalized text is boilerplate
	Ignored KeySet

	// Repeated describes each boilerplate text, ordered by first appearance
	Repeated []RepeatedText
}

// RepeatedContentFilter detects running headers and footers repeated across pages
type RepeatedContentFilter struct {
	config Config
}

// NewRepeatedContentFilter creates a filter with default configuration
func NewRepeatedContentFilter() *RepeatedContentFilter {
	return &RepeatedContentFilter{config: DefaultConfig()}
}

// NewRepeatedContentFilterWithConfig creates a filter with custom configuration
func NewRepeatedContentFilterWithConfig(config Config) *RepeatedContentFilter {
	return &RepeatedContentFilter{config: config}
}

// occurrence tracks where a normalized text was seen
type occurrence struct {
	region RegionType
	pages  map[int]bool
}

// Detect scans every page but the first for short lines in the header and
// footer bands, and returns the keys of all lines whose normalized text recurs
// on enough pages.
func (f *RepeatedContentFilter) Detect(doc *model.Document) *RepeatedContentResult {
	result := &RepeatedContentResult{Ignored: KeySet{}}
	if doc.PageCount() < 2 {
		return result
	}

	seen := make(map[string]*occurrence)
	var order []string

	for _, page := range doc.Pages[1:] {
		headerLimit := page.Height * f.config.HeaderThreshold
		footerLimit := page.Height * f.config.FooterThreshold

		for _, block := range page.Blocks {
			var region RegionType
			switch {
			case block.BBox.Y1 < headerLimit:
				region = Header
			case block.BBox.Y0 > footerLimit:
				region = Footer
			default:
				continue
			}

			for _, line := range block.Lines {
				normalized := normalizeForComparison(line.Text())
				if len(strings.Fields(normalized)) >= f.config.Repeat.MaxWords {
					continue
				}
				occ, ok := seen[normalized]
				if !ok {
					occ = &occurrence{region: region, pages: make(map[int]bool)}
					seen[normalized] = occ
					order = append(order, normalized)
				}
				occ.pages[page.Number] = true
			}
		}
	}

	boilerplate := make(map[string]bool)
	for _, text := range order {
		occ := seen[text]
		if !f.isBoilerplate(len(occ.pages), doc.PageCount()) {
			continue
		}
		boilerplate[text] = true

		pages := make([]int, 0, len(occ.pages))
		for p := range occ.pages {
			pages = append(pages, p)
		}
		sort.Ints(pages)

		result.Repeated = append(result.Repeated, RepeatedText{
			Text:         text,
			Region:       occ.region,
			IsPageNumber: isPageNumberPattern(text),
			Pages:        pages,
		})
	}

	if len(boilerplate) == 0 {
		return result
	}

	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				if boilerplate[normalizeForComparison(line.Text())] {
					result.Ignored[KeyOf(line)] = struct{}{}
				}
			}
		}
	}

	return result
}

// isBoilerplate applies the page-count thresholds to a text seen on k pages
func (f *RepeatedContentFilter) isBoilerplate(k, totalPages int) bool {
	if k > f.config.Repeat.MinPages {
		return true
	}
	return totalPages > f.config.Repeat.LongDocumentPages &&
		float64(k) > float64(totalPages)*f.config.Repeat.PageRatio
}

var digitRun = regexp.MustCompile(`\d+`)

// normalizeForComparison normalizes text for comparison by replacing numbers
func normalizeForComparison(text string) string {
	return digitRun.ReplaceAllString(text, "#")
}

// pageNumberForms are the normalized running texts that only carry a page number
var pageNumberForms = []string{
	"#", "- # -", "# of #", "#/#", "# / #",
	"page #", "page # of #", "p. #", "p.#", "pg #", "pg. #",
}

// isPageNumberPattern reports whether normalized text is a bare page number
func isPageNumberPattern(normalizedText string) bool {
	trimmed := strings.TrimSpace(normalizedText)
	for _, form := range pageNumberForms {
		if strings.EqualFold(trimmed, form) {
			return true
		}
	}
	return false
}

// HasRepeated returns true if any boilerplate text was detected
func (r *RepeatedContentResult) HasRepeated() bool {
	return r != nil && len(r.Repeated) > 0
}

// Summary describes the boilerplate for logs, e.g.
// "Headers: Jane Doe CV; Footers: [Page Number]"
func (r *RepeatedContentResult) Summary() string {
	if !r.HasRepeated() {
		return "No repeated headers or footers detected"
	}

	byRegion := map[RegionType][]string{}
	for _, rt := range r.Repeated {
		text := rt.Text
		if rt.IsPageNumber {
			text = "[Page Number]"
		}
		byRegion[rt.Region] = append(byRegion[rt.Region], text)
	}

	var parts []string
	if texts := byRegion[Header]; len(texts) > 0 {
		parts = append(parts, "Headers: "+strings.Join(texts, ", "))
	}
	if texts := byRegion[Footer]; len(texts) > 0 {
		parts = append(parts, "Footers: "+strings.Join(texts, ", "))
	}
	return strings.Join(parts, "; ")
}

// PageNumbers returns the repeated texts recognised as page numbers
func (r *RepeatedContentResult) PageNumbers() []RepeatedText {
	if r == nil {
		return nil
	}
	var out []RepeatedText
	for _, rt := range r.Repeated {
		if rt.IsPageNumber {
			out = append(out, rt)
		}
	}
	return out
}
