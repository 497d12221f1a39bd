package layout

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/cvoutline/model"
)

var (
	// trailingLinkPattern matches lines ending in a URL or a file/domain name
	trailingLinkPattern = regexp.MustCompile(`(https?://\S+|www\.\S+|\S+\.(com|org|git|pdf))$`)

	// numberedPattern matches a leading "N. " section number
	numberedPattern = regexp.MustCompile(`^\d+\.\s`)
)

// StyleKey is the visual style used to cluster headings into levels
type StyleKey struct {
	Size int  // Modal rounded font size
	Bold bool // Any span bold
}

// HeadingCandidate is a line whose heading score cleared the threshold
type HeadingCandidate struct {
	Line  model.Line
	Text  string
	Score float64
	Page  int

	// Style is valid only when HasStyle is true; lines without a single modal
	// font size stay candidates but take no part in style ranking
	Style    StyleKey
	HasStyle bool

	Level model.HeadingLevel
}

// RankedStyle is a heading style with its position statistics
type RankedStyle struct {
	Key      StyleKey
	MedianX0 float64
	Count    int
	Level    model.HeadingLevel // Empty for styles beyond the ranked levels
}

// DetectBodyTextSize returns the median rounded span size over lines that
// look like paragraph text: more than MinBodyTextWords words and no bold span.
func DetectBodyTextSize(doc *model.Document, config Config) float64 {
	var sizes []float64
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				if line.WordCount() <= config.MinBodyTextWords || line.IsBold() {
					continue
				}
				for _, s := range line.Spans {
					sizes = append(sizes, float64(roundSize(s.Size)))
				}
			}
		}
	}
	if len(sizes) == 0 {
		return config.DefaultBodyTextSize
	}
	return median(sizes)
}

// HeadingScorer computes how much a line looks like a section heading
type HeadingScorer struct {
	config       Config
	bodyTextSize float64
	titleCaser   cases.Caser
}

// NewHeadingScorer creates a scorer relative to the given body text size
func NewHeadingScorer(config Config, bodyTextSize float64) *HeadingScorer {
	return &HeadingScorer{
		config:       config,
		bodyTextSize: bodyTextSize,
		titleCaser:   cases.Title(language.Und),
	}
}

// BodyTextSize returns the body size the scorer compares against
func (s *HeadingScorer) BodyTextSize() float64 {
	return s.bodyTextSize
}

// Score returns the heading score of a line within its block. Lines that
// cannot be headings (links, long lines, sentence punctuation, mixed font
// sizes) get the Disqualified score.
func (s *HeadingScorer) Score(line model.Line, block model.Block) float64 {
	w := s.config.Heading
	text := line.Text()
	words := len(strings.Fields(text))

	if trailingLinkPattern.MatchString(text) ||
		words > w.MaxWords ||
		strings.HasSuffix(text, ".") || strings.HasSuffix(text, ",") {
		return w.Disqualified
	}

	lineSize, ok := uniformSize(line)
	if !ok {
		return w.Disqualified
	}

	size := float64(lineSize)
	bold := line.IsBold()
	score := 0.0

	if size > s.bodyTextSize*s.config.FontSizeRatio {
		score += (size - s.bodyTextSize) * w.SizeWeight
	} else if size < s.bodyTextSize {
		score -= s.bodyTextSize - size
	}
	if bold {
		score += w.Bold
	}
	if numberedPattern.MatchString(text) {
		score += w.Numbered
	}
	if s.isTitleCase(text) {
		score += w.TitleCase
	}
	if isUpper(text) {
		score += w.Upper
	}
	if words < w.ShortLineWords {
		score += w.ShortLine
	}
	if strings.HasSuffix(text, ":") {
		score += w.Colon
	}
	if len(block.Lines) == 1 {
		score += w.Isolated
	}
	if size < s.bodyTextSize && !bold {
		score -= w.SmallPenalty
	}

	return score
}

// uniformSize returns the single rounded font size shared by every span
func uniformSize(line model.Line) (int, bool) {
	if len(line.Spans) == 0 {
		return 0, false
	}
	size := roundSize(line.Spans[0].Size)
	for _, s := range line.Spans[1:] {
		if roundSize(s.Size) != size {
			return 0, false
		}
	}
	return size, true
}

// isTitleCase reports whether every word starts upper-case and continues
// lower-case. Word boundaries follow Unicode word breaking, so "Bachelor's"
// is one title-case word. Text without letters is not title case.
func (s *HeadingScorer) isTitleCase(text string) bool {
	if !hasCased(text) {
		return false
	}
	return s.titleCaser.String(text) == text
}

// isUpper reports whether the text has cased letters and none are lower-case
func isUpper(text string) bool {
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

func hasCased(text string) bool {
	for _, r := range text {
		if unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) {
			return true
		}
	}
	return false
}

// styleOf returns the style key of a line: the modal rounded span size and
// whether any span is bold
func styleOf(line model.Line) (StyleKey, bool) {
	sizes := make([]int, len(line.Spans))
	for i, s := range line.Spans {
		sizes[i] = roundSize(s.Size)
	}
	size, ok := mode(sizes)
	if !ok {
		return StyleKey{}, false
	}
	return StyleKey{Size: size, Bold: line.IsBold()}, true
}

// OutlineBuilder scores lines, clusters the surviving candidates by style
// and assigns heading levels
type OutlineBuilder struct {
	config Config
}

// NewOutlineBuilder creates an outline builder with default configuration
func NewOutlineBuilder() *OutlineBuilder {
	return &OutlineBuilder{config: DefaultConfig()}
}

// NewOutlineBuilderWithConfig creates an outline builder with custom configuration
func NewOutlineBuilderWithConfig(config Config) *OutlineBuilder {
	return &OutlineBuilder{config: config}
}

// Candidates returns every non-ignored line scoring at least MinHeadingScore,
// in page, block, line order
func (b *OutlineBuilder) Candidates(doc *model.Document, ignored KeySet, scorer *HeadingScorer) []HeadingCandidate {
	var candidates []HeadingCandidate
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				if ignored.HasLine(line) {
					continue
				}
				score := scorer.Score(line, block)
				if score < b.config.MinHeadingScore {
					continue
				}
				c := HeadingCandidate{
					Line:  line,
					Text:  line.Text(),
					Score: score,
					Page:  page.Number,
				}
				c.Style, c.HasStyle = styleOf(line)
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

// RankStyles groups candidates by style and orders the styles by descending
// font size, then ascending median left edge. Full ties keep first-appearance
// order. The first MaxLevels styles receive H1, H2, H3.
func (b *OutlineBuilder) RankStyles(candidates []HeadingCandidate) []RankedStyle {
	index := make(map[StyleKey]int)
	var xs [][]float64
	var styles []RankedStyle

	for _, c := range candidates {
		if !c.HasStyle {
			continue
		}
		i, ok := index[c.Style]
		if !ok {
			i = len(styles)
			index[c.Style] = i
			styles = append(styles, RankedStyle{Key: c.Style})
			xs = append(xs, nil)
		}
		xs[i] = append(xs[i], c.Line.BBox.X0)
		styles[i].Count++
	}

	for i := range styles {
		styles[i].MedianX0 = median(xs[i])
	}

	sort.SliceStable(styles, func(i, j int) bool {
		if styles[i].Key.Size != styles[j].Key.Size {
			return styles[i].Key.Size > styles[j].Key.Size
		}
		return styles[i].MedianX0 < styles[j].MedianX0
	})

	for i := range styles {
		if i < b.config.MaxLevels {
			styles[i].Level = model.HeadingLevelFor(i)
		}
	}
	return styles
}

// Build produces the outline for the document. Lines in ignored are never
// headings. The candidates are returned with their assigned levels.
func (b *OutlineBuilder) Build(doc *model.Document, ignored KeySet, title string, scorer *HeadingScorer) (*model.Outline, []HeadingCandidate) {
	outline := &model.Outline{Title: title, Headings: []model.OutlineEntry{}}

	candidates := b.Candidates(doc, ignored, scorer)
	if len(candidates) == 0 {
		return outline, nil
	}

	levels := make(map[StyleKey]model.HeadingLevel)
	for _, style := range b.RankStyles(candidates) {
		if style.Level != "" {
			levels[style.Key] = style.Level
		}
	}

	for i := range candidates {
		level := model.HeadingLevel3
		if candidates[i].HasStyle {
			if l, ok := levels[candidates[i].Style]; ok {
				level = l
			}
		}
		candidates[i].Level = level

		outline.Headings = append(outline.Headings, model.OutlineEntry{
			Level: level,
			Text:  candidates[i].Text,
			Page:  candidates[i].Page,
			BBox:  candidates[i].Line.BBox,
		})
	}

	return outline, candidates
}
