package layout

import (
	"github.com/tsawler/cvoutline/model"
)

// NoTextTitle is the title of the outline returned for a document without text
const NoTextTitle = "No Text Found"

// ErrNoText is returned by Analysis.Outline.Err() for a document without text
var ErrNoText = model.ErrNoText

// Analysis is the complete result of outline extraction for one document
type Analysis struct {
	// Outline is the title and the ranked headings in reading order
	Outline *model.Outline

	// Boilerplate holds the keys of running header/footer lines
	Boilerplate KeySet

	// TitleKeys holds the keys of the title block's lines
	TitleKeys KeySet

	// Ignored is Boilerplate ∪ TitleKeys, the lines never considered as headings
	Ignored KeySet

	// Repeated describes the detected boilerplate texts
	Repeated *RepeatedContentResult

	// Title is the full title detection result
	Title TitleResult

	// BodyTextSize is the detected paragraph font size
	BodyTextSize float64

	// Candidates are the heading candidates with their levels
	Candidates []HeadingCandidate

	// Styles are the heading styles in rank order
	Styles []RankedStyle
}

// IsEmpty returns true if the analysed document had no text
func (a *Analysis) IsEmpty() bool {
	return a == nil || a.Outline.Err() != nil
}

// Analyzer runs repeated-content filtering, title detection and outline
// building over a document. It holds no per-document state and is safe for
// concurrent use.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: DefaultConfig()}
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Config returns the configuration used by the analyzer
func (a *Analyzer) Config() Config {
	return a.config
}

// Analyze extracts the outline of a document. A document without any text
// line yields the "No Text Found" sentinel outline rather than an error.
func (a *Analyzer) Analyze(doc *model.Document) *Analysis {
	if !doc.HasText() {
		return &Analysis{
			Outline: &model.Outline{
				Title:    NoTextTitle,
				Headings: []model.OutlineEntry{},
				Error:    ErrNoText.Error(),
			},
			Boilerplate: KeySet{},
			TitleKeys:   KeySet{},
			Ignored:     KeySet{},
			Repeated:    &RepeatedContentResult{Ignored: KeySet{}},
		}
	}

	bodySize := DetectBodyTextSize(doc, a.config)

	repeated := NewRepeatedContentFilterWithConfig(a.config).Detect(doc)
	title := NewTitleDetectorWithConfig(a.config).Detect(doc, repeated.Ignored)
	ignored := repeated.Ignored.Union(title.Keys)

	builder := NewOutlineBuilderWithConfig(a.config)
	scorer := NewHeadingScorer(a.config, bodySize)
	outline, candidates := builder.Build(doc, ignored, title.Text, scorer)

	var styles []RankedStyle
	if len(candidates) > 0 {
		styles = builder.RankStyles(candidates)
	}

	return &Analysis{
		Outline:      outline,
		Boilerplate:  repeated.Ignored,
		TitleKeys:    title.Keys,
		Ignored:      ignored,
		Repeated:     repeated,
		Title:        title,
		BodyTextSize: bodySize,
		Candidates:   candidates,
		Styles:       styles,
	}
}
