package cvoutline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/tsawler/cvoutline/layout"
	"github.com/tsawler/cvoutline/layoutjson"
	"github.com/tsawler/cvoutline/model"
	"github.com/tsawler/cvoutline/sections"
)

// InMemorySource names documents passed to FromBytes or FromDocument.
const InMemorySource = "document"

// Result is everything produced for one document.
type Result struct {
	// Source is the file name, or InMemorySource
	Source string `json:"source"`

	Outline  *model.Outline          `json:"outline"`
	Profile  *model.CandidateProfile `json:"profile"`
	Sections []model.Section         `json:"sections"`

	// Boilerplate lists the running headers and footers left out of sections
	Boilerplate []layout.RepeatedText `json:"boilerplate,omitempty"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// BoilerplateSummary describes the removed headers and footers in one line.
func (r *Result) BoilerplateSummary() string {
	return (&layout.RepeatedContentResult{Repeated: r.Boilerplate}).Summary()
}

// Processor provides a fluent interface for extracting an outline and a
// candidate profile from a layout document. Each configuration method
// returns a new Processor, so a configured Processor can be shared and
// chained safely.
type Processor struct {
	// Source (exactly one is set)
	filename string
	data     []byte
	doc      *model.Document

	options ProcessOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Processor with a copy of options.
func (p *Processor) clone() *Processor {
	return &Processor{
		filename: p.filename,
		data:     p.data,
		doc:      p.doc,
		options:  p.options.clone(),
		err:      p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Processor instance)
// ============================================================================

// WithConfig replaces the engine configuration. An invalid configuration
// is reported by the terminal operation.
//
// Example:
//
//	cfg := layout.DefaultConfig()
//	cfg.MinHeadingScore = 4
//	outline, _, err := cvoutline.Open("resume.json").WithConfig(cfg).Outline()
func (p *Processor) WithConfig(config layout.Config) *Processor {
	newProc := p.clone()
	if err := config.Validate(); err != nil && newProc.err == nil {
		newProc.err = fmt.Errorf("invalid config: %w", err)
	}
	newProc.options.config = config
	return newProc
}

// WithLogger sets the logger used for debug output. A nil logger discards.
func (p *Processor) WithLogger(logger *slog.Logger) *Processor {
	newProc := p.clone()
	if logger == nil {
		logger = discardLogger
	}
	newProc.options.logger = logger
	return newProc
}

// Strict validates layout JSON against its schema before decoding. It has
// no effect on documents passed to FromDocument.
func (p *Processor) Strict() *Processor {
	newProc := p.clone()
	newProc.options.strict = true
	return newProc
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Source returns the name used for the document in results and logs.
func (p *Processor) Source() string {
	if p.filename != "" {
		return filepath.Base(p.filename)
	}
	return InMemorySource
}

// Document returns the layout document, decoding it first if needed.
func (p *Processor) Document() (*model.Document, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.doc != nil {
		return p.doc, nil
	}

	opts := layoutjson.Options{Strict: p.options.strict}

	if p.data != nil {
		doc, err := layoutjson.Decode(p.data, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to decode layout: %w", err)
		}
		return doc, nil
	}

	if p.filename == "" {
		return nil, fmt.Errorf("no document specified")
	}

	r, err := layoutjson.Open(p.filename, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p.filename, err)
	}
	defer r.Close()

	return r.Document(), nil
}

// Analyze runs the outline engine and returns its full intermediate result.
//
// Example:
//
//	analysis, err := cvoutline.Open("resume.json").Analyze()
//	fmt.Println(analysis.BodyTextSize, analysis.Repeated.Summary())
func (p *Processor) Analyze() (*layout.Analysis, error) {
	doc, err := p.Document()
	if err != nil {
		return nil, err
	}
	return p.analyze(doc), nil
}

func (p *Processor) analyze(doc *model.Document) *layout.Analysis {
	analysis := layout.NewAnalyzerWithConfig(p.options.config).Analyze(doc)

	p.options.logger.Debug("outline built",
		"source", p.Source(),
		"pages", doc.PageCount(),
		"title", analysis.Outline.Title,
		"headings", analysis.Outline.HeadingCount(),
		"body_size", analysis.BodyTextSize,
		"boilerplate", len(analysis.Boilerplate),
	)
	if analysis.Repeated.HasRepeated() {
		p.options.logger.Debug("repeated content",
			"source", p.Source(),
			"summary", analysis.Repeated.Summary(),
			"page_numbers", len(analysis.Repeated.PageNumbers()),
		)
	}
	return analysis
}

// Outline returns the document title and its ranked headings. A document
// without text yields the "No Text Found" outline and a WarnEmptyDocument
// warning rather than an error.
//
// Example:
//
//	outline, warnings, err := cvoutline.Open("resume.json").Outline()
//	for _, h := range outline.Headings {
//	    fmt.Println(h.Level, h.Text)
//	}
func (p *Processor) Outline() (*model.Outline, []Warning, error) {
	doc, err := p.Document()
	if err != nil {
		return nil, nil, err
	}

	analysis := p.analyze(doc)

	var warnings []Warning
	switch {
	case analysis.IsEmpty():
		warnings = append(warnings, emptyWarning())
	case analysis.Outline.HeadingCount() == 0:
		warnings = append(warnings, noHeadingsWarning())
	}
	return analysis.Outline, warnings, nil
}

// Profile returns the candidate profile of the document.
//
// Example:
//
//	profile, _, err := cvoutline.Open("resume.json").Profile()
//	fmt.Println(profile.PersonalInfo.Name, len(profile.Experience))
func (p *Processor) Profile() (*model.CandidateProfile, []Warning, error) {
	res, err := p.Result()
	if err != nil {
		return nil, nil, err
	}
	return res.Profile, res.Warnings, nil
}

// Result runs the whole pipeline: outline, segmentation and classification.
func (p *Processor) Result() (*Result, error) {
	doc, err := p.Document()
	if err != nil {
		return nil, err
	}

	analysis := p.analyze(doc)
	res := &Result{
		Source:      p.Source(),
		Outline:     analysis.Outline,
		Boilerplate: analysis.Repeated.Repeated,
	}

	if analysis.IsEmpty() {
		res.Profile = model.NewCandidateProfile(layout.NoTextTitle)
		res.Sections = []model.Section{}
		res.Warnings = []Warning{emptyWarning()}
		p.options.logger.Warn("no text extracted", "source", res.Source)
		return res, nil
	}

	segmented := sections.NewSegmenter(analysis.Boilerplate).Segment(doc, analysis.Outline)
	for _, h := range segmented.Unresolved {
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnUnresolvedHeading,
			Message: fmt.Sprintf("heading %q not found on its page", h.Text),
			Page:    h.Page,
		})
		p.options.logger.Debug("heading not relocated", "source", res.Source, "heading", h.Text, "page", h.Page)
	}
	if segmented.IsFallback() {
		res.Warnings = append(res.Warnings, noHeadingsWarning())
	}

	res.Profile, res.Sections = sections.NewClassifier().Classify(doc, analysis.Outline.Title, segmented.Segments)

	p.options.logger.Debug("profile built",
		"source", res.Source,
		"sections", len(res.Sections),
		"experience", len(res.Profile.Experience),
		"education", len(res.Profile.Education),
		"skills", len(res.Profile.Skills),
		"other", len(res.Profile.Other),
	)
	return res, nil
}

func emptyWarning() Warning {
	return Warning{Code: WarnEmptyDocument, Message: layout.ErrNoText.Error()}
}

func noHeadingsWarning() Warning {
	return Warning{Code: WarnNoHeadings, Message: "no headings detected; document kept as one section"}
}
