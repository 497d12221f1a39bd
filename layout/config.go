package layout

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RepeatConfig holds the thresholds for running header/footer detection
type RepeatConfig struct {
	// MaxWords is the word count below which a header/footer line is tracked
	// Default: 8
	MaxWords int `yaml:"max_words" json:"max_words" validate:"gte=1"`

	// MinPages: a text seen on more than this many distinct pages is boilerplate
	// Default: 2
	MinPages int `yaml:"min_pages" json:"min_pages" validate:"gte=1"`

	// LongDocumentPages: documents with more pages than this also use PageRatio
	// Default: 5
	LongDocumentPages int `yaml:"long_document_pages" json:"long_document_pages" validate:"gte=1"`

	// PageRatio is the fraction of pages a text must exceed in long documents
	// Default: 0.5
	PageRatio float64 `yaml:"page_ratio" json:"page_ratio" validate:"gt=0,lte=1"`
}

// TitleConfig holds the layout-scoring weights for title detection
type TitleConfig struct {
	// MaxLines is the largest block (in lines) considered as a title
	// Default: 4
	MaxLines int `yaml:"max_lines" json:"max_lines" validate:"gte=1"`

	// RegionRatio is the top fraction of the page a title block must start in
	// Default: 0.4
	RegionRatio float64 `yaml:"region_ratio" json:"region_ratio" validate:"gt=0,lte=1"`

	// CenterWeight is the bonus for a block centered on the page
	// Default: 15
	CenterWeight float64 `yaml:"center_weight" json:"center_weight" validate:"gte=0"`

	// PositionWeight is the bonus for a block at the very top of the page
	// Default: 5
	PositionWeight float64 `yaml:"position_weight" json:"position_weight" validate:"gte=0"`
}

// HeadingWeights are the terms of the heading score. The values are
// empirical; changing any of them changes which lines become headings.
type HeadingWeights struct {
	SizeWeight     float64 `yaml:"size_weight" json:"size_weight"`           // Per point above body size. Default: 3
	Bold           float64 `yaml:"bold" json:"bold"`                         // Default: 2.5
	Numbered       float64 `yaml:"numbered" json:"numbered"`                 // "1. " prefix. Default: 2
	TitleCase      float64 `yaml:"title_case" json:"title_case"`             // Default: 1.5
	Upper          float64 `yaml:"upper" json:"upper"`                       // Default: 2
	ShortLine      float64 `yaml:"short_line" json:"short_line"`             // Default: 1
	ShortLineWords int     `yaml:"short_line_words" json:"short_line_words"` // Default: 10
	Colon          float64 `yaml:"colon" json:"colon"`                       // Trailing ':'. Default: 2
	Isolated       float64 `yaml:"isolated" json:"isolated"`                 // Sole line in block. Default: 3
	SmallPenalty   float64 `yaml:"small_penalty" json:"small_penalty"`       // Small and not bold. Default: 3
	MaxWords       int     `yaml:"max_words" json:"max_words" validate:"gte=1"`
	Disqualified   float64 `yaml:"disqualified" json:"disqualified"` // Default: -10
}

// Config holds every tunable constant of the outline engine.
// A single Config value is passed to each call; it is never mutated.
type Config struct {
	// HeaderThreshold is the fraction of page height from the top that forms the header band
	// Default: 0.15
	HeaderThreshold float64 `yaml:"header_threshold" json:"header_threshold" validate:"gt=0,lt=1"`

	// FooterThreshold is the fraction of page height from the top where the footer band begins
	// Default: 0.85
	FooterThreshold float64 `yaml:"footer_threshold" json:"footer_threshold" validate:"gt=0,lt=1,gtfield=HeaderThreshold"`

	// MinHeadingScore is the score a line needs to become a heading candidate
	// Default: 3.0
	MinHeadingScore float64 `yaml:"min_heading_score" json:"min_heading_score"`

	// FontSizeRatio scales the body size before the size bonus applies
	// Default: 1.0
	FontSizeRatio float64 `yaml:"font_size_ratio" json:"font_size_ratio" validate:"gt=0"`

	// MinBodyTextWords: lines with more words than this (and not bold) define body text size
	// Default: 6
	MinBodyTextWords int `yaml:"min_body_text_words" json:"min_body_text_words" validate:"gte=0"`

	// TitlePageLimit is the number of leading pages searched for the title
	// Default: 2
	TitlePageLimit int `yaml:"title_page_limit" json:"title_page_limit" validate:"gte=1"`

	// DefaultBodyTextSize is used when no line qualifies as body text
	// Default: 10
	DefaultBodyTextSize float64 `yaml:"default_body_text_size" json:"default_body_text_size" validate:"gt=0"`

	// MaxLevels is the number of heading styles that receive distinct levels
	// Default: 3
	MaxLevels int `yaml:"max_levels" json:"max_levels" validate:"gte=1,lte=3"`

	Repeat  RepeatConfig   `yaml:"repeat" json:"repeat"`
	Title   TitleConfig    `yaml:"title" json:"title"`
	Heading HeadingWeights `yaml:"heading" json:"heading"`
}

// DefaultConfig returns the tuned default configuration
func DefaultConfig() Config {
	return Config{
		HeaderThreshold:     0.15,
		FooterThreshold:     0.85,
		MinHeadingScore:     3.0,
		FontSizeRatio:       1.0,
		MinBodyTextWords:    6,
		TitlePageLimit:      2,
		DefaultBodyTextSize: 10,
		MaxLevels:           3,
		Repeat: RepeatConfig{
			MaxWords:          8,
			MinPages:          2,
			LongDocumentPages: 5,
			PageRatio:         0.5,
		},
		Title: TitleConfig{
			MaxLines:       4,
			RegionRatio:    0.4,
			CenterWeight:   15,
			PositionWeight: 5,
		},
		Heading: HeadingWeights{
			SizeWeight:     3.0,
			Bold:           2.5,
			Numbered:       2.0,
			TitleCase:      1.5,
			Upper:          2.0,
			ShortLine:      1.0,
			ShortLineWords: 10,
			Colon:          2.0,
			Isolated:       3.0,
			SmallPenalty:   3.0,
			MaxWords:       15,
			Disqualified:   -10,
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the ranges declared in the validate struct tags
func (c Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", field, fe.Tag(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
