// Package export renders outlines and candidate profiles as JSON, Markdown,
// HTML or CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/cvoutline/model"
)

// Format defines the available export formats
type Format int

const (
	// FormatJSON exports indented JSON
	FormatJSON Format = iota
	// FormatMarkdown exports a Markdown document
	FormatMarkdown
	// FormatHTML exports a standalone HTML page
	FormatHTML
	// FormatCSV exports one row per heading or section
	FormatCSV
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// ParseFormat returns the format named s
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatJSON, fmt.Errorf("unknown format %q", s)
	}
}

// ExportConfig holds configuration options for export
type ExportConfig struct {
	// Format specifies the export format
	Format Format

	// IncludeSections adds per-section content and highlights to profile
	// output. JSON output then wraps the profile as {"profile","sections"}.
	IncludeSections bool

	// IncludePages adds page numbers to outline entries in Markdown
	IncludePages bool
}

// DefaultExportConfig returns JSON output without sections
func DefaultExportConfig() ExportConfig {
	return ExportConfig{Format: FormatJSON, IncludePages: true}
}

// Exporter writes outlines and profiles in a configured format
type Exporter struct {
	config ExportConfig
}

// NewExporter creates an exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{config: DefaultExportConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{config: config}
}

// Config returns the exporter's configuration
func (e *Exporter) Config() ExportConfig {
	return e.config
}

// ExportOutline writes an outline
func (e *Exporter) ExportOutline(outline *model.Outline, w io.Writer) error {
	if outline == nil {
		return fmt.Errorf("nil outline")
	}
	switch e.config.Format {
	case FormatJSON:
		return writeJSON(w, outline)
	case FormatMarkdown:
		_, err := io.WriteString(w, e.outlineMarkdown(outline))
		return err
	case FormatHTML:
		return renderHTML(w, outline.Title, outlineNodes(outline))
	case FormatCSV:
		return outlineCSV(w, outline)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportProfile writes a profile. sections may be nil unless
// IncludeSections is set.
func (e *Exporter) ExportProfile(profile *model.CandidateProfile, sections []model.Section, w io.Writer) error {
	if profile == nil {
		return fmt.Errorf("nil profile")
	}
	switch e.config.Format {
	case FormatJSON:
		if e.config.IncludeSections {
			if sections == nil {
				sections = []model.Section{}
			}
			return writeJSON(w, struct {
				Profile  *model.CandidateProfile `json:"profile"`
				Sections []model.Section         `json:"sections"`
			}{profile, sections})
		}
		return writeJSON(w, profile)
	case FormatMarkdown:
		_, err := io.WriteString(w, e.profileMarkdown(profile, sections))
		return err
	case FormatHTML:
		return renderHTML(w, profile.Title, e.profileNodes(profile, sections))
	case FormatCSV:
		return sectionsCSV(w, profile, sections)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportOutlineToString exports an outline to a string
func (e *Exporter) ExportOutlineToString(outline *model.Outline) (string, error) {
	var buf bytes.Buffer
	if err := e.ExportOutline(outline, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportProfileToString exports a profile to a string
func (e *Exporter) ExportProfileToString(profile *model.CandidateProfile, sections []model.Section) (string, error) {
	var buf bytes.Buffer
	if err := e.ExportProfile(profile, sections, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportProfileToFile exports a profile to a file
func (e *Exporter) ExportProfileToFile(profile *model.CandidateProfile, sections []model.Section, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return e.ExportProfile(profile, sections, f)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outlineCSV(w io.Writer, outline *model.Outline) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"level", "text", "page"}); err != nil {
		return err
	}
	for _, h := range outline.Headings {
		if err := cw.Write([]string{string(h.Level), h.Text, strconv.Itoa(h.Page)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func sectionsCSV(w io.Writer, profile *model.CandidateProfile, sections []model.Section) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "heading", "content"}); err != nil {
		return err
	}

	rows := make([][]string, 0, len(sections))
	if sections != nil {
		for _, s := range sections {
			rows = append(rows, []string{string(s.Category), s.Heading, s.Content})
		}
	} else {
		for _, c := range profileGroups(profile) {
			for _, text := range c.items {
				rows = append(rows, []string{string(c.category), c.heading, text})
			}
		}
	}

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

type profileGroup struct {
	category model.Category
	heading  string
	items    []string
}

// profileGroups lists the profile's content in a stable order: the three
// fixed lists, then other sections sorted by heading
func profileGroups(p *model.CandidateProfile) []profileGroup {
	groups := []profileGroup{
		{model.CategoryExperience, "Experience", p.Experience},
		{model.CategoryEducation, "Education", p.Education},
		{model.CategorySkills, "Skills", p.Skills},
	}
	for _, heading := range sortedKeys(p.Other) {
		groups = append(groups, profileGroup{model.CategoryOther, heading, []string{p.Other[heading]}})
	}
	return groups
}
