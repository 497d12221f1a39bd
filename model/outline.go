package model

import "errors"

// ErrNoText is reported by an Outline built from a document that carried no
// text lines at all.
var ErrNoText = errors.New("no text extracted")

// HeadingLevel is the rank assigned to a heading style
type HeadingLevel string

const (
	HeadingLevel1 HeadingLevel = "H1" // Largest, left-most heading style
	HeadingLevel2 HeadingLevel = "H2"
	HeadingLevel3 HeadingLevel = "H3" // Also the fallback for unranked styles
)

// HeadingLevelFor returns the level for a zero-based style rank.
// Ranks beyond the third collapse to H3.
func HeadingLevelFor(rank int) HeadingLevel {
	switch rank {
	case 0:
		return HeadingLevel1
	case 1:
		return HeadingLevel2
	default:
		return HeadingLevel3
	}
}

// Depth returns the nesting depth of the level (H1 = 0)
func (l HeadingLevel) Depth() int {
	switch l {
	case HeadingLevel1:
		return 0
	case HeadingLevel2:
		return 1
	default:
		return 2
	}
}

// OutlineEntry is a single heading in the document outline
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
	BBox  Rect         `json:"bbox"`
}

// Outline is the logical structure of a document: a title and its headings
// in reading order. Entries are never modified once the outline is built.
type Outline struct {
	Title    string         `json:"title"`
	Headings []OutlineEntry `json:"outline"`

	// Error is set only for documents without any text
	Error string `json:"error,omitempty"`
}

// Err returns ErrNoText when the outline is the empty-document sentinel
func (o *Outline) Err() error {
	if o != nil && o.Error != "" {
		return ErrNoText
	}
	return nil
}

// HeadingCount returns the number of headings in the outline
func (o *Outline) HeadingCount() int {
	if o == nil {
		return 0
	}
	return len(o.Headings)
}

// HeadingsAtLevel returns all headings at a specific level
func (o *Outline) HeadingsAtLevel(level HeadingLevel) []OutlineEntry {
	if o == nil {
		return nil
	}

	var result []OutlineEntry
	for _, h := range o.Headings {
		if h.Level == level {
			result = append(result, h)
		}
	}
	return result
}
