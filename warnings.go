package cvoutline

import (
	"fmt"
	"strings"
)

// WarningCode identifies the kind of non-fatal issue met while processing.
type WarningCode string

const (
	// WarnEmptyDocument means the document carried no text at all
	WarnEmptyDocument WarningCode = "empty_document"

	// WarnUnresolvedHeading means an outline heading could not be found on
	// its page and was left out of segmentation
	WarnUnresolvedHeading WarningCode = "unresolved_heading"

	// WarnNoHeadings means no heading was detected and the whole document
	// became a single catch-all section
	WarnNoHeadings WarningCode = "no_headings"
)

// Warning describes a condition where processing succeeded but the result
// may be less useful than expected.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
	Page    int         `json:"page,omitempty"` // 0 when not tied to a page
}

// String returns the warning as "code: message", with the page when known.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s: %s (page %d)", w.Code, w.Message, w.Page)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// HasWarning reports whether any warning carries the given code.
func HasWarning(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
