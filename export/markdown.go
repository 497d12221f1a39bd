package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/cvoutline/model"
)

// outlineMarkdown renders the title as a top-level heading and the outline
// as a nested list, two spaces per level
func (e *Exporter) outlineMarkdown(outline *model.Outline) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", escapeMarkdown(outline.Title))

	if outline.Error != "" {
		fmt.Fprintf(&sb, "\n_%s_\n", outline.Error)
		return sb.String()
	}
	if len(outline.Headings) == 0 {
		return sb.String()
	}

	sb.WriteString("\n")
	for _, h := range outline.Headings {
		sb.WriteString(strings.Repeat("  ", h.Level.Depth()))
		sb.WriteString("- ")
		sb.WriteString(escapeMarkdown(h.Text))
		if e.config.IncludePages {
			fmt.Fprintf(&sb, " (p. %d)", h.Page)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (e *Exporter) profileMarkdown(p *model.CandidateProfile, sections []model.Section) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", escapeMarkdown(p.Title))

	info := p.PersonalInfo
	if info.Name != "" || info.Email != nil || info.Phone != nil {
		sb.WriteString("\n## Personal Info\n\n")
		if info.Name != "" {
			fmt.Fprintf(&sb, "- **Name:** %s\n", escapeMarkdown(info.Name))
		}
		if info.Email != nil {
			fmt.Fprintf(&sb, "- **Email:** %s\n", *info.Email)
		}
		if info.Phone != nil {
			fmt.Fprintf(&sb, "- **Phone:** %s\n", *info.Phone)
		}
	}

	if e.config.IncludeSections && sections != nil {
		for _, s := range sections {
			fmt.Fprintf(&sb, "\n## %s\n\n", escapeMarkdown(s.Heading))
			fmt.Fprintf(&sb, "_%s_\n", s.Category)
			if s.Content != "" {
				fmt.Fprintf(&sb, "\n%s\n", s.Content)
			}
			if len(s.Highlights.ActionWords) > 0 {
				fmt.Fprintf(&sb, "\n**Action words:** %s\n", strings.Join(s.Highlights.ActionWords, ", "))
			}
		}
		return sb.String()
	}

	for _, g := range profileGroups(p) {
		if len(g.items) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s\n", escapeMarkdown(g.heading))
		for _, item := range g.items {
			fmt.Fprintf(&sb, "\n%s\n", item)
		}
	}
	return sb.String()
}

// escapeMarkdown escapes characters that would start inline formatting
func escapeMarkdown(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`)
	return r.Replace(s)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
