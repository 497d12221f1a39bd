package sections

import (
	"regexp"
	"strings"

	"github.com/tsawler/cvoutline/model"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phonePattern accepts an optional +country code, an optional
	// parenthesized area code and optional dash or space separators. The
	// separators never span a line break.
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[ -]?(?:\(\d{2,4}\)[ -]?)?|\(\d{2,4}\)[ -]?|\b)\d{3,4}[ -]?\d{3,4}(?:[ -]?\d{1,4})?\b`)
)

// ExtractPersonalInfo reads contact details from the block at the top of a
// resume. The first line is taken as the name. A nil block yields an empty
// result.
func ExtractPersonalInfo(block *model.Block) model.PersonalInfo {
	var info model.PersonalInfo
	if block == nil || len(block.Lines) == 0 {
		return info
	}

	lines := make([]string, len(block.Lines))
	for i, l := range block.Lines {
		lines[i] = l.Text()
	}

	info.Name = lines[0]
	info.RawText = strings.Join(lines, "\n")
	info.Email = findEmail(info.RawText)
	info.Phone = findPhone(info.RawText)
	return info
}

func findEmail(text string) *string {
	if m := emailPattern.FindString(text); m != "" {
		return &m
	}
	return nil
}

func findPhone(text string) *string {
	if m := phonePattern.FindString(text); m != "" {
		return &m
	}
	return nil
}
