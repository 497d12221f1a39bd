package sections

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/cvoutline/model"
)

const (
	minSentenceWords = 3
	maxSentenceWords = 20
)

var sentenceBreak = regexp.MustCompile(`[.!?]`)

// actionWords are verbs that usually open an accomplishment bullet
var actionWords = map[string]struct{}{
	"developed": {}, "led": {}, "managed": {}, "designed": {},
	"implemented": {}, "organized": {}, "conducted": {}, "created": {},
	"built": {}, "optimized": {}, "increased": {}, "supported": {},
	"recruited": {}, "achieved": {}, "published": {}, "ranked": {},
}

// ExtractHighlights returns the short sentences of a section and the action
// verbs it uses, sorted and without duplicates
func ExtractHighlights(text string) model.Highlights {
	h := model.Highlights{ShortSentences: []string{}, ActionWords: []string{}}

	for _, s := range sentenceBreak.Split(text, -1) {
		s = strings.TrimSpace(s)
		n := len(strings.Fields(s))
		if s != "" && n >= minSentenceWords && n <= maxSentenceWords {
			h.ShortSentences = append(h.ShortSentences, s)
		}
	}

	seen := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:!?()[]\"'")
		if _, ok := actionWords[w]; ok && !seen[w] {
			seen[w] = true
			h.ActionWords = append(h.ActionWords, w)
		}
	}
	sort.Strings(h.ActionWords)

	return h
}
