package layout

import (
	"math"
	"testing"

	"github.com/tsawler/cvoutline/model"
)

func TestDetectBodyTextSize(t *testing.T) {
	config := DefaultConfig()

	t.Run("default without body lines", func(t *testing.T) {
		doc := &model.Document{Pages: []model.Page{
			makePage(1, makeBlock(makeLine("Short line", 11, false, 72, 100, 200, 112))),
		}}
		if got := DetectBodyTextSize(doc, config); got != config.DefaultBodyTextSize {
			t.Errorf("expected default %v, got %v", config.DefaultBodyTextSize, got)
		}
	})

	t.Run("median of rounded sizes", func(t *testing.T) {
		doc := &model.Document{Pages: []model.Page{
			makePage(1,
				bodyBlock(100), // two 11pt lines
				makeBlock(makeLine("one two three four five six seven", 12.4, false, 72, 200, 540, 212)),
				// Bold and short lines do not count
				makeBlock(makeLine("one two three four five six seven", 20, true, 72, 300, 540, 320)),
				makeBlock(makeLine("one two three four five six", 20, false, 72, 400, 540, 420)),
			),
		}}
		if got := DetectBodyTextSize(doc, config); got != 11 {
			t.Errorf("expected 11, got %v", got)
		}
	})

	t.Run("even count averages", func(t *testing.T) {
		doc := &model.Document{Pages: []model.Page{
			makePage(1,
				makeBlock(makeLine("one two three four five six seven", 10, false, 72, 100, 540, 112)),
				makeBlock(makeLine("one two three four five six seven", 11, false, 72, 200, 540, 212)),
			),
		}}
		if got := DetectBodyTextSize(doc, config); got != 10.5 {
			t.Errorf("expected 10.5, got %v", got)
		}
	})
}

func TestHeadingScorer_Disqualified(t *testing.T) {
	scorer := NewHeadingScorer(DefaultConfig(), 10)
	disqualified := DefaultConfig().Heading.Disqualified

	mixed := model.Line{
		Spans: []model.Span{makeSpan("Mixed", 14, true), makeSpan("Sizes", 10, true)},
		BBox:  model.NewRect(72, 100, 200, 114),
	}

	tests := []struct {
		name string
		line model.Line
	}{
		{"url", makeLine("Portfolio https://example.com/jane", 14, true, 72, 100, 300, 114)},
		{"www", makeLine("Site www.example.net", 14, true, 72, 100, 300, 114)},
		{"file name", makeLine("Download resume.pdf", 14, true, 72, 100, 300, 114)},
		{"domain", makeLine("jane@example.com", 14, true, 72, 100, 300, 114)},
		{"too long", makeLine("One Two Three Four Five Six Seven Eight Nine Ten Eleven Twelve Thirteen Fourteen Fifteen Sixteen", 14, true, 72, 100, 540, 114)},
		{"period", makeLine("A Sentence.", 14, true, 72, 100, 300, 114)},
		{"comma", makeLine("Heading,", 14, true, 72, 100, 300, 114)},
		{"mixed sizes", mixed},
		{"no spans", model.Line{BBox: model.NewRect(72, 100, 200, 114)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := makeBlock(tt.line)
			if got := scorer.Score(tt.line, block); got != disqualified {
				t.Errorf("expected %v, got %v", disqualified, got)
			}
		})
	}
}

func TestHeadingScorer_Terms(t *testing.T) {
	scorer := NewHeadingScorer(DefaultConfig(), 10)
	other := makeLine("another line in the same block", 10, false, 72, 130, 400, 142)

	tests := []struct {
		name     string
		line     model.Line
		isolated bool
		want     float64
	}{
		// (14-10)*3 + bold 2.5 + title 1.5 + short 1 + isolated 3
		{"bold title case isolated", makeLine("Work Experience", 14, true, 72, 100, 200, 114), true, 20},
		// upper 2 + short 1 + isolated 3, not title case
		{"upper body size", makeLine("SKILLS", 10, false, 72, 100, 200, 112), true, 6},
		// numbered 2 + short 1 + colon 2, not isolated
		{"numbered colon", makeLine("1. overview:", 10, false, 72, 100, 200, 112), false, 5},
		// -(10-8) + title 1.5 + short 1 - small penalty 3
		{"small not bold", makeLine("Note", 8, false, 72, 100, 200, 110), false, -2.5},
		// -(10-8) + bold 2.5 + title 1.5 + short 1, no small penalty
		{"small bold", makeLine("Note", 8, true, 72, 100, 200, 110), false, 3},
		// ten words: no short-line bonus
		{"ten words", makeLine("one two three four five six seven eight nine ten", 10, false, 72, 100, 400, 112), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := makeBlock(tt.line)
			if !tt.isolated {
				block = makeBlock(tt.line, other)
			}
			if got := scorer.Score(tt.line, block); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHeadingScorer_MonotonicInSize(t *testing.T) {
	scorer := NewHeadingScorer(DefaultConfig(), 10)

	prev := math.Inf(-1)
	for size := 11.0; size <= 30; size++ {
		line := makeLine("Education", size, false, 72, 100, 200, 100+size)
		score := scorer.Score(line, makeBlock(line))
		if score <= prev {
			t.Fatalf("score did not increase at size %v: %v <= %v", size, score, prev)
		}
		prev = score
	}
}

func TestHeadingScorer_FontSizeRatio(t *testing.T) {
	config := DefaultConfig()
	config.FontSizeRatio = 1.5

	scorer := NewHeadingScorer(config, 10)
	line := makeLine("education", 12, false, 72, 100, 200, 114)
	block := makeBlock(line, makeLine("more text here", 10, false, 72, 120, 200, 132))

	// 12 is above body but below 10*1.5: neither bonus nor penalty
	if got := scorer.Score(line, block); got != 1 {
		t.Errorf("expected only the short-line bonus, got %v", got)
	}
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"SKILLS", true},
		{"WORK HISTORY 2020", true},
		{"Skills", false},
		{"2020", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isUpper(tt.text); got != tt.want {
			t.Errorf("isUpper(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsTitleCase(t *testing.T) {
	scorer := NewHeadingScorer(DefaultConfig(), 10)
	tests := []struct {
		text string
		want bool
	}{
		{"Work Experience", true},
		{"Technical Skills:", true},
		{"Work experience", false},
		{"WORK EXPERIENCE", false},
		{"2020 - 2024", false},
		// Possessives stay title case: the letter after an apostrophe is
		// part of the same word
		{"Bachelor's Degree", true},
		{"Master's Thesis", true},
		{"Bachelor'S Degree", false},
	}
	for _, tt := range tests {
		if got := scorer.isTitleCase(tt.text); got != tt.want {
			t.Errorf("isTitleCase(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestStyleOf(t *testing.T) {
	line := model.Line{Spans: []model.Span{makeSpan("A", 14.2, false), makeSpan("B", 13.8, true)}}
	style, ok := styleOf(line)
	if !ok {
		t.Fatal("expected a style")
	}
	if style.Size != 14 || !style.Bold {
		t.Errorf("unexpected style %+v", style)
	}

	tied := model.Line{Spans: []model.Span{makeSpan("A", 12, false), makeSpan("B", 16, false)}}
	if _, ok := styleOf(tied); ok {
		t.Error("expected no style for a tied mode")
	}
	if _, ok := styleOf(model.Line{}); ok {
		t.Error("expected no style without spans")
	}
}

func TestOutlineBuilder_RankStyles(t *testing.T) {
	candidate := func(size int, bold bool, x0 float64) HeadingCandidate {
		return HeadingCandidate{
			Line:     makeLine("Heading", float64(size), bold, x0, 0, x0+100, 10),
			Style:    StyleKey{Size: size, Bold: bold},
			HasStyle: true,
		}
	}

	candidates := []HeadingCandidate{
		candidate(14, true, 72),
		candidate(18, true, 72),
		candidate(14, false, 90), // same size as the first, further right
		candidate(12, true, 72),
		candidate(20, false, 100),
		candidate(14, true, 80), // second member of the first style
		{Text: "no style"},
	}

	styles := NewOutlineBuilder().RankStyles(candidates)

	want := []struct {
		key   StyleKey
		level model.HeadingLevel
	}{
		{StyleKey{20, false}, model.HeadingLevel1},
		{StyleKey{18, true}, model.HeadingLevel2},
		{StyleKey{14, true}, model.HeadingLevel3},
		{StyleKey{14, false}, ""},
		{StyleKey{12, true}, ""},
	}

	if len(styles) != len(want) {
		t.Fatalf("expected %d styles, got %d", len(want), len(styles))
	}
	for i, w := range want {
		if styles[i].Key != w.key || styles[i].Level != w.level {
			t.Errorf("style %d: got %+v, want key %+v level %q", i, styles[i], w.key, w.level)
		}
	}
	if styles[2].Count != 2 || styles[2].MedianX0 != 76 {
		t.Errorf("expected two members with median x0 76, got %+v", styles[2])
	}
}

func TestOutlineBuilder_AtMostThreeLevels(t *testing.T) {
	var blocks []model.Block
	y := 100.0
	for size := 24.0; size >= 12; size -= 2 {
		blocks = append(blocks, makeBlock(makeLine("Section Heading", size, true, 72, y, 300, y+size)))
		blocks = append(blocks, bodyBlock(y+30))
		y += 80
	}
	doc := &model.Document{Pages: []model.Page{makePage(1, blocks...)}}

	scorer := NewHeadingScorer(DefaultConfig(), DetectBodyTextSize(doc, DefaultConfig()))
	outline, candidates := NewOutlineBuilder().Build(doc, KeySet{}, "Title", scorer)

	if len(candidates) != 7 {
		t.Fatalf("expected 7 candidates, got %d", len(candidates))
	}

	levels := make(map[model.HeadingLevel]int)
	for _, h := range outline.Headings {
		levels[h.Level]++
	}
	if len(levels) > 3 {
		t.Errorf("expected at most 3 levels, got %v", levels)
	}
	if outline.Headings[0].Level != model.HeadingLevel1 || outline.Headings[1].Level != model.HeadingLevel2 {
		t.Errorf("expected largest styles first, got %v %v", outline.Headings[0].Level, outline.Headings[1].Level)
	}
	for _, h := range outline.Headings[2:] {
		if h.Level != model.HeadingLevel3 {
			t.Errorf("expected H3 for %v, got %v", h.BBox, h.Level)
		}
	}
}

func TestOutlineBuilder_NoCandidates(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{makePage(1, bodyBlock(100), bodyBlock(200))}}
	scorer := NewHeadingScorer(DefaultConfig(), 11)

	outline, candidates := NewOutlineBuilder().Build(doc, KeySet{}, "My Title", scorer)

	if outline.Title != "My Title" {
		t.Errorf("expected title to be kept, got %q", outline.Title)
	}
	if outline.Headings == nil || len(outline.Headings) != 0 {
		t.Errorf("expected an empty non-nil heading list, got %v", outline.Headings)
	}
	if candidates != nil {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}

func TestOutlineBuilder_ReadingOrder(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{
		makePage(1,
			makeBlock(makeLine("Experience", 14, true, 72, 100, 200, 114)),
			bodyBlock(120),
			makeBlock(makeLine("Education", 14, true, 72, 300, 200, 314)),
		),
		makePage(2,
			makeBlock(makeLine("Skills", 14, true, 72, 100, 200, 114)),
		),
	}}

	scorer := NewHeadingScorer(DefaultConfig(), 11)
	outline, _ := NewOutlineBuilder().Build(doc, KeySet{}, "", scorer)

	var got []string
	for _, h := range outline.Headings {
		got = append(got, h.Text)
	}
	want := []string{"Experience", "Education", "Skills"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if outline.Headings[2].Page != 2 {
		t.Errorf("expected Skills on page 2, got %d", outline.Headings[2].Page)
	}
}

func TestMedianAndMode(t *testing.T) {
	if got := median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("median odd = %v", got)
	}
	if got := median(nil); got != 0 {
		t.Errorf("median empty = %v", got)
	}
	if v, ok := mode([]int{12, 12, 14}); !ok || v != 12 {
		t.Errorf("mode = %v %v", v, ok)
	}
	if _, ok := mode([]int{12, 14}); ok {
		t.Error("expected tie to report no mode")
	}
	if roundSize(10.5) != 10 || roundSize(11.5) != 12 || roundSize(11.49) != 11 {
		t.Error("roundSize should round half to even")
	}
}
