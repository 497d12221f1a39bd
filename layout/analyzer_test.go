package layout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tsawler/cvoutline/model"
)

// resumeDocument builds a small multi-page resume with a bold running footer
// on pages 2..footerPages+1
func resumeDocument(pages, footerPages int) *model.Document {
	doc := &model.Document{}
	for n := 1; n <= pages; n++ {
		var blocks []model.Block
		if n == 1 {
			blocks = append(blocks, makeBlock(
				makeLine("Jane Doe", 22, true, 250, 40, 362, 64),
				makeLine("Senior Engineer", 14, false, 240, 66, 372, 82),
			))
		}
		blocks = append(blocks,
			makeBlock(makeLine(fmt.Sprintf("Section %d", n), 14, true, 72, 120, 200, 134)),
			bodyBlock(150),
		)
		if n >= 2 && n <= footerPages+1 {
			blocks = append(blocks, makeBlock(makeLine(fmt.Sprintf("Page %d", n), 9, true, 280, 760, 330, 770)))
		}
		doc.Pages = append(doc.Pages, makePage(n, blocks...))
	}
	return doc
}

func headingTexts(outline *model.Outline) []string {
	var texts []string
	for _, h := range outline.Headings {
		texts = append(texts, h.Text)
	}
	return texts
}

func TestAnalyzer_EmptyDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  *model.Document
	}{
		{"no pages", &model.Document{}},
		{"pages without blocks", &model.Document{Pages: []model.Page{makePage(1), makePage(2)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := NewAnalyzer().Analyze(tt.doc)

			if analysis.Outline.Title != NoTextTitle {
				t.Errorf("expected %q, got %q", NoTextTitle, analysis.Outline.Title)
			}
			if analysis.Outline.Error != "no text extracted" {
				t.Errorf("unexpected error text %q", analysis.Outline.Error)
			}
			if !errors.Is(analysis.Outline.Err(), ErrNoText) {
				t.Errorf("expected ErrNoText, got %v", analysis.Outline.Err())
			}
			if analysis.Outline.Headings == nil || len(analysis.Outline.Headings) != 0 {
				t.Error("expected empty non-nil headings")
			}
			if !analysis.IsEmpty() {
				t.Error("expected IsEmpty to be true")
			}
		})
	}
}

func TestAnalyzer_RepeatedFooterIgnored(t *testing.T) {
	doc := resumeDocument(5, 4)

	analysis := NewAnalyzer().Analyze(doc)

	if analysis.IsEmpty() {
		t.Fatal("expected a non-empty analysis")
	}
	if analysis.Boilerplate.Len() != 4 {
		t.Errorf("expected 4 boilerplate lines, got %d", analysis.Boilerplate.Len())
	}
	for _, text := range headingTexts(analysis.Outline) {
		if text == "Page 2" || text == "Page 3" || text == "Page 4" || text == "Page 5" {
			t.Errorf("footer %q leaked into the outline", text)
		}
	}
	if got := len(analysis.Outline.Headings); got != 5 {
		t.Errorf("expected 5 section headings, got %d: %v", got, headingTexts(analysis.Outline))
	}
}

func TestAnalyzer_InfrequentFooterIsHeading(t *testing.T) {
	// Two occurrences is not enough to be boilerplate, and a bold short
	// isolated line scores as a heading
	doc := resumeDocument(5, 2)

	analysis := NewAnalyzer().Analyze(doc)

	if analysis.Boilerplate.Len() != 0 {
		t.Errorf("expected no boilerplate, got %d", analysis.Boilerplate.Len())
	}
	found := false
	for _, text := range headingTexts(analysis.Outline) {
		if text == "Page 2" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'Page 2' among headings, got %v", headingTexts(analysis.Outline))
	}
}

func TestAnalyzer_TitleExcludedFromHeadings(t *testing.T) {
	doc := resumeDocument(1, 0)

	analysis := NewAnalyzer().Analyze(doc)

	if analysis.Outline.Title != "Jane Doe Senior Engineer" {
		t.Errorf("unexpected title %q", analysis.Outline.Title)
	}
	if analysis.TitleKeys.Len() != 2 {
		t.Errorf("expected 2 title keys, got %d", analysis.TitleKeys.Len())
	}
	for _, h := range analysis.Outline.Headings {
		if h.Text == "Jane Doe" || h.Text == "Senior Engineer" {
			t.Errorf("title line %q appeared as a heading", h.Text)
		}
	}
	if analysis.Ignored.Len() != analysis.TitleKeys.Len()+analysis.Boilerplate.Len() {
		t.Error("expected ignored to be the union of title and boilerplate keys")
	}
}

func TestAnalyzer_LevelsAndBodySize(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{
		makePage(1,
			makeBlock(makeLine("Curriculum Vitae", 24, true, 206, 30, 406, 58)),
			makeBlock(makeLine("Experience", 16, true, 72, 120, 200, 136)),
			makeBlock(makeLine("Acme Corp", 13, true, 72, 150, 200, 163)),
			bodyBlock(170),
			makeBlock(makeLine("Education", 16, true, 72, 300, 200, 316)),
			bodyBlock(330),
		),
	}}

	analysis := NewAnalyzer().Analyze(doc)

	if analysis.BodyTextSize != 11 {
		t.Errorf("expected body size 11, got %v", analysis.BodyTextSize)
	}

	want := map[string]model.HeadingLevel{
		"Experience": model.HeadingLevel1,
		"Acme Corp":  model.HeadingLevel2,
		"Education":  model.HeadingLevel1,
	}
	if len(analysis.Outline.Headings) != len(want) {
		t.Fatalf("expected %d headings, got %v", len(want), headingTexts(analysis.Outline))
	}
	for _, h := range analysis.Outline.Headings {
		if want[h.Text] != h.Level {
			t.Errorf("%q: expected %s, got %s", h.Text, want[h.Text], h.Level)
		}
	}
	if len(analysis.Styles) != 2 {
		t.Errorf("expected 2 ranked styles, got %d", len(analysis.Styles))
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	doc := resumeDocument(6, 5)
	analyzer := NewAnalyzer()

	first := analyzer.Analyze(doc)
	for i := 0; i < 5; i++ {
		again := analyzer.Analyze(doc)
		if fmt.Sprint(headingTexts(first.Outline)) != fmt.Sprint(headingTexts(again.Outline)) {
			t.Fatalf("run %d produced a different outline", i)
		}
		if first.Outline.Title != again.Outline.Title {
			t.Fatalf("run %d produced a different title", i)
		}
	}
}
