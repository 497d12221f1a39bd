// Package layout reconstructs a document outline from the layout model.
//
// The [Analyzer] runs three stages over a [model.Document]:
//
//	analysis := layout.NewAnalyzer().Analyze(doc)
//	fmt.Println(analysis.Outline.Title)
//	for _, h := range analysis.Outline.Headings {
//	    fmt.Println(h.Level, h.Text, h.Page)
//	}
//
// # Stages
//
//   - [RepeatedContentFilter] - finds running headers/footers repeated across pages
//   - [TitleDetector] - picks the title block by size, centering and position
//   - [HeadingScorer] and [OutlineBuilder] - score lines for headingness,
//     cluster candidates by [StyleKey] and assign H1..H3
//
// Stages never mark lines in place. Each returns a [KeySet] of [LineKey]
// values that later stages consult.
//
// # Configuration
//
// All weights and thresholds live in a single [Config]:
//
//	config := layout.DefaultConfig()
//	config.MinHeadingScore = 4
//	analyzer := layout.NewAnalyzerWithConfig(config)
package layout
