// Package sections splits a document into the text between its outline
// headings and classifies that text into a candidate profile.
//
//	analysis := layout.NewAnalyzer().Analyze(doc)
//	segments := sections.NewSegmenter(analysis.Boilerplate).Segment(doc, analysis.Outline)
//	profile, _ := sections.NewClassifier().Classify(doc, analysis.Outline.Title, segments.Segments)
//
// Headings are matched against keyword sets in a fixed precedence
// (education, experience, skills, contact). Everything else is kept under
// its own heading in the profile's Other map.
package sections
