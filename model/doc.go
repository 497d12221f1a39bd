// Package model defines the data structures shared by the outline engine.
//
// The input side is the layout model produced by a PDF renderer:
//
//	Document → []Page → []Block → []Line → []Span
//
// Every level carries geometry in page coordinates with the origin at the
// top-left corner of the page (see [Rect]). The engine treats a [Document]
// as read-only and never re-orders its contents.
//
// The output side is the [Outline] (title plus ranked headings), the
// classified [Section] list, and the [CandidateProfile].
//
// # Profile JSON
//
// [CandidateProfile] serialises with the field names title, personal_info,
// experience, education, skills and other. Use [NewCandidateProfile] so empty
// lists encode as [] instead of null.
package model
