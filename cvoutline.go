// Package cvoutline provides a fluent API for reconstructing the outline of a
// resume and segmenting it into a structured candidate profile.
//
// Basic usage:
//
//	profile, warnings, err := cvoutline.Open("resume.json").Profile()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", cvoutline.FormatWarnings(warnings))
//	}
//
// With options:
//
//	outline, _, err := cvoutline.Open("resume.json").
//	    Strict().
//	    WithLogger(logger).
//	    Outline()
//
// Documents built in memory (for example by the ocr package) are processed
// with FromDocument. The lower-level layout and sections packages are also
// available.
package cvoutline

import (
	"github.com/tsawler/cvoutline/model"
)

// Open returns a Processor for a layout JSON file. The file is read when a
// terminal operation such as Outline or Profile is called.
//
// Example:
//
//	outline, warnings, err := cvoutline.Open("resume.json").Outline()
func Open(filename string) *Processor {
	return &Processor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument returns a Processor for a document that is already in memory.
// The document is only read.
//
// Example:
//
//	doc, err := client.DocumentFromImages(images)
//	if err != nil {
//	    // handle error
//	}
//	profile, _, err := cvoutline.FromDocument(doc).Profile()
func FromDocument(doc *model.Document) *Processor {
	return &Processor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// FromBytes returns a Processor for layout JSON held in memory.
func FromBytes(data []byte) *Processor {
	return &Processor{
		data:    data,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := cvoutline.Must(cvoutline.Open("resume.json").Result())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue is a helper that wraps a call to Outline() or Profile() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	outline := cvoutline.MustValue(cvoutline.Open("resume.json").Outline())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
