//go:build !ocr

// Package ocr turns scanned resume pages into the layout model.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Recognition returns ErrOCRNotEnabled; ProbeImage and BuildPage still work.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed.
package ocr

import (
	"errors"

	"github.com/tsawler/cvoutline/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode represents page segmentation modes for OCR.
type PageSegMode int

// Page segmentation modes (matching the OCR-enabled implementation).
const (
	PSM_AUTO         PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_BLOCK PageSegMode = 6  // Single uniform block of text
	PSM_SPARSE_TEXT  PageSegMode = 11 // Find as much text as possible
)

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// PageFromImage returns an error indicating OCR support is not enabled.
func (c *Client) PageFromImage(imageData []byte, pageNum int) (model.Page, error) {
	return model.Page{}, ErrOCRNotEnabled
}

// DocumentFromImages returns an error indicating OCR support is not enabled.
func (c *Client) DocumentFromImages(images [][]byte) (*model.Document, error) {
	return nil, ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}

// SetDPI returns an error indicating OCR support is not enabled.
func (c *Client) SetDPI(dpi int) error {
	return ErrOCRNotEnabled
}
