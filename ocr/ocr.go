//go:build ocr

// Package ocr turns scanned resume pages into the layout model.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/cvoutline/model"
)

// PageSegMode is the Tesseract page segmentation mode.
type PageSegMode = gosseract.PageSegMode

// Page segmentation modes used for resumes.
const (
	PSM_AUTO         = gosseract.PSM_AUTO
	PSM_SINGLE_BLOCK = gosseract.PSM_SINGLE_BLOCK
	PSM_SPARSE_TEXT  = gosseract.PSM_SPARSE_TEXT
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
	dpi    int
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client, dpi: DefaultDPI}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage returns the plain text of a page image, without layout.
// It is the quick check of what Tesseract reads before building layout JSON.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if _, err := ProbeImage(imageData); err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// PageFromImage recognises a page image and returns it as a layout page
// with one span per word.
func (c *Client) PageFromImage(imageData []byte, pageNum int) (model.Page, error) {
	info, err := ProbeImage(imageData)
	if err != nil {
		return model.Page{}, err
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return model.Page{}, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxesVerbose()
	if err != nil {
		return model.Page{}, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]WordBox, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, WordBox{
			Text:       b.Word,
			Box:        b.Box,
			Confidence: b.Confidence,
			Block:      b.BlockNum,
			Paragraph:  b.ParNum,
			Line:       b.LineNum,
		})
	}

	return BuildPage(words, pageNum, info, c.dpi), nil
}

// DocumentFromImages recognises each image as one page, in order.
func (c *Client) DocumentFromImages(images [][]byte) (*model.Document, error) {
	doc := &model.Document{Pages: make([]model.Page, 0, len(images))}
	for i, data := range images {
		page, err := c.PageFromImage(data, i+1)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode sets the page segmentation mode, 0 through 13.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	if mode < 0 || mode > gosseract.PSM_RAW_LINE {
		return fmt.Errorf("invalid page segmentation mode %d", mode)
	}
	return c.client.SetPageSegMode(mode)
}

// SetDPI sets the scan resolution used to convert pixels to points.
func (c *Client) SetDPI(dpi int) error {
	if dpi <= 0 {
		return fmt.Errorf("invalid DPI %d", dpi)
	}
	c.dpi = dpi
	return nil
}
