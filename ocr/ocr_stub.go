//go:build !ocr

// Package ocr recognizes text in page images of scanned PDFs.
//
// This is the stub used when the "ocr" build tag is not set: every operation
// reports ErrNotEnabled. Rebuild with the tag to get the Tesseract-backed
// implementation:
//
//	go build -tags ocr
//
// That build requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import "errors"

// ErrNotEnabled is returned when recognition is requested but OCR support
// was not compiled in.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub recognition client.
type Client struct{}

// New reports that OCR support is not compiled in.
func New(language string) (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op. Safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Recognize reports that OCR support is not compiled in.
func (c *Client) Recognize(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}
