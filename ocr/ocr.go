//go:build ocr

// Package ocr recognizes text in page images of scanned PDFs.
//
// It wraps the Tesseract engine via gosseract and requires Tesseract to be
// installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// Builds without the "ocr" tag use a stub that reports ErrNotEnabled, so the
// rest of the module compiles and runs without the C dependency.
package ocr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ErrNotEnabled is never returned by this implementation; it exists so
// callers can test for it uniformly across build configurations.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client performs text recognition on image data.
// A Client is not safe for concurrent use; create one per extraction.
type Client struct {
	client *gosseract.Client
}

// New creates a recognition client for the given language (e.g. "eng",
// or "eng+fra" for multiple). An empty language keeps the engine default.
// The client must be closed to release engine resources.
func New(language string) (*Client, error) {
	client := gosseract.NewClient()
	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			client.Close()
			return nil, fmt.Errorf("set OCR language %q: %w", language, err)
		}
	}
	return &Client{client: client}, nil
}

// Close releases engine resources. Safe to call more than once.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// Recognize runs recognition on encoded image data (PNG, JPEG, TIFF, BMP)
// and returns the recognized text with surrounding whitespace trimmed.
func (c *Client) Recognize(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	return strings.TrimSpace(text), nil
}
