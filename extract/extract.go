// Package extract produces the plain-text content of a PDF document.
//
// Extraction tries the document's embedded text layer first. When a document
// has no usable text layer (scanned or image-only PDFs), it falls back to
// recognizing text in the page images. A document from which neither
// strategy recovers any text fails with an error wrapping ErrNoText.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/unicode/norm"

	"github.com/naanu1/pdf-comparison/pkg/metrics"
)

// ErrNoText reports that no text could be recovered from a document by any
// strategy. Callers must not proceed with such a document: treating it as
// empty would classify every line of the other document as added or removed.
var ErrNoText = errors.New("no text could be extracted")

// Error wraps any failure to turn a document into text, so callers can
// distinguish an unreadable document from an internal fault.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "extract: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Options configures an Extractor.
type Options struct {
	// Language is the OCR language passed to the recognition engine,
	// e.g. "eng" or "eng+fra". Empty keeps the engine default.
	Language string

	// DisableOCR skips the image-recognition fallback entirely.
	DisableOCR bool

	// MaxPages caps how many pages are read. Zero means all pages.
	MaxPages int

	// Logger receives page-level degradation warnings. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// Extractor extracts text from PDF documents. It holds no per-document
// state and is safe for concurrent use.
type Extractor struct {
	opts Options
	log  *slog.Logger
}

// New creates an Extractor with the given options.
func New(opts Options) *Extractor {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{opts: opts, log: log}
}

// Extract returns the full textual content of the document, pages in order,
// separated by newlines. The input bytes are only read for the duration of
// the call. Extraction honors ctx between pages and cleans up all temporary
// artifacts on every exit path.
func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &Error{Err: errors.New("empty document")}
	}

	text, err := e.extractDirect(ctx, data)
	if err != nil {
		return "", wrap(err)
	}

	if strings.TrimSpace(text) == "" && !e.opts.DisableOCR {
		e.log.Info("no text layer found, falling back to image recognition")
		text, err = e.extractRecognized(ctx, data)
		if err != nil {
			return "", wrap(err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", &Error{Err: ErrNoText}
	}

	return normalize(text), nil
}

// normalize applies NFC so equivalent byte representations of the same
// characters never show up as diffs.
func normalize(text string) string {
	return norm.NFC.String(text)
}

// wrap classifies a strategy failure: context errors pass through untouched,
// everything else becomes an extraction Error.
func wrap(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &Error{Err: err}
}

// extractDirect reads the embedded text layer page by page. A page whose
// text cannot be read contributes nothing rather than failing the document.
func (e *Extractor) extractDirect(ctx context.Context, data []byte) (text string, err error) {
	timer := prometheus.NewTimer(metrics.ExtractionDuration.WithLabelValues("direct"))
	defer timer.ObserveDuration()

	// The parser indexes into malformed font tables on some corrupt
	// documents; surface that as an ordinary extraction failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	total := r.NumPage()
	if e.opts.MaxPages > 0 && total > e.opts.MaxPages {
		total = e.opts.MaxPages
	}

	var buf strings.Builder
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		pageText, err := p.GetPlainText(nil)
		if err != nil {
			e.log.Warn("page text extraction failed", "page", i, "error", err)
			continue
		}

		buf.WriteString(pageText)
		// Page boundary, so line diffing never merges the last line of
		// one page with the first line of the next.
		buf.WriteString("\n")
	}

	return buf.String(), nil
}
