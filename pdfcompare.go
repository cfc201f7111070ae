// Package pdfcompare compares the textual content of two PDF documents and
// classifies every line as added, removed, modified, or unchanged.
//
// Basic usage:
//
//	result, err := pdfcompare.Compare(ctx, oldPDF, newPDF)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("%d lines changed\n", result.Summary.Modified)
//
// With options:
//
//	result, err := pdfcompare.New().
//	    Language("eng+deu").
//	    MaxPages(50).
//	    Compare(ctx, oldPDF, newPDF)
//
// Extraction of the two documents runs concurrently; scanned documents fall
// back to OCR (see the ocr package for build requirements). For lower-level
// control the extract and diff packages are also available.
package pdfcompare

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/naanu1/pdf-comparison/diff"
	"github.com/naanu1/pdf-comparison/extract"
)

// Result is the classified comparison of two documents. Changes appear in
// the order they occur reading the aligned documents top to bottom; the
// summary counts are always derived from the change sequence.
type Result struct {
	Changes []diff.Change `json:"differences"`
	Summary diff.Summary  `json:"summary"`
}

// Comparer configures and runs comparisons. Each configuration method
// returns a new Comparer, making it safe for concurrent use and allowing
// method chaining.
type Comparer struct {
	options CompareOptions
}

// New creates a Comparer with default options.
func New() *Comparer {
	return &Comparer{options: defaultOptions()}
}

// clone creates a copy of the Comparer so chained configuration never
// mutates the receiver.
func (c *Comparer) clone() *Comparer {
	return &Comparer{options: c.options.clone()}
}

// Language sets the OCR language used for scanned documents.
//
// Example:
//
//	result, err := pdfcompare.New().Language("eng+fra").Compare(ctx, a, b)
func (c *Comparer) Language(lang string) *Comparer {
	newCmp := c.clone()
	newCmp.options.language = lang
	return newCmp
}

// WithoutOCR disables the image-recognition fallback. Image-only documents
// then fail extraction instead of being recognized.
func (c *Comparer) WithoutOCR() *Comparer {
	newCmp := c.clone()
	newCmp.options.disableOCR = true
	return newCmp
}

// MaxPages caps how many pages are read from each document (0 = all).
func (c *Comparer) MaxPages(n int) *Comparer {
	newCmp := c.clone()
	newCmp.options.maxPages = n
	return newCmp
}

// Compare extracts the text of both documents concurrently, then diffs the
// two texts line by line. The two extractions are independent; the diff is
// the join point and runs once both are done. A document from which no text
// can be recovered fails the comparison with an error identifying which
// document was unreadable (errors.As against *extract.Error).
func (c *Comparer) Compare(ctx context.Context, oldPDF, newPDF []byte) (*Result, error) {
	extractor := extract.New(extract.Options{
		Language:   c.options.language,
		DisableOCR: c.options.disableOCR,
		MaxPages:   c.options.maxPages,
	})

	var oldText, newText string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := extractor.Extract(gctx, oldPDF)
		if err != nil {
			return fmt.Errorf("first document: %w", err)
		}
		oldText = text
		return nil
	})
	g.Go(func() error {
		text, err := extractor.Extract(gctx, newPDF)
		if err != nil {
			return fmt.Errorf("second document: %w", err)
		}
		newText = text
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	changes, summary := diff.Diff(oldText, newText)
	return &Result{Changes: changes, Summary: summary}, nil
}

// Compare runs a comparison with default options.
func Compare(ctx context.Context, oldPDF, newPDF []byte) (*Result, error) {
	return New().Compare(ctx, oldPDF, newPDF)
}
