package pdfcompare

// CompareOptions holds configuration for a comparison run.
type CompareOptions struct {
	// OCR language for the recognition fallback (e.g. "eng", "eng+fra").
	language string

	// Skip the recognition fallback; image-only documents then fail fast.
	disableOCR bool

	// Cap on pages read per document. Zero means all pages.
	maxPages int
}

// defaultOptions returns the default comparison options.
func defaultOptions() CompareOptions {
	return CompareOptions{
		language:   "eng",
		disableOCR: false,
		maxPages:   0,
	}
}

// clone creates a copy of CompareOptions.
func (o CompareOptions) clone() CompareOptions {
	return CompareOptions{
		language:   o.language,
		disableOCR: o.disableOCR,
		maxPages:   o.maxPages,
	}
}
