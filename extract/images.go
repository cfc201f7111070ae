package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/prometheus/client_golang/prometheus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/naanu1/pdf-comparison/ocr"
	"github.com/naanu1/pdf-comparison/pkg/metrics"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// extractRecognized handles image-only documents: it extracts the embedded
// page images with pdfcpu and runs text recognition over each one in page
// order. A single unreadable or unrecognizable image only loses that image's
// text; the document fails only if every image fails or yields nothing.
func (e *Extractor) extractRecognized(ctx context.Context, data []byte) (string, error) {
	metrics.OCRFallbacksTotal.Inc()
	timer := prometheus.NewTimer(metrics.ExtractionDuration.WithLabelValues("ocr"))
	defer timer.ObserveDuration()

	// Engine first: a build without recognition support must fail before
	// any temp-file or image-extraction work happens.
	client, err := ocr.New(e.opts.Language)
	if err != nil {
		return "", fmt.Errorf("start recognition engine: %w", err)
	}
	defer client.Close()

	tempDir, err := os.MkdirTemp("", "pdfcompare_ocr_*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	pdfPath := filepath.Join(tempDir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return "", fmt.Errorf("write temp pdf: %w", err)
	}

	imgDir := filepath.Join(tempDir, "images")
	if err := os.Mkdir(imgDir, 0o700); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	conf.ValidationMode = model.ValidationRelaxed

	var selectedPages []string
	if e.opts.MaxPages > 0 {
		selectedPages = []string{fmt.Sprintf("1-%d", e.opts.MaxPages)}
	}

	if err := api.ExtractImagesFile(pdfPath, imgDir, selectedPages, conf); err != nil {
		return "", fmt.Errorf("extract page images: %w", err)
	}

	entries, err := os.ReadDir(imgDir)
	if err != nil {
		return "", fmt.Errorf("read image dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sortByPageOrder(names)

	var buf strings.Builder
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		imgData, err := os.ReadFile(filepath.Join(imgDir, name))
		if err != nil {
			e.log.Warn("reading extracted image failed", "image", name, "error", err)
			continue
		}

		text, err := client.Recognize(toPNG(imgData))
		if err != nil {
			e.log.Warn("recognition failed", "image", name, "error", err)
			continue
		}
		if text == "" {
			continue
		}

		buf.WriteString(text)
		buf.WriteString("\n")
	}

	return buf.String(), nil
}

// toPNG re-encodes image data as PNG when it is in a format the recognition
// engine may not accept directly (pdfcpu can emit TIFF variants for CMYK and
// CCITT images). Data that is already PNG, or cannot be decoded at all, is
// passed through unchanged.
func toPNG(data []byte) []byte {
	if bytes.HasPrefix(data, pngMagic) {
		return data
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return data
	}
	return buf.Bytes()
}

var digits = regexp.MustCompile(`\d+`)

// sortByPageOrder orders pdfcpu output names (input_<page>_<object>.<ext>)
// by their embedded numbers so recognized text follows document page order.
func sortByPageOrder(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		ni := digits.FindAllString(names[i], -1)
		nj := digits.FindAllString(names[j], -1)
		for k := 0; k < len(ni) && k < len(nj); k++ {
			a, _ := strconv.Atoi(ni[k])
			b, _ := strconv.Atoi(nj[k])
			if a != b {
				return a < b
			}
		}
		return names[i] < names[j]
	})
}
