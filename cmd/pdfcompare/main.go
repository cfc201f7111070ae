// Command pdfcompare compares two PDF files and prints the classified
// line differences.
//
// Exit status follows diff(1): 0 when the documents are identical, 1 when
// they differ, 2 on error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pdfcompare "github.com/naanu1/pdf-comparison"
	"github.com/naanu1/pdf-comparison/diff"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

func main() {
	jsonOut := flag.Bool("json", false, "emit the comparison as JSON")
	lang := flag.String("lang", "eng", "OCR language for scanned documents")
	noOCR := flag.Bool("no-ocr", false, "disable the OCR fallback")
	maxPages := flag.Int("max-pages", 0, "maximum pages to read per document (0 = all)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] old.pdf new.pdf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	oldPDF, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	newPDF, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	comparer := pdfcompare.New().Language(*lang).MaxPages(*maxPages)
	if *noOCR {
		comparer = comparer.WithoutOCR()
	}

	result, err := comparer.Compare(ctx, oldPDF, newPDF)
	if err != nil {
		fatal(err)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fatal(err)
		}
	} else {
		printChanges(result, !*noColor)
	}

	if result.Summary != (diff.Summary{}) {
		os.Exit(1)
	}
}

func printChanges(result *pdfcompare.Result, color bool) {
	paint := func(code, text string) string {
		if !color {
			return text
		}
		return code + text + colorReset
	}

	for _, c := range result.Changes {
		switch c.Kind {
		case diff.Added:
			fmt.Println(paint(colorGreen, "+ "+c.Text))
		case diff.Removed:
			fmt.Println(paint(colorRed, "- "+c.Text))
		case diff.Modified:
			fmt.Println(paint(colorYellow, "~ "+c.Old+" -> "+c.New))
		default:
			fmt.Println("  " + c.Text)
		}
	}

	fmt.Printf("\n%d added, %d removed, %d modified\n",
		result.Summary.Added, result.Summary.Removed, result.Summary.Modified)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "pdfcompare:", err)
	os.Exit(2)
}
