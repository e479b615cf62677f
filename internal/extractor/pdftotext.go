package extractor

import (
	"fmt"
	"os/exec"
	"strings"
)

// readWithPdftotext shells out to poppler's pdftotext for PDFs the Go library
// cannot decode. Layout mode keeps table columns on one line; pages come back
// separated by form feeds.
func readWithPdftotext(path string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %w", err)
	}
	out, err := exec.Command("pdftotext", "-layout", "-enc", "UTF-8", path, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}
	pages := splitPages(string(out))
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return pages, nil
}

// splitPages splits pdftotext output on form feeds and drops blank pages.
func splitPages(out string) []string {
	var pages []string
	for _, p := range strings.Split(out, "\f") {
		if p = strings.TrimSpace(p); p != "" {
			pages = append(pages, p)
		}
	}
	return pages
}
