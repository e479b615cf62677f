//go:build ocr

package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// OCRAvailable reports whether OCR support is compiled in and the page
// rasteriser is installed.
func OCRAvailable() bool {
	_, err := exec.LookPath("pdftoppm")
	return err == nil
}

// readWithOCR rasterises every page at 300 DPI with pdftoppm and runs
// Tesseract over the images.
func readWithOCR(path string) ([]string, error) {
	if !OCRAvailable() {
		return nil, fmt.Errorf("pdftoppm not available (install poppler-utils)")
	}

	dir, err := os.MkdirTemp("", "statement-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	images, err := rasterize(path, dir)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage("eng"); err != nil {
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	// Statements are a single column of variable-size text.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_COLUMN); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation: %w", err)
	}

	var pages []string
	for _, img := range images {
		if err := client.SetImage(img); err != nil {
			return nil, fmt.Errorf("failed to set image %s: %w", filepath.Base(img), err)
		}
		text, err := client.Text()
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(repairOCRText(text)); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("OCR produced no text from %d page images", len(images))
	}
	return pages, nil
}

func rasterize(path, dir string) ([]string, error) {
	prefix := filepath.Join(dir, "page")
	if out, err := exec.Command("pdftoppm", "-r", "300", "-png", path, prefix).CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	images, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no page images")
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(images)
	return images, nil
}
