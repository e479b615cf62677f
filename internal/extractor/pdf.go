// Package extractor turns a card statement PDF into the plain text the
// parser works on.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrFileNotFound is returned when the PDF path does not exist.
	ErrFileNotFound = errors.New("PDF file not found")
	// ErrUnreadable is returned when no method yields readable text.
	ErrUnreadable = errors.New("no readable text could be extracted from PDF")
	// ErrEmptyText is returned when the PDF opens but carries no text at all.
	ErrEmptyText = errors.New("no text found in PDF")
)

// Method names the extraction path that produced a document's text.
type Method string

const (
	MethodContent   Method = "content"
	MethodRows      Method = "rows"
	MethodPagePlain Method = "page_plain"
	MethodPlain     Method = "plain"
	MethodPdftotext Method = "pdftotext"
	MethodOCR       Method = "ocr"
)

// Document is the normalised text of a PDF and how it was obtained.
type Document struct {
	Text   string
	Pages  int
	Method Method
}

// PDFExtractor extracts text from statement PDFs. The zero value is usable
// and never falls back to OCR.
type PDFExtractor struct {
	// OCR enables the image-based fallback for scanned statements.
	OCR    bool
	Logger *slog.Logger
}

// New returns an extractor with OCR fallback set as requested.
func New(ocr bool, logger *slog.Logger) *PDFExtractor {
	return &PDFExtractor{OCR: ocr, Logger: logger}
}

func (e *PDFExtractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Extract tries the PDF library first, then pdftotext, then OCR when
// enabled. Pages are joined with a single newline and the result is NFKC
// normalised. Garbage text is never returned.
func (e *PDFExtractor) Extract(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	log := e.logger().With(slog.String("file", path))

	pages, method, libErr := readWithLibrary(path)
	if libErr == nil && IsReadable(pages) {
		return newDocument(pages, method), nil
	}
	if libErr != nil {
		log.Debug("pdf library failed", slog.Any("error", libErr))
	}
	sawText := totalTextLen(pages) > 0

	popplerPages, popplerErr := readWithPdftotext(path)
	if popplerErr == nil && IsReadable(popplerPages) {
		return newDocument(popplerPages, MethodPdftotext), nil
	}
	if popplerErr != nil {
		log.Debug("pdftotext fallback failed", slog.Any("error", popplerErr))
	}
	sawText = sawText || totalTextLen(popplerPages) > 0

	if e.OCR {
		ocrPages, ocrErr := readWithOCR(path)
		if ocrErr == nil && IsReadable(ocrPages) {
			return newDocument(ocrPages, MethodOCR), nil
		}
		if ocrErr != nil {
			log.Warn("OCR fallback failed", slog.Any("error", ocrErr))
		}
		sawText = sawText || totalTextLen(ocrPages) > 0
	}

	switch {
	case libErr != nil && !sawText:
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, libErr)
	case !sawText:
		return nil, ErrEmptyText
	default:
		return nil, ErrUnreadable
	}
}

func newDocument(pages []string, method Method) *Document {
	return &Document{
		Text:   Normalize(strings.Join(pages, "\n")),
		Pages:  len(pages),
		Method: method,
	}
}

// readWithLibrary runs the ledongthuc/pdf extraction paths in order of layout
// fidelity and returns the first readable result, or the last attempt.
func readWithLibrary(path string) (pages []string, method Method, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	n := r.NumPage()
	if n == 0 {
		return nil, "", fmt.Errorf("PDF has no pages")
	}

	if pages = contentText(r, n); IsReadable(pages) {
		return pages, MethodContent, nil
	}
	if pages = rowText(r, n); IsReadable(pages) {
		return pages, MethodRows, nil
	}
	if pages = pagePlainText(r, n); IsReadable(pages) {
		return pages, MethodPagePlain, nil
	}
	if text := readerPlainText(r); text != "" {
		pages = []string{text}
	}
	return pages, MethodPlain, nil
}

// contentText rebuilds each page from the positioned glyphs of its content
// stream: glyphs sharing a rounded baseline form one line, lines run top to
// bottom and glyphs left to right. A space is inserted where two glyphs on a
// line are further apart than a quarter of the font size, which keeps table
// cells such as "12/11/2024 83,794.00 4,240.00" apart.
func contentText(r *pdf.Reader, n int) (pages []string) {
	type glyph struct {
		x, w, size float64
		s          string
	}

	defer func() {
		if recover() != nil {
			pages = nil
		}
	}()

	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content := p.Content()
		if len(content.Text) == 0 {
			continue
		}

		rows := make(map[int][]glyph)
		for _, t := range content.Text {
			if t.S == "" || t.S == "\n" {
				continue
			}
			y := int(math.Round(t.Y))
			rows[y] = append(rows[y], glyph{x: t.X, w: t.W, size: t.FontSize, s: t.S})
		}

		ys := make([]int, 0, len(rows))
		for y := range rows {
			ys = append(ys, y)
		}
		// PDF y grows upwards.
		sort.Sort(sort.Reverse(sort.IntSlice(ys)))

		lines := make([]string, 0, len(ys))
		for _, y := range ys {
			row := rows[y]
			// Stable: glyphs of fonts without widths share one x.
			sort.SliceStable(row, func(a, b int) bool { return row[a].x < row[b].x })

			var sb strings.Builder
			for j, g := range row {
				if j > 0 {
					prev := row[j-1]
					if g.x-(prev.x+prev.w) > g.size/4 && prev.s != " " && g.s != " " {
						sb.WriteByte(' ')
					}
				}
				sb.WriteString(g.s)
			}
			if line := strings.TrimSpace(sb.String()); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// rowText rebuilds each page from the library's row grouping. Some layouts
// collapse into a single row here, so it only runs when contentText yields
// nothing readable.
func rowText(r *pdf.Reader, n int) []string {
	var pages []string
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			continue
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, w := range row.Content {
				words = append(words, w.S)
			}
			if line := strings.TrimSpace(strings.Join(words, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

func pagePlainText(r *pdf.Reader, n int) []string {
	var pages []string
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range p.Fonts() {
			font := p.Font(name)
			fonts[name] = &font
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

func readerPlainText(r *pdf.Reader) string {
	rd, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
