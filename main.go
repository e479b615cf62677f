package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/card-statement-parser/internal/extractor"
	"github.com/insightdelivered/card-statement-parser/internal/logging"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/parser"
	"github.com/insightdelivered/card-statement-parser/internal/storage"
	"github.com/insightdelivered/card-statement-parser/internal/writer"
)

const version = "1.0.0"

type options struct {
	issuer   models.Issuer
	format   writer.Format
	output   string
	header   bool
	ocr      bool
	dbPath   string
	logLevel string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("card-statement-parser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	issuerFlag := fs.String("issuer", "", "Card issuer: hdfc, icici, axis, chase, idfc (auto-detected if omitted)")
	formatFlag := fs.String("format", "json", "Output format: json, csv or xlsx")
	outputFlag := fs.String("output", "", "Output file path (json/csv default to stdout, xlsx to <input>.xlsx)")
	headerFlag := fs.Bool("header", true, "Include statement summary rows in CSV output")
	ocrFlag := fs.Bool("ocr", false, "Fall back to OCR for scanned statements (requires an ocr build)")
	dbFlag := fs.String("db", "", "Record parsed statements in this sqlite history database")
	logLevelFlag := fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	helpFlag := fs.Bool("help", false, "Show usage help")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Credit Card Statement Parser
by Insight Delivered (QEA AutoLens)

Extracts the card number, billing period, payment due date, total amount due
and transactions from HDFC, ICICI, Axis, Chase and IDFC First credit card
statement PDFs.

Usage:
  card-statement-parser [flags] <statement.pdf> [statement2.pdf ...]

Flags:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Examples:
  # Auto-detect issuer and print JSON
  card-statement-parser statement.pdf

  # Specify issuer explicitly
  card-statement-parser --issuer=axis statement.pdf

  # Export to a spreadsheet
  card-statement-parser --format=xlsx --output=november.xlsx statement.pdf

  # Parse several statements and keep a history
  card-statement-parser --format=csv --db=history.db oct.pdf nov.pdf

Supported Issuers:
  hdfc   - HDFC Bank (DD/MM/YYYY dates)
  icici  - ICICI Bank (DD-Mon-YYYY dates)
  axis   - Axis Bank (DD/MM/YYYY dates)
  chase  - Chase (MM/DD/YY dates)
  idfc   - IDFC First Bank (DD/MM/YYYY dates)
`)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "card-statement-parser v%s\n", version)
		return 0
	}

	if *helpFlag || fs.NArg() == 0 {
		fs.Usage()
		return 0
	}

	opts := options{
		output:   *outputFlag,
		header:   *headerFlag,
		ocr:      *ocrFlag,
		dbPath:   *dbFlag,
		logLevel: *logLevelFlag,
	}

	if _, err := logging.ParseLevel(opts.logLevel); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	format, err := writer.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	opts.format = format

	if *issuerFlag != "" {
		issuer, err := parser.ParseIssuer(*issuerFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		opts.issuer = issuer
	}

	inputFiles := fs.Args()
	if opts.output != "" && len(inputFiles) > 1 {
		fmt.Fprintln(stderr, "Error: --output can only be used with a single input file")
		return 2
	}

	logger := logging.New(opts.logLevel, "text", stderr)

	var store *storage.Database
	if opts.dbPath != "" {
		store, err = storage.NewDatabase(opts.dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer store.Close()
	}

	ext := extractor.New(opts.ocr, logger)
	for _, inputPath := range inputFiles {
		if err := processFile(inputPath, opts, ext, store, logger, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "Error processing %s: %v\n", inputPath, err)
			return 1
		}
	}
	return 0
}

func processFile(inputPath string, opts options, ext *extractor.PDFExtractor, store *storage.Database,
	logger *slog.Logger, stdout, stderr io.Writer) error {
	// Validate input file
	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fileExt := strings.ToLower(filepath.Ext(inputPath))
	if fileExt != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", fileExt)
	}

	fmt.Fprintf(stderr, "Processing: %s\n", inputPath)

	doc, err := ext.Extract(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}
	if strings.TrimSpace(doc.Text) == "" {
		return extractor.ErrEmptyText
	}

	fmt.Fprintf(stderr, "  Extracted text from %d page(s) using %s\n", doc.Pages, doc.Method)

	collector := &parser.Collector{}
	assembler := parser.NewAssembler(parser.MultiReporter{collector, parser.NewLogReporter(logger)})

	var stmt *models.Statement
	if opts.issuer != "" {
		stmt, err = assembler.AssembleAs(opts.issuer, doc.Text)
	} else {
		stmt, err = assembler.Assemble(doc.Text)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "  Issuer: %s\n", stmt.Issuer.DisplayName())
	fmt.Fprintf(stderr, "  Found %d transaction(s)\n", len(stmt.Transactions))
	for _, w := range collector.Warnings() {
		fmt.Fprintf(stderr, "  Warning: %s\n", w)
	}
	if len(stmt.Transactions) == 0 {
		fmt.Fprintln(stderr, "  Warning: No transactions found. The PDF layout may not match expected patterns.")
		if opts.issuer == "" {
			fmt.Fprintln(stderr, "  Try specifying the issuer explicitly with --issuer.")
		}
	}

	w, err := writer.New(opts.format, opts.header)
	if err != nil {
		return err
	}

	outPath := opts.output
	if outPath == "" && opts.format == writer.FormatXLSX {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
	}
	if outPath == "" {
		if err := w.Write(stdout, stmt); err != nil {
			return fmt.Errorf("%s write failed: %w", opts.format, err)
		}
	} else {
		if err := writer.WriteToFile(w, outPath, stmt); err != nil {
			return fmt.Errorf("%s write failed: %w", opts.format, err)
		}
		fmt.Fprintf(stderr, "  Output: %s\n", outPath)
	}

	if store != nil {
		rec, err := store.SaveStatement(context.Background(), filepath.Base(inputPath), stmt, collector.Warnings())
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "  Recorded as %s\n", rec.ID)
	}

	fmt.Fprintln(stderr, "  Done.")
	return nil
}
