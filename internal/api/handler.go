package api

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/card-statement-parser/internal/metrics"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/parser"
	"github.com/insightdelivered/card-statement-parser/internal/storage"
)

// ParseResponse is the JSON body of a successful /api/parse call.
type ParseResponse struct {
	Success  bool              `json:"success"`
	ID       string            `json:"id,omitempty"`
	File     string            `json:"file"`
	Data     *models.Statement `json:"data"`
	Warnings []string          `json:"warnings"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// StatementSummary is one entry of the history listing.
type StatementSummary struct {
	storage.StatementRecord
	IssuerName string `json:"issuer_name"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Extractor TextExtractor
	// Store is optional; without it nothing is recorded and the history
	// endpoints answer 404.
	Store   StatementStore
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	Version string
	// MaxUploadBytes caps the size of the uploaded PDF. Zero means no cap.
	MaxUploadBytes int
}

func (h *Handler) logger(c *fiber.Ctx) *slog.Logger {
	l := h.Logger
	if l == nil {
		l = slog.Default()
	}
	if id, ok := c.Locals(requestIDKey).(string); ok && id != "" {
		l = l.With(slog.String("request_id", id))
	}
	return l
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Success: false, Error: msg})
}

// HandleHealth reports liveness and the running version.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": h.Version,
	})
}

// HandleParse accepts a multipart upload with a PDF in field "file" and an
// optional "issuer" override, and returns the parsed statement.
func (h *Handler) HandleParse(c *fiber.Ctx) error {
	log := h.logger(c)

	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}
	if strings.TrimSpace(fh.Filename) == "" {
		return fail(c, fiber.StatusBadRequest, "No file selected.")
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		return fail(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}
	if h.MaxUploadBytes > 0 && fh.Size > int64(h.MaxUploadBytes) {
		return fail(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large. Maximum size is %d MB.", h.MaxUploadBytes/(1024*1024)))
	}

	var override models.Issuer
	if name := strings.TrimSpace(c.FormValue("issuer")); name != "" {
		override, err = parser.ParseIssuer(name)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		log.Error("failed to create temp file", slog.Any("error", err))
		return fail(c, fiber.StatusInternalServerError, "Failed to create temp file.")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fh, tmpPath); err != nil {
		log.Error("failed to save upload", slog.Any("error", err))
		return fail(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
	}

	doc, err := h.Extractor.Extract(tmpPath)
	if err != nil {
		log.Warn("PDF extraction failed", slog.String("file", fh.Filename), slog.Any("error", err))
		return fail(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
	}
	if strings.TrimSpace(doc.Text) == "" {
		return fail(c, fiber.StatusUnprocessableEntity, "No text found in PDF.")
	}
	if h.Metrics != nil {
		h.Metrics.Extraction(doc.Method)
	}

	collector := &parser.Collector{}
	reporters := parser.MultiReporter{collector, parser.NewLogReporter(log)}
	if h.Metrics != nil {
		reporters = append(reporters, h.Metrics)
	}
	assembler := parser.NewAssembler(reporters)

	var stmt *models.Statement
	if override != "" {
		stmt, err = assembler.AssembleAs(override, doc.Text)
	} else {
		stmt, err = assembler.Assemble(doc.Text)
	}
	if err != nil {
		if errors.Is(err, parser.ErrUnsupportedIssuer) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		log.Error("parsing failed", slog.Any("error", err))
		return fail(c, fiber.StatusInternalServerError, fmt.Sprintf("Parsing failed: %v", err))
	}

	resp := ParseResponse{
		Success:  true,
		File:     fh.Filename,
		Data:     stmt,
		Warnings: collector.Warnings(),
	}

	if h.Store != nil {
		rec, err := h.Store.SaveStatement(c.UserContext(), fh.Filename, stmt, resp.Warnings)
		if err != nil {
			log.Error("failed to record statement", slog.Any("error", err))
		} else {
			resp.ID = rec.ID
		}
	}

	return c.JSON(resp)
}

// HandleListStatements returns the most recent parse results.
func (h *Handler) HandleListStatements(c *fiber.Ctx) error {
	if h.Store == nil {
		return fail(c, fiber.StatusNotFound, "Statement history is not enabled.")
	}

	recs, err := h.Store.ListStatements(c.UserContext(), c.QueryInt("limit", storage.DefaultListLimit))
	if err != nil {
		h.logger(c).Error("failed to list statements", slog.Any("error", err))
		return fail(c, fiber.StatusInternalServerError, "Failed to list statements.")
	}

	out := make([]StatementSummary, 0, len(recs))
	for _, r := range recs {
		out = append(out, StatementSummary{
			StatementRecord: r,
			IssuerName:      models.Issuer(r.Issuer).DisplayName(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": out})
}

// HandleGetStatement returns one stored statement with its transactions.
func (h *Handler) HandleGetStatement(c *fiber.Ctx) error {
	if h.Store == nil {
		return fail(c, fiber.StatusNotFound, "Statement history is not enabled.")
	}

	rec, err := h.Store.GetStatement(c.UserContext(), c.Params("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Statement not found.")
	}
	if err != nil {
		h.logger(c).Error("failed to load statement", slog.Any("error", err))
		return fail(c, fiber.StatusInternalServerError, "Failed to load statement.")
	}

	return c.JSON(ParseResponse{
		Success:  true,
		ID:       rec.ID,
		File:     rec.SourceFile,
		Data:     rec.Statement(),
		Warnings: rec.Warnings,
	})
}
