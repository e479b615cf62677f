package api

import (
	"context"

	"github.com/insightdelivered/card-statement-parser/internal/extractor"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/storage"
)

//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go TextExtractor,StatementStore

// TextExtractor turns an uploaded PDF on disk into statement text.
type TextExtractor interface {
	Extract(path string) (*extractor.Document, error)
}

// StatementStore persists parse results for the history endpoints.
type StatementStore interface {
	SaveStatement(ctx context.Context, source string, stmt *models.Statement, warnings []string) (*storage.StatementRecord, error)
	ListStatements(ctx context.Context, limit int) ([]storage.StatementRecord, error)
	GetStatement(ctx context.Context, id string) (*storage.StatementRecord, error)
}
