package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// ErrNotFound is returned when no statement has the requested ID.
var ErrNotFound = errors.New("statement not found")

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Database is the sqlite-backed parse history.
type Database struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDatabase opens (creating if needed) the sqlite database at dbPath and
// migrates the history schema.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&StatementRecord{}, &TransactionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Database{db: db, now: time.Now}, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveStatement stores stmt with its transactions and returns the new record.
func (d *Database) SaveStatement(ctx context.Context, source string, stmt *models.Statement, warnings []string) (*StatementRecord, error) {
	rec := newRecord(source, stmt, warnings)
	rec.CreatedAt = d.now()
	if err := d.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to save statement: %w", err)
	}
	return rec, nil
}

// ListStatements returns the most recent statements first, without their
// transactions. limit is clamped to [1, MaxListLimit]; zero or less means
// DefaultListLimit.
func (d *Database) ListStatements(ctx context.Context, limit int) ([]StatementRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	var recs []StatementRecord
	err := d.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	return recs, nil
}

// GetStatement loads one statement and its transactions in document order.
func (d *Database) GetStatement(ctx context.Context, id string) (*StatementRecord, error) {
	var rec StatementRecord
	err := d.db.WithContext(ctx).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load statement %s: %w", id, err)
	}
	return &rec, nil
}
