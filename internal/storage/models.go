package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// StatementRecord is one parsed statement in the history table.
type StatementRecord struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	SourceFile       string    `json:"source_file"`
	Issuer           string    `gorm:"index" json:"issuer"`
	CardLast4        *string   `json:"card_last_4_digits"`
	BillingPeriod    *string   `json:"billing_period"`
	PaymentDueDate   *string   `json:"payment_due_date"`
	TotalAmountDue   *string   `json:"total_amount_due"`
	TransactionCount int       `json:"transaction_count"`
	Warnings         []string  `gorm:"serializer:json" json:"warnings"`

	Transactions []TransactionRecord `gorm:"foreignKey:StatementID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a random UUID when the record has no ID yet.
func (r *StatementRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// TransactionRecord is one transaction line of a stored statement.
type TransactionRecord struct {
	gorm.Model
	StatementID string `gorm:"index;size:36"`
	Position    int
	Date        string
	Description string
	Amount      string
}

func newRecord(source string, stmt *models.Statement, warnings []string) *StatementRecord {
	rec := &StatementRecord{
		SourceFile:       source,
		Issuer:           string(stmt.Issuer),
		CardLast4:        stmt.CardLast4,
		BillingPeriod:    stmt.BillingPeriod,
		PaymentDueDate:   stmt.PaymentDueDate,
		TotalAmountDue:   stmt.TotalAmountDue,
		TransactionCount: len(stmt.Transactions),
		Warnings:         append([]string{}, warnings...),
	}
	for i, txn := range stmt.Transactions {
		rec.Transactions = append(rec.Transactions, TransactionRecord{
			Position:    i,
			Date:        txn.Date,
			Description: txn.Description,
			Amount:      txn.Amount,
		})
	}
	return rec
}

// Statement rebuilds the parsed statement. Transactions are only present
// when the record was loaded with them.
func (r *StatementRecord) Statement() *models.Statement {
	stmt := models.NewStatement(models.Issuer(r.Issuer))
	stmt.CardLast4 = r.CardLast4
	stmt.BillingPeriod = r.BillingPeriod
	stmt.PaymentDueDate = r.PaymentDueDate
	stmt.TotalAmountDue = r.TotalAmountDue
	for _, t := range r.Transactions {
		stmt.Transactions = append(stmt.Transactions, models.Transaction{
			Date:        t.Date,
			Description: t.Description,
			Amount:      t.Amount,
		})
	}
	return stmt
}
