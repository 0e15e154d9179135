// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// RecurringModel represents the recurring table in the database.
type RecurringModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind        string          `gorm:"type:varchar(10);not null"`
	BillingDate int             `gorm:"not null"`
	Category    string          `gorm:"type:varchar(100);not null;default:'Other'"`
	CreatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the RecurringModel.
func (RecurringModel) TableName() string {
	return "recurring"
}

// ToEntity converts a RecurringModel to a domain Recurring entity.
func (m *RecurringModel) ToEntity() *entity.Recurring {
	return &entity.Recurring{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Amount:      m.Amount,
		Kind:        entity.TransactionKind(m.Kind),
		BillingDate: m.BillingDate,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
	}
}

// RecurringFromEntity creates a RecurringModel from a domain Recurring entity.
func RecurringFromEntity(r *entity.Recurring) *RecurringModel {
	return &RecurringModel{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Amount:      r.Amount,
		Kind:        string(r.Kind),
		BillingDate: r.BillingDate,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
	}
}
