// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Person    string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Direction string          `gorm:"type:varchar(10);not null"`
	Status    string          `gorm:"type:varchar(10);not null;default:'pending'"`
	Date      time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:        m.ID,
		UserID:    m.UserID,
		Person:    m.Person,
		Amount:    m.Amount,
		Direction: entity.DebtDirection(m.Direction),
		Status:    entity.DebtStatus(m.Status),
		Date:      m.Date.UTC(),
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(d *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:        d.ID,
		UserID:    d.UserID,
		Person:    d.Person,
		Amount:    d.Amount,
		Direction: string(d.Direction),
		Status:    string(d.Status),
		Date:      d.Date.UTC(),
	}
}
