// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// SavingsJarModel represents the savings_jars table in the database.
type SavingsJarModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Emoji         string          `gorm:"type:varchar(16)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the SavingsJarModel.
func (SavingsJarModel) TableName() string {
	return "savings_jars"
}

// ToEntity converts a SavingsJarModel to a domain SavingsJar entity.
func (m *SavingsJarModel) ToEntity() *entity.SavingsJar {
	return &entity.SavingsJar{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Emoji:         m.Emoji,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SavingsJarFromEntity creates a SavingsJarModel from a domain SavingsJar entity.
func SavingsJarFromEntity(j *entity.SavingsJar) *SavingsJarModel {
	return &SavingsJarModel{
		ID:            j.ID,
		UserID:        j.UserID,
		Name:          j.Name,
		TargetAmount:  j.TargetAmount,
		CurrentAmount: j.CurrentAmount,
		Emoji:         j.Emoji,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}
