// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SinkingFundModel represents the sinking_funds table in the database.
type SinkingFundModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SinkingFundModel.
func (SinkingFundModel) TableName() string {
	return "sinking_funds"
}

// ToEntity converts a SinkingFundModel to a domain SinkingFund entity.
func (m *SinkingFundModel) ToEntity() *entity.SinkingFund {
	return &entity.SinkingFund{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SinkingFundFromEntity creates a SinkingFundModel from a domain SinkingFund
// entity.
func SinkingFundFromEntity(fund *entity.SinkingFund) *SinkingFundModel {
	return &SinkingFundModel{
		ID:            fund.ID,
		UserID:        fund.UserID,
		Name:          fund.Name,
		TargetAmount:  fund.TargetAmount,
		CurrentAmount: fund.CurrentAmount,
		CreatedAt:     fund.CreatedAt,
		UpdatedAt:     fund.UpdatedAt,
	}
}
