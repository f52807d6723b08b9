// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SettingsModel represents the settings table in the database. One row per
// user, keyed by the user id.
type SettingsModel struct {
	UserID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Allowance          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	BudgetTargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	BudgetTargetPeriod string          `gorm:"type:varchar(10);not null;default:'daily'"`
	BalanceAtBudgetSet decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		UserID:    m.UserID,
		Allowance: m.Allowance,
		BudgetTarget: entity.BudgetTarget{
			Amount: m.BudgetTargetAmount,
			Period: entity.BudgetPeriod(m.BudgetTargetPeriod),
		},
		BalanceAtBudgetSet: m.BalanceAtBudgetSet,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	return &SettingsModel{
		UserID:             settings.UserID,
		Allowance:          settings.Allowance,
		BudgetTargetAmount: settings.BudgetTarget.Amount,
		BudgetTargetPeriod: string(settings.BudgetTarget.Period),
		BalanceAtBudgetSet: settings.BalanceAtBudgetSet,
	}
}
