// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CategoryBudgetModel represents the category_budgets table in the database.
// The (user_id, category_id) pair is the primary key: one allocation row per
// category at most, including the reserved savings key.
type CategoryBudgetModel struct {
	UserID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID string          `gorm:"type:varchar(64);primaryKey"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Percentage *float64        `gorm:"type:decimal(5,2)"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CategoryBudgetModel.
func (CategoryBudgetModel) TableName() string {
	return "category_budgets"
}

// ToEntity converts a CategoryBudgetModel to a domain CategoryBudget entity.
func (m *CategoryBudgetModel) ToEntity() *entity.CategoryBudget {
	return &entity.CategoryBudget{
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Percentage: m.Percentage,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// CategoryBudgetFromEntity creates a CategoryBudgetModel from a domain
// CategoryBudget entity.
func CategoryBudgetFromEntity(budget *entity.CategoryBudget) *CategoryBudgetModel {
	return &CategoryBudgetModel{
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Percentage: budget.Percentage,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
