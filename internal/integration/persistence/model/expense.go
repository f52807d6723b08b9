// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. Rows are hard
// deleted: the conservation invariants are recomputed from the raw
// collections, so a deleted expense must stop existing rather than linger in
// a soft-deleted state.
type ExpenseModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID string          `gorm:"type:varchar(64);not null;index"`
	Notes      string          `gorm:"type:text"`
	Date       time.Time       `gorm:"not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:         m.ID,
		UserID:     m.UserID,
		Amount:     m.Amount,
		CategoryID: m.CategoryID,
		Notes:      m.Notes,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:         expense.ID,
		UserID:     expense.UserID,
		Amount:     expense.Amount,
		CategoryID: expense.CategoryID,
		Notes:      expense.Notes,
		Date:       expense.Date,
		CreatedAt:  expense.CreatedAt,
		UpdatedAt:  expense.UpdatedAt,
	}
}
