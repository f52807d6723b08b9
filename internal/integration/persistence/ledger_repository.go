// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

// ledgerView implements adapter.LedgerView over a gorm handle. The same type
// serves both the store itself and an in-flight transaction: RunAtomic binds
// a new view to the transaction handle so closures re-read and write through
// the same atomic unit.
type ledgerView struct {
	db *gorm.DB
}

// ledgerRepository implements the adapter.LedgerStore interface.
type ledgerRepository struct {
	ledgerView
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerStore {
	return &ledgerRepository{ledgerView{db: db}}
}

// RunAtomic executes fn inside a SERIALIZABLE transaction. Re-reads inside
// fn see a consistent view, and two transactions racing on the same rows
// cannot both commit with stale balances. Serialization and lock failures
// are surfaced as domain ErrConflict so callers can retry or report them
// uniformly.
func (r *ledgerRepository) RunAtomic(ctx context.Context, fn func(tx adapter.LedgerTx) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerView{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil && isSerializationFailure(err) {
		return domainerror.ErrConflict
	}
	return err
}

// isSerializationFailure reports whether a transaction failed because of a
// concurrent writer rather than a caller mistake.
func isSerializationFailure(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "database is locked")
}

// GetSettings retrieves the per-user settings document, creating a
// zero-valued one when the user has none yet.
func (v *ledgerView) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := v.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			settings := entity.NewSettings(userID)
			created := model.SettingsFromEntity(settings)
			if err := v.db.WithContext(ctx).Create(created).Error; err != nil {
				return nil, err
			}
			return settings, nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// UpdateSettings writes the settings document in place.
func (v *ledgerView) UpdateSettings(ctx context.Context, settings *entity.Settings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := v.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Where("user_id = ?", settings.UserID).
		Updates(map[string]interface{}{
			"allowance":             settingsModel.Allowance,
			"budget_target_amount":  settingsModel.BudgetTargetAmount,
			"budget_target_period":  settingsModel.BudgetTargetPeriod,
			"balance_at_budget_set": settingsModel.BalanceAtBudgetSet,
			"updated_at":            time.Now().UTC(),
		})
	return result.Error
}

// ListExpenses retrieves all expenses for a user, newest first.
func (v *ledgerView) ListExpenses(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := v.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// GetExpense retrieves a single expense by id.
func (v *ledgerView) GetExpense(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := v.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// CreateExpense inserts a new expense.
func (v *ledgerView) CreateExpense(ctx context.Context, expense *entity.Expense) error {
	return v.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error
}

// CreateExpenses inserts multiple expenses in one batch.
func (v *ledgerView) CreateExpenses(ctx context.Context, expenses []*entity.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	expenseModels := make([]*model.ExpenseModel, len(expenses))
	for i, e := range expenses {
		expenseModels[i] = model.ExpenseFromEntity(e)
	}
	return v.db.WithContext(ctx).Create(expenseModels).Error
}

// UpdateExpense updates an existing expense.
func (v *ledgerView) UpdateExpense(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := v.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]interface{}{
			"amount":      expenseModel.Amount,
			"category_id": expenseModel.CategoryID,
			"notes":       expenseModel.Notes,
			"date":        expenseModel.Date,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// DeleteExpenses removes the given expenses. Ids that match nothing are
// skipped; the number of rows actually deleted is returned.
func (v *ledgerView) DeleteExpenses(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := v.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListIncomes retrieves all income records for a user, newest first.
func (v *ledgerView) ListIncomes(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := v.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// GetIncome retrieves a single income record by id.
func (v *ledgerView) GetIncome(ctx context.Context, userID, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := v.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// CreateIncome inserts a new income record.
func (v *ledgerView) CreateIncome(ctx context.Context, income *entity.Income) error {
	return v.db.WithContext(ctx).Create(model.IncomeFromEntity(income)).Error
}

// DeleteIncome removes a single income record.
func (v *ledgerView) DeleteIncome(ctx context.Context, userID, id uuid.UUID) error {
	result := v.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.IncomeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

// ListBudgets retrieves all category-budget rows for a user.
func (v *ledgerView) ListBudgets(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryBudget, error) {
	var budgetModels []model.CategoryBudgetModel
	result := v.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category_id ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.CategoryBudget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// UpsertBudget creates or replaces the budget row keyed by category id.
func (v *ledgerView) UpsertBudget(ctx context.Context, budget *entity.CategoryBudget) error {
	budgetModel := model.CategoryBudgetFromEntity(budget)
	return v.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "category_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount", "percentage", "updated_at",
			}),
		}).
		Create(budgetModel).Error
}

// ListFunds retrieves all sinking funds for a user.
func (v *ledgerView) ListFunds(ctx context.Context, userID uuid.UUID) ([]*entity.SinkingFund, error) {
	var fundModels []model.SinkingFundModel
	result := v.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&fundModels)
	if result.Error != nil {
		return nil, result.Error
	}

	funds := make([]*entity.SinkingFund, len(fundModels))
	for i, fm := range fundModels {
		funds[i] = fm.ToEntity()
	}
	return funds, nil
}

// GetFund retrieves a single sinking fund by id.
func (v *ledgerView) GetFund(ctx context.Context, userID, id uuid.UUID) (*entity.SinkingFund, error) {
	var fundModel model.SinkingFundModel
	result := v.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&fundModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSinkingFundNotFound
		}
		return nil, result.Error
	}
	return fundModel.ToEntity(), nil
}

// CreateFund inserts a new sinking fund.
func (v *ledgerView) CreateFund(ctx context.Context, fund *entity.SinkingFund) error {
	return v.db.WithContext(ctx).Create(model.SinkingFundFromEntity(fund)).Error
}

// UpdateFund updates an existing sinking fund.
func (v *ledgerView) UpdateFund(ctx context.Context, fund *entity.SinkingFund) error {
	fundModel := model.SinkingFundFromEntity(fund)
	result := v.db.WithContext(ctx).
		Model(&model.SinkingFundModel{}).
		Where("id = ? AND user_id = ?", fund.ID, fund.UserID).
		Updates(map[string]interface{}{
			"name":           fundModel.Name,
			"target_amount":  fundModel.TargetAmount,
			"current_amount": fundModel.CurrentAmount,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSinkingFundNotFound
	}
	return nil
}

// DeleteFund removes a sinking fund. Deleting a missing fund is a no-op.
func (v *ledgerView) DeleteFund(ctx context.Context, userID, id uuid.UUID) error {
	return v.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SinkingFundModel{}).Error
}

// GetSnapshot reads the settings document and all four collections in one
// consistent view.
func (v *ledgerView) GetSnapshot(ctx context.Context, userID uuid.UUID) (*entity.Snapshot, error) {
	settings, err := v.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := v.ListExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	incomes, err := v.ListIncomes(ctx, userID)
	if err != nil {
		return nil, err
	}
	budgets, err := v.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	funds, err := v.ListFunds(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.Snapshot{
		Settings: settings,
		Expenses: expenses,
		Incomes:  incomes,
		Budgets:  budgets,
		Funds:    funds,
	}, nil
}
