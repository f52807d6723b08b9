// Package mock provides in-memory test doubles for the integration suite.
package mock

import (
	"database/sql"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

// Db wraps an isolated in-memory sqlite database migrated with the ledger
// schema. Every call to NewDb returns a fresh database, so scenarios never
// observe each other's state.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens a new in-memory database and migrates all ledger models.
func NewDb() *Db {
	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(
		&model.SettingsModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.CategoryBudgetModel{},
		&model.SinkingFundModel{},
	); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// Count returns the number of rows in the given table.
func (d *Db) Count(table string) (int64, error) {
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}
