package load

import (
	"database/sql"
	"fmt"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// DDL транзакционных таблиц. Внешних ключей нет: наборы независимы,
// уникальность обеспечивается ключом (штат, год, квартал, категория/район/пинкод).
const (
	ddlAggTransaction = `
	CREATE TABLE IF NOT EXISTS aggregated_transaction (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		transaction_type VARCHAR(100) NOT NULL,
		transaction_count BIGINT NOT NULL DEFAULT 0,
		transaction_amount DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, transaction_type)
	);
	`

	ddlMapTransaction = `
	CREATE TABLE IF NOT EXISTS map_transaction (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		district VARCHAR(100) NOT NULL,
		transaction_count BIGINT NOT NULL DEFAULT 0,
		transaction_amount DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, district)
	);
	`

	ddlTopTransaction = `
	CREATE TABLE IF NOT EXISTS top_transaction (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		pincode VARCHAR(10) NOT NULL,
		transaction_count BIGINT NOT NULL DEFAULT 0,
		transaction_amount DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, pincode)
	);
	`
)

// TransactionLoader отвечает за загрузку транзакционных таблиц
type TransactionLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewTransactionLoader создает новый экземпляр TransactionLoader
func NewTransactionLoader(db *sql.DB, logger *utils.ETLLogger) *TransactionLoader {
	return &TransactionLoader{
		db:     db,
		logger: logger,
	}
}

// EnsureTables создает транзакционные таблицы, если они не существуют
func (l *TransactionLoader) EnsureTables() error {
	for _, ddl := range []string{ddlAggTransaction, ddlMapTransaction, ddlTopTransaction} {
		if err := ensureTable(l.db, ddl); err != nil {
			return err
		}
	}

	return nil
}

// Load заменяет содержимое трех транзакционных таблиц
func (l *TransactionLoader) Load(agg []models.AggTransactionRow, mp []models.MapTransactionRow, top []models.TopTransactionRow) error {
	if err := l.EnsureTables(); err != nil {
		return fmt.Errorf("ошибка при создании транзакционных таблиц: %w", err)
	}

	// 1. aggregated_transaction
	err := reloadTable(l.db, l.logger, "aggregated_transaction", `
		INSERT INTO aggregated_transaction
		(state, year, quarter, transaction_type, transaction_count, transaction_amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(agg), func(i int) []interface{} {
		r := agg[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.TransactionType, r.Count, r.Amount}
	})
	if err != nil {
		return err
	}

	// 2. map_transaction
	err = reloadTable(l.db, l.logger, "map_transaction", `
		INSERT INTO map_transaction
		(state, year, quarter, district, transaction_count, transaction_amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(mp), func(i int) []interface{} {
		r := mp[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.District, r.Count, r.Amount}
	})
	if err != nil {
		return err
	}

	// 3. top_transaction
	return reloadTable(l.db, l.logger, "top_transaction", `
		INSERT INTO top_transaction
		(state, year, quarter, pincode, transaction_count, transaction_amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(top), func(i int) []interface{} {
		r := top[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.Pincode, r.Count, r.Amount}
	})
}
