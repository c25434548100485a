package load

import (
	"database/sql"
	"fmt"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// DDL страховых таблиц
const (
	ddlAggInsurance = `
	CREATE TABLE IF NOT EXISTS aggregated_insurance (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		insurance_type VARCHAR(100) NOT NULL,
		insurance_count BIGINT NOT NULL DEFAULT 0,
		insurance_amount DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, insurance_type)
	);
	`

	ddlMapInsurance = `
	CREATE TABLE IF NOT EXISTS map_insurance (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		district VARCHAR(100) NOT NULL,
		insurance_count BIGINT NOT NULL DEFAULT 0,
		insurance_amount DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, district)
	);
	`

	ddlTopInsurance = `
	CREATE TABLE IF NOT EXISTS top_insurance (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		pincode VARCHAR(10) NOT NULL,
		insurance_count BIGINT NOT NULL DEFAULT 0,
		insurance_amount DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, pincode)
	);
	`
)

// InsuranceLoader отвечает за загрузку страховых таблиц
type InsuranceLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewInsuranceLoader создает новый экземпляр InsuranceLoader
func NewInsuranceLoader(db *sql.DB, logger *utils.ETLLogger) *InsuranceLoader {
	return &InsuranceLoader{
		db:     db,
		logger: logger,
	}
}

// EnsureTables создает страховые таблицы, если они не существуют
func (l *InsuranceLoader) EnsureTables() error {
	for _, ddl := range []string{ddlAggInsurance, ddlMapInsurance, ddlTopInsurance} {
		if err := ensureTable(l.db, ddl); err != nil {
			return err
		}
	}

	return nil
}

// Load заменяет содержимое трех страховых таблиц
func (l *InsuranceLoader) Load(agg []models.AggInsuranceRow, mp []models.MapInsuranceRow, top []models.TopInsuranceRow) error {
	if err := l.EnsureTables(); err != nil {
		return fmt.Errorf("ошибка при создании страховых таблиц: %w", err)
	}

	// 1. aggregated_insurance
	err := reloadTable(l.db, l.logger, "aggregated_insurance", `
		INSERT INTO aggregated_insurance
		(state, year, quarter, insurance_type, insurance_count, insurance_amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(agg), func(i int) []interface{} {
		r := agg[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.InsuranceType, r.Count, r.Amount}
	})
	if err != nil {
		return err
	}

	// 2. map_insurance
	err = reloadTable(l.db, l.logger, "map_insurance", `
		INSERT INTO map_insurance
		(state, year, quarter, district, insurance_count, insurance_amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(mp), func(i int) []interface{} {
		r := mp[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.District, r.Count, r.Amount}
	})
	if err != nil {
		return err
	}

	// 3. top_insurance
	return reloadTable(l.db, l.logger, "top_insurance", `
		INSERT INTO top_insurance
		(state, year, quarter, pincode, insurance_count, insurance_amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(top), func(i int) []interface{} {
		r := top[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.Pincode, r.Count, r.Amount}
	})
}
