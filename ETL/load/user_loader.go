package load

import (
	"database/sql"
	"fmt"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// DDL пользовательских таблиц
const (
	ddlAggUser = `
	CREATE TABLE IF NOT EXISTS aggregated_user (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		brand VARCHAR(50) NOT NULL,
		user_count BIGINT NOT NULL DEFAULT 0,
		percentage DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, brand)
	);
	`

	ddlMapUser = `
	CREATE TABLE IF NOT EXISTS map_user (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		district VARCHAR(100) NOT NULL,
		registered_users BIGINT NOT NULL DEFAULT 0,
		app_opens BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, district)
	);
	`

	ddlTopUser = `
	CREATE TABLE IF NOT EXISTS top_user (
		state VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		quarter INT NOT NULL,
		pincode VARCHAR(10) NOT NULL,
		registered_users BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (state, year, quarter, pincode)
	);
	`
)

// UserLoader отвечает за загрузку пользовательских таблиц
type UserLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewUserLoader создает новый экземпляр UserLoader
func NewUserLoader(db *sql.DB, logger *utils.ETLLogger) *UserLoader {
	return &UserLoader{
		db:     db,
		logger: logger,
	}
}

// EnsureTables создает пользовательские таблицы, если они не существуют
func (l *UserLoader) EnsureTables() error {
	for _, ddl := range []string{ddlAggUser, ddlMapUser, ddlTopUser} {
		if err := ensureTable(l.db, ddl); err != nil {
			return err
		}
	}

	return nil
}

// Load заменяет содержимое трех пользовательских таблиц
func (l *UserLoader) Load(agg []models.AggUserRow, mp []models.MapUserRow, top []models.TopUserRow) error {
	if err := l.EnsureTables(); err != nil {
		return fmt.Errorf("ошибка при создании пользовательских таблиц: %w", err)
	}

	// 1. aggregated_user
	err := reloadTable(l.db, l.logger, "aggregated_user", `
		INSERT INTO aggregated_user
		(state, year, quarter, brand, user_count, percentage)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(agg), func(i int) []interface{} {
		r := agg[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.Brand, r.Count, r.Percentage}
	})
	if err != nil {
		return err
	}

	// 2. map_user
	err = reloadTable(l.db, l.logger, "map_user", `
		INSERT INTO map_user
		(state, year, quarter, district, registered_users, app_opens)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(mp), func(i int) []interface{} {
		r := mp[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.District, r.RegisteredUsers, r.AppOpens}
	})
	if err != nil {
		return err
	}

	// 3. top_user
	return reloadTable(l.db, l.logger, "top_user", `
		INSERT INTO top_user
		(state, year, quarter, pincode, registered_users)
		VALUES (?, ?, ?, ?, ?)
	`, len(top), func(i int) []interface{} {
		r := top[i]
		return []interface{}{r.State, r.Year, r.Quarter, r.Pincode, r.RegisteredUsers}
	})
}
