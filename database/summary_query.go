package database

import (
	"database/sql"
	"fmt"
)

// Queries слой читающих агрегирующих запросов дашборда
type Queries struct {
	db *sql.DB
}

// NewQueries создает новый экземпляр Queries
func NewQueries(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// GetSummary возвращает значения KPI-панели по всем периодам
func (q *Queries) GetSummary() (*Summary, error) {
	var s Summary

	err := q.db.QueryRow(`
		SELECT
			IFNULL(SUM(transaction_count), 0),
			IFNULL(SUM(transaction_amount), 0)
		FROM aggregated_transaction
	`).Scan(&s.TotalTransactionCount, &s.TotalTransactionAmount)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчете итогов транзакций: %w", err)
	}

	err = q.db.QueryRow(`
		SELECT IFNULL(SUM(registered_users), 0)
		FROM top_user
	`).Scan(&s.TotalRegisteredUsers)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчете зарегистрированных пользователей: %w", err)
	}

	err = q.db.QueryRow(`
		SELECT IFNULL(SUM(insurance_amount), 0)
		FROM aggregated_insurance
	`).Scan(&s.TotalInsuranceAmount)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчете итогов страхования: %w", err)
	}

	return &s, nil
}

// GetFilters возвращает доступные значения фильтров дашборда
func (q *Queries) GetFilters() (*Filters, error) {
	var f Filters

	rows, err := q.db.Query(`SELECT DISTINCT year FROM aggregated_transaction ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка лет: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("ошибка при чтении года: %w", err)
		}
		f.Years = append(f.Years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по годам: %w", err)
	}

	quarterRows, err := q.db.Query(`SELECT DISTINCT quarter FROM aggregated_transaction ORDER BY quarter`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка кварталов: %w", err)
	}
	defer quarterRows.Close()

	for quarterRows.Next() {
		var quarter int
		if err := quarterRows.Scan(&quarter); err != nil {
			return nil, fmt.Errorf("ошибка при чтении квартала: %w", err)
		}
		f.Quarters = append(f.Quarters, quarter)
	}
	if err := quarterRows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по кварталам: %w", err)
	}

	stateRows, err := q.db.Query(`SELECT DISTINCT state FROM aggregated_transaction ORDER BY state`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка штатов: %w", err)
	}
	defer stateRows.Close()

	for stateRows.Next() {
		var state string
		if err := stateRows.Scan(&state); err != nil {
			return nil, fmt.Errorf("ошибка при чтении штата: %w", err)
		}
		f.States = append(f.States, state)
	}
	if err := stateRows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по штатам: %w", err)
	}

	return &f, nil
}

// GetLatestPeriod возвращает последний загруженный период
func (q *Queries) GetLatestPeriod() (*Period, error) {
	var p Period

	err := q.db.QueryRow(`
		SELECT year, quarter
		FROM aggregated_transaction
		ORDER BY year DESC, quarter DESC
		LIMIT 1
	`).Scan(&p.Year, &p.Quarter)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("хранилище не содержит данных")
		}
		return nil, fmt.Errorf("ошибка при определении последнего периода: %w", err)
	}

	return &p, nil
}
