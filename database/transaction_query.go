package database

import (
	"fmt"
)

// GetTransactionStateTotals возвращает суммы транзакций по штатам
// за указанный период
func (q *Queries) GetTransactionStateTotals(year, quarter int) ([]StateValue, error) {
	rows, err := q.db.Query(`
		SELECT state, SUM(transaction_count), SUM(transaction_amount)
		FROM aggregated_transaction
		WHERE year = ? AND quarter = ?
		GROUP BY state
		ORDER BY state
	`, year, quarter)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе сумм по штатам: %w", err)
	}
	defer rows.Close()

	var result []StateValue
	for rows.Next() {
		var v StateValue
		if err := rows.Scan(&v.State, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении суммы по штату: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по штатам: %w", err)
	}

	return result, nil
}

// GetTransactionTypeSplit возвращает распределение по категориям платежей
// за указанный период
func (q *Queries) GetTransactionTypeSplit(year, quarter int) ([]TypeValue, error) {
	rows, err := q.db.Query(`
		SELECT transaction_type, SUM(transaction_count), SUM(transaction_amount)
		FROM aggregated_transaction
		WHERE year = ? AND quarter = ?
		GROUP BY transaction_type
		ORDER BY SUM(transaction_count) DESC
	`, year, quarter)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе распределения по категориям: %w", err)
	}
	defer rows.Close()

	var result []TypeValue
	for rows.Next() {
		var v TypeValue
		if err := rows.Scan(&v.Type, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении категории: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по категориям: %w", err)
	}

	return result, nil
}

// GetTransactionTrend возвращает квартальный ряд сумм транзакций.
// Пустой state означает ряд по всей стране.
func (q *Queries) GetTransactionTrend(state string) ([]TrendPoint, error) {
	query := `
		SELECT year, quarter, SUM(transaction_amount)
		FROM aggregated_transaction
		GROUP BY year, quarter
		ORDER BY year, quarter
	`
	args := []interface{}{}

	if state != "" {
		query = `
			SELECT year, quarter, SUM(transaction_amount)
			FROM aggregated_transaction
			WHERE state = ?
			GROUP BY year, quarter
			ORDER BY year, quarter
		`
		args = append(args, state)
	}

	rows, err := q.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе квартального ряда: %w", err)
	}
	defer rows.Close()

	var result []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Year, &p.Quarter, &p.Value); err != nil {
			return nil, fmt.Errorf("ошибка при чтении точки ряда: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по ряду: %w", err)
	}

	return result, nil
}

// GetTopTransactionStates возвращает штаты с наибольшей суммой транзакций
func (q *Queries) GetTopTransactionStates(year, quarter, limit int) ([]StateValue, error) {
	rows, err := q.db.Query(`
		SELECT state, SUM(transaction_count), SUM(transaction_amount)
		FROM aggregated_transaction
		WHERE year = ? AND quarter = ?
		GROUP BY state
		ORDER BY SUM(transaction_amount) DESC
		LIMIT ?
	`, year, quarter, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе топа штатов: %w", err)
	}
	defer rows.Close()

	var result []StateValue
	for rows.Next() {
		var v StateValue
		if err := rows.Scan(&v.State, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении штата: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по топу штатов: %w", err)
	}

	return result, nil
}

// GetTopTransactionDistricts возвращает районы с наибольшей суммой транзакций
func (q *Queries) GetTopTransactionDistricts(year, quarter, limit int) ([]DistrictValue, error) {
	rows, err := q.db.Query(`
		SELECT state, district, SUM(transaction_count), SUM(transaction_amount)
		FROM map_transaction
		WHERE year = ? AND quarter = ?
		GROUP BY state, district
		ORDER BY SUM(transaction_amount) DESC
		LIMIT ?
	`, year, quarter, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе топа районов: %w", err)
	}
	defer rows.Close()

	var result []DistrictValue
	for rows.Next() {
		var v DistrictValue
		if err := rows.Scan(&v.State, &v.District, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении района: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по топу районов: %w", err)
	}

	return result, nil
}

// GetTopTransactionPincodes возвращает пинкоды с наибольшей суммой транзакций
func (q *Queries) GetTopTransactionPincodes(year, quarter, limit int) ([]PincodeValue, error) {
	rows, err := q.db.Query(`
		SELECT state, pincode, SUM(transaction_count), SUM(transaction_amount)
		FROM top_transaction
		WHERE year = ? AND quarter = ?
		GROUP BY state, pincode
		ORDER BY SUM(transaction_amount) DESC
		LIMIT ?
	`, year, quarter, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе топа пинкодов: %w", err)
	}
	defer rows.Close()

	var result []PincodeValue
	for rows.Next() {
		var v PincodeValue
		if err := rows.Scan(&v.State, &v.Pincode, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении пинкода: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по топу пинкодов: %w", err)
	}

	return result, nil
}

// GetMapTransactionTotals возвращает суммы транзакций по штатам
// из картографического набора за указанный период
func (q *Queries) GetMapTransactionTotals(year, quarter int) ([]StateValue, error) {
	rows, err := q.db.Query(`
		SELECT state, SUM(transaction_count), SUM(transaction_amount)
		FROM map_transaction
		WHERE year = ? AND quarter = ?
		GROUP BY state
		ORDER BY state
	`, year, quarter)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе картографических сумм: %w", err)
	}
	defer rows.Close()

	var result []StateValue
	for rows.Next() {
		var v StateValue
		if err := rows.Scan(&v.State, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении картографической суммы: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по картографическим суммам: %w", err)
	}

	return result, nil
}
