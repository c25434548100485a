package database

import (
	"fmt"
)

// GetInsuranceStateTotals возвращает суммы страховых премий по штатам
// за указанный период
func (q *Queries) GetInsuranceStateTotals(year, quarter int) ([]StateValue, error) {
	rows, err := q.db.Query(`
		SELECT state, SUM(insurance_count), SUM(insurance_amount)
		FROM map_insurance
		WHERE year = ? AND quarter = ?
		GROUP BY state
		ORDER BY state
	`, year, quarter)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе страховок по штатам: %w", err)
	}
	defer rows.Close()

	var result []StateValue
	for rows.Next() {
		var v StateValue
		if err := rows.Scan(&v.State, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении страховок штата: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по страховкам штатов: %w", err)
	}

	return result, nil
}

// GetInsuranceTrend возвращает квартальный ряд сумм страховых премий.
// Пустой state означает ряд по всей стране.
func (q *Queries) GetInsuranceTrend(state string) ([]TrendPoint, error) {
	query := `
		SELECT year, quarter, SUM(insurance_amount)
		FROM aggregated_insurance
		GROUP BY year, quarter
		ORDER BY year, quarter
	`
	args := []interface{}{}

	if state != "" {
		query = `
			SELECT year, quarter, SUM(insurance_amount)
			FROM map_insurance
			WHERE state = ?
			GROUP BY year, quarter
			ORDER BY year, quarter
		`
		args = append(args, state)
	}

	rows, err := q.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе ряда страховок: %w", err)
	}
	defer rows.Close()

	var result []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Year, &p.Quarter, &p.Value); err != nil {
			return nil, fmt.Errorf("ошибка при чтении точки ряда страховок: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по ряду страховок: %w", err)
	}

	return result, nil
}

// GetTopInsuranceStates возвращает штаты с наибольшей суммой страховых премий
func (q *Queries) GetTopInsuranceStates(year, quarter, limit int) ([]StateValue, error) {
	rows, err := q.db.Query(`
		SELECT state, SUM(insurance_count), SUM(insurance_amount)
		FROM map_insurance
		WHERE year = ? AND quarter = ?
		GROUP BY state
		ORDER BY SUM(insurance_amount) DESC
		LIMIT ?
	`, year, quarter, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе топа штатов по страховкам: %w", err)
	}
	defer rows.Close()

	var result []StateValue
	for rows.Next() {
		var v StateValue
		if err := rows.Scan(&v.State, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении штата по страховкам: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по штатам по страховкам: %w", err)
	}

	return result, nil
}

// GetTopInsurancePincodes возвращает пинкоды с наибольшей суммой страховых премий
func (q *Queries) GetTopInsurancePincodes(year, quarter, limit int) ([]PincodeValue, error) {
	rows, err := q.db.Query(`
		SELECT state, pincode, SUM(insurance_count), SUM(insurance_amount)
		FROM top_insurance
		WHERE year = ? AND quarter = ?
		GROUP BY state, pincode
		ORDER BY SUM(insurance_amount) DESC
		LIMIT ?
	`, year, quarter, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе топа пинкодов по страховкам: %w", err)
	}
	defer rows.Close()

	var result []PincodeValue
	for rows.Next() {
		var v PincodeValue
		if err := rows.Scan(&v.State, &v.Pincode, &v.Count, &v.Amount); err != nil {
			return nil, fmt.Errorf("ошибка при чтении пинкода по страховкам: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по пинкодам по страховкам: %w", err)
	}

	return result, nil
}

// GetMapInsuranceTotals возвращает данные для хороплета по страховкам
func (q *Queries) GetMapInsuranceTotals(year, quarter int) ([]StateValue, error) {
	return q.GetInsuranceStateTotals(year, quarter)
}
