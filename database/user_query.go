package database

import (
	"fmt"
)

// GetBrandShares возвращает распределение пользователей по брендам устройств
// за указанный период
func (q *Queries) GetBrandShares(year, quarter, limit int) ([]BrandShare, error) {
	rows, err := q.db.Query(`
		SELECT brand, SUM(user_count), AVG(percentage)
		FROM aggregated_user
		WHERE year = ? AND quarter = ?
		GROUP BY brand
		ORDER BY SUM(user_count) DESC
		LIMIT ?
	`, year, quarter, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе распределения по брендам: %w", err)
	}
	defer rows.Close()

	var result []BrandShare
	for rows.Next() {
		var v BrandShare
		if err := rows.Scan(&v.Brand, &v.Count, &v.Percentage); err != nil {
			return nil, fmt.Errorf("ошибка при чтении бренда: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по брендам: %w", err)
	}

	return result, nil
}

// GetUserEngagement возвращает вовлеченность пользователей по штатам:
// отношение открытий приложения к числу зарегистрированных пользователей
func (q *Queries) GetUserEngagement(year, quarter, limit int) ([]EngagementRow, error) {
	rows, err := q.db.Query(`
		SELECT
			state,
			SUM(registered_users),
			SUM(app_opens),
			SUM(app_opens) / (SUM(registered_users) + 1)
		FROM map_user
		WHERE year = ? AND quarter = ?
		GROUP BY state
		ORDER BY SUM(app_opens) / (SUM(registered_users) + 1) DESC
		LIMIT ?
	`, year, quarter, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе вовлеченности: %w", err)
	}
	defer rows.Close()

	var result []EngagementRow
	for rows.Next() {
		var v EngagementRow
		if err := rows.Scan(&v.State, &v.RegisteredUsers, &v.AppOpens, &v.EngagementRate); err != nil {
			return nil, fmt.Errorf("ошибка при чтении вовлеченности: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по вовлеченности: %w", err)
	}

	return result, nil
}

// GetUserStateTotals возвращает пользователей и открытия приложения
// по штатам за указанный период
func (q *Queries) GetUserStateTotals(year, quarter int) ([]EngagementRow, error) {
	rows, err := q.db.Query(`
		SELECT
			state,
			SUM(registered_users),
			SUM(app_opens),
			SUM(app_opens) / (SUM(registered_users) + 1)
		FROM map_user
		WHERE year = ? AND quarter = ?
		GROUP BY state
		ORDER BY state
	`, year, quarter)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе пользователей по штатам: %w", err)
	}
	defer rows.Close()

	var result []EngagementRow
	for rows.Next() {
		var v EngagementRow
		if err := rows.Scan(&v.State, &v.RegisteredUsers, &v.AppOpens, &v.EngagementRate); err != nil {
			return nil, fmt.Errorf("ошибка при чтении пользователей штата: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по пользователям штатов: %w", err)
	}

	return result, nil
}

// GetUserTrend возвращает квартальный ряд зарегистрированных пользователей.
// Пустой state означает ряд по всей стране.
func (q *Queries) GetUserTrend(state string) ([]TrendPoint, error) {
	query := `
		SELECT year, quarter, SUM(registered_users)
		FROM map_user
		GROUP BY year, quarter
		ORDER BY year, quarter
	`
	args := []interface{}{}

	if state != "" {
		query = `
			SELECT year, quarter, SUM(registered_users)
			FROM map_user
			WHERE state = ?
			GROUP BY year, quarter
			ORDER BY year, quarter
		`
		args = append(args, state)
	}

	rows, err := q.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе ряда пользователей: %w", err)
	}
	defer rows.Close()

	var result []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Year, &p.Quarter, &p.Value); err != nil {
			return nil, fmt.Errorf("ошибка при чтении точки ряда пользователей: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по ряду пользователей: %w", err)
	}

	return result, nil
}

// GetTopUserDistricts возвращает районы с наибольшим числом
// зарегистрированных пользователей
func (q *Queries) GetTopUserDistricts(year, quarter, limit int) ([]DistrictValue, error) {
	rows, err := q.db.Query(`
		SELECT state, district, SUM(registered_users), SUM(app_opens)
		FROM map_user
		WHERE year = ? AND quarter = ?
		GROUP BY state, district
		ORDER BY SUM(registered_users) DESC
		LIMIT ?
	`, year, quarter, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе топа районов по пользователям: %w", err)
	}
	defer rows.Close()

	var result []DistrictValue
	for rows.Next() {
		var v DistrictValue
		var appOpens int64
		if err := rows.Scan(&v.State, &v.District, &v.Count, &appOpens); err != nil {
			return nil, fmt.Errorf("ошибка при чтении района по пользователям: %w", err)
		}
		v.Amount = float64(appOpens)
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по районам по пользователям: %w", err)
	}

	return result, nil
}
