package trends

import (
	"database/sql"
	"fmt"
)

// DataService сервис для получения квартальных агрегатов из хранилища
type DataService struct {
	db *sql.DB
}

// NewDataService создает новый сервис для работы с данными
func NewDataService(db *sql.DB) *DataService {
	return &DataService{
		db: db,
	}
}

// Запросы квартальных сумм по метрикам
var metricQueries = map[string]string{
	MetricTransactionAmount: `
	SELECT year, quarter, SUM(transaction_amount)
	FROM aggregated_transaction
	GROUP BY year, quarter
	ORDER BY year, quarter;`,

	MetricTransactionCount: `
	SELECT year, quarter, SUM(transaction_count)
	FROM aggregated_transaction
	GROUP BY year, quarter
	ORDER BY year, quarter;`,

	MetricInsuranceAmount: `
	SELECT year, quarter, SUM(insurance_amount)
	FROM aggregated_insurance
	GROUP BY year, quarter
	ORDER BY year, quarter;`,

	MetricRegisteredUsers: `
	SELECT year, quarter, SUM(registered_users)
	FROM map_user
	GROUP BY year, quarter
	ORDER BY year, quarter;`,
}

// GetQuarterlyTotals получает квартальные суммы указанной метрики
func (s *DataService) GetQuarterlyTotals(metric string) ([]QuarterPoint, error) {
	query, ok := metricQueries[metric]
	if !ok {
		return nil, fmt.Errorf("неизвестная метрика: %s", metric)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при выполнении запроса для метрики %s: %w", metric, err)
	}
	defer rows.Close()

	var points []QuarterPoint
	for rows.Next() {
		var p QuarterPoint
		if err := rows.Scan(&p.Year, &p.Quarter, &p.Value); err != nil {
			return nil, fmt.Errorf("ошибка при чтении данных метрики %s: %w", metric, err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по результатам метрики %s: %w", metric, err)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("не найдены квартальные данные для метрики %s", metric)
	}

	return points, nil
}
