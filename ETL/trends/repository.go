package trends

import (
	"database/sql"
	"fmt"
)

// ForecastRepository интерфейс для работы с хранилищем прогнозов
type ForecastRepository interface {
	// EnsureTableExists проверяет наличие таблицы и создает ее при необходимости
	EnsureTableExists() error

	// SaveForecasts заменяет прогнозы метрики новым набором
	SaveForecasts(result *RegressionResult, forecasts []ForecastPoint) error

	// GetForecasts получает сохраненные прогнозы метрики
	GetForecasts(metric string) ([]ForecastPoint, error)
}

// MySQLForecastRepository реализация ForecastRepository для MySQL
type MySQLForecastRepository struct {
	db *sql.DB
}

// NewMySQLForecastRepository создает новый репозиторий для работы с прогнозами
func NewMySQLForecastRepository(db *sql.DB) *MySQLForecastRepository {
	return &MySQLForecastRepository{
		db: db,
	}
}

// EnsureTableExists проверяет наличие таблицы и создает ее при необходимости
func (r *MySQLForecastRepository) EnsureTableExists() error {
	query := `
	CREATE TABLE IF NOT EXISTS trend_forecasts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		metric VARCHAR(50) NOT NULL,
		slope DOUBLE NOT NULL,
		intercept DOUBLE NOT NULL,
		r DOUBLE NOT NULL,
		r2 DOUBLE NOT NULL,
		forecast_year INT NOT NULL,
		forecast_quarter INT NOT NULL,
		forecast_value DOUBLE NOT NULL,
		ci_lower DOUBLE NOT NULL,
		ci_upper DOUBLE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_metric (metric),
		INDEX idx_forecast_period (forecast_year, forecast_quarter)
	);`

	_, err := r.db.Exec(query)
	return err
}

// SaveForecasts заменяет прогнозы метрики новым набором в одной транзакции
func (r *MySQLForecastRepository) SaveForecasts(result *RegressionResult, forecasts []ForecastPoint) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}

	// Удаляем прежние прогнозы метрики
	if _, err := tx.Exec("DELETE FROM trend_forecasts WHERE metric = ?", result.Metric); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при удалении прежних прогнозов метрики %s: %w", result.Metric, err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO trend_forecasts
		(metric, slope, intercept, r, r2, forecast_year, forecast_quarter, forecast_value, ci_lower, ci_upper)
	VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при подготовке запроса вставки прогнозов: %w", err)
	}
	defer stmt.Close()

	for _, f := range forecasts {
		_, err := stmt.Exec(
			result.Metric,
			result.Slope,
			result.Intercept,
			result.R,
			result.R2,
			f.Year,
			f.Quarter,
			f.Value,
			f.CILower,
			f.CIUpper,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("ошибка при сохранении прогноза метрики %s: %w", result.Metric, err)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при фиксации транзакции прогнозов: %w", err)
	}

	return nil
}

// GetForecasts получает сохраненные прогнозы метрики
func (r *MySQLForecastRepository) GetForecasts(metric string) ([]ForecastPoint, error) {
	query := `
	SELECT metric, forecast_year, forecast_quarter, forecast_value, ci_lower, ci_upper
	FROM trend_forecasts
	WHERE metric = ?
	ORDER BY forecast_year, forecast_quarter;`

	rows, err := r.db.Query(query, metric)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении прогнозов метрики %s: %w", metric, err)
	}
	defer rows.Close()

	var forecasts []ForecastPoint
	for rows.Next() {
		var f ForecastPoint
		if err := rows.Scan(&f.Metric, &f.Year, &f.Quarter, &f.Value, &f.CILower, &f.CIUpper); err != nil {
			return nil, fmt.Errorf("ошибка при чтении прогноза метрики %s: %w", metric, err)
		}
		forecasts = append(forecasts, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по прогнозам метрики %s: %w", metric, err)
	}

	return forecasts, nil
}
