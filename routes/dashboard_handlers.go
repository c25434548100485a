// routes/dashboard_handlers.go
package routes

import (
	"database/sql"
	"net/http"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/trends"
	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
)

// SummaryHandler обрабатывает запросы на получение значений KPI-панели
func SummaryHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := queries.GetSummary()
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, summary)
	}
}

// FiltersHandler обрабатывает запросы на получение доступных значений фильтров
func FiltersHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := queries.GetFilters()
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, filters)
	}
}

// ForecastResponse структура ответа API прогнозов
type ForecastResponse struct {
	Metric    string                 `json:"metric"`
	Forecasts []trends.ForecastPoint `json:"forecasts"`
}

// ForecastHandler обрабатывает запросы на получение прогноза метрики.
// Прогнозы рассчитываются ETL-процессом и читаются из таблицы trend_forecasts.
func ForecastHandler(db *sql.DB) http.HandlerFunc {
	repo := trends.NewMySQLForecastRepository(db)

	valid := make(map[string]bool, len(trends.Metrics))
	for _, m := range trends.Metrics {
		valid[m] = true
	}

	return func(w http.ResponseWriter, r *http.Request) {
		metric := r.URL.Query().Get("metric")
		if metric == "" {
			http.Error(w, "Отсутствует обязательный параметр metric", http.StatusBadRequest)
			return
		}
		if !valid[metric] {
			http.Error(w, "Неизвестная метрика", http.StatusBadRequest)
			return
		}

		forecasts, err := repo.GetForecasts(metric)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, ForecastResponse{Metric: metric, Forecasts: forecasts})
	}
}
