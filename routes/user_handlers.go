// routes/user_handlers.go
package routes

import (
	"net/http"

	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
)

// UserBrandsHandler обрабатывает запросы на получение распределения
// пользователей по брендам устройств
func UserBrandsHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		brands, err := queries.GetBrandShares(year, quarter, limit)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, brands)
	}
}

// UserEngagementHandler обрабатывает запросы на получение вовлеченности
// пользователей по штатам
func UserEngagementHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		engagement, err := queries.GetUserEngagement(year, quarter, limit)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, engagement)
	}
}

// UserTrendHandler обрабатывает запросы на получение квартального ряда
// зарегистрированных пользователей
func UserTrendHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")

		trend, err := queries.GetUserTrend(state)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, trend)
	}
}
