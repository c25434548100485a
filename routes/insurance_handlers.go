// routes/insurance_handlers.go
package routes

import (
	"net/http"

	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
)

// InsuranceStatesHandler обрабатывает запросы на получение сумм страховых
// премий по штатам
func InsuranceStatesHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		states, err := queries.GetInsuranceStateTotals(year, quarter)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, states)
	}
}

// InsuranceTrendHandler обрабатывает запросы на получение квартального ряда
// сумм страховых премий
func InsuranceTrendHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")

		trend, err := queries.GetInsuranceTrend(state)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, trend)
	}
}

// TopInsuranceResponse структура ответа API топов по страховкам
type TopInsuranceResponse struct {
	States   []database.StateValue   `json:"states"`
	Pincodes []database.PincodeValue `json:"pincodes"`
}

// TopInsuranceHandler обрабатывает запросы на получение лидеров по страховкам
func TopInsuranceHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		states, err := queries.GetTopInsuranceStates(year, quarter, limit)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		pincodes, err := queries.GetTopInsurancePincodes(year, quarter, limit)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, TopInsuranceResponse{States: states, Pincodes: pincodes})
	}
}
