// routes/transaction_handlers.go
package routes

import (
	"net/http"

	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
)

// TransactionStatesHandler обрабатывает запросы на получение сумм платежей по штатам
func TransactionStatesHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		states, err := queries.GetTransactionStateTotals(year, quarter)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, states)
	}
}

// TransactionTypesHandler обрабатывает запросы на получение распределения
// платежей по категориям
func TransactionTypesHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		types, err := queries.GetTransactionTypeSplit(year, quarter)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, types)
	}
}

// TransactionTrendHandler обрабатывает запросы на получение квартального ряда
// сумм платежей. Параметр state не обязателен: без него отдается ряд по всей стране.
func TransactionTrendHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")

		trend, err := queries.GetTransactionTrend(state)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, trend)
	}
}

// TopTransactionsResponse структура ответа API топов по платежам
type TopTransactionsResponse struct {
	States    []database.StateValue    `json:"states"`
	Districts []database.DistrictValue `json:"districts"`
	Pincodes  []database.PincodeValue  `json:"pincodes"`
}

// TopTransactionsHandler обрабатывает запросы на получение лидеров по платежам.
// Параметр by сужает ответ до одного среза (state, district или pincode);
// без него возвращаются все три.
func TopTransactionsHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		by := r.URL.Query().Get("by")
		switch by {
		case "", "state", "district", "pincode":
		default:
			http.Error(w, "Неверное значение параметра by", http.StatusBadRequest)
			return
		}

		var resp TopTransactionsResponse
		var err error

		if by == "" || by == "state" {
			resp.States, err = queries.GetTopTransactionStates(year, quarter, limit)
			if err != nil {
				writeStoreError(w, err)
				return
			}
		}

		if by == "" || by == "district" {
			resp.Districts, err = queries.GetTopTransactionDistricts(year, quarter, limit)
			if err != nil {
				writeStoreError(w, err)
				return
			}
		}

		if by == "" || by == "pincode" {
			resp.Pincodes, err = queries.GetTopTransactionPincodes(year, quarter, limit)
			if err != nil {
				writeStoreError(w, err)
				return
			}
		}

		writeJSON(w, resp)
	}
}
