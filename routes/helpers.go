// routes/helpers.go
package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

// Допустимые размеры выборки топов
const (
	defaultTopLimit = 10
	maxTopLimit     = 50
)

// writeJSON отправляет ответ в формате JSON
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Ошибка при сериализации ответа: %v", err)
	}
}

// writeStoreError отвечает 500 и пишет причину в лог
func writeStoreError(w http.ResponseWriter, err error) {
	log.Printf("Ошибка при запросе к базе данных: %v", err)
	http.Error(w, "Ошибка при получении данных", http.StatusInternalServerError)
}

// parsePeriod извлекает обязательные параметры year и quarter.
// При отсутствии или неверном формате отвечает 400 и возвращает ok=false.
func parsePeriod(w http.ResponseWriter, r *http.Request) (year, quarter int, ok bool) {
	query := r.URL.Query()

	yearStr := query.Get("year")
	quarterStr := query.Get("quarter")

	if yearStr == "" || quarterStr == "" {
		http.Error(w, "Отсутствуют обязательные параметры year и quarter", http.StatusBadRequest)
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		http.Error(w, "Неверный формат параметра year", http.StatusBadRequest)
		return 0, 0, false
	}

	quarter, err = strconv.Atoi(quarterStr)
	if err != nil || quarter < 1 || quarter > 4 {
		http.Error(w, "Неверный формат параметра quarter", http.StatusBadRequest)
		return 0, 0, false
	}

	return year, quarter, true
}

// parseLimit извлекает необязательный параметр limit.
// При отсутствии возвращает значение по умолчанию, при неверном формате отвечает 400.
func parseLimit(w http.ResponseWriter, r *http.Request) (limit int, ok bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return defaultTopLimit, true
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxTopLimit {
		http.Error(w, "Неверный формат параметра limit", http.StatusBadRequest)
		return 0, false
	}

	return limit, true
}
