package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// perform выполняет обработчик и возвращает код ответа
func perform(handler http.HandlerFunc, url string) int {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec.Code
}

// Запросы без обязательных параметров периода отклоняются до обращения к базе
func TestPeriodValidation(t *testing.T) {
	handler := TransactionStatesHandler(nil)

	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/states"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/states?year=2022"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/states?quarter=1"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/states?year=abc&quarter=1"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/states?year=2022&quarter=5"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/states?year=2022&quarter=0"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/states?year=1900&quarter=1"))
}

// Неверный параметр limit отклоняется до обращения к базе
func TestLimitValidation(t *testing.T) {
	handler := TopTransactionsHandler(nil)

	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/top?year=2022&quarter=1&limit=0"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/top?year=2022&quarter=1&limit=abc"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/top?year=2022&quarter=1&limit=999"))
}

// Неизвестное значение параметра by отклоняется
func TestTopByValidation(t *testing.T) {
	handler := TopTransactionsHandler(nil)

	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/transactions/top?year=2022&quarter=1&by=village"))
}

// Запросы прогноза без метрики или с неизвестной метрикой отклоняются
func TestForecastMetricValidation(t *testing.T) {
	handler := ForecastHandler(nil)

	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/trends/forecast"))
	assert.Equal(t, http.StatusBadRequest, perform(handler, "/api/trends/forecast?metric=unknown"))
}
