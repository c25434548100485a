package trends

// Метрики, для которых строятся квартальные тренды
const (
	MetricTransactionAmount = "transaction_amount"
	MetricTransactionCount  = "transaction_count"
	MetricInsuranceAmount   = "insurance_amount"
	MetricRegisteredUsers   = "registered_users"
)

// Metrics список всех поддерживаемых метрик
var Metrics = []string{
	MetricTransactionAmount,
	MetricTransactionCount,
	MetricInsuranceAmount,
	MetricRegisteredUsers,
}

// QuarterPoint представляет суммарное значение метрики за один квартал
type QuarterPoint struct {
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Value   float64 `json:"value"`
}

// Index возвращает порядковый номер квартала на непрерывной оси
func (p QuarterPoint) Index() float64 {
	return float64(p.Year*4 + p.Quarter - 1)
}

// RegressionResult содержит результаты подгонки линейного тренда
type RegressionResult struct {
	Metric    string         `json:"metric"`
	Slope     float64        `json:"slope"`     // Прирост метрики за квартал
	Intercept float64        `json:"intercept"` // Значение на нулевом индексе оси
	R         float64        `json:"r"`         // Коэффициент корреляции Пирсона
	R2        float64        `json:"r2"`        // Коэффициент детерминации
	Points    []QuarterPoint `json:"points"`    // Исходные квартальные точки
}

// ForecastPoint представляет прогноз метрики на будущий квартал
type ForecastPoint struct {
	Metric  string  `json:"metric"`
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Value   float64 `json:"value"`
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
}
