package trends

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RoundToThousandth округляет число до тысячных (3 знака после запятой)
func RoundToThousandth(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// Fit выполняет подгонку линейного тренда метрики по квартальным точкам
// методом наименьших квадратов
func Fit(metric string, points []QuarterPoint) (*RegressionResult, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("для подгонки тренда требуется минимум 3 квартала, получено: %d", len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Index()
		ys[i] = p.Value
	}

	// Коэффициенты линейной регрессии
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return nil, fmt.Errorf("все кварталы одинаковы, невозможно вычислить наклон")
	}

	// У ряда без вариации корреляция не определена: gonum возвращает NaN,
	// и порог по r² такой ряд не отфильтровал бы
	r := stat.Correlation(xs, ys, nil)
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)
	if math.IsNaN(r) || math.IsNaN(r2) || math.IsInf(r2, 0) {
		return nil, fmt.Errorf("метрика не меняется между кварталами, тренд не определен")
	}

	return &RegressionResult{
		Metric:    metric,
		Slope:     RoundToThousandth(slope),
		Intercept: RoundToThousandth(intercept),
		R:         RoundToThousandth(r),
		R2:        RoundToThousandth(r2),
		Points:    points,
	}, nil
}

// Forecast строит прогноз на следующие quarters кварталов после последней
// наблюдаемой точки с доверительным интервалом предсказания
func Forecast(result *RegressionResult, quarters int, confidenceLevel float64) []ForecastPoint {
	n := float64(len(result.Points))

	// Среднее и сумма квадратов отклонений по оси X
	var sumX, sumX2 float64
	for _, p := range result.Points {
		x := p.Index()
		sumX += x
		sumX2 += x * x
	}
	meanX := sumX / n
	sxx := sumX2 - n*meanX*meanX

	// Остаточная стандартная ошибка
	var sse float64
	for _, p := range result.Points {
		predicted := result.Intercept + result.Slope*p.Index()
		sse += (p.Value - predicted) * (p.Value - predicted)
	}
	se := math.Sqrt(sse / (n - 2))

	// Квантиль распределения Стьюдента для заданного уровня доверия
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 2}.Quantile(1 - (1-confidenceLevel)/2)

	last := result.Points[len(result.Points)-1]
	year, quarter := last.Year, last.Quarter

	forecasts := make([]ForecastPoint, 0, quarters)
	for i := 0; i < quarters; i++ {
		quarter++
		if quarter > 4 {
			quarter = 1
			year++
		}

		x := float64(year*4 + quarter - 1)
		predicted := result.Intercept + result.Slope*x

		// Интервал предсказания для отдельного наблюдения
		margin := t * se * math.Sqrt(1+1/n+(x-meanX)*(x-meanX)/sxx)

		forecasts = append(forecasts, ForecastPoint{
			Metric:  result.Metric,
			Year:    year,
			Quarter: quarter,
			Value:   RoundToThousandth(predicted),
			CILower: RoundToThousandth(predicted - margin),
			CIUpper: RoundToThousandth(predicted + margin),
		})
	}

	return forecasts
}
