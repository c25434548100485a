// routes/chart_handlers.go
package routes

import (
	"fmt"
	"net/http"

	"github.com/Nikhil6906/Phonepe-transaction-insights/charts"
	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
)

// trendLabels превращает точки квартального ряда в подписи оси X
func trendLabels(points []database.TrendPoint) ([]string, []float64) {
	x := make([]string, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = fmt.Sprintf("%d Q%d", p.Year, p.Quarter)
		y[i] = p.Value
	}

	return x, y
}

// ChartTrendHandler отдает готовую фигуру линейного графика сумм платежей
func ChartTrendHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")

		points, err := queries.GetTransactionTrend(state)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		title := "Динамика сумм платежей"
		if state != "" {
			title = fmt.Sprintf("Динамика сумм платежей: %s", state)
		}

		p := charts.NewPlot(
			charts.WithTitle(title),
			charts.WithXTitle("Квартал"),
			charts.WithYTitle("Сумма, ₹"),
		)
		x, y := trendLabels(points)
		p.AddLine("платежи", x, y, "#5f27cd")

		writeFigure(w, p)
	}
}

// ChartTypesHandler отдает готовую кольцевую диаграмму категорий платежей
func ChartTypesHandler(queries *database.Queries) http.HandlerFunc {
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

		labels := make([]string, len(types))
		values := make([]float64, len(types))
		for i, t := range types {
			labels[i] = t.Type
			values[i] = t.Amount
		}

		p := charts.NewPlot(charts.WithTitle("Категории платежей"))
		p.AddPie(labels, values, 0.45)

		writeFigure(w, p)
	}
}

// ChartTopStatesHandler отдает готовую столбчатую диаграмму лидеров по платежам
func ChartTopStatesHandler(queries *database.Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		states, err := queries.GetTopTransactionStates(year, quarter, limit)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		x := make([]string, len(states))
		y := make([]float64, len(states))
		for i, s := range states {
			x[i] = s.State
			y[i] = s.Amount
		}

		p := charts.NewPlot(
			charts.WithTitle(fmt.Sprintf("Топ-%d штатов по сумме платежей", limit)),
			charts.WithYTitle("Сумма, ₹"),
			charts.WithLegend(false),
		)
		p.AddBar("штаты", x, y)

		writeFigure(w, p)
	}
}

// ChartBrandsHandler отдает готовую столбчатую диаграмму брендов устройств
func ChartBrandsHandler(queries *database.Queries) http.HandlerFunc {
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

		x := make([]string, len(brands))
		y := make([]float64, len(brands))
		for i, b := range brands {
			x[i] = b.Brand
			y[i] = float64(b.Count)
		}

		p := charts.NewPlot(
			charts.WithTitle("Бренды устройств"),
			charts.WithYTitle("Пользователи"),
			charts.WithLegend(false),
		)
		p.AddBar("бренды", x, y)

		writeFigure(w, p)
	}
}
