// routes/geo_handlers.go
package routes

import (
	"log"
	"net/http"

	"github.com/Nikhil6906/Phonepe-transaction-insights/charts"
	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
	"github.com/Nikhil6906/Phonepe-transaction-insights/geo"
)

// writeFigure отправляет готовую фигуру Plotly в формате JSON
func writeFigure(w http.ResponseWriter, p *charts.Plot) {
	body, err := p.JSON()
	if err != nil {
		log.Printf("Ошибка при сериализации фигуры: %v", err)
		http.Error(w, "Ошибка при построении карты", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// choroplethFigure собирает хороплет Индии из значений по штатам.
// Штаты, отсутствующие в геометрии, на карту не попадают.
func choroplethFigure(fc *geo.FeatureCollection, values []database.StateValue, title, colorScale, colorbarTitle string) *charts.Plot {
	known := fc.StateNames()

	var locations []string
	var z []float64
	for _, v := range values {
		if !known[v.State] {
			log.Printf("Штат %q отсутствует в геометрии, пропускаем на карте", v.State)
			continue
		}
		locations = append(locations, v.State)
		z = append(z, v.Amount)
	}

	p := charts.NewPlot(
		charts.WithTitle(title),
		charts.WithHeight(620),
		charts.WithIndiaGeo(),
	)
	p.AddChoropleth(fc, locations, z, colorScale, colorbarTitle)

	return p
}

// MapTransactionsHandler обрабатывает запросы на получение хороплета платежей
func MapTransactionsHandler(queries *database.Queries, fc *geo.FeatureCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		values, err := queries.GetMapTransactionTotals(year, quarter)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		p := choroplethFigure(fc, values, "Сумма платежей по штатам", "Blues", "Сумма, ₹")
		writeFigure(w, p)
	}
}

// MapUsersHandler обрабатывает запросы на получение хороплета пользователей
func MapUsersHandler(queries *database.Queries, fc *geo.FeatureCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		rows, err := queries.GetUserStateTotals(year, quarter)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		// Приводим к общему виду: значение карты - зарегистрированные пользователи
		values := make([]database.StateValue, 0, len(rows))
		for _, row := range rows {
			values = append(values, database.StateValue{
				State:  row.State,
				Count:  row.RegisteredUsers,
				Amount: float64(row.RegisteredUsers),
			})
		}

		p := choroplethFigure(fc, values, "Зарегистрированные пользователи по штатам", "Purples", "Пользователи")
		writeFigure(w, p)
	}
}

// MapInsuranceHandler обрабатывает запросы на получение хороплета страховок
func MapInsuranceHandler(queries *database.Queries, fc *geo.FeatureCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		values, err := queries.GetMapInsuranceTotals(year, quarter)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		p := choroplethFigure(fc, values, "Сумма страховых премий по штатам", "Greens", "Сумма, ₹")
		writeFigure(w, p)
	}
}
