package charts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeFigure разбирает сериализованную фигуру в общий вид
func decodeFigure(t *testing.T, p *Plot) map[string]interface{} {
	t.Helper()

	body, err := p.JSON()
	require.NoError(t, err)

	var fig map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &fig))
	return fig
}

// Заголовок и размеры попадают в layout фигуры
func TestPlotLayoutOptions(t *testing.T) {
	p := NewPlot(
		WithTitle("Динамика платежей"),
		WithWidth(800),
		WithHeight(500),
		WithXTitle("Квартал"),
		WithYTitle("Сумма"),
	)

	fig := decodeFigure(t, p)
	layout := fig["layout"].(map[string]interface{})

	title := layout["title"].(map[string]interface{})
	assert.Equal(t, "Динамика платежей", title["text"])
	assert.EqualValues(t, 800, layout["width"])
	assert.EqualValues(t, 500, layout["height"])
}

// Линейный график содержит переданные точки и режим отрисовки
func TestAddLine(t *testing.T) {
	p := NewPlot(WithTitle("Ряд"))
	p.AddLine("платежи", []string{"2022 Q1", "2022 Q2"}, []float64{10, 20}, "#5f27cd")

	fig := decodeFigure(t, p)
	data := fig["data"].([]interface{})
	require.Len(t, data, 1)

	tr := data[0].(map[string]interface{})
	assert.Equal(t, "scatter", tr["type"])
	assert.Equal(t, "lines+markers", tr["mode"])
	assert.Equal(t, []interface{}{"2022 Q1", "2022 Q2"}, tr["x"])
}

// Картограмма привязывается к геометрии по свойству State_Name
func TestAddChoropleth(t *testing.T) {
	p := NewPlot(WithIndiaGeo())
	p.AddChoropleth(
		map[string]interface{}{"type": "FeatureCollection"},
		[]string{"maharashtra", "karnataka"},
		[]float64{100, 200},
		"Blues",
		"Сумма",
	)

	fig := decodeFigure(t, p)
	data := fig["data"].([]interface{})
	require.Len(t, data, 1)

	tr := data[0].(map[string]interface{})
	assert.Equal(t, "choropleth", tr["type"])
	assert.Equal(t, "properties.State_Name", tr["featureidkey"])
	assert.Equal(t, []interface{}{"maharashtra", "karnataka"}, tr["locations"])

	layout := fig["layout"].(map[string]interface{})
	geoLayout := layout["geo"].(map[string]interface{})
	projection := geoLayout["projection"].(map[string]interface{})
	assert.Equal(t, "conic conformal", projection["type"])
}

// Несколько графиков в одной фигуре сохраняют порядок добавления
func TestMultipleTraces(t *testing.T) {
	p := NewPlot()
	p.AddBar("штаты", []string{"goa"}, []float64{5})
	p.AddPie([]string{"p2p", "recharge"}, []float64{60, 40}, 0.45)

	fig := decodeFigure(t, p)
	data := fig["data"].([]interface{})
	require.Len(t, data, 2)

	assert.Equal(t, "bar", data[0].(map[string]interface{})["type"])
	assert.Equal(t, "pie", data[1].(map[string]interface{})["type"])
}
