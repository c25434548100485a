package charts

import (
	"encoding/json"
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
)

// Plot обертка над фигурой Plotly, собираемой на стороне сервера.
// Сериализованная фигура отрисовывается клиентским plotly.js.
type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

// Opt функциональная опция настройки фигуры
type Opt func(plot *Plot) *Plot

// NewPlot создает новую фигуру с указанными опциями
func NewPlot(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

// WithTitle задает заголовок фигуры
func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

// WithWidth задает ширину фигуры в пикселях
func WithWidth(w float64) Opt {
	if w < 0.0 {
		panic(fmt.Errorf("отрицательная ширина"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		return p
	}
}

// WithHeight задает высоту фигуры в пикселях
func WithHeight(h float64) Opt {
	if h < 0.0 {
		panic(fmt.Errorf("отрицательная высота"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Height = h
		return p
	}
}

// WithXTitle задает подпись оси X
func WithXTitle(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}
		if p.Lay.Xaxis.Title == nil {
			p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{}
		}

		p.Lay.Xaxis.Title.Text = label
		return p
	}
}

// WithYTitle задает подпись оси Y
func WithYTitle(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		if p.Lay.Yaxis.Title == nil {
			p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{}
		}

		p.Lay.Yaxis.Title.Text = label
		return p
	}
}

// WithLegend управляет отображением легенды
func WithLegend(show bool) Opt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}
		return p
	}
}

// WithIndiaGeo настраивает географическую проекцию под карту Индии:
// коническая конформная проекция с границами по долготе 68–98 и широте 6–38
func WithIndiaGeo() Opt {
	return func(p *Plot) *Plot {
		p.Lay.Geo = &grob.LayoutGeo{
			Visible: grob.False,
			Projection: &grob.LayoutGeoProjection{
				Type:      grob.LayoutGeoProjectionTypeConicConformal,
				Parallels: []float64{12.47, 35.17},
				Rotation: &grob.LayoutGeoProjectionRotation{
					Lat: 24,
					Lon: 80,
				},
			},
			Lonaxis: &grob.LayoutGeoLonaxis{Range: []float64{68, 98}},
			Lataxis: &grob.LayoutGeoLataxis{Range: []float64{6, 38}},
		}
		p.Lay.Margin = &grob.LayoutMargin{R: 0, T: 50, L: 0, B: 0}
		return p
	}
}

// AddLine добавляет линейный график с маркерами
func (p *Plot) AddLine(seriesName string, x []string, y []float64, color string) {
	tr := &grob.Scatter{
		Type: grob.TraceTypeScatter,
		Name: seriesName,
		X:    x,
		Y:    y,
		Mode: grob.ScatterMode("lines+markers"),
		Line: &grob.ScatterLine{Color: color},
	}

	p.Fig.AddTraces(tr)
}

// AddBar добавляет столбчатую диаграмму
func (p *Plot) AddBar(seriesName string, x []string, y []float64) {
	tr := &grob.Bar{
		Type: grob.TraceTypeBar,
		Name: seriesName,
		X:    x,
		Y:    y,
	}

	p.Fig.AddTraces(tr)
}

// AddPie добавляет кольцевую диаграмму
func (p *Plot) AddPie(labels []string, values []float64, hole float64) {
	tr := &grob.Pie{
		Type:   grob.TraceTypePie,
		Labels: labels,
		Values: values,
		Hole:   hole,
	}

	p.Fig.AddTraces(tr)
}

// AddChoropleth добавляет фоновую картограмму поверх переданной геометрии.
// Значения сопоставляются с объектами геометрии по свойству State_Name.
func (p *Plot) AddChoropleth(geometry interface{}, locations []string, z []float64, colorScale, colorbarTitle string) {
	tr := &grob.Choropleth{
		Type:         grob.TraceTypeChoropleth,
		Geojson:      geometry,
		Featureidkey: "properties.State_Name",
		Locations:    locations,
		Z:            z,
		Colorscale:   colorScale,
		Marker: &grob.ChoroplethMarker{
			Line: &grob.ChoroplethMarkerLine{
				Color: "white",
				Width: 1.5,
			},
		},
		Colorbar: &grob.ChoroplethColorbar{
			Title: &grob.ChoroplethColorbarTitle{Text: colorbarTitle},
		},
	}

	p.Fig.AddTraces(tr)
}

// JSON сериализует фигуру для передачи клиенту
func (p *Plot) JSON() ([]byte, error) {
	data, err := json.Marshal(p.Fig)
	if err != nil {
		return nil, fmt.Errorf("ошибка при сериализации фигуры: %w", err)
	}

	return data, nil
}
