package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Идеально линейный ряд должен дать точные коэффициенты и r2 = 1
func TestFitLinearSeries(t *testing.T) {
	points := []QuarterPoint{
		{Year: 2022, Quarter: 1, Value: 100},
		{Year: 2022, Quarter: 2, Value: 110},
		{Year: 2022, Quarter: 3, Value: 120},
		{Year: 2022, Quarter: 4, Value: 130},
	}

	result, err := Fit(MetricTransactionAmount, points)
	require.NoError(t, err)

	assert.Equal(t, MetricTransactionAmount, result.Metric)
	assert.InDelta(t, 10.0, result.Slope, 0.001)
	assert.InDelta(t, 1.0, result.R, 0.001)
	assert.InDelta(t, 1.0, result.R2, 0.001)
}

// Менее трех точек недостаточно для подгонки
func TestFitTooFewPoints(t *testing.T) {
	points := []QuarterPoint{
		{Year: 2022, Quarter: 1, Value: 100},
		{Year: 2022, Quarter: 2, Value: 110},
	}

	_, err := Fit(MetricTransactionCount, points)
	require.Error(t, err)
}

// Ряд без вариации не дает определенного тренда: подгонка завершается
// ошибкой, и прогноз для такой метрики не строится
func TestFitConstantSeries(t *testing.T) {
	points := []QuarterPoint{
		{Year: 2022, Quarter: 1, Value: 500},
		{Year: 2022, Quarter: 2, Value: 500},
		{Year: 2022, Quarter: 3, Value: 500},
		{Year: 2022, Quarter: 4, Value: 500},
	}

	result, err := Fit(MetricInsuranceAmount, points)
	require.Error(t, err)
	assert.Nil(t, result)
}

// Прогноз продолжает ряд и корректно переходит через границу года
func TestForecastQuarterRollover(t *testing.T) {
	points := []QuarterPoint{
		{Year: 2022, Quarter: 1, Value: 100},
		{Year: 2022, Quarter: 2, Value: 112},
		{Year: 2022, Quarter: 3, Value: 119},
		{Year: 2022, Quarter: 4, Value: 131},
	}

	result, err := Fit(MetricTransactionAmount, points)
	require.NoError(t, err)

	forecasts := Forecast(result, 4, 0.95)
	require.Len(t, forecasts, 4)

	assert.Equal(t, 2023, forecasts[0].Year)
	assert.Equal(t, 1, forecasts[0].Quarter)
	assert.Equal(t, 2023, forecasts[3].Year)
	assert.Equal(t, 4, forecasts[3].Quarter)

	// Значения растут вместе с трендом, интервал охватывает прогноз
	for i, f := range forecasts {
		assert.Equal(t, MetricTransactionAmount, f.Metric)
		assert.Less(t, f.CILower, f.Value, "прогноз %d", i)
		assert.Greater(t, f.CIUpper, f.Value, "прогноз %d", i)
		if i > 0 {
			assert.Greater(t, f.Value, forecasts[i-1].Value)
		}
	}
}

// Интервал предсказания расширяется по мере удаления от наблюдений
func TestForecastWideningInterval(t *testing.T) {
	points := []QuarterPoint{
		{Year: 2021, Quarter: 1, Value: 95},
		{Year: 2021, Quarter: 2, Value: 108},
		{Year: 2021, Quarter: 3, Value: 117},
		{Year: 2021, Quarter: 4, Value: 133},
		{Year: 2022, Quarter: 1, Value: 142},
	}

	result, err := Fit(MetricRegisteredUsers, points)
	require.NoError(t, err)

	forecasts := Forecast(result, 3, 0.95)
	require.Len(t, forecasts, 3)

	firstWidth := forecasts[0].CIUpper - forecasts[0].CILower
	lastWidth := forecasts[2].CIUpper - forecasts[2].CILower
	assert.Greater(t, lastWidth, firstWidth)
}

// Округление до тысячных
func TestRoundToThousandth(t *testing.T) {
	assert.Equal(t, 1.235, RoundToThousandth(1.23456))
	assert.Equal(t, -0.001, RoundToThousandth(-0.0014))
	assert.Equal(t, 2.0, RoundToThousandth(2.0))
}
