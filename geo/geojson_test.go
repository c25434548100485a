package geo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"NAME_1": "Orissa"},
			"geometry": {"type": "Polygon", "coordinates": [[[84.0, 19.0], [85.0, 19.0], [85.0, 20.0], [84.0, 19.0]]]}
		},
		{
			"type": "Feature",
			"properties": {"NAME_1": "Maharashtra"},
			"geometry": {"type": "Polygon", "coordinates": [[[73.0, 18.0], [74.0, 18.0], [74.0, 19.0], [73.0, 18.0]]]}
		}
	]
}`

func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "states.geojson")
	require.NoError(t, os.WriteFile(path, []byte(sampleGeoJSON), 0644))
	return path
}

// При загрузке названия штатов стандартизируются, включая переименования
func TestLoadStandardizesNames(t *testing.T) {
	fc, err := Load(writeSample(t))
	require.NoError(t, err)

	require.Len(t, fc.Features, 2)
	assert.Equal(t, "odisha", fc.Features[0].Properties["State_Name"])
	assert.Equal(t, "maharashtra", fc.Features[1].Properties["State_Name"])

	names := fc.StateNames()
	assert.True(t, names["odisha"])
	assert.True(t, names["maharashtra"])
	assert.False(t, names["orissa"])
}

// Повторная загрузка читает сжатый кэш и дает тот же результат
func TestLoadCacheRoundTrip(t *testing.T) {
	path := writeSample(t)

	first, err := Load(path)
	require.NoError(t, err)
	require.FileExists(t, path+".cache")

	second, err := Load(path)
	require.NoError(t, err)

	require.Len(t, second.Features, len(first.Features))
	assert.Equal(t, first.Features[0].Properties["State_Name"], second.Features[0].Properties["State_Name"])
	assert.JSONEq(t, string(first.Features[0].Geometry), string(second.Features[0].Geometry))
}

// Устаревший кэш игнорируется, исходник разбирается заново
func TestLoadStaleCache(t *testing.T) {
	path := writeSample(t)

	_, err := Load(path)
	require.NoError(t, err)

	// Делаем кэш старше исходника
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path+".cache", old, old))

	fc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "odisha", fc.Features[0].Properties["State_Name"])
}

// Отсутствующий файл геометрии является ошибкой
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "нет.geojson"))
	require.Error(t, err)
}
