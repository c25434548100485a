package extractors

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// writePulseFile кладет документ выгрузки по ожидаемому пути каталога
func writePulseFile(t *testing.T, root, granularity, category, state string, year, quarter int, body string) {
	t.Helper()

	dir := filepath.Join(root, granularity, category, "country", "india", "state", state, strconv.Itoa(year))
	require.NoError(t, os.MkdirAll(dir, 0755))

	name := filepath.Join(dir, strconv.Itoa(quarter)+".json")
	require.NoError(t, os.WriteFile(name, []byte(body), 0644))
}

const aggTransactionBody = `{
	"success": true,
	"code": "SUCCESS",
	"data": {
		"from": 1640975400000,
		"to": 1648751400000,
		"transactionData": [
			{
				"name": "Recharge & bill payments",
				"paymentInstruments": [
					{"type": "TOTAL", "count": 1528, "amount": 559199.43}
				]
			},
			{
				"name": "Peer-to-peer payments",
				"paymentInstruments": [
					{"type": "TOTAL", "count": 4421, "amount": 13564474.12}
				]
			}
		]
	}
}`

const mapUserBody = `{
	"success": true,
	"code": "SUCCESS",
	"data": {
		"hoverData": {
			"pune district": {"registeredUsers": 9031, "appOpens": 45102},
			"nagpur district": {"registeredUsers": 3170, "appOpens": 10233}
		}
	}
}`

// Проверяем извлечение агрегированных транзакций из дерева выгрузки
func TestExtractAggregatedTransactions(t *testing.T) {
	root := t.TempDir()
	logger := utils.NewETLLoggerTo(io.Discard, false)

	writePulseFile(t, root, "aggregated", "transaction", "maharashtra", 2022, 1, aggTransactionBody)

	extractor := NewTransactionExtractor(root, logger)
	rows, skipped, err := extractor.ExtractAggregated()
	require.NoError(t, err)

	assert.Zero(t, skipped)
	require.Len(t, rows, 2)

	assert.Equal(t, "maharashtra", rows[0].State)
	assert.Equal(t, 2022, rows[0].Year)
	assert.Equal(t, 1, rows[0].Quarter)
	assert.Equal(t, "Recharge & bill payments", rows[0].TransactionType)
	assert.Equal(t, int64(1528), rows[0].Count)
	assert.InDelta(t, 559199.43, rows[0].Amount, 0.001)

	assert.Equal(t, "Peer-to-peer payments", rows[1].TransactionType)
}

// Поврежденный документ пропускается и учитывается в счетчике
func TestExtractSkipsMalformedFile(t *testing.T) {
	root := t.TempDir()
	logger := utils.NewETLLoggerTo(io.Discard, false)

	writePulseFile(t, root, "aggregated", "transaction", "goa", 2022, 1, `{"data": нет`)
	writePulseFile(t, root, "aggregated", "transaction", "kerala", 2022, 2, aggTransactionBody)

	extractor := NewTransactionExtractor(root, logger)
	rows, skipped, err := extractor.ExtractAggregated()
	require.NoError(t, err)

	assert.Equal(t, 1, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "kerala", rows[0].State)
	assert.Equal(t, 2, rows[0].Quarter)
}

// Отсутствующая категория не считается ошибкой
func TestExtractMissingCategory(t *testing.T) {
	root := t.TempDir()
	logger := utils.NewETLLoggerTo(io.Discard, false)

	extractor := NewInsuranceExtractor(root, logger)
	rows, skipped, err := extractor.ExtractAggregated()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Empty(t, rows)
}

// Районы из hoverData извлекаются в отсортированном порядке
func TestExtractMapUsersSortedDistricts(t *testing.T) {
	root := t.TempDir()
	logger := utils.NewETLLoggerTo(io.Discard, false)

	writePulseFile(t, root, "map", "user", "maharashtra", 2022, 1, mapUserBody)

	extractor := NewUserExtractor(root, logger)
	rows, skipped, err := extractor.ExtractMap()
	require.NoError(t, err)

	assert.Zero(t, skipped)
	require.Len(t, rows, 2)

	assert.Equal(t, "nagpur district", rows[0].District)
	assert.Equal(t, int64(3170), rows[0].RegisteredUsers)
	assert.Equal(t, int64(10233), rows[0].AppOpens)
	assert.Equal(t, "pune district", rows[1].District)
}

// Посторонние файлы и каталоги в дереве выгрузки игнорируются
func TestListPulseFilesIgnoresForeignEntries(t *testing.T) {
	root := t.TempDir()

	dir := filepath.Join(root, "top", "transaction", "country", "india", "state", "goa", "2022")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3.json"), []byte(`{}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte(`x`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "9.json"), []byte(`{}`), 0644))

	files, err := listPulseFiles(root, "top", "transaction")
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "goa", files[0].State)
	assert.Equal(t, 2022, files[0].Year)
	assert.Equal(t, 3, files[0].Quarter)
}
