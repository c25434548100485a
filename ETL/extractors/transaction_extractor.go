package extractors

import (
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// TransactionExtractor отвечает за извлечение данных о транзакциях
// из всех трех гранулярностей выгрузки
type TransactionExtractor struct {
	dataDir string
	logger  *utils.ETLLogger
}

// NewTransactionExtractor создает новый экземпляр TransactionExtractor
func NewTransactionExtractor(dataDir string, logger *utils.ETLLogger) *TransactionExtractor {
	return &TransactionExtractor{
		dataDir: dataDir,
		logger:  logger,
	}
}

// ExtractAggregated извлекает строки для таблицы aggregated_transaction.
// Одна строка на категорию платежей в каждом документе.
func (e *TransactionExtractor) ExtractAggregated() ([]models.AggTransactionRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "aggregated", "transaction")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.AggTransactionRow
	skipped := 0

	for _, f := range files {
		var doc models.AggregatedTransactionDoc
		if err := decodeFile(f.Path, &doc); err != nil {
			e.logger.Error("Пропускаем поврежденный файл: %v", err)
			skipped++
			continue
		}

		for _, entry := range doc.Data.TransactionData {
			if len(entry.PaymentInstruments) == 0 {
				continue
			}

			instrument := entry.PaymentInstruments[0]
			rows = append(rows, models.AggTransactionRow{
				State:           f.State,
				Year:            f.Year,
				Quarter:         f.Quarter,
				TransactionType: entry.Name,
				Count:           instrument.Count,
				Amount:          instrument.Amount,
			})
		}
	}

	e.logger.Debug("aggregated/transaction: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}

// ExtractMap извлекает строки для таблицы map_transaction.
// Одна строка на район в каждом документе.
func (e *TransactionExtractor) ExtractMap() ([]models.MapTransactionRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "map", "transaction")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.MapTransactionRow
	skipped := 0

	for _, f := range files {
		var doc models.MapTransactionDoc
		if err := decodeFile(f.Path, &doc); err != nil {
			e.logger.Error("Пропускаем поврежденный файл: %v", err)
			skipped++
			continue
		}

		for _, entry := range doc.Data.HoverDataList {
			if len(entry.Metric) == 0 {
				continue
			}

			rows = append(rows, models.MapTransactionRow{
				State:    f.State,
				Year:     f.Year,
				Quarter:  f.Quarter,
				District: entry.Name,
				Count:    entry.Metric[0].Count,
				Amount:   entry.Metric[0].Amount,
			})
		}
	}

	e.logger.Debug("map/transaction: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}

// ExtractTop извлекает строки для таблицы top_transaction.
// Одна строка на пинкод в каждом документе.
func (e *TransactionExtractor) ExtractTop() ([]models.TopTransactionRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "top", "transaction")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.TopTransactionRow
	skipped := 0

	for _, f := range files {
		var doc models.TopTransactionDoc
		if err := decodeFile(f.Path, &doc); err != nil {
			e.logger.Error("Пропускаем поврежденный файл: %v", err)
			skipped++
			continue
		}

		for _, entity := range doc.Data.Pincodes {
			rows = append(rows, models.TopTransactionRow{
				State:   f.State,
				Year:    f.Year,
				Quarter: f.Quarter,
				Pincode: entity.EntityName,
				Count:   entity.Metric.Count,
				Amount:  entity.Metric.Amount,
			})
		}
	}

	e.logger.Debug("top/transaction: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}
