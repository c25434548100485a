package extractors

import (
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// InsuranceExtractor отвечает за извлечение данных о страховых транзакциях.
// Формат документов совпадает с транзакционными, категорий обычно одна.
type InsuranceExtractor struct {
	dataDir string
	logger  *utils.ETLLogger
}

// NewInsuranceExtractor создает новый экземпляр InsuranceExtractor
func NewInsuranceExtractor(dataDir string, logger *utils.ETLLogger) *InsuranceExtractor {
	return &InsuranceExtractor{
		dataDir: dataDir,
		logger:  logger,
	}
}

// ExtractAggregated извлекает строки для таблицы aggregated_insurance
func (e *InsuranceExtractor) ExtractAggregated() ([]models.AggInsuranceRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "aggregated", "insurance")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.AggInsuranceRow
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
			rows = append(rows, models.AggInsuranceRow{
				State:         f.State,
				Year:          f.Year,
				Quarter:       f.Quarter,
				InsuranceType: entry.Name,
				Count:         instrument.Count,
				Amount:        instrument.Amount,
			})
		}
	}

	e.logger.Debug("aggregated/insurance: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}

// ExtractMap извлекает строки для таблицы map_insurance
func (e *InsuranceExtractor) ExtractMap() ([]models.MapInsuranceRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "map", "insurance")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.MapInsuranceRow
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

			rows = append(rows, models.MapInsuranceRow{
				State:    f.State,
				Year:     f.Year,
				Quarter:  f.Quarter,
				District: entry.Name,
				Count:    entry.Metric[0].Count,
				Amount:   entry.Metric[0].Amount,
			})
		}
	}

	e.logger.Debug("map/insurance: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}

// ExtractTop извлекает строки для таблицы top_insurance
func (e *InsuranceExtractor) ExtractTop() ([]models.TopInsuranceRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "top", "insurance")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.TopInsuranceRow
	skipped := 0

	for _, f := range files {
		var doc models.TopTransactionDoc
		if err := decodeFile(f.Path, &doc); err != nil {
			e.logger.Error("Пропускаем поврежденный файл: %v", err)
			skipped++
			continue
		}

		for _, entity := range doc.Data.Pincodes {
			rows = append(rows, models.TopInsuranceRow{
				State:   f.State,
				Year:    f.Year,
				Quarter: f.Quarter,
				Pincode: entity.EntityName,
				Count:   entity.Metric.Count,
				Amount:  entity.Metric.Amount,
			})
		}
	}

	e.logger.Debug("top/insurance: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}
