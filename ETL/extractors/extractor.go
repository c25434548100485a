package extractors

import (
	"fmt"
	"time"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// Extractor координирует процесс извлечения данных из каталога выгрузки
type Extractor struct {
	dataDir            string
	logger             *utils.ETLLogger
	transactionExtract *TransactionExtractor
	userExtract        *UserExtractor
	insuranceExtract   *InsuranceExtractor
}

// NewExtractor создает новый экземпляр Extractor
func NewExtractor(dataDir string, logger *utils.ETLLogger) *Extractor {
	return &Extractor{
		dataDir:            dataDir,
		logger:             logger,
		transactionExtract: NewTransactionExtractor(dataDir, logger),
		userExtract:        NewUserExtractor(dataDir, logger),
		insuranceExtract:   NewInsuranceExtractor(dataDir, logger),
	}
}

// Extract выполняет извлечение всех девяти наборов строк из каталога выгрузки.
// Поврежденные файлы пропускаются и учитываются в счетчике SkippedFiles.
func (e *Extractor) Extract() (*models.ExtractedData, error) {
	startTime := time.Now()
	e.logger.LogExtractStart()

	var data models.ExtractedData
	var skipped int
	var err error

	// 1. Транзакции: aggregated, map, top
	data.AggTransactions, skipped, err = e.transactionExtract.ExtractAggregated()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении aggregated/transaction: %v", err)
		return nil, fmt.Errorf("ошибка извлечения aggregated/transaction: %w", err)
	}

	data.MapTransactions, skipped, err = e.transactionExtract.ExtractMap()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении map/transaction: %v", err)
		return nil, fmt.Errorf("ошибка извлечения map/transaction: %w", err)
	}

	data.TopTransactions, skipped, err = e.transactionExtract.ExtractTop()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении top/transaction: %v", err)
		return nil, fmt.Errorf("ошибка извлечения top/transaction: %w", err)
	}

	// 2. Пользователи: aggregated, map, top
	data.AggUsers, skipped, err = e.userExtract.ExtractAggregated()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении aggregated/user: %v", err)
		return nil, fmt.Errorf("ошибка извлечения aggregated/user: %w", err)
	}

	data.MapUsers, skipped, err = e.userExtract.ExtractMap()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении map/user: %v", err)
		return nil, fmt.Errorf("ошибка извлечения map/user: %w", err)
	}

	data.TopUsers, skipped, err = e.userExtract.ExtractTop()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении top/user: %v", err)
		return nil, fmt.Errorf("ошибка извлечения top/user: %w", err)
	}

	// 3. Страхование: aggregated, map, top
	data.AggInsurance, skipped, err = e.insuranceExtract.ExtractAggregated()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении aggregated/insurance: %v", err)
		return nil, fmt.Errorf("ошибка извлечения aggregated/insurance: %w", err)
	}

	data.MapInsurance, skipped, err = e.insuranceExtract.ExtractMap()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении map/insurance: %v", err)
		return nil, fmt.Errorf("ошибка извлечения map/insurance: %w", err)
	}

	data.TopInsurance, skipped, err = e.insuranceExtract.ExtractTop()
	data.SkippedFiles += skipped
	if err != nil {
		e.logger.Error("Ошибка при извлечении top/insurance: %v", err)
		return nil, fmt.Errorf("ошибка извлечения top/insurance: %w", err)
	}

	// Выводим информацию о завершении
	e.logger.LogExtractComplete(
		len(data.AggTransactions)+len(data.MapTransactions)+len(data.TopTransactions),
		len(data.AggUsers)+len(data.MapUsers)+len(data.TopUsers),
		len(data.AggInsurance)+len(data.MapInsurance)+len(data.TopInsurance),
		time.Since(startTime),
	)

	return &data, nil
}
