package transform

import (
	"time"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// Transformer координирует процесс нормализации извлеченных данных
type Transformer struct {
	logger *utils.ETLLogger
}

// NewTransformer создает новый экземпляр Transformer
func NewTransformer(logger *utils.ETLLogger) *Transformer {
	return &Transformer{
		logger: logger,
	}
}

// Transform выполняет фазу Transform: стандартизация названий штатов
// и районов во всех извлеченных наборах строк. Данные изменяются на месте.
func (t *Transformer) Transform(data *models.ExtractedData) (*models.ExtractedData, error) {
	startTime := time.Now()
	t.logger.Info("Начало фазы Transform (Нормализация данных)")

	// 1. Агрегированные наборы
	for i := range data.AggTransactions {
		data.AggTransactions[i].State = StandardizeState(data.AggTransactions[i].State)
	}
	for i := range data.AggUsers {
		data.AggUsers[i].State = StandardizeState(data.AggUsers[i].State)
	}
	for i := range data.AggInsurance {
		data.AggInsurance[i].State = StandardizeState(data.AggInsurance[i].State)
	}

	// 2. Картографические наборы: помимо штата нормализуем район
	for i := range data.MapTransactions {
		data.MapTransactions[i].State = StandardizeState(data.MapTransactions[i].State)
		data.MapTransactions[i].District = NormalizeDistrict(data.MapTransactions[i].District)
	}
	for i := range data.MapUsers {
		data.MapUsers[i].State = StandardizeState(data.MapUsers[i].State)
		data.MapUsers[i].District = NormalizeDistrict(data.MapUsers[i].District)
	}
	for i := range data.MapInsurance {
		data.MapInsurance[i].State = StandardizeState(data.MapInsurance[i].State)
		data.MapInsurance[i].District = NormalizeDistrict(data.MapInsurance[i].District)
	}

	// 3. Top-наборы
	for i := range data.TopTransactions {
		data.TopTransactions[i].State = StandardizeState(data.TopTransactions[i].State)
	}
	for i := range data.TopUsers {
		data.TopUsers[i].State = StandardizeState(data.TopUsers[i].State)
	}
	for i := range data.TopInsurance {
		data.TopInsurance[i].State = StandardizeState(data.TopInsurance[i].State)
	}

	t.logger.Info("Фаза Transform завершена. Длительность: %v", time.Since(startTime))
	return data, nil
}
