package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// LoadManager отвечает за управление процессом загрузки данных в хранилище
type LoadManager struct {
	db     *sql.DB
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager создает новый экземпляр LoadManager
func NewLoadManager(db *sql.DB, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		db:     db,
		logger: logger,
		loader: NewMySQLLoader(db, logger),
	}
}

// Load выполняет фазу загрузки данных ETL-процесса.
// Содержимое всех девяти таблиц полностью заменяется: повторный запуск
// с теми же входными данными дает идентичное состояние хранилища.
func (m *LoadManager) Load(data *models.ExtractedData) error {
	startTime := time.Now()
	m.logger.Info("Начало фазы Load (Загрузка данных)")

	// 1. Загружаем транзакционные таблицы
	m.logger.Info("Загрузка транзакционных таблиц...")
	if err := m.loader.LoadTransactions(data.AggTransactions, data.MapTransactions, data.TopTransactions); err != nil {
		m.logger.Error("Ошибка при загрузке транзакционных таблиц: %v", err)
		return fmt.Errorf("ошибка при загрузке транзакционных таблиц: %w", err)
	}

	// 2. Загружаем пользовательские таблицы
	m.logger.Info("Загрузка пользовательских таблиц...")
	if err := m.loader.LoadUsers(data.AggUsers, data.MapUsers, data.TopUsers); err != nil {
		m.logger.Error("Ошибка при загрузке пользовательских таблиц: %v", err)
		return fmt.Errorf("ошибка при загрузке пользовательских таблиц: %w", err)
	}

	// 3. Загружаем страховые таблицы
	m.logger.Info("Загрузка страховых таблиц...")
	if err := m.loader.LoadInsurance(data.AggInsurance, data.MapInsurance, data.TopInsurance); err != nil {
		m.logger.Error("Ошибка при загрузке страховых таблиц: %v", err)
		return fmt.Errorf("ошибка при загрузке страховых таблиц: %w", err)
	}

	duration := time.Since(startTime)
	m.logger.Info("Фаза Load завершена. Длительность: %v", duration)

	return nil
}
