package trends

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// Config конфигурация процессора трендов
type Config struct {
	// Количество кварталов для прогноза
	ForecastQuarters int
	// Уровень доверия (0.90, 0.95, 0.99)
	ConfidenceLevel float64
	// Минимальное значение r² для сохранения прогноза
	MinR2Threshold float64
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		ForecastQuarters: 4,
		ConfidenceLevel:  0.95,
		MinR2Threshold:   0.30, // 30% объясненной вариации
	}
}

// TrendProcessor строит квартальные тренды метрик и сохраняет прогнозы
type TrendProcessor struct {
	dataService *DataService
	repository  ForecastRepository
	logger      *utils.ETLLogger
	config      Config
}

// NewTrendProcessor создает новый процессор трендов
func NewTrendProcessor(
	dataService *DataService,
	repository ForecastRepository,
	logger *utils.ETLLogger,
	config Config,
) *TrendProcessor {
	return &TrendProcessor{
		dataService: dataService,
		repository:  repository,
		logger:      logger,
		config:      config,
	}
}

// Process выполняет основной процесс: подгонка тренда каждой метрики
// и сохранение прогнозов. Неудачная подгонка одной метрики не прерывает
// обработку остальных.
func (p *TrendProcessor) Process() error {
	startTime := time.Now()
	p.logger.Info("Запуск построения квартальных трендов")

	// 1. Убеждаемся, что таблица существует
	if err := p.repository.EnsureTableExists(); err != nil {
		return fmt.Errorf("ошибка при проверке/создании таблицы прогнозов: %w", err)
	}

	fitted := 0

	for _, metric := range Metrics {
		// 2. Получаем квартальные суммы метрики
		points, err := p.dataService.GetQuarterlyTotals(metric)
		if err != nil {
			p.logger.Error("Метрика %s пропущена: %v", metric, err)
			continue
		}

		// 3. Подгоняем линейный тренд
		result, err := Fit(metric, points)
		if err != nil {
			p.logger.Error("Не удалось подогнать тренд метрики %s: %v", metric, err)
			continue
		}

		p.logger.Info("Метрика %s: наклон=%.3f, r²=%.3f (%d кварталов)",
			metric, result.Slope, result.R2, len(points))

		// 4. Прогнозы сохраняются только для значимых моделей
		if result.R2 < p.config.MinR2Threshold {
			p.logger.Info("Метрика %s: r²=%.3f ниже порога %.2f, прогноз не сохраняется",
				metric, result.R2, p.config.MinR2Threshold)
			continue
		}

		forecasts := Forecast(result, p.config.ForecastQuarters, p.config.ConfidenceLevel)
		if err := p.repository.SaveForecasts(result, forecasts); err != nil {
			p.logger.Error("Ошибка при сохранении прогнозов метрики %s: %v", metric, err)
			continue
		}

		fitted++
	}

	p.logger.Info("Построение трендов завершено: %d из %d метрик. Длительность: %v",
		fitted, len(Metrics), time.Since(startTime))

	return nil
}

// RunWithCustomConfig запускает построение трендов с указанной конфигурацией
func RunWithCustomConfig(db *sql.DB, logger *utils.ETLLogger, config Config) error {
	dataService := NewDataService(db)
	repository := NewMySQLForecastRepository(db)
	processor := NewTrendProcessor(dataService, repository, logger, config)

	return processor.Process()
}
