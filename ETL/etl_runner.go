package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/config"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/extractors"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/load"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/transform"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/trends"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
	"github.com/go-co-op/gocron"
)

type ETLRunner struct {
	config      config.ETLConfig
	db          *sql.DB
	logger      *utils.ETLLogger
	extractor   *extractors.Extractor
	transformer *transform.Transformer
	loadManager *load.LoadManager
	etlLogRepo  models.ETLLogRepository
}

// NewETLRunner создает новый экземпляр ETLRunner
func NewETLRunner(dataDir string) (*ETLRunner, error) {
	// Получаем конфигурацию
	etlConfig := config.GetConfig()
	if dataDir != "" {
		etlConfig.DataDir = dataDir
	}

	// Инициализируем логгер
	logger := utils.NewETLLogger(etlConfig.EnableDetailedLogging)
	logger.Info("Инициализация ETL Runner (каталог выгрузки: %s)", etlConfig.DataDir)

	// Подключаемся к базе данных
	db, err := config.ConnectDatabase(etlConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	// Инициализируем репозиторий журнала запусков ETL
	etlLogRepo := models.NewMySQLETLLogRepository(db)

	// Создаем таблицу журнала, если она еще не существует
	if err := etlLogRepo.CreateETLLogTable(); err != nil {
		return nil, fmt.Errorf("ошибка при создании таблицы журнала ETL: %w", err)
	}

	return &ETLRunner{
		config:      etlConfig,
		db:          db,
		logger:      logger,
		extractor:   extractors.NewExtractor(etlConfig.DataDir, logger),
		transformer: transform.NewTransformer(logger),
		loadManager: load.NewLoadManager(db, logger),
		etlLogRepo:  etlLogRepo,
	}, nil
}

// Close закрывает соединение с базой данных
func (r *ETLRunner) Close() {
	r.logger.Info("Завершение работы ETL Runner")
	config.CloseDatabase(r.db)
}

// ExecuteETL выполняет полный ETL процесс
func (r *ETLRunner) ExecuteETL() error {
	r.logger.LogETLStart()
	startTime := time.Now()

	// Создаем запись в журнале ETL
	logID, err := r.etlLogRepo.CreateLogEntry(startTime)
	if err != nil {
		r.logger.Error("Ошибка при создании записи в журнале ETL: %v", err)
		return fmt.Errorf("ошибка при создании записи в журнале ETL: %w", err)
	}

	// 1. Фаза извлечения данных (Extract)
	extractedData, err := r.extractor.Extract()
	if err != nil {
		errMsg := fmt.Sprintf("Ошибка в фазе Extract: %v", err)
		r.logger.Error(errMsg)
		r.markRunFailed(logID, errMsg)
		return fmt.Errorf("ошибка в фазе Extract: %w", err)
	}

	// Если выгрузка пуста, завершаем процесс
	if extractedData.TotalRows() == 0 {
		r.logger.Info("Каталог выгрузки не содержит данных")
		r.markRunSucceeded(logID, extractedData)
		return nil
	}

	// 2. Фаза преобразования данных (Transform)
	transformedData, err := r.transformer.Transform(extractedData)
	if err != nil {
		errMsg := fmt.Sprintf("Ошибка в фазе Transform: %v", err)
		r.logger.Error(errMsg)
		r.markRunFailed(logID, errMsg)
		return fmt.Errorf("ошибка в фазе Transform: %w", err)
	}

	// 3. Фаза загрузки данных (Load)
	if err := r.loadManager.Load(transformedData); err != nil {
		errMsg := fmt.Sprintf("Ошибка в фазе Load: %v", err)
		r.logger.Error(errMsg)
		r.markRunFailed(logID, errMsg)
		return fmt.Errorf("ошибка в фазе Load: %w", err)
	}

	// 4. Строим квартальные тренды по загруженным данным
	r.logger.Info("Запуск построения квартальных трендов")
	if err := r.runTrends(trends.Config{
		ForecastQuarters: r.config.Trends.ForecastQuarters,
		ConfidenceLevel:  r.config.Trends.ConfidenceLevel,
		MinR2Threshold:   r.config.Trends.MinR2Threshold,
	}); err != nil {
		// Некритичный компонент: ошибка не прерывает ETL процесс
		r.logger.Error("Ошибка при построении трендов: %v", err)
	}

	// Обновляем запись в журнале
	r.markRunSucceeded(logID, transformedData)

	r.logger.LogETLComplete(startTime, transformedData.TotalRows(), transformedData.SkippedFiles)
	return nil
}

// markRunSucceeded обновляет запись в журнале ETL при успешном завершении
func (r *ETLRunner) markRunSucceeded(logID int, data *models.ExtractedData) {
	transactionRows := len(data.AggTransactions) + len(data.MapTransactions) + len(data.TopTransactions)
	userRows := len(data.AggUsers) + len(data.MapUsers) + len(data.TopUsers)
	insuranceRows := len(data.AggInsurance) + len(data.MapInsurance) + len(data.TopInsurance)

	if err := r.etlLogRepo.UpdateLogEntrySuccess(
		logID,
		time.Now(),
		transactionRows,
		userRows,
		insuranceRows,
		data.SkippedFiles); err != nil {
		r.logger.Error("Ошибка при обновлении записи в журнале ETL: %v", err)
	}
}

// markRunFailed обновляет запись в журнале ETL при ошибке
func (r *ETLRunner) markRunFailed(logID int, errorMessage string) {
	if err := r.etlLogRepo.UpdateLogEntryFailure(logID, time.Now(), errorMessage); err != nil {
		r.logger.Error("Ошибка при обновлении записи в журнале ETL: %v", err)
	}
}

// runTrends запускает построение квартальных трендов
func (r *ETLRunner) runTrends(cfg trends.Config) error {
	return trends.RunWithCustomConfig(r.db, r.logger, cfg)
}

// StartScheduler запускает планировщик для регулярного выполнения ETL
func (r *ETLRunner) StartScheduler(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	r.logger.Info("Запуск планировщика ETL с интервалом %v", r.config.RunInterval)

	_, err := scheduler.Every(r.config.RunInterval).Do(func() {
		r.logger.Info("Запланированный запуск ETL процесса")
		if err := r.ExecuteETL(); err != nil {
			r.logger.Error("Ошибка при выполнении запланированного ETL: %v", err)
		}
	})

	if err != nil {
		r.logger.Error("Ошибка при настройке планировщика: %v", err)
		return
	}

	// Запускаем планировщик
	scheduler.StartAsync()

	// Ожидаем сигнал остановки из контекста
	<-ctx.Done()

	// Останавливаем планировщик
	scheduler.Stop()
	r.logger.Info("Планировщик ETL остановлен")
}

// RunOnce запускает ETL процесс один раз
func RunOnce(dataDir string) {
	runner, err := NewETLRunner(dataDir)
	if err != nil {
		log.Fatalf("Ошибка при создании ETL Runner: %v", err)
	}
	defer runner.Close()

	if err := runner.ExecuteETL(); err != nil {
		log.Fatalf("Ошибка при выполнении ETL: %v", err)
	}
}

// RunScheduled запускает ETL процесс по расписанию
func RunScheduled(dataDir string) {
	// Создаем контекст, который будет отменен при получении сигнала завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Настраиваем обработку сигналов завершения
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	// Запускаем горутину для обработки сигналов
	go func() {
		<-signalCh
		log.Println("Получен сигнал завершения. Останавливаем ETL Runner...")
		cancel()
	}()

	runner, err := NewETLRunner(dataDir)
	if err != nil {
		log.Fatalf("Ошибка при создании ETL Runner: %v", err)
	}
	defer runner.Close()

	// Запускаем планировщик
	runner.StartScheduler(ctx)
}

// RunTrends запускает только построение трендов с пользовательскими параметрами
func RunTrends(dataDir string, forecast int, confidence, minR2 float64) {
	log.Println("Запуск утилиты построения трендов")

	runner, err := NewETLRunner(dataDir)
	if err != nil {
		log.Fatalf("Ошибка при создании ETL Runner: %v", err)
	}
	defer runner.Close()

	cfg := trends.Config{
		ForecastQuarters: forecast,
		ConfidenceLevel:  confidence,
		MinR2Threshold:   minR2,
	}

	runner.logger.Info("Построение трендов с параметрами: прогноз=%d кварталов, доверие=%.2f, минR²=%.2f",
		forecast, confidence, minR2)

	if err := runner.runTrends(cfg); err != nil {
		log.Fatalf("Ошибка при построении трендов: %v", err)
	}

	log.Println("Построение трендов успешно завершено")
}

func main() {
	// Параметры командной строки
	modePtr := flag.String("mode", "once", "Режим работы: once, scheduled или trends")
	dataPtr := flag.String("data", "", "Корневой каталог выгрузки PhonePe Pulse")
	forecastPtr := flag.Int("forecast", 4, "Количество кварталов для прогноза (только для режима trends)")
	confidencePtr := flag.Float64("confidence", 0.95, "Уровень доверия (только для режима trends)")
	minR2Ptr := flag.Float64("min-r2", 0.30, "Минимальный порог для R² (только для режима trends)")

	flag.Parse()

	log.Println("Запуск ETL Runner в режиме:", *modePtr)

	switch *modePtr {
	case "once":
		RunOnce(*dataPtr)
	case "scheduled":
		RunScheduled(*dataPtr)
	case "trends":
		RunTrends(*dataPtr, *forecastPtr, *confidencePtr, *minR2Ptr)
	default:
		log.Println("Неизвестный режим работы:", *modePtr)
		log.Println("Доступные режимы: once, scheduled, trends")
		os.Exit(1)
	}

	log.Println("ETL Runner завершил работу")
}
