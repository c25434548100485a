package config

import (
	"os"
	"strconv"
	"time"
)

// ETLConfig содержит конфигурацию для ETL-процесса
type ETLConfig struct {
	// Конфигурация для подключения к целевой БД
	DBConfig DatabaseConfig `json:"db_config"`

	// Корневой каталог выгрузки PhonePe Pulse
	// (ожидается раскладка <granularity>/<category>/country/india/state/...)
	DataDir string `json:"data_dir"`

	// Интервал запуска ETL в режиме scheduled
	RunInterval time.Duration `json:"run_interval"`

	// Размер пакета строк при массовой вставке
	BatchSize int `json:"batch_size"`

	// Параметры прогнозирования трендов
	Trends struct {
		ForecastQuarters int     `json:"forecast_quarters"` // Количество кварталов прогноза
		ConfidenceLevel  float64 `json:"confidence_level"`  // Уровень доверия
		MinR2Threshold   float64 `json:"min_r2_threshold"`  // Минимальный R² для сохранения прогноза
	} `json:"trends"`

	// Включение/отключение детального логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
}

// Значения конфигурации по умолчанию
var (
	DefaultDBConfig = DatabaseConfig{
		Driver:   "mysql",
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "12345",
		DBName:   "phonepe_insights",
	}

	DefaultETLConfig = ETLConfig{
		DBConfig:              DefaultDBConfig,
		DataDir:               "pulse/data",
		RunInterval:           24 * time.Hour,
		BatchSize:             500,
		EnableDetailedLogging: true,
	}
)

// GetConfig возвращает конфигурацию ETL с учетом переменных окружения
func GetConfig() ETLConfig {
	config := DefaultETLConfig

	// Параметры прогнозирования трендов
	config.Trends.ForecastQuarters = 4
	config.Trends.ConfidenceLevel = 0.95
	config.Trends.MinR2Threshold = 0.30

	// Переопределение из переменных окружения
	if v := os.Getenv("PHONEPE_DATA_DIR"); v != "" {
		config.DataDir = v
	}
	if v := os.Getenv("PHONEPE_DB_HOST"); v != "" {
		config.DBConfig.Host = v
	}
	if v := os.Getenv("PHONEPE_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.DBConfig.Port = port
		}
	}
	if v := os.Getenv("PHONEPE_DB_USER"); v != "" {
		config.DBConfig.User = v
	}
	if v := os.Getenv("PHONEPE_DB_PASSWORD"); v != "" {
		config.DBConfig.Password = v
	}
	if v := os.Getenv("PHONEPE_DB_NAME"); v != "" {
		config.DBConfig.DBName = v
	}

	return config
}
