// database/db.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/config"
	_ "github.com/go-sql-driver/mysql"
)

// Connect устанавливает подключение дашборда к хранилищу.
// Конфигурация берется из тех же настроек и переменных окружения,
// что и у ETL: оба процесса работают с одной базой.
func Connect() (*sql.DB, error) {
	cfg := config.GetConfig().DBConfig

	db, err := sql.Open(cfg.Driver, config.BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось установить соединение с базой данных: %w", err)
	}

	return db, nil
}
