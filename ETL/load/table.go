package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// ensureTable создает таблицу по переданному DDL, если она не существует
func ensureTable(db *sql.DB, ddl string) error {
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("ошибка при создании таблицы: %w", err)
	}

	return nil
}

// reloadTable полностью заменяет содержимое таблицы новым набором строк.
// Удаление и вставка выполняются в одной транзакции, чтобы при ошибке
// прежнее содержимое осталось нетронутым. DELETE вместо TRUNCATE:
// TRUNCATE в MySQL выполняет неявный commit и разорвал бы транзакцию.
func reloadTable(db *sql.DB, logger *utils.ETLLogger, table, insertSQL string, count int, rowArgs func(i int) []interface{}) error {
	startTime := time.Now()
	logger.Info("Начало загрузки таблицы %s (всего строк: %d)", table, count)

	// Начинаем транзакцию
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}

	// Очищаем прежнее содержимое
	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при очистке таблицы %s: %w", table, err)
	}

	// Подготавливаем запрос вставки в транзакции
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при подготовке запроса для %s: %w", table, err)
	}
	defer stmt.Close()

	processed := 0

	// Вставляем строки по одной
	for i := 0; i < count; i++ {
		if _, err := stmt.Exec(rowArgs(i)...); err != nil {
			tx.Rollback()
			return fmt.Errorf("ошибка при вставке строки %d в %s: %w", i, table, err)
		}

		processed++

		// Логируем прогресс каждые 1000 строк
		if processed%1000 == 0 {
			logger.Debug("Загружено %d из %d строк в %s...", processed, count, table)
		}
	}

	// Фиксируем транзакцию
	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при фиксации транзакции для %s: %w", table, err)
	}

	logger.Info("Загрузка таблицы %s завершена. Загружено строк: %d. Длительность: %v",
		table, processed, time.Since(startTime))

	return nil
}
