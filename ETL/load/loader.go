package load

import (
	"database/sql"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// Loader интерфейс для загрузки наборов строк в хранилище
type Loader interface {
	// LoadTransactions загружает три транзакционных таблицы
	LoadTransactions(agg []models.AggTransactionRow, mp []models.MapTransactionRow, top []models.TopTransactionRow) error

	// LoadUsers загружает три пользовательских таблицы
	LoadUsers(agg []models.AggUserRow, mp []models.MapUserRow, top []models.TopUserRow) error

	// LoadInsurance загружает три страховых таблицы
	LoadInsurance(agg []models.AggInsuranceRow, mp []models.MapInsuranceRow, top []models.TopInsuranceRow) error
}

// MySQLLoader реализация Loader для MySQL
type MySQLLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger

	// Загрузчики для отдельных категорий данных
	transactionLoader *TransactionLoader
	userLoader        *UserLoader
	insuranceLoader   *InsuranceLoader
}

// NewMySQLLoader создает новый экземпляр MySQLLoader
func NewMySQLLoader(db *sql.DB, logger *utils.ETLLogger) *MySQLLoader {
	loader := &MySQLLoader{
		db:     db,
		logger: logger,
	}

	// Инициализация загрузчиков для отдельных категорий данных
	loader.transactionLoader = NewTransactionLoader(db, logger)
	loader.userLoader = NewUserLoader(db, logger)
	loader.insuranceLoader = NewInsuranceLoader(db, logger)

	return loader
}

// LoadTransactions загружает три транзакционных таблицы
func (l *MySQLLoader) LoadTransactions(agg []models.AggTransactionRow, mp []models.MapTransactionRow, top []models.TopTransactionRow) error {
	return l.transactionLoader.Load(agg, mp, top)
}

// LoadUsers загружает три пользовательских таблицы
func (l *MySQLLoader) LoadUsers(agg []models.AggUserRow, mp []models.MapUserRow, top []models.TopUserRow) error {
	return l.userLoader.Load(agg, mp, top)
}

// LoadInsurance загружает три страховых таблицы
func (l *MySQLLoader) LoadInsurance(agg []models.AggInsuranceRow, mp []models.MapInsuranceRow, top []models.TopInsuranceRow) error {
	return l.insuranceLoader.Load(agg, mp, top)
}
