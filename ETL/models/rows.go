package models

// Плоские строки для загрузки в MySQL: одна строка на комбинацию
// (штат, год, квартал, категория/район/пинкод).

// AggTransactionRow строка таблицы aggregated_transaction
type AggTransactionRow struct {
	State           string
	Year            int
	Quarter         int
	TransactionType string
	Count           int64
	Amount          float64
}

// AggUserRow строка таблицы aggregated_user
type AggUserRow struct {
	State      string
	Year       int
	Quarter    int
	Brand      string
	Count      int64
	Percentage float64
}

// AggInsuranceRow строка таблицы aggregated_insurance
type AggInsuranceRow struct {
	State         string
	Year          int
	Quarter       int
	InsuranceType string
	Count         int64
	Amount        float64
}

// MapTransactionRow строка таблицы map_transaction
type MapTransactionRow struct {
	State    string
	Year     int
	Quarter  int
	District string
	Count    int64
	Amount   float64
}

// MapUserRow строка таблицы map_user
type MapUserRow struct {
	State           string
	Year            int
	Quarter         int
	District        string
	RegisteredUsers int64
	AppOpens        int64
}

// MapInsuranceRow строка таблицы map_insurance
type MapInsuranceRow struct {
	State    string
	Year     int
	Quarter  int
	District string
	Count    int64
	Amount   float64
}

// TopTransactionRow строка таблицы top_transaction
type TopTransactionRow struct {
	State   string
	Year    int
	Quarter int
	Pincode string
	Count   int64
	Amount  float64
}

// TopUserRow строка таблицы top_user
type TopUserRow struct {
	State           string
	Year            int
	Quarter         int
	Pincode         string
	RegisteredUsers int64
}

// TopInsuranceRow строка таблицы top_insurance
type TopInsuranceRow struct {
	State   string
	Year    int
	Quarter int
	Pincode string
	Count   int64
	Amount  float64
}

// ExtractedData результат фазы Extract: все девять наборов строк
type ExtractedData struct {
	AggTransactions []AggTransactionRow
	AggUsers        []AggUserRow
	AggInsurance    []AggInsuranceRow
	MapTransactions []MapTransactionRow
	MapUsers        []MapUserRow
	MapInsurance    []MapInsuranceRow
	TopTransactions []TopTransactionRow
	TopUsers        []TopUserRow
	TopInsurance    []TopInsuranceRow

	// Количество пропущенных файлов (поврежденные или нечитаемые)
	SkippedFiles int
}

// TotalRows возвращает суммарное количество извлеченных строк
func (d *ExtractedData) TotalRows() int {
	return len(d.AggTransactions) + len(d.AggUsers) + len(d.AggInsurance) +
		len(d.MapTransactions) + len(d.MapUsers) + len(d.MapInsurance) +
		len(d.TopTransactions) + len(d.TopUsers) + len(d.TopInsurance)
}
