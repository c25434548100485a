package models

// Структуры исходных JSON-документов публичной выгрузки PhonePe Pulse.
// Каждый документ соответствует одному срезу (штат, год, квартал).

// PulseEnvelope общая обертка документа выгрузки
type PulseEnvelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

// PaymentInstrument агрегированная метрика по инструменту оплаты
type PaymentInstrument struct {
	Type   string  `json:"type"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// CategoryEntry категория платежей с метриками (переводы, пополнения и т.д.)
type CategoryEntry struct {
	Name               string              `json:"name"`
	PaymentInstruments []PaymentInstrument `json:"paymentInstruments"`
}

// AggregatedTransactionDoc документ aggregated/transaction (и aggregated/insurance)
type AggregatedTransactionDoc struct {
	PulseEnvelope
	Data struct {
		From            int64           `json:"from"`
		To              int64           `json:"to"`
		TransactionData []CategoryEntry `json:"transactionData"`
	} `json:"data"`
}

// DeviceEntry статистика пользователей по бренду устройства
type DeviceEntry struct {
	Brand      string  `json:"brand"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AggregatedUserDoc документ aggregated/user
type AggregatedUserDoc struct {
	PulseEnvelope
	Data struct {
		Aggregated struct {
			RegisteredUsers int64 `json:"registeredUsers"`
			AppOpens        int64 `json:"appOpens"`
		} `json:"aggregated"`
		// usersByDevice может быть null в ранних кварталах
		UsersByDevice []DeviceEntry `json:"usersByDevice"`
	} `json:"data"`
}

// HoverMetric метрика для района на карте
type HoverMetric struct {
	Type   string  `json:"type"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// HoverEntry запись районного уровня в map-документах
type HoverEntry struct {
	Name   string        `json:"name"`
	Metric []HoverMetric `json:"metric"`
}

// MapTransactionDoc документ map/transaction (и map/insurance)
type MapTransactionDoc struct {
	PulseEnvelope
	Data struct {
		HoverDataList []HoverEntry `json:"hoverDataList"`
	} `json:"data"`
}

// HoverUserStats статистика пользователей района
type HoverUserStats struct {
	RegisteredUsers int64 `json:"registeredUsers"`
	AppOpens        int64 `json:"appOpens"`
}

// MapUserDoc документ map/user; hoverData — объект с ключом-названием района
type MapUserDoc struct {
	PulseEnvelope
	Data struct {
		HoverData map[string]HoverUserStats `json:"hoverData"`
	} `json:"data"`
}

// TopEntityMetric метрика для записи top-документа
type TopEntityMetric struct {
	Type   string  `json:"type"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// TopEntity запись топ-уровня (штат, район или пинкод)
type TopEntity struct {
	EntityName string          `json:"entityName"`
	Metric     TopEntityMetric `json:"metric"`
}

// TopTransactionDoc документ top/transaction (и top/insurance)
type TopTransactionDoc struct {
	PulseEnvelope
	Data struct {
		States    []TopEntity `json:"states"`
		Districts []TopEntity `json:"districts"`
		Pincodes  []TopEntity `json:"pincodes"`
	} `json:"data"`
}

// TopUserEntity запись top/user с количеством зарегистрированных пользователей
type TopUserEntity struct {
	Name            string `json:"name"`
	RegisteredUsers int64  `json:"registeredUsers"`
}

// TopUserDoc документ top/user
type TopUserDoc struct {
	PulseEnvelope
	Data struct {
		States    []TopUserEntity `json:"states"`
		Districts []TopUserEntity `json:"districts"`
		Pincodes  []TopUserEntity `json:"pincodes"`
	} `json:"data"`
}
