package database

// Строки результатов агрегирующих запросов дашборда

// Summary значения KPI-панели
type Summary struct {
	TotalTransactionCount  int64   `json:"totalTransactionCount"`
	TotalTransactionAmount float64 `json:"totalTransactionAmount"`
	TotalRegisteredUsers   int64   `json:"totalRegisteredUsers"`
	TotalInsuranceAmount   float64 `json:"totalInsuranceAmount"`
}

// Filters доступные значения фильтров дашборда
type Filters struct {
	Years    []int    `json:"years"`
	Quarters []int    `json:"quarters"`
	States   []string `json:"states"`
}

// Period год и квартал
type Period struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// StateValue суммарные значения по штату
type StateValue struct {
	State  string  `json:"state"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// TypeValue распределение по категориям платежей
type TypeValue struct {
	Type   string  `json:"type"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// TrendPoint точка квартального ряда
type TrendPoint struct {
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Value   float64 `json:"value"`
}

// DistrictValue суммарные значения по району
type DistrictValue struct {
	State    string  `json:"state"`
	District string  `json:"district"`
	Count    int64   `json:"count"`
	Amount   float64 `json:"amount"`
}

// PincodeValue суммарные значения по пинкоду
type PincodeValue struct {
	State   string  `json:"state"`
	Pincode string  `json:"pincode"`
	Count   int64   `json:"count"`
	Amount  float64 `json:"amount"`
}

// BrandShare доля бренда устройств
type BrandShare struct {
	Brand      string  `json:"brand"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// EngagementRow вовлеченность пользователей штата
type EngagementRow struct {
	State           string  `json:"state"`
	RegisteredUsers int64   `json:"registeredUsers"`
	AppOpens        int64   `json:"appOpens"`
	EngagementRate  float64 `json:"engagementRate"`
}
