package extractors

import (
	"sort"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// UserExtractor отвечает за извлечение данных о пользователях
// из всех трех гранулярностей выгрузки
type UserExtractor struct {
	dataDir string
	logger  *utils.ETLLogger
}

// NewUserExtractor создает новый экземпляр UserExtractor
func NewUserExtractor(dataDir string, logger *utils.ETLLogger) *UserExtractor {
	return &UserExtractor{
		dataDir: dataDir,
		logger:  logger,
	}
}

// ExtractAggregated извлекает строки для таблицы aggregated_user.
// Одна строка на бренд устройства; в ранних кварталах usersByDevice
// отсутствует, такие документы не дают строк.
func (e *UserExtractor) ExtractAggregated() ([]models.AggUserRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "aggregated", "user")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.AggUserRow
	skipped := 0

	for _, f := range files {
		var doc models.AggregatedUserDoc
		if err := decodeFile(f.Path, &doc); err != nil {
			e.logger.Error("Пропускаем поврежденный файл: %v", err)
			skipped++
			continue
		}

		for _, device := range doc.Data.UsersByDevice {
			rows = append(rows, models.AggUserRow{
				State:      f.State,
				Year:       f.Year,
				Quarter:    f.Quarter,
				Brand:      device.Brand,
				Count:      device.Count,
				Percentage: device.Percentage,
			})
		}
	}

	e.logger.Debug("aggregated/user: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}

// ExtractMap извлекает строки для таблицы map_user.
// hoverData — объект, поэтому районы сортируются для детерминированного порядка.
func (e *UserExtractor) ExtractMap() ([]models.MapUserRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "map", "user")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.MapUserRow
	skipped := 0

	for _, f := range files {
		var doc models.MapUserDoc
		if err := decodeFile(f.Path, &doc); err != nil {
			e.logger.Error("Пропускаем поврежденный файл: %v", err)
			skipped++
			continue
		}

		districts := make([]string, 0, len(doc.Data.HoverData))
		for district := range doc.Data.HoverData {
			districts = append(districts, district)
		}
		sort.Strings(districts)

		for _, district := range districts {
			stats := doc.Data.HoverData[district]
			rows = append(rows, models.MapUserRow{
				State:           f.State,
				Year:            f.Year,
				Quarter:         f.Quarter,
				District:        district,
				RegisteredUsers: stats.RegisteredUsers,
				AppOpens:        stats.AppOpens,
			})
		}
	}

	e.logger.Debug("map/user: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}

// ExtractTop извлекает строки для таблицы top_user.
// Одна строка на пинкод в каждом документе.
func (e *UserExtractor) ExtractTop() ([]models.TopUserRow, int, error) {
	files, err := listPulseFiles(e.dataDir, "top", "user")
	if err != nil {
		return nil, 0, err
	}

	var rows []models.TopUserRow
	skipped := 0

	for _, f := range files {
		var doc models.TopUserDoc
		if err := decodeFile(f.Path, &doc); err != nil {
			e.logger.Error("Пропускаем поврежденный файл: %v", err)
			skipped++
			continue
		}

		for _, entity := range doc.Data.Pincodes {
			rows = append(rows, models.TopUserRow{
				State:           f.State,
				Year:            f.Year,
				Quarter:         f.Quarter,
				Pincode:         entity.Name,
				RegisteredUsers: entity.RegisteredUsers,
			})
		}
	}

	e.logger.Debug("top/user: %d строк из %d файлов", len(rows), len(files))
	return rows, skipped, nil
}
