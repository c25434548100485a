package geo

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/transform"
	"github.com/golang/snappy"
)

// Feature представляет один объект геометрии (штат)
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

// FeatureCollection представляет коллекцию геометрий штатов
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// StateNames возвращает множество стандартизированных названий штатов,
// присутствующих в геометрии
func (fc *FeatureCollection) StateNames() map[string]bool {
	names := make(map[string]bool, len(fc.Features))
	for _, f := range fc.Features {
		if name, ok := f.Properties["State_Name"].(string); ok && name != "" {
			names[name] = true
		}
	}

	return names
}

// Load загружает файл границ штатов и стандартизирует названия.
// Обработанная коллекция кэшируется рядом с исходным файлом в сжатом
// виде, чтобы последующие запуски не разбирали исходник заново.
func Load(path string) (*FeatureCollection, error) {
	cachePath := path + ".cache"

	// Пытаемся прочитать кэш, если он свежее исходника
	if fc, err := loadCache(path, cachePath); err == nil {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении файла геометрии %s: %w", path, err)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("ошибка при разборе файла геометрии %s: %w", path, err)
	}

	standardize(&fc)

	// Кэш пишется по возможности: ошибка записи не мешает работе
	if err := saveCache(cachePath, &fc); err != nil {
		log.Printf("Не удалось записать кэш геометрии: %v", err)
	}

	return &fc, nil
}

// standardize заполняет свойство State_Name стандартизированным названием
// штата из NAME_1 (включая переименование Orissa в Odisha)
func standardize(fc *FeatureCollection) {
	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = make(map[string]interface{})
		}

		name, _ := f.Properties["NAME_1"].(string)
		f.Properties["State_Name"] = transform.StandardizeState(name)
	}
}

// loadCache читает сжатый кэш, если он существует и не старше исходника
func loadCache(sourcePath, cachePath string) (*FeatureCollection, error) {
	sourceInfo, err := os.Stat(sourcePath)
	if err != nil {
		return nil, err
	}

	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return nil, err
	}

	if cacheInfo.ModTime().Before(sourceInfo.ModTime()) {
		return nil, fmt.Errorf("кэш геометрии устарел")
	}

	compressed, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, err
	}

	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("ошибка при распаковке кэша геометрии: %w", err)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("ошибка при разборе кэша геометрии: %w", err)
	}

	return &fc, nil
}

// saveCache записывает сжатую копию обработанной коллекции
func saveCache(cachePath string, fc *FeatureCollection) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}

	return os.WriteFile(cachePath, snappy.Encode(nil, data), 0644)
}
