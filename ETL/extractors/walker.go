package extractors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// pulseFile описывает один документ выгрузки с метаданными,
// восстановленными из пути к файлу
type pulseFile struct {
	State   string
	Year    int
	Quarter int
	Path    string
}

// listPulseFiles обходит каталог выгрузки для указанной комбинации
// гранулярности и категории и возвращает список документов.
// Ожидаемая раскладка: <root>/<granularity>/<category>/country/india/state/<state>/<year>/<quarter>.json
func listPulseFiles(root, granularity, category string) ([]pulseFile, error) {
	stateRoot := filepath.Join(root, granularity, category, "country", "india", "state")

	stateDirs, err := os.ReadDir(stateRoot)
	if err != nil {
		if os.IsNotExist(err) {
			// Категория может отсутствовать в ранних выгрузках
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при чтении каталога %s: %w", stateRoot, err)
	}

	var files []pulseFile

	for _, stateDir := range stateDirs {
		if !stateDir.IsDir() {
			continue
		}

		state := stateDir.Name()
		yearRoot := filepath.Join(stateRoot, state)

		yearDirs, err := os.ReadDir(yearRoot)
		if err != nil {
			return nil, fmt.Errorf("ошибка при чтении каталога %s: %w", yearRoot, err)
		}

		for _, yearDir := range yearDirs {
			if !yearDir.IsDir() {
				continue
			}

			year, err := strconv.Atoi(yearDir.Name())
			if err != nil {
				// Посторонний каталог, не являющийся годом
				continue
			}

			quarterRoot := filepath.Join(yearRoot, yearDir.Name())
			quarterFiles, err := os.ReadDir(quarterRoot)
			if err != nil {
				return nil, fmt.Errorf("ошибка при чтении каталога %s: %w", quarterRoot, err)
			}

			for _, qf := range quarterFiles {
				name := qf.Name()
				if qf.IsDir() || !strings.HasSuffix(name, ".json") {
					continue
				}

				quarter, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
				if err != nil || quarter < 1 || quarter > 4 {
					continue
				}

				files = append(files, pulseFile{
					State:   state,
					Year:    year,
					Quarter: quarter,
					Path:    filepath.Join(quarterRoot, name),
				})
			}
		}
	}

	return files, nil
}

// decodeFile читает и разбирает JSON-документ выгрузки
func decodeFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ошибка при чтении файла %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("ошибка при разборе файла %s: %w", path, err)
	}

	return nil
}
