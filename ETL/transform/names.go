package transform

import (
	"strings"
)

// Переименования штатов: старые названия и варианты написания из выгрузки
// приводятся к названиям, используемым в геометрии карты
var stateMappings = map[string]string{
	"orissa":                      "odisha",
	"andaman and nicobar":         "andaman & nicobar islands",
	"andaman and nicobar islands": "andaman & nicobar islands",
	"dadra and nagar haveli and daman and diu": "dadra & nagar haveli & daman & diu",
	"nct of delhi": "delhi",
}

// StandardizeState приводит название штата к каноническому виду:
// нижний регистр, без дефисов каталога выгрузки, с учетом переименований
func StandardizeState(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "-", " ")

	if mapped, ok := stateMappings[name]; ok {
		return mapped
	}

	return name
}

// NormalizeDistrict приводит название района: убирает суффикс " district"
// из hover-данных и лишние пробелы
func NormalizeDistrict(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimSuffix(name, " district")

	return strings.TrimSpace(name)
}
