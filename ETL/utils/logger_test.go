package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Логгер пишет в переданный приемник, а не в файл в текущем каталоге
func TestLoggerWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewETLLoggerTo(&buf, false)

	logger.Info("загружено %d строк", 42)
	logger.Error("ошибка номер %d", 7)

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "загружено 42 строк")
	assert.Contains(t, out, "ERROR: ")
	assert.Contains(t, out, "ошибка номер 7")
}

// Отладочные сообщения пишутся только в verbose-режиме
func TestLoggerDebugVerbosity(t *testing.T) {
	var quiet bytes.Buffer
	NewETLLoggerTo(&quiet, false).Debug("не должно попасть в лог")
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	NewETLLoggerTo(&verbose, true).Debug("отладочная запись")
	assert.Contains(t, verbose.String(), "отладочная запись")
}
