package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TotalRows суммирует строки всех девяти наборов
func TestTotalRows(t *testing.T) {
	data := &ExtractedData{}
	assert.Zero(t, data.TotalRows())

	data.AggTransactions = make([]AggTransactionRow, 3)
	data.MapUsers = make([]MapUserRow, 2)
	data.TopInsurance = make([]TopInsuranceRow, 4)
	assert.Equal(t, 9, data.TotalRows())
}
