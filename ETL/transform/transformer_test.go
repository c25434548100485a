package transform

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/models"
	"github.com/Nikhil6906/Phonepe-transaction-insights/ETL/utils"
)

// Проверяем, что нормализация проходит по всем наборам строк
func TestTransformStandardizesAllSets(t *testing.T) {
	logger := utils.NewETLLoggerTo(io.Discard, false)
	transformer := NewTransformer(logger)

	data := &models.ExtractedData{
		AggTransactions: []models.AggTransactionRow{
			{State: "andaman-&-nicobar-islands", Year: 2022, Quarter: 1},
		},
		MapUsers: []models.MapUserRow{
			{State: "orissa", District: "Cuttack District", Year: 2022, Quarter: 1},
		},
		TopInsurance: []models.TopInsuranceRow{
			{State: "nct-of-delhi", Year: 2022, Quarter: 1},
		},
	}

	result, err := transformer.Transform(data)
	require.NoError(t, err)

	assert.Equal(t, "andaman & nicobar islands", result.AggTransactions[0].State)
	assert.Equal(t, "odisha", result.MapUsers[0].State)
	assert.Equal(t, "cuttack", result.MapUsers[0].District)
	assert.Equal(t, "delhi", result.TopInsurance[0].State)
}
