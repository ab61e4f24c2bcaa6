package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

func TestProfitMargin(t *testing.T) {
	tests := []struct {
		name    string
		summary FinanceSummary
		want    string
	}{
		{"no income", FinanceSummary{TotalIncome: 0, Profit: 0}, "0"},
		{"negative income", FinanceSummary{TotalIncome: -100, Profit: -100}, "0"},
		{"half margin", FinanceSummary{TotalIncome: 200000, Profit: 100000}, "50.00"},
		{"loss", FinanceSummary{TotalIncome: 100000, Profit: -25000}, "-25.00"},
		{"full margin", FinanceSummary{TotalIncome: 50000, Profit: 50000}, "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.ProfitMargin())
		})
	}
}

func TestValidFinanceType(t *testing.T) {
	assert.True(t, validFinanceType(models.FinanceIncome))
	assert.True(t, validFinanceType(models.FinanceExpense))
	assert.False(t, validFinanceType(models.FinanceType("profit")))
	assert.False(t, validFinanceType(models.FinanceType("")))
}

func TestParseDateFilter(t *testing.T) {
	start, err := parseDateFilter("2025-03-14", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), start)

	end, err := parseDateFilter("2025-03-14", true)
	require.NoError(t, err)
	// batas akhir inklusif: tepat sebelum tengah malam berikutnya
	assert.True(t, end.After(start))
	assert.True(t, end.Before(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))

	_, err = parseDateFilter("14-03-2025", false)
	assert.Error(t, err)

	_, err = parseDateFilter("not-a-date", true)
	assert.Error(t, err)
}
