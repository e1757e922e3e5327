package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fintrack-server/src/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotals(t *testing.T) {
	entries := []models.Transaction{
		{Amount: 3000, Kind: models.KindIncome, Date: day(2025, 6, 1)},
		{Amount: 150.50, Kind: models.KindExpense, Date: day(2025, 6, 10)},
		{Amount: 75.25, Kind: models.KindExpense, Date: day(2025, 6, 20)},
	}

	totals := Totals(entries, day(2025, 6, 1), day(2025, 6, 30))
	assert.Equal(t, 3000.0, totals.TotalIncome)
	assert.Equal(t, 225.75, totals.TotalExpense)
	assert.Equal(t, 2774.25, totals.Net)
}

func TestTotals_RangeIsInclusive(t *testing.T) {
	entries := []models.Transaction{
		{Amount: 100, Kind: models.KindExpense, Date: day(2025, 6, 1)},
		{Amount: 200, Kind: models.KindExpense, Date: day(2025, 6, 30)},
		{Amount: 999, Kind: models.KindExpense, Date: day(2025, 5, 31)},
		{Amount: 999, Kind: models.KindExpense, Date: day(2025, 7, 1)},
	}

	totals := Totals(entries, day(2025, 6, 1), day(2025, 6, 30))
	assert.Equal(t, 300.0, totals.TotalExpense)
}

func TestTotals_Empty(t *testing.T) {
	totals := Totals(nil, day(2025, 6, 1), day(2025, 6, 30))
	assert.Equal(t, PeriodTotals{}, totals)
}

func TestSpendingForCategory(t *testing.T) {
	entries := []models.Transaction{
		{Amount: 50, Category: "Groceries", Kind: models.KindExpense, Date: day(2025, 6, 2)},
		{Amount: 30, Category: "groceries", Kind: models.KindExpense, Date: day(2025, 6, 15)},
		{Amount: 500, Category: "Groceries", Kind: models.KindIncome, Date: day(2025, 6, 16)},
		{Amount: 40, Category: "Dining", Kind: models.KindExpense, Date: day(2025, 6, 20)},
		{Amount: 60, Category: "Groceries", Kind: models.KindExpense, Date: day(2025, 7, 2)},
	}

	// Case-insensitive category match, expenses only, one month.
	assert.Equal(t, 80.0, SpendingForCategory(entries, "groceries", 6, 2025))
}

func TestUtilizationStatus_Good(t *testing.T) {
	status := UtilizationStatus(200, 400)
	assert.Equal(t, 50, status.Percentage)
	assert.Equal(t, StatusGood, status.Status)
	assert.Equal(t, 200.0, status.Remaining)
	assert.False(t, status.IsOverBudget)
}

func TestUtilizationStatus_Warning(t *testing.T) {
	status := UtilizationStatus(300, 400)
	assert.Equal(t, 75, status.Percentage)
	assert.Equal(t, StatusWarning, status.Status)
}

func TestUtilizationStatus_Over(t *testing.T) {
	status := UtilizationStatus(500, 400)
	assert.Equal(t, 125, status.Percentage)
	assert.Equal(t, StatusOver, status.Status)
	assert.Equal(t, -100.0, status.Remaining)
	assert.True(t, status.IsOverBudget)
}

func TestUtilizationStatus_ZeroLimit(t *testing.T) {
	status := UtilizationStatus(50, 0)
	assert.Equal(t, 0, status.Percentage)
	assert.Equal(t, StatusGood, status.Status)
	assert.True(t, status.IsOverBudget)
}
