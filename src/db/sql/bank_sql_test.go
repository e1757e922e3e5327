package db

import (
	"testing"
	"time"

	"github.com/plaid/plaid-go/v41/plaid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-server/src/models"
)

func plaidTxn(amount float64, name, date, category string) plaid.Transaction {
	var txn plaid.Transaction
	txn.SetAmount(amount)
	txn.SetName(name)
	txn.SetDate(date)
	txn.SetTransactionId("txn-" + name)
	txn.SetPersonalFinanceCategory(*plaid.NewPersonalFinanceCategory(category, category+"_DETAIL"))
	return txn
}

func TestBankLedgerEntry_OutflowIsExpense(t *testing.T) {
	entry, ok, err := bankLedgerEntry(7, plaidTxn(42.50, "Grocery Store", "2025-06-10", "FOOD_AND_DRINK"))
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, int64(7), entry.UserID)
	assert.Equal(t, models.KindExpense, entry.Kind)
	assert.Equal(t, 42.50, entry.Amount)
	assert.Equal(t, "Grocery Store", entry.Description)
	assert.Equal(t, "FOOD_AND_DRINK", entry.Category)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), entry.Date)
}

func TestBankLedgerEntry_InflowIsIncome(t *testing.T) {
	entry, ok, err := bankLedgerEntry(7, plaidTxn(-1500, "Payroll", "2025-06-01", "INCOME"))
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, models.KindIncome, entry.Kind)
	assert.Equal(t, 1500.0, entry.Amount)
}

func TestBankLedgerEntry_ZeroAmountSkipped(t *testing.T) {
	entry, ok, err := bankLedgerEntry(7, plaidTxn(0, "Pending Hold", "2025-06-01", "TRANSFER_OUT"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestBankLedgerEntry_BadDate(t *testing.T) {
	_, _, err := bankLedgerEntry(7, plaidTxn(10, "Broken", "06/01/2025", "FOOD_AND_DRINK"))
	assert.Error(t, err)
}
