package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- MonthlyInterest tests --

func TestMonthlyInterest(t *testing.T) {
	assert.Equal(t, 79.13, MonthlyInterest(5000, 18.99))
}

func TestMonthlyInterest_ZeroRate(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyInterest(5000, 0))
}

func TestMonthlyInterest_ZeroBalance(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyInterest(0, 18.99))
}

func TestMonthlyInterest_BadRate(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyInterest(5000, math.NaN()))
	assert.Equal(t, 0.0, MonthlyInterest(5000, math.Inf(1)))
	assert.Equal(t, 0.0, MonthlyInterest(5000, -5))
	assert.Equal(t, 0.0, MonthlyInterest(5000, 150))
}

// -- Utilization tests --

func TestUtilization(t *testing.T) {
	limit := 10000.0
	pct := Utilization(5000, &limit)
	require.NotNil(t, pct)
	assert.Equal(t, 50, *pct)
}

func TestUtilization_NoLimit(t *testing.T) {
	assert.Nil(t, Utilization(5000, nil))

	zero := 0.0
	assert.Nil(t, Utilization(5000, &zero))
}

func TestUtilization_OverLimit(t *testing.T) {
	limit := 1000.0
	pct := Utilization(1500, &limit)
	require.NotNil(t, pct)
	assert.Equal(t, 150, *pct)
}

// -- PayoffMonths tests --

func TestPayoffMonths_ZeroBalance(t *testing.T) {
	assert.Equal(t, 0, PayoffMonths(0, 18.99, 200))
	assert.Equal(t, 0, PayoffMonths(-50, 18.99, 200))
}

func TestPayoffMonths_PaymentTooSmall(t *testing.T) {
	// 10000 at 29.99% APR accrues ~249.92 interest a month, a 50 payment
	// never touches principal.
	assert.Equal(t, PayoffNever, PayoffMonths(10000, 29.99, 50))
}

func TestPayoffMonths_ZeroPayment(t *testing.T) {
	assert.Equal(t, PayoffNever, PayoffMonths(1000, 18.99, 0))
	assert.Equal(t, PayoffNever, PayoffMonths(1000, 18.99, -10))
}

func TestPayoffMonths_ZeroRate(t *testing.T) {
	assert.Equal(t, 10, PayoffMonths(1000, 0, 100))
}

func TestPayoffMonths_ZeroRateUnevenFinalPayment(t *testing.T) {
	// 1000 / 300 leaves 100 for an eleventh-hour fourth payment.
	assert.Equal(t, 4, PayoffMonths(1000, 0, 300))
}

func TestPayoffMonths_NeverConvergesWithinCap(t *testing.T) {
	// A payment one cent above the first month's interest does shrink the
	// principal, but on a balance this large the schedule runs far past 50
	// years. The simulation must report never-payoff, not a capped count.
	balance := 1e9
	payment := MonthlyInterest(balance, 29.99) + 0.01
	assert.Equal(t, PayoffNever, PayoffMonths(balance, 29.99, payment))
}

func TestPayoffMonths_BarelyConverges(t *testing.T) {
	// Same one-cent margin on a small balance converges, because the
	// monthly interest falls as the principal shrinks.
	payment := MonthlyInterest(10000, 29.99) + 0.01
	months := PayoffMonths(10000, 29.99, payment)
	assert.NotEqual(t, PayoffNever, months)
	assert.LessOrEqual(t, months, 600)
}

func TestPayoffMonths_WithInterest(t *testing.T) {
	months := PayoffMonths(5000, 18.99, 200)
	// Longer than the 25 interest-free months, but clearly finite.
	assert.Greater(t, months, 25)
	assert.Less(t, months, 40)
}

// -- TotalInterestPaid tests --

func TestTotalInterestPaid(t *testing.T) {
	assert.Equal(t, 200.0, TotalInterestPaid(1000, 12, 100))
}

func TestTotalInterestPaid_NoMonths(t *testing.T) {
	assert.Equal(t, 0.0, TotalInterestPaid(1000, 0, 100))
	assert.Equal(t, 0.0, TotalInterestPaid(1000, PayoffNever, 100))
}

// -- RequiredPayment tests --

func TestRequiredPayment_ZeroRate(t *testing.T) {
	assert.Equal(t, 100.0, RequiredPayment(1200, 0, 12))
}

func TestRequiredPayment_ZeroBalance(t *testing.T) {
	assert.Equal(t, 0.0, RequiredPayment(0, 18.99, 12))
}

func TestRequiredPayment_NoTargetMonths(t *testing.T) {
	assert.Equal(t, 1200.0, RequiredPayment(1200, 18.99, 0))
}

func TestRequiredPayment_RoundsUp(t *testing.T) {
	// 1000 / 3 = 333.33..., rounded up to stay sufficient.
	assert.Equal(t, 333.34, RequiredPayment(1000, 0, 3))
}

func TestRequiredPayment_PaysOffWithinTarget(t *testing.T) {
	cases := []struct {
		balance float64
		rate    float64
		months  int
	}{
		{5000, 18.99, 12},
		{10000, 29.99, 24},
		{1500, 6.5, 6},
		{250, 22.0, 3},
	}
	for _, tc := range cases {
		payment := RequiredPayment(tc.balance, tc.rate, tc.months)
		got := PayoffMonths(tc.balance, tc.rate, payment)
		require.NotEqual(t, PayoffNever, got)
		assert.LessOrEqual(t, got, tc.months,
			"balance=%.2f rate=%.2f target=%d payment=%.2f", tc.balance, tc.rate, tc.months, payment)
	}
}
