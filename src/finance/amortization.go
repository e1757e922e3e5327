// Package finance holds the deterministic formulas behind the API's derived
// numbers: card amortization, savings goal progress, and period aggregation.
// Every function is a pure computation over plain values so handlers can call
// them concurrently without coordination.
package finance

import "math"

// PayoffNever is returned by PayoffMonths when the payment can never retire
// the balance under the current terms. It is a legitimate business outcome,
// not an error.
const PayoffNever = -1

// maxPayoffMonths bounds the payoff simulation at 50 years so the loop
// terminates for any input.
const maxPayoffMonths = 600

// round2 rounds to the nearest cent, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ceil2 rounds up to the next cent.
func ceil2(v float64) float64 {
	return math.Ceil(v*100) / 100
}

// roundPercent rounds a percentage to the nearest whole number.
func roundPercent(v float64) int {
	return int(math.Round(v))
}

// sanitizeRate clamps an APR to the valid range. Non-finite or out-of-range
// rates are treated as zero so no caller input can poison the math below.
func sanitizeRate(annualRatePercent float64) float64 {
	if math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0) {
		return 0
	}
	if annualRatePercent < 0 || annualRatePercent > 100 {
		return 0
	}
	return annualRatePercent
}

// MonthlyInterest returns one month of interest on the balance at the given
// APR, rounded to the cent. Monthly compounding is fixed.
func MonthlyInterest(balance, annualRatePercent float64) float64 {
	if math.IsNaN(balance) || math.IsInf(balance, 0) || balance <= 0 {
		return 0
	}
	rate := sanitizeRate(annualRatePercent) / 100 / 12
	return round2(balance * rate)
}

// Utilization returns balance/limit as a whole percentage, or nil when the
// card has no limit (or a zero limit). Values above 100 are reported as-is so
// callers can flag over-limit cards.
func Utilization(balance float64, limit *float64) *int {
	if limit == nil || *limit == 0 {
		return nil
	}
	pct := roundPercent(balance / *limit * 100)
	return &pct
}

// PayoffMonths simulates paying a fixed amount each month against the balance
// and returns how many months it takes to reach zero. A zero balance pays off
// in 0 months. If the payment does not exceed the first month's interest the
// debt never shrinks and PayoffNever is returned; the same sentinel is
// returned if the simulation has not converged after maxPayoffMonths.
func PayoffMonths(balance, annualRatePercent, payment float64) int {
	if math.IsNaN(balance) || math.IsInf(balance, 0) || balance <= 0 {
		return 0
	}
	if math.IsNaN(payment) || math.IsInf(payment, 0) || payment <= 0 {
		return PayoffNever
	}

	rate := sanitizeRate(annualRatePercent) / 100 / 12
	if rate > 0 && payment <= MonthlyInterest(balance, annualRatePercent) {
		return PayoffNever
	}

	months := 0
	remaining := balance
	for remaining > 0 {
		if months >= maxPayoffMonths {
			return PayoffNever
		}
		interest := round2(remaining * rate)
		remaining -= payment - interest
		months++
	}
	return months
}

// TotalInterestPaid returns the interest cost of retiring the balance over
// the given number of months at the given payment. Zero months or the
// PayoffNever sentinel cost nothing because nothing amortizes.
func TotalInterestPaid(balance float64, months int, payment float64) float64 {
	if months <= 0 {
		return 0
	}
	return round2(payment*float64(months) - balance)
}

// RequiredPayment solves the annuity formula payment = (r*B) / (1-(1+r)^-n)
// for the monthly payment that retires the balance in targetMonths. The
// result is rounded up to the next cent so the payment stays sufficient after
// rounding. A non-positive targetMonths means pay the balance immediately.
func RequiredPayment(balance, annualRatePercent float64, targetMonths int) float64 {
	if math.IsNaN(balance) || math.IsInf(balance, 0) || balance <= 0 {
		return 0
	}
	if targetMonths <= 0 {
		return balance
	}

	rate := sanitizeRate(annualRatePercent) / 100 / 12
	if rate == 0 {
		return ceil2(balance / float64(targetMonths))
	}

	payment := (rate * balance) / (1 - math.Pow(1+rate, -float64(targetMonths)))
	return ceil2(payment)
}
