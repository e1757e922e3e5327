package finance

import (
	"fmt"
	"math"
)

// DefaultTargetMonths is the emergency-fund horizon used when a goal is
// created without an explicit target.
const DefaultTargetMonths = 6

// ProgressPercentage returns how far along a savings goal is, capped at 100.
// Unlike credit utilization, saving past the target still reads as complete.
func ProgressPercentage(current, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := roundPercent(current / target * 100)
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// RemainingAmount returns how much is left to save, never negative.
func RemainingAmount(current, target float64) float64 {
	if current >= target {
		return 0
	}
	return target - current
}

// MonthsCovered returns how many months of baseline expenses the current
// amount covers, formatted to one decimal for display.
func MonthsCovered(current, baseline float64) string {
	if baseline <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", current/baseline)
}

// IsGoalMet reports whether the goal target has been reached.
func IsGoalMet(current, target float64) bool {
	return current >= target
}

// RecommendedTarget returns the suggested emergency-fund target for the
// given number of months of baseline expenses.
func RecommendedTarget(baseline float64, months int) float64 {
	return baseline * float64(months)
}

// ApplyDelta returns the goal amount after adding delta, floored at zero so
// a large withdrawal cannot drive the fund negative.
func ApplyDelta(current, delta float64) float64 {
	return math.Max(0, current+delta)
}
