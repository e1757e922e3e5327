package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 28, ProgressPercentage(5000, 18000))
}

func TestProgressPercentage_CappedAt100(t *testing.T) {
	assert.Equal(t, 100, ProgressPercentage(25000, 18000))
}

func TestProgressPercentage_ZeroTarget(t *testing.T) {
	assert.Equal(t, 0, ProgressPercentage(5000, 0))
}

func TestRemainingAmount(t *testing.T) {
	assert.Equal(t, 13000.0, RemainingAmount(5000, 18000))
}

func TestRemainingAmount_GoalExceeded(t *testing.T) {
	assert.Equal(t, 0.0, RemainingAmount(20000, 18000))
}

func TestMonthsCovered(t *testing.T) {
	assert.Equal(t, "1.7", MonthsCovered(5000, 3000))
}

func TestMonthsCovered_ZeroBaseline(t *testing.T) {
	assert.Equal(t, "0.0", MonthsCovered(5000, 0))
}

func TestIsGoalMet(t *testing.T) {
	assert.False(t, IsGoalMet(5000, 18000))
	assert.True(t, IsGoalMet(18000, 18000))
	assert.True(t, IsGoalMet(20000, 18000))
}

func TestRecommendedTarget(t *testing.T) {
	assert.Equal(t, 18000.0, RecommendedTarget(3000, DefaultTargetMonths))
}

func TestApplyDelta(t *testing.T) {
	assert.Equal(t, 600.0, ApplyDelta(500, 100))
	assert.Equal(t, 400.0, ApplyDelta(500, -100))
}

func TestApplyDelta_FloorsAtZero(t *testing.T) {
	assert.Equal(t, 0.0, ApplyDelta(500, -800))
}
