package incentive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factory-ops/internal/storage"
)

func worker(production, target int, bonusPct, salary float64) *storage.Worker {
	return &storage.Worker{
		MonthlyProduction: production,
		DailyTarget:       target,
		BonusPercentage:   bonusPct,
		MonthlySalary:     salary,
	}
}

func TestBonus_ProductionRatio(t *testing.T) {
	tests := []struct {
		name       string
		production int
		target     int
		bonusPct   float64
		want       int
	}{
		{"no production", 0, 100, 5, 0},
		{"below target, flat rate", 80, 100, 5, 4},
		{"exactly on target", 100, 100, 5, 5},
		{"over target splits at 1.5x", 110, 100, 5, 6}, // 5 + round(10*0.075)
		{"well over target", 200, 100, 10, 25},         // 10 + 100*0.15
		{"zero target pays nothing", 500, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bonus(worker(tt.production, tt.target, tt.bonusPct, 0), ProductionRatio)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBonus_ProductionRatioMonotonic(t *testing.T) {
	prev := 0
	for production := 0; production <= 300; production += 7 {
		got := Bonus(worker(production, 100, 5, 0), ProductionRatio)
		require.GreaterOrEqual(t, got, prev, "production=%d", production)
		prev = got
	}
}

func TestBonus_SalaryRatio(t *testing.T) {
	tests := []struct {
		name       string
		production int
		target     int
		salary     float64
		want       int
	}{
		{"no excess means no bonus", 100, 100, 3000, 0},
		{"below target", 40, 100, 3000, 0},
		{"ten percent over target", 110, 100, 3000, 30},  // rate 0.01
		{"double the target", 200, 100, 3000, 300},       // rate 0.1
		{"rate capped at 30 percent", 5000, 100, 3000, 900},
		{"zero target pays nothing", 5000, 0, 3000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bonus(worker(tt.production, tt.target, 0, tt.salary), SalaryRatio)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBonus_SalaryRatioNeverExceedsCap(t *testing.T) {
	salary := 4321.0
	cap := int(math.Round(salary * 0.3))

	for production := 0; production <= 10000; production += 137 {
		got := Bonus(worker(production, 50, 0, salary), SalaryRatio)
		require.LessOrEqual(t, got, cap, "production=%d", production)
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("salary")
	require.NoError(t, err)
	assert.Equal(t, SalaryRatio, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, ProductionRatio, p)

	_, err = ParsePolicy("guesswork")
	assert.ErrorIs(t, err, storage.ErrValidation)
}
