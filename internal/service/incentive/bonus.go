package incentive

import (
	"fmt"
	"math"

	"factory-ops/internal/storage"
)

// Policy selects the bonus formula. Callers always pass it explicitly;
// nothing is inferred from which worker fields happen to be filled.
type Policy string

const (
	// ProductionRatio pays bonusPercentage on production, with the
	// over-target excess paid at 1.5 times the rate.
	ProductionRatio Policy = "production"
	// SalaryRatio pays a share of monthly salary scaled by how far
	// production exceeds the target, capped at 30% of salary.
	SalaryRatio Policy = "salary"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case ProductionRatio, SalaryRatio:
		return Policy(s), nil
	case "":
		return ProductionRatio, nil
	}

	return "", fmt.Errorf("unknown bonus policy %q: %w", s, storage.ErrValidation)
}

// Bonus computes the monthly incentive for a worker under the given
// policy. A zero daily target means no bonus is computable.
func Bonus(w *storage.Worker, policy Policy) int {
	if w.DailyTarget <= 0 {
		return 0
	}

	switch policy {
	case SalaryRatio:
		return salaryRatioBonus(w)
	default:
		return productionRatioBonus(w)
	}
}

func productionRatioBonus(w *storage.Worker) int {
	production := float64(w.MonthlyProduction)
	target := float64(w.DailyTarget)
	rate := w.BonusPercentage / 100

	if w.MonthlyProduction <= w.DailyTarget {
		return int(math.Round(production * rate))
	}

	regular := target * rate
	excess := (production - target) * rate * 1.5

	return int(math.Round(regular)) + int(math.Round(excess))
}

func salaryRatioBonus(w *storage.Worker) int {
	excess := w.MonthlyProduction - w.DailyTarget
	if excess <= 0 {
		return 0
	}

	rate := float64(excess) / float64(w.DailyTarget) * 0.1
	if rate > 0.3 {
		rate = 0.3
	}

	return int(math.Round(w.MonthlySalary * rate))
}
