package progress

import "math"

// The denominators are fixed rather than read from the catalog: a module is
// assumed to hold 8 cards and the course 10 modules.
const (
	ExpectedCardsPerModule = 8
	TotalModules           = 10
)

// ModulePercent is round(100 * min(1, cardsRead/8)).
func ModulePercent(cardsRead int) int {
	ratio := math.Min(1, float64(cardsRead)/ExpectedCardsPerModule)
	return clampPercent(math.Round(ratio * 100))
}

// TotalPercent is round(100 * modulesCompleted/10), clamped to [0, 100].
func TotalPercent(modulesCompleted int) int {
	return clampPercent(math.Round(float64(modulesCompleted) / TotalModules * 100))
}

func clampPercent(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
