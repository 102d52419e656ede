package finance

import "github.com/shopspring/decimal"

const (
	riskThreshold = 1000
	riskyScore    = 45
	safeScore     = 85
)

var limitRate = decimal.NewFromFloat(0.20)

type PlannerAnalysis struct {
	Goal           string  `json:"goal"`
	Risky          bool    `json:"risky"`
	Recommendation string  `json:"recommendation"`
	Warning        string  `json:"warning,omitempty"`
	SuggestedLimit float64 `json:"suggested_limit"`
	Score          int     `json:"score"`
}

// AnalyzePlan applies the two-bucket spending heuristic: below the fixed
// balance threshold a planned spend is risky, otherwise safe. The
// suggested limit is a fifth of the balance, floored at zero.
func AnalyzePlan(goal string, balance float64) PlannerAnalysis {
	limit := decimal.NewFromFloat(balance).Mul(limitRate).Round(2)
	if limit.IsNegative() {
		limit = decimal.Zero
	}
	limitF, _ := limit.Float64()

	if balance < riskThreshold {
		return PlannerAnalysis{
			Goal:           goal,
			Risky:          true,
			Recommendation: "We recommend delaying this spend. Your current liquidity is low.",
			Warning:        "High Risk: Current balance below safety threshold.",
			SuggestedLimit: limitF,
			Score:          riskyScore,
		}
	}
	return PlannerAnalysis{
		Goal:           goal,
		Risky:          false,
		Recommendation: "This is a safe investment. Your savings rate supports this growth.",
		SuggestedLimit: limitF,
		Score:          safeScore,
	}
}
