package finance

import (
	"time"

	"cashflow-server/src/models"

	"github.com/shopspring/decimal"
)

const chartPoints = 10

type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ChartPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// Summary holds the derived figures the dashboard displays.
type Summary struct {
	TotalIncome   float64         `json:"total_income"`
	TotalExpenses float64         `json:"total_expenses"`
	Balance       float64         `json:"balance"`
	SavingsRate   float64         `json:"savings_rate"`
	HealthScore   float64         `json:"health_score"`
	Categories    []CategoryTotal `json:"categories"`
	Chart         []ChartPoint    `json:"chart"`
}

// Summarize reduces a user's transaction list to dashboard figures. The
// input must be ordered newest-date-first, which is what the transaction
// query returns; the chart slice relies on that order. Petty cash counts
// toward neither total.
func Summarize(transactions []models.Transaction) Summary {
	income := decimal.Zero
	expenses := decimal.Zero
	var categories []CategoryTotal
	catIndex := map[string]int{}
	catSums := map[string]decimal.Decimal{}

	for _, t := range transactions {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case models.TransactionIncome:
			income = income.Add(amount)
		case models.TransactionExpense:
			expenses = expenses.Add(amount)
			if _, ok := catIndex[t.Category]; !ok {
				catIndex[t.Category] = len(categories)
				categories = append(categories, CategoryTotal{Name: t.Category})
			}
			catSums[t.Category] = catSums[t.Category].Add(amount)
		}
	}
	for i := range categories {
		v, _ := catSums[categories[i].Name].Float64()
		categories[i].Value = v
	}

	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = income.Sub(expenses).
			Div(income).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	totalIncome, _ := income.Float64()
	totalExpenses, _ := expenses.Float64()
	balance, _ := income.Sub(expenses).Float64()
	rate, _ := savingsRate.Float64()

	return Summary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       balance,
		SavingsRate:   rate,
		HealthScore:   HealthScore(rate),
		Categories:    categories,
		Chart:         chartData(transactions),
	}
}

// HealthScore maps savings rate to a 0-100 figure with a fixed linear
// policy: 50 + rate/2, clamped. The mapping is a product placeholder,
// not a financial model.
func HealthScore(savingsRate float64) float64 {
	score := 50 + savingsRate/2
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// chartData takes the newest 10 transactions and flips them to
// chronological order for time-series plotting.
func chartData(transactions []models.Transaction) []ChartPoint {
	n := len(transactions)
	if n > chartPoints {
		n = chartPoints
	}
	points := make([]ChartPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		t := transactions[i]
		points = append(points, ChartPoint{
			Date:   formatChartDate(t.Date),
			Amount: t.Amount,
			Type:   t.Type,
		})
	}
	return points
}

func formatChartDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Jan 02")
}
