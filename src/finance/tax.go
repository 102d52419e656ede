package finance

import "github.com/shopspring/decimal"

// Flat demo rate. Brackets and jurisdiction rules are out of scope.
var taxRate = decimal.NewFromFloat(0.20)

// TaxInput carries the manually entered income and deduction categories
// that supplement the tracked transactions.
type TaxInput struct {
	PastIncome           float64 `json:"past_income"`
	PastExpenses         float64 `json:"past_expenses"`
	SalaryIncome         float64 `json:"salary_income"`
	BusinessIncome       float64 `json:"business_income"`
	OtherIncome          float64 `json:"other_income"`
	CapitalGains         float64 `json:"capital_gains"`
	StandardDeduction    float64 `json:"standard_deduction"`
	InvestmentDeductions float64 `json:"investment_deductions"`
	BusinessDeductions   float64 `json:"business_deductions"`
	OtherDeductions      float64 `json:"other_deductions"`
}

type TaxEstimate struct {
	GrossIncome     float64 `json:"gross_income"`
	TotalDeductions float64 `json:"total_deductions"`
	TaxableIncome   float64 `json:"taxable_income"`
	EstimatedTax    float64 `json:"estimated_tax"`
}

// EstimateTax combines tracked totals with the manually entered
// categories into a single flat-rate estimate. Taxable income never goes
// negative regardless of how deductions stack up.
func EstimateTax(trackedIncome, trackedExpenses float64, in TaxInput) TaxEstimate {
	gross := sum(trackedIncome, in.PastIncome, in.SalaryIncome,
		in.BusinessIncome, in.OtherIncome, in.CapitalGains)
	deductions := sum(trackedExpenses, in.PastExpenses, in.StandardDeduction,
		in.InvestmentDeductions, in.BusinessDeductions, in.OtherDeductions)

	taxable := gross.Sub(deductions)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	tax := taxable.Mul(taxRate).Round(2)

	grossF, _ := gross.Round(2).Float64()
	deductionsF, _ := deductions.Round(2).Float64()
	taxableF, _ := taxable.Round(2).Float64()
	taxF, _ := tax.Float64()
	return TaxEstimate{
		GrossIncome:     grossF,
		TotalDeductions: deductionsF,
		TaxableIncome:   taxableF,
		EstimatedTax:    taxF,
	}
}

func sum(values ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}
