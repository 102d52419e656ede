package finance

import (
	"testing"

	"cashflow-server/src/models"
)

func tx(typ string, amount float64, category, date string) models.Transaction {
	return models.Transaction{Type: typ, Amount: amount, Category: category, Date: date}
}

func TestSummarizeBasic(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("income", 1000, "Salary", "2025-03-10"),
		tx("expense", 400, "Food", "2025-03-08"),
		tx("expense", 200, "Food", "2025-03-05"),
	})
	if s.TotalIncome != 1000 {
		t.Fatalf("total income = %v, want 1000", s.TotalIncome)
	}
	if s.TotalExpenses != 600 {
		t.Fatalf("total expenses = %v, want 600", s.TotalExpenses)
	}
	if s.Balance != 400 {
		t.Fatalf("balance = %v, want 400", s.Balance)
	}
	if s.SavingsRate != 40.0 {
		t.Fatalf("savings rate = %v, want 40.0", s.SavingsRate)
	}
	if s.HealthScore != 70 {
		t.Fatalf("health score = %v, want 70", s.HealthScore)
	}
	if len(s.Categories) != 1 || s.Categories[0].Name != "Food" || s.Categories[0].Value != 600 {
		t.Fatalf("categories = %+v, want [{Food 600}]", s.Categories)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome != 0 || s.TotalExpenses != 0 {
		t.Fatalf("totals = %v/%v, want 0/0", s.TotalIncome, s.TotalExpenses)
	}
	if s.SavingsRate != 0 {
		t.Fatalf("savings rate = %v, want 0 for zero income", s.SavingsRate)
	}
	if s.HealthScore != 50 {
		t.Fatalf("health score = %v, want 50", s.HealthScore)
	}
	if len(s.Chart) != 0 {
		t.Fatalf("chart = %+v, want empty", s.Chart)
	}
}

func TestSummarizePettyCashExcluded(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("income", 500, "Salary", "2025-02-01"),
		tx("petty_cash", 300, "Tea/Coffee", "2025-02-02"),
		tx("expense", 100, "Transport", "2025-02-03"),
	})
	if s.TotalIncome != 500 {
		t.Fatalf("petty cash leaked into income: %v", s.TotalIncome)
	}
	if s.TotalExpenses != 100 {
		t.Fatalf("petty cash leaked into expenses: %v", s.TotalExpenses)
	}
	for _, c := range s.Categories {
		if c.Name == "Tea/Coffee" {
			t.Fatalf("petty cash category in breakdown: %+v", s.Categories)
		}
	}
}

func TestCategoriesFirstSeenOrderAndSum(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("expense", 50, "Rent", "2025-01-05"),
		tx("expense", 20, "Food", "2025-01-04"),
		tx("expense", 30, "Rent", "2025-01-03"),
		tx("expense", 10, "Health", "2025-01-02"),
	})
	want := []string{"Rent", "Food", "Health"}
	if len(s.Categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(s.Categories), len(want))
	}
	sum := 0.0
	for i, c := range s.Categories {
		if c.Name != want[i] {
			t.Fatalf("category[%d] = %s, want %s (first-seen order)", i, c.Name, want[i])
		}
		sum += c.Value
	}
	if sum != s.TotalExpenses {
		t.Fatalf("category sum %v != total expenses %v", sum, s.TotalExpenses)
	}
}

func TestChartDataCappedAndChronological(t *testing.T) {
	// Newest first, as the transaction query returns them.
	var list []models.Transaction
	dates := []string{
		"2025-03-15", "2025-03-14", "2025-03-13", "2025-03-12", "2025-03-11",
		"2025-03-10", "2025-03-09", "2025-03-08", "2025-03-07", "2025-03-06",
		"2025-03-05", "2025-03-04",
	}
	for i, d := range dates {
		list = append(list, tx("expense", float64(i+1), "Food", d))
	}

	s := Summarize(list)
	if len(s.Chart) != 10 {
		t.Fatalf("chart has %d points, want 10", len(s.Chart))
	}
	if s.Chart[0].Date != "Mar 06" || s.Chart[9].Date != "Mar 15" {
		t.Fatalf("chart not chronological: first=%s last=%s", s.Chart[0].Date, s.Chart[9].Date)
	}
	if s.Chart[0].Amount != 10 || s.Chart[9].Amount != 1 {
		t.Fatalf("chart amounts wrong: %+v", s.Chart)
	}
}

func TestChartDataKeepsUnparseableDate(t *testing.T) {
	s := Summarize([]models.Transaction{tx("expense", 5, "Food", "whenever")})
	if len(s.Chart) != 1 || s.Chart[0].Date != "whenever" {
		t.Fatalf("chart = %+v, want raw date preserved", s.Chart)
	}
}

func TestHealthScoreClamped(t *testing.T) {
	cases := []struct {
		rate float64
		want float64
	}{
		{0, 50},
		{60, 80},
		{100, 100},
		{200, 100},
		{-100, 0},
		{-1000, 0},
		{-40, 30},
	}
	for _, c := range cases {
		if got := HealthScore(c.rate); got != c.want {
			t.Fatalf("HealthScore(%v) = %v, want %v", c.rate, got, c.want)
		}
	}
}

func TestSavingsRateNegative(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("income", 100, "Salary", "2025-02-01"),
		tx("expense", 300, "Rent", "2025-02-02"),
	})
	if s.SavingsRate != -200.0 {
		t.Fatalf("savings rate = %v, want -200.0", s.SavingsRate)
	}
	if s.HealthScore != 0 {
		t.Fatalf("health score = %v, want clamped to 0", s.HealthScore)
	}
}
