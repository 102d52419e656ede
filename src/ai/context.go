package ai

import (
	"encoding/json"
	"fmt"

	"cashflow-server/src/models"
)

const recentTransactionCount = 5

// AdvisorContext is the payload FlowBot receives alongside every prompt:
// the user's role, their totals, and the last five transactions.
type AdvisorContext struct {
	Role               string
	TotalIncome        float64
	TotalExpenses      float64
	RecentTransactions []models.Transaction
}

// NewAdvisorContext builds the chat context from a user and their
// transaction list (newest first).
func NewAdvisorContext(user *models.User, totalIncome, totalExpenses float64, transactions []models.Transaction) AdvisorContext {
	recent := transactions
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}
	return AdvisorContext{
		Role:               user.Role,
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		RecentTransactions: recent,
	}
}

// SystemInstruction renders the FlowBot persona prompt.
func (c AdvisorContext) SystemInstruction() string {
	recent, err := json.Marshal(c.RecentTransactions)
	if err != nil {
		recent = []byte("[]")
	}
	return fmt.Sprintf(`You are FlowBot, a smart financial advisor for the "Cash Flow" platform.
Your goal is to help users manage their money, prevent overspending, and forecast future outcomes.

User Context:
- Role: %s
- Total Income: %g
- Total Expenses: %g
- Recent Transactions: %s

Provide actionable, professional, and encouraging advice. Use markdown for formatting.
If the user asks about business, provide scaling and profit margin insights.
If the user is a student, focus on saving and education costs.`,
		c.Role, c.TotalIncome, c.TotalExpenses, recent)
}
