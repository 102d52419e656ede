package models

import "time"

const (
	TransactionIncome    = "income"
	TransactionExpense   = "expense"
	TransactionPettyCash = "petty_cash"
)

type Transaction struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	UpiID       *string   `json:"upi_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateTransactionRequest struct {
	UserID      int     `json:"user_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	UpiID       *string `json:"upi_id"`
}
