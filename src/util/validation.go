package util

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// ValidationError names the offending field so handlers can return
// field-level 400s instead of a generic bad-request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

var userRoles = map[string]bool{
	"student":    true,
	"teacher":    true,
	"individual": true,
	"business":   true,
}

func ValidateRole(role string) bool {
	return userRoles[role]
}

func ValidateAge(age int) bool {
	return age >= 13 && age <= 120
}

var transactionTypes = map[string]bool{
	"income":     true,
	"expense":    true,
	"petty_cash": true,
}

func ValidateTransactionType(t string) bool {
	return transactionTypes[t]
}

func ValidateAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

func ValidateCategory(category string) bool {
	c := strings.TrimSpace(category)
	return c != "" && len(c) <= 64
}

// Dates are stored as plain YYYY-MM-DD strings; the descending-date
// transaction query depends on that shape sorting lexically.
func ValidateDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func ValidateTime(t string) bool {
	_, err := time.Parse("15:04", t)
	return err == nil
}

var bookingStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"cancelled": true,
}

func ValidateBookingStatus(status string) bool {
	return bookingStatuses[status]
}
