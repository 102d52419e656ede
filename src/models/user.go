package models

import "time"

type User struct {
	ID            int       `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Age           int       `json:"age"`
	Subscription  string    `json:"subscription"`
	CompanyName   *string   `json:"company_name"`
	EmployeeCount *int      `json:"employee_count"`
	GovScheme     *string   `json:"gov_scheme"`
	CreatedAt     time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Role          string  `json:"role"`
	Age           int     `json:"age"`
	CompanyName   *string `json:"companyName"`
	EmployeeCount *int    `json:"employeeCount"`
	GovScheme     *string `json:"govScheme"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
