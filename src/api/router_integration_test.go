package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"cashflow-server/src/db"
	"cashflow-server/src/models"

	"github.com/go-chi/chi/v5"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func setupTestRouter(t *testing.T) *chi.Mux {
	// Integration tests are opt-in. Set TEST_DATABASE_URL to run them.
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("integration tests are disabled; set TEST_DATABASE_URL to enable")
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration-test-secret")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := db.InitSchema(ctx, pool); err != nil {
		t.Fatalf("schema: %v", err)
	}
	db.InitCache()
	return NewRouter(pool, nil, nil)
}

func TestFullFlow(t *testing.T) {
	r := setupTestRouter(t)
	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())

	// 1. First login creates the user with defaults
	loginBody, _ := json.Marshal(map[string]any{"email": email})
	resp := performRequest(r, http.MethodPost, "/api/auth/login", bytes.NewBuffer(loginBody), "")
	if resp.Code != 200 {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var login models.LoginResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &login)
	if login.Token == "" {
		t.Fatalf("empty token in login response: %s", resp.Body.String())
	}
	if login.User.Role != "individual" || login.User.Age != 18 || login.User.Subscription != "free" {
		t.Fatalf("unexpected defaults: %+v", login.User)
	}
	token := login.Token
	userID := login.User.ID

	// 2. Second login returns the same row unchanged
	resp = performRequest(r, http.MethodPost, "/api/auth/login", bytes.NewBuffer(loginBody), "")
	var again models.LoginResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &again)
	if again.User.ID != userID {
		t.Fatalf("second login created a new row: %d vs %d", again.User.ID, userID)
	}

	// 3. Create transactions
	for _, tx := range []map[string]any{
		{"type": "income", "amount": 1000, "category": "Salary", "description": "pay", "date": "2025-03-01"},
		{"type": "expense", "amount": 400, "category": "Food", "description": "groceries", "date": "2025-03-02"},
		{"type": "expense", "amount": 200, "category": "Food", "description": "dining", "date": "2025-03-03"},
	} {
		body, _ := json.Marshal(tx)
		resp = performRequest(r, http.MethodPost, "/api/transactions", bytes.NewBuffer(body), token)
		if resp.Code != 201 {
			t.Fatalf("create transaction failed status=%d body=%s", resp.Code, resp.Body.String())
		}
	}

	// Rejected: bad type
	bad, _ := json.Marshal(map[string]any{"type": "transfer", "amount": 5, "category": "x", "date": "2025-03-04"})
	resp = performRequest(r, http.MethodPost, "/api/transactions", bytes.NewBuffer(bad), token)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("invalid type accepted: status=%d", resp.Code)
	}

	// 4. List comes back newest first
	resp = performRequest(r, http.MethodGet, fmt.Sprintf("/api/transactions/%d", userID), nil, token)
	if resp.Code != 200 {
		t.Fatalf("list transactions failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var list []models.Transaction
	_ = json.Unmarshal(resp.Body.Bytes(), &list)
	if len(list) != 3 || list[0].Date != "2025-03-03" {
		t.Fatalf("unexpected list order: %+v", list)
	}

	// 5. Insights reflect the writes
	resp = performRequest(r, http.MethodGet, fmt.Sprintf("/api/insights/%d", userID), nil, token)
	var insights map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &insights)
	if insights["total_income"].(float64) != 1000 || insights["total_expenses"].(float64) != 600 {
		t.Fatalf("unexpected insights: %s", resp.Body.String())
	}
	if insights["savings_rate"].(float64) != 40 {
		t.Fatalf("savings rate = %v, want 40", insights["savings_rate"])
	}

	// 6. Advisors are seeded
	resp = performRequest(r, http.MethodGet, "/api/advisors", nil, token)
	var advisors []models.Advisor
	_ = json.Unmarshal(resp.Body.Bytes(), &advisors)
	if len(advisors) != 3 {
		t.Fatalf("expected 3 seeded advisors, got %d", len(advisors))
	}

	// 7. Book a session and confirm it
	bookBody, _ := json.Marshal(map[string]any{"advisor_id": advisors[0].ID, "date": "2025-04-01", "time": "10:30"})
	resp = performRequest(r, http.MethodPost, "/api/bookings", bytes.NewBuffer(bookBody), token)
	if resp.Code != 201 {
		t.Fatalf("create booking failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var booking models.Booking
	_ = json.Unmarshal(resp.Body.Bytes(), &booking)
	if booking.Status != "pending" {
		t.Fatalf("new booking status = %s, want pending", booking.Status)
	}
	statusBody, _ := json.Marshal(map[string]string{"status": "confirmed"})
	resp = performRequest(r, http.MethodPut, fmt.Sprintf("/api/bookings/%d/status", booking.ID), bytes.NewBuffer(statusBody), token)
	if resp.Code != 200 {
		t.Fatalf("update booking failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 8. Planner and tax endpoints
	planBody, _ := json.Marshal(map[string]string{"goal": "education"})
	resp = performRequest(r, http.MethodPost, "/api/planner/analyze", bytes.NewBuffer(planBody), token)
	var plan map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &plan)
	if plan["risky"].(bool) != true || plan["score"].(float64) != 45 {
		t.Fatalf("balance 400 should be risky with score 45: %s", resp.Body.String())
	}

	taxBody, _ := json.Marshal(map[string]any{"salary_income": 5000})
	resp = performRequest(r, http.MethodPost, "/api/tax/estimate", bytes.NewBuffer(taxBody), token)
	var tax map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &tax)
	if tax["taxable_income"].(float64) != 5400 {
		t.Fatalf("taxable = %v, want 5400", tax["taxable_income"])
	}

	// 9. Advisor endpoints report unavailable without an API key
	adviceBody, _ := json.Marshal(map[string]string{"prompt": "how am I doing?"})
	resp = performRequest(r, http.MethodPost, "/api/advice", bytes.NewBuffer(adviceBody), token)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("advice without ai client: status=%d", resp.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	r := setupTestRouter(t)
	resp := performRequest(r, http.MethodGet, "/api/transactions/1", nil, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated request passed: status=%d", resp.Code)
	}
}

func TestCrossUserForbidden(t *testing.T) {
	r := setupTestRouter(t)
	email := fmt.Sprintf("it-cross-%d@example.com", time.Now().UnixNano())
	loginBody, _ := json.Marshal(map[string]any{"email": email})
	resp := performRequest(r, http.MethodPost, "/api/auth/login", bytes.NewBuffer(loginBody), "")
	var login models.LoginResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &login)

	resp = performRequest(r, http.MethodGet, fmt.Sprintf("/api/transactions/%d", login.User.ID+1), nil, login.Token)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("cross-user read allowed: status=%d", resp.Code)
	}
}
