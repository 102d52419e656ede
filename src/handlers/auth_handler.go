package handlers

import (
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/models"
	"cashflow-server/src/util"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Login finds or creates a user by email and returns the row with a JWT.
// First login stores the profile fields; later logins return the stored
// row unchanged. A password is optional at creation and verified on
// subsequent logins when one was set.
func Login(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := validateLogin(&req); err != nil {
			log.Printf("ERROR: Login validation failed - Email: %s: %v", req.Email, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		user, err := db.GetUserByEmail(r.Context(), pool, req.Email)
		if err != nil && err != db.ErrUserNotFound {
			log.Printf("ERROR: Failed to look up user %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if user == nil {
			var passwordHash *string
			if req.Password != "" {
				hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
				if err != nil {
					log.Printf("ERROR: Failed to hash password for user %s: %v", req.Email, err)
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				s := string(hashed)
				passwordHash = &s
			}
			user, err = db.CreateUser(r.Context(), pool, req, passwordHash)
			if err != nil {
				// Two first logins can race on the unique email; the loser
				// falls back to the existing row.
				if strings.Contains(err.Error(), "duplicate key") {
					user, err = db.GetUserByEmail(r.Context(), pool, req.Email)
				}
				if err != nil {
					log.Printf("ERROR: Failed to create user %s: %v", req.Email, err)
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
			} else {
				log.Printf("INFO: Created user %s, ID: %d", user.Email, user.ID)
			}
		} else {
			hash, err := db.GetUserPasswordHash(r.Context(), pool, req.Email)
			if err != nil {
				log.Printf("ERROR: Failed to fetch password hash for %s: %v", req.Email, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if hash != nil {
				if err := bcrypt.CompareHashAndPassword([]byte(*hash), []byte(req.Password)); err != nil {
					log.Printf("ERROR: Invalid password attempt for %s from IP %s", req.Email, r.RemoteAddr)
					http.Error(w, "invalid credentials", http.StatusUnauthorized)
					return
				}
			}
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"email":   user.Email,
			"exp":     time.Now().Add(time.Hour * 168).Unix(),
		})
		tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for user %s: %v", user.Email, err)
			http.Error(w, "error generating token", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Successful login - User: %s, ID: %d", user.Email, user.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginResponse{User: *user, Token: tokenString})
	}
}

func validateLogin(req *models.LoginRequest) error {
	if !util.ValidateEmail(req.Email) {
		return util.NewValidationError("email", "invalid email format")
	}
	if req.Role == "" {
		req.Role = "individual"
	}
	if !util.ValidateRole(req.Role) {
		return util.NewValidationError("role", "must be one of student, teacher, individual, business")
	}
	if req.Age == 0 {
		req.Age = 18
	}
	if !util.ValidateAge(req.Age) {
		return util.NewValidationError("age", "must be between 13 and 120")
	}
	return nil
}
