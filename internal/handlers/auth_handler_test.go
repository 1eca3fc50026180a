package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shoplite/api/internal/auth"
	"github.com/shoplite/api/internal/repository"
	"github.com/shoplite/api/internal/service"
	"github.com/shoplite/api/pkg/logger"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *auth.TokenService) {
	t.Helper()

	tokens, err := auth.NewTokenService(5 * time.Minute)
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}

	users := repository.NewInMemoryUserRepository()
	// Low bcrypt cost keeps the tests fast
	authService := service.NewAuthService(users, tokens, 4)
	log := logger.New("error")

	return NewAuthHandler(authService, log), tokens
}

func TestRegister(t *testing.T) {
	handler, _ := newAuthHandler(t)

	body := `{"email":"alice@example.com","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var user map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if user["email"] != "alice@example.com" {
		t.Errorf("email = %v, want alice@example.com", user["email"])
	}
	if user["role"] != "user" {
		t.Errorf("role = %v, want user", user["role"])
	}
	if user["id"] == "" || user["id"] == nil {
		t.Error("expected a generated user id")
	}

	// The hash must never appear in a response
	for _, key := range []string{"passwordHash", "password", "PasswordHash"} {
		if _, ok := user[key]; ok {
			t.Errorf("response leaks %s", key)
		}
	}
}

func TestRegister_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no email", `{"password":"s3cret"}`},
		{"no password", `{"email":"alice@example.com"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newAuthHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	handler, tokens := newAuthHandler(t)

	register := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"alice@example.com","password":"s3cret"}`))
	handler.Register(httptest.NewRecorder(), register)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"s3cret"}`))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	token := response["token"]
	if token == "" {
		t.Fatal("expected a token in the response")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("claims email = %s, want alice@example.com", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("claims role = %s, want user", claims.Role)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	handler, _ := newAuthHandler(t)

	register := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"alice@example.com","password":"s3cret"}`))
	handler.Register(httptest.NewRecorder(), register)

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"alice@example.com","password":"wrong"}`},
		{"unknown email", `{"email":"bob@example.com","password":"s3cret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response["error"] != "Invalid credentials" {
				t.Errorf("error = %q, want %q", response["error"], "Invalid credentials")
			}
			if response["token"] != "" {
				t.Error("expected no token on failed login")
			}
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	handler, _ := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
