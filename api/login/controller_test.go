package login

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	customerapp "dashboard/application/customer"
	"dashboard/infrastructure/persistence/memory"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewCustomerRepository()
	service := customerapp.NewService(repo)

	if _, err := service.Create(context.Background(), customerapp.CreateRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret",
	}); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	engine := gin.New()
	NewController(service).RegisterRoutes(engine.Group("/login"))
	return engine
}

func postLogin(t *testing.T, engine *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	engine := newTestRouter(t)

	rec := postLogin(t, engine, "ada@example.com", "secret")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		User    struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != "Login successful" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.User.Name != "Ada" || resp.User.Email != "ada@example.com" {
		t.Errorf("user = %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Errorf("response leaks password")
	}
}

func TestLoginTrimsPassword(t *testing.T) {
	engine := newTestRouter(t)

	rec := postLogin(t, engine, "ada@example.com", "  secret  ")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	engine := newTestRouter(t)

	rec := postLogin(t, engine, "nobody@example.com", "secret")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	engine := newTestRouter(t)

	rec := postLogin(t, engine, "ada@example.com", "wrong")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(rec.Body.String(), "Invalid password") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
