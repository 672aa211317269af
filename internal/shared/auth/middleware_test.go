package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/serbia-gov/ai-mock/internal/shared/config"
)

const testSecret = "test-secret"

func testConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: testSecret}
}

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	return body.Error, body.Code
}

// TestMiddlewareRejectsMissingHeader tests the 401 error shape.
func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	handler := Middleware(testConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}

	if _, code := decodeErrorBody(t, rec); code != "UNAUTHORIZED" {
		t.Errorf("Expected code UNAUTHORIZED, got %s", code)
	}
}

// TestMiddlewareRejectsBadToken tests rejection of a token signed with the
// wrong key.
func TestMiddlewareRejectsBadToken(t *testing.T) {
	handler := Middleware(testConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be reached")
	}))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
}

// TestMiddlewareAcceptsValidToken tests that a valid token passes through
// and the caller lands in the request context.
func TestMiddlewareAcceptsValidToken(t *testing.T) {
	var caller *Caller
	handler := Middleware(testConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller = GetCaller(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token := signToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7b0c3e7a-0b5c-4a52-a35e-6f9a4f6d0f11"},
		Service:          "platform",
		Roles:            []string{"ai_caller"},
	})

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	if caller == nil {
		t.Fatal("Expected caller in context")
	}

	if caller.Service != "platform" {
		t.Errorf("Expected service platform, got %s", caller.Service)
	}

	if !caller.HasRole("ai_caller") {
		t.Error("Expected caller to have ai_caller role")
	}
}

// TestRequireRolesForbidden tests the 403 error shape for missing roles.
func TestRequireRolesForbidden(t *testing.T) {
	chain := Middleware(testConfig())(RequireRoles("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be reached")
	})))

	token := signToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7b0c3e7a-0b5c-4a52-a35e-6f9a4f6d0f11"},
		Roles:            []string{"ai_caller"},
	})

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	chain.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", rec.Code)
	}

	if _, code := decodeErrorBody(t, rec); code != "FORBIDDEN" {
		t.Errorf("Expected code FORBIDDEN, got %s", code)
	}
}
