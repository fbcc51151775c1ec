package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/config"
	"WANDERPLAN_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
		ResetTokenTTL:  10 * time.Minute,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice@example.com", cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token, cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID || claims.Email != "alice@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "alice@example.com", testJWTConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := &config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour}
	if _, err := ValidateToken(token, other); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute}
	token, err := GenerateToken(uuid.New(), "alice@example.com", cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateToken(token, cfg); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestAuthMiddlewarePassesUserContext(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	token, err := GenerateToken(userID, "alice@example.com", cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var gotID uuid.UUID
	var gotOK bool
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !gotOK || gotID != userID {
		t.Fatalf("context user = %v ok=%v, want %v", gotID, gotOK, userID)
	}
}

func TestAuthMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	cfg := testJWTConfig()
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without valid auth")
	}, cfg)

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestResetTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateResetToken(userID, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := ValidateResetToken(token, cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got != userID {
		t.Fatalf("user = %v, want %v", got, userID)
	}
}

func TestAccessTokenIsNotAResetToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(uuid.New(), "alice@example.com", cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateResetToken(token, cfg); err == nil {
		t.Fatal("an access token must not pass reset token validation")
	}
}
