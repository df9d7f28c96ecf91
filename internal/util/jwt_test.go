package util

import (
	"testing"
	"time"

	"kpi_tracker_backend/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 42},
		Email:     "somchai@example.ac.th",
		Role:      model.RoleAdmin,
	}

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "somchai@example.ac.th" {
		t.Errorf("Email = %q", claims.Email)
	}
	if !claims.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.RoleUser}

	token, err := GenerateJWT(user, "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "wrong-secret"); err == nil {
		t.Error("ParseJWT with wrong secret should fail")
	}
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.RoleUser}

	token, err := GenerateJWT(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestIsAdminNilClaims(t *testing.T) {
	var claims *Claims
	if claims.IsAdmin() {
		t.Error("nil claims should not be admin")
	}
}
