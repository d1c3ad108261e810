package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("sess-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessionID, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessionID != "sess-123" {
		t.Fatalf("sessionID = %q, want sess-123", sessionID)
	}
}

func TestGenerateTokenRequiresSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken(""); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
