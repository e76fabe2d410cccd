package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	user := &domain.User{ID: 42, Email: "carol@example.com", Role: domain.RoleAdmin}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	for _, in := range []string{token, "Bearer " + token, "bearer " + token} {
		claims, err := svc.Verify(in)
		if err != nil {
			t.Fatalf("Verify(%q...) returned error: %v", in[:10], err)
		}
		if claims.UserID != 42 || claims.Email != "carol@example.com" || claims.Role != domain.RoleAdmin {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	}

	parsed := &tokenClaims{}
	if _, err := jwt.ParseWithClaims(token, parsed, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("token not parseable with shared secret: %v", err)
	}
	if parsed.Subject != "42" {
		t.Errorf("expected subject 42, got %q", parsed.Subject)
	}
}

func TestJWTService_VerifyRejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	user := &domain.User{ID: 1, Email: "a@example.com", Role: domain.RoleUser}

	otherKey, _ := NewJWTService("other", time.Hour).Issue(user)

	expiring := NewJWTService("secret", time.Minute)
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiring.Issue(user)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
		Role:             "USER",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := map[string]string{
		"empty":        "",
		"bearer only":  "Bearer ",
		"garbage":      "not.a.token",
		"wrong secret": otherKey,
		"expired":      expired,
		"alg none":     unsigned,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Password1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Password1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
	if !h.Matches("Password1", hash) {
		t.Error("expected password to match its hash")
	}
	if h.Matches("Password2", hash) {
		t.Error("expected a different password not to match")
	}
}
