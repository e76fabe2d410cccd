package service

import (
	"context"
	"errors"
	"testing"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

func newAuthSvc() (*AuthService, *stubUserRepo, *stubTokens) {
	users := newStubUserRepo()
	tokens := newStubTokens()
	return NewAuthService(users, stubHasher{}, tokens, discardLogger), users, tokens
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, users, tokens := newAuthSvc()

	token, user, err := svc.Signup(context.Background(), " alice@example.com ", "Password1", "user")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user == nil || user.ID == 0 {
		t.Fatalf("expected a stored user, got %+v", user)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("expected trimmed email, got %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("unexpected role: %s", user.Role)
	}
	if users.users[user.ID].PasswordHash != "hash:Password1" {
		t.Errorf("expected password to be hashed, got %q", users.users[user.ID].PasswordHash)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token subject = %d, want %d", claims.UserID, user.ID)
	}
}

func TestAuthService_Signup_AdminRoleCaseInsensitive(t *testing.T) {
	svc, _, _ := newAuthSvc()

	_, user, err := svc.Signup(context.Background(), "root@example.com", "Password1", "Admin")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", user.Role)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc, users, _ := newAuthSvc()

	if _, _, err := svc.Signup(context.Background(), "   ", "Password1", "user"); err != domain.ErrEmailRequired {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "bob@example.com", "Password1", "superuser"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if len(users.users) != 0 {
		t.Fatalf("nothing should be stored, got %d users", len(users.users))
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	svc, _, _ := newAuthSvc()

	if _, _, err := svc.Signup(context.Background(), "bob@example.com", "Password1", "user"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "bob@example.com", "Password2", "user"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Signup_StoreError(t *testing.T) {
	svc, users, _ := newAuthSvc()
	users.createErr = errStoreDown

	if _, _, err := svc.Signup(context.Background(), "bob@example.com", "Password1", "user"); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestAuthService_Signin_Success(t *testing.T) {
	svc, users, tokens := newAuthSvc()
	carol := users.seed(3, "carol@example.com", domain.RoleAdmin)

	token, user, err := svc.Signin(context.Background(), "carol@example.com", "Password1")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if user == nil || user.ID != carol.ID {
		t.Fatalf("unexpected user: %+v", user)
	}
	claims, err := tokens.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, claims.Role)
	}
}

func TestAuthService_Signin_TrimsEmail(t *testing.T) {
	svc, _, _ := newAuthSvc()

	if _, _, err := svc.Signup(context.Background(), " erin@example.com ", "Password1", "user"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	_, user, err := svc.Signin(context.Background(), "  erin@example.com\t", "Password1")
	if err != nil {
		t.Fatalf("padded email should sign in, got %v", err)
	}
	if user.Email != "erin@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	svc, users, _ := newAuthSvc()
	users.seed(4, "dave@example.com", domain.RoleUser)

	if _, _, err := svc.Signin(context.Background(), "dave@example.com", "badpass"); err != domain.ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestAuthService_Signin_UserNotFound(t *testing.T) {
	svc, _, _ := newAuthSvc()

	if _, _, err := svc.Signin(context.Background(), "ghost@example.com", "Password1"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Signin_EmptyInput(t *testing.T) {
	svc, _, _ := newAuthSvc()

	if _, _, err := svc.Signin(context.Background(), "", ""); err != domain.ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}
