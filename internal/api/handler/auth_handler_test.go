package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(_ context.Context, email, password, role string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "Password1" || role != "user" {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return "jwt", &domain.User{ID: 1, Email: email, Role: domain.RoleUser}, nil
		},
	}
	c, rec := newCtx(http.MethodPost, "/auth/signup", `{"email":"alice@example.com","password":"Password1","user_role":"user"}`)

	if err := NewAuthHandler(stub).Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.BearerToken != "Bearer jwt" {
		t.Fatalf("unexpected token: %q", resp.BearerToken)
	}
}

func TestAuthHandler_Signup_InvalidEmail(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(context.Context, string, string, string) (string, *domain.User, error) {
			t.Fatal("service must not be called")
			return "", nil, nil
		},
	}
	c, _ := newCtx(http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"x","user_role":"user"}`)

	err := NewAuthHandler(stub).Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_PropagatesDomainError(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(context.Context, string, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrEmailTaken
		},
	}
	c, _ := newCtx(http.MethodPost, "/auth/signup", `{"email":"bob@example.com","password":"x","user_role":"user"}`)

	if err := NewAuthHandler(stub).Signup(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Signin(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if password != "Password1" {
				return "", nil, domain.ErrBadCredentials
			}
			return "jwt", &domain.User{ID: 2, Email: email}, nil
		},
	}

	c, rec := newCtx(http.MethodPost, "/auth/signin", `{"email":"carol@example.com","password":"Password1"}`)
	if err := NewAuthHandler(stub).Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newCtx(http.MethodPost, "/auth/signin", `{"email":"carol@example.com","password":"nope"}`)
	if err := NewAuthHandler(stub).Signin(c); err != domain.ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}
