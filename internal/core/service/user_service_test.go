package service

import (
	"context"
	"testing"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

func TestUserService_GetUser(t *testing.T) {
	users := newStubUserRepo()
	users.seed(1, "alice@example.com", domain.RoleUser)
	svc := NewUserService(users, stubHasher{}, discardLogger)

	got, err := svc.GetUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 || got.Email != "alice@example.com" {
		t.Errorf("unexpected summary: %+v", got)
	}

	if _, err := svc.GetUser(context.Background(), 2); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	tests := []struct {
		name     string
		callerID int64
		old      string
		new      string
		wantErr  error
		wantHash string
	}{
		{name: "success", callerID: 1, old: "Password1", new: "Newpass99", wantHash: "hash:Newpass99"},
		{name: "policy violation", callerID: 1, old: "Password1", new: "short", wantErr: domain.ErrPasswordPolicy, wantHash: "hash:Password1"},
		{name: "policy checked before user lookup", callerID: 9, old: "x", new: "nodigits", wantErr: domain.ErrPasswordPolicy},
		{name: "same as current", callerID: 1, old: "Password1", new: "Password1", wantErr: domain.ErrPasswordUnchanged, wantHash: "hash:Password1"},
		{name: "wrong old password", callerID: 1, old: "Wrongpass1", new: "Newpass99", wantErr: domain.ErrBadCredentials, wantHash: "hash:Password1"},
		{name: "wrong old password with current as new", callerID: 1, old: "Wrongpass1", new: "Password1", wantErr: domain.ErrBadCredentials, wantHash: "hash:Password1"},
		{name: "unknown caller", callerID: 9, old: "Password1", new: "Newpass99", wantErr: domain.ErrUserNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := newStubUserRepo()
			users.seed(1, "alice@example.com", domain.RoleUser)
			svc := NewUserService(users, stubHasher{}, discardLogger)

			caller := domain.Caller{ID: tc.callerID, Role: domain.RoleUser}
			err := svc.ChangePassword(context.Background(), caller, tc.old, tc.new)
			if err != tc.wantErr {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantHash != "" && users.users[1].PasswordHash != tc.wantHash {
				t.Errorf("stored hash = %q, want %q", users.users[1].PasswordHash, tc.wantHash)
			}
		})
	}
}

func TestUserService_ChangeUserRole(t *testing.T) {
	users := newStubUserRepo()
	users.seed(1, "alice@example.com", domain.RoleUser)
	svc := NewUserService(users, stubHasher{}, discardLogger)

	if err := svc.ChangeUserRole(context.Background(), 1, "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users.users[1].Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", users.users[1].Role)
	}
}

func TestUserService_ChangeUserRole_InvalidRoleLeavesUserUnchanged(t *testing.T) {
	users := newStubUserRepo()
	users.seed(1, "alice@example.com", domain.RoleUser)
	svc := NewUserService(users, stubHasher{}, discardLogger)

	if err := svc.ChangeUserRole(context.Background(), 1, "SUPERUSER"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if users.users[1].Role != domain.RoleUser {
		t.Fatalf("role must be unchanged, got %s", users.users[1].Role)
	}
}

func TestUserService_ChangeUserRole_UserNotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), stubHasher{}, discardLogger)

	if err := svc.ChangeUserRole(context.Background(), 7, "admin"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
