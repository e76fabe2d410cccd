package domain

import "strings"

// Ownership and authorization rules. Every function here is pure: it decides
// on already-loaded entities and never touches storage. Checks run in a fixed
// order and the first failure is returned.

// CommentPolicy selects who may comment on a todo.
type CommentPolicy string

const (
	// CommentPolicyAnyUser lets any authenticated caller comment on any todo.
	CommentPolicyAnyUser CommentPolicy = "any"
	// CommentPolicyManagersOnly restricts comments to the owner and the todo's managers.
	CommentPolicyManagersOnly CommentPolicy = "managers"
)

// ParseCommentPolicy accepts "any" or "managers", case-insensitively. An empty
// value means CommentPolicyAnyUser; anything else is ErrInvalidCommentPolicy.
func ParseCommentPolicy(s string) (CommentPolicy, error) {
	switch CommentPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CommentPolicyAnyUser:
		return CommentPolicyAnyUser, nil
	case CommentPolicyManagersOnly:
		return CommentPolicyManagersOnly, nil
	default:
		return "", ErrInvalidCommentPolicy
	}
}

// CheckTodoOwner fails unless requesterID is the todo's owner.
func CheckTodoOwner(requesterID int64, todo *Todo) error {
	if todo.UserID == 0 {
		return ErrOwnerMissing
	}
	if requesterID != todo.UserID {
		return ErrNotOwner
	}
	return nil
}

// CanAssignManager decides whether requesterID may make candidateUserID a
// manager of todo.
func CanAssignManager(requesterID int64, todo *Todo, candidateUserID int64) error {
	if err := CheckTodoOwner(requesterID, todo); err != nil {
		return err
	}
	if candidateUserID == todo.UserID {
		return ErrSelfAssignment
	}
	return nil
}

// CheckManagerOfTodo fails when the manager belongs to a different todo.
func CheckManagerOfTodo(todo *Todo, manager *Manager) error {
	if manager.TodoID != todo.ID {
		return ErrManagerNotOfTodo
	}
	return nil
}

// CanDeleteManager decides whether requesterID may remove manager from todo.
// Ownership is evaluated against the current todo owner.
func CanDeleteManager(requesterID int64, todo *Todo, manager *Manager) error {
	if err := CheckTodoOwner(requesterID, todo); err != nil {
		return err
	}
	return CheckManagerOfTodo(todo, manager)
}

// CanUpdateComment allows only the original author.
func CanUpdateComment(requesterID int64, comment *Comment) error {
	if requesterID != comment.UserID {
		return ErrNotAuthor
	}
	return nil
}

// CanSaveComment applies the configured comment policy. managers is only
// consulted under CommentPolicyManagersOnly.
func CanSaveComment(policy CommentPolicy, requesterID int64, todo *Todo, managers []ManagerWithUser) error {
	if policy != CommentPolicyManagersOnly {
		return nil
	}
	if todo.UserID != 0 && requesterID == todo.UserID {
		return nil
	}
	for _, m := range managers {
		if m.UserID == requesterID {
			return nil
		}
	}
	return ErrNotManager
}
