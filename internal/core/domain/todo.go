package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Todo is a task owned by the user who created it. UserID is fixed at
// creation; zero means the owner reference is missing.
type Todo struct {
	ID         int64
	Title      string
	Contents   string
	Weather    string
	UserID     int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// TodoWithUser is a todo with its owner resolved.
type TodoWithUser struct {
	Todo
	User User
}

// Manager grants a user co-assignee status on a todo.
type Manager struct {
	ID     int64
	TodoID int64
	UserID int64
}

// ManagerWithUser is a manager with the assigned user resolved.
type ManagerWithUser struct {
	Manager
	User User
}

// MaxCommentLength is the upper bound on comment contents, in characters.
const MaxCommentLength = 1000

// Comment is a note attached to a todo. UserID is the author and never changes.
type Comment struct {
	ID         int64
	Contents   string
	UserID     int64
	TodoID     int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// CommentWithUser is a comment with its author resolved.
type CommentWithUser struct {
	Comment
	User User
}

// ValidateCommentContents enforces 1..MaxCommentLength non-blank characters.
func ValidateCommentContents(contents string) error {
	if strings.TrimSpace(contents) == "" {
		return ErrBlankContent
	}
	if utf8.RuneCountInString(contents) > MaxCommentLength {
		return ErrContentTooLong
	}
	return nil
}
