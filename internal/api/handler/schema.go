package handler

import "time"

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Request types ---

type signupRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required"`
	UserRole string `json:"user_role" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type saveTodoRequest struct {
	Title    string `json:"title"    validate:"required"`
	Contents string `json:"contents" validate:"required"`
}

type saveManagerRequest struct {
	ManagerUserID int64 `json:"manager_user_id" validate:"required"`
}

type commentRequest struct {
	Contents string `json:"contents" validate:"required,max=1000"`
}

type pageQuery struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// --- Response types ---

type tokenResponse struct {
	BearerToken string `json:"bearer_token"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type todoResponse struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	Contents   string       `json:"contents"`
	Weather    string       `json:"weather"`
	User       userResponse `json:"user"`
	CreatedAt  time.Time    `json:"created_at"`
	ModifiedAt time.Time    `json:"modified_at"`
}

type todoPageResponse struct {
	Content    []todoResponse `json:"content"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	Total      int64          `json:"total_elements"`
	TotalPages int            `json:"total_pages"`
}

type managerResponse struct {
	ID   int64        `json:"id"`
	User userResponse `json:"user"`
}

type commentResponse struct {
	ID       int64        `json:"id"`
	Contents string       `json:"contents"`
	User     userResponse `json:"user"`
}

type adminAccessResponse struct {
	UserID     int64     `json:"user_id"`
	Method     string    `json:"method"`
	RequestURI string    `json:"request_uri"`
	RequestID  string    `json:"request_id,omitempty"`
	At         time.Time `json:"at"`
}
