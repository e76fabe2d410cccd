package handler

import (
	"github.com/todoexpert/todo-system/internal/core/ports"
)

// --- Service result → Response ---

func toUserResponse(u ports.UserSummary) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}

func toTodoResponse(t *ports.TodoResult) todoResponse {
	return todoResponse{
		ID:         t.ID,
		Title:      t.Title,
		Contents:   t.Contents,
		Weather:    t.Weather,
		User:       toUserResponse(t.User),
		CreatedAt:  t.CreatedAt,
		ModifiedAt: t.ModifiedAt,
	}
}

func toTodoPageResponse(p *ports.TodoPage) todoPageResponse {
	content := make([]todoResponse, len(p.Items))
	for i := range p.Items {
		content[i] = toTodoResponse(&p.Items[i])
	}
	return todoPageResponse{
		Content:    content,
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func toManagerResponse(m ports.ManagerResult) managerResponse {
	return managerResponse{ID: m.ID, User: toUserResponse(m.User)}
}

func toCommentResponse(c ports.CommentResult) commentResponse {
	return commentResponse{ID: c.ID, Contents: c.Contents, User: toUserResponse(c.User)}
}

func toAdminAccessResponses(recs []ports.AdminAccess) []adminAccessResponse {
	out := make([]adminAccessResponse, len(recs))
	for i, r := range recs {
		out[i] = adminAccessResponse{
			UserID:     r.UserID,
			Method:     r.Method,
			RequestURI: r.RequestURI,
			RequestID:  r.RequestID,
			At:         r.At,
		}
	}
	return out
}
