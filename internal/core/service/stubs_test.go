package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	users     map[int64]*domain.User
	nextID    int64
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) seed(id int64, email string, role domain.Role) *domain.User {
	u := &domain.User{ID: id, Email: email, PasswordHash: "hash:Password1", Role: role}
	r.users[id] = u
	if id > r.nextID {
		r.nextID = id
	}
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

type stubTodoRepo struct {
	todos  map[int64]*domain.Todo
	users  *stubUserRepo
	nextID int64
}

func newStubTodoRepo(users *stubUserRepo) *stubTodoRepo {
	return &stubTodoRepo{todos: make(map[int64]*domain.Todo), users: users}
}

func (r *stubTodoRepo) seed(id, ownerID int64) *domain.Todo {
	t := &domain.Todo{ID: id, Title: "todo", Contents: "contents", UserID: ownerID}
	r.todos[id] = t
	if id > r.nextID {
		r.nextID = id
	}
	return t
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	r.nextID++
	clone := *todo
	clone.ID = r.nextID
	r.todos[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTodoRepo) FindByID(_ context.Context, id int64) (*domain.Todo, error) {
	t, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTodoRepo) FindByIDWithUser(ctx context.Context, id int64) (*domain.TodoWithUser, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &domain.TodoWithUser{Todo: *t}
	if u, ok := r.users.users[t.UserID]; ok {
		out.User = *u
	}
	return out, nil
}

// List mirrors the real query: modified_at desc, then id desc.
func (r *stubTodoRepo) List(_ context.Context, page, size int) ([]domain.TodoWithUser, int64, error) {
	all := make([]domain.TodoWithUser, 0, len(r.todos))
	for _, t := range r.todos {
		item := domain.TodoWithUser{Todo: *t}
		if u, ok := r.users.users[t.UserID]; ok {
			item.User = *u
		}
		all = append(all, item)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].ModifiedAt.Equal(all[j].ModifiedAt) {
			return all[i].ModifiedAt.After(all[j].ModifiedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := int64(len(all))
	skip := (page - 1) * size
	if skip > len(all) {
		return []domain.TodoWithUser{}, total, nil
	}
	end := skip + size
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], total, nil
}

type stubManagerRepo struct {
	managers  map[int64]*domain.Manager
	users     *stubUserRepo
	nextID    int64
	deleted   []int64
	createErr error
}

func newStubManagerRepo(users *stubUserRepo) *stubManagerRepo {
	return &stubManagerRepo{managers: make(map[int64]*domain.Manager), users: users}
}

func (r *stubManagerRepo) seed(id, todoID, userID int64) {
	r.managers[id] = &domain.Manager{ID: id, TodoID: todoID, UserID: userID}
	if id > r.nextID {
		r.nextID = id
	}
}

func (r *stubManagerRepo) Create(_ context.Context, m *domain.Manager) (*domain.Manager, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *m
	clone.ID = r.nextID
	r.managers[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubManagerRepo) FindByID(_ context.Context, id int64) (*domain.Manager, error) {
	m, ok := r.managers[id]
	if !ok {
		return nil, domain.ErrManagerNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubManagerRepo) FindByTodoIDWithUser(_ context.Context, todoID int64) ([]domain.ManagerWithUser, error) {
	ids := make([]int64, 0, len(r.managers))
	for id, m := range r.managers {
		if m.TodoID == todoID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.ManagerWithUser, 0, len(ids))
	for _, id := range ids {
		m := r.managers[id]
		item := domain.ManagerWithUser{Manager: *m}
		if u, ok := r.users.users[m.UserID]; ok {
			item.User = *u
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *stubManagerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.managers[id]; !ok {
		return domain.ErrManagerNotFound
	}
	delete(r.managers, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubCommentRepo struct {
	comments map[int64]*domain.Comment
	users    *stubUserRepo
	nextID   int64
}

func newStubCommentRepo(users *stubUserRepo) *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[int64]*domain.Comment), users: users}
}

func (r *stubCommentRepo) seed(id, todoID, authorID int64, contents string) {
	r.comments[id] = &domain.Comment{ID: id, TodoID: todoID, UserID: authorID, Contents: contents}
	if id > r.nextID {
		r.nextID = id
	}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	clone := *c
	clone.ID = r.nextID
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) FindByTodoIDWithUser(_ context.Context, todoID int64) ([]domain.CommentWithUser, error) {
	ids := make([]int64, 0, len(r.comments))
	for id, c := range r.comments {
		if c.TodoID == todoID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.CommentWithUser, 0, len(ids))
	for _, id := range ids {
		c := r.comments[id]
		item := domain.CommentWithUser{Comment: *c}
		if u, ok := r.users.users[c.UserID]; ok {
			item.User = *u
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *stubCommentRepo) UpdateContents(_ context.Context, id int64, contents string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	c.Contents = contents
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// ---------------------------------------------------------------------------
// Collaborator stubs
// ---------------------------------------------------------------------------

// stubHasher "hashes" by prefixing, which keeps assertions readable.
type stubHasher struct{}

func (stubHasher) Hash(raw string) (string, error) { return "hash:" + raw, nil }

func (stubHasher) Matches(raw, encoded string) bool { return encoded == "hash:"+raw }

// stubTokens encodes the user id as "token-<id>".
type stubTokens struct {
	claims map[string]ports.Claims
}

func newStubTokens() *stubTokens {
	return &stubTokens{claims: make(map[string]ports.Claims)}
}

func (s *stubTokens) Issue(user *domain.User) (string, error) {
	token := "token-" + user.Email
	s.claims[token] = ports.Claims{UserID: user.ID, Email: user.Email, Role: user.Role}
	return token, nil
}

func (s *stubTokens) Verify(token string) (ports.Claims, error) {
	c, ok := s.claims[strings.TrimPrefix(token, "Bearer ")]
	if !ok {
		return ports.Claims{}, domain.ErrInvalidToken
	}
	return c, nil
}

type stubWeather struct {
	label string
	err   error
	calls int
}

func (w *stubWeather) TodayWeather(context.Context) (string, error) {
	w.calls++
	return w.label, w.err
}

var errStoreDown = errors.New("store unavailable")

func callerOf(u *domain.User) domain.Caller {
	return domain.Caller{ID: u.ID, Email: u.Email, Role: u.Role}
}
