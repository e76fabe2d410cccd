package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

const collectionTodos = "todos"

type todoDoc struct {
	ID         int64     `bson:"_id"`
	Title      string    `bson:"title"`
	Contents   string    `bson:"contents"`
	Weather    string    `bson:"weather"`
	UserID     int64     `bson:"user_id"`
	CreatedAt  time.Time `bson:"created_at"`
	ModifiedAt time.Time `bson:"modified_at"`
	// User is only populated by lookupUser.
	User *userDoc `bson:"user,omitempty"`
}

func (d *todoDoc) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:         d.ID,
		Title:      d.Title,
		Contents:   d.Contents,
		Weather:    d.Weather,
		UserID:     d.UserID,
		CreatedAt:  d.CreatedAt.UTC(),
		ModifiedAt: d.ModifiedAt.UTC(),
	}
}

func (d *todoDoc) withUser() domain.TodoWithUser {
	return domain.TodoWithUser{Todo: *d.toDomain(), User: d.User.summary()}
}

type TodoRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{col: db.Collection(collectionTodos), seq: newSequence(db, collectionTodos)}
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := todoDoc{
		ID:         id,
		Title:      todo.Title,
		Contents:   todo.Contents,
		Weather:    todo.Weather,
		UserID:     todo.UserID,
		CreatedAt:  todo.CreatedAt,
		ModifiedAt: todo.ModifiedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc todoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TodoRepository) FindByIDWithUser(ctx context.Context, id int64) (*domain.TodoWithUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$limit", Value: 1}},
	}, lookupUser()...)

	docs, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrTodoNotFound
	}
	return &docs[0], nil
}

func (r *TodoRepository) List(ctx context.Context, page, size int) ([]domain.TodoWithUser, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}

	pipeline := append(mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "modified_at", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: int64(page-1) * int64(size)}},
		{{Key: "$limit", Value: int64(size)}},
	}, lookupUser()...)

	items, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *TodoRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]domain.TodoWithUser, error) {
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate todos: %w", err)
	}
	defer cur.Close(ctx)

	var docs []todoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	out := make([]domain.TodoWithUser, len(docs))
	for i := range docs {
		out[i] = docs[i].withUser()
	}
	return out, nil
}

// EnsureIndexes creates the listing and owner indexes on the todos collection.
func (r *TodoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "modified_at", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
