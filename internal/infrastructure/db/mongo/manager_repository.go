package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

const collectionManagers = "managers"

type managerDoc struct {
	ID     int64 `bson:"_id"`
	TodoID int64 `bson:"todo_id"`
	UserID int64 `bson:"user_id"`
	// User is only populated by lookupUser.
	User *userDoc `bson:"user,omitempty"`
}

func (d *managerDoc) toDomain() *domain.Manager {
	return &domain.Manager{ID: d.ID, TodoID: d.TodoID, UserID: d.UserID}
}

type ManagerRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewManagerRepository(db *mongo.Database) *ManagerRepository {
	return &ManagerRepository{col: db.Collection(collectionManagers), seq: newSequence(db, collectionManagers)}
}

func (r *ManagerRepository) Create(ctx context.Context, m *domain.Manager) (*domain.Manager, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := managerDoc{ID: id, TodoID: m.TodoID, UserID: m.UserID}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert manager: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ManagerRepository) FindByID(ctx context.Context, id int64) (*domain.Manager, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc managerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrManagerNotFound
		}
		return nil, fmt.Errorf("find manager: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ManagerRepository) FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]domain.ManagerWithUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"todo_id": todoID}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}, lookupUser()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate managers: %w", err)
	}
	defer cur.Close(ctx)

	var docs []managerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode managers: %w", err)
	}

	out := make([]domain.ManagerWithUser, len(docs))
	for i := range docs {
		out[i] = domain.ManagerWithUser{Manager: *docs[i].toDomain(), User: docs[i].User.summary()}
	}
	return out, nil
}

func (r *ManagerRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrManagerNotFound
	}
	return nil
}

// EnsureIndexes creates the per-todo index on the managers collection.
func (r *ManagerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "todo_id", Value: 1}, {Key: "_id", Value: 1}},
	})
	return err
}
