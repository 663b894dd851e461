package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cartera-go/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Store is the CRUD surface shared by every resource collection.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id primitive.ObjectID) (T, error)
	Create(ctx context.Context, doc *T) error
	// Update applies fields with $set. A missing document is ErrNotFound.
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PersonStore adds the name-based photo update used by academics and
// students.
type PersonStore interface {
	Store[model.Persona]
	UpdatePhoto(ctx context.Context, query model.PhotoQuery, link *string) (UpdateResult, error)
}

// SheetStore holds free-form spreadsheet rows.
type SheetStore interface {
	Rows(ctx context.Context) ([]map[string]any, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, rows []map[string]any) (int, error)
	Clear(ctx context.Context) (int64, error)
	// Replace deletes every row and inserts rows in their place.
	Replace(ctx context.Context, rows []map[string]any) (deleted int64, inserted int, err error)
}

// Aggregator runs a pipeline against a named collection.
type Aggregator interface {
	Aggregate(ctx context.Context, collection string, pipeline []bson.M) ([]bson.M, error)
}
