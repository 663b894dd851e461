package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SheetStore keeps spreadsheet rows as schemaless documents.
type SheetStore struct {
	coll *mongo.Collection
}

func NewSheetStore(coll *mongo.Collection) *SheetStore {
	return &SheetStore{coll: coll}
}

func (s *SheetStore) Rows(ctx context.Context) ([]map[string]any, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", s.coll.Name())
	}
	rows := []map[string]any{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.coll.Name())
	}
	return rows, nil
}

func (s *SheetStore) Count(ctx context.Context) (int64, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrapf(err, "count %s", s.coll.Name())
	}
	return count, nil
}

func (s *SheetStore) Insert(ctx context.Context, rows []map[string]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	docs := make([]any, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row)
	}
	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, errors.Wrapf(err, "insert into %s", s.coll.Name())
	}
	return len(res.InsertedIDs), nil
}

func (s *SheetStore) Clear(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrapf(err, "clear %s", s.coll.Name())
	}
	return res.DeletedCount, nil
}

func (s *SheetStore) Replace(ctx context.Context, rows []map[string]any) (int64, int, error) {
	deleted, err := s.Clear(ctx)
	if err != nil {
		return 0, 0, err
	}
	inserted, err := s.Insert(ctx, rows)
	if err != nil {
		return deleted, 0, err
	}
	return deleted, inserted, nil
}
