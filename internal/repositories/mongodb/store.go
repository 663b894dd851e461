package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"cartera-go/internal/model"
	"cartera-go/internal/repositories"
)

// Store is a collection-backed repositories.Store. Fields listed in unique
// are checked before writes so collisions surface as ErrDuplicate even
// without a unique index.
type Store[T any] struct {
	coll   *mongo.Collection
	unique []string
}

func NewStore[T any](coll *mongo.Collection, unique ...string) *Store[T] {
	return &Store[T]{coll: coll, unique: unique}
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", s.coll.Name())
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.coll.Name())
	}
	return docs, nil
}

func (s *Store[T]) Get(ctx context.Context, id primitive.ObjectID) (T, error) {
	var doc T
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, repositories.ErrNotFound
	}
	if err != nil {
		return doc, errors.Wrapf(err, "find %s %s", s.coll.Name(), id.Hex())
	}
	return doc, nil
}

func (s *Store[T]) Create(ctx context.Context, doc *T) error {
	if p, ok := any(doc).(model.Preparer); ok {
		p.Prepare()
	}

	fields, err := toFields(doc)
	if err != nil {
		return err
	}
	if err := s.checkUnique(ctx, fields, nil); err != nil {
		return err
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicate
	}
	if err != nil {
		return errors.Wrapf(err, "insert into %s", s.coll.Name())
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		if ident, ok := any(doc).(model.Identifiable); ok {
			ident.SetID(oid)
		}
	}
	return nil
}

func (s *Store[T]) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (repositories.UpdateResult, error) {
	if err := s.checkUnique(ctx, fields, &id); err != nil {
		return repositories.UpdateResult{}, err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if mongo.IsDuplicateKeyError(err) {
		return repositories.UpdateResult{}, repositories.ErrDuplicate
	}
	if err != nil {
		return repositories.UpdateResult{}, errors.Wrapf(err, "update %s %s", s.coll.Name(), id.Hex())
	}
	result := repositories.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}
	if result.Matched == 0 {
		return result, repositories.ErrNotFound
	}
	return result, nil
}

func (s *Store[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "delete %s %s", s.coll.Name(), id.Hex())
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// checkUnique looks for another document sharing any unique field present
// in fields. exclude skips the document being updated.
func (s *Store[T]) checkUnique(ctx context.Context, fields bson.M, exclude *primitive.ObjectID) error {
	or := bson.A{}
	for _, name := range s.unique {
		if val, ok := fields[name]; ok && val != nil {
			or = append(or, bson.M{name: val})
		}
	}
	if len(or) == 0 {
		return nil
	}

	filter := bson.M{"$or": or}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return errors.Wrapf(err, "check unique fields on %s", s.coll.Name())
	}
	if count > 0 {
		return repositories.ErrDuplicate
	}
	return nil
}

func toFields(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal document")
	}
	fields := bson.M{}
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "unmarshal document")
	}
	return fields, nil
}
