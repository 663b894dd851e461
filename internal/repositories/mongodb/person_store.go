package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cartera-go/internal/model"
	"cartera-go/internal/repositories"
)

type PersonStore struct {
	*Store[model.Persona]
}

func NewPersonStore(coll *mongo.Collection) *PersonStore {
	return &PersonStore{Store: NewStore[model.Persona](coll)}
}

// UpdatePhoto sets link_foto on the first person matching query.
func (s *PersonStore) UpdatePhoto(ctx context.Context, query model.PhotoQuery, link *string) (repositories.UpdateResult, error) {
	filter := bson.M{"nombre": query.Nombre, "a_paterno": query.APaterno}
	if query.HasAMaterno {
		filter["a_materno"] = query.AMaterno
	}

	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"link_foto": link}})
	if err != nil {
		return repositories.UpdateResult{}, errors.Wrapf(err, "update photo in %s", s.coll.Name())
	}
	result := repositories.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}
	if result.Matched == 0 {
		return result, repositories.ErrNotFound
	}
	return result, nil
}
