package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Aggregator struct {
	database *mongo.Database
}

func NewAggregator(database *mongo.Database) *Aggregator {
	return &Aggregator{database: database}
}

func (a *Aggregator) Aggregate(ctx context.Context, collection string, pipeline []bson.M) ([]bson.M, error) {
	cursor, err := a.database.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "aggregate %s", collection)
	}
	out := []bson.M{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, errors.Wrapf(err, "decode %s aggregation", collection)
	}
	return out, nil
}
