package reporting

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type Aggregator interface {
	Aggregate(ctx context.Context, collection string, pipeline []bson.M) ([]bson.M, error)
}

// SheetReader reads the imported project sheet.
type SheetReader interface {
	Rows(ctx context.Context) ([]map[string]any, error)
	Count(ctx context.Context) (int64, error)
}
