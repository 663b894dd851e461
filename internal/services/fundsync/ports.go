package fundsync

import "context"

// RowFetcher pulls the current funds sheet from its published source.
type RowFetcher interface {
	Source() string
	Fetch(ctx context.Context) ([]map[string]any, error)
}

// RowStore is the subset of repositories.SheetStore the sync needs.
type RowStore interface {
	Replace(ctx context.Context, rows []map[string]any) (deleted int64, inserted int, err error)
}
