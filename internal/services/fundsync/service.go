package fundsync

import (
	"context"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"

	"cartera-go/internal/model"
	"cartera-go/internal/providers/common"
)

var (
	ErrSyncInProgress      = errors.New("fund sync already running")
	ErrSourceNotConfigured = errors.New("fund sync source not configured")
)

// FetchError wraps failures reading the remote sheet.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "fetch funds sheet: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

type Result struct {
	Source   string `json:"source"`
	Deleted  int64  `json:"eliminados"`
	Inserted int    `json:"insertados"`
}

// Service replaces the stored funds sheet with the remote copy. Only one
// sync runs at a time.
type Service struct {
	fetcher RowFetcher
	store   RowStore

	mu      sync.Mutex
	running bool
}

// NewService builds the sync. A nil fetcher leaves the sync disabled.
func NewService(fetcher RowFetcher, store RowStore) *Service {
	return &Service{fetcher: fetcher, store: store}
}

func (s *Service) Enabled() bool {
	return s.fetcher != nil
}

// Run is the scheduled entry point; failures are logged.
func (s *Service) Run(ctx context.Context) {
	res, err := s.Sync(ctx)
	if errors.Is(err, ErrSyncInProgress) {
		grip.Info("fund sync already running; skipping")
		return
	}
	if err != nil {
		grip.Error(message.WrapError(err, message.Fields{
			"message": "scheduled fund sync failed",
		}))
		return
	}
	grip.Info(message.Fields{
		"message":  "scheduled fund sync finished",
		"source":   res.Source,
		"deleted":  res.Deleted,
		"inserted": res.Inserted,
	})
}

func (s *Service) Sync(ctx context.Context) (Result, error) {
	if s.fetcher == nil {
		return Result{}, ErrSourceNotConfigured
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return Result{}, ErrSyncInProgress
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	return s.sync(ctx)
}

func (s *Service) sync(ctx context.Context) (Result, error) {
	started := time.Now()
	res := Result{Source: s.fetcher.Source()}

	rows, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return res, &FetchError{Err: err}
	}

	normalized := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		normalized = append(normalized, NormalizeFondo(row))
	}

	deleted, inserted, err := s.store.Replace(ctx, normalized)
	res.Deleted = deleted
	res.Inserted = inserted
	if err != nil {
		return res, errors.Wrap(err, "replace funds sheet")
	}

	grip.Info(message.Fields{
		"message":  "funds sheet synced",
		"source":   res.Source,
		"rows":     humanize.Comma(int64(inserted)),
		"deleted":  humanize.Comma(deleted),
		"duration": time.Since(started).String(),
	})
	return res, nil
}

// NormalizeFondo returns a copy of row ready to store: VALIDAR becomes a
// bool (missing means false) and any source _id is dropped.
func NormalizeFondo(row map[string]any) map[string]any {
	out := make(map[string]any, len(row)+1)
	for key, val := range row {
		if key == "_id" {
			continue
		}
		out[key] = val
	}
	out[model.FondoValidar] = common.ToBool(row[model.FondoValidar])
	return out
}
