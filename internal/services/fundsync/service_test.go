package fundsync

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	rows    []map[string]any
	err     error
	release chan struct{}
	started chan struct{}
}

func (f *stubFetcher) Source() string { return "stub" }

func (f *stubFetcher) Fetch(ctx context.Context) ([]map[string]any, error) {
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.rows, f.err
}

type memoryStore struct {
	mu   sync.Mutex
	rows []map[string]any
	err  error
}

func (s *memoryStore) Replace(_ context.Context, rows []map[string]any) (int64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, 0, s.err
	}
	deleted := int64(len(s.rows))
	s.rows = rows
	return deleted, len(rows), nil
}

func TestNormalizeFondo(t *testing.T) {
	for name, tc := range map[string]struct {
		in   any
		want bool
	}{
		"StringTrue":  {"TRUE", true},
		"LowerTrue":   {"true", true},
		"StringFalse": {"FALSE", false},
		"Bool":        {true, true},
		"BoolFalse":   {false, false},
		"Number":      {1, false},
		"Missing":     {nil, false},
	} {
		t.Run(name, func(t *testing.T) {
			row := map[string]any{"_id": "abc", "NOMBRE": "FONDEF"}
			if tc.in != nil {
				row["VALIDAR"] = tc.in
			}
			out := NormalizeFondo(row)
			assert.Equal(t, tc.want, out["VALIDAR"])
			assert.NotContains(t, out, "_id")
			assert.Equal(t, "FONDEF", out["NOMBRE"])
			assert.Contains(t, row, "_id")
		})
	}
}

func TestSyncReplacesRows(t *testing.T) {
	store := &memoryStore{rows: []map[string]any{{"old": 1}, {"old": 2}}}
	fetcher := &stubFetcher{rows: []map[string]any{
		{"NOMBRE": "A", "VALIDAR": "TRUE"},
		{"NOMBRE": "B"},
	}}
	svc := NewService(fetcher, store)

	res, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Source: "stub", Deleted: 2, Inserted: 2}, res)
	require.Len(t, store.rows, 2)
	assert.Equal(t, true, store.rows[0]["VALIDAR"])
	assert.Equal(t, false, store.rows[1]["VALIDAR"])
}

func TestSyncWithoutSource(t *testing.T) {
	svc := NewService(nil, &memoryStore{})
	assert.False(t, svc.Enabled())

	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotConfigured)
}

func TestSyncFetchFailureKeepsRows(t *testing.T) {
	store := &memoryStore{rows: []map[string]any{{"old": 1}}}
	svc := NewService(&stubFetcher{err: errors.New("timeout")}, store)

	_, err := svc.Sync(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Len(t, store.rows, 1)
}

func TestSyncStoreFailure(t *testing.T) {
	svc := NewService(&stubFetcher{}, &memoryStore{err: errors.New("write failed")})

	_, err := svc.Sync(context.Background())
	assert.ErrorContains(t, err, "write failed")
}

func TestSyncRejectsConcurrentRun(t *testing.T) {
	fetcher := &stubFetcher{release: make(chan struct{}), started: make(chan struct{})}
	svc := NewService(fetcher, &memoryStore{})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Sync(context.Background())
		done <- err
	}()
	<-fetcher.started

	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(fetcher.release)
	require.NoError(t, <-done)
}
