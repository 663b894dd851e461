package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDecodesRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"NOMBRE":"FONDEF","VALIDAR":"TRUE"},{"NOMBRE":"FIC","MONTO":12}]`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), srv.URL)
	assert.Equal(t, srv.URL, f.Source())

	rows, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "FONDEF", rows[0]["NOMBRE"])
	assert.Equal(t, float64(12), rows[1]["MONTO"])
}

func TestFetchEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	rows, err := NewFetcher(srv.Client(), srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFetchErrors(t *testing.T) {
	for name, handler := range map[string]http.HandlerFunc{
		"Status": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		"NotArray": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"NOMBRE":"FONDEF"}`))
		},
		"Garbage": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		},
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			_, err := NewFetcher(srv.Client(), srv.URL).Fetch(context.Background())
			assert.Error(t, err)
		})
	}
}
