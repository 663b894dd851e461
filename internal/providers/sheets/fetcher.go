package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

const (
	fetchTimeout = 30 * time.Second
	userAgent    = "cartera-go/1.0"
)

// Fetcher downloads a spreadsheet export published as a JSON array of
// row objects.
type Fetcher struct {
	client *http.Client
	url    string
}

func NewFetcher(client *http.Client, url string) *Fetcher {
	return &Fetcher{client: client, url: url}
}

func (f *Fetcher) Source() string {
	return f.url
}

func (f *Fetcher) Fetch(ctx context.Context) ([]map[string]any, error) {
	reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build sheet request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch sheet")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "decode sheet rows")
	}
	if rows == nil {
		rows = []map[string]any{}
	}

	grip.Debug(message.Fields{
		"message": "fetched sheet rows",
		"source":  f.url,
		"rows":    len(rows),
	})
	return rows, nil
}
