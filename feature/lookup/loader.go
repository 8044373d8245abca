package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Loader fetches the lookup table from its HTTP source.
type Loader struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewLoader creates a loader for the configured source.
func NewLoader(cfg Config, logger *zap.Logger) *Loader {
	return &Loader{
		url:    cfg.URL,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger: logger,
	}
}

// Fetch retrieves and indexes the lookup table. An unreachable or failing
// source degrades to an empty table so callers can keep working without code
// resolution; a syntactically invalid response body is an error, since it
// means the source is live but broken.
func (l *Loader) Fetch(ctx context.Context) (Table, error) {
	if l.url == "" {
		l.logger.Warn("Lookup source not configured, using empty table")
		return Table{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return Table{}, fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Warn("Lookup fetch failed, using empty table", zap.Error(err))
		return Table{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.logger.Warn("Lookup fetch returned non-OK status, using empty table",
			zap.Int("status", resp.StatusCode))
		return Table{}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		l.logger.Warn("Lookup fetch body read failed, using empty table", zap.Error(err))
		return Table{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return Table{}, fmt.Errorf("invalid lookup table JSON: %w", err)
	}

	table := BuildTable(entries)
	l.logger.Info("Lookup table fetched",
		zap.Int("entries", len(entries)),
		zap.Int("indexed", table.Len()))
	return table, nil
}
