package lookup

import (
	"context"

	"invoice-reconciler/feature/document/models"

	"go.uber.org/zap"
)

// Service exposes lookup-table access and code resolution.
type Service struct {
	cache  *Cache
	logger *zap.Logger
}

// NewService creates a new lookup service.
func NewService(cache *Cache, logger *zap.Logger) *Service {
	return &Service{cache: cache, logger: logger}
}

// Table returns the session's lookup table, fetching it on first use.
func (s *Service) Table(ctx context.Context) (Table, error) {
	return s.cache.Table(ctx)
}

// Refresh replaces the cached table with a fresh fetch and returns the new
// entry count.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	table, err := s.cache.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	return table.Len(), nil
}

// Match resolves a single description against the current table.
func (s *Service) Match(ctx context.Context, description string) (MatchResult, error) {
	table, err := s.cache.Table(ctx)
	if err != nil {
		return MatchResult{}, err
	}
	return Resolve(description, table), nil
}

// Annotate resolves each record's description and fills in MatchedCode and
// MatchTier. Records are modified in place and returned for convenience.
func (s *Service) Annotate(ctx context.Context, records []models.ProductRecord) ([]models.ProductRecord, error) {
	table, err := s.cache.Table(ctx)
	if err != nil {
		return nil, err
	}

	notFound := 0
	for i := range records {
		result := Resolve(records[i].Description, table)
		records[i].MatchedCode = result.Code
		records[i].MatchTier = result.Label()
		if !result.Found() {
			notFound++
		}
	}

	if notFound > 0 {
		s.logger.Debug("Some descriptions did not resolve to a code",
			zap.Int("not_found", notFound),
			zap.Int("records", len(records)))
	}
	return records, nil
}
