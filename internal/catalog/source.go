// File: internal/catalog/source.go
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Source loads a static, read-only JSON catalog from either a filesystem path
// or an http(s) URL. The catalog is conceptually fetched once per app
// lifecycle; every failure mode (missing file, unreachable host, bad JSON)
// degrades to an empty catalog and is logged, never surfaced to callers.
type Source struct {
	location string
	client   *http.Client
	logger   *zap.Logger
}

// NewSource creates a catalog source for the given location. An empty
// location is a valid, permanently-empty source.
func NewSource(location string, timeout time.Duration, logger *zap.Logger) *Source {
	return &Source{
		location: location,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Fetch reads the catalog and decodes it into out (a pointer to a slice).
// Returns false when the catalog contributed nothing; out is only written on
// a fully successful fetch and parse.
func (s *Source) Fetch(ctx context.Context, out any) bool {
	raw := s.read(ctx)
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("Static catalog is not valid JSON, treating as empty",
			zap.String("location", s.location), zap.Error(err))
		return false
	}
	return true
}

func (s *Source) read(ctx context.Context) []byte {
	if s.location == "" {
		return nil
	}

	if strings.HasPrefix(s.location, "http://") || strings.HasPrefix(s.location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
		if err != nil {
			s.logger.Warn("Failed to build catalog request", zap.String("location", s.location), zap.Error(err))
			return nil
		}
		resp, err := s.client.Do(req)
		if err != nil {
			s.logger.Warn("Static catalog fetch failed, treating as empty",
				zap.String("location", s.location), zap.Error(err))
			return nil
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			s.logger.Warn("Static catalog fetch returned non-200, treating as empty",
				zap.String("location", s.location), zap.Int("status", resp.StatusCode))
			return nil
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			s.logger.Warn("Static catalog read failed, treating as empty",
				zap.String("location", s.location), zap.Error(err))
			return nil
		}
		return raw
	}

	raw, err := os.ReadFile(s.location)
	if err != nil {
		s.logger.Warn("Static catalog file unreadable, treating as empty",
			zap.String("location", s.location), zap.Error(err))
		return nil
	}
	return raw
}
