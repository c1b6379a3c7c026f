package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/programstile/studio/internal/config"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Latest(ctx context.Context) (Feed, error)
}

type ServiceImpl struct {
	sourceURL string
	limit     int
	client    *http.Client
}

func NewService(cfg config.News) *ServiceImpl {
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ServiceImpl{
		sourceURL: cfg.SourceURL,
		limit:     limit,
		client:    &http.Client{Timeout: timeout},
	}
}

// Latest loads the configured feed. Any failure to load it is reported through the feed
// status and served from the built-in items; an error is returned only when ctx is done.
func (s *ServiceImpl) Latest(ctx context.Context) (Feed, error) {
	if s.sourceURL == "" {
		return s.fallback(StatusLocal), nil
	}

	items, err := s.fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return Feed{}, ctx.Err()
		}
		log.Warnf("failed to load news from %s: %v", s.sourceURL, err)
		return s.fallback(StatusLoadFailed), nil
	}
	return Feed{Items: s.limited(items)}, nil
}

func (s *ServiceImpl) fetch(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode news: %w", err)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("news payload has no items")
	}
	return payload.Items, nil
}

func (s *ServiceImpl) fallback(status string) Feed {
	return Feed{Items: s.limited(FallbackItems()), Status: status, Fallback: true}
}

func (s *ServiceImpl) limited(items []Item) []Item {
	if len(items) > s.limit {
		return items[:s.limit]
	}
	return items
}
