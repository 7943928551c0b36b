package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"ramillete/internal/pkg/config"
	"ramillete/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RecipientCache keeps recipient views in redis for a short TTL. Recipients
// are immutable after creation, so a stale entry can only ever be a missing
// one, never a wrong one.
type RecipientCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecipientCache(cfg config.RedisConfig) *RecipientCache {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RecipientCache{client: client, ttl: cfg.TTL}
}

func recipientKey(id uuid.UUID) string {
	return fmt.Sprintf("recipient:%s", id)
}

func (c *RecipientCache) Get(ctx context.Context, id uuid.UUID) (*queries.RecipientView, bool) {
	raw, err := c.client.Get(ctx, recipientKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("recipient cache get failed", "id", id, "error", err)
		}
		return nil, false
	}
	var view queries.RecipientView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Debug("recipient cache entry corrupt", "id", id, "error", err)
		return nil, false
	}
	return &view, true
}

func (c *RecipientCache) Set(ctx context.Context, view *queries.RecipientView) {
	raw, err := json.Marshal(view)
	if err != nil {
		slog.Debug("recipient cache marshal failed", "id", view.ID, "error", err)
		return
	}
	if err := c.client.Set(ctx, recipientKey(view.ID), raw, c.ttl).Err(); err != nil {
		slog.Debug("recipient cache set failed", "id", view.ID, "error", err)
	}
}

func (c *RecipientCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RecipientCache) Close() error {
	return c.client.Close()
}

// CachedRecipientReadStore consults redis before the underlying store. Cache
// failures are never surfaced; the caller always gets the base store's answer.
type CachedRecipientReadStore struct {
	base  queries.RecipientReadStore
	cache *RecipientCache
}

func NewCachedRecipientReadStore(base queries.RecipientReadStore, cache *RecipientCache) *CachedRecipientReadStore {
	return &CachedRecipientReadStore{base: base, cache: cache}
}

func (s *CachedRecipientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RecipientView, error) {
	if view, ok := s.cache.Get(ctx, id); ok {
		return view, nil
	}
	view, err := s.base.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, view)
	return view, nil
}
