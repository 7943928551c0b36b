package bootstrap

import (
	"context"

	"ramillete/internal/infra/cache"
	"ramillete/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
	),
)

// NewCache returns nil when no redis address is configured; consumers treat
// nil as cache-disabled.
func NewCache(lc fx.Lifecycle, cfg config.Config) *cache.RecipientCache {
	c := cache.NewRecipientCache(cfg.Redis)
	if c == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}
