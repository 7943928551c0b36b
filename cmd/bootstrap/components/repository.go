package components

import (
	"ramillete/internal/infra/cache"
	"ramillete/internal/infra/readstore"
	repo_impl "ramillete/internal/infra/repository"
	"ramillete/internal/usecase/commands"
	"ramillete/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewRecipientRepository,
			fx.As(new(commands.RecipientRepository)),
		),
		fx.Annotate(
			repo_impl.NewOfferingRepository,
			fx.As(new(commands.OfferingRepository)),
		),
		fx.Annotate(
			readstore.NewOfferingReadStore,
			fx.As(new(queries.OfferingReadStore)),
		),
		NewRecipientReadStore,
	),
)

// NewRecipientReadStore places the redis decorator in front of the postgres
// store when a cache is configured.
func NewRecipientReadStore(pool *pgxpool.Pool, c *cache.RecipientCache) queries.RecipientReadStore {
	base := readstore.NewRecipientReadStore(pool)
	if c == nil {
		return base
	}
	return cache.NewCachedRecipientReadStore(base, c)
}
