package readstore

import (
	"context"
	"errors"

	"ramillete/internal/infra"
	"ramillete/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectRecipientByID = `
SELECT id, name, created_at
FROM recipients
WHERE id = $1
`

type RecipientReadStore struct {
	pool *pgxpool.Pool
}

func NewRecipientReadStore(pool *pgxpool.Pool) *RecipientReadStore {
	return &RecipientReadStore{pool: pool}
}

func (r *RecipientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RecipientView, error) {
	var view queries.RecipientView
	err := r.pool.QueryRow(ctx, selectRecipientByID, id).Scan(&view.ID, &view.Name, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("recipient not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get recipient by id", err)
	}
	return &view, nil
}
