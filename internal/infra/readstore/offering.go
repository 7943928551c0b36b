package readstore

import (
	"context"

	"ramillete/internal/infra"
	"ramillete/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// id breaks ties between equal timestamps so the feed order is deterministic.
const selectOfferingsByRecipient = `
SELECT id, recipient_id, type, user_name, image_url, comment, offered_at
FROM offerings
WHERE recipient_id = $1
ORDER BY offered_at DESC, id DESC
`

type OfferingReadStore struct {
	pool *pgxpool.Pool
}

func NewOfferingReadStore(pool *pgxpool.Pool) *OfferingReadStore {
	return &OfferingReadStore{pool: pool}
}

func (r *OfferingReadStore) FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*queries.OfferingView, error) {
	rows, err := r.pool.Query(ctx, selectOfferingsByRecipient, recipientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings", err)
	}
	defer rows.Close()

	items := []*queries.OfferingView{}
	for rows.Next() {
		var view queries.OfferingView
		if err := rows.Scan(
			&view.ID,
			&view.RecipientID,
			&view.Type,
			&view.UserName,
			&view.ImageURL,
			&view.Comment,
			&view.OfferedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offering row", err)
		}
		items = append(items, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offering rows", err)
	}
	return items, nil
}
