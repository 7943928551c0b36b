package repository

import (
	"context"

	domoffering "ramillete/internal/domain/offering"
	"ramillete/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insertOffering = `
INSERT INTO offerings (recipient_id, type, user_name, image_url, comment, offered_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type OfferingRepository struct {
	pool *pgxpool.Pool
}

func NewOfferingRepository(pool *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{pool: pool}
}

func (r *OfferingRepository) Create(ctx context.Context, off *domoffering.Offering) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, insertOffering,
		off.RecipientID(),
		off.Type().String(),
		off.UserName().String(),
		off.ImageURL(),
		off.Comment(),
		off.OfferedAt(),
	).Scan(&id)
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			return 0, infra.WrapRepoErr("offering references unknown recipient", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to insert offering", err)
	}
	return id, nil
}
