package repository

import (
	"context"
	"errors"

	domrecipient "ramillete/internal/domain/recipient"
	"ramillete/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertRecipient = `
INSERT INTO recipients (id, name, created_at)
VALUES ($1, $2, $3)
`

type RecipientRepository struct {
	pool *pgxpool.Pool
}

func NewRecipientRepository(pool *pgxpool.Pool) *RecipientRepository {
	return &RecipientRepository{pool: pool}
}

func (r *RecipientRepository) Create(ctx context.Context, rec *domrecipient.Recipient) error {
	_, err := r.pool.Exec(ctx, insertRecipient, rec.ID(), rec.Name().String(), rec.CreatedAt())
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return infra.WrapRepoErr("recipient id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert recipient", err)
	}
	return nil
}

// PostgreSQL error codes the repositories classify.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
