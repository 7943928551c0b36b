package queries

import (
	"context"

	"ramillete/internal/infra"
	"ramillete/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRecipientNotFound = errs.ErrRecipientNotFound

// RecipientReadStore is the read-side port for recipients. The cache
// decorator in infra/cache implements the same interface.
type RecipientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecipientView, error)
}

type RecipientQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RecipientView, error)
}

type recipientQueriesImpl struct {
	store RecipientReadStore
}

func NewRecipientQueries(store RecipientReadStore) RecipientQueries {
	return &recipientQueriesImpl{store: store}
}

func (q *recipientQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RecipientView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}
	return rv, nil
}
