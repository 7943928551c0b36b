package queries

import (
	"context"

	"ramillete/internal/infra"

	"github.com/google/uuid"
)

// OfferingReadStore is the read-side port for the offering feed. The store
// returns entries ordered by offered_at descending, newest first, and an
// empty slice when the recipient has no offerings yet.
type OfferingReadStore interface {
	FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*OfferingView, error)
}

type OfferingQueries interface {
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*OfferingView, error)
}

type offeringQueriesImpl struct {
	store      OfferingReadStore
	recipients RecipientReadStore
}

func NewOfferingQueries(store OfferingReadStore, recipients RecipientReadStore) OfferingQueries {
	return &offeringQueriesImpl{store: store, recipients: recipients}
}

// ListByRecipient resolves the recipient first so an unknown id surfaces as
// not-found rather than as an empty feed.
func (q *offeringQueriesImpl) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*OfferingView, error) {
	if _, err := q.recipients.FindByID(ctx, recipientID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	items, err := q.store.FindByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*OfferingView{}
	}
	return items, nil
}
