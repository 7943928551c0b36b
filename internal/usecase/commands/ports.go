package commands

import (
	"context"

	domoffering "ramillete/internal/domain/offering"
	domrecipient "ramillete/internal/domain/recipient"
)

// Write-side repository ports. Every write is a single-row insert; rows are
// immutable afterwards, so there is nothing to coordinate across tables and
// no unit-of-work layer.
type RecipientRepository interface {
	Create(ctx context.Context, rec *domrecipient.Recipient) error
}

type OfferingRepository interface {
	Create(ctx context.Context, off *domoffering.Offering) (int64, error)
}
