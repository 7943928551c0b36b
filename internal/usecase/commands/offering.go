package commands

import (
	"context"

	domoffering "ramillete/internal/domain/offering"
	"ramillete/internal/infra"
	"ramillete/internal/pkg/errs"
	"ramillete/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateOfferingInput struct {
	Type      string
	UserName  string
	ImageURL  string
	Comment   string
	Timestamp string
}

type OfferingCommands interface {
	Create(ctx context.Context, recipientID uuid.UUID, input CreateOfferingInput) (*queries.OfferingView, error)
}

type offeringCommandsImpl struct {
	repo       OfferingRepository
	recipients queries.RecipientReadStore
}

func NewOfferingCommands(repo OfferingRepository, recipients queries.RecipientReadStore) OfferingCommands {
	return &offeringCommandsImpl{repo: repo, recipients: recipients}
}

// Create validates the input, confirms the recipient exists and inserts the
// row. The foreign key on offerings.recipient_id is the actual guarantee: if
// the pre-check ever races, the insert itself fails and maps to not-found.
func (uc *offeringCommandsImpl) Create(ctx context.Context, recipientID uuid.UUID, input CreateOfferingInput) (*queries.OfferingView, error) {
	off, err := domoffering.New(recipientID, input.Type, input.UserName, input.ImageURL, input.Comment, input.Timestamp)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := uc.recipients.FindByID(ctx, recipientID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRecipientNotFound)
		}
		return nil, err
	}

	id, err := uc.repo.Create(ctx, off)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrRecipientNotFound)
		}
		return nil, err
	}

	return &queries.OfferingView{
		ID:          id,
		RecipientID: off.RecipientID(),
		Type:        off.Type().String(),
		UserName:    off.UserName().String(),
		ImageURL:    off.ImageURL(),
		Comment:     off.Comment(),
		OfferedAt:   off.OfferedAt(),
	}, nil
}
