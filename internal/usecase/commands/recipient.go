package commands

import (
	"context"

	domrecipient "ramillete/internal/domain/recipient"
	"ramillete/internal/infra"
	"ramillete/internal/pkg/clock"
	"ramillete/internal/pkg/errs"
	"ramillete/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrRecipientNotFound  = errs.ErrRecipientNotFound
	ErrDuplicateRecipient = errs.ErrDuplicateRecipient
)

type CreateRecipientInput struct {
	// ID is optional; empty means the server generates one.
	ID   string
	Name string
}

type RecipientCommands interface {
	Create(ctx context.Context, input CreateRecipientInput) (*queries.RecipientView, error)
}

type recipientCommandsImpl struct {
	repo  RecipientRepository
	clock clock.Clock
}

func NewRecipientCommands(repo RecipientRepository, clk clock.Clock) RecipientCommands {
	return &recipientCommandsImpl{repo: repo, clock: clk}
}

func (uc *recipientCommandsImpl) Create(ctx context.Context, input CreateRecipientInput) (*queries.RecipientView, error) {
	id := uuid.Nil
	if input.ID != "" {
		parsed, err := uuid.Parse(input.ID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		id = parsed
	}

	rec, err := domrecipient.New(id, input.Name, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.repo.Create(ctx, rec); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateRecipient)
		}
		return nil, err
	}

	return &queries.RecipientView{
		ID:        rec.ID(),
		Name:      rec.Name().String(),
		CreatedAt: rec.CreatedAt(),
	}, nil
}
