//go:build unit || e2e

package builder

import (
	"time"

	domrecipient "ramillete/internal/domain/recipient"
	reqdto "ramillete/internal/handler/dto/request"
	"ramillete/internal/usecase/commands"
	"ramillete/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecipientBuilder struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

func NewRecipientBuilder() *RecipientBuilder {
	return &RecipientBuilder{
		ID:        uuid.New(),
		Name:      "Jorge",
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RecipientBuilder) WithID(id uuid.UUID) *RecipientBuilder {
	r.ID = id
	return r
}

func (r *RecipientBuilder) WithName(name string) *RecipientBuilder {
	r.Name = name
	return r
}

func (r *RecipientBuilder) WithCreatedAt(t time.Time) *RecipientBuilder {
	r.CreatedAt = t
	return r
}

func (r *RecipientBuilder) BuildDomain() (*domrecipient.Recipient, error) {
	return domrecipient.New(r.ID, r.Name, r.CreatedAt)
}

func (r *RecipientBuilder) BuildCreateRequestDTO() reqdto.CreateRecipientRequest {
	return reqdto.CreateRecipientRequest{Name: r.Name}
}

// BuildCreateRequestDTOWithID is the caller-supplied-id variant.
func (r *RecipientBuilder) BuildCreateRequestDTOWithID() reqdto.CreateRecipientRequest {
	return reqdto.CreateRecipientRequest{ID: r.ID.String(), Name: r.Name}
}

func (r *RecipientBuilder) BuildCreateInput() commands.CreateRecipientInput {
	return commands.CreateRecipientInput{Name: r.Name}
}

func (r *RecipientBuilder) BuildView() *queries.RecipientView {
	return &queries.RecipientView{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}
