package request

import (
	"encoding/json"
	"errors"
	"strings"

	domrecipient "ramillete/internal/domain/recipient"
	"ramillete/internal/usecase/commands"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateRecipientRequest struct {
	// ID is optional; callers that pre-generate a board id send it here.
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate reproduces the wire-level reason strings clients display verbatim.
// Name is checked before id, matching the order clients expect.
func (r CreateRecipientRequest) Validate() error {
	if err := validation.Validate(strings.TrimSpace(r.Name),
		validation.Required.Error("Invalid recipient name"),
		validation.Length(1, domrecipient.MaxNameLength).Error("Invalid recipient name"),
	); err != nil {
		return err
	}
	// A supplied id becomes the primary key, so it must be a UUID.
	return validation.Validate(r.ID,
		is.UUID.Error("Invalid recipient data"),
	)
}

func (r CreateRecipientRequest) ToInput() commands.CreateRecipientInput {
	return commands.CreateRecipientInput{ID: r.ID, Name: r.Name}
}

// RecipientBindReason maps a JSON bind failure to its display message. A
// wrong-typed name field gets the name-specific reason, anything else the
// generic one.
func RecipientBindReason(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "name" {
		return "Invalid recipient name"
	}
	return "Invalid recipient data"
}
