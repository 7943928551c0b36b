package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	domoffering "ramillete/internal/domain/offering"
	"ramillete/internal/usecase/commands"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateOfferingRequest struct {
	Type      string `json:"type"`
	UserName  string `json:"userName"`
	ImageURL  string `json:"imageUrl"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
}

// Validate checks fields one at a time so the response carries the reason for
// the first failure, in the order clients expect: type, userName, timestamp.
// imageUrl and comment are free text; only their JSON type can be wrong, and
// that is caught at bind time. Bind failures preempt these value checks, so a
// body with both a wrong-typed optional field and an out-of-set type reports
// the bind reason first.
func (r CreateOfferingRequest) Validate() error {
	if err := validation.Validate(r.Type,
		validation.Required.Error("Invalid offering type"),
		validation.In(typeChoices()...).Error("Invalid offering type"),
	); err != nil {
		return err
	}
	if err := validation.Validate(strings.TrimSpace(r.UserName),
		validation.Required.Error("Invalid user name"),
		validation.Length(1, domoffering.MaxUserNameLength).Error("Invalid user name"),
	); err != nil {
		return err
	}
	return validation.Validate(r.Timestamp,
		validation.Required.Error("Invalid timestamp"),
		validation.Date(time.RFC3339).Error("Invalid timestamp"),
	)
}

func (r CreateOfferingRequest) ToInput() commands.CreateOfferingInput {
	return commands.CreateOfferingInput{
		Type:      r.Type,
		UserName:  r.UserName,
		ImageURL:  r.ImageURL,
		Comment:   r.Comment,
		Timestamp: r.Timestamp,
	}
}

func typeChoices() []any {
	types := domoffering.AllTypes()
	choices := make([]any, len(types))
	for i, t := range types {
		choices[i] = t.String()
	}
	return choices
}

// OfferingBindReason maps a JSON bind failure to its display message, keyed
// by which field had the wrong type.
func OfferingBindReason(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "type":
			return "Invalid offering type"
		case "userName":
			return "Invalid user name"
		case "imageUrl":
			return "Invalid image URL format"
		case "comment":
			return "Invalid comment format"
		case "timestamp":
			return "Invalid timestamp"
		}
	}
	return "Invalid offering data"
}
