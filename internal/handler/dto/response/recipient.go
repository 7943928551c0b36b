package response

import (
	"time"

	"ramillete/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RecipientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type RecipientCreatedResponse struct {
	Message   string             `json:"message"`
	Recipient *RecipientResponse `json:"recipient"`
}

func FromRecipientView(v *queries.RecipientView) *RecipientResponse {
	resp := &RecipientResponse{}
	_ = copier.Copy(resp, v)
	resp.ID = v.ID.String()
	resp.CreatedAt = v.CreatedAt.UTC().Format(time.RFC3339)
	return resp
}

func NewRecipientCreated(v *queries.RecipientView) *RecipientCreatedResponse {
	return &RecipientCreatedResponse{
		Message:   "Recipient created successfully",
		Recipient: FromRecipientView(v),
	}
}
