package response

import (
	"time"

	"ramillete/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OfferingResponse struct {
	ID          int64  `json:"id"`
	RecipientID string `json:"recipientId"`
	Type        string `json:"type"`
	UserName    string `json:"userName"`
	ImageURL    string `json:"imageUrl"`
	Comment     string `json:"comment"`
	Timestamp   string `json:"timestamp"`
}

type OfferingCreatedResponse struct {
	Message  string            `json:"message"`
	Offering *OfferingResponse `json:"offering"`
}

func FromOfferingView(v *queries.OfferingView) *OfferingResponse {
	resp := &OfferingResponse{}
	_ = copier.Copy(resp, v)
	resp.RecipientID = v.RecipientID.String()
	resp.Timestamp = v.OfferedAt.UTC().Format(time.RFC3339)
	return resp
}

// FromOfferingList always returns a non-nil slice; an empty feed serializes
// as [] rather than null.
func FromOfferingList(items []*queries.OfferingView) []*OfferingResponse {
	res := make([]*OfferingResponse, len(items))
	for i, it := range items {
		res[i] = FromOfferingView(it)
	}
	return res
}

func NewOfferingCreated(v *queries.OfferingView) *OfferingCreatedResponse {
	return &OfferingCreatedResponse{
		Message:  "Offering created successfully",
		Offering: FromOfferingView(v),
	}
}
