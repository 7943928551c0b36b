//go:build unit || e2e

package builder

import (
	"time"

	domoffering "ramillete/internal/domain/offering"
	reqdto "ramillete/internal/handler/dto/request"
	"ramillete/internal/usecase/commands"
	"ramillete/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferingBuilder struct {
	ID          int64
	RecipientID uuid.UUID
	Type        string
	UserName    string
	ImageURL    string
	Comment     string
	Timestamp   string
}

func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		ID:          1,
		RecipientID: uuid.New(),
		Type:        "rosario",
		UserName:    "Ana",
		ImageURL:    "",
		Comment:     "Por tu salud",
		Timestamp:   "2024-01-01T10:00:00Z",
	}
}

func (o *OfferingBuilder) WithID(id int64) *OfferingBuilder {
	o.ID = id
	return o
}

func (o *OfferingBuilder) WithRecipientID(id uuid.UUID) *OfferingBuilder {
	o.RecipientID = id
	return o
}

func (o *OfferingBuilder) WithType(t string) *OfferingBuilder {
	o.Type = t
	return o
}

func (o *OfferingBuilder) WithUserName(name string) *OfferingBuilder {
	o.UserName = name
	return o
}

func (o *OfferingBuilder) WithImageURL(url string) *OfferingBuilder {
	o.ImageURL = url
	return o
}

func (o *OfferingBuilder) WithComment(comment string) *OfferingBuilder {
	o.Comment = comment
	return o
}

func (o *OfferingBuilder) WithTimestamp(ts string) *OfferingBuilder {
	o.Timestamp = ts
	return o
}

func (o *OfferingBuilder) BuildDomain() (*domoffering.Offering, error) {
	return domoffering.New(o.RecipientID, o.Type, o.UserName, o.ImageURL, o.Comment, o.Timestamp)
}

func (o *OfferingBuilder) BuildCreateRequestDTO() reqdto.CreateOfferingRequest {
	return reqdto.CreateOfferingRequest{
		Type:      o.Type,
		UserName:  o.UserName,
		ImageURL:  o.ImageURL,
		Comment:   o.Comment,
		Timestamp: o.Timestamp,
	}
}

func (o *OfferingBuilder) BuildCreateInput() commands.CreateOfferingInput {
	return commands.CreateOfferingInput{
		Type:      o.Type,
		UserName:  o.UserName,
		ImageURL:  o.ImageURL,
		Comment:   o.Comment,
		Timestamp: o.Timestamp,
	}
}

func (o *OfferingBuilder) BuildView() *queries.OfferingView {
	offeredAt, _ := time.Parse(time.RFC3339, o.Timestamp)
	return &queries.OfferingView{
		ID:          o.ID,
		RecipientID: o.RecipientID,
		Type:        o.Type,
		UserName:    o.UserName,
		ImageURL:    o.ImageURL,
		Comment:     o.Comment,
		OfferedAt:   offeredAt,
	}
}
