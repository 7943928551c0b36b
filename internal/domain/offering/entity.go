package offering

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Offering is one contributed entry of a bouquet. Rows are write-once: there
// is no update or delete anywhere in the system.
type Offering struct {
	recipientID uuid.UUID
	typ         Type
	userName    ContributorName
	imageURL    string
	comment     string
	offeredAt   time.Time
}

// New validates the raw input field by field, failing fast in a fixed order:
// type, contributor name, then timestamp. imageURL and comment are optional
// free text and are only trimmed, defaulting to "".
func New(recipientID uuid.UUID, rawType, rawUserName, rawImageURL, rawComment, rawTimestamp string) (*Offering, error) {
	typ, err := ParseType(rawType)
	if err != nil {
		return nil, err
	}

	userName, err := NewContributorName(rawUserName)
	if err != nil {
		return nil, err
	}

	offeredAt, err := ParseOfferedAt(rawTimestamp)
	if err != nil {
		return nil, err
	}

	return &Offering{
		recipientID: recipientID,
		typ:         typ,
		userName:    userName,
		imageURL:    strings.TrimSpace(rawImageURL),
		comment:     strings.TrimSpace(rawComment),
		offeredAt:   offeredAt,
	}, nil
}

func (o *Offering) RecipientID() uuid.UUID    { return o.recipientID }
func (o *Offering) Type() Type                { return o.typ }
func (o *Offering) UserName() ContributorName { return o.userName }
func (o *Offering) ImageURL() string          { return o.imageURL }
func (o *Offering) Comment() string           { return o.comment }
func (o *Offering) OfferedAt() time.Time      { return o.offeredAt }
