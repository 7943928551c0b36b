package queries

import (
	"time"

	"github.com/google/uuid"
)

// RecipientView is the read model of a bouquet recipient.
type RecipientView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// OfferingView is the read model of one feed entry. OfferedAt carries the
// client-supplied timestamp, which is the feed ordering key.
type OfferingView struct {
	ID          int64     `json:"id"`
	RecipientID uuid.UUID `json:"recipientId"`
	Type        string    `json:"type"`
	UserName    string    `json:"userName"`
	ImageURL    string    `json:"imageUrl"`
	Comment     string    `json:"comment"`
	OfferedAt   time.Time `json:"timestamp"`
}
