package recipient

import (
	"time"

	"github.com/google/uuid"
)

// Recipient is the intention a bouquet is dedicated to. It is created once,
// shared by its id, and never mutated or deleted afterwards.
type Recipient struct {
	id        uuid.UUID
	name      IntentionName
	createdAt time.Time
}

// New builds a recipient. A zero id means the caller did not supply one and a
// fresh one is generated. createdAt is always server-assigned from now,
// regardless of what the caller sent.
func New(id uuid.UUID, rawName string, now time.Time) (*Recipient, error) {
	name, err := NewIntentionName(rawName)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Recipient{
		id:        id,
		name:      name,
		createdAt: now,
	}, nil
}

func (r *Recipient) ID() uuid.UUID        { return r.id }
func (r *Recipient) Name() IntentionName  { return r.name }
func (r *Recipient) CreatedAt() time.Time { return r.createdAt }
