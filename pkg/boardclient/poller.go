package boardclient

import (
	"context"
	"time"
)

// Poller refreshes one board's offering feed on an interval, pushing each
// successful fetch to OnUpdate. It is how a display keeps a shared board
// current without user interaction.
type Poller struct {
	Client      *Client
	RecipientID string
	Interval    time.Duration
	OnUpdate    func([]Offering)
	OnError     func(error)
}

// Run fetches immediately and then on every tick until the context is
// cancelled. Fetch failures are reported and polling continues.
func (p *Poller) Run(ctx context.Context) error {
	p.fetch(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.fetch(ctx)
		}
	}
}

func (p *Poller) fetch(ctx context.Context) {
	items, err := p.Client.ListOfferings(ctx, p.RecipientID)
	if err != nil {
		if p.OnError != nil && ctx.Err() == nil {
			p.OnError(err)
		}
		return
	}
	if p.OnUpdate != nil {
		p.OnUpdate(items)
	}
}
