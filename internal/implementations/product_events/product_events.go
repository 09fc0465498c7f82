package productevents

import (
	"context"
	"encoding/json"
	"fmt"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"

	"github.com/r3labs/sse/v2"
)

// StreamID returns the id of the SSE stream carrying product events of the user.
func StreamID(userID user.ID) string {
	return fmt.Sprintf("products-%d", userID)
}

type productPayload struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    uint32  `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	AmountSold  uint32  `json:"amount_sold"`
}

type eventPayload struct {
	Type    product.EventType `json:"type"`
	Product productPayload    `json:"product"`
}

type SSEPublisher struct {
	sseServer *sse.Server
}

func NewSSE(sseServer *sse.Server) *SSEPublisher {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSEPublisher{sseServer: sseServer}
}

func (p *SSEPublisher) PublishEvent(ctx context.Context, event product.Event) error {
	streamID := StreamID(event.Product.OwnerID)
	if !p.sseServer.StreamExists(streamID) {
		return nil
	}

	data, err := json.Marshal(eventPayload{
		Type: event.Type,
		Product: productPayload{
			ID:          int64(event.Product.ID),
			UserID:      int64(event.Product.OwnerID),
			Name:        event.Product.Name,
			Description: event.Product.Description,
			Quantity:    event.Product.Quantity,
			UnitPrice:   event.Product.UnitPrice.Float64(),
			AmountSold:  event.Product.AmountSold,
		},
	})
	if err != nil {
		return err
	}
	p.sseServer.Publish(streamID, &sse.Event{Event: []byte(event.Type), Data: data})
	return nil
}
