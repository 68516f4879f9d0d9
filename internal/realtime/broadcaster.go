package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

const changesChannel = "grooming:changes"

// Change is the "entity changed" signal emitted after commit for reference
// data mutations and order status changes.
type Change struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

// Broadcaster publishes changes through Redis pub/sub and fans incoming
// messages into the websocket hub, so every API instance sees every change.
// Failures are logged and discarded; delivery is never guaranteed and never
// blocks the mutating operation.
type Broadcaster struct {
	rdb *redis.Client
	hub *Hub
}

func NewBroadcaster(rdb *redis.Client, hub *Hub) *Broadcaster {
	return &Broadcaster{rdb: rdb, hub: hub}
}

func (b *Broadcaster) Publish(change Change) {
	if b == nil {
		return
	}

	payload, err := json.Marshal(change)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}

	if err := b.rdb.Publish(context.Background(), changesChannel, payload).Err(); err != nil {
		log.Printf("broadcast publish error: %v", err)
	}
}

// Run subscribes to the changes channel and forwards payloads to the hub
// until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, changesChannel)
	defer sub.Close()

	for {
		select {
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			select {
			case b.hub.broadcast <- []byte(msg.Payload):
			default:
				// hub backlogged; drop rather than stall the subscriber
			}
		case <-ctx.Done():
			return
		}
	}
}
