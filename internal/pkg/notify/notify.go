// Package notify is the reload-hint fan-out. Every mutation publishes an
// event name; connected dashboards re-fetch on receipt. Delivery is
// best-effort and fire-and-forget: clients reconcile by re-querying, never
// by trusting event payloads, so no invariant depends on this package.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	EventPunchAdded     = "punch-added"
	EventPunchUpdated   = "punch-updated"
	EventPunchDeleted   = "punch-deleted"
	EventSessionStarted = "session-started"
	EventSessionEnded   = "session-ended"
	EventSessionUpdated = "session-updated"
	EventHoursReset     = "hours-reset"
	EventVehicleUpdated = "vehicle-updated"
)

// Publisher is what the controllers see; repositories never publish.
type Publisher interface {
	Publish(ctx context.Context, event string)
}

// Event is the wire form of a reload hint.
type Event struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
}

// Redis fans events out over a single pub/sub channel.
type Redis struct {
	client  *redis.Client
	channel string
}

func NewRedis(client *redis.Client, channel string) *Redis {
	return &Redis{client: client, channel: channel}
}

func (r *Redis) Publish(ctx context.Context, event string) {
	payload, err := json.Marshal(Event{Event: event, At: time.Now()})
	if err != nil {
		log.Println("notify: marshal:", err)
		return
	}

	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		// Best-effort only; a lost hint just delays the next refetch.
		log.Println("notify: publish:", err)
	}
}

// Subscribe returns the raw message channel for the SSE bridge. The caller
// owns the subscription and must Close it when the client goes away.
func (r *Redis) Subscribe(ctx context.Context) *redis.PubSub {
	return r.client.Subscribe(ctx, r.channel)
}
