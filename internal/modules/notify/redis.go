// README: Redis pub/sub sink so other processes (e.g. a websocket front) can relay notifications.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisSink struct {
	client  *redis.Client
	channel string
}

func NewRedisSink(client *redis.Client, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

// wireNotification is the published payload.
type wireNotification struct {
	Notification
	DurationMS int64 `json:"duration_ms"`
}

func (s *RedisSink) Notify(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(wireNotification{Notification: n, DurationMS: n.DurationMS()})
	if err != nil {
		return fmt.Errorf("notify: marshal: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("notify: publish %s: %w", s.channel, err)
	}
	return nil
}

// Decode parses a payload published by RedisSink.
func Decode(payload string) (Notification, error) {
	var w wireNotification
	if err := json.Unmarshal([]byte(payload), &w); err != nil {
		return Notification{}, fmt.Errorf("notify: decode: %w", err)
	}
	n := w.Notification
	n.Duration = msToDuration(w.DurationMS)
	return n, nil
}
