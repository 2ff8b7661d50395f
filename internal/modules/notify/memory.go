// README: In-memory notification queue; entries expire after their display duration.
package notify

import (
	"context"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemorySink keeps active notifications until they auto-dismiss or are
// dismissed explicitly.
type MemorySink struct {
	items *cache.Cache
}

func NewMemorySink() *MemorySink {
	return &MemorySink{items: cache.New(DefaultDuration, time.Minute)}
}

func (s *MemorySink) Notify(_ context.Context, n Notification) error {
	ttl := n.Duration
	if ttl <= 0 {
		ttl = DefaultDuration
	}
	s.items.Set(n.ID, n, ttl)
	return nil
}

// Active returns unexpired notifications, oldest first.
func (s *MemorySink) Active() []Notification {
	items := s.items.Items()
	out := make([]Notification, 0, len(items))
	for _, it := range items {
		if n, ok := it.Object.(Notification); ok {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Dismiss removes a notification. It reports whether it was still active.
func (s *MemorySink) Dismiss(id string) bool {
	if _, ok := s.items.Get(id); !ok {
		return false
	}
	s.items.Delete(id)
	return true
}
