// README: Notification record and the sink contract the orchestrator reports through.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration is how long a notification stays visible unless overridden.
const DefaultDuration = 5000 * time.Millisecond

type Type string

const (
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notification is a transient, user-facing notice. ModelID is set when the
// notice concerns a single model call.
type Notification struct {
	ID        string        `json:"id"`
	Type      Type          `json:"type"`
	ModelID   string        `json:"model_id,omitempty"`
	Title     string        `json:"title"`
	Message   string        `json:"message,omitempty"`
	Detail    string        `json:"detail,omitempty"`
	Duration  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}

// DurationMS is exposed for clients that schedule their own dismissal.
func (n Notification) DurationMS() int64 {
	return n.Duration.Milliseconds()
}

// Sink receives notifications. Implementations must be safe for concurrent use.
type Sink interface {
	Notify(ctx context.Context, n Notification) error
}

// New fills in id, timestamp and the default duration.
func New(t Type, modelID, title, message, detail string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Type:      t,
		ModelID:   modelID,
		Title:     title,
		Message:   message,
		Detail:    detail,
		Duration:  DefaultDuration,
		CreatedAt: time.Now().UTC(),
	}
}

// Discard drops every notification.
var Discard Sink = discard{}

type discard struct{}

func (discard) Notify(context.Context, Notification) error { return nil }
