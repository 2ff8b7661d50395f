// README: Orchestrator data model: model descriptors, analysis modes, envelopes and snapshots.
package compare

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vadi/internal/modules/location"
)

var (
	ErrEmptyPrompt  = errors.New("Please enter a prompt")
	ErrNoModels     = errors.New("Please select at least one AI model")
	ErrInvalidMode  = errors.New("invalid analysis mode")
	ErrUnknownModel = errors.New("unknown model")
	// ErrSuperseded is returned when a newer submission started before this one settled.
	ErrSuperseded = errors.New("submission superseded by a newer one")
)

// ModelDescriptor identifies one downstream AI endpoint. Fixed at startup.
type ModelDescriptor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
	Color    string `json:"color"`
}

type Mode string

const (
	ModeVacation Mode = "vacation"
	ModeBusiness Mode = "business"
)

// ParseMode accepts the English names and the Spanish ones used by the web client.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vacation", "vacaciones":
		return ModeVacation, nil
	case "business", "emprendimientos":
		return ModeBusiness, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

func (m Mode) Valid() bool {
	return m == ModeVacation || m == ModeBusiness
}

// Envelope is the normalized reply of one model.
type Envelope struct {
	ModelID    string           `json:"model_id"`
	ModelName  string           `json:"model_name"`
	Color      string           `json:"color"`
	Text       string           `json:"text"`
	Locations  []location.Point `json:"locations"`
	ReceivedAt time.Time        `json:"received_at"`
}

// Failure records a model call that produced no envelope.
type Failure struct {
	ModelID   string `json:"model_id"`
	ModelName string `json:"model_name"`
	Error     string `json:"error"`
}

// Snapshot is the immutable outcome of one submission. Never mutate a
// snapshot returned by Submit or Latest.
type Snapshot struct {
	ID          string              `json:"id"`
	Generation  uint64              `json:"generation"`
	Mode        Mode                `json:"mode"`
	Prompt      string              `json:"prompt"`
	Order       []string            `json:"order"`
	Responses   map[string]Envelope `json:"responses"`
	Locations   []location.Point    `json:"locations"`
	Failures    []Failure           `json:"failures"`
	StartedAt   time.Time           `json:"started_at"`
	CompletedAt time.Time           `json:"completed_at"`
}

// Ordered returns the envelopes in the user's selection order.
func (s *Snapshot) Ordered() []Envelope {
	if s == nil {
		return nil
	}
	out := make([]Envelope, 0, len(s.Order))
	for _, id := range s.Order {
		if env, ok := s.Responses[id]; ok {
			out = append(out, env)
		}
	}
	return out
}

type Request struct {
	Prompt string
	Mode   Mode
	Models []ModelDescriptor
}

func (r Request) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if len(r.Models) == 0 {
		return ErrNoModels
	}
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, r.Mode)
	}
	return nil
}

// Registry is the static set of configured models.
type Registry struct {
	models []ModelDescriptor
	byID   map[string]ModelDescriptor
}

func NewRegistry(models ...ModelDescriptor) *Registry {
	r := &Registry{byID: make(map[string]ModelDescriptor, len(models))}
	for _, m := range models {
		if _, dup := r.byID[m.ID]; dup {
			continue
		}
		r.models = append(r.models, m)
		r.byID[m.ID] = m
	}
	return r
}

func (r *Registry) All() []ModelDescriptor {
	out := make([]ModelDescriptor, len(r.models))
	copy(out, r.models)
	return out
}

// Select resolves ids in the given order. Repeated ids are collapsed.
func (r *Registry) Select(ids []string) ([]ModelDescriptor, error) {
	seen := make(map[string]bool, len(ids))
	out := make([]ModelDescriptor, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if seen[id] {
			continue
		}
		m, ok := r.byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownModel, id)
		}
		seen[id] = true
		out = append(out, m)
	}
	return out, nil
}
