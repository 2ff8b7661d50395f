// README: Response orchestrator. Fans one prompt out to every selected model,
// joins all outcomes and commits them as a single immutable snapshot.
package compare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vadi/internal/modules/location"
	"vadi/internal/modules/notify"
)

const (
	failureMessage = "Ocurrió un problema al obtener la respuesta."
	maxReplyBytes  = 8 << 20
)

type Service struct {
	client *http.Client
	sink   notify.Sink
	log    *zap.Logger
	now    func() time.Time

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	latest     *Snapshot
}

type Option func(*Service)

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService builds an orchestrator. client carries the transport timeout;
// a nil sink drops failure notices.
func NewService(client *http.Client, sink notify.Sink, opts ...Option) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	if sink == nil {
		sink = notify.Discard
	}
	s := &Service{client: client, sink: sink, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Latest returns the most recently committed snapshot, or nil.
func (s *Service) Latest() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

type outcome struct {
	env Envelope
	err error
}

// Submit runs one batch. Validation errors return before any network
// activity. Per-model failures never fail the batch; they become
// notifications and Failures entries. Cancelling ctx does not abort the
// batch; only a newer Submit does, in which case ErrSuperseded is returned.
func (s *Service) Submit(ctx context.Context, req Request) (*Snapshot, error) {
	if err := req.validate(); err != nil {
		Submissions.WithLabelValues("invalid").Inc()
		return nil, err
	}
	req.Models = uniqueModels(req.Models)

	ctx = context.WithoutCancel(ctx)
	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	gen := s.begin(cancel)
	log := s.log.With(zap.Uint64("generation", gen), zap.String("mode", string(req.Mode)))
	started := s.now()

	prompt := BuildPrompt(req.Mode, req.Prompt)
	outcomes := make([]outcome, len(req.Models))

	g, gctx := errgroup.WithContext(batchCtx)
	for i, m := range req.Models {
		i, m := i, m
		g.Go(func() error {
			outcomes[i] = s.call(gctx, log, req.Mode, m, prompt)
			return nil
		})
	}
	_ = g.Wait()

	snap := &Snapshot{
		ID:         uuid.NewString(),
		Generation: gen,
		Mode:       req.Mode,
		Prompt:     req.Prompt,
		Order:      []string{},
		Responses:  make(map[string]Envelope, len(req.Models)),
		Failures:   []Failure{},
		StartedAt:  started,
	}
	groups := make([][]location.Point, 0, len(req.Models))
	var failed []notify.Notification
	for i, m := range req.Models {
		o := outcomes[i]
		if o.err != nil {
			snap.Failures = append(snap.Failures, Failure{ModelID: m.ID, ModelName: m.Name, Error: o.err.Error()})
			failed = append(failed, notify.New(notify.TypeError, m.ID, "Error con "+m.Name, failureMessage, o.err.Error()))
			continue
		}
		snap.Order = append(snap.Order, m.ID)
		snap.Responses[m.ID] = o.env
		groups = append(groups, o.env.Locations)
	}
	if req.Mode == ModeVacation {
		snap.Locations = location.Merge(groups...)
	} else {
		snap.Locations = []location.Point{}
	}
	snap.CompletedAt = s.now()

	if !s.commit(gen, snap) {
		Submissions.WithLabelValues("superseded").Inc()
		log.Info("batch superseded, discarding")
		return nil, ErrSuperseded
	}
	Submissions.WithLabelValues("committed").Inc()

	for _, n := range failed {
		if err := s.sink.Notify(ctx, n); err != nil {
			log.Warn("notify failed", zap.String("model", n.ModelID), zap.Error(err))
		}
	}
	log.Info("batch committed",
		zap.Int("succeeded", len(snap.Order)),
		zap.Int("failed", len(snap.Failures)),
		zap.Int("locations", len(snap.Locations)),
		zap.Duration("elapsed", snap.CompletedAt.Sub(started)),
	)
	return snap, nil
}

// uniqueModels keeps the first occurrence of each model ID.
func uniqueModels(models []ModelDescriptor) []ModelDescriptor {
	seen := make(map[string]bool, len(models))
	out := make([]ModelDescriptor, 0, len(models))
	for _, m := range models {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

// begin takes a new generation and cancels the batch it supersedes.
func (s *Service) begin(cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.cancel = cancel
	return s.generation
}

func (s *Service) commit(gen uint64, snap *Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.latest = snap
	s.cancel = nil
	return true
}

func (s *Service) call(ctx context.Context, log *zap.Logger, mode Mode, m ModelDescriptor, prompt string) outcome {
	start := time.Now()
	body, err := s.post(ctx, endpointFor(mode, m.Endpoint), prompt)
	ModelCallDuration.WithLabelValues(m.ID, string(mode)).Observe(time.Since(start).Seconds())
	if err != nil {
		ModelCalls.WithLabelValues(m.ID, string(mode), "error").Inc()
		log.Warn("model call failed", zap.String("model", m.ID), zap.Error(err))
		return outcome{err: err}
	}
	text, locs, err := normalize(mode, body)
	if err != nil {
		ModelCalls.WithLabelValues(m.ID, string(mode), "malformed").Inc()
		log.Warn("model reply rejected", zap.String("model", m.ID), zap.Error(err))
		return outcome{err: fmt.Errorf("%s: %w", m.Name, err)}
	}
	ModelCalls.WithLabelValues(m.ID, string(mode), "ok").Inc()
	log.Debug("model replied", zap.String("model", m.ID), zap.Duration("elapsed", time.Since(start)))
	return outcome{env: Envelope{
		ModelID:    m.ID,
		ModelName:  m.Name,
		Color:      m.Color,
		Text:       text,
		Locations:  locs,
		ReceivedAt: s.now(),
	}}
}

type promptBody struct {
	Prompt string `json:"prompt"`
}

func (s *Service) post(ctx context.Context, url, prompt string) ([]byte, error) {
	reqBody, err := json.Marshal(promptBody{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
