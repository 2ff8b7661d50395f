package notify

import (
	"context"
	"errors"
	"time"
)

// Fanout delivers to every sink and joins their errors.
type Fanout []Sink

func (f Fanout) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, s := range f {
		if s == nil {
			continue
		}
		if err := s.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func msToDuration(ms int64) time.Duration {
	if ms <= 0 {
		return DefaultDuration
	}
	return time.Duration(ms) * time.Millisecond
}
