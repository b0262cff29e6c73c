// Package downstream hands finished digests to the publish and thumbnail
// consumers.
package downstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
)

// Emitter writes one JSON summary per line to w. The consumers read the
// stream and take over from there; nothing flows back.
type Emitter struct {
	mu sync.Mutex
	w  io.Writer
}

var _ ports.Downstream = (*Emitter)(nil)

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Publish serializes the summary. Editions run concurrently, so the write
// is serialized to keep lines intact.
func (e *Emitter) Publish(_ context.Context, summary domain.Summary) error {
	if e.w == nil {
		return errors.New("downstream emitter has no writer")
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	payload = append(payload, '\n')

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.w.Write(payload); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
