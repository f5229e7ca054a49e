// Package notify implements the transient notification emitter. It carries
// no cart state; it only displays the outcome of the last action and
// disposes of it on a timer.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/fullstep/storefront-cart/internal/app/cart/contracts"
	"github.com/fullstep/storefront-cart/internal/pkg/logger"
)

// Display lifecycle: a toast appears after a tiny delay, holds, fades out,
// then self-disposes. Mirrors the storefront timings.
const (
	DefaultAppearDelay = 10 * time.Millisecond
	DefaultHold        = 3 * time.Second
	DefaultFade        = 500 * time.Millisecond
)

// Toast is one visible notification unit.
type Toast struct {
	ID       int64              `json:"id"`
	Message  string             `json:"message"`
	Severity contracts.Severity `json:"severity"`
	PostedAt time.Time          `json:"posted_at"`
}

// Emitter turns notifications into timed toasts. Notify never blocks the
// caller; disposal is guaranteed by a timer armed at post time.
type Emitter struct {
	mu     sync.Mutex
	seq    int64
	active map[int64]Toast

	log  *logger.Logger
	life time.Duration
}

// NewEmitter builds an emitter with the default display timings.
func NewEmitter(log *logger.Logger) *Emitter {
	return NewEmitterWithTimings(log, DefaultAppearDelay, DefaultHold, DefaultFade)
}

// NewEmitterWithTimings builds an emitter with explicit timings; tests use
// short ones.
func NewEmitterWithTimings(log *logger.Logger, appear, hold, fade time.Duration) *Emitter {
	return &Emitter{
		active: make(map[int64]Toast),
		log:    log,
		life:   appear + hold + fade,
	}
}

// Notify posts a toast and arms its disposal timer.
func (e *Emitter) Notify(n contracts.Notification) {
	e.mu.Lock()
	e.seq++
	id := e.seq
	e.active[id] = Toast{
		ID:       id,
		Message:  n.Message,
		Severity: n.Severity,
		PostedAt: time.Now().UTC(),
	}
	e.mu.Unlock()

	switch n.Severity {
	case contracts.SeverityError:
		e.log.Warn("notification", "message", n.Message)
	default:
		e.log.Info("notification", "message", n.Message)
	}

	time.AfterFunc(e.life, func() {
		e.mu.Lock()
		delete(e.active, id)
		e.mu.Unlock()
	})
}

// Active returns the currently displayed toasts in posting order.
func (e *Emitter) Active() []Toast {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Toast, 0, len(e.active))
	for _, t := range e.active {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
