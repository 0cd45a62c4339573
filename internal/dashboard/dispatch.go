package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/couchcryptid/uninsured-dashboard/internal/domain"
	"github.com/couchcryptid/uninsured-dashboard/internal/observability"
	"github.com/jonboulle/clockwork"
)

var (
	// ErrUnknownEvent is returned when no handler is registered for an event.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrDuplicateHandler is returned when an event already has a handler.
	ErrDuplicateHandler = errors.New("handler already registered")
)

// Output is what a handler hands back to the page.
type Output struct {
	Status string         `json:"status"`
	Figure ChoroplethSpec `json:"figure"`
}

// Handler maps an event value to page output. Handlers must be pure.
type Handler func(value int) Output

// InteractionPublisher receives a record of every dispatched event.
type InteractionPublisher interface {
	Publish(ctx context.Context, in domain.Interaction) error
}

// Dispatcher routes UI events to registered handlers.
type Dispatcher struct {
	mu        sync.RWMutex
	handlers  map[string]Handler
	publisher InteractionPublisher
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewDispatcher creates a Dispatcher. publisher may be nil.
func NewDispatcher(publisher InteractionPublisher, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Dispatcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Dispatcher{
		handlers:  make(map[string]Handler),
		publisher: publisher,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// Register binds h to event.
func (d *Dispatcher) Register(event string, h Handler) error {
	if event == "" {
		return errors.New("register handler: empty event name")
	}
	if h == nil {
		return fmt.Errorf("register handler %q: nil handler", event)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.handlers[event]; ok {
		return fmt.Errorf("register handler %q: %w", event, ErrDuplicateHandler)
	}
	d.handlers[event] = h
	return nil
}

// Handles reports whether event has a handler.
func (d *Dispatcher) Handles(event string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[event]
	return ok
}

// Dispatch invokes the handler for event with value. A failed publish is
// logged and does not affect the returned output.
func (d *Dispatcher) Dispatch(ctx context.Context, event string, value int) (Output, error) {
	d.mu.RLock()
	h, ok := d.handlers[event]
	d.mu.RUnlock()

	if !ok {
		d.metrics.EventsDispatched.WithLabelValues("unregistered", "unknown").Inc()
		return Output{}, fmt.Errorf("dispatch %q: %w", event, ErrUnknownEvent)
	}

	start := d.clock.Now()
	out := h(value)
	d.metrics.HandlerDuration.Observe(d.clock.Since(start).Seconds())
	d.metrics.EventsDispatched.WithLabelValues(event, "ok").Inc()

	d.logger.Debug("event dispatched", "event", event, "value", value, "points", len(out.Figure.Points))

	d.publish(ctx, domain.Interaction{
		Event:      event,
		Value:      value,
		Points:     len(out.Figure.Points),
		OccurredAt: start.UTC(),
	})

	return out, nil
}

func (d *Dispatcher) publish(ctx context.Context, in domain.Interaction) {
	if d.publisher == nil {
		return
	}
	if err := d.publisher.Publish(ctx, in); err != nil {
		d.metrics.InteractionsPublished.WithLabelValues("error").Inc()
		d.logger.Warn("publish interaction failed", "error", err, "event", in.Event, "value", in.Value)
		return
	}
	d.metrics.InteractionsPublished.WithLabelValues("success").Inc()
}
