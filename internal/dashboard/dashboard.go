package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/uninsured-dashboard/internal/domain"
	"github.com/couchcryptid/uninsured-dashboard/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Options configures a Dashboard.
type Options struct {
	Variant       Variant
	EchoSelection bool
	Publisher     InteractionPublisher
	Clock         clockwork.Clock
}

// Dashboard wires the table, renderer, layout, and event dispatch together.
type Dashboard struct {
	renderer   *Renderer
	layout     Layout
	dispatcher *Dispatcher
	metrics    *observability.Metrics
	ready      atomic.Bool
}

// New builds the dashboard over records and registers the slider handler.
func New(records *domain.RecordSet, opts Options, logger *slog.Logger, metrics *observability.Metrics) (*Dashboard, error) {
	renderer := NewRenderer(records, opts.Variant).WithSelectionEcho(opts.EchoSelection)

	d := &Dashboard{
		renderer:   renderer,
		layout:     DefaultLayout(opts.Variant.Title),
		dispatcher: NewDispatcher(opts.Publisher, opts.Clock, logger, metrics),
		metrics:    metrics,
	}
	d.layout.InitialStatus, _ = renderer.Render(d.layout.InitialYear)

	if err := d.dispatcher.Register(YearChanged, d.onYearChanged); err != nil {
		return nil, err
	}

	metrics.RecordsLoaded.Set(float64(records.Len()))
	metrics.DashboardReady.Set(1)
	d.ready.Store(true)

	logger.Info("dashboard ready",
		"records", records.Len(),
		"years", records.Years(),
		"variant", opts.Variant.Name,
	)
	return d, nil
}

// onYearChanged is the slider handler. It only reads the table.
func (d *Dashboard) onYearChanged(year int) Output {
	status, fig := d.renderer.Render(year)
	return Output{Status: status, Figure: fig}
}

// Layout returns the static page layout.
func (d *Dashboard) Layout() Layout {
	return d.layout
}

// Render returns the output for year outside of event dispatch.
func (d *Dashboard) Render(year int) Output {
	d.metrics.FigureRequests.Inc()
	return d.onYearChanged(year)
}

// Dispatch forwards a UI event to its handler.
func (d *Dashboard) Dispatch(ctx context.Context, event string, value int) (Output, error) {
	return d.dispatcher.Dispatch(ctx, event, value)
}

// CheckReadiness returns nil once the slider handler is registered.
func (d *Dashboard) CheckReadiness(_ context.Context) error {
	if !d.ready.Load() || !d.dispatcher.Handles(YearChanged) {
		return errors.New("dashboard handlers not registered")
	}
	return nil
}
