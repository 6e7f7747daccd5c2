package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/golangdaddy/junkyard/pkg/telemetry"

// Metrics holds the game's counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	ticks       metric.Int64Counter
	dropped     metric.Int64Counter
	transitions metric.Int64Counter
	purchases   metric.Int64Counter
	outcomes    metric.Int64Counter
}

// New creates the instruments on the meter of mp. When enabled is false the
// no-op provider is used regardless of mp.
func New(mp metric.MeterProvider, enabled bool) (*Metrics, error) {
	if !enabled || mp == nil {
		mp = noop.NewMeterProvider()
	}
	m := mp.Meter(instrumentationName)

	var (
		out Metrics
		err error
	)
	if out.ticks, err = m.Int64Counter("junkyard.ticks",
		metric.WithDescription("Simulation ticks run")); err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}
	if out.dropped, err = m.Int64Counter("junkyard.ticks.dropped",
		metric.WithDescription("Ticks discarded by the catch-up cap")); err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}
	if out.transitions, err = m.Int64Counter("junkyard.state.transitions",
		metric.WithDescription("State machine transitions by target state")); err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}
	if out.purchases, err = m.Int64Counter("junkyard.purchases",
		metric.WithDescription("Purchase attempts by result")); err != nil {
		return nil, fmt.Errorf("creating purchases counter: %w", err)
	}
	if out.outcomes, err = m.Int64Counter("junkyard.outcomes",
		metric.WithDescription("Jump round outcomes")); err != nil {
		return nil, fmt.Errorf("creating outcomes counter: %w", err)
	}
	return &out, nil
}

// Global creates the instruments on the global provider, which is a no-op
// unless the host installs one.
func Global(enabled bool) (*Metrics, error) {
	return New(otel.GetMeterProvider(), enabled)
}

func (m *Metrics) Ticks(n, dropped int) {
	if m == nil {
		return
	}
	ctx := context.Background()
	if n > 0 {
		m.ticks.Add(ctx, int64(n))
	}
	if dropped > 0 {
		m.dropped.Add(ctx, int64(dropped))
	}
}

func (m *Metrics) Transition(state string) {
	if m == nil {
		return
	}
	m.transitions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("state", state)))
}

func (m *Metrics) Purchase(result string) {
	if m == nil {
		return
	}
	m.purchases.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("result", result)))
}

func (m *Metrics) Outcome(outcome string) {
	if m == nil {
		return
	}
	m.outcomes.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", outcome)))
}
