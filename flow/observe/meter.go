package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/seqflow/flow/core"
)

// Instrument names recorded by Meter.
const (
	ValuesCounter = "seqflow.stage.values"
	StepsCounter  = "seqflow.stage.steps"
)

// MeterConfig holds configuration options for Meter.
type MeterConfig struct {
	Name       string
	Attributes []attribute.KeyValue
}

// MeterOption is a functional option for configuring Meter.
type MeterOption func(*MeterConfig)

// WithMeterName sets the value of the "stage" attribute. The default is
// "meter".
func WithMeterName(name string) MeterOption {
	return func(c *MeterConfig) {
		c.Name = name
	}
}

// WithAttributes adds attributes to every recorded measurement.
func WithAttributes(attrs ...attribute.KeyValue) MeterOption {
	return func(c *MeterConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// Meter counts the elements dereferenced and the steps taken through it
// with OpenTelemetry counters created from meter. Failing to create an
// instrument rejects the composition.
func Meter[T any](ctx context.Context, meter metric.Meter, opts ...MeterOption) core.Stage[T, core.Sequence[T]] {
	cfg := MeterConfig{Name: "meter"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return core.Continue(cfg.Name, func(s core.Sequence[T]) (core.Sequence[T], error) {
		values, err := meter.Int64Counter(ValuesCounter,
			metric.WithDescription("Elements read through a pipeline stage"),
			metric.WithUnit("{element}"))
		if err != nil {
			return nil, fmt.Errorf("create %s counter: %w", ValuesCounter, err)
		}
		steps, err := meter.Int64Counter(StepsCounter,
			metric.WithDescription("Cursor steps taken through a pipeline stage"),
			metric.WithUnit("{step}"))
		if err != nil {
			return nil, fmt.Errorf("create %s counter: %w", StepsCounter, err)
		}

		attrs := append([]attribute.KeyValue{attribute.String("stage", cfg.Name)}, cfg.Attributes...)
		valueOpt := metric.WithAttributes(attrs...)
		nextOpt := metric.WithAttributes(append(attrs, attribute.String("direction", "next"))...)
		prevOpt := metric.WithAttributes(append(attrs, attribute.String("direction", "prev"))...)

		return tap(s, Hooks[T]{
			OnValue: func(T) { values.Add(ctx, 1, valueOpt) },
			OnNext:  func() { steps.Add(ctx, 1, nextOpt) },
			OnPrev:  func() { steps.Add(ctx, 1, prevOpt) },
		}), nil
	})
}
