package observe_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/lguimbarda/seqflow/flow"
	"github.com/lguimbarda/seqflow/flow/observe"
)

// sums collects every data point of the named Int64 counter, keyed by the
// "direction" attribute (empty for value counts).
func sums(t *testing.T, rm metricdata.ResourceMetrics, name string) map[string]int64 {
	t.Helper()
	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			data, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s: unexpected aggregation %T", name, m.Data)
			}
			for _, dp := range data.DataPoints {
				if stage, _ := dp.Attributes.Value("stage"); stage.AsString() != "evens" {
					t.Errorf("%s: unexpected stage attribute %q", name, stage.AsString())
				}
				dir, _ := dp.Attributes.Value("direction")
				out[dir.AsString()] += dp.Value
			}
		}
	}
	return out
}

func TestMeter(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	meter := provider.Meter("seqflow/observe")
	evens := flow.Pipe[int](flow.Range(1, 6), flow.Filter(func(n int) bool { return n%2 == 0 }))
	metered := flow.Pipe(evens, observe.Meter[int](ctx, meter,
		observe.WithMeterName("evens"),
		observe.WithAttributes(attribute.String("pipeline", "test"))))

	got := flow.Pipe(metered, flow.Materialize[int]())
	if !slices.Equal(got, []int{2, 4, 6}) {
		t.Fatalf("got %v", got)
	}
	for range flow.Backward(metered) {
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	// Forward: three values and three steps. Backward: three values and
	// three steps.
	if values := sums(t, rm, observe.ValuesCounter); values[""] != 6 {
		t.Errorf("expected 6 values, got %v", values)
	}
	steps := sums(t, rm, observe.StepsCounter)
	if steps["next"] != 3 || steps["prev"] != 3 {
		t.Errorf("expected 3 steps each way, got %v", steps)
	}
}

func TestMeterNoop(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("seqflow/observe")
	metered := flow.Pipe[int](flow.FromSlice([]int{1, 2}), observe.Meter[int](context.Background(), meter))
	if got := flow.Pipe(metered, flow.Sum[int]()); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

var errNoInstruments = errors.New("no instruments")

type failingMeter struct {
	noop.Meter
}

func (failingMeter) Int64Counter(string, ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return nil, errNoInstruments
}

func TestMeterRejectsComposition(t *testing.T) {
	_, err := flow.TryPipe[int](flow.FromSlice([]int{1}), observe.Meter[int](context.Background(), failingMeter{}))
	if !errors.Is(err, errNoInstruments) {
		t.Fatalf("expected the instrument error, got %v", err)
	}
	var ce *flow.ComposeError
	if !errors.As(err, &ce) || ce.Stage != "meter" {
		t.Errorf("expected a compose error naming meter, got %v", err)
	}
}
