package observe

import (
	"github.com/rs/zerolog"

	"github.com/lguimbarda/seqflow/flow/core"
)

// TraceConfig holds configuration options for Trace.
type TraceConfig struct {
	Name  string
	Level zerolog.Level
	Steps bool
}

// TraceOption is a functional option for configuring Trace.
type TraceOption func(*TraceConfig)

// WithTraceName sets the stage name recorded on every log event.
func WithTraceName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.Name = name
	}
}

// WithTraceLevel sets the level values are logged at. The default is debug.
func WithTraceLevel(level zerolog.Level) TraceOption {
	return func(c *TraceConfig) {
		c.Level = level
	}
}

// WithSteps also logs every cursor step, at trace level.
func WithSteps() TraceOption {
	return func(c *TraceConfig) {
		c.Steps = true
	}
}

func defaultTraceConfig() TraceConfig {
	return TraceConfig{
		Name:  "trace",
		Level: zerolog.DebugLevel,
	}
}

// Trace logs every dereferenced element through logger, passing the
// elements through unchanged.
func Trace[T any](logger zerolog.Logger, opts ...TraceOption) core.Stage[T, core.Sequence[T]] {
	cfg := defaultTraceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := logger.With().Str("stage", cfg.Name).Logger()

	hooks := Hooks[T]{
		OnValue: func(v T) {
			log.WithLevel(cfg.Level).Interface("value", v).Msg("value")
		},
	}
	if cfg.Steps {
		hooks.OnNext = func() { log.Trace().Str("step", "next").Msg("step") }
		hooks.OnPrev = func() { log.Trace().Str("step", "prev").Msg("step") }
	}

	return core.Adapt(cfg.Name, func(s core.Sequence[T]) core.Sequence[T] {
		return tap(s, hooks)
	})
}
