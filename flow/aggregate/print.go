package aggregate

import (
	"fmt"
	"io"
	"os"

	"github.com/lguimbarda/seqflow/flow/core"
)

// PrintConfig holds configuration options for Print.
type PrintConfig struct {
	Writer    io.Writer
	Separator string
}

// PrintOption is a functional option for configuring Print.
type PrintOption func(*PrintConfig)

// WithWriter sets the destination of Print. The default is os.Stdout.
func WithWriter(w io.Writer) PrintOption {
	return func(c *PrintConfig) {
		c.Writer = w
	}
}

// WithSeparator sets the text written after every element. The default is
// a single space.
func WithSeparator(sep string) PrintOption {
	return func(c *PrintConfig) {
		c.Separator = sep
	}
}

// defaultPrintConfig returns a PrintConfig with default values.
func defaultPrintConfig() PrintConfig {
	return PrintConfig{
		Writer:    os.Stdout,
		Separator: " ",
	}
}

func applyPrintOptions(opts ...PrintOption) PrintConfig {
	cfg := defaultPrintConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Print writes every element, formatted with fmt's %v verb and followed by
// the separator. It stops at the first write error and returns it.
func Print[T any](opts ...PrintOption) core.Stage[T, error] {
	cfg := applyPrintOptions(opts...)
	return core.Terminate("print", func(s core.Sequence[T]) error {
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			if _, err := fmt.Fprintf(cfg.Writer, "%v%s", c.Value(), cfg.Separator); err != nil {
				return fmt.Errorf("print: %w", err)
			}
		}
		return nil
	})
}
