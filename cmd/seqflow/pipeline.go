package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/lguimbarda/seqflow/flow"
	"github.com/lguimbarda/seqflow/flow/aggregate"
	"github.com/lguimbarda/seqflow/flow/observe"
	flowsql "github.com/lguimbarda/seqflow/flow/sql"
)

var (
	errNoSource        = errors.New("exactly one of --values, --text, --range or --sqlite is required")
	errUnknownStage    = errors.New("unknown stage")
	errUnknownTerminal = errors.New("unknown terminal")
	errUnknownFunc     = errors.New("unknown function")
)

// runOptions describes one pipeline: a source, the stages applied to it in
// order, and the terminal that consumes it.
type runOptions struct {
	Values   []string
	Text     string
	Range    string `validate:"omitempty,contains=:"`
	SQLite   string
	Query    string `validate:"required_with=SQLite"`
	Stages   []string
	Terminal string `validate:"required"`
}

func (o runOptions) sources() int {
	n := 0
	for _, set := range []bool{len(o.Values) > 0, o.Text != "", o.Range != "", o.SQLite != ""} {
		if set {
			n++
		}
	}
	return n
}

var mappers = map[string]func(int64) int64{
	"double": func(n int64) int64 { return n * 2 },
	"square": func(n int64) int64 { return n * n },
	"half":   func(n int64) int64 { return n / 2 },
	"negate": func(n int64) int64 { return -n },
}

var predicates = map[string]func(int64) bool{
	"even":     func(n int64) bool { return n%2 == 0 },
	"odd":      func(n int64) bool { return n%2 != 0 },
	"positive": func(n int64) bool { return n > 0 },
}

func lookup[F any](table map[string]F, name string) (F, error) {
	fn, ok := table[name]
	if !ok {
		var zero F
		return zero, fmt.Errorf("%w %q", errUnknownFunc, name)
	}
	return fn, nil
}

// parseStage turns a name[=arg] flag value into a continuation stage.
func parseStage(def string) (flow.Stage[int64, flow.Sequence[int64]], error) {
	name, arg, _ := strings.Cut(def, "=")
	switch name {
	case "map":
		fn, err := lookup(mappers, arg)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", def, err)
		}
		return flow.Map(fn), nil
	case "filter":
		fn, err := lookup(predicates, arg)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", def, err)
		}
		return flow.Filter(fn), nil
	case "skip", "take":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", def, err)
		}
		if name == "skip" {
			return flow.Skip[int64](n), nil
		}
		return flow.Take[int64](n), nil
	case "reverse":
		return flow.Reverse[int64](), nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownStage, def)
	}
}

func parseInts(values []string) ([]int64, error) {
	out := make([]int64, 0, len(values))
	for _, v := range values {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", v, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func buildSource(ctx context.Context, o runOptions) (flow.Sequence[int64], error) {
	switch {
	case len(o.Values) > 0:
		items, err := parseInts(o.Values)
		if err != nil {
			return nil, err
		}
		return flow.FromSlice(items), nil

	case o.Text != "":
		digits := flow.Pipe[byte](flow.FromString(o.Text), flow.Filter(isDigit))
		return flow.Pipe(digits, flow.Map(func(b byte) int64 { return int64(b - '0') })), nil

	case o.Range != "":
		start, count, _ := strings.Cut(o.Range, ":")
		bounds, err := parseInts([]string{start, count})
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", o.Range, err)
		}
		return flow.Range(bounds[0], bounds[1]), nil

	default:
		db, err := sql.Open("sqlite3", o.SQLite)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", o.SQLite, err)
		}
		defer db.Close()
		return flowsql.Query(ctx, db, o.Query, func(rows *sql.Rows) (int64, error) {
			var n int64
			err := rows.Scan(&n)
			return n, err
		})
	}
}

// runPipeline builds the pipeline described by o and writes the terminal's
// result to w.
func runPipeline(ctx context.Context, o runOptions, cfg Config, logger zerolog.Logger, w io.Writer) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if o.sources() != 1 {
		return errNoSource
	}

	seq, err := buildSource(ctx, o)
	if err != nil {
		return err
	}

	stages := make([]flow.Stage[int64, flow.Sequence[int64]], 0, len(o.Stages))
	for _, def := range o.Stages {
		stage, err := parseStage(def)
		if err != nil {
			return err
		}
		if cfg.Trace {
			stage = flow.Then(stage, observe.Trace[int64](logger, observe.WithTraceName(stage.Name())))
		}
		stages = append(stages, stage)
	}
	pipeline := flow.Chain(stages...)
	logger.Debug().Str("pipeline", pipeline.Name()).Str("terminal", o.Terminal).Msg("composing")

	seq, err = flow.TryPipe(seq, pipeline)
	if err != nil {
		return err
	}
	return runTerminal(seq, o.Terminal, cfg, w)
}

func runTerminal(seq flow.Sequence[int64], def string, cfg Config, w io.Writer) error {
	name, arg, _ := strings.Cut(def, "=")

	var result any
	switch name {
	case "collect":
		result = flow.Pipe(seq, flow.Materialize[int64]())
	case "sum":
		result = flow.Pipe(seq, flow.Sum[int64]())
	case "count":
		result = flow.Pipe(seq, aggregate.Count[int64]())
	case "all", "any", "none":
		pred, err := lookup(predicates, arg)
		if err != nil {
			return fmt.Errorf("terminal %q: %w", def, err)
		}
		switch name {
		case "all":
			result = flow.Pipe(seq, flow.All(pred))
		case "any":
			result = flow.Pipe(seq, flow.Any(pred))
		default:
			result = flow.Pipe(seq, flow.None(pred))
		}
	case "print":
		err := flow.Pipe(seq, flow.Print[int64](aggregate.WithWriter(w), aggregate.WithSeparator(cfg.Separator)))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
		return err
	default:
		return fmt.Errorf("%w %q", errUnknownTerminal, def)
	}

	_, err := fmt.Fprintln(w, result)
	return err
}
