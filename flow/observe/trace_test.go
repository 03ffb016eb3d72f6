package observe_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lguimbarda/seqflow/flow"
	"github.com/lguimbarda/seqflow/flow/observe"
)

type logLine struct {
	Level string `json:"level"`
	Stage string `json:"stage"`
	Value int    `json:"value"`
	Step  string `json:"step"`
}

func readLines(t *testing.T, buf *bytes.Buffer) []logLine {
	t.Helper()
	var lines []logLine
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var l logLine
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			t.Fatalf("invalid log line %q: %v", sc.Text(), err)
		}
		lines = append(lines, l)
	}
	return lines
}

func TestTrace(t *testing.T) {
	tests := []struct {
		name      string
		level     zerolog.Level
		opts      []observe.TraceOption
		wantStage string
		wantLevel string
		wantLines int
	}{
		{
			name:      "defaults",
			level:     zerolog.DebugLevel,
			wantStage: "trace",
			wantLevel: "debug",
			wantLines: 3,
		},
		{
			name:      "named at info",
			level:     zerolog.InfoLevel,
			opts:      []observe.TraceOption{observe.WithTraceName("digits"), observe.WithTraceLevel(zerolog.InfoLevel)},
			wantStage: "digits",
			wantLevel: "info",
			wantLines: 3,
		},
		{
			name:      "below logger level",
			level:     zerolog.InfoLevel,
			wantLines: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tt.level)

			traced := flow.Pipe[int](flow.FromSlice([]int{1, 2, 3}), observe.Trace[int](logger, tt.opts...))
			got := flow.Pipe(traced, flow.Materialize[int]())
			if !slices.Equal(got, []int{1, 2, 3}) {
				t.Errorf("got %v", got)
			}

			lines := readLines(t, &buf)
			if len(lines) != tt.wantLines {
				t.Fatalf("expected %d log lines, got %d", tt.wantLines, len(lines))
			}
			for i, l := range lines {
				if l.Stage != tt.wantStage || l.Level != tt.wantLevel || l.Value != i+1 {
					t.Errorf("line %d: unexpected %+v", i, l)
				}
			}
		})
	}
}

func TestTraceSteps(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	traced := flow.Pipe[int](flow.FromSlice([]int{1, 2}), observe.Trace[int](logger, observe.WithSteps()))
	flow.Pipe(traced, flow.Materialize[int]())

	var steps []string
	for _, l := range readLines(t, &buf) {
		if l.Step != "" {
			steps = append(steps, l.Step)
		}
	}
	if !slices.Equal(steps, []string{"next", "next"}) {
		t.Errorf("got steps %v", steps)
	}
}
