package flow_test

import (
	"slices"
	"testing"

	"github.com/lguimbarda/seqflow/flow"
)

func FuzzSkipTake(f *testing.F) {
	f.Add(0, 0, 0)
	f.Add(10, 2, 5)
	f.Add(5, 7, 1)
	f.Add(3, -1, 2)
	f.Add(8, 3, -4)

	f.Fuzz(func(t *testing.T, n, skip, take int) {
		n = min(max(n, 0), 1000)
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		window := flow.Pipe(flow.Pipe[int](flow.FromSlice(items), flow.Skip[int](skip)), flow.Take[int](take))
		got := slices.Collect(flow.Values(window))

		lo := min(max(skip, 0), n)
		hi := lo + min(max(take, 0), n-lo)
		if !slices.Equal(got, items[lo:hi]) {
			t.Fatalf("skip %d take %d of %d: expected %v, got %v", skip, take, n, items[lo:hi], got)
		}

		back := slices.Collect(flow.Backward(window))
		slices.Reverse(back)
		if !slices.Equal(back, got) {
			t.Fatalf("skip %d take %d of %d: backward %v, forward %v", skip, take, n, back, got)
		}
	})
}
