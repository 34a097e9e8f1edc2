package sumtree

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func intTree(t *testing.T, values ...int) *Tree[int] {
	t.Helper()
	tree, err := New(values, Sum[int]())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func intEq(a, b int) bool { return a == b }

func TestNewRequiresMonoid(t *testing.T) {
	_, err := New[int]([]int{1, 2, 3}, nil)
	if !errors.Is(err, ErrNoMonoid) {
		t.Fatalf("expected ErrNoMonoid, got %v", err)
	}
}

func TestNewEmpty(t *testing.T) {
	tree := intTree(t)
	if tree.Len() != 0 || tree.Cap() != 0 {
		t.Errorf("empty tree: len=%d cap=%d, want 0/0", tree.Len(), tree.Cap())
	}
	if err := tree.Check(intEq); err != nil {
		t.Errorf("Check failed on empty tree: %v", err)
	}
	if _, err := tree.Get(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds on empty Get, got %v", err)
	}
}

func TestNewBuildsAggregates(t *testing.T) {
	for n := 1; n <= 17; n++ { // covers non-power-of-two capacities
		values := make([]int, n)
		want := 0
		for i := range values {
			values[i] = i + 1
			want += i + 1
		}
		tree := intTree(t, values...)
		if err := tree.Check(intEq); err != nil {
			t.Fatalf("n=%d: Check failed: %v", n, err)
		}
		total, err := tree.QueryRange(0, n-1)
		if err != nil {
			t.Fatalf("n=%d: QueryRange failed: %v", n, err)
		}
		if total != want {
			t.Errorf("n=%d: full range sum = %d, want %d", n, total, want)
		}
	}
}

func TestGetReturnsElements(t *testing.T) {
	tree := intTree(t, 5, 7, 11, 13)
	for i, want := range []int{5, 7, 11, 13} {
		got, err := tree.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSetRoundtripAndIsolation(t *testing.T) {
	tree := intTree(t, 1, 2, 3, 4, 5)
	if err := tree.Set(2, 42); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	for i, want := range []int{1, 2, 42, 4, 5} {
		got, err := tree.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if got != want {
			t.Errorf("after Set(2, 42): Get(%d) = %d, want %d", i, got, want)
		}
	}
	if err := tree.Check(intEq); err != nil {
		t.Errorf("Check failed after Set: %v", err)
	}
}

func TestQueryRangePartialOverlap(t *testing.T) {
	tree := intTree(t, 1, 2, 3, 4, 5, 6, 7)
	cases := []struct {
		start, end, want int
	}{
		{0, 6, 28},
		{0, 0, 1},
		{6, 6, 7},
		{1, 3, 9},
		{2, 5, 18},
		{3, 3, 4},
	}
	for _, c := range cases {
		got, err := tree.QueryRange(c.start, c.end)
		if err != nil {
			t.Fatalf("QueryRange(%d, %d) failed: %v", c.start, c.end, err)
		}
		if got != c.want {
			t.Errorf("QueryRange(%d, %d) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestQueryRangeReversedYieldsNeutral(t *testing.T) {
	tree := intTree(t, 1, 2, 3)
	got, err := tree.QueryRange(2, 0)
	if err != nil {
		t.Fatalf("QueryRange(2, 0) failed: %v", err)
	}
	if got != 0 {
		t.Errorf("reversed range = %d, want neutral 0", got)
	}
}

func TestQueryRangeBounds(t *testing.T) {
	tree := intTree(t, 1, 2, 3)
	for _, c := range [][2]int{{-1, 2}, {0, 3}, {3, 3}, {-2, -1}} {
		if _, err := tree.QueryRange(c[0], c[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("QueryRange(%d, %d): expected ErrIndexOutOfBounds, got %v", c[0], c[1], err)
		}
	}
	if err := tree.Set(3, 9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Set(3, ...): expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestOperandOrderIsPreserved(t *testing.T) {
	// String concatenation is associative but not commutative.
	words := []string{"al", "pha", "bet"}
	tree, err := New(words, Sum[string]())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got, err := tree.QueryRange(0, 2)
	if err != nil {
		t.Fatalf("QueryRange failed: %v", err)
	}
	if got != "alphabet" {
		t.Errorf("concatenated range = %q, want %q", got, "alphabet")
	}
}

func TestAddGrowsOnlyWhenFull(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := intTree(t)
	prevCap := tree.Cap()
	for n := 1; n <= 40; n++ {
		wasFull := tree.Len() == tree.Cap()
		tree.Add(n)
		if tree.Len() != n {
			t.Fatalf("after %d adds: Len=%d", n, tree.Len())
		}
		last, err := tree.Get(n - 1)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", n-1, err)
		}
		if last != n {
			t.Fatalf("after %d adds: Get(%d)=%d, want %d", n, n-1, last, n)
		}
		if tree.Cap() != prevCap && !wasFull {
			t.Fatalf("capacity grew from %d to %d although tree was not full", prevCap, tree.Cap())
		}
		prevCap = tree.Cap()
	}
	if err := tree.Check(intEq); err != nil {
		t.Errorf("Check failed after appends: %v", err)
	}
}

func TestResizeKeepsContents(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := New([]int{1, 2, 3}, Min(math.MaxInt))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for range 4 {
		tree.Add(40)
	}
	want := []int{1, 2, 3, 40, 40, 40, 40}
	for i, w := range want {
		got, err := tree.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if got != w {
			t.Errorf("Get(%d) = %d, want %d", i, got, w)
		}
	}
	minimum, err := tree.QueryRange(0, 6)
	if err != nil {
		t.Fatalf("QueryRange failed: %v", err)
	}
	if minimum != 1 {
		t.Errorf("QueryRange(0, 6) = %d, want 1", minimum)
	}
}

func TestResizeNeverShrinks(t *testing.T) {
	tree := intTree(t, 1, 2, 3, 4)
	tree.Resize(2)
	if tree.Cap() != 4 {
		t.Errorf("Resize(2) changed capacity to %d", tree.Cap())
	}
	tree.Resize(9)
	if tree.Cap() != 9 || tree.Len() != 4 {
		t.Errorf("Resize(9): cap=%d len=%d, want 9/4", tree.Cap(), tree.Len())
	}
	if err := tree.Check(intEq); err != nil {
		t.Errorf("Check failed after Resize: %v", err)
	}
}

func TestFromFunc(t *testing.T) {
	tree, err := FromFunc(5, func(i int) int { return i * i }, Sum[int]())
	if err != nil {
		t.Fatalf("FromFunc failed: %v", err)
	}
	total, err := tree.QueryRange(0, 4)
	if err != nil {
		t.Fatalf("QueryRange failed: %v", err)
	}
	if total != 30 {
		t.Errorf("sum of squares = %d, want 30", total)
	}
}

func TestIterationOrder(t *testing.T) {
	tree := intTree(t, 9, 8, 7)
	tree.Resize(6) // padding must not show up in iteration
	var got []int
	for i, v := range tree.All() {
		if i != len(got) {
			t.Fatalf("iteration index %d at position %d", i, len(got))
		}
		got = append(got, v)
	}
	want := []int{9, 8, 7}
	if len(got) != len(want) {
		t.Fatalf("iterated %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEachStopsOnError(t *testing.T) {
	tree := intTree(t, 1, 2, 3)
	boom := errors.New("boom")
	visited := 0
	err := tree.Each(func(i int, v int) error {
		visited++
		if i == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected callback error, got %v", err)
	}
	if visited != 2 {
		t.Errorf("visited %d elements, want 2", visited)
	}
}

func TestTree2Dot(t *testing.T) {
	tree := intTree(t, 1, 2, 3)
	var sb strings.Builder
	Tree2Dot(tree, &sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("DOT output missing preamble:\n%s", out)
	}
	if !strings.Contains(out, "[0,2]") {
		t.Errorf("DOT output missing root range:\n%s", out)
	}
}
