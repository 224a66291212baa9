package dllist

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/mapfilefs/nodepool"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func intList(t *testing.T, values ...int) *List[int] {
	t.Helper()
	l := &List[int]{}
	for _, v := range values {
		if _, err := l.Append(v); err != nil {
			t.Fatalf("append %d failed: %v", v, err)
		}
	}
	return l
}

func values[T any](l *List[T]) []T {
	return slices.Collect(l.All())
}

func mustCheck[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if err := l.Check(); err != nil {
		t.Fatalf("list invariants violated: %v", err)
	}
}

func TestZeroValueList(t *testing.T) {
	var l List[string]
	mustCheck(t, &l)
	if l.Len() != 0 || l.Head() != nil || l.Tail() != nil || !l.IsEmpty() {
		t.Errorf("zero list is not empty")
	}
	l.Append("b")
	l.Prepend("a")
	mustCheck(t, &l)
	if got := values(&l); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("unexpected content %v", got)
	}
}

func TestInsertions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapfilefs")
	defer teardown()
	//
	l := intList(t, 2, 4)
	n2 := l.Head()
	n4 := l.Tail()
	l.InsertAfter(n2, 3)
	l.InsertBefore(n2, 1)
	l.InsertAfter(n4, 5) // tail: append
	l.InsertBefore(nil, 0)
	l.InsertAfter(nil, 6)
	mustCheck(t, l)
	if got := values(l); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("unexpected content %v", got)
	}
	if got := slices.Collect(l.Backward()); !slices.Equal(got, []int{6, 5, 4, 3, 2, 1, 0}) {
		t.Errorf("unexpected backward content %v", got)
	}
	if l.Head().Payload() != 0 || l.Tail().Payload() != 6 || l.Len() != 7 {
		t.Errorf("head/tail/len not maintained")
	}
}

func TestInsertBeforeHeadPrepends(t *testing.T) {
	l := intList(t, 2)
	n, _ := l.InsertBefore(l.Head(), 1)
	mustCheck(t, l)
	if l.Head() != n || n.Prev() != nil || n.Next().Payload() != 2 {
		t.Errorf("expected new head")
	}
}

func TestDelete(t *testing.T) {
	l := intList(t, 1, 2, 3)
	if v := l.Delete(l.Head().Next()); v != 2 {
		t.Errorf("expected 2, got %d", v)
	}
	mustCheck(t, l)
	if v := l.Delete(l.Head()); v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
	mustCheck(t, l)
	if v := l.Delete(l.Tail()); v != 3 {
		t.Errorf("expected 3, got %d", v)
	}
	mustCheck(t, l)
	if l.Head() != nil || l.Tail() != nil || l.Len() != 0 {
		t.Errorf("expected empty list")
	}
}

func TestDeleteNeighbours(t *testing.T) {
	l := intList(t, 1, 2, 3)
	mid := l.Head().Next()
	if v, ok := l.DeleteAfter(mid); !ok || v != 3 {
		t.Errorf("expected to delete 3")
	}
	if v, ok := l.DeleteBefore(mid); !ok || v != 1 {
		t.Errorf("expected to delete 1")
	}
	if _, ok := l.DeleteAfter(mid); ok {
		t.Errorf("expected no successor")
	}
	if _, ok := l.DeleteBefore(mid); ok {
		t.Errorf("expected no predecessor")
	}
	if _, ok := l.DeleteAfter(nil); ok {
		t.Errorf("expected DeleteAfter(nil) to do nothing")
	}
	mustCheck(t, l)
	if got := values(l); !slices.Equal(got, []int{2}) {
		t.Errorf("unexpected content %v", got)
	}
}

func TestIterateDeletingCurrentNode(t *testing.T) {
	l := intList(t, 1, 2, 3, 4, 5, 6)
	var seen []int
	err := l.Iterate(func(node *Node[int], v int) error {
		seen = append(seen, v)
		if v%2 == 0 {
			l.Delete(node)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	mustCheck(t, l)
	if !slices.Equal(seen, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("iteration skipped nodes: %v", seen)
	}
	if got := values(l); !slices.Equal(got, []int{1, 3, 5}) {
		t.Errorf("unexpected content %v", got)
	}
}

func TestIterateEarlyTermination(t *testing.T) {
	l := intList(t, 1, 2, 3)
	stop := errors.New("stop")
	visits := 0
	err := l.Iterate(func(_ *Node[int], v int) error {
		visits++
		if v == 2 {
			return stop
		}
		return nil
	})
	if err != stop || visits != 2 {
		t.Errorf("expected to stop at 2 with sentinel, got %v after %d visits", err, visits)
	}
}

func TestDeleteAll(t *testing.T) {
	fl := nodepool.New[Node[int]](8, 0)
	l := NewWithFreeList(fl)
	for i := 1; i <= 4; i++ {
		l.Append(i)
	}
	var freed []int
	l.DeleteAll(func(v int) { freed = append(freed, v) })
	mustCheck(t, l)
	if !l.IsEmpty() || !slices.Equal(freed, []int{1, 2, 3, 4}) {
		t.Errorf("unexpected release %v", freed)
	}
	if fl.Live() != 0 {
		t.Errorf("expected all nodes returned to free list, %d live", fl.Live())
	}
}

func TestAllocationFailure(t *testing.T) {
	l := NewWithFreeList(nodepool.New[Node[int]](2, 2))
	l.Append(1)
	l.Append(2)
	for name, insert := range map[string]func() (*Node[int], error){
		"prepend": func() (*Node[int], error) { return l.Prepend(0) },
		"append":  func() (*Node[int], error) { return l.Append(3) },
		"after":   func() (*Node[int], error) { return l.InsertAfter(l.Head(), 9) },
		"before":  func() (*Node[int], error) { return l.InsertBefore(l.Tail(), 9) },
	} {
		n, err := insert()
		if n != nil || !errors.Is(err, ErrAllocation) {
			t.Errorf("%s: expected ErrAllocation, got %v", name, err)
		}
	}
	mustCheck(t, l)
	if got := values(l); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("list modified by failed insertion: %v", got)
	}
	l.Delete(l.Head())
	if _, err := l.Prepend(0); err != nil {
		t.Errorf("expected insertion to succeed after delete: %v", err)
	}
}
