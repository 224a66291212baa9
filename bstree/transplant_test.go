package bstree

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/mapfilefs/nodepool"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMoveWholeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapfilefs")
	defer teardown()
	//
	dest := intTree(t, 2, 6)
	src := intTree(t, 5, 3, 8, 1, 4)
	if err := dest.Move(src, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustCheck(t, dest)
	mustCheck(t, src)
	if !src.IsEmpty() || src.Len() != 0 {
		t.Errorf("expected source to be empty after move")
	}
	if got := inorder(dest); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 8}) {
		t.Errorf("unexpected destination content %v", got)
	}
	if src.Config().FreeList.Live() != 0 {
		t.Errorf("expected source nodes to be released")
	}
}

func TestMoveUsesDestinationOrdering(t *testing.T) {
	dest, _ := New(Config[int]{Compare: func(a, b int) int { return cmp.Compare(b, a) }})
	src := intTree(t, 1, 2, 3)
	if err := dest.Move(src, nil); err != nil {
		t.Fatal(err)
	}
	mustCheck(t, dest)
	if got := inorder(dest); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("expected descending order in destination, got %v", got)
	}
}

func TestMoveWithSharedFreeList(t *testing.T) {
	fl := nodepool.New[Node[int]](8, 6)
	mk := func(keys ...int) *Tree[int] {
		tree, _ := New(Config[int]{Compare: cmp.Compare[int], FreeList: fl})
		for _, k := range keys {
			if _, err := tree.Insert(k); err != nil {
				t.Fatal(err)
			}
		}
		return tree
	}
	dest := mk(10, 20, 30)
	src := mk(15, 25, 5)
	// free list is exhausted, nodes have to be relocated
	if err := dest.Move(src, nil); err != nil {
		t.Fatalf("move with shared free list failed: %v", err)
	}
	mustCheck(t, dest)
	if fl.Live() != 6 || dest.Len() != 6 || src.Len() != 0 {
		t.Errorf("unexpected node accounting live=%d dest=%d src=%d", fl.Live(), dest.Len(), src.Len())
	}
}

func TestMoveBranch(t *testing.T) {
	src := intTree(t, 5, 3, 8, 1, 4, 9)
	dest := intTree(t)
	if err := dest.Move(src, src.Find(3)); err != nil {
		t.Fatal(err)
	}
	mustCheck(t, src)
	mustCheck(t, dest)
	if got := inorder(src); !slices.Equal(got, []int{5, 8, 9}) {
		t.Errorf("unexpected remaining source %v", got)
	}
	if got := inorder(dest); !slices.Equal(got, []int{1, 3, 4}) {
		t.Errorf("unexpected destination %v", got)
	}
}

func TestMoveAllocationFailure(t *testing.T) {
	dest, _ := New(Config[int]{Compare: cmp.Compare[int], FreeList: nodepool.New[Node[int]](4, 2)})
	src := intTree(t, 5, 3, 8, 1, 4)
	err := dest.Move(src, nil)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	mustCheck(t, src)
	mustCheck(t, dest)
	if dest.Len()+src.Len() != 5 || dest.Len() != 2 {
		t.Errorf("payloads lost or duplicated: dest=%d src=%d", dest.Len(), src.Len())
	}
}

func TestMoveIntoItself(t *testing.T) {
	tree := intTree(t, 2, 1, 3)
	if err := tree.Move(tree, nil); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 3 {
		t.Errorf("self-move should be a no-op")
	}
}

func strTree(t *testing.T, dup func(*string) (*string, error), keys ...string) *Tree[*string] {
	t.Helper()
	tree, err := New(Config[*string]{
		Compare: func(a, b *string) int { return strings.Compare(*a, *b) },
		Dup:     dup,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range keys {
		s := k
		tree.Insert(&s)
	}
	return tree
}

func cloneString(s *string) (*string, error) {
	c := strings.Clone(*s)
	return &c, nil
}

func TestCopyDuplicatesPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapfilefs")
	defer teardown()
	//
	src := strTree(t, cloneString, "m", "f", "t", "a")
	dest := strTree(t, cloneString, "k")
	failed, err := dest.Copy(src, nil)
	if failed != nil || err != nil {
		t.Fatalf("unexpected failure at %v: %v", failed, err)
	}
	mustCheck(t, dest)
	if src.Len() != 4 || dest.Len() != 5 {
		t.Errorf("unexpected lengths src=%d dest=%d", src.Len(), dest.Len())
	}
	var got []string
	for s := range dest.Ascend() {
		got = append(got, *s)
	}
	if !slices.Equal(got, []string{"a", "f", "k", "m", "t"}) {
		t.Errorf("unexpected destination content %v", got)
	}
	for s := range src.Ascend() {
		if n := dest.Find(s); n == nil || n.Payload() == s {
			t.Errorf("expected an independent duplicate of %q", *s)
		}
	}
}

func TestCopyReproducesShape(t *testing.T) {
	src := intTree(t, 5, 3, 8, 1, 4, 9, 7)
	dest := intTree(t)
	if _, err := dest.Copy(src, nil); err != nil {
		t.Fatal(err)
	}
	var a, b []int
	refPreOrder(src.root, false, &a)
	refPreOrder(dest.root, false, &b)
	if !slices.Equal(a, b) {
		t.Errorf("expected identical shape, pre-order %v vs %v", a, b)
	}
}

func TestCopyStopsAtDuplicationFailure(t *testing.T) {
	boom := errors.New("boom")
	dup := func(s *string) (*string, error) {
		if *s == "f" {
			return nil, boom
		}
		return cloneString(s)
	}
	src := strTree(t, dup, "m", "f", "t", "a")
	dest := strTree(t, cloneString)
	failed, err := dest.Copy(src, nil)
	if !errors.Is(err, ErrDuplication) || !errors.Is(err, boom) {
		t.Fatalf("expected duplication error wrapping cause, got %v", err)
	}
	if failed == nil || *failed.Payload() != "f" {
		t.Fatalf("expected copy to report node 'f'")
	}
	// pre-order: m, f, ... -> only m has been copied
	if dest.Len() != 1 || *dest.Root().Payload() != "m" {
		t.Errorf("expected partial copy of 'm' only, have %d nodes", dest.Len())
	}
	if src.Len() != 4 {
		t.Errorf("source must not be modified")
	}
}

func TestCopyAllocationFailure(t *testing.T) {
	var freed int
	src := intTree(t, 2, 1, 3)
	dest, _ := New(Config[int]{
		Compare:  cmp.Compare[int],
		Free:     func(int) { freed++ },
		FreeList: nodepool.New[Node[int]](2, 2),
	})
	failed, err := dest.Copy(src, nil)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if failed == nil || failed.Payload() != 3 {
		t.Errorf("expected failure at node 3, got %v", failed)
	}
	if freed != 1 {
		t.Errorf("expected the orphaned duplicate to be released")
	}
}

func TestCopyBranchAndSelf(t *testing.T) {
	src := intTree(t, 5, 3, 8, 1, 4)
	dest := intTree(t)
	if _, err := dest.Copy(src, src.Find(8)); err != nil {
		t.Fatal(err)
	}
	if got := inorder(dest); !slices.Equal(got, []int{8}) {
		t.Errorf("expected only branch 8 copied, got %v", got)
	}
	if _, err := src.Copy(src, nil); !errors.Is(err, ErrSameTree) {
		t.Errorf("expected ErrSameTree, got %v", err)
	}
}

func TestDotOutput(t *testing.T) {
	tree := intTree(t, 5, 3, 8, 1)
	var sb strings.Builder
	if err := tree.Dot(&sb); err != nil {
		t.Fatal(err)
	}
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a DOT graph: %s", dot)
	}
	for _, k := range []int{5, 3, 8, 1} {
		if !strings.Contains(dot, fmt.Sprintf("label=\"%d\"", k)) {
			t.Errorf("missing node %d in DOT output", k)
		}
	}
}
