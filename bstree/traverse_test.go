package bstree

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// recursive reference implementations

func refInOrder(n *Node[int], rev bool, out *[]int) {
	if n == nil {
		return
	}
	refInOrder(n.leftOf(rev), rev, out)
	*out = append(*out, n.payload)
	refInOrder(n.rightOf(rev), rev, out)
}

func refPreOrder(n *Node[int], rev bool, out *[]int) {
	if n == nil {
		return
	}
	*out = append(*out, n.payload)
	refPreOrder(n.leftOf(rev), rev, out)
	refPreOrder(n.rightOf(rev), rev, out)
}

func refPostOrder(n *Node[int], rev bool, out *[]int) {
	if n == nil {
		return
	}
	refPostOrder(n.leftOf(rev), rev, out)
	refPostOrder(n.rightOf(rev), rev, out)
	*out = append(*out, n.payload)
}

func refLevelOrder(root *Node[int], rev bool) []int {
	var out []int
	level := []*Node[int]{}
	if root != nil {
		level = append(level, root)
	}
	for len(level) > 0 {
		var next []*Node[int]
		for _, n := range level {
			out = append(out, n.payload)
			if l := n.leftOf(rev); l != nil {
				next = append(next, l)
			}
			if r := n.rightOf(rev); r != nil {
				next = append(next, r)
			}
		}
		level = next
	}
	return out
}

type traversal func(*Tree[int], bool, Visitor[int]) error

func collect(tree *Tree[int], walk traversal, rev bool) []int {
	var out []int
	_ = walk(tree, rev, func(_ *Node[int], payload int) error {
		out = append(out, payload)
		return nil
	})
	return out
}

func TestTraversalScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapfilefs")
	defer teardown()
	//
	tree := intTree(t, 5, 3, 8, 1, 4)
	tests := []struct {
		name   string
		walk   traversal
		rev    bool
		expect []int
	}{
		{"inorder", (*Tree[int]).InOrder, false, []int{1, 3, 4, 5, 8}},
		{"inorder reverse", (*Tree[int]).InOrder, true, []int{8, 5, 4, 3, 1}},
		{"preorder", (*Tree[int]).PreOrder, false, []int{5, 3, 1, 4, 8}},
		{"preorder reverse", (*Tree[int]).PreOrder, true, []int{5, 8, 3, 4, 1}},
		{"postorder", (*Tree[int]).PostOrder, false, []int{1, 4, 3, 8, 5}},
		{"postorder reverse", (*Tree[int]).PostOrder, true, []int{8, 4, 1, 3, 5}},
		{"levelorder", (*Tree[int]).LevelOrder, false, []int{5, 3, 8, 1, 4}},
		{"levelorder reverse", (*Tree[int]).LevelOrder, true, []int{5, 8, 3, 4, 1}},
	}
	for _, tt := range tests {
		if got := collect(tree, tt.walk, tt.rev); !slices.Equal(got, tt.expect) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expect, got)
		}
	}
}

func TestTraversalsMatchRecursiveDefinition(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for round := 0; round < 50; round++ {
		tree := intTree(t)
		n := r.IntN(40)
		for i := 0; i < n; i++ {
			tree.Insert(r.IntN(50))
		}
		for _, rev := range []bool{false, true} {
			var in, pre, post []int
			refInOrder(tree.root, rev, &in)
			refPreOrder(tree.root, rev, &pre)
			refPostOrder(tree.root, rev, &post)
			level := refLevelOrder(tree.root, rev)
			if got := collect(tree, (*Tree[int]).InOrder, rev); !slices.Equal(got, in) {
				t.Fatalf("inorder(rev=%v) mismatch:\n%v\n%v", rev, got, in)
			}
			if got := collect(tree, (*Tree[int]).PreOrder, rev); !slices.Equal(got, pre) {
				t.Fatalf("preorder(rev=%v) mismatch:\n%v\n%v", rev, got, pre)
			}
			if got := collect(tree, (*Tree[int]).PostOrder, rev); !slices.Equal(got, post) {
				t.Fatalf("postorder(rev=%v) mismatch:\n%v\n%v", rev, got, post)
			}
			if got := collect(tree, (*Tree[int]).LevelOrder, rev); !slices.Equal(got, level) {
				t.Fatalf("levelorder(rev=%v) mismatch:\n%v\n%v", rev, got, level)
			}
		}
	}
}

func TestTraversalEarlyTermination(t *testing.T) {
	tree := intTree(t, 5, 3, 8, 1, 4)
	stop := errors.New("found")
	walks := map[string]traversal{
		"in":    (*Tree[int]).InOrder,
		"pre":   (*Tree[int]).PreOrder,
		"post":  (*Tree[int]).PostOrder,
		"level": (*Tree[int]).LevelOrder,
	}
	for name, walk := range walks {
		visits := 0
		var hit *Node[int]
		err := walk(tree, false, func(node *Node[int], payload int) error {
			visits++
			if payload == 4 {
				hit = node
				return stop
			}
			return nil
		})
		if err != stop {
			t.Errorf("%s: expected sentinel to be returned, got %v", name, err)
		}
		if hit == nil || hit.Payload() != 4 {
			t.Errorf("%s: expected to stop at 4", name)
		}
		if visits == tree.Len() && name != "level" && name != "post" {
			t.Errorf("%s: expected traversal to stop early", name)
		}
	}
	if err := tree.InOrder(false, func(*Node[int], int) error { return nil }); err != nil {
		t.Errorf("expected nil at end of traversal, got %v", err)
	}
}

func TestAscendDescend(t *testing.T) {
	tree := intTree(t, 5, 3, 8, 1, 4)
	var asc, desc []int
	for v := range tree.Ascend() {
		asc = append(asc, v)
	}
	for v := range tree.Descend() {
		desc = append(desc, v)
		if len(desc) == 2 {
			break
		}
	}
	if !slices.Equal(asc, []int{1, 3, 4, 5, 8}) {
		t.Errorf("unexpected ascending sequence %v", asc)
	}
	if !slices.Equal(desc, []int{8, 5}) {
		t.Errorf("unexpected descending prefix %v", desc)
	}
}

func TestTraversalOfEmptyTree(t *testing.T) {
	tree := intTree(t)
	called := false
	visit := func(*Node[int], int) error { called = true; return nil }
	_ = tree.InOrder(false, visit)
	_ = tree.PreOrder(false, visit)
	_ = tree.PostOrder(false, visit)
	_ = tree.LevelOrder(false, visit)
	if called {
		t.Errorf("visitor called for empty tree")
	}
}
