package bstree

import (
	"errors"
	"iter"
)

// Visitor is called for every node visited during a traversal. Returning a
// non-nil error halts the traversal; the traversal function then returns this
// error to its caller.
//
// Visitors must not modify the structure of the tree.
type Visitor[T any] func(node *Node[T], payload T) error

// errStopIteration halts traversals driving range-over-func iterators.
var errStopIteration = errors.New("bstree: stop iteration")

// InOrder visits all nodes in in-order, i.e. in ascending order of payloads.
// If reverse is true, left and right are swapped, resulting in descending
// order.
//
// InOrder returns the first non-nil error returned by visit, or nil if all
// nodes have been visited.
func (t *Tree[T]) InOrder(reverse bool, visit Visitor[T]) error {
	if t.IsEmpty() || visit == nil {
		return nil
	}
	return t.inorderFrom(t.root, reverse, visit)
}

func (t *Tree[T]) inorderFrom(top *Node[T], reverse bool, visit Visitor[T]) error {
	node := leftmost(top, reverse)
	for node != nil {
		next := inorderNext(node, top, reverse)
		if err := visit(node, node.payload); err != nil {
			return err
		}
		node = next
	}
	return nil
}

// inorderNext finds the in-order successor of node within the subtree rooted
// at top.
func inorderNext[T any](node, top *Node[T], reverse bool) *Node[T] {
	if r := node.rightOf(reverse); r != nil {
		return leftmost(r, reverse)
	}
	// climb up until we arrive from a left child
	for node != top {
		parent := node.parent
		if parent.leftOf(reverse) == node {
			return parent
		}
		node = parent
	}
	return nil
}

// PreOrder visits all nodes in pre-order: a node first, then its left subtree,
// then its right subtree. If reverse is true, left and right are swapped.
func (t *Tree[T]) PreOrder(reverse bool, visit Visitor[T]) error {
	if t.IsEmpty() || visit == nil {
		return nil
	}
	return t.preorderFrom(t.root, reverse, visit)
}

func (t *Tree[T]) preorderFrom(top *Node[T], reverse bool, visit Visitor[T]) error {
	node := top
	for node != nil {
		if err := visit(node, node.payload); err != nil {
			return err
		}
		node = preorderNext(node, top, reverse)
	}
	return nil
}

func preorderNext[T any](node, top *Node[T], reverse bool) *Node[T] {
	if l := node.leftOf(reverse); l != nil {
		return l
	}
	if r := node.rightOf(reverse); r != nil {
		return r
	}
	// climb up until there is a right subtree we have not come from
	for node != top {
		prev := node
		node = node.parent
		if r := node.rightOf(reverse); r != nil && r != prev {
			return r
		}
	}
	return nil
}

// PostOrder visits all nodes in post-order: the left subtree, then the right
// subtree, then the node itself. If reverse is true, left and right are
// swapped.
func (t *Tree[T]) PostOrder(reverse bool, visit Visitor[T]) error {
	if t.IsEmpty() || visit == nil {
		return nil
	}
	return t.postorderFrom(t.root, reverse, visit)
}

// postorderFrom determines the successor of a node before the node is
// visited. A visitor may therefore unlink the visited node, which is a leaf
// of the remaining tree at that time.
func (t *Tree[T]) postorderFrom(top *Node[T], reverse bool, visit Visitor[T]) error {
	node := deepestFirst(top, reverse)
	for node != nil {
		var next *Node[T]
		if node != top {
			parent := node.parent
			if r := parent.rightOf(reverse); r != nil && parent.leftOf(reverse) == node {
				next = deepestFirst(r, reverse)
			} else {
				next = parent
			}
		}
		if err := visit(node, node.payload); err != nil {
			return err
		}
		node = next
	}
	return nil
}

// deepestFirst finds the first node of a subtree in post-order.
func deepestFirst[T any](n *Node[T], reverse bool) *Node[T] {
	for {
		if l := n.leftOf(reverse); l != nil {
			n = l
		} else if r := n.rightOf(reverse); r != nil {
			n = r
		} else {
			return n
		}
	}
}

// LevelOrder visits all nodes breadth-first, one depth after the other, and
// within a depth from left to right (right to left if reverse is true).
//
// LevelOrder does not use a queue. Instead, it repeats a depth-limited walk
// for every depth until a walk does not find any node. This trades time
// (O(n·h) for a tree of height h) for memory.
func (t *Tree[T]) LevelOrder(reverse bool, visit Visitor[T]) error {
	if t.IsEmpty() || visit == nil {
		return nil
	}
	for depth := 1; ; depth++ {
		visits, err := t.visitLevel(depth, reverse, visit)
		if err != nil {
			return err
		}
		if visits == 0 {
			return nil
		}
	}
}

// visitLevel walks the tree in pre-order, not descending below depth, and
// visits the nodes at exactly depth. The root is at depth 1.
func (t *Tree[T]) visitLevel(depth int, reverse bool, visit Visitor[T]) (int, error) {
	visits := 0
	node, d := t.root, 1
	for node != nil {
		if d == depth {
			visits++
			if err := visit(node, node.payload); err != nil {
				return visits, err
			}
		}
		if l := node.leftOf(reverse); l != nil && d < depth {
			node, d = l, d+1
			continue
		}
		if r := node.rightOf(reverse); r != nil && d < depth {
			node, d = r, d+1
			continue
		}
		for {
			prev := node
			node, d = node.parent, d-1
			if node == nil {
				break
			}
			if r := node.rightOf(reverse); r != nil && r != prev {
				node, d = r, d+1
				break
			}
		}
	}
	return visits, nil
}

// Ascend returns an iterator over all payloads in ascending order.
func (t *Tree[T]) Ascend() iter.Seq[T] {
	return t.rangeInOrder(false)
}

// Descend returns an iterator over all payloads in descending order.
func (t *Tree[T]) Descend() iter.Seq[T] {
	return t.rangeInOrder(true)
}

func (t *Tree[T]) rangeInOrder(reverse bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = t.InOrder(reverse, func(_ *Node[T], payload T) error {
			if !yield(payload) {
				return errStopIteration
			}
			return nil
		})
	}
}
