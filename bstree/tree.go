package bstree

import "fmt"

// Tree is an intrusive binary search tree over payloads of type T.
//
// Use New to create a tree; the zero value is not usable, as it lacks a
// comparator.
type Tree[T any] struct {
	cfg    Config[T]
	root   *Node[T]
	length int // number of nodes reachable from root
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, with 0 meaning an empty tree.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Min returns the node with the smallest payload.
func (t *Tree[T]) Min() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return leftmost(t.root, false)
}

// Max returns the node with the greatest payload.
func (t *Tree[T]) Max() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return leftmost(t.root, true)
}

// Find looks up a node holding a payload equal to key. Equality is determined
// by the tree's comparator only, thus key may be a partially filled probe.
//
// If the tree holds duplicates, Find returns the first equal node on the
// search path. Find returns nil if no node matches.
func (t *Tree[T]) Find(key T) *Node[T] {
	if t == nil {
		return nil
	}
	node := t.root
	for node != nil {
		c := t.cfg.Compare(key, node.payload)
		if c == 0 {
			return node
		}
		if c < 0 {
			node = node.left
		} else {
			node = node.right
		}
	}
	return nil
}

// Insert adds a new leaf node holding payload. Duplicates are not rejected;
// they go to the right subtree of an equal node.
//
// Insert fails with ErrAllocation if the tree's free list refuses to hand out
// a node. The tree is unmodified in this case.
func (t *Tree[T]) Insert(payload T) (*Node[T], error) {
	assert(t != nil, "Insert called for nil tree")
	node, ok := t.cfg.FreeList.Get()
	if !ok {
		tracer().Errorf("bstree: no node available for insert, %d nodes in tree", t.length)
		return nil, fmt.Errorf("%w: free list limit of %d nodes reached",
			ErrAllocation, t.cfg.FreeList.Limit())
	}
	node.payload = payload
	t.link(node)
	return node, nil
}

// link places a detached node into an empty slot found by descending along
// the tree's ordering.
func (t *Tree[T]) link(node *Node[T]) {
	var parent *Node[T]
	slot := &t.root
	for *slot != nil {
		parent = *slot
		if t.cfg.Compare(node.payload, parent.payload) < 0 {
			slot = &parent.left
		} else {
			slot = &parent.right
		}
	}
	*slot = node
	node.parent = parent
	node.left, node.right = nil, nil
	t.length++
}

// Delete removes node from the tree and returns its payload. Ownership of the
// payload transfers to the caller; Config.Free is not called.
//
// node must have been obtained from this tree (by Find, Insert or a
// traversal). After Delete, node must not be used any more.
func (t *Tree[T]) Delete(node *Node[T]) T {
	assert(t != nil && node != nil, "Delete called with nil tree or node")
	assert(t.length > 0, "Delete called for empty tree")
	switch {
	case node.left == nil:
		t.replace(node, node.right) // covers leaf nodes, too
	case node.right == nil:
		t.replace(node, node.left)
	case node.right.left == nil:
		// right child becomes successor and adopts the left subtree
		succ := node.right
		succ.left = node.left
		succ.left.parent = succ
		t.replace(node, succ)
	default:
		// splice out the minimum of the right subtree and put it into node's place
		succ := leftmost(node.right, false)
		succ.parent.left = succ.right
		if succ.right != nil {
			succ.right.parent = succ.parent
		}
		succ.left = node.left
		succ.left.parent = succ
		succ.right = node.right
		succ.right.parent = succ
		t.replace(node, succ)
	}
	payload := node.payload
	t.length--
	t.cfg.FreeList.Put(node)
	return payload
}

// replace puts child into the slot node occupies in its parent (or into the
// root slot). node's own links are not changed.
func (t *Tree[T]) replace(node, child *Node[T]) {
	parent := node.parent
	switch {
	case parent == nil:
		t.root = child
	case parent.left == node:
		parent.left = child
	default:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}

// unlinkLeaf removes a leaf node from the tree without releasing it.
func (t *Tree[T]) unlinkLeaf(node *Node[T]) {
	assert(node.IsLeaf(), "unlinkLeaf called for inner node")
	t.replace(node, nil)
	node.parent = nil
	t.length--
}

// DeleteAll removes all nodes from the tree and releases their payloads with
// Config.Free.
func (t *Tree[T]) DeleteAll() {
	if t.IsEmpty() {
		return
	}
	n := t.length
	// post-order visits every node after its children, so every node is a
	// leaf by the time it is released
	_ = t.postorderFrom(t.root, false, func(node *Node[T], payload T) error {
		t.unlinkLeaf(node)
		t.cfg.Free(payload)
		t.cfg.FreeList.Put(node)
		return nil
	})
	assert(t.root == nil && t.length == 0, "DeleteAll left nodes in tree")
	tracer().Debugf("bstree: deleted all %d nodes", n)
}

// leftmost follows the left links (mirrored if reverse) down from n.
func leftmost[T any](n *Node[T], reverse bool) *Node[T] {
	for l := n.leftOf(reverse); l != nil; l = n.leftOf(reverse) {
		n = l
	}
	return n
}
