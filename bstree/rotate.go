package bstree

// RotateLeft rotates node x to the left. x's right child y takes x's place,
// x becomes y's left child and y's former left subtree becomes x's right
// subtree:
//
//	    x                y
//	   / \              / \
//	  a   y     ==>    x   c
//	     / \          / \
//	    b   c        a   b
//
// The in-order sequence of the tree is not changed. x must have a right child.
func (t *Tree[T]) RotateLeft(x *Node[T]) {
	assert(x != nil && x.right != nil, "RotateLeft requires a node with a right child")
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replace(x, y)
	y.left = x
	x.parent = y
}

// RotateRight rotates node y to the right. It is the inverse of RotateLeft:
//
//	      y            x
//	     / \          / \
//	    x   c  ==>   a   y
//	   / \              / \
//	  a   b            b   c
//
// y must have a left child.
func (t *Tree[T]) RotateRight(y *Node[T]) {
	assert(y != nil && y.left != nil, "RotateRight requires a node with a left child")
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	t.replace(y, x)
	x.right = y
	y.parent = x
}

// Balance re-shapes the tree into a tree of minimal height, using the
// Day–Stout–Warren algorithm. The in-order sequence of payloads is not
// changed. Balance runs in O(n) time and does not allocate.
//
// After Balance, the height of a tree with n nodes is ⌊log2(n)⌋ + 1.
func (t *Tree[T]) Balance() {
	if t.IsEmpty() {
		return
	}
	before := t.Height()
	t.treeToVine()
	n := t.length
	m := fullTreeSize(n)
	t.compress(n - m)
	for m > 1 {
		m /= 2
		t.compress(m)
	}
	tracer().Debugf("bstree: balanced %d nodes, height %d -> %d", n, before, t.Height())
}

// treeToVine flattens the tree into a right-leaning chain of nodes by rotating
// every left child up.
func (t *Tree[T]) treeToVine() {
	node := t.root
	for node != nil {
		if l := node.left; l != nil {
			t.RotateRight(node)
			node = l
		} else {
			node = node.right
		}
	}
}

// compress performs count left rotations at every second node along the right
// spine, starting at the root.
func (t *Tree[T]) compress(count int) {
	node := t.root
	for i := 0; i < count && node != nil && node.right != nil; i++ {
		r := node.right
		t.RotateLeft(node)
		node = r.right
	}
}

// fullTreeSize returns the largest number of nodes 2^k - 1 not exceeding n,
// i.e. the size of the largest complete tree fitting into n nodes.
func fullTreeSize(n int) int {
	p := 1
	for 2*p <= n+1 {
		p *= 2
	}
	return p - 1
}
