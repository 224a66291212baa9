package bstree

// Node is a node of a binary search tree. Nodes are created by Tree.Insert
// and remain valid until they are removed from their tree.
//
// The parent link is a back-reference used for traversal only; a node is
// owned by the child slot of its parent (or by the root slot of its tree).
type Node[T any] struct {
	parent  *Node[T]
	left    *Node[T]
	right   *Node[T]
	payload T
}

// Payload returns the payload held by a node.
func (n *Node[T]) Payload() T {
	return n.payload
}

// Parent returns the parent of a node, or nil for the root node.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Left returns the left child of a node.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child of a node.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// IsLeaf reports whether a node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// leftOf and rightOf swap the roles of left and right children for
// traversals in mirrored direction.

func (n *Node[T]) leftOf(reverse bool) *Node[T] {
	if reverse {
		return n.right
	}
	return n.left
}

func (n *Node[T]) rightOf(reverse bool) *Node[T] {
	if reverse {
		return n.left
	}
	return n.right
}
