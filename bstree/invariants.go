package bstree

import "fmt"

// Check validates structural tree invariants:
//
//   - the root has no parent, every other node is linked back to its parent,
//   - the node count matches the number of reachable nodes,
//   - an in-order walk yields payloads in non-decreasing order.
//
// Rotations may move a duplicate into the left subtree of an equal node, so
// ordering is checked along the in-order sequence rather than per subtree.
//
// Check is intended to be used in tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.length != 0 {
			return fmt.Errorf("%w: empty tree must have length 0, has %d", ErrInvalidConfig, t.length)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvalidConfig)
	}
	count := 0
	var err error
	_ = t.PreOrder(false, func(node *Node[T], _ T) error {
		count++
		if count > t.length {
			err = fmt.Errorf("%w: more nodes reachable than counted (%d)", ErrInvalidConfig, t.length)
		} else if node.left != nil && node.left.parent != node {
			err = fmt.Errorf("%w: left child of %v not linked back", ErrInvalidConfig, node.payload)
		} else if node.right != nil && node.right.parent != node {
			err = fmt.Errorf("%w: right child of %v not linked back", ErrInvalidConfig, node.payload)
		}
		return err
	})
	if err != nil {
		return err
	}
	if count != t.length {
		return fmt.Errorf("%w: length mismatch (%d reachable != %d)", ErrInvalidConfig, count, t.length)
	}
	var prev *Node[T]
	return t.InOrder(false, func(node *Node[T], payload T) error {
		if prev != nil && t.cfg.Compare(prev.payload, payload) > 0 {
			return fmt.Errorf("%w: order violated between %v and %v", ErrInvalidConfig,
				prev.payload, payload)
		}
		prev = node
		return nil
	})
}
