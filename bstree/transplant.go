package bstree

import "fmt"

// Move transplants the nodes of src into t. Payloads are re-inserted using t's
// ordering, as the two trees may use different comparators. No payload is
// duplicated or released; ownership of all payloads moves to t.
//
// If branch is nil, all of src is moved and src is empty afterwards. If branch
// is a node of src, only the subtree rooted at branch is moved; src remains a
// valid search tree of the other nodes.
//
// Nodes are moved in post-order, i.e. every node leaves src as a leaf. If t
// cannot allocate a node, Move stops with ErrAllocation. Nodes moved up to
// this point remain in t, all other nodes remain in src.
//
// Moving a tree into itself is a no-op.
func (t *Tree[T]) Move(src *Tree[T], branch *Node[T]) error {
	assert(t != nil, "Move called for nil destination tree")
	if src == nil || src == t {
		return nil
	}
	top := branch
	if top == nil {
		top = src.root
	}
	if top == nil {
		return nil
	}
	sharedNodes := t.cfg.FreeList == src.cfg.FreeList
	moved := 0
	err := src.postorderFrom(top, false, func(node *Node[T], payload T) error {
		if sharedNodes {
			// relocate the node itself, no allocation necessary
			src.unlinkLeaf(node)
			t.link(node)
		} else {
			if _, err := t.Insert(payload); err != nil {
				return err
			}
			src.unlinkLeaf(node)
			src.cfg.FreeList.Put(node)
		}
		moved++
		return nil
	})
	if err != nil {
		tracer().Errorf("bstree: move stopped after %d nodes: %v", moved, err)
		return err
	}
	tracer().Debugf("bstree: moved %d nodes", moved)
	return nil
}

// Copy inserts duplicates of the payloads of src into t, using src's
// duplicator (Config.Dup) and t's ordering. src is not modified.
//
// If branch is nil, all of src is copied, otherwise only the subtree rooted at
// branch. Nodes are copied in pre-order, thus copying into an empty tree with
// the same ordering reproduces the shape of src.
//
// Copy aborts at the first payload which cannot be duplicated or inserted. It
// then returns the source node in question, together with an error wrapping
// ErrDuplication or ErrAllocation. Duplicates inserted up to this point remain
// in t. On success Copy returns (nil, nil).
func (t *Tree[T]) Copy(src *Tree[T], branch *Node[T]) (*Node[T], error) {
	assert(t != nil, "Copy called for nil destination tree")
	if src == nil {
		return nil, nil
	}
	if src == t {
		return nil, ErrSameTree
	}
	top := branch
	if top == nil {
		top = src.root
	}
	if top == nil {
		return nil, nil
	}
	var failed *Node[T]
	copied := 0
	err := src.preorderFrom(top, false, func(node *Node[T], payload T) error {
		dup, err := src.cfg.Dup(payload)
		if err != nil {
			failed = node
			return fmt.Errorf("%w: %w", ErrDuplication, err)
		}
		if _, err := t.Insert(dup); err != nil {
			t.cfg.Free(dup)
			failed = node
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		tracer().Errorf("bstree: copy stopped after %d nodes: %v", copied, err)
		return failed, err
	}
	tracer().Debugf("bstree: copied %d nodes", copied)
	return nil, nil
}
