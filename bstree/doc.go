/*
Package bstree implements an intrusive binary search tree with parent links.

Nodes of a tree directly hold their links (parent, left and right child) and
a payload. Ordering, release and duplication of payloads are delegated to
callbacks configured for a tree (see Config). An in-order walk of a tree
yields its payloads in ascending order with respect to the tree's comparator.
Equal payloads are allowed; a duplicate is inserted into the right subtree of
an equal node.

The tree does not balance itself. Clients may call Balance at any time, which
re-shapes the tree into a minimum-height tree (Day–Stout–Warren). Single
rotations are available for clients implementing their own balancing scheme.

All traversals (in-, pre-, post- and level-order) are iterative and use the
parent links only; they do not allocate. Each traversal may run in mirrored
direction, swapping the roles of left and right children.

Trees may exchange their contents: Move transplants the nodes of one tree into
another one, Copy inserts duplicates. Both re-insert payloads with the ordering
of the destination tree, as source and destination may be ordered differently.

A tree is not safe for concurrent use. Clients have to guard a tree with a
lock if it is shared between goroutines.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bstree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mapfilefs'
func tracer() tracing.Trace {
	return tracing.Select("mapfilefs")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
