/*
Package dllist implements an intrusive doubly linked list.

Nodes of a list hold their links (previous and next node) together with a
payload. All insertions and deletions adjacent to a known node take constant
time. Whole lists may be spliced into other lists in constant time, without
allocating nodes; the source list is empty afterwards. The *Copy family of
operations inserts duplicates of another list's payloads instead.

Sort is a stable, in-place merge sort working bottom-up on the chain of nodes.
It relinks nodes and never re-creates them, i.e. clients may hold on to nodes
across sorting.

The zero value of List is an empty list, ready to use. Nodes of such a list
are allocated on demand and never fail to allocate. Use NewWithFreeList to
draw nodes from a (possibly bounded) node pool. Splicing between lists with
different free lists hands the accounting of the spliced nodes over to the
destination's free list.

A list is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dllist

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mapfilefs'
func tracer() tracing.Trace {
	return tracing.Select("mapfilefs")
}
