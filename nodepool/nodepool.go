/*
Package nodepool provides free lists for the nodes of intrusive containers.

Containers of this module do not call new() for their nodes directly, but
draw them from a FreeList. A free list recycles released nodes and may be
configured with an upper bound of live nodes. Exceeding this bound is the
only way a container insertion can fail, i.e. it is how allocation failure
surfaces in this module.

A FreeList may be shared between several containers of the same node type.
Containers sharing a free list may then relocate nodes between each other
without allocating.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package nodepool

import "sync"

// DefaultSize is the default number of released nodes kept for reuse.
const DefaultSize = 32

// FreeList represents a free list of container nodes of type N.
//
// A nil *FreeList is valid and behaves like an unbounded free list which
// never recycles nodes.
// Containers using the same free list are safe for concurrent allocation;
// the containers themselves are not.
type FreeList[N any] struct {
	mu       sync.Mutex
	freelist []*N
	live     int // number of nodes handed out and not yet returned
	limit    int // upper bound for live nodes, 0 means unbounded
}

// New creates a free list. size is the maximum number of released nodes kept
// for reuse, limit is the maximum number of live nodes (0 for no limit).
func New[N any](size int, limit int) *FreeList[N] {
	if size < 0 {
		size = 0
	}
	if limit < 0 {
		limit = 0
	}
	return &FreeList[N]{
		freelist: make([]*N, 0, size),
		limit:    limit,
	}
}

// Get hands out a zeroed node. If the live-node limit has been reached, Get
// returns nil and false.
func (f *FreeList[N]) Get() (n *N, ok bool) {
	if f == nil {
		return new(N), true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.limit > 0 && f.live >= f.limit {
		return nil, false
	}
	f.live++
	index := len(f.freelist) - 1
	if index < 0 {
		return new(N), true
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	return n, true
}

// Put returns a node to the free list. The node is zeroed and must not be
// used by the caller any more. Put reports whether the node has been kept
// for reuse.
func (f *FreeList[N]) Put(n *N) (recycled bool) {
	if f == nil || n == nil {
		return false
	}
	var zero N
	*n = zero
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.live > 0 {
		f.live--
	}
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		recycled = true
	}
	return
}

// Transfer moves the accounting of n live nodes from free list from to free
// list to. Containers call it when they hand over nodes to a container using
// a different free list, so that each node is counted by the free list it
// will eventually be returned to. to may exceed its limit afterwards; it
// will then refuse to hand out nodes until enough of them are returned.
func Transfer[N any](from, to *FreeList[N], n int) {
	if from == to || n <= 0 {
		return
	}
	if from != nil {
		from.mu.Lock()
		from.live = max(0, from.live-n)
		from.mu.Unlock()
	}
	if to != nil {
		to.mu.Lock()
		to.live += n
		to.mu.Unlock()
	}
}

// Live returns the number of nodes currently handed out.
func (f *FreeList[N]) Live() int {
	if f == nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

// Limit returns the live-node limit, 0 meaning unbounded.
func (f *FreeList[N]) Limit() int {
	if f == nil {
		return 0
	}
	return f.limit
}

// Cached returns the number of released nodes waiting for reuse.
func (f *FreeList[N]) Cached() int {
	if f == nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}
