package dllist

import (
	"iter"

	"github.com/npillmayer/mapfilefs/nodepool"
)

// Node is a node of a doubly linked list.
type Node[T any] struct {
	prev, next *Node[T]
	payload    T
}

// Payload returns the payload of a node.
func (n *Node[T]) Payload() T {
	return n.payload
}

// Prev returns the predecessor of n, or nil if n is the head of its list.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Next returns the successor of n, or nil if n is the tail of its list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is an intrusive doubly linked list. The zero value is an empty list.
type List[T any] struct {
	head, tail *Node[T]
	length     int
	pool       *nodepool.FreeList[Node[T]]
}

// NewWithFreeList creates an empty list drawing its nodes from fl.
func NewWithFreeList[T any](fl *nodepool.FreeList[Node[T]]) *List[T] {
	return &List[T]{pool: fl}
}

// FreeList returns the node pool of l, which may be nil.
func (l *List[T]) FreeList() *nodepool.FreeList[Node[T]] {
	return l.pool
}

// Len returns the number of nodes in l.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty is a shortcut for l.Len() == 0.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Head returns the first node of l.
func (l *List[T]) Head() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Tail returns the last node of l.
func (l *List[T]) Tail() *Node[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

func (l *List[T]) newNode(payload T) (*Node[T], error) {
	n, ok := l.pool.Get()
	if !ok {
		tracer().Errorf("dllist: node pool exhausted at %d live nodes", l.pool.Live())
		return nil, ErrAllocation
	}
	n.payload = payload
	return n, nil
}

// linkAfter links n into l after node at. If at is nil, n becomes the new head.
func (l *List[T]) linkAfter(at, n *Node[T]) {
	n.prev = at
	if at == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = at.next
		at.next = n
	}
	if n.next == nil {
		l.tail = n
	} else {
		n.next.prev = n
	}
	l.length++
}

func (l *List[T]) unlink(n *Node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.length--
}

// Prepend inserts payload at the front of l. If no node can be allocated,
// Prepend returns ErrAllocation and l is unchanged.
func (l *List[T]) Prepend(payload T) (*Node[T], error) {
	return l.insertAfter(nil, payload)
}

// Append inserts payload at the end of l. If no node can be allocated,
// Append returns ErrAllocation and l is unchanged.
func (l *List[T]) Append(payload T) (*Node[T], error) {
	return l.insertAfter(l.tail, payload)
}

// InsertAfter inserts payload right after node n. If n is nil, InsertAfter
// appends payload to l.
func (l *List[T]) InsertAfter(n *Node[T], payload T) (*Node[T], error) {
	if n == nil {
		n = l.tail
	}
	return l.insertAfter(n, payload)
}

// InsertBefore inserts payload right before node n. If n is nil,
// InsertBefore prepends payload to l.
func (l *List[T]) InsertBefore(n *Node[T], payload T) (*Node[T], error) {
	if n == nil {
		return l.insertAfter(nil, payload)
	}
	return l.insertAfter(n.prev, payload)
}

func (l *List[T]) insertAfter(at *Node[T], payload T) (*Node[T], error) {
	n, err := l.newNode(payload)
	if err != nil {
		return nil, err
	}
	l.linkAfter(at, n)
	return n, nil
}

// Delete removes node n from l and returns its payload. n has to be a node
// of l. The node is released and must not be used any further.
func (l *List[T]) Delete(n *Node[T]) T {
	assert(n != nil, "Delete called for nil node")
	payload := n.payload
	l.unlink(n)
	l.pool.Put(n)
	return payload
}

// DeleteAfter deletes the successor of n. It returns false if there is none.
func (l *List[T]) DeleteAfter(n *Node[T]) (payload T, ok bool) {
	if n == nil || n.next == nil {
		return
	}
	return l.Delete(n.next), true
}

// DeleteBefore deletes the predecessor of n. It returns false if there is none.
func (l *List[T]) DeleteBefore(n *Node[T]) (payload T, ok bool) {
	if n == nil || n.prev == nil {
		return
	}
	return l.Delete(n.prev), true
}

// DeleteAll deletes every node of l, handing each payload to free (if free
// is non-nil). l is empty afterwards.
func (l *List[T]) DeleteAll(free func(T)) {
	_ = l.Iterate(func(node *Node[T], payload T) error {
		l.Delete(node)
		if free != nil {
			free(payload)
		}
		return nil
	})
}

// Visitor is called for every node visited by Iterate. Returning a non-nil
// error halts the iteration.
type Visitor[T any] func(node *Node[T], payload T) error

// Iterate visits the nodes of l from head to tail. It returns the first
// non-nil error returned by visit, or nil if all nodes have been visited.
//
// The successor of a node is determined before the node is visited; visit
// may therefore delete the node it has been called for.
func (l *List[T]) Iterate(visit Visitor[T]) error {
	if l == nil || visit == nil {
		return nil
	}
	for node := l.head; node != nil; {
		next := node.next
		if err := visit(node, node.payload); err != nil {
			return err
		}
		node = next
	}
	return nil
}

// All returns an iterator over the payloads of l, from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.Head(); node != nil; node = node.next {
			if !yield(node.payload) {
				return
			}
		}
	}
}

// Backward returns an iterator over the payloads of l, from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.Tail(); node != nil; node = node.prev {
			if !yield(node.payload) {
				return
			}
		}
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
