package dllist

import (
	"fmt"

	"github.com/npillmayer/mapfilefs/nodepool"
)

// PrependList moves all nodes of src to the front of l. src is empty
// afterwards. No nodes are allocated and no payloads are duplicated.
func (l *List[T]) PrependList(src *List[T]) {
	l.spliceAfter(nil, src)
}

// AppendList moves all nodes of src to the end of l. src is empty afterwards.
func (l *List[T]) AppendList(src *List[T]) {
	l.spliceAfter(l.tail, src)
}

// InsertListAfter moves all nodes of src into l, right after node n. If n is
// nil, the nodes are appended. src is empty afterwards.
func (l *List[T]) InsertListAfter(src *List[T], n *Node[T]) {
	if n == nil {
		n = l.tail
	}
	l.spliceAfter(n, src)
}

// InsertListBefore moves all nodes of src into l, right before node n. If n
// is nil, the nodes are prepended. src is empty afterwards.
func (l *List[T]) InsertListBefore(src *List[T], n *Node[T]) {
	if n == nil {
		l.spliceAfter(nil, src)
		return
	}
	l.spliceAfter(n.prev, src)
}

// spliceAfter links the chain of src into l after node at (at the front if at
// is nil). Splicing a list into itself does nothing. If the lists use
// different free lists, the spliced nodes are accounted to l's free list.
func (l *List[T]) spliceAfter(at *Node[T], src *List[T]) {
	if src == nil || src == l || src.length == 0 {
		return
	}
	nodepool.Transfer(src.pool, l.pool, src.length)
	first, last := src.head, src.tail
	first.prev = at
	if at == nil {
		last.next = l.head
		l.head = first
	} else {
		last.next = at.next
		at.next = first
	}
	if last.next == nil {
		l.tail = last
	} else {
		last.next.prev = last
	}
	l.length += src.length
	src.head, src.tail, src.length = nil, nil, 0
}

// PrependListCopy inserts duplicates of the payloads of src at the front of
// l, keeping the order of src. src is not modified.
//
// dup duplicates a payload; if dup is nil, payloads are copied by value.
// Copying stops at the first payload which cannot be duplicated or for which
// no node can be allocated. The source node in question is returned, together
// with an error wrapping ErrDuplication or ErrAllocation. Duplicates inserted
// up to this point remain in l. On success the *Copy operations return
// (nil, nil).
func (l *List[T]) PrependListCopy(src *List[T], dup func(T) (T, error)) (*Node[T], error) {
	return l.copyAfter(nil, src, dup)
}

// AppendListCopy inserts duplicates of the payloads of src at the end of l.
// See PrependListCopy.
func (l *List[T]) AppendListCopy(src *List[T], dup func(T) (T, error)) (*Node[T], error) {
	return l.copyAfter(l.tail, src, dup)
}

// InsertListAfterCopy inserts duplicates of the payloads of src right after
// node n, or at the end of l if n is nil. See PrependListCopy.
func (l *List[T]) InsertListAfterCopy(src *List[T], n *Node[T], dup func(T) (T, error)) (*Node[T], error) {
	if n == nil {
		n = l.tail
	}
	return l.copyAfter(n, src, dup)
}

// InsertListBeforeCopy inserts duplicates of the payloads of src right before
// node n, or at the front of l if n is nil. See PrependListCopy.
func (l *List[T]) InsertListBeforeCopy(src *List[T], n *Node[T], dup func(T) (T, error)) (*Node[T], error) {
	if n == nil {
		return l.copyAfter(nil, src, dup)
	}
	return l.copyAfter(n.prev, src, dup)
}

func (l *List[T]) copyAfter(at *Node[T], src *List[T], dup func(T) (T, error)) (*Node[T], error) {
	if src == nil {
		return nil, nil
	}
	if src == l {
		return nil, ErrSameList
	}
	copied := 0
	for s := src.head; s != nil; s = s.next {
		payload := s.payload
		if dup != nil {
			var err error
			if payload, err = dup(s.payload); err != nil {
				tracer().Errorf("dllist: copy stopped after %d nodes: %v", copied, err)
				return s, fmt.Errorf("%w: %w", ErrDuplication, err)
			}
		}
		n, err := l.newNode(payload)
		if err != nil {
			return s, err
		}
		l.linkAfter(at, n)
		at = n
		copied++
	}
	tracer().Debugf("dllist: copied %d nodes", copied)
	return nil, nil
}
