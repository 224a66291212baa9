package dllist

import "fmt"

// Check verifies the structural invariants of l: link symmetry, head and tail
// consistency and the node count. It returns an error describing the first
// violation found.
func (l *List[T]) Check() error {
	if l == nil {
		return nil
	}
	if (l.head == nil) != (l.tail == nil) {
		return fmt.Errorf("dllist: head/tail mismatch")
	}
	if l.head != nil && l.head.prev != nil {
		return fmt.Errorf("dllist: head has a predecessor")
	}
	count := 0
	var last *Node[T]
	for n := l.head; n != nil; n = n.next {
		if n.prev != last {
			return fmt.Errorf("dllist: broken back link at node #%d", count)
		}
		last = n
		count++
		if count > l.length {
			return fmt.Errorf("dllist: more nodes reachable than recorded (%d)", l.length)
		}
	}
	if last != l.tail {
		return fmt.Errorf("dllist: tail is not the last node")
	}
	if count != l.length {
		return fmt.Errorf("dllist: count is %d, but %d nodes are linked", l.length, count)
	}
	return nil
}
