package dllist

// Sort sorts l in place, ordering payloads with cmp. Sort is stable: nodes
// with payloads comparing equal keep their relative order.
//
// Sort is a bottom-up merge sort. Each pass merges adjacent runs of length k
// (k = 1, 2, 4, …) along the whole chain. Sorting is complete once a pass
// performs at most one merge. Nodes are relinked; no node is allocated or
// released, so nodes held by clients stay valid.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if l == nil || l.length < 2 {
		return
	}
	assert(cmp != nil, "Sort called without comparator")
	chain := l.head
	for k := 1; ; k *= 2 {
		p := chain
		chain = nil
		var tail *Node[T]
		merges := 0
		for p != nil {
			merges++
			// left run starts at p, right run starts at q
			q, psize := p, 0
			for i := 0; i < k && q != nil; i++ {
				psize++
				q = q.next
			}
			qsize := k
			for psize > 0 || (qsize > 0 && q != nil) {
				var e *Node[T]
				switch {
				case psize == 0:
					e, q = q, q.next
					qsize--
				case qsize == 0 || q == nil:
					e, p = p, p.next
					psize--
				case cmp(p.payload, q.payload) <= 0:
					e, p = p, p.next
					psize--
				default:
					e, q = q, q.next
					qsize--
				}
				if tail == nil {
					chain = e
				} else {
					tail.next = e
				}
				e.prev = tail
				tail = e
			}
			p = q
		}
		tail.next = nil
		if merges <= 1 {
			tracer().Debugf("dllist: sorted %d nodes with run length %d", l.length, k)
			l.head, l.tail = chain, tail
			return
		}
	}
}
