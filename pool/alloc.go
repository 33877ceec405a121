package pool

// Alloc hands out a region of exactly size bytes and returns its ref plus
// the region's payload slice.
//
// The ledger is scanned in address order and the first free region large
// enough wins (first-fit). An exact fit is flipped to occupied in place; a
// larger region is split into an occupied prefix of size bytes and a free
// remainder threaded in as its successor. When no free region fits, Alloc
// returns ErrOutOfSpace and the ledger is left untouched: there is no
// partial allocation and the pool never grows.
func (p *Pool) Alloc(size int) (Ref, []byte, error) {
	if p.closed {
		return NilRef, nil, ErrClosed
	}
	p.stats.AllocCalls++

	if size <= 0 {
		return NilRef, nil, ErrBadSize
	}
	if size > maxPoolSize {
		// Larger than any pool this allocator can hold. Rejecting here also
		// keeps the uint32 narrowing below from wrapping the request.
		return NilRef, nil, ErrOutOfSpace
	}
	need := uint32(size)

	for idx := p.head; idx != nilNode; idx = p.nodes[idx].next {
		if !p.nodes[idx].free || p.nodes[idx].size < need {
			continue
		}

		if p.nodes[idx].size > need {
			// Split: occupied prefix keeps the match's offset, the free
			// remainder becomes its new successor.
			cur := p.nodes[idx]
			tail := p.newNode(node{
				off:  cur.off + need,
				size: cur.size - need,
				free: true,
				next: cur.next,
			})
			p.nodes[idx].size = need
			p.nodes[idx].next = tail
			p.stats.Splits++
		}
		p.nodes[idx].free = false
		p.stats.BytesAllocated += int64(p.nodes[idx].size)

		return Ref(p.nodes[idx].off), p.payload(p.nodes[idx]), nil
	}

	return NilRef, nil, ErrOutOfSpace
}
