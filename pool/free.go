package pool

// Free returns a region to the pool.
//
// The ref must name a live allocation. Freeing an already-free region
// reports ErrDoubleFree, a ref the pool never handed out reports
// ErrForeignRef, and NilRef reports ErrNilRef; all three leave the ledger
// unchanged. On success the region is marked free and then absorbs its
// address-order successor repeatedly while that successor is also free.
//
// Merging runs forward only: a free predecessor at a lower address is not
// coalesced. See the package documentation for the consequence.
func (p *Pool) Free(ref Ref) error {
	if p.closed {
		return ErrClosed
	}
	p.stats.FreeCalls++

	if ref == NilRef {
		p.log.Warn("free of nil ref ignored")
		return ErrNilRef
	}
	idx := p.lookup(uint32(ref))
	if idx == nilNode {
		p.log.Warn("free of ref not allocated from this pool", "ref", uint32(ref))
		return ErrForeignRef
	}
	if p.nodes[idx].free {
		p.log.Warn("double free", "ref", uint32(ref))
		return ErrDoubleFree
	}

	p.nodes[idx].free = true
	p.stats.BytesFreed += int64(p.nodes[idx].size)

	// Forward merge: absorb free successors until the neighbor is occupied
	// or the pool ends. Vacated nodes go back to the arena free list.
	for {
		succ := p.nodes[idx].next
		if succ == nilNode || !p.nodes[succ].free {
			break
		}
		p.nodes[idx].size += p.nodes[succ].size
		p.nodes[idx].next = p.nodes[succ].next
		p.freeSlots = append(p.freeSlots, succ)
		p.stats.Merges++
	}
	return nil
}
